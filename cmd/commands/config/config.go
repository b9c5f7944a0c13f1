package config

import "github.com/spf13/cobra"

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage persistent configuration",
		Long: "Manage persistent orbitdeck configuration.\n\n" +
			"Settings are stored in ~/.config/orbitdeck/config.json.",
		SilenceUsage: true,
	}

	cmd.AddCommand(GetCommand())
	cmd.AddCommand(SetCommand())

	return cmd
}
