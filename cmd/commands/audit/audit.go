package audit

import "github.com/spf13/cobra"

// NewCommand returns the "audit" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "View and manage the diagnostics run history",
		Long: "View the local trail of diagnostics runs and prune old entries.\n\n" +
			"Run history is stored locally in ~/.config/orbitdeck/orbitdeck.db.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
