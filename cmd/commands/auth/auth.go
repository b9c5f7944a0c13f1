package auth

import (
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the diagnostics API credential",
		Long: `Manage the Gemini API credential used for diagnostics.

Use this command group to store the API key securely in the OS keychain.
The ` + "GEMINI_API_KEY" + ` environment variable, when set, takes precedence.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(LogoutCommand())
	cmd.AddCommand(StatusCommand())

	return cmd
}
