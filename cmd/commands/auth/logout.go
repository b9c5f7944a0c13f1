package auth

import (
	"errors"
	"fmt"

	"orbitdeck/internal/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored Gemini API key",
		Long: `Remove the Gemini API key from the local keychain.

Example:
  orbitdeck auth logout`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := auth.DefaultStore()
			if err := store.DeleteKey(auth.KeyGemini); err != nil {
				if errors.Is(err, auth.ErrKeyNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "No stored API key to remove.")
					return nil
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed stored Gemini API key")
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
