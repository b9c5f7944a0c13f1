package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"orbitdeck/internal/auth"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show where the diagnostics credential comes from",
		Long: `Show whether a Gemini API key is available and where it was found.

Example:
  orbitdeck auth status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(os.Getenv(auth.EnvAPIKey)) != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Using %s from the environment\n", auth.EnvAPIKey)
				return nil
			}

			store := auth.DefaultStore()
			_, err := store.GetKey(auth.KeyGemini)
			switch {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "Using API key from the keychain")
			case errors.Is(err, auth.ErrKeyNotFound):
				fmt.Fprintln(cmd.OutOrStdout(), "No API key configured. Run \"orbitdeck auth login\" or set "+auth.EnvAPIKey+".")
			default:
				return fmt.Errorf("keychain lookup failed: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
