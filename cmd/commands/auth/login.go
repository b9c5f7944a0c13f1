package auth

import (
	"fmt"
	"os"
	"strings"

	"orbitdeck/internal/auth"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the Gemini API key",
		Long: `Store the Gemini API key in the local keychain.

Example:
  orbitdeck auth login`,
		Args: cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			key, err := cmd.Flags().GetString("key")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			key = strings.TrimSpace(key)
			if key == "" {
				fmt.Fprint(os.Stdout, "Enter Gemini API key: ")
				bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stdout)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
				key = strings.TrimSpace(string(bytes))
			}

			if key == "" {
				fmt.Fprintln(os.Stderr, "API key cannot be empty")
				return
			}

			store := auth.DefaultStore()
			if err := store.SetKey(auth.KeyGemini, key); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			fmt.Fprintln(os.Stdout, "Saved Gemini API key")
		},
	}

	cmd.Flags().String("key", "", "API key (optional, overrides prompt)")

	return cmd
}
