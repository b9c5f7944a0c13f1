package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"orbitdeck/internal/config"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  orbitdeck config set model gemini-2.0-flash\n" +
			"  orbitdeck config set tick-interval 5s",
		Args: cobra.ExactArgs(2),
		Run:  runSet,
	}

	return cmd
}

// validators maps key names to optional pre-save validation functions.
// Keys not present in this map have no extra validation.
var validators = map[string]func(cmd *cobra.Command, value string) error{
	"tick-interval": validateTickInterval,
	"probe-target":  validateProbeTarget,
}

func runSet(cmd *cobra.Command, args []string) {
	key := strings.ToLower(strings.TrimSpace(args[0]))
	value := strings.TrimSpace(args[1])

	spec := config.Lookup(key)
	if spec == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown configuration key %q\n", args[0])
		fmt.Fprintf(cmd.ErrOrStderr(), "Valid keys: %s\n", strings.Join(config.KeyNames(), ", "))
		return
	}

	if validate, ok := validators[spec.Name]; ok {
		if err := validate(cmd, value); err != nil {
			return // validate already printed the error
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	spec.Set(cfg, value)
	if err := cfg.Save(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, value)
}

// validateTickInterval checks the value parses as a positive Go duration.
func validateTickInterval(cmd *cobra.Command, value string) error {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %q is not a positive duration (e.g. 2s, 500ms)\n", value)
		return fmt.Errorf("invalid duration %q", value)
	}
	return nil
}

// validateProbeTarget checks the value looks like host:port.
func validateProbeTarget(cmd *cobra.Command, value string) error {
	if _, _, err := net.SplitHostPort(value); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %q is not a host:port address\n", value)
		return fmt.Errorf("invalid probe target %q", value)
	}
	return nil
}
