package cmd

import (
	"os"

	"orbitdeck/cmd/commands/analyze"
	"orbitdeck/cmd/commands/audit"
	"orbitdeck/cmd/commands/auth"
	cfgcmd "orbitdeck/cmd/commands/config"
	"orbitdeck/cmd/commands/dashboard"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "orbitdeck",
		Short: "A terminal mission console for spacecraft-style telemetry",
		Long: `orbitdeck renders a full-screen mission console in your terminal: live
telemetry cards (CPU load, memory, temperature, network latency), a scrolling
console log, a simulated-outage toggle and on-demand AI diagnostics.

Quick start:
  orbitdeck dashboard              # Launch the mission console
  orbitdeck auth login             # Store your Gemini API key
  orbitdeck analyze                # One-shot diagnostics from the shell
  orbitdeck audit list             # Review past diagnostics runs

Running orbitdeck with no subcommand launches the dashboard.`,
		RunE:         dashboard.Run,
		SilenceUsage: true,
	}
	dashboard.RegisterFlags(cmd)

	cmd.AddCommand(dashboard.NewCommand())
	cmd.AddCommand(analyze.NewCommand())
	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
