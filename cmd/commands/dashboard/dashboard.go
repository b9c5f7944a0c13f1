package dashboard

import (
	"context"
	"fmt"
	"time"

	"orbitdeck/internal/auditlog"
	"orbitdeck/internal/auth"
	"orbitdeck/internal/config"
	"orbitdeck/internal/diagnostics"
	"orbitdeck/internal/netstate"
	"orbitdeck/internal/telemetry"
	"orbitdeck/internal/tui"

	"github.com/spf13/cobra"
)

// startupProbeTimeout bounds the one connectivity check done before the
// console starts.
const startupProbeTimeout = 5 * time.Second

// NewCommand returns the "dashboard" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Launch the mission console",
		Long: `Launch the full-screen mission console.

Telemetry is simulated by default; pass --live to sample the local host's
CPU, memory and temperature instead. Diagnostics require a Gemini API key
(see "orbitdeck auth login"); the rest of the console works without one.

Examples:
  orbitdeck dashboard
  orbitdeck dashboard --live
  orbitdeck dashboard --probe-target 9.9.9.9:53`,
		RunE:         Run,
		SilenceUsage: true,
	}

	RegisterFlags(cmd)

	return cmd
}

// RegisterFlags adds the dashboard flags to cmd. The root command registers
// them too so that bare "orbitdeck" launches the console.
func RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("live", false, "Sample the local host instead of the simulator")
	cmd.Flags().String("probe-target", "", "Connectivity probe target (host:port), overrides config")
}

// Run builds the console's collaborators and starts the TUI.
func Run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// A missing credential is not fatal here; the diagnostics path surfaces
	// it as a console entry when invoked.
	apiKey, err := auth.ResolveAPIKey(auth.DefaultStore())
	if err != nil {
		apiKey = ""
	}

	target, _ := cmd.Flags().GetString("probe-target")
	if target == "" {
		target = cfg.ProbeTarget
	}
	var prober *netstate.Prober
	if target != "" {
		prober = netstate.NewProber(target)
	} else {
		prober = netstate.NewProber()
	}

	// One initial check seeds the tracker; after that the console re-probes
	// periodically.
	ctx, cancel := context.WithTimeout(cmd.Context(), startupProbeTimeout)
	linkUp := prober.Check(ctx)
	cancel()

	var source telemetry.Source = telemetry.NewSimulator()
	if live, _ := cmd.Flags().GetBool("live"); live {
		source = telemetry.NewHostSource()
	}

	analyzer := diagnostics.NewGeminiAnalyzer(apiKey, cfg.ModelOrDefault())

	// The audit trail is best-effort; the console runs without it.
	var audit auditlog.Repository
	if repo, err := auditlog.Open(); err == nil {
		audit = repo
		defer repo.Close()
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: audit trail unavailable: %v\n", err)
	}

	return tui.RunDashboard(tui.DashboardOptions{
		Source:       source,
		Tracker:      netstate.NewTracker(linkUp),
		Prober:       prober,
		Service:      diagnostics.NewService(analyzer, audit),
		TickInterval: cfg.TickIntervalOrDefault(),
	})
}
