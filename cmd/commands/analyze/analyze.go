package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"orbitdeck/internal/auditlog"
	"orbitdeck/internal/auth"
	"orbitdeck/internal/config"
	"orbitdeck/internal/diagnostics"
	"orbitdeck/internal/netstate"
	"orbitdeck/internal/telemetry"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"

	"github.com/spf13/cobra"
)

const probeTimeout = 5 * time.Second

// NewCommand returns the "analyze" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run one-shot diagnostics from the shell",
		Long: `Capture a short telemetry window and run AI diagnostics on it, without
launching the full console. Requires a Gemini API key (see "orbitdeck auth
login" or the ` + auth.EnvAPIKey + ` environment variable).

Examples:
  orbitdeck analyze
  orbitdeck analyze --live
  orbitdeck analyze -o json`,
		RunE:         runAnalyze,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("live", false, "Sample the local host instead of the simulator")
	cmd.Flags().Int("samples", diagnostics.AnalysisWindow, "Number of samples to capture")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	apiKey, err := auth.ResolveAPIKey(auth.DefaultStore())
	if err != nil {
		return fmt.Errorf("no Gemini API key found; run \"orbitdeck auth login\" or set %s", auth.EnvAPIKey)
	}

	count, _ := cmd.Flags().GetInt("samples")
	if count <= 0 || count > telemetry.WindowCapacity {
		return fmt.Errorf("samples must be between 1 and %d", telemetry.WindowCapacity)
	}

	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	var source telemetry.Source = telemetry.NewSimulator()
	if live, _ := cmd.Flags().GetBool("live"); live {
		source = telemetry.NewHostSource()
	}
	samples := captureWindow(source, count, cfg.TickIntervalOrDefault())

	// The same offline guard the console applies: no outbound call when the
	// link is down.
	var prober *netstate.Prober
	if cfg.ProbeTarget != "" {
		prober = netstate.NewProber(cfg.ProbeTarget)
	} else {
		prober = netstate.NewProber()
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), probeTimeout)
	online := prober.Check(ctx)
	cancel()

	analyzer := diagnostics.NewGeminiAnalyzer(apiKey, cfg.ModelOrDefault())

	var audit auditlog.Repository
	if repo, err := auditlog.Open(); err == nil {
		audit = repo
		defer repo.Close()
	}
	service := diagnostics.NewService(analyzer, audit)

	var result *diagnostics.Result
	var runErr error
	run := func() {
		result, runErr = service.Run(cmd.Context(), online, samples)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		accessible := os.Getenv("ACCESSIBLE") != ""
		spinErr := spinner.New().
			Title("Analyzing telemetry...").
			Accessible(accessible).
			Output(cmd.ErrOrStderr()).
			Action(run).
			Run()
		if spinErr != nil {
			return spinErr
		}
	} else {
		run()
	}
	if runErr != nil {
		return runErr
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Status:         %s\n", result.Status)
	fmt.Fprintf(cmd.OutOrStdout(), "Summary:        %s\n", result.Summary)
	fmt.Fprintf(cmd.OutOrStdout(), "Recommendation: %s\n", result.Recommendation)
	return nil
}

// captureWindow builds a window of count samples ending now, spaced by the
// configured tick interval.
func captureWindow(source telemetry.Source, count int, interval time.Duration) []telemetry.Sample {
	samples := make([]telemetry.Sample, 0, count)
	start := time.Now().Add(-time.Duration(count-1) * interval)

	var prev *telemetry.Sample
	for i := range count {
		s := source.Next(prev, start.Add(time.Duration(i)*interval))
		samples = append(samples, s)
		prev = &samples[len(samples)-1]
	}
	return samples
}
