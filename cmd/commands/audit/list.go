package audit

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"orbitdeck/internal/auditlog"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent diagnostics runs",
		Long: `List recent diagnostics runs stored locally.

Examples:
  orbitdeck audit list
  orbitdeck audit list --limit 50
  orbitdeck audit list -o json`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 25, "Number of runs to display")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}

	repo, err := auditlog.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	records, err := repo.List(limit)
	if err != nil {
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No diagnostics runs found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tMODEL\tSAMPLES\tOUTCOME\tDURATION\tVERDICT\tDETAIL")
	fmt.Fprintln(w, "----\t-----\t-------\t-------\t--------\t-------\t------")
	for _, record := range records {
		timeStr := record.Timestamp.Local().Format("2006-01-02 15:04:05")

		verdict := record.Status
		if record.Summary != "" {
			verdict += ": " + record.Summary
		}
		if verdict == "" {
			verdict = "-"
		}

		detail := record.Detail
		if detail == "" {
			detail = "-"
		}

		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			timeStr,
			record.Model,
			record.SampleCount,
			record.Outcome,
			formatDuration(record.DurationMs),
			verdict,
			detail,
		)
	}
	w.Flush()
	return nil
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}
