package components

import (
	"fmt"

	"orbitdeck/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// chartHeight is the fixed height for the focused metric plot.
const chartHeight = 6

// MetricChart renders a single-series plot with a label header. Used for the
// focused metric, which gets the full content width.
func MetricChart(label string, data []float64, width int, suffix string) string {
	if len(data) == 0 {
		return styles.MutedText.Render(label + ": no data")
	}

	// Reserve space for Y-axis labels (number + " ┤" ≈ 9 chars).
	plotWidth := width - 9
	if plotWidth < 10 {
		plotWidth = 10
	}

	chart := asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.DodgerBlue),
		asciigraph.LabelColor(asciigraph.Default),
	)

	// Summary line: current (latest), min, max.
	current := data[len(data)-1]
	low, high := minMax(data)
	summary := styles.MutedText.Render(
		fmt.Sprintf("  cur: %s  min: %s  max: %s",
			formatValue(current, suffix),
			formatValue(low, suffix),
			formatValue(high, suffix),
		),
	)

	header := styles.Label.Render(label)
	return lipgloss.JoinVertical(lipgloss.Left, header, chart, summary)
}

// minMax returns the minimum and maximum values from a slice.
func minMax(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}
	low, high := data[0], data[0]
	for _, v := range data[1:] {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	return low, high
}

// formatValue renders a float with its unit suffix.
func formatValue(v float64, suffix string) string {
	return fmt.Sprintf("%.1f%s", v, suffix)
}
