package components

import (
	"fmt"

	"orbitdeck/internal/telemetry"
	"orbitdeck/internal/tui/styles"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"
)

// sparklineHeight is the fixed height of the card sparkline.
const sparklineHeight = 3

// MetricCard renders one compact telemetry card: label, current reading and a
// sparkline of the retained window. The focused card gets an accent border.
func MetricCard(metric telemetry.Metric, data []float64, width int, focused bool) string {
	cardStyle := styles.Card.Width(width)
	if focused {
		cardStyle = styles.CardActive.Width(width)
	}

	// Card has Border(1 each side) + Padding(2 each side) = 6 horizontal
	// overhead.
	innerWidth := max(width-6, 8)

	header := styles.Label.Render(metric.Label())

	reading := styles.MutedText.Render("--")
	if len(data) > 0 {
		reading = styles.Value.Bold(true).Render(
			fmt.Sprintf("%.1f%s", data[len(data)-1], metric.Unit()),
		)
	}

	spark := styles.MutedText.Render("no data")
	if len(data) > 0 {
		sl := sparkline.New(innerWidth, sparklineHeight,
			sparkline.WithMaxValue(metric.Max()),
			sparkline.WithStyle(lipgloss.NewStyle().Foreground(styles.Blue)),
		)
		sl.PushAll(data)
		sl.Draw()
		spark = sl.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, reading, spark)
	return cardStyle.Render(content)
}
