package components

import (
	"orbitdeck/internal/console"
	"orbitdeck/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders the most recent console entry as a one-line status strip
// between the content and footer, colored by its level.
func StatusBar(width int, entry console.Entry, ok bool) string {
	if !ok || entry.Message == "" {
		return ""
	}

	line := styles.MutedText.Render(entry.Clock()) + " " +
		styles.LevelStyle(entry.Level).Render(entry.Message)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(line)
}
