package styles

import (
	"github.com/charmbracelet/lipgloss"

	"orbitdeck/internal/console"
	"orbitdeck/internal/diagnostics"
	"orbitdeck/internal/netstate"
)

// --- Typography ---

var (
	// Title is the main header text style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Subtitle is used for secondary headings.
	Subtitle = lipgloss.NewStyle().
			Foreground(Gray)

	// Label is used for field names in detail views.
	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	// Value is used for field values in detail views.
	Value = lipgloss.NewStyle().
		Foreground(White)

	// MutedText is for help text, hints, and less important info.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// AccentText is for highlighted interactive elements.
	AccentText = lipgloss.NewStyle().
			Foreground(Blue)

	// ErrorText is for error messages.
	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// SuccessText is for success messages.
	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// WarningText is for warning messages.
	WarningText = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)
)

// --- Status badges ---

// NetworkStyle returns the style for an effective network status.
func NetworkStyle(status netstate.Status) lipgloss.Style {
	switch status {
	case netstate.StatusOnline:
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	case netstate.StatusReconnecting:
		return lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	case netstate.StatusOffline:
		return lipgloss.NewStyle().Foreground(Red).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(Gray)
	}
}

// NetworkIndicator returns a small dot + status text with appropriate color.
func NetworkIndicator(status netstate.Status) string {
	style := NetworkStyle(status)
	dot := style.Render("●")
	text := style.Render(string(status))
	return dot + " " + text
}

// LevelStyle returns the style for a console log level.
func LevelStyle(level console.Level) lipgloss.Style {
	switch level {
	case console.LevelError:
		return lipgloss.NewStyle().Foreground(Red)
	case console.LevelWarning:
		return lipgloss.NewStyle().Foreground(Yellow)
	case console.LevelSuccess:
		return lipgloss.NewStyle().Foreground(Green)
	default:
		return lipgloss.NewStyle().Foreground(White)
	}
}

// AnalysisStyle returns the style for an analysis verdict.
func AnalysisStyle(status diagnostics.Status) lipgloss.Style {
	switch status {
	case diagnostics.StatusOptimal:
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	case diagnostics.StatusWarning:
		return lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	case diagnostics.StatusCritical:
		return lipgloss.NewStyle().Foreground(Red).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(Gray)
	}
}

// AnalysisIndicator returns a dot + verdict text with appropriate color.
func AnalysisIndicator(status diagnostics.Status) string {
	style := AnalysisStyle(status)
	return style.Render("●") + " " + style.Render(string(status))
}

// --- Layout components ---

var (
	// Border is the default subtle border style.
	Border = lipgloss.RoundedBorder()

	// Card is a rounded-border panel for content sections.
	Card = lipgloss.NewStyle().
		Border(Border).
		BorderForeground(DimGray).
		Padding(1, 2)

	// CardActive is a card with an accent border for focused elements.
	CardActive = lipgloss.NewStyle().
			Border(Border).
			BorderForeground(Blue).
			Padding(1, 2)
)

// --- Key binding hint styles ---

var (
	// KeyStyle is used for key labels in the footer (e.g. "q").
	KeyStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	// KeyDescStyle is used for key descriptions in the footer (e.g. "quit").
	KeyDescStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// KeySepStyle is used for separators between key bindings.
	KeySepStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// FormatKeyBinding formats a single key binding for the footer.
func FormatKeyBinding(key, desc string) string {
	return KeyStyle.Render(key) + " " + KeyDescStyle.Render(desc)
}

// --- Layout helpers ---

// CenterText centers text horizontally within the given width.
func CenterText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(text)
}
