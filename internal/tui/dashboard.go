// Package tui implements the full-screen mission console: four telemetry
// cards, a focused chart, the diagnostics panel and the scrolling console
// feed, all driven by one Bubbletea event loop.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"orbitdeck/internal/console"
	"orbitdeck/internal/diagnostics"
	"orbitdeck/internal/netstate"
	"orbitdeck/internal/telemetry"
	"orbitdeck/internal/tui/components"
	"orbitdeck/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// probeInterval is how often physical connectivity is re-checked.
const probeInterval = 10 * time.Second

// --- Messages ---

type sampleTickMsg time.Time

type probeTickMsg time.Time

type probeResultMsg struct {
	up bool
}

type analysisDoneMsg struct {
	result *diagnostics.Result
}

type analysisErrorMsg struct {
	err error
}

// --- Options ---

// DashboardOptions carries the collaborators the dashboard is built from.
type DashboardOptions struct {
	Source  telemetry.Source
	Tracker *netstate.Tracker
	Prober  *netstate.Prober
	Service *diagnostics.Service

	// TickInterval is the sampling cadence. Zero falls back to 2s.
	TickInterval time.Duration
}

// --- Dashboard model ---

type dashboardModel struct {
	source       telemetry.Source
	tracker      *netstate.Tracker
	prober       *netstate.Prober
	service      *diagnostics.Service
	tickInterval time.Duration

	history     *telemetry.History
	feed        *console.Feed
	lastUpdated time.Time

	// focused indexes telemetry.Metrics; the focused metric gets the large
	// chart.
	focused int

	// Last analysis verdict, replaced wholesale on each successful run.
	analysis  *diagnostics.Result
	analyzing bool

	// dialog, when non-empty, blocks input behind a centered modal.
	dialog string

	width  int
	height int

	spinner  spinner.Model
	viewport viewport.Model

	// followTail keeps the console pinned to the newest entry until the
	// user scrolls away.
	followTail bool

	quitting bool
}

// consoleViewportKeyMap limits viewport scrolling to keys that do not clash
// with the dashboard's own bindings.
func consoleViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		HalfPageUp:   key.NewBinding(key.WithDisabled()),
		HalfPageDown: key.NewBinding(key.WithDisabled()),
		Left:         key.NewBinding(key.WithDisabled()),
		Right:        key.NewBinding(key.WithDisabled()),
	}
}

func newDashboardModel(opts DashboardOptions) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	vp := viewport.New(0, 0)
	vp.KeyMap = consoleViewportKeyMap()

	interval := opts.TickInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	feed := console.NewFeed(console.FeedCapacity)
	feed.Append(console.LevelInfo, "system", "Console initialized. Awaiting telemetry.")
	if !opts.Tracker.Online() {
		feed.Append(console.LevelWarning, "network", "Starting offline; live feed paused")
	}

	return dashboardModel{
		source:       opts.Source,
		tracker:      opts.Tracker,
		prober:       opts.Prober,
		service:      opts.Service,
		tickInterval: interval,
		history:      telemetry.NewHistory(telemetry.WindowCapacity),
		feed:         feed,
		spinner:      s,
		viewport:     vp,
		followTail:   true,
	}
}

// RunDashboard starts the full-window mission console.
func RunDashboard(opts DashboardOptions) error {
	m := newDashboardModel(opts)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func (m dashboardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.scheduleSample()}
	if m.prober != nil {
		cmds = append(cmds, m.scheduleProbe())
	}
	return tea.Batch(cmds...)
}

// --- Commands ---

func (m dashboardModel) scheduleSample() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return sampleTickMsg(t)
	})
}

func (m dashboardModel) scheduleProbe() tea.Cmd {
	return tea.Tick(probeInterval, func(t time.Time) tea.Msg {
		return probeTickMsg(t)
	})
}

func (m dashboardModel) runProbe() tea.Cmd {
	prober := m.prober
	return func() tea.Msg {
		return probeResultMsg{up: prober.Check(context.Background())}
	}
}

func (m dashboardModel) runAnalysis() tea.Cmd {
	service := m.service
	online := m.tracker.Online()
	samples := m.history.Samples()
	return func() tea.Msg {
		result, err := service.Run(context.Background(), online, samples)
		if err != nil {
			return analysisErrorMsg{err: err}
		}
		return analysisDoneMsg{result: result}
	}
}

// --- Update ---

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncConsole()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.viewport, _ = m.viewport.Update(msg)
		m.followTail = m.viewport.AtBottom()
		return m, nil

	case sampleTickMsg:
		// Offline ticks are no-ops; the timer keeps running either way.
		if m.tracker.Online() {
			m.captureSample(time.Time(msg))
		}
		return m, m.scheduleSample()

	case probeTickMsg:
		return m, tea.Batch(m.runProbe(), m.scheduleProbe())

	case probeResultMsg:
		if transition := m.tracker.SetLink(msg.up); transition != nil {
			m.feed.Append(transition.Level, "network", transition.Message)
			m.syncConsole()
		}
		return m, nil

	case analysisDoneMsg:
		m.analyzing = false
		m.analysis = msg.result
		m.feed.Append(console.LevelSuccess, "diagnostics",
			fmt.Sprintf("Diagnostics complete: %s. %s", msg.result.Status, msg.result.Summary))
		m.syncConsole()
		return m, nil

	case analysisErrorMsg:
		m.analyzing = false
		m.feed.Append(console.LevelError, "diagnostics", "Diagnostics failed: "+msg.err.Error())
		m.syncConsole()
		return m, nil

	case spinner.TickMsg:
		if m.analyzing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// captureSample pulls one new reading from the source and records it.
func (m *dashboardModel) captureSample(now time.Time) {
	var prev *telemetry.Sample
	if latest, ok := m.history.Latest(); ok {
		prev = &latest
	}
	sample := m.source.Next(prev, now)
	m.history.Append(sample)
	m.lastUpdated = sample.Timestamp
}

// --- Key handling ---

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// A modal dialog swallows everything until dismissed.
	if m.dialog != "" {
		switch msg.String() {
		case "enter", "esc", "q":
			m.dialog = ""
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "o":
		transition := m.tracker.SetOverride(!m.tracker.Override())
		m.feed.Append(transition.Level, "network", transition.Message)
		m.syncConsole()
		return m, nil

	case "r":
		if !m.tracker.Online() {
			m.dialog = "Cannot refresh while offline.\nRestore connectivity or disable the simulated outage first."
			return m, nil
		}
		m.captureSample(time.Now())
		m.feed.Append(console.LevelInfo, "telemetry", "Manual refresh: new sample captured")
		m.syncConsole()
		return m, nil

	case "a":
		if m.analyzing {
			return m, nil
		}
		if !m.tracker.Online() {
			m.feed.Append(console.LevelError, "diagnostics", "Cannot run diagnostics while offline")
			m.syncConsole()
			return m, nil
		}
		if m.history.Len() == 0 {
			m.feed.Append(console.LevelWarning, "diagnostics", "No telemetry captured yet; nothing to analyze")
			m.syncConsole()
			return m, nil
		}
		m.analyzing = true
		m.feed.Append(console.LevelInfo, "diagnostics", "Running diagnostics on recent telemetry")
		m.syncConsole()
		return m, tea.Batch(m.spinner.Tick, m.runAnalysis())

	case "tab":
		m.focused = (m.focused + 1) % len(telemetry.Metrics)
		return m, nil

	case "G", "end":
		m.followTail = true
		m.viewport.GotoBottom()
		return m, nil

	case "up", "down", "k", "j", "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.followTail = m.viewport.AtBottom()
		return m, cmd
	}

	return m, nil
}

// --- View ---

func (m dashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	statusBar := m.renderStatusBar()

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := 0
	if statusBar != "" {
		statusH = lipgloss.Height(statusBar)
	}
	contentH := max(m.height-headerH-footerH-statusH, 1)

	var content string
	if m.dialog != "" {
		content = m.renderDialog(contentH)
	} else {
		content = m.renderContent(contentH)
	}

	sections := []string{header, content}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m dashboardModel) renderHeader() string {
	right := styles.NetworkIndicator(m.tracker.Effective())
	if !m.lastUpdated.IsZero() {
		right += styles.MutedText.Render("  updated " + m.lastUpdated.Format("15:04:05"))
	}
	return components.Header(m.width, "dashboard", right)
}

func (m dashboardModel) renderFooter() string {
	outageDesc := "simulate outage"
	if m.tracker.Override() {
		outageDesc = "end outage"
	}
	return components.Footer(m.width, []components.KeyBinding{
		{Key: "r", Desc: "refresh"},
		{Key: "o", Desc: outageDesc},
		{Key: "a", Desc: "diagnostics"},
		{Key: "tab", Desc: "focus metric"},
		{Key: "j/k", Desc: "scroll log"},
		{Key: "q", Desc: "quit"},
	})
}

func (m dashboardModel) renderStatusBar() string {
	latest, hasLatest := m.feed.Latest()
	return components.StatusBar(m.width, latest, hasLatest)
}

func (m dashboardModel) renderDialog(height int) string {
	body := styles.WarningText.Render("Refresh blocked") + "\n\n" +
		styles.Value.Render(m.dialog) + "\n\n" +
		styles.MutedText.Render("press enter to dismiss")
	card := styles.CardActive.Render(body)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, card)
}

func (m dashboardModel) renderContent(height int) string {
	const hPad = 2
	usableWidth := max(m.width-hPad*2, 40)

	cards := m.renderMetricCards(usableWidth)
	chart := m.renderFocusedChart(usableWidth)
	panel := m.renderAnalysisPanel(usableWidth)
	feed := m.renderConsole(usableWidth)

	body := lipgloss.JoinVertical(lipgloss.Left, cards, chart, panel, feed)
	return lipgloss.NewStyle().PaddingLeft(hPad).Render(body)
}

func (m dashboardModel) renderMetricCards(width int) string {
	n := len(telemetry.Metrics)
	cardWidth := max(width/n, 16)

	rendered := make([]string, 0, n)
	for i, metric := range telemetry.Metrics {
		data := m.history.Series(metric)
		rendered = append(rendered, components.MetricCard(metric, data, cardWidth, i == m.focused))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m dashboardModel) renderFocusedChart(width int) string {
	metric := telemetry.Metrics[m.focused]
	data := m.history.Series(metric)

	chartWidth := max(width-6, 20)
	chart := components.MetricChart(metric.Label(), data, chartWidth, metric.Unit())
	return styles.Card.Width(width).Render(chart)
}

func (m dashboardModel) renderAnalysisPanel(width int) string {
	title := styles.Subtitle.Render("Diagnostics")

	var body string
	switch {
	case m.analyzing:
		body = m.spinner.View() + "  " + styles.MutedText.Render("Analyzing recent telemetry…")
	case m.analysis != nil:
		body = styles.AnalysisIndicator(m.analysis.Status) + "\n" +
			styles.Value.Render(m.analysis.Summary) + "\n" +
			styles.MutedText.Render("Recommendation: "+m.analysis.Recommendation)
	default:
		body = styles.MutedText.Render("No analysis yet. Press a to run diagnostics.")
	}

	return styles.Card.Width(width).Render(title + "\n\n" + body)
}

func (m dashboardModel) renderConsole(width int) string {
	title := styles.Subtitle.Render("Console")
	return styles.Card.Width(width).Render(title + "\n\n" + m.viewport.View())
}

// syncConsole resizes the persistent viewport to the space the console card
// will get and reloads the feed into it. Update() calls this whenever the
// window, the feed, or a section above the console changes; View() only
// reads the viewport.
func (m *dashboardModel) syncConsole() {
	if m.width == 0 || m.height == 0 {
		return
	}

	w, h := m.consoleInnerSize()
	m.viewport.Width = w
	m.viewport.Height = h
	m.viewport.SetContent(m.consoleLines())
	if m.followTail {
		m.viewport.GotoBottom()
	}
}

// consoleInnerSize mirrors View's layout math: the console viewport gets the
// vertical space left after the header, status bar, footer, metric cards,
// chart and diagnostics panel, minus the console card's own chrome.
func (m dashboardModel) consoleInnerSize() (int, int) {
	const hPad = 2
	usableWidth := max(m.width-hPad*2, 40)

	chromeH := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderFooter())
	if bar := m.renderStatusBar(); bar != "" {
		chromeH += lipgloss.Height(bar)
	}
	contentH := max(m.height-chromeH, 1)

	usedH := lipgloss.Height(m.renderMetricCards(usableWidth)) +
		lipgloss.Height(m.renderFocusedChart(usableWidth)) +
		lipgloss.Height(m.renderAnalysisPanel(usableWidth))
	consoleH := max(contentH-usedH, 4)

	// Card overhead: border + padding plus the title and blank line.
	return max(usableWidth-6, 20), max(consoleH-5, 3)
}

func (m dashboardModel) consoleLines() string {
	entries := m.feed.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		stamp := styles.MutedText.Render(e.Clock())
		level := styles.LevelStyle(e.Level).Render(fmt.Sprintf("%-7s", strings.ToUpper(string(e.Level))))
		lines = append(lines, stamp+" "+level+" "+styles.Value.Render(e.Message))
	}
	return strings.Join(lines, "\n")
}
