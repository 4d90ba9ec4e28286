package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typeracer/internal/quote"
	"github.com/verte-zerg/typeracer/internal/race"
)

type screen int

const (
	screenWelcome screen = iota
	screenLoading
	screenRacing
	screenResults
	screenError
)

// DefaultRefresh is how often the stats bar updates while racing.
const DefaultRefresh = 100 * time.Millisecond

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = pendingStyle.Underline(true)
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#5AC8FA")).Bold(true)
	statsStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	promptStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#B88AE8")).Bold(true)
)

// Model implements the Bubble Tea racing UI.
type Model struct {
	provider quote.Provider
	refresh  time.Duration

	session *race.Session
	screen  screen
	errMsg  string

	spin spinner.Model
	bar  progress.Model

	width  int
	height int
}

type sessionMsg struct {
	session *race.Session
}

type fetchErrMsg struct {
	err error
}

type tickMsg time.Time

// NewModel constructs a racing TUI model on top of the given provider.
func NewModel(provider quote.Provider, refresh time.Duration) *Model {
	if refresh <= 0 {
		refresh = DefaultRefresh
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statsStyle
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	return &Model{
		provider: provider,
		refresh:  refresh,
		screen:   screenWelcome,
		spin:     sp,
		bar:      bar,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := m.width - 8
		if barWidth > 80 {
			barWidth = 80
		}
		if barWidth < 4 {
			barWidth = 4
		}
		m.bar.Width = barWidth
		return m, nil
	case sessionMsg:
		m.session = msg.session
		m.screen = screenRacing
		return m, m.tick()
	case fetchErrMsg:
		m.errMsg = msg.err.Error()
		m.screen = screenError
		return m, nil
	case tickMsg:
		if m.screen != screenRacing {
			return m, nil
		}
		// Re-render only; the session is untouched by idle ticks.
		return m, m.tick()
	case spinner.TickMsg:
		if m.screen != screenLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
		return m, tea.Quit
	}
	switch m.screen {
	case screenWelcome, screenError:
		return m, m.startRace()
	case screenLoading:
		return m, nil
	case screenRacing:
		switch msg.Type {
		case tea.KeyBackspace, tea.KeyDelete:
			m.session.Backspace()
		case tea.KeySpace:
			m.session.TypeChar(' ')
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.session.TypeChar(r)
			}
		}
		if m.session.Finished() {
			m.screen = screenResults
		}
		return m, nil
	case screenResults:
		// Any key races again; only esc quits (handled above).
		return m, m.startRace()
	}
	return m, nil
}

func (m *Model) startRace() tea.Cmd {
	m.screen = screenLoading
	fetch := func() tea.Msg {
		if m.session == nil {
			s, err := race.New(context.Background(), m.provider)
			if err != nil {
				return fetchErrMsg{err: err}
			}
			return sessionMsg{session: s}
		}
		if err := m.session.Reset(context.Background()); err != nil {
			return fetchErrMsg{err: err}
		}
		return sessionMsg{session: m.session}
	}
	return tea.Batch(m.spin.Tick, fetch)
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.screen {
	case screenWelcome:
		content = m.viewWelcome()
	case screenLoading:
		content = m.viewLoading()
	case screenRacing:
		content = m.viewRacing()
	case screenResults:
		content = m.viewResults()
	case screenError:
		content = m.viewError()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) viewWelcome() string {
	lines := []string{
		titleStyle.Render("TYPERACER"),
		"",
		dimStyle.Render("Test your typing speed!"),
		"",
		statsStyle.Render("HOW TO PLAY"),
		dimStyle.Render("Type the displayed text as fast and accurately as you can."),
		dimStyle.Render("Your WPM and accuracy are tracked in real time."),
		"",
		dimStyle.Render("Backspace   delete last character"),
		dimStyle.Render("Escape      quit the game"),
		"",
		promptStyle.Render("Press any key to start..."),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewLoading() string {
	return m.spin.View() + " " + dimStyle.Render("Fetching a passage...")
}

func (m *Model) viewRacing() string {
	stats := m.session.Stats()

	header := titleStyle.Render("TYPERACER")
	statsLine := renderStatsLine(stats, m.session.Started())
	barLine := m.bar.ViewAs(stats.Progress / 100)

	contentWidth := m.width - 6
	if contentWidth > 80 || contentWidth <= 0 {
		contentWidth = 80
	}
	styled := buildStyledRunes(m.session.Target(), m.session.Classes())
	text := wrapStyledRunes(styled, contentWidth)
	author := dimStyle.Render("— " + m.session.Author())
	hint := dimStyle.Render("esc quit · backspace correct")

	return strings.Join([]string{header, "", statsLine, barLine, "", text, author, "", hint}, "\n")
}

func renderStatsLine(stats race.Stats, started bool) string {
	if !started {
		return statsStyle.Render("WPM   ---  ACC   ---") + dimStyle.Render("  TIME   0.0s    0%")
	}
	left := statsStyle.Render(fmt.Sprintf("WPM %5.1f  ACC %5.1f%%", stats.WPM, stats.Accuracy))
	right := dimStyle.Render(fmt.Sprintf("  TIME %5.1fs  %3.0f%%", stats.Elapsed.Seconds(), stats.Progress))
	return left + right
}

func (m *Model) viewResults() string {
	stats := m.session.Stats()
	rows := []struct {
		label string
		value string
	}{
		{"WPM", fmt.Sprintf("%.1f", stats.WPM)},
		{"Raw WPM", fmt.Sprintf("%.1f", stats.RawWPM)},
		{"Accuracy", fmt.Sprintf("%.1f%%", stats.Accuracy)},
		{"Time", fmt.Sprintf("%.1fs", stats.Elapsed.Seconds())},
		{"Characters", fmt.Sprintf("%d/%d", stats.CorrectChars, len(m.session.Target()))},
		{"Keystrokes", fmt.Sprintf("%d", stats.Keystrokes)},
		{"Author", m.session.Author()},
	}

	lines := []string{titleStyle.Render("RACE COMPLETE"), ""}
	for _, row := range rows {
		lines = append(lines,
			dimStyle.Render(fmt.Sprintf("%12s  ", row.label))+statsStyle.Render(row.value))
	}
	lines = append(lines, "", ratingFor(stats.WPM), "",
		promptStyle.Render("Press any key to race again · esc to quit"))
	return strings.Join(lines, "\n")
}

func ratingFor(wpm float64) string {
	switch {
	case wpm >= 100:
		return promptStyle.Render("LEGENDARY")
	case wpm >= 80:
		return titleStyle.Render("BLAZING FAST")
	case wpm >= 60:
		return statsStyle.Render("IMPRESSIVE")
	case wpm >= 40:
		return correctStyle.Render("SOLID")
	case wpm >= 25:
		return pendingStyle.Render("KEEP PRACTICING")
	default:
		return dimStyle.Render("WARMING UP")
	}
}

func (m *Model) viewError() string {
	lines := []string{
		errorStyle.Render("Could not fetch a passage"),
		"",
		dimStyle.Render(m.errMsg),
		"",
		promptStyle.Render("Press any key to retry · esc to quit"),
	}
	return strings.Join(lines, "\n")
}
