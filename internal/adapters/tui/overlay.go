package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/focusflow/internal/domain"
)

// panelWidth is the width of the flow tools drawer.
const panelWidth = 36

// flowState holds the overlay's widgets. Timer and session state live in
// the dashboard services.
type flowState struct {
	scratch  textarea.Model
	progress progress.Model
}

func newFlowState() flowState {
	scratch := textarea.New()
	scratch.Placeholder = "Quick notes for this session..."
	scratch.ShowLineNumbers = false
	scratch.SetWidth(panelWidth - 6)
	scratch.SetHeight(8)

	bar := progress.New(progress.WithoutPercentage())
	bar.Width = 40

	return flowState{scratch: scratch, progress: bar}
}

func (f *flowState) resize(width, height int) {
	f.progress.Width = min(max(width-panelWidth-10, 20), 60)
	f.scratch.SetHeight(max(height-16, 4))
}

func (m Model) updateFlow(msg tea.Msg) (tea.Model, tea.Cmd) {
	session := m.dash.Session
	timer := m.dash.Timer
	key, isKey := msg.(tea.KeyMsg)

	if session.PanelOpen() {
		if isKey {
			switch key.String() {
			case "esc", "tab":
				session.SetScratch(m.flow.scratch.Value())
				m.flow.scratch.Blur()
				session.TogglePanel()
				return m, nil
			case "ctrl+y":
				return m, m.copyText("session notes", m.flow.scratch.Value())
			case "ctrl+p":
				timer.Toggle()
				return m, nil
			case "ctrl+r":
				timer.Reset()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.flow.scratch, cmd = m.flow.scratch.Update(msg)
		return m, cmd
	}

	if !isKey {
		return m, nil
	}

	switch key.String() {
	case " ", "p", "enter":
		timer.Toggle()
	case "r":
		timer.Reset()
	case "tab":
		session.TogglePanel()
		m.flow.scratch.SetValue(session.Scratch())
		return m, m.flow.scratch.Focus()
	case "esc", "q":
		session.ExitFocus()
		m.clampCursor()
	}
	return m, nil
}

func (m Model) viewFlow() string {
	s := m.styles
	session := m.dash.Session
	timer := m.dash.Timer
	state := timer.State()

	mainWidth := m.width - 4
	if session.PanelOpen() {
		mainWidth -= panelWidth
	}

	clock := lipgloss.Color(s.palette.Muted)
	if state.Running() {
		clock = lipgloss.Color(s.palette.Accent)
	}

	m.flow.progress.FullColor = s.palette.Accent
	m.flow.progress.EmptyColor = s.palette.Border
	minute := float64(state.ElapsedSeconds%60) / 60

	lines := []string{
		s.accent.Render("FLOW MODE"),
		"",
		s.header.Render(session.Title()),
	}
	if branch := session.FocusContext(); branch != "" {
		lines = append(lines, s.muted.Render("⎇ "+branch))
	}
	lines = append(lines,
		"",
		renderBigTime(timer.Display(), clock, mainWidth),
		"",
		m.flow.progress.ViewAs(minute),
		s.muted.Render(domain.GetTimerStatusLabel(state.Status)),
		"",
		s.selected.Render("[space] "+timer.ButtonLabel()),
		"",
		s.help.Render("[r] reset  [tab] tools  [esc] exit flow mode"),
	)
	if m.status != "" {
		lines = append(lines, s.accent.Render(m.status))
	}

	main := lipgloss.Place(mainWidth, max(m.height-2, len(lines)),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))

	if !session.PanelOpen() {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, main, m.viewFlowPanel())
}

func (m Model) viewFlowPanel() string {
	s := m.styles
	timer := m.dash.Timer

	body := []string{
		s.title.Render("Flow Tools"),
		s.header.Render("Timer Control"),
		s.text.Render(timer.Display()) + "  " + s.muted.Render(timer.ButtonLabel()),
		s.help.Render("[ctrl+p] " + strings.ToLower(timer.ButtonLabel()) + "  [ctrl+r] reset"),
		"",
		s.header.Render("Scratchpad"),
		m.flow.scratch.View(),
		s.help.Render("[ctrl+y] copy  [esc] close"),
	}
	return s.panel.Width(panelWidth).Height(max(m.height-2, 0)).Render(strings.Join(body, "\n"))
}
