// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvierd/focusflow/internal/config"
	"github.com/xvierd/focusflow/internal/domain"
	"github.com/xvierd/focusflow/internal/ports"
	"github.com/xvierd/focusflow/internal/services"
)

// statusTTL is how long a status line stays up.
const statusTTL = 3 * time.Second

// callbackMsg carries a scheduler callback into the update loop.
type callbackMsg struct {
	fn func()
}

// clearStatusMsg drops the status line if nothing newer replaced it.
type clearStatusMsg struct {
	seq int
}

// gitContextMsg carries a finished branch lookup.
type gitContextMsg services.GitContext

type screen int

const (
	screenGate screen = iota
	screenBoard
	screenFlow
)

// Options wires the model to its collaborators.
type Options struct {
	Scheduler ports.Scheduler
	Dashboard services.DashboardOptions
	Theme     *services.ThemeService
	Themes    *config.ThemeConfig
	Notifier  ports.Notifier
	Git       ports.GitDetector
	// CopyText writes to the system clipboard. Defaults to atotto/clipboard.
	CopyText func(string) error
}

// Model is the root bubbletea model: the gate, then the dashboard and its
// flow-mode overlay.
type Model struct {
	opts  Options
	gate  *services.Gate
	dash  *services.Dashboard
	theme domain.Theme

	styles styles
	form   gateForm
	board  boardState
	flow   flowState

	width     int
	height    int
	status    string
	statusSeq int
}

// NewModel creates the root model showing the gate.
func NewModel(opts Options) Model {
	if opts.CopyText == nil {
		opts.CopyText = clipboard.WriteAll
	}
	theme := domain.ThemeLight
	if opts.Theme != nil {
		theme = opts.Theme.Current()
	}

	m := Model{
		opts:  opts,
		gate:  services.NewGate(),
		theme: theme,
		form:  newGateForm(),
		board: newBoardState(),
		flow:  newFlowState(),
	}
	m.styles = newStyles(resolvePalette(opts.Themes, theme))
	return m
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) screen() screen {
	switch {
	case m.dash == nil || !m.gate.Unlocked():
		return screenGate
	case m.dash.Session.InFocus():
		return screenFlow
	default:
		return screenBoard
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case callbackMsg:
		msg.fn()
		return m, nil
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case gitContextMsg:
		if m.dash != nil {
			m.dash.Session.BindContext(services.GitContext(msg))
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	switch m.screen() {
	case screenGate:
		return m.updateGate(msg)
	case screenFlow:
		return m.updateFlow(msg)
	default:
		return m.updateBoard(msg)
	}
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.screen() {
	case screenGate:
		return m.viewGate()
	case screenFlow:
		return m.viewFlow()
	default:
		return m.viewBoard()
	}
}

// Close cancels the dashboard's outstanding callbacks.
func (m Model) Close() {
	if m.dash != nil {
		m.dash.Close()
	}
}

func (m *Model) setStatus(format string, args ...any) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.status = fmt.Sprintf(format, args...)
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) resize() {
	m.board.resize(m.boardColumnWidth())
	m.flow.resize(m.width, m.height)
	m.refreshPreview()
}

func (m *Model) unlock(profile *domain.Profile) tea.Cmd {
	m.dash = services.NewDashboard(m.opts.Scheduler, m.opts.Dashboard, m.opts.Notifier, m.opts.Git)
	m.board = newBoardState()
	m.flow = newFlowState()
	m.form = newGateForm()
	m.resize()
	return m.setStatus("Welcome, %s", profile.FirstName())
}

func (m *Model) logout() tea.Cmd {
	if m.dash != nil {
		m.dash.Close()
	}
	m.dash = nil
	m.gate.Logout()
	m.form = newGateForm()
	return textinput.Blink
}

func (m *Model) toggleTheme() tea.Cmd {
	next := m.theme.Toggle()
	var err error
	if m.opts.Theme != nil {
		next, err = m.opts.Theme.Toggle(context.Background())
	}
	m.theme = next
	m.styles = newStyles(resolvePalette(m.opts.Themes, next))
	m.refreshPreview()

	if err != nil {
		log.Printf("tui: theme: %v", err)
		return m.setStatus("%s theme (not saved)", next.Label())
	}
	return m.setStatus("%s theme", next.Label())
}

func (m *Model) copyText(what, text string) tea.Cmd {
	if err := m.opts.CopyText(text); err != nil {
		log.Printf("tui: clipboard: %v", err)
		return m.setStatus("Clipboard unavailable")
	}
	return m.setStatus("Copied %s to clipboard", what)
}

// lookupContext runs the branch lookup off the update loop.
func (m Model) lookupContext() tea.Cmd {
	lookup := m.dash.Session.ContextLookup()
	if lookup == nil {
		return nil
	}
	return func() tea.Msg {
		return gitContextMsg(lookup())
	}
}
