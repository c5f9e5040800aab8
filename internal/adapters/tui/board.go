package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/xvierd/focusflow/internal/domain"
)

type pane int

const (
	paneTasks pane = iota
	paneGoal
	paneNotes
	paneCount
)

type inputMode int

const (
	inputNone inputMode = iota
	inputAddTask
	inputFilter
	inputGoal
	inputNotes
)

// wideLayout is the width from which the cards sit side by side.
const wideLayout = 100

// boardState is the dashboard's view state. Everything it shows comes from
// services.Dashboard; this only tracks focus and the open editors.
type boardState struct {
	pane   pane
	cursor int
	mode   inputMode
	filter string

	taskInput   textinput.Model
	filterInput textinput.Model
	goalInput   textinput.Model
	notes       textarea.Model

	preview  bool
	rendered string
}

func newBoardState() boardState {
	task := textinput.New()
	task.Prompt = "+ "
	task.Placeholder = "Add a new task..."
	task.CharLimit = 200

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter tasks"

	goal := textinput.New()
	goal.Prompt = "› "
	goal.Placeholder = "What's your main focus today?"
	goal.CharLimit = 120

	notes := textarea.New()
	notes.Placeholder = "Jot down your thoughts..."
	notes.ShowLineNumbers = false
	notes.CharLimit = 0

	return boardState{
		taskInput:   task,
		filterInput: filter,
		goalInput:   goal,
		notes:       notes,
	}
}

func (b *boardState) resize(column int) {
	inner := max(column-4, 10)
	b.taskInput.Width = inner - 2
	b.filterInput.Width = inner - 2
	b.goalInput.Width = inner - 2
	b.notes.SetWidth(inner)
	b.notes.SetHeight(8)
}

func (m Model) boardColumnWidth() int {
	w := m.width - 4
	if w >= wideLayout {
		return (w - 2) / 3
	}
	return w
}

func (m Model) visibleTasks() []domain.Task {
	return m.dash.Tasks.Filter(m.board.filter)
}

func (m Model) selectedTask() (domain.Task, bool) {
	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		return domain.Task{}, false
	}
	return tasks[min(m.board.cursor, len(tasks)-1)], true
}

func (m *Model) clampCursor() {
	n := len(m.visibleTasks())
	if m.board.cursor >= n {
		m.board.cursor = n - 1
	}
	if m.board.cursor < 0 {
		m.board.cursor = 0
	}
}

// abandonConfirmation drops an armed delete or clear once the user starts
// something else.
func (m *Model) abandonConfirmation() {
	if _, pending := m.dash.Confirmations().Pending(); pending {
		m.dash.Confirmations().Cancel()
	}
}

func (m *Model) refreshPreview() {
	if !m.board.preview || m.dash == nil {
		m.board.rendered = ""
		return
	}
	out, err := renderMarkdown(m.dash.Notes.Text(), max(m.boardColumnWidth()-4, 20), m.theme)
	if err != nil {
		log.Printf("tui: markdown preview: %v", err)
		out = m.dash.Notes.Text()
	}
	m.board.rendered = out
}

func renderMarkdown(text string, width int, theme domain.Theme) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(string(theme)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(text)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.board.mode != inputNone {
		return m.updateBoardInput(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.board.pane = (m.board.pane + 1) % paneCount
		return m, nil
	case "shift+tab":
		m.board.pane = (m.board.pane + paneCount - 1) % paneCount
		return m, nil
	case "esc":
		if _, pending := m.dash.Confirmations().Pending(); pending {
			m.dash.Tasks.CancelConfirmation()
		} else {
			m.board.filter = ""
			m.board.filterInput.Reset()
		}
		return m, nil
	case "F":
		m.abandonConfirmation()
		m.dash.StartActiveFocus()
		return m, m.lookupContext()
	case "t":
		return m, m.toggleTheme()
	case "L":
		return m, m.logout()
	}

	switch m.board.pane {
	case paneTasks:
		return m.updateTasksPane(key)
	case paneGoal:
		return m.updateGoalPane(key)
	default:
		return m.updateNotesPane(key)
	}
}

func (m Model) updateTasksPane(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "j", "down":
		m.board.cursor++
		m.clampCursor()
	case "k", "up":
		m.board.cursor--
		m.clampCursor()
	case " ", "enter":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		// Toggling the task that is waiting on its delete stays blocked.
		if !m.dash.Tasks.ConfirmingDelete(task.ID) {
			m.abandonConfirmation()
		}
		m.dash.Tasks.Toggle(task.ID)
	case "x", "d":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		if m.dash.Tasks.ConfirmingDelete(task.ID) {
			m.dash.Tasks.ConfirmDelete(task.ID)
			m.clampCursor()
		} else {
			m.dash.Tasks.RequestDelete(task.ID)
		}
	case "a", "n":
		m.abandonConfirmation()
		m.board.mode = inputAddTask
		m.board.taskInput.Reset()
		return m, m.board.taskInput.Focus()
	case "/":
		m.abandonConfirmation()
		m.board.mode = inputFilter
		m.board.filterInput.SetValue(m.board.filter)
		return m, m.board.filterInput.Focus()
	case "f":
		if task, ok := m.selectedTask(); ok {
			m.abandonConfirmation()
			m.dash.StartFocus(task.ID)
			return m, m.lookupContext()
		}
	}
	return m, nil
}

func (m Model) updateGoalPane(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	goal := m.dash.Goal.Goal()

	switch key.String() {
	case " ", "enter":
		m.abandonConfirmation()
		if !goal.IsSet() {
			m.board.mode = inputGoal
			m.board.goalInput.Reset()
			return m, m.board.goalInput.Focus()
		}
		if m.dash.Goal.ToggleCompleted() && m.dash.Goal.Goal().Completed {
			return m, m.setStatus("Goal Accomplished!")
		}
	case "e":
		m.abandonConfirmation()
		m.board.mode = inputGoal
		m.board.goalInput.SetValue(goal.Text)
		return m, m.board.goalInput.Focus()
	case "x", "d":
		if m.dash.Goal.ConfirmingClear() {
			m.dash.Goal.ConfirmClear()
		} else {
			m.dash.Goal.RequestClear()
		}
	}
	return m, nil
}

func (m Model) updateNotesPane(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "e", "enter":
		m.abandonConfirmation()
		m.board.mode = inputNotes
		m.board.preview = false
		m.board.rendered = ""
		m.board.notes.SetValue(m.dash.Notes.Text())
		return m, m.board.notes.Focus()
	case "p":
		m.board.preview = !m.board.preview
		m.refreshPreview()
	case "y":
		return m, m.copyText("scratchpad", m.dash.Notes.Text())
	}
	return m, nil
}

func (m Model) updateBoardInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)

	if m.board.mode == inputNotes {
		if isKey && key.Type == tea.KeyEsc {
			m.dash.Notes.SetText(m.board.notes.Value())
			m.board.notes.Blur()
			m.board.mode = inputNone
			return m, nil
		}
		var cmd tea.Cmd
		m.board.notes, cmd = m.board.notes.Update(msg)
		return m, cmd
	}

	if isKey {
		switch key.Type {
		case tea.KeyEsc:
			if m.board.mode == inputFilter {
				m.board.filter = ""
				m.board.filterInput.Reset()
			}
			m.closeInput()
			return m, nil
		case tea.KeyEnter:
			m.commitInput()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.board.mode {
	case inputAddTask:
		m.board.taskInput, cmd = m.board.taskInput.Update(msg)
	case inputFilter:
		m.board.filterInput, cmd = m.board.filterInput.Update(msg)
		m.board.filter = m.board.filterInput.Value()
		m.board.cursor = 0
	case inputGoal:
		m.board.goalInput, cmd = m.board.goalInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) commitInput() {
	switch m.board.mode {
	case inputAddTask:
		if tasks, ok := m.dash.Tasks.Add(m.board.taskInput.Value()); ok {
			m.board.filter = ""
			m.board.filterInput.Reset()
			m.board.cursor = len(tasks) - 1
		}
	case inputGoal:
		m.dash.Goal.SetGoal(m.board.goalInput.Value())
	}
	m.closeInput()
}

func (m *Model) closeInput() {
	m.board.taskInput.Blur()
	m.board.filterInput.Blur()
	m.board.goalInput.Blur()
	m.board.taskInput.Reset()
	m.board.goalInput.Reset()
	m.board.mode = inputNone
	m.clampCursor()
}

func (m Model) viewBoard() string {
	s := m.styles
	col := m.boardColumnWidth()

	greeting := fmt.Sprintf("%s, %s", greetingFor(time.Now()), m.gate.Profile().FirstName())
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		s.header.Render("FocusFlow"), "   ",
		s.muted.Render(greeting), "   ",
		s.help.Render(m.theme.Label()+" theme"),
	)

	goal := m.viewGoalCard(m.width - 4)
	tasks := m.viewTasksCard(col)
	notes := m.viewNotesCard(col)
	timer := m.viewTimerCard(col)

	var cards string
	if m.width-4 >= wideLayout {
		cards = lipgloss.JoinHorizontal(lipgloss.Top, tasks, " ", notes, " ", timer)
	} else {
		cards = lipgloss.JoinVertical(lipgloss.Left, tasks, notes, timer)
	}

	footer := s.help.Render(m.boardHelp())
	if m.status != "" {
		footer = s.accent.Render(m.status) + "   " + footer
	}

	return s.app.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", goal, cards, "", footer))
}

func (m Model) card(p pane, width int, body string) string {
	style := m.styles.card
	if m.board.pane == p {
		style = m.styles.cardActive
	}
	return style.Width(width - 2).Render(body)
}

func (m Model) viewTasksCard(width int) string {
	s := m.styles
	inner := width - 4
	tasks := m.visibleTasks()

	title := fmt.Sprintf("To-Do List  %s", s.muted.Render(fmt.Sprintf("%d remaining", m.dash.Tasks.Remaining())))
	lines := []string{s.title.Render(title)}

	if m.board.mode == inputFilter {
		lines = append(lines, m.board.filterInput.View())
	} else if m.board.filter != "" {
		lines = append(lines, s.muted.Render("/ "+m.board.filter))
	}

	if len(tasks) == 0 {
		lines = append(lines, s.muted.Render("Nothing here."))
	}
	for i, task := range tasks {
		lines = append(lines, m.viewTaskRow(task, i == m.board.cursor && m.board.pane == paneTasks, inner))
	}

	if m.board.mode == inputAddTask {
		lines = append(lines, "", m.board.taskInput.View())
	}
	return m.card(paneTasks, width, strings.Join(lines, "\n"))
}

func (m Model) viewTaskRow(task domain.Task, selected bool, width int) string {
	s := m.styles

	marker := "  "
	if selected {
		marker = s.selected.Render("› ")
	}
	box := "[ ] "
	if task.Completed {
		box = s.success.Render("[✓] ")
	}

	text := runewidth.Truncate(task.Text, max(width-6, 4), "…")
	switch {
	case m.dash.Tasks.ConfirmingDelete(task.ID):
		return marker + s.danger.Render(runewidth.Truncate(domain.GetConfirmLabel(domain.ConfirmTaskDelete)+" [x] yes  [esc] no", width-2, "…"))
	case task.Completed:
		text = s.done.Render(text)
	case selected:
		text = s.selected.Render(text)
	default:
		text = s.text.Render(text)
	}
	return marker + box + text
}

func (m Model) viewGoalCard(width int) string {
	s := m.styles
	goal := m.dash.Goal.Goal()
	lines := []string{s.title.Render("Today's Goal")}

	switch {
	case m.board.mode == inputGoal:
		lines = append(lines, m.board.goalInput.View())
	case !goal.IsSet():
		lines = append(lines, s.muted.Render("What's your main focus today?"))
	case m.dash.Goal.ConfirmingClear():
		lines = append(lines, s.danger.Render(domain.GetConfirmLabel(domain.ConfirmGoalClear)+" [x] yes  [esc] no"))
	case goal.Completed:
		lines = append(lines, s.success.Render("[✓] ")+s.done.Render(goal.Text), s.success.Render("Goal Accomplished!"))
	default:
		lines = append(lines, "[ ] "+s.text.Render(goal.Text))
	}
	return m.card(paneGoal, width, strings.Join(lines, "\n"))
}

func (m Model) viewNotesCard(width int) string {
	s := m.styles
	title := "Scratchpad"
	if m.board.preview {
		title += s.muted.Render("  preview")
	}
	lines := []string{s.title.Render(title)}

	switch {
	case m.board.mode == inputNotes:
		lines = append(lines, m.board.notes.View())
	case m.board.preview:
		lines = append(lines, m.board.rendered)
	case m.dash.Notes.Text() == "":
		lines = append(lines, s.muted.Render("Jot down your thoughts..."))
	default:
		for _, line := range strings.Split(m.dash.Notes.Text(), "\n") {
			lines = append(lines, s.text.Render(runewidth.Truncate(line, max(width-4, 4), "…")))
		}
	}
	return m.card(paneNotes, width, strings.Join(lines, "\n"))
}

func (m Model) viewTimerCard(width int) string {
	s := m.styles
	lines := []string{s.title.Render("Focus Mode")}

	task := m.dash.Session.FocusedTask()
	if task == nil {
		lines = append(lines,
			s.header.Render("Ready to Focus?"),
			s.muted.Render("Select a task and press f to begin."),
		)
	} else {
		lines = append(lines,
			s.header.Render(runewidth.Truncate(task.Text, max(width-4, 4), "…")),
			s.muted.Render("Press F to enter Flow Mode."),
		)
	}

	if elapsed := m.dash.Timer.Elapsed(); elapsed > 0 {
		lines = append(lines, "", s.accent.Render(m.dash.Timer.Display())+" "+
			s.muted.Render(strings.ToLower(domain.GetTimerStatusLabel(m.dash.Timer.State().Status))))
	}
	lines = append(lines, "", s.help.Render("Entering Flow Mode will begin a focus session timer."))

	style := s.card.Width(width - 2)
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) boardHelp() string {
	if m.board.mode == inputNotes {
		return "[esc] done editing"
	}
	if m.board.mode != inputNone {
		return "[enter] save  [esc] cancel"
	}

	var keys string
	switch m.board.pane {
	case paneTasks:
		keys = "[j/k] move  [space] toggle  [a] add  [x] delete  [/] filter  [f] focus"
	case paneGoal:
		keys = "[enter] set/toggle  [e] edit  [x] clear"
	default:
		keys = "[e] edit  [p] preview  [y] copy"
	}
	return keys + "  [tab] next card  [F] flow  [t] theme  [L] log out  [q] quit"
}

func greetingFor(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
