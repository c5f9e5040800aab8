package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldName = iota
	fieldEmail
	fieldAge
	fieldCount
)

var fieldLabels = [fieldCount]string{"Full Name", "Email Address", "Age"}

// gateForm is the sign-up form in front of the dashboard.
type gateForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

func newGateForm() gateForm {
	placeholders := [fieldCount]string{"John Appleseed", "you@example.com", "25"}

	var f gateForm
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = "› "
		in.Placeholder = placeholders[i]
		in.CharLimit = 64
		f.inputs[i] = in
	}
	f.inputs[fieldAge].CharLimit = 3
	f.inputs[fieldName].Focus()
	return f
}

// move shifts focus by delta, wrapping around.
func (f *gateForm) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

func (f *gateForm) values() (name, email, age string) {
	return f.inputs[fieldName].Value(), f.inputs[fieldEmail].Value(), f.inputs[fieldAge].Value()
}

func (m Model) updateGate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyTab, tea.KeyDown:
			return m, m.form.move(1)
		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.form.move(-1)
		case tea.KeyEnter:
			if m.form.focus < fieldCount-1 {
				return m, m.form.move(1)
			}
			return m.submitGate()
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m Model) submitGate() (tea.Model, tea.Cmd) {
	profile, err := m.gate.Submit(m.form.values())
	if err != nil {
		m.form.err = "Please fill in your name, email and age."
		return m, nil
	}
	return m, m.unlock(profile)
}

func (m Model) viewGate() string {
	s := m.styles

	sections := []string{
		s.title.Render("FocusFlow"),
		s.muted.Render("Sign up to join FocusFlow, the productivity dashboard that keeps you in flow."),
		"",
	}
	for i, in := range m.form.inputs {
		label := s.muted.Render(fieldLabels[i])
		if i == m.form.focus {
			label = s.selected.Render(fieldLabels[i])
		}
		sections = append(sections, label, in.View(), "")
	}
	if m.form.err != "" {
		sections = append(sections, s.danger.Render(m.form.err), "")
	}
	sections = append(sections, s.help.Render("[tab] next field  [enter] sign up  [ctrl+c] quit"))

	card := s.cardActive.Padding(1, 3).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
