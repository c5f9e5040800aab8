package domain

import "strings"

// Goal is the single daily goal. An empty Text means no goal is set.
type Goal struct {
	Text      string
	Completed bool
}

// IsSet reports whether a goal has been set.
func (g Goal) IsSet() bool {
	return g.Text != ""
}

// NewGoal creates an open goal, rejecting blank text.
func NewGoal(text string) (Goal, error) {
	if strings.TrimSpace(text) == "" {
		return Goal{}, ErrEmptyGoalText
	}
	return Goal{Text: text}, nil
}

// Toggle flips completion on a set goal. It returns false when no goal is set.
func (g *Goal) Toggle() bool {
	if !g.IsSet() {
		return false
	}
	g.Completed = !g.Completed
	return true
}

// Clear unsets the goal.
func (g *Goal) Clear() {
	*g = Goal{}
}
