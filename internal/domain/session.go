package domain

import (
	"time"
)

// SessionView is which screen the dashboard is showing.
type SessionView string

const (
	ViewDashboard    SessionView = "dashboard"
	ViewFocusOverlay SessionView = "focus_overlay"
)

// DefaultFocusTitle is shown in the overlay when no task is bound.
const DefaultFocusTitle = "Focus Session"

// FocusSession identifies one run of the focus timer from zero. Task is a
// snapshot, not the list's copy: editing or deleting the task in the list does
// not change it.
type FocusSession struct {
	ID        string
	Task      *Task
	StartedAt time.Time
	Branch    string
}

// NewFocusSession starts a session bound to a copy of task, which may be nil.
func NewFocusSession(task *Task) *FocusSession {
	return &FocusSession{
		ID:        generateID(),
		Task:      snapshotTask(task),
		StartedAt: time.Now(),
	}
}

// Bind points the session at another task without starting a new session.
func (s *FocusSession) Bind(task *Task) {
	s.Task = snapshotTask(task)
}

// Title is the overlay heading: the task text, or the generic title.
func (s *FocusSession) Title() string {
	if s == nil || s.Task == nil || s.Task.Text == "" {
		return DefaultFocusTitle
	}
	return s.Task.Text
}

// SetGitContext stores the repository label shown in the overlay header.
func (s *FocusSession) SetGitContext(branch string) {
	s.Branch = branch
}

func snapshotTask(task *Task) *Task {
	if task == nil {
		return nil
	}
	c := *task
	return &c
}

// GetViewLabel returns a human-readable label for the view.
func GetViewLabel(v SessionView) string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewFocusOverlay:
		return "Flow Mode"
	default:
		return "Unknown"
	}
}
