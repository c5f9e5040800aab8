package services

import (
	"time"

	"github.com/xvierd/focusflow/internal/domain"
	"github.com/xvierd/focusflow/internal/ports"
)

// DashboardOptions configures a new dashboard.
type DashboardOptions struct {
	ConfirmWindow time.Duration
	TickInterval  time.Duration
	Session       SessionOptions
	SeedTasks     []domain.SeedTask
	Notes         string
}

// DefaultDashboardOptions returns the options of a stock dashboard.
func DefaultDashboardOptions() DashboardOptions {
	return DashboardOptions{
		ConfirmWindow: domain.DefaultConfirmWindow,
		TickInterval:  DefaultTickInterval,
		Session:       SessionOptions{AutoStart: true},
		SeedTasks:     domain.DefaultSeedTasks(),
		Notes:         domain.DefaultNotes,
	}
}

// Notes is the Scratchpad buffer. It lives as long as the dashboard.
type Notes struct {
	text string
}

// Text returns the buffer.
func (n *Notes) Text() string {
	return n.text
}

// SetText replaces the buffer.
func (n *Notes) SetText(text string) {
	n.text = text
}

// Dashboard is everything behind an unlocked gate. All engines share one
// scheduler and one confirmation slot.
type Dashboard struct {
	Tasks   *TaskService
	Goal    *GoalService
	Timer   *FocusTimer
	Session *SessionController
	Notes   *Notes

	confirm *Confirmations
}

// NewDashboard builds a dashboard over sched. notifier and git may be nil.
func NewDashboard(sched ports.Scheduler, opts DashboardOptions, notifier ports.Notifier, git ports.GitDetector) *Dashboard {
	confirm := NewConfirmations(sched, opts.ConfirmWindow)
	timer := NewFocusTimer(sched, opts.TickInterval)

	list := domain.NewTaskList()
	for _, seed := range opts.SeedTasks {
		task, ok := list.Add(seed.Text)
		if ok && seed.Completed {
			list.Toggle(task.ID)
		}
	}

	return &Dashboard{
		Tasks:   NewTaskService(list, confirm),
		Goal:    NewGoalService(confirm, notifier),
		Timer:   timer,
		Session: NewSessionController(timer, notifier, git, opts.Session),
		Notes:   &Notes{text: opts.Notes},
		confirm: confirm,
	}
}

// Confirmations exposes the shared confirmation slot.
func (d *Dashboard) Confirmations() *Confirmations {
	return d.confirm
}

// StartFocus enters flow mode on the task with the given id.
func (d *Dashboard) StartFocus(id int64) bool {
	task, ok := d.Tasks.Find(id)
	if !ok {
		return false
	}
	d.Session.EnterFocus(&task)
	return true
}

// StartActiveFocus enters flow mode on the last focused task, or on no task.
func (d *Dashboard) StartActiveFocus() {
	d.Session.EnterFocus(d.Session.FocusedTask())
}

// Close cancels every outstanding callback.
func (d *Dashboard) Close() {
	d.confirm.Cancel()
	d.Timer.Close()
}
