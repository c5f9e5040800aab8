package services

import (
	"time"

	"github.com/xvierd/focusflow/internal/domain"
	"github.com/xvierd/focusflow/internal/ports"
)

// DefaultTickInterval is how often a running timer gains a second.
const DefaultTickInterval = time.Second

// FocusTimer drives a domain.FocusTimer from a scheduler. It owns at most one
// repeating tick at a time.
type FocusTimer struct {
	timer    *domain.FocusTimer
	sched    ports.Scheduler
	interval time.Duration
	tick     ports.Handle
}

// NewFocusTimer creates a stopped timer ticking every interval.
func NewFocusTimer(sched ports.Scheduler, interval time.Duration) *FocusTimer {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &FocusTimer{
		timer:    domain.NewFocusTimer(),
		sched:    sched,
		interval: interval,
	}
}

// Start begins counting from the current elapsed value.
func (t *FocusTimer) Start() bool {
	if !t.timer.Start() {
		return false
	}
	t.schedule()
	return true
}

// Resume continues a paused timer.
func (t *FocusTimer) Resume() bool {
	return t.Start()
}

// Pause stops counting and keeps the elapsed time.
func (t *FocusTimer) Pause() bool {
	if !t.timer.Pause() {
		return false
	}
	t.stop()
	return true
}

// Reset zeroes the timer.
func (t *FocusTimer) Reset() {
	t.stop()
	t.timer.Reset()
}

// Toggle is the overlay's play/pause control.
func (t *FocusTimer) Toggle() {
	if t.timer.State().Running() {
		t.Pause()
		return
	}
	t.Start()
}

// State returns the current snapshot.
func (t *FocusTimer) State() domain.TimerState {
	return t.timer.State()
}

// Elapsed returns the elapsed seconds.
func (t *FocusTimer) Elapsed() int {
	return t.timer.State().ElapsedSeconds
}

// ButtonLabel returns the play/pause control text.
func (t *FocusTimer) ButtonLabel() string {
	return t.timer.ButtonLabel()
}

// Display renders the elapsed time as MM:SS.
func (t *FocusTimer) Display() string {
	return domain.FormatElapsed(t.Elapsed())
}

// Close releases the tick.
func (t *FocusTimer) Close() {
	t.stop()
}

func (t *FocusTimer) schedule() {
	t.stop()
	t.tick = t.sched.ScheduleRepeating(t.interval, func() {
		t.timer.Tick()
	})
}

func (t *FocusTimer) stop() {
	if t.tick != nil {
		t.tick.Cancel()
		t.tick = nil
	}
}
