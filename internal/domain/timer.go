package domain

import "fmt"

// TimerStatus is the state of the focus timer.
type TimerStatus string

const (
	TimerStopped TimerStatus = "stopped"
	TimerRunning TimerStatus = "running"
	TimerPaused  TimerStatus = "paused"
)

// TimerState is a snapshot of the focus timer.
type TimerState struct {
	ElapsedSeconds int
	Status         TimerStatus
}

// Running reports whether the timer is counting.
func (s TimerState) Running() bool {
	return s.Status == TimerRunning
}

// FocusTimer is the elapsed-seconds state machine behind flow mode. It counts
// up, has no target duration, and only changes through the methods below.
type FocusTimer struct {
	state TimerState
}

// NewFocusTimer returns a stopped timer at zero.
func NewFocusTimer() *FocusTimer {
	return &FocusTimer{state: TimerState{Status: TimerStopped}}
}

// State returns the current snapshot.
func (t *FocusTimer) State() TimerState {
	return t.state
}

// Start moves a stopped or paused timer to running.
func (t *FocusTimer) Start() bool {
	if t.state.Status == TimerRunning {
		return false
	}
	t.state.Status = TimerRunning
	return true
}

// Resume is Start under the name the overlay uses once time has accrued.
func (t *FocusTimer) Resume() bool {
	return t.Start()
}

// Pause stops counting but keeps the elapsed time.
func (t *FocusTimer) Pause() bool {
	if t.state.Status != TimerRunning {
		return false
	}
	t.state.Status = TimerPaused
	return true
}

// Reset zeroes and stops the timer from any state.
func (t *FocusTimer) Reset() {
	t.state = TimerState{Status: TimerStopped}
}

// Tick adds one second while running. Ticks in any other state are dropped.
func (t *FocusTimer) Tick() bool {
	if t.state.Status != TimerRunning {
		return false
	}
	t.state.ElapsedSeconds++
	return true
}

// ButtonLabel is the text of the overlay's play/pause control.
func (t *FocusTimer) ButtonLabel() string {
	switch {
	case t.state.Status == TimerRunning:
		return "Pause"
	case t.state.ElapsedSeconds > 0:
		return "Resume"
	default:
		return "Start"
	}
}

// FormatElapsed renders seconds as MM:SS. Minutes are not wrapped into hours.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// GetTimerStatusLabel returns a human-readable label for the timer status.
func GetTimerStatusLabel(s TimerStatus) string {
	switch s {
	case TimerStopped:
		return "Stopped"
	case TimerRunning:
		return "Running"
	case TimerPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}
