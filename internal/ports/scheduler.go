// Package ports defines the interfaces between the FocusFlow core and the
// outside world: clocks, the preference backend, the terminal and the desktop.
// Services depend on these; adapters implement them.
package ports

import (
	"time"
)

// Handle is a scheduled callback that can be withdrawn.
type Handle interface {
	// Cancel stops the callback. It is safe to call more than once, and once it
	// returns the callback will not run again.
	Cancel()
}

// Scheduler runs callbacks later on the caller's thread of control.
// This is a driven port (implemented by adapters).
type Scheduler interface {
	// ScheduleRepeating runs fn every interval until the handle is cancelled.
	ScheduleRepeating(interval time.Duration, fn func()) Handle

	// ScheduleOnce runs fn once after delay unless cancelled first.
	ScheduleOnce(delay time.Duration, fn func()) Handle

	// Now returns the scheduler's notion of the current time.
	Now() time.Time
}
