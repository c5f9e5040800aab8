// Package scheduler provides implementations of ports.Scheduler: a real-time
// one that hands callbacks to an owner goroutine, and a manual one driven by
// a virtual clock.
package scheduler

import (
	"time"

	"github.com/xvierd/focusflow/internal/ports"
)

// manualEntry is one scheduled callback on a Manual clock.
type manualEntry struct {
	seq       int64
	due       time.Time
	interval  time.Duration
	fn        func()
	cancelled bool
}

// Cancel implements ports.Handle.
func (e *manualEntry) Cancel() {
	e.cancelled = true
}

// Manual is a scheduler whose clock only moves when Advance is called.
// Callbacks run synchronously inside Advance, in due order. It is not safe
// for concurrent use.
type Manual struct {
	now     time.Time
	seq     int64
	entries []*manualEntry
}

// Ensure Manual implements ports.Scheduler.
var _ ports.Scheduler = (*Manual)(nil)

// NewManual creates a manual scheduler starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now implements ports.Scheduler.
func (m *Manual) Now() time.Time {
	return m.now
}

// ScheduleOnce implements ports.Scheduler.
func (m *Manual) ScheduleOnce(delay time.Duration, fn func()) ports.Handle {
	return m.add(delay, 0, fn)
}

// ScheduleRepeating implements ports.Scheduler. Non-positive intervals are
// treated as one nanosecond so Advance always terminates.
func (m *Manual) ScheduleRepeating(interval time.Duration, fn func()) ports.Handle {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	return m.add(interval, interval, fn)
}

func (m *Manual) add(delay, interval time.Duration, fn func()) *manualEntry {
	m.seq++
	e := &manualEntry{
		seq:      m.seq,
		due:      m.now.Add(delay),
		interval: interval,
		fn:       fn,
	}
	m.entries = append(m.entries, e)
	return e
}

// Advance moves the clock forward by d, running every callback that falls
// due on the way. Callbacks see Now() equal to their due time.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		e := m.nextDue(target)
		if e == nil {
			break
		}
		m.now = e.due
		if e.interval > 0 {
			e.due = e.due.Add(e.interval)
		} else {
			e.cancelled = true
		}
		e.fn()
	}
	m.now = target
	m.prune()
}

// Pending returns the number of callbacks that are still scheduled.
func (m *Manual) Pending() int {
	n := 0
	for _, e := range m.entries {
		if !e.cancelled {
			n++
		}
	}
	return n
}

func (m *Manual) nextDue(target time.Time) *manualEntry {
	var next *manualEntry
	for _, e := range m.entries {
		if e.cancelled || e.due.After(target) {
			continue
		}
		if next == nil || e.due.Before(next.due) || (e.due.Equal(next.due) && e.seq < next.seq) {
			next = e
		}
	}
	return next
}

func (m *Manual) prune() {
	kept := m.entries[:0]
	for _, e := range m.entries {
		if !e.cancelled {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(m.entries); i++ {
		m.entries[i] = nil
	}
	m.entries = kept
}
