package scheduler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/xvierd/focusflow/internal/ports"
)

// DispatchFunc hands a callback to the goroutine that owns the state it
// touches. For the terminal UI this posts a message into the bubbletea program.
type DispatchFunc func(fn func())

// Dispatch is a wall-clock scheduler. Timers fire on their own goroutines but
// callbacks only ever run through the dispatch function, so all state changes
// stay on the owner's goroutine.
type Dispatch struct {
	dispatch DispatchFunc
}

// Ensure Dispatch implements ports.Scheduler.
var _ ports.Scheduler = (*Dispatch)(nil)

// NewDispatch creates a scheduler delivering through dispatch.
func NewDispatch(dispatch DispatchFunc) *Dispatch {
	return &Dispatch{dispatch: dispatch}
}

// dispatchHandle is shared by the timer goroutine and the owner. The cancelled
// flag is checked again at delivery, which is what keeps a callback that was
// already queued from running after Cancel.
type dispatchHandle struct {
	cancelled atomic.Bool
	once      sync.Once
	timer     *time.Timer
	stop      chan struct{}
}

// Cancel implements ports.Handle.
func (h *dispatchHandle) Cancel() {
	h.cancelled.Store(true)
	h.once.Do(func() {
		if h.timer != nil {
			h.timer.Stop()
		}
		if h.stop != nil {
			close(h.stop)
		}
	})
}

func (h *dispatchHandle) guard(fn func()) func() {
	return func() {
		if h.cancelled.Load() {
			return
		}
		fn()
	}
}

// Now implements ports.Scheduler.
func (d *Dispatch) Now() time.Time {
	return time.Now()
}

// ScheduleOnce implements ports.Scheduler.
func (d *Dispatch) ScheduleOnce(delay time.Duration, fn func()) ports.Handle {
	h := &dispatchHandle{}
	once := func() {
		h.cancelled.Store(true)
		fn()
	}
	h.timer = time.AfterFunc(delay, func() {
		if h.cancelled.Load() {
			return
		}
		d.dispatch(h.guard(once))
	})
	return h
}

// ScheduleRepeating implements ports.Scheduler. A ticker drops ticks while the
// dispatch function blocks, so each tick delivers every interval that has
// passed since the start rather than just one.
func (d *Dispatch) ScheduleRepeating(interval time.Duration, fn func()) ports.Handle {
	h := &dispatchHandle{stop: make(chan struct{})}
	start := time.Now()
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		var fired int64
		for {
			select {
			case <-h.stop:
				return
			case <-ticker.C:
				due := int64(time.Since(start) / interval)
				for ; fired < due; fired++ {
					if h.cancelled.Load() {
						return
					}
					d.dispatch(h.guard(fn))
				}
			}
		}
	}()
	return h
}
