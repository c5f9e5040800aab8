// Package services implements the application layer (use cases)
// following hexagonal architecture principles.
package services

import (
	"log"
	"time"

	"github.com/xvierd/focusflow/internal/domain"
	"github.com/xvierd/focusflow/internal/ports"
)

// Confirmations owns the dashboard's single pending confirmation and its
// expiry callback. Task deletion and goal clearing share one instance, so
// arming either replaces whatever was armed before.
type Confirmations struct {
	sched   ports.Scheduler
	window  time.Duration
	pending *domain.PendingConfirmation
	expiry  ports.Handle
	gen     uint64
}

// NewConfirmations creates an empty confirmation slot. A non-positive window
// falls back to domain.DefaultConfirmWindow.
func NewConfirmations(sched ports.Scheduler, window time.Duration) *Confirmations {
	if window <= 0 {
		window = domain.DefaultConfirmWindow
	}
	return &Confirmations{sched: sched, window: window}
}

// Window returns the confirmation window.
func (c *Confirmations) Window() time.Duration {
	return c.window
}

// Arm makes target the pending confirmation and schedules its expiry.
func (c *Confirmations) Arm(target domain.ConfirmTarget) {
	c.Cancel()

	c.pending = &domain.PendingConfirmation{Target: target, ArmedAt: c.sched.Now()}
	gen := c.gen
	c.expiry = c.sched.ScheduleOnce(c.window, func() {
		c.expire(gen)
	})
	log.Printf("confirm: armed %s task=%d", target.Kind, target.TaskID)
}

// Confirm resolves the pending confirmation if it is for target. It returns
// true only when the window was still open; the slot is cleared either way.
func (c *Confirmations) Confirm(target domain.ConfirmTarget) bool {
	if c.pending == nil || c.pending.Target != target {
		return false
	}
	open := !c.pending.Expired(c.sched.Now(), c.window)
	c.Cancel()
	return open
}

// Cancel drops the pending confirmation without acting on it.
func (c *Confirmations) Cancel() {
	if c.expiry != nil {
		c.expiry.Cancel()
		c.expiry = nil
	}
	c.pending = nil
	c.gen++
}

// Pending returns the armed confirmation, if any.
func (c *Confirmations) Pending() (domain.PendingConfirmation, bool) {
	if c.pending == nil {
		return domain.PendingConfirmation{}, false
	}
	return *c.pending, true
}

// IsPending reports whether target is the armed confirmation.
func (c *Confirmations) IsPending(target domain.ConfirmTarget) bool {
	return c.pending != nil && c.pending.Target == target
}

// Remaining returns how long the armed confirmation has left.
func (c *Confirmations) Remaining() time.Duration {
	if c.pending == nil {
		return 0
	}
	return c.pending.ExpiresIn(c.sched.Now(), c.window)
}

// expire runs from the scheduler. gen guards against a callback that was
// already on its way when the slot was re-armed.
func (c *Confirmations) expire(gen uint64) {
	if gen != c.gen || c.pending == nil {
		return
	}
	log.Printf("confirm: expired %s task=%d", c.pending.Target.Kind, c.pending.Target.TaskID)
	c.expiry = nil
	c.pending = nil
	c.gen++
}
