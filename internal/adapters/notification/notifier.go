// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/xvierd/focusflow/internal/config"
	"github.com/xvierd/focusflow/internal/ports"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg    *config.NotificationConfig
	notify func(title, message string) error
	beep   func() error
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{
		cfg: cfg,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		beep: func() error {
			return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
	}
}

// Notify displays a desktop notification if enabled, with a beep when sound
// is on.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}

	if err := n.notify(title, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	if n.cfg.Sound {
		if err := n.beep(); err != nil {
			return fmt.Errorf("failed to beep: %w", err)
		}
	}
	return nil
}

// NotifyGoalComplete announces a finished daily goal.
func (n *Notifier) NotifyGoalComplete(goal string) error {
	return n.Notify("🎯 Goal complete!", fmt.Sprintf("Nice work: %s", goal))
}

// NotifyFocusPaused announces that a flow session was left.
func (n *Notifier) NotifyFocusPaused(title, elapsed string) error {
	return n.Notify("⏸ Focus paused", fmt.Sprintf("%s paused at %s", title, elapsed))
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
