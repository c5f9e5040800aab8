package domain

import (
	"time"
)

// ConfirmKind identifies what a pending confirmation would destroy.
type ConfirmKind string

const (
	ConfirmTaskDelete ConfirmKind = "task_delete"
	ConfirmGoalClear  ConfirmKind = "goal_clear"
)

// DefaultConfirmWindow is how long a destructive action waits for its
// confirming second press.
const DefaultConfirmWindow = 3 * time.Second

// ConfirmTarget names the item a confirmation is armed for. TaskID is only
// meaningful for ConfirmTaskDelete.
type ConfirmTarget struct {
	Kind   ConfirmKind
	TaskID int64
}

// TaskDelete returns the target for deleting task id.
func TaskDelete(id int64) ConfirmTarget {
	return ConfirmTarget{Kind: ConfirmTaskDelete, TaskID: id}
}

// GoalClear returns the target for clearing the goal.
func GoalClear() ConfirmTarget {
	return ConfirmTarget{Kind: ConfirmGoalClear}
}

// PendingConfirmation is the armed first half of a destructive action.
type PendingConfirmation struct {
	Target  ConfirmTarget
	ArmedAt time.Time
}

// Expired reports whether the window has run out at now.
func (p PendingConfirmation) Expired(now time.Time, window time.Duration) bool {
	return now.Sub(p.ArmedAt) >= window
}

// ExpiresIn returns the time left in the window, never negative.
func (p PendingConfirmation) ExpiresIn(now time.Time, window time.Duration) time.Duration {
	left := window - now.Sub(p.ArmedAt)
	if left < 0 {
		return 0
	}
	return left
}

// GetConfirmLabel returns the prompt shown while a confirmation is armed.
func GetConfirmLabel(k ConfirmKind) string {
	switch k {
	case ConfirmTaskDelete:
		return "Delete task?"
	case ConfirmGoalClear:
		return "Clear goal?"
	default:
		return "Confirm?"
	}
}
