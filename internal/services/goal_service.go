package services

import (
	"log"

	"github.com/xvierd/focusflow/internal/domain"
	"github.com/xvierd/focusflow/internal/ports"
)

// GoalService handles the daily goal.
type GoalService struct {
	goal     domain.Goal
	confirm  *Confirmations
	notifier ports.Notifier
}

// NewGoalService creates a goal service with no goal set. notifier may be nil.
func NewGoalService(confirm *Confirmations, notifier ports.Notifier) *GoalService {
	return &GoalService{confirm: confirm, notifier: notifier}
}

// Goal returns the current goal.
func (s *GoalService) Goal() domain.Goal {
	return s.goal
}

// SetGoal replaces the goal with an open one. Blank text is ignored.
func (s *GoalService) SetGoal(text string) bool {
	goal, err := domain.NewGoal(text)
	if err != nil {
		return false
	}
	if s.confirm.IsPending(domain.GoalClear()) {
		s.confirm.Cancel()
	}
	s.goal = goal
	return true
}

// ToggleCompleted flips completion of a set goal.
func (s *GoalService) ToggleCompleted() bool {
	if !s.goal.Toggle() {
		return false
	}
	if s.goal.Completed && s.notifier != nil {
		if err := s.notifier.NotifyGoalComplete(s.goal.Text); err != nil {
			log.Printf("goal: notify: %v", err)
		}
	}
	return true
}

// RequestClear arms the clear confirmation. Nothing happens without a goal.
func (s *GoalService) RequestClear() bool {
	if !s.goal.IsSet() {
		return false
	}
	s.confirm.Arm(domain.GoalClear())
	return true
}

// ConfirmClear unsets the goal if the clear confirmation is still armed.
func (s *GoalService) ConfirmClear() bool {
	if !s.confirm.Confirm(domain.GoalClear()) {
		return false
	}
	s.goal.Clear()
	return true
}

// Expire abandons a pending clear, leaving the goal as it was.
func (s *GoalService) Expire() {
	if s.confirm.IsPending(domain.GoalClear()) {
		s.confirm.Cancel()
	}
}

// ConfirmingClear reports whether a clear is awaiting confirmation.
func (s *GoalService) ConfirmingClear() bool {
	return s.confirm.IsPending(domain.GoalClear())
}
