package services

import (
	"log"

	"github.com/sahilm/fuzzy"

	"github.com/xvierd/focusflow/internal/domain"
)

// TaskService handles to-do list use cases.
type TaskService struct {
	list    *domain.TaskList
	confirm *Confirmations
}

// NewTaskService creates a task service over list. Deletions go through the
// shared confirmation slot.
func NewTaskService(list *domain.TaskList, confirm *Confirmations) *TaskService {
	return &TaskService{list: list, confirm: confirm}
}

// Add appends a task and returns the updated list. Blank text leaves the list
// unchanged and returns false.
func (s *TaskService) Add(text string) ([]domain.Task, bool) {
	task, ok := s.list.Add(text)
	if !ok {
		return s.list.Tasks(), false
	}
	log.Printf("tasks: added id=%d", task.ID)
	return s.list.Tasks(), true
}

// Toggle flips a task's completion. A task awaiting delete confirmation
// cannot be toggled.
func (s *TaskService) Toggle(id int64) bool {
	if s.confirm.IsPending(domain.TaskDelete(id)) {
		return false
	}
	return s.list.Toggle(id)
}

// RequestDelete arms the delete confirmation for id.
func (s *TaskService) RequestDelete(id int64) bool {
	if _, ok := s.list.Find(id); !ok {
		return false
	}
	s.confirm.Arm(domain.TaskDelete(id))
	return true
}

// ConfirmDelete removes the task if its delete confirmation is still armed.
func (s *TaskService) ConfirmDelete(id int64) bool {
	if !s.confirm.Confirm(domain.TaskDelete(id)) {
		return false
	}
	if !s.list.Remove(id) {
		return false
	}
	log.Printf("tasks: deleted id=%d", id)
	return true
}

// CancelConfirmation disarms any pending confirmation.
func (s *TaskService) CancelConfirmation() {
	s.confirm.Cancel()
}

// ConfirmingDelete reports whether id is awaiting delete confirmation.
func (s *TaskService) ConfirmingDelete(id int64) bool {
	return s.confirm.IsPending(domain.TaskDelete(id))
}

// Tasks returns the tasks in insertion order.
func (s *TaskService) Tasks() []domain.Task {
	return s.list.Tasks()
}

// Find returns the task with the given id.
func (s *TaskService) Find(id int64) (domain.Task, bool) {
	return s.list.Find(id)
}

// Remaining returns the number of open tasks.
func (s *TaskService) Remaining() int {
	return s.list.Remaining()
}

// taskSource adapts a task slice to fuzzy.Source.
type taskSource []domain.Task

func (t taskSource) String(i int) string { return t[i].Text }
func (t taskSource) Len() int            { return len(t) }

// Filter returns the tasks whose text fuzzy-matches query, best match first.
// An empty query returns every task in list order.
func (s *TaskService) Filter(query string) []domain.Task {
	tasks := s.list.Tasks()
	if query == "" {
		return tasks
	}

	matches := fuzzy.FindFrom(query, taskSource(tasks))
	out := make([]domain.Task, 0, len(matches))
	for _, m := range matches {
		out = append(out, tasks[m.Index])
	}
	return out
}
