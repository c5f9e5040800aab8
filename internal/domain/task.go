// Package domain contains the core entities of FocusFlow: tasks, the daily
// goal, the focus timer and the session view. Nothing in here knows about
// terminals, storage or clocks beyond the values passed in.
package domain

import (
	"errors"
	"strings"
	"time"
)

// Common domain errors.
var (
	ErrEmptyTaskText    = errors.New("task text cannot be empty")
	ErrEmptyGoalText    = errors.New("goal text cannot be empty")
	ErrIncompleteSignup = errors.New("name, email and age are required")
	ErrInvalidTheme     = errors.New("invalid theme")
)

// Task is a single to-do item.
type Task struct {
	ID        int64
	Text      string
	Completed bool
	CreatedAt time.Time
}

// NewTask creates an open task. The text is kept as typed; only its trimmed
// form has to be non-empty.
func NewTask(id int64, text string) (*Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyTaskText
	}
	return &Task{
		ID:        id,
		Text:      text,
		CreatedAt: time.Now(),
	}, nil
}

// Toggle flips the completion flag.
func (t *Task) Toggle() {
	t.Completed = !t.Completed
}

// TaskList is an insertion-ordered collection of tasks with unique ids.
type TaskList struct {
	tasks []Task
	ids   *IDSequence
}

// NewTaskList creates a list seeded with the given texts. Blank seeds are
// skipped.
func NewTaskList(seeds ...string) *TaskList {
	l := &TaskList{ids: NewIDSequence()}
	for _, text := range seeds {
		l.Add(text)
	}
	return l
}

// Add appends a new task and returns it. It returns false when text is blank.
func (l *TaskList) Add(text string) (Task, bool) {
	task, err := NewTask(l.ids.Next(), text)
	if err != nil {
		return Task{}, false
	}
	l.tasks = append(l.tasks, *task)
	return *task, true
}

// Toggle flips the task with the given id. It returns false if no task has it.
func (l *TaskList) Toggle(id int64) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks[i].Toggle()
	return true
}

// Remove deletes the task with the given id, keeping the order of the rest.
func (l *TaskList) Remove(id int64) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return true
}

// Find returns a copy of the task with the given id.
func (l *TaskList) Find(id int64) (Task, bool) {
	i := l.index(id)
	if i < 0 {
		return Task{}, false
	}
	return l.tasks[i], true
}

// Tasks returns a copy of the tasks in insertion order.
func (l *TaskList) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Remaining returns how many tasks are still open.
func (l *TaskList) Remaining() int {
	n := 0
	for _, t := range l.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

func (l *TaskList) index(id int64) int {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
