package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/focusflow/internal/domain"
)

func newTaskService(t *testing.T, seeds ...string) (*TaskService, func(time.Duration)) {
	t.Helper()
	d, sched := newTestDashboard(t, func(o *DashboardOptions) {
		o.SeedTasks = nil
		for _, s := range seeds {
			o.SeedTasks = append(o.SeedTasks, domain.SeedTask{Text: s})
		}
	})
	return d.Tasks, sched.Advance
}

func ids(tasks []domain.Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestTaskService_Add(t *testing.T) {
	svc, _ := newTaskService(t, "a")

	t.Run("blank text is a no-op", func(t *testing.T) {
		tasks, ok := svc.Add("   ")
		assert.False(t, ok)
		assert.Len(t, tasks, 1)
	})

	t.Run("appends open task", func(t *testing.T) {
		tasks, ok := svc.Add("b")
		require.True(t, ok)
		require.Len(t, tasks, 2)
		assert.Equal(t, "b", tasks[1].Text)
		assert.False(t, tasks[1].Completed)
		assert.NotEqual(t, tasks[0].ID, tasks[1].ID)
	})
}

func TestTaskService_ConfirmDeleteWithinWindow(t *testing.T) {
	svc, advance := newTaskService(t, "a", "b", "c")
	b := svc.Tasks()[1].ID

	require.True(t, svc.RequestDelete(b))
	assert.True(t, svc.ConfirmingDelete(b))

	advance(2 * time.Second)
	require.True(t, svc.ConfirmDelete(b))

	got := svc.Tasks()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Text)
	assert.Equal(t, "c", got[1].Text)
	assert.False(t, svc.ConfirmingDelete(b))
}

func TestTaskService_ConfirmDeleteAfterExpiry(t *testing.T) {
	svc, advance := newTaskService(t, "a")
	id := svc.Tasks()[0].ID

	svc.RequestDelete(id)
	advance(3 * time.Second)

	assert.False(t, svc.ConfirmingDelete(id))
	assert.False(t, svc.ConfirmDelete(id))
	assert.Len(t, svc.Tasks(), 1)
}

func TestTaskService_RequestDeleteUnknown(t *testing.T) {
	svc, _ := newTaskService(t, "a")
	id := svc.Tasks()[0].ID
	svc.RequestDelete(id)

	assert.False(t, svc.RequestDelete(999))
	assert.True(t, svc.ConfirmingDelete(id), "unknown id must not disturb the armed one")
}

func TestTaskService_ToggleBlockedWhileConfirming(t *testing.T) {
	svc, _ := newTaskService(t, "a", "b")
	tasks := svc.Tasks()
	a, b := tasks[0].ID, tasks[1].ID

	svc.RequestDelete(a)
	assert.False(t, svc.Toggle(a))
	assert.True(t, svc.Toggle(b), "other tasks stay toggleable")

	svc.CancelConfirmation()
	assert.True(t, svc.Toggle(a))

	got, _ := svc.Find(a)
	assert.True(t, got.Completed)
	assert.Equal(t, 0, svc.Remaining())
}

func TestTaskService_DeleteSecondOfTwo(t *testing.T) {
	svc, _ := newTaskService(t, "a", "b")
	tasks := svc.Tasks()

	svc.RequestDelete(tasks[0].ID)
	svc.RequestDelete(tasks[1].ID)

	assert.False(t, svc.ConfirmDelete(tasks[0].ID), "re-arming replaces the earlier target")
	assert.True(t, svc.ConfirmDelete(tasks[1].ID))
	assert.Equal(t, []int64{tasks[0].ID}, ids(svc.Tasks()))
}

func TestTaskService_Filter(t *testing.T) {
	svc, _ := newTaskService(t, "Research Methods Assignment", "Develop React components", "Integrate Gemini API")

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps order", "", []string{"Research Methods Assignment", "Develop React components", "Integrate Gemini API"}},
		{"subsequence match", "gemini", []string{"Integrate Gemini API"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]string, 0)
			for _, task := range svc.Filter(tt.query) {
				got = append(got, task.Text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
