package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/focusflow/internal/domain"
)

func TestNewDashboard_Seeds(t *testing.T) {
	d, _ := newTestDashboard(t, nil)

	tasks := d.Tasks.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "Research Methods Assignment", tasks[0].Text)
	assert.True(t, tasks[0].Completed)
	assert.False(t, tasks[1].Completed)
	assert.Equal(t, 2, d.Tasks.Remaining())
	assert.Equal(t, domain.DefaultNotes, d.Notes.Text())
	assert.False(t, d.Goal.Goal().IsSet())
}

func TestDashboard_StartFocus(t *testing.T) {
	d, sched := newTestDashboard(t, nil)
	task := d.Tasks.Tasks()[1]

	assert.False(t, d.StartFocus(999))
	assert.False(t, d.Session.InFocus())

	require.True(t, d.StartFocus(task.ID))
	assert.Equal(t, task.Text, d.Session.Title())
	sched.Advance(10 * time.Second)
	d.Session.ExitFocus()

	// Deleting the task does not disturb the focused snapshot.
	d.Tasks.RequestDelete(task.ID)
	d.Tasks.ConfirmDelete(task.ID)

	d.StartActiveFocus()
	assert.Equal(t, task.Text, d.Session.Title())
	assert.Equal(t, "00:10", d.Timer.Display())
}

func TestDashboard_StartActiveFocusWithoutTask(t *testing.T) {
	d, _ := newTestDashboard(t, nil)

	d.StartActiveFocus()
	assert.True(t, d.Session.InFocus())
	assert.Nil(t, d.Session.FocusedTask())
	assert.True(t, d.Timer.State().Running())
}

func TestDashboard_Close(t *testing.T) {
	d, sched := newTestDashboard(t, nil)
	d.StartActiveFocus()
	d.Tasks.RequestDelete(d.Tasks.Tasks()[0].ID)
	require.Equal(t, 2, sched.Pending())

	d.Close()
	assert.Zero(t, sched.Pending())
}
