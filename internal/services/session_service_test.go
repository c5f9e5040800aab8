package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/focusflow/internal/adapters/scheduler"
	"github.com/xvierd/focusflow/internal/domain"
	"github.com/xvierd/focusflow/internal/ports"
)

func newController(opts SessionOptions, notifier ports.Notifier, git ports.GitDetector) (*SessionController, *scheduler.Manual) {
	sched := scheduler.NewManual(epoch)
	timer := NewFocusTimer(sched, time.Second)
	return NewSessionController(timer, notifier, git, opts), sched
}

func TestSessionController_ElapsedSurvivesExit(t *testing.T) {
	c, sched := newController(SessionOptions{AutoStart: true}, nil, nil)
	task, _ := domain.NewTask(1, "Write report")

	c.EnterFocus(task)
	require.Equal(t, domain.ViewFocusOverlay, c.View())
	sched.Advance(10 * time.Second)
	require.Equal(t, "00:10", c.Timer().Display())
	id := c.SessionID()

	require.True(t, c.ExitFocus())
	assert.Equal(t, domain.ViewDashboard, c.View())
	sched.Advance(30 * time.Second)

	c.EnterFocus(c.FocusedTask())
	assert.Equal(t, "00:10", c.Timer().Display())
	assert.Equal(t, id, c.SessionID(), "re-entry continues the same session")
	assert.Equal(t, "Write report", c.Title())

	sched.Advance(time.Second)
	assert.Equal(t, "00:11", c.Timer().Display())
}

func TestSessionController_NewSessionFromZero(t *testing.T) {
	c, _ := newController(SessionOptions{}, nil, nil)

	c.EnterFocus(nil)
	first := c.SessionID()
	c.ExitFocus()
	c.EnterFocus(nil)

	assert.NotEqual(t, first, c.SessionID())
	assert.False(t, c.Timer().State().Running(), "no auto start when disabled")
}

func TestSessionController_GenericTitle(t *testing.T) {
	c, _ := newController(SessionOptions{AutoStart: true}, nil, nil)

	c.EnterFocus(nil)

	assert.Nil(t, c.FocusedTask())
	assert.Equal(t, domain.DefaultFocusTitle, c.Title())
	assert.True(t, c.InFocus())
}

func TestSessionController_FocusedTaskIsSnapshot(t *testing.T) {
	c, _ := newController(SessionOptions{}, nil, nil)
	task, _ := domain.NewTask(1, "Original")

	c.EnterFocus(task)
	task.Text = "Edited"

	got := c.FocusedTask()
	require.NotNil(t, got)
	assert.Equal(t, "Original", got.Text)

	got.Text = "Also edited"
	assert.Equal(t, "Original", c.Title())
}

func TestSessionController_ExitOutsideOverlay(t *testing.T) {
	c, _ := newController(SessionOptions{}, nil, nil)
	assert.False(t, c.ExitFocus())
}

func TestSessionController_Panel(t *testing.T) {
	c, sched := newController(SessionOptions{AutoStart: true}, nil, nil)
	c.EnterFocus(nil)

	c.TogglePanel()
	assert.True(t, c.PanelOpen())
	sched.Advance(2 * time.Second)
	assert.Equal(t, 2, c.Timer().Elapsed(), "panel does not affect the timer")

	c.SetScratch("call back")
	c.ExitFocus()
	assert.False(t, c.PanelOpen(), "exit closes the panel")
	assert.Equal(t, "call back", c.Scratch())
}

func TestSessionController_GitContext(t *testing.T) {
	t.Run("branch bound after lookup", func(t *testing.T) {
		git := &fakeGit{info: &ports.GitInfo{Branch: "feature/flow"}}
		c, _ := newController(SessionOptions{GitContext: true}, nil, git)

		c.EnterFocus(nil)
		assert.Zero(t, git.calls, "entering focus does not touch the repository")
		assert.Empty(t, c.FocusContext())

		lookup := c.ContextLookup()
		require.NotNil(t, lookup)
		gc := lookup()
		assert.Equal(t, c.SessionID(), gc.SessionID)
		assert.True(t, c.BindContext(gc))
		assert.Equal(t, "feature/flow", c.FocusContext())
		assert.Equal(t, 1, git.calls)
	})

	t.Run("lookup failure ignored", func(t *testing.T) {
		git := &fakeGit{err: errBackend}
		c, _ := newController(SessionOptions{GitContext: true, AutoStart: true}, nil, git)

		c.EnterFocus(nil)
		assert.False(t, c.BindContext(c.ContextLookup()()))
		assert.Empty(t, c.FocusContext())
		assert.True(t, c.InFocus())
	})

	t.Run("stale session dropped", func(t *testing.T) {
		git := &fakeGit{info: &ports.GitInfo{Branch: "main"}}
		c, _ := newController(SessionOptions{GitContext: true}, nil, git)

		c.EnterFocus(nil)
		lookup := c.ContextLookup()
		first := c.SessionID()
		c.ExitFocus()
		c.EnterFocus(nil)
		require.NotEqual(t, first, c.SessionID(), "timer at zero mints a new session")

		assert.False(t, c.BindContext(lookup()))
		assert.Empty(t, c.FocusContext())
	})

	t.Run("disabled", func(t *testing.T) {
		git := &fakeGit{info: &ports.GitInfo{Branch: "main"}}
		c, _ := newController(SessionOptions{}, nil, git)

		c.EnterFocus(nil)
		assert.Nil(t, c.ContextLookup())
		assert.Zero(t, git.calls)
	})

	t.Run("no session yet", func(t *testing.T) {
		c, _ := newController(SessionOptions{GitContext: true}, nil, &fakeGit{})
		assert.Nil(t, c.ContextLookup())
		assert.False(t, c.BindContext(GitContext{Label: "main"}))
	})
}

func TestSessionController_ExitNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	c, sched := newController(SessionOptions{AutoStart: true}, notifier, nil)
	task, _ := domain.NewTask(1, "Write report")

	c.EnterFocus(task)
	c.ExitFocus()
	assert.Empty(t, notifier.sent, "nothing to report at zero")

	c.EnterFocus(task)
	sched.Advance(65 * time.Second)
	c.ExitFocus()

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, notification{"focus_paused", []string{"Write report", "01:05"}}, notifier.sent[0])
}
