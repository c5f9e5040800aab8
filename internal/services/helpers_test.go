package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xvierd/focusflow/internal/adapters/scheduler"
	"github.com/xvierd/focusflow/internal/ports"
)

var epoch = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newTestDashboard(t *testing.T, mutate func(*DashboardOptions)) (*Dashboard, *scheduler.Manual) {
	t.Helper()
	sched := scheduler.NewManual(epoch)
	opts := DefaultDashboardOptions()
	if mutate != nil {
		mutate(&opts)
	}
	d := NewDashboard(sched, opts, nil, nil)
	t.Cleanup(d.Close)
	return d, sched
}

type notification struct {
	event string
	args  []string
}

type recordingNotifier struct {
	sent []notification
	err  error
}

func (n *recordingNotifier) NotifyGoalComplete(goal string) error {
	n.sent = append(n.sent, notification{"goal_complete", []string{goal}})
	return n.err
}

func (n *recordingNotifier) NotifyFocusPaused(title, elapsed string) error {
	n.sent = append(n.sent, notification{"focus_paused", []string{title, elapsed}})
	return n.err
}

type fakeGit struct {
	info  *ports.GitInfo
	err   error
	calls int
}

func (g *fakeGit) Detect(ctx context.Context, workingDir string) (*ports.GitInfo, error) {
	g.calls++
	return g.info, g.err
}

type memStore struct {
	values   map[string]string
	readErr  error
	writeErr error
	writes   int
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (s *memStore) Read(ctx context.Context, key string) (string, bool, error) {
	if s.readErr != nil {
		return "", false, s.readErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memStore) Write(ctx context.Context, key, value string) error {
	s.writes++
	if s.writeErr != nil {
		return s.writeErr
	}
	s.values[key] = value
	return nil
}

func (s *memStore) Close() error { return nil }

type fixedAppearance bool

func (a fixedAppearance) IsDarkMode() bool { return bool(a) }

var errBackend = errors.New("backend unavailable")

var (
	_ ports.Notifier         = (*recordingNotifier)(nil)
	_ ports.GitDetector      = (*fakeGit)(nil)
	_ ports.PreferenceStore  = (*memStore)(nil)
	_ ports.SystemAppearance = fixedAppearance(false)
)
