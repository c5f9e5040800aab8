package services

import (
	"context"
	"log"
	"time"

	"github.com/xvierd/focusflow/internal/domain"
	"github.com/xvierd/focusflow/internal/ports"
)

// gitLookupTimeout bounds the branch lookup done on focus entry.
const gitLookupTimeout = 2 * time.Second

// SessionOptions controls focus-entry behaviour.
type SessionOptions struct {
	// AutoStart starts or resumes the timer when the overlay opens.
	AutoStart bool
	// GitContext looks up the branch of WorkingDir for the overlay header.
	GitContext bool
	WorkingDir string
}

// SessionController moves between the dashboard and the flow-mode overlay.
// The timer and the focused task survive leaving the overlay.
type SessionController struct {
	timer    *FocusTimer
	notifier ports.Notifier
	git      ports.GitDetector
	opts     SessionOptions

	view      domain.SessionView
	session   *domain.FocusSession
	panelOpen bool
	scratch   string
}

// NewSessionController creates a controller showing the dashboard. notifier
// and git may be nil.
func NewSessionController(timer *FocusTimer, notifier ports.Notifier, git ports.GitDetector, opts SessionOptions) *SessionController {
	return &SessionController{
		timer:    timer,
		notifier: notifier,
		git:      git,
		opts:     opts,
		view:     domain.ViewDashboard,
	}
}

// EnterFocus opens the overlay for task, which may be nil. Elapsed time is
// never reset here; a new session id is minted only when the timer is at zero.
func (c *SessionController) EnterFocus(task *domain.Task) {
	if c.session == nil || c.timer.Elapsed() == 0 {
		c.session = domain.NewFocusSession(task)
	} else {
		c.session.Bind(task)
	}
	c.view = domain.ViewFocusOverlay

	if c.opts.AutoStart {
		c.timer.Start()
	}

	log.Printf("focus: enter session=%s task=%q elapsed=%s",
		c.session.ID, c.session.Title(), c.timer.Display())
}

// ExitFocus returns to the dashboard. The timer is paused so the overlay shows
// the same time when it is opened again.
func (c *SessionController) ExitFocus() bool {
	if c.view != domain.ViewFocusOverlay {
		return false
	}
	c.timer.Pause()
	c.view = domain.ViewDashboard
	c.panelOpen = false

	if c.timer.Elapsed() > 0 && c.notifier != nil {
		if err := c.notifier.NotifyFocusPaused(c.session.Title(), c.timer.Display()); err != nil {
			log.Printf("focus: notify: %v", err)
		}
	}
	log.Printf("focus: exit session=%s elapsed=%s", c.session.ID, c.timer.Display())
	return true
}

// View returns the current screen.
func (c *SessionController) View() domain.SessionView {
	return c.view
}

// InFocus reports whether the overlay is showing.
func (c *SessionController) InFocus() bool {
	return c.view == domain.ViewFocusOverlay
}

// FocusedTask returns a copy of the focused task, or nil.
func (c *SessionController) FocusedTask() *domain.Task {
	if c.session == nil || c.session.Task == nil {
		return nil
	}
	t := *c.session.Task
	return &t
}

// Title is the overlay heading.
func (c *SessionController) Title() string {
	return c.session.Title()
}

// FocusContext returns the git branch recorded for the session, if any.
func (c *SessionController) FocusContext() string {
	if c.session == nil {
		return ""
	}
	return c.session.Branch
}

// SessionID returns the current focus session id, or "".
func (c *SessionController) SessionID() string {
	if c.session == nil {
		return ""
	}
	return c.session.ID
}

// Timer returns the timer the overlay is bound to.
func (c *SessionController) Timer() *FocusTimer {
	return c.timer
}

// TogglePanel opens or closes the tools drawer.
func (c *SessionController) TogglePanel() {
	c.panelOpen = !c.panelOpen
}

// PanelOpen reports whether the tools drawer is open.
func (c *SessionController) PanelOpen() bool {
	return c.panelOpen
}

// Scratch returns the drawer's scratch buffer.
func (c *SessionController) Scratch() string {
	return c.scratch
}

// SetScratch replaces the drawer's scratch buffer.
func (c *SessionController) SetScratch(text string) {
	c.scratch = text
}

// GitContext is the result of a branch lookup for one focus session.
type GitContext struct {
	SessionID string
	Label     string
}

// ContextLookup returns a function that detects the branch for the current
// session, or nil when git context is off. The returned function blocks on
// the repository and touches no controller state, so it may run on any
// goroutine; hand its result to BindContext.
func (c *SessionController) ContextLookup() func() GitContext {
	if !c.opts.GitContext || c.git == nil || c.session == nil {
		return nil
	}
	git, dir, id := c.git, c.opts.WorkingDir, c.session.ID
	return func() GitContext {
		ctx, cancel := context.WithTimeout(context.Background(), gitLookupTimeout)
		defer cancel()

		info, err := git.Detect(ctx, dir)
		if err != nil {
			log.Printf("focus: git context: %v", err)
			return GitContext{SessionID: id}
		}
		if info == nil {
			return GitContext{SessionID: id}
		}
		return GitContext{SessionID: id, Label: info.Label()}
	}
}

// BindContext records a lookup result. Results for a session that is no
// longer current are dropped.
func (c *SessionController) BindContext(gc GitContext) bool {
	if c.session == nil || gc.SessionID != c.session.ID || gc.Label == "" {
		return false
	}
	c.session.SetGitContext(gc.Label)
	return true
}
