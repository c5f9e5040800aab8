package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvierd/focusflow/internal/adapters/scheduler"
)

// Program runs the dashboard in a bubbletea program. Scheduler callbacks are
// posted into the program so they run on its update goroutine.
type Program struct {
	opts Options

	mu      sync.RWMutex
	program *tea.Program
}

// NewProgram creates a program. opts.Scheduler is replaced with a wall-clock
// scheduler bound to the program unless one is already set.
func NewProgram(opts Options) *Program {
	p := &Program{opts: opts}
	if p.opts.Scheduler == nil {
		p.opts.Scheduler = scheduler.NewDispatch(p.dispatch)
	}
	return p
}

func (p *Program) dispatch(fn func()) {
	p.mu.RLock()
	program := p.program
	p.mu.RUnlock()

	if program != nil {
		program.Send(callbackMsg{fn: fn})
	}
}

// Run starts the interface and blocks until the user quits or ctx is done.
func (p *Program) Run(ctx context.Context) error {
	model := NewModel(p.opts)

	p.mu.Lock()
	p.program = tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	program := p.program
	p.mu.Unlock()

	final, err := program.Run()
	if m, ok := final.(Model); ok {
		m.Close()
	}

	p.mu.Lock()
	p.program = nil
	p.mu.Unlock()

	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// Stop asks a running program to quit.
func (p *Program) Stop() {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.program != nil {
		p.program.Quit()
	}
}

// Run is a convenience wrapper around NewProgram and Program.Run.
func Run(ctx context.Context, opts Options) error {
	return NewProgram(opts).Run(ctx)
}
