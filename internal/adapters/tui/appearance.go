package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/focusflow/internal/ports"
)

// TerminalAppearance reports the terminal background as the system theme.
type TerminalAppearance struct{}

// Ensure TerminalAppearance implements ports.SystemAppearance.
var _ ports.SystemAppearance = TerminalAppearance{}

// IsDarkMode queries the terminal background. Terminals that do not answer
// are treated as dark.
func (TerminalAppearance) IsDarkMode() bool {
	return lipgloss.HasDarkBackground()
}
