package ports

import (
	"context"
)

// PreferenceStore persists small string preferences across runs.
// This is a driven port (implemented by adapters).
type PreferenceStore interface {
	// Read returns the stored value and whether the key was present.
	Read(ctx context.Context, key string) (string, bool, error)

	// Write stores value under key, replacing any earlier value.
	Write(ctx context.Context, key, value string) error

	// Close releases the backend.
	Close() error
}

// SystemAppearance answers whether the environment prefers a dark theme.
// This is a driven port (implemented by adapters).
type SystemAppearance interface {
	IsDarkMode() bool
}

// Notifier delivers desktop notifications for dashboard events.
// This is a driven port (implemented by adapters).
type Notifier interface {
	NotifyGoalComplete(goal string) error
	NotifyFocusPaused(title, elapsed string) error
}
