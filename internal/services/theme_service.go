package services

import (
	"context"
	"fmt"
	"log"

	"github.com/xvierd/focusflow/internal/domain"
	"github.com/xvierd/focusflow/internal/ports"
)

// ThemeService holds the light/dark preference and persists every change.
type ThemeService struct {
	store   ports.PreferenceStore
	system  ports.SystemAppearance
	current domain.Theme
}

// NewThemeService creates a theme service. Call Init before reading Current.
func NewThemeService(store ports.PreferenceStore, system ports.SystemAppearance) *ThemeService {
	return &ThemeService{store: store, system: system, current: domain.ThemeLight}
}

// Init loads the stored theme, falling back to the system preference when
// nothing valid is stored or the store cannot be read.
func (s *ThemeService) Init(ctx context.Context) domain.Theme {
	s.current = s.systemTheme()

	if s.store == nil {
		return s.current
	}
	value, ok, err := s.store.Read(ctx, domain.ThemePreferenceKey)
	if err != nil {
		log.Printf("theme: read preference: %v", err)
		return s.current
	}
	if !ok {
		return s.current
	}
	theme, err := domain.ParseTheme(value)
	if err != nil {
		log.Printf("theme: ignoring stored value: %v", err)
		return s.current
	}
	s.current = theme
	return s.current
}

// Current returns the active theme.
func (s *ThemeService) Current() domain.Theme {
	return s.current
}

// Set switches to theme and writes it to the store. The in-memory theme
// changes even when the write fails.
func (s *ThemeService) Set(ctx context.Context, theme domain.Theme) error {
	if _, err := domain.ParseTheme(string(theme)); err != nil {
		return err
	}
	s.current = theme

	if s.store == nil {
		return nil
	}
	if err := s.store.Write(ctx, domain.ThemePreferenceKey, string(theme)); err != nil {
		log.Printf("theme: write preference: %v", err)
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// Toggle flips between light and dark.
func (s *ThemeService) Toggle(ctx context.Context) (domain.Theme, error) {
	next := s.current.Toggle()
	return next, s.Set(ctx, next)
}

func (s *ThemeService) systemTheme() domain.Theme {
	if s.system == nil {
		return domain.ThemeLight
	}
	return domain.ThemeFromSystem(s.system.IsDarkMode())
}
