package domain

import "fmt"

// Theme is the light/dark preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemePreferenceKey is the preference store key holding the theme.
const ThemePreferenceKey = "theme"

// ParseTheme accepts exactly "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", fmt.Errorf("%w %q: must be light or dark", ErrInvalidTheme, s)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeFromSystem maps the system dark-mode flag to a theme.
func ThemeFromSystem(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// Label returns a human-readable label.
func (t Theme) Label() string {
	switch t {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	default:
		return "Unknown"
	}
}
