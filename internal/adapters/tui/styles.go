package tui

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/focusflow/internal/config"
	"github.com/xvierd/focusflow/internal/domain"
)

// resolvePalette fills any empty color in the configured palette for theme
// with the default.
func resolvePalette(themes *config.ThemeConfig, theme domain.Theme) config.Palette {
	defaults := config.DefaultThemeConfig()
	want := defaults.PaletteFor(theme)
	if themes == nil {
		return want
	}
	resolved := themes.PaletteFor(theme)
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(want)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// styles is every lipgloss style the views use, derived from one palette.
type styles struct {
	palette config.Palette

	app        lipgloss.Style
	card       lipgloss.Style
	cardActive lipgloss.Style
	header     lipgloss.Style
	title      lipgloss.Style
	text       lipgloss.Style
	muted      lipgloss.Style
	accent     lipgloss.Style
	success    lipgloss.Style
	danger     lipgloss.Style
	done       lipgloss.Style
	selected   lipgloss.Style
	help       lipgloss.Style
	panel      lipgloss.Style
}

func newStyles(p config.Palette) styles {
	border := lipgloss.Color(p.Border)
	accent := lipgloss.Color(p.Accent)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	return styles{
		palette:    p,
		app:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Padding(1, 2),
		card:       card,
		cardActive: card.BorderForeground(accent),
		header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Text)),
		title:      lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		text:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)),
		muted:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		accent:     lipgloss.NewStyle().Foreground(accent),
		success:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Success)),
		danger:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Danger)),
		done:       lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color(p.Muted)),
		selected:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		help:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)).Faint(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(border).
			Padding(0, 2),
	}
}
