package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphs maps digits and the colon to three-line box-drawing glyphs.
var glyphs = map[rune][3]string{
	'0': {"┏━┓", "┃ ┃", "┗━┛"},
	'1': {"  ┃", "  ┃", "  ┃"},
	'2': {"━━┓", "┏━┛", "┗━━"},
	'3': {"━━┓", " ━┫", "━━┛"},
	'4': {"┃ ┃", "┗━┫", "  ┃"},
	'5': {"┏━━", "┗━┓", "━━┛"},
	'6': {"┏━━", "┣━┓", "┗━┛"},
	'7': {"━━┓", "  ┃", "  ┃"},
	'8': {"┏━┓", "┣━┫", "┗━┛"},
	'9': {"┏━┓", "┗━┫", "━━┛"},
	':': {"•", " ", "•"},
}

// minBigWidth is the narrowest terminal the large digits are drawn in.
const minBigWidth = 30

// renderBigTime draws an MM:SS string in large digits, or as one bold line
// when the terminal is too narrow.
func renderBigTime(timeStr string, color lipgloss.TerminalColor, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < minBigWidth {
		return style.Render(timeStr)
	}

	var lines [3]strings.Builder
	for i, ch := range timeStr {
		glyph, ok := glyphs[ch]
		if !ok {
			continue
		}
		for row := range lines {
			if i > 0 {
				lines[row].WriteByte(' ')
			}
			lines[row].WriteString(glyph[row])
		}
	}

	rendered := make([]string, len(lines))
	for i := range lines {
		rendered[i] = style.Render(lines[i].String())
	}
	return strings.Join(rendered, "\n")
}
