package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mlai-aus/arcade/internal/core"
)

// ansiCodes maps core.Color to terminal colour codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

type styleKey struct {
	color core.Color
	faint bool
}

var cellStyles = buildStyles()

func buildStyles() map[styleKey]lipgloss.Style {
	styles := make(map[styleKey]lipgloss.Style, 2*(len(ansiCodes)+1))
	for _, faint := range []bool{false, true} {
		styles[styleKey{core.ColorDefault, faint}] = lipgloss.NewStyle().Faint(faint)
		for c, code := range ansiCodes {
			styles[styleKey{c, faint}] = lipgloss.NewStyle().
				Foreground(lipgloss.Color(code)).
				Faint(faint)
		}
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing colour and faintness are emitted as one run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			key := styleKey{first.Color, first.Faint}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != key.color || cell.Faint != key.faint {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := cellStyles[key]
			if !ok {
				style = cellStyles[styleKey{}]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
