package tetris

import (
	"fmt"
	"strings"

	"github.com/mlai-aus/arcade/internal/content"
	"github.com/mlai-aus/arcade/internal/core"
)

// Each grid cell is two columns wide so blocks look square in a terminal.
const cellW = 2

// Render draws the board, the next-piece preview and the testimonial of
// the current piece.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	m := g.m
	grid := m.Grid()

	boardW := grid.Cols()*cellW + 2
	boardH := grid.Rows() + 2
	ox := max(0, (dst.Width()-boardW-panelMinW-2)/2)
	oy := max(0, (dst.Height()-boardH)/2)

	dst.DrawBoxColor(core.NewRect(ox, oy, boardW, boardH), core.ColorGray)

	flash := int(m.ClearProgress()*6)%2 == 0
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			cell := grid.At(c, r)
			if cell == nil {
				g.drawSquare(dst, ox, oy, c, r, core.Cell{Rune: '·', Color: core.ColorGray, Faint: true}, false)
				continue
			}
			if m.Doomed(cell) {
				col := core.ColorBrightWhite
				if !flash {
					col = cell.Shape.Color()
				}
				g.drawSquare(dst, ox, oy, c, r, core.Cell{Rune: '▒', Color: col}, true)
				continue
			}
			g.drawSquare(dst, ox, oy, c, r, core.Cell{Rune: '█', Color: cell.Shape.Color()}, true)
		}
	}

	if p := m.Current(); p != nil {
		for _, pt := range p.Cells() {
			g.drawSquare(dst, ox, oy, int(pt.X), int(pt.Y), core.Cell{Rune: '█', Color: p.Shape.Color()}, true)
		}
	}

	px := ox + boardW + 2
	g.drawPanel(dst, px, oy)

	switch m.Status() {
	case StatusIdle:
		dst.DrawMessage("TESTIMONIAL TETRIS", "Press Enter to start")
	case StatusPaused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	case StatusGameOver:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", m.Score()))
	}
}

// panelMinW is the width reserved for the side panel when centring.
const panelMinW = 28

func (g *Game) drawSquare(dst *core.Screen, ox, oy, col, row int, c core.Cell, full bool) {
	x := ox + 1 + col*cellW
	y := oy + 1 + row
	dst.SetCell(x, y, c)
	if full {
		dst.SetCell(x+1, y, c)
	} else {
		dst.SetCell(x+1, y, core.Cell{Rune: ' '})
	}
}

func (g *Game) drawPanel(dst *core.Screen, x, y int) {
	m := g.m
	width := max(12, dst.Width()-x-1)

	dst.DrawTextColor(x, y, "NEXT", core.ColorGray)
	if n := m.Next(); n != nil {
		w, h := n.Shape.Size()
		for dy := range h {
			for dx := range w {
				c := core.Cell{Rune: '█', Color: n.Shape.Color()}
				dst.SetCell(x+dx*cellW, y+1+dy, c)
				dst.SetCell(x+dx*cellW+1, y+1+dy, c)
			}
		}
	}

	dst.DrawText(x, y+5, fmt.Sprintf("Score: %d", m.Score()))
	dst.DrawText(x, y+6, fmt.Sprintf("Lines: %d", m.Lines()))

	rec := m.Shown()
	if rec == nil {
		return
	}

	ty := y + 8
	dst.DrawTextColor(x, ty, strings.ToUpper(rec.Kind().String()), core.ColorGray)
	ty++

	switch r := rec.(type) {
	case content.Testimonial:
		if g.lookup != nil && r.Image != "" {
			if a, ok := g.lookup.Get(r.Image); ok {
				dst.DrawSprite(core.Sprite{Key: a.Path, X: float64(x) + 2, Y: float64(ty) + 1, W: 4, H: 2, Alpha: 1, Depth: 1})
				ty += 3
			}
		}
		for _, line := range wrap("“"+r.Quote+"”", width) {
			if ty >= dst.Height()-2 {
				break
			}
			dst.DrawTextColor(x, ty, line, core.ColorBrightWhite)
			ty++
		}
		dst.DrawTextColor(x, ty+1, "- "+r.Author, core.ColorCyan)
		if by := r.Byline(); by != "" {
			dst.DrawTextColor(x+2, ty+2, by, core.ColorGray)
		}
	case content.Logo:
		dst.DrawText(x, ty, r.Name)
	}
}

// wrap breaks text into lines of at most width runes on word boundaries.
// Words longer than width are split.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = line[:0]
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(line) == 0:
			line = append(line, w...)
		case len(line)+1+len(w) <= width:
			line = append(line, ' ')
			line = append(line, w...)
		default:
			lines = append(lines, string(line))
			line = append(line[:0], w...)
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
