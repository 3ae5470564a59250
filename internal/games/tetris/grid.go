package tetris

import (
	"github.com/mlai-aus/arcade/internal/content"
)

// Cell is a locked square, remembering which piece it came from.
type Cell struct {
	PieceID string
	Shape   Shape
	Content content.Record
}

// Grid is the lock surface. Row 0 is the top.
type Grid struct {
	cols, rows int
	cells      [][]*Cell
}

// NewGrid creates an empty cols x rows grid.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{cols: cols, rows: rows}
	g.cells = make([][]*Cell, rows)
	for r := range g.cells {
		g.cells[r] = make([]*Cell, cols)
	}
	return g
}

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// At returns the cell at (col, row), nil when empty or out of bounds.
func (g *Grid) At(col, row int) *Cell {
	if !g.inBounds(col, row) {
		return nil
	}
	return g.cells[row][col]
}

// Set places c at (col, row). Out-of-bounds writes are ignored.
func (g *Grid) Set(col, row int, c *Cell) {
	if g.inBounds(col, row) {
		g.cells[row][col] = c
	}
}

func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// Fits reports whether every cell of p is in bounds and empty.
func (g *Grid) Fits(p Piece) bool {
	w, h := p.Shape.Size()
	for dy := range h {
		for dx := range w {
			c, r := p.Col+dx, p.Row+dy
			if !g.inBounds(c, r) || g.cells[r][c] != nil {
				return false
			}
		}
	}
	return true
}

// Lock writes p into the grid. Callers check Fits first.
func (g *Grid) Lock(p Piece) {
	w, h := p.Shape.Size()
	for dy := range h {
		for dx := range w {
			g.Set(p.Col+dx, p.Row+dy, &Cell{PieceID: p.InstanceID, Shape: p.Shape, Content: p.Content})
		}
	}
}

// CompleteRows returns the indexes of fully occupied rows, top to bottom.
func (g *Grid) CompleteRows() []int {
	var full []int
	for r, row := range g.cells {
		complete := true
		for _, c := range row {
			if c == nil {
				complete = false
				break
			}
		}
		if complete {
			full = append(full, r)
		}
	}
	return full
}

// PiecesInRows returns the ids of every piece with a cell in rows.
func (g *Grid) PiecesInRows(rows []int) map[string]bool {
	ids := make(map[string]bool)
	for _, r := range rows {
		if r < 0 || r >= g.rows {
			continue
		}
		for _, c := range g.cells[r] {
			if c != nil {
				ids[c.PieceID] = true
			}
		}
	}
	return ids
}

// ClearRows removes every cell belonging to a piece that touches any of
// rows, wherever those cells are. It returns the number of cells removed.
func (g *Grid) ClearRows(rows []int) int {
	doomed := g.PiecesInRows(rows)
	removed := 0
	for r := range g.cells {
		for c, cell := range g.cells[r] {
			if cell != nil && doomed[cell.PieceID] {
				g.cells[r][c] = nil
				removed++
			}
		}
	}
	return removed
}

// Collapse lets every column settle on its own: occupied cells fall until
// they rest on the floor or another cell.
func (g *Grid) Collapse() {
	for c := 0; c < g.cols; c++ {
		write := g.rows - 1
		for r := g.rows - 1; r >= 0; r-- {
			if cell := g.cells[r][c]; cell != nil {
				g.cells[r][c] = nil
				g.cells[write][c] = cell
				write--
			}
		}
	}
}

// Resolve clears and collapses until no row is complete. It returns the
// number of complete rows found and cells removed across all passes.
func (g *Grid) Resolve() (rows, cells int) {
	for {
		full := g.CompleteRows()
		if len(full) == 0 {
			return rows, cells
		}
		rows += len(full)
		cells += g.ClearRows(full)
		g.Collapse()
	}
}

// Occupied returns the number of filled cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c != nil {
				n++
			}
		}
	}
	return n
}
