package tetris

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lockAt(g *Grid, s Shape, col, row int, id string) Piece {
	p := Piece{Shape: s, Col: col, Row: row, InstanceID: id}
	if !g.Fits(p) {
		panic("test piece does not fit: " + id)
	}
	g.Lock(p)
	return p
}

func board(g *Grid) []string {
	var out []string
	for r := 0; r < g.Rows(); r++ {
		line := make([]byte, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			if cell := g.At(c, r); cell != nil {
				line[c] = cell.PieceID[0]
			} else {
				line[c] = '.'
			}
		}
		out = append(out, string(line))
	}
	return out
}

func TestShapeSizes(t *testing.T) {
	tests := []struct {
		shape Shape
		w, h  int
	}{
		{ShapeI4, 4, 1},
		{ShapeI3, 3, 1},
		{ShapeI2, 2, 1},
		{ShapeO, 2, 2},
		{ShapeV2, 1, 2},
		{ShapeV3, 1, 3},
		{ShapeDot, 1, 1},
	}
	for _, tt := range tests {
		w, h := tt.shape.Size()
		if w != tt.w || h != tt.h {
			t.Errorf("%v: size %dx%d, want %dx%d", tt.shape, w, h, tt.w, tt.h)
		}
		p := Piece{Shape: tt.shape, Col: 2, Row: 3}
		if got := len(p.Cells()); got != tt.w*tt.h {
			t.Errorf("%v: %d cells, want %d", tt.shape, got, tt.w*tt.h)
		}
	}
	if len(Shapes()) != 7 {
		t.Errorf("Shapes() = %d, want 7", len(Shapes()))
	}
}

func TestFits(t *testing.T) {
	g := NewGrid(10, 14)
	lockAt(g, ShapeO, 4, 12, "a")

	tests := []struct {
		name string
		p    Piece
		want bool
	}{
		{"empty area", Piece{Shape: ShapeI4, Col: 0, Row: 0}, true},
		{"past right edge", Piece{Shape: ShapeI4, Col: 7, Row: 0}, false},
		{"past left edge", Piece{Shape: ShapeDot, Col: -1, Row: 0}, false},
		{"below floor", Piece{Shape: ShapeV2, Col: 0, Row: 13}, false},
		{"overlaps locked", Piece{Shape: ShapeI2, Col: 3, Row: 12}, false},
		{"touching locked", Piece{Shape: ShapeI2, Col: 2, Row: 12}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Fits(tt.p); got != tt.want {
				t.Errorf("Fits = %v, want %v", got, tt.want)
			}
		})
	}
}

// A 4-wide piece fills the last four gaps of the bottom row of a 10x14
// grid. The row and every piece touching it go; the rest drop one row.
func TestBottomRowScenario(t *testing.T) {
	g := NewGrid(10, 14)
	lockAt(g, ShapeI3, 0, 13, "a")
	lockAt(g, ShapeV2, 3, 12, "d") // touches the bottom row, also fills (3,12)
	lockAt(g, ShapeI2, 4, 13, "b")
	lockAt(g, ShapeV2, 0, 11, "c") // rests on a, does not touch row 13
	lockAt(g, ShapeDot, 5, 12, "e")

	if rows := g.CompleteRows(); len(rows) != 0 {
		t.Fatalf("no row should be complete yet, got %v", rows)
	}

	lockAt(g, ShapeI4, 6, 13, "x")
	if got := g.CompleteRows(); !cmp.Equal(got, []int{13}) {
		t.Fatalf("CompleteRows = %v, want [13]", got)
	}

	rows, cells := g.Resolve()
	if rows != 1 {
		t.Errorf("rows = %d, want 1", rows)
	}
	if cells != 11 {
		t.Errorf("cells removed = %d, want 11 (a=3 d=2 b=2 x=4)", cells)
	}

	want := []string{
		"..........", "..........", "..........", "..........",
		"..........", "..........", "..........", "..........",
		"..........", "..........", "..........", "..........",
		"c.........",
		"c....e....",
	}
	if diff := cmp.Diff(want, board(g)); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}

func TestClearRemovesWholePiece(t *testing.T) {
	g := NewGrid(4, 6)
	lockAt(g, ShapeV3, 0, 3, "v") // rows 3..5
	lockAt(g, ShapeI3, 1, 5, "h")
	lockAt(g, ShapeDot, 1, 4, "k")

	removed := g.ClearRows(g.CompleteRows())
	if removed != 6 {
		t.Errorf("removed = %d, want 6", removed)
	}
	for r := 3; r <= 5; r++ {
		if g.At(0, r) != nil {
			t.Errorf("cell (0,%d) of the tall piece should be gone", r)
		}
	}
	if c := g.At(1, 4); c == nil || c.PieceID != "k" {
		t.Error("piece not touching the row must survive the clear")
	}
}

func TestResolveCascades(t *testing.T) {
	g := NewGrid(10, 14)
	lockAt(g, ShapeI4, 0, 13, "a")
	lockAt(g, ShapeI4, 4, 13, "b")
	lockAt(g, ShapeI2, 8, 13, "c")
	for c := 0; c < 9; c++ {
		lockAt(g, ShapeDot, c, 12, string(rune('0'+c)))
	}
	lockAt(g, ShapeDot, 9, 11, "z")

	rows, cells := g.Resolve()
	if rows != 2 || cells != 20 {
		t.Errorf("Resolve = (%d rows, %d cells), want (2, 20)", rows, cells)
	}
	if g.Occupied() != 0 {
		t.Errorf("grid should be empty, %d cells left", g.Occupied())
	}
	if len(g.CompleteRows()) != 0 {
		t.Error("no complete rows may remain")
	}
}

func TestCollapsePerColumn(t *testing.T) {
	g := NewGrid(3, 4)
	lockAt(g, ShapeI2, 0, 0, "a") // spans columns 0 and 1
	lockAt(g, ShapeDot, 1, 3, "b")

	g.Collapse()

	want := []string{
		"...",
		"...",
		".a.",
		"ab.",
	}
	if diff := cmp.Diff(want, board(g)); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}
