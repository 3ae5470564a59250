package tetris

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/mlai-aus/arcade/internal/content"
	"github.com/mlai-aus/arcade/internal/core"
)

// Shape is one of the rectangular blocks. Pieces never rotate.
type Shape int

const (
	ShapeI4 Shape = iota
	ShapeI3
	ShapeI2
	ShapeO
	ShapeV2
	ShapeV3
	ShapeDot
)

type shapeInfo struct {
	name  string
	w, h  int
	color core.Color
}

var shapeTable = [...]shapeInfo{
	ShapeI4:  {"I4", 4, 1, core.ColorCyan},
	ShapeI3:  {"I3", 3, 1, core.ColorBlue},
	ShapeI2:  {"I2", 2, 1, core.ColorYellow},
	ShapeO:   {"O", 2, 2, core.ColorMagenta},
	ShapeV2:  {"V2", 1, 2, core.ColorGreen},
	ShapeV3:  {"V3", 1, 3, core.ColorOrange},
	ShapeDot: {"Dot", 1, 1, core.ColorRed},
}

// Shapes lists every shape in declaration order.
func Shapes() []Shape {
	out := make([]Shape, len(shapeTable))
	for i := range shapeTable {
		out[i] = Shape(i)
	}
	return out
}

func (s Shape) info() shapeInfo {
	if s < 0 || int(s) >= len(shapeTable) {
		return shapeTable[ShapeDot]
	}
	return shapeTable[s]
}

// Size returns the shape's width and height in cells.
func (s Shape) Size() (w, h int) {
	i := s.info()
	return i.w, i.h
}

// Color returns the shape's display colour.
func (s Shape) Color() core.Color {
	return s.info().color
}

func (s Shape) String() string {
	return s.info().name
}

// Piece is a falling block. Col and Row are its top-left cell.
type Piece struct {
	Shape      Shape
	Col, Row   int
	Content    content.Record
	InstanceID string
}

// Cells returns the grid cells the piece covers.
func (p Piece) Cells() []core.Vec2 {
	w, h := p.Shape.Size()
	cells := make([]core.Vec2, 0, w*h)
	for dy := range h {
		for dx := range w {
			cells = append(cells, core.Vec2{X: float64(p.Col + dx), Y: float64(p.Row + dy)})
		}
	}
	return cells
}

// Moved returns a copy of p shifted by (dc, dr).
func (p Piece) Moved(dc, dr int) Piece {
	p.Col += dc
	p.Row += dr
	return p
}

// newPiece creates a piece with a random shape. It is positioned by the
// caller when it becomes current.
func newPiece(rng *rand.Rand, rec content.Record) Piece {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		id = uuid.New()
	}
	return Piece{
		Shape:      Shape(rng.Intn(len(shapeTable))),
		Content:    rec,
		InstanceID: id.String(),
	}
}
