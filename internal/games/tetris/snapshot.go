package tetris

import (
	"fmt"
	"strings"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Status   Status
	Score    int
	Lines    int
	Pieces   int
	Current  string // "shape@col,row", empty between lock and spawn
	Next     string
	Clearing bool
	Board    []string // '.' empty, '#' locked
}

// Snapshot returns the current game snapshot.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		Status:   m.status,
		Score:    m.score,
		Lines:    m.rows,
		Pieces:   m.pieces,
		Clearing: m.clearing,
	}
	if m.current != nil {
		s.Current = pieceLabel(*m.current)
	}
	if m.next != nil {
		s.Next = m.next.Shape.String()
	}
	for r := 0; r < m.grid.Rows(); r++ {
		var b strings.Builder
		for c := 0; c < m.grid.Cols(); c++ {
			if m.grid.At(c, r) != nil {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		s.Board = append(s.Board, b.String())
	}
	return s
}

func pieceLabel(p Piece) string {
	return fmt.Sprintf("%s@%d,%d", p.Shape, p.Col, p.Row)
}
