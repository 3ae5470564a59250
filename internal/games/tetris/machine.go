package tetris

import (
	"math/rand"

	"github.com/mlai-aus/arcade/internal/config"
	"github.com/mlai-aus/arcade/internal/content"
	"github.com/mlai-aus/arcade/internal/core"
)

// Status is the machine's lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Machine is the grid game without any rendering or timing of its own.
// The host drives it with Tick at the fall interval, Animate every frame,
// and Visible/Hidden when the view is shown or hidden.
//
//	Idle -> Playing      Start, or Visible with auto-start
//	Playing -> Paused    Hidden, or TogglePause
//	Paused -> Playing    Visible, unless the player paused too
//	                     TogglePause, unless the view is hidden
//	Playing -> GameOver  a new piece does not fit
//	any -> Idle          Reset
type Machine struct {
	cfg config.TetrisConfig
	rng *rand.Rand

	grid    *Grid
	current *Piece
	next    *Piece
	status  Status

	// held is a pause asked for by the player; hidden is a pause caused by
	// the view. Paused lasts while either is set.
	held, hidden bool

	clearing  bool
	clearLeft float64
	doomed    map[string]bool

	records []content.Record
	cursor  int
	shown   content.Record // record of the last piece that became current

	score, rows, cells, pieces int
}

// NewMachine creates an idle machine.
func NewMachine(cfg config.TetrisConfig, rng *rand.Rand) *Machine {
	m := &Machine{cfg: cfg, rng: rng}
	m.Reset()
	return m
}

// SetRecords sets the content carried by new pieces.
func (m *Machine) SetRecords(recs []content.Record) {
	m.records = append([]content.Record(nil), recs...)
	m.cursor = 0
}

// Reset empties the board and returns to Idle.
func (m *Machine) Reset() {
	m.grid = NewGrid(m.cfg.Grid.Cols, m.cfg.Grid.Rows)
	m.current, m.next = nil, nil
	m.status = StatusIdle
	m.held, m.hidden = false, false
	m.clearing = false
	m.clearLeft = 0
	m.doomed = nil
	m.shown = nil
	m.score, m.rows, m.cells, m.pieces = 0, 0, 0, 0
}

// Start begins a game from Idle with an empty grid.
func (m *Machine) Start() []core.Event {
	if m.status != StatusIdle {
		return nil
	}
	m.grid = NewGrid(m.cfg.Grid.Cols, m.cfg.Grid.Rows)
	m.status = StatusPlaying
	n := m.makePiece()
	m.next = &n
	return m.spawn()
}

// Visible resumes a game paused by Hidden, or starts an idle one when
// auto-start is enabled. A game the player paused stays paused.
func (m *Machine) Visible() []core.Event {
	m.hidden = false
	switch m.status {
	case StatusPaused:
		if !m.held {
			m.status = StatusPlaying
		}
	case StatusIdle:
		if m.cfg.Timing.AutoStart {
			return m.Start()
		}
	}
	return nil
}

// Hidden pauses a running game.
func (m *Machine) Hidden() {
	m.hidden = true
	if m.status == StatusPlaying {
		m.status = StatusPaused
	}
}

// TogglePause sets or releases the player's pause.
func (m *Machine) TogglePause() {
	switch m.status {
	case StatusPlaying:
		m.held = true
		m.status = StatusPaused
	case StatusPaused:
		m.held = !m.held
		if !m.held && !m.hidden {
			m.status = StatusPlaying
		}
	}
}

// Held reports whether the player paused the game.
func (m *Machine) Held() bool { return m.held }

func (m *Machine) canMove() bool {
	return m.status == StatusPlaying && !m.clearing && m.current != nil
}

func (m *Machine) shift(dc, dr int) bool {
	if !m.canMove() {
		return false
	}
	moved := m.current.Moved(dc, dr)
	if !m.grid.Fits(moved) {
		return false
	}
	m.current = &moved
	return true
}

// MoveLeft shifts the current piece one column left if it fits.
func (m *Machine) MoveLeft() bool { return m.shift(-1, 0) }

// MoveRight shifts the current piece one column right if it fits.
func (m *Machine) MoveRight() bool { return m.shift(1, 0) }

// MoveDown shifts the current piece one row down if it fits. A blocked
// manual move does not lock; locking happens on the next Tick.
func (m *Machine) MoveDown() bool { return m.shift(0, 1) }

// Tick is the fixed-interval fall step: move down, or lock and then
// either start the clear animation or spawn the next piece.
func (m *Machine) Tick() []core.Event {
	if m.status != StatusPlaying || m.clearing || m.current == nil {
		return nil
	}

	if m.MoveDown() {
		return nil
	}

	locked := *m.current
	m.grid.Lock(locked)
	m.current = nil
	w, h := locked.Shape.Size()
	events := []core.Event{{
		Kind: core.EventLock,
		Pos:  core.Vec2{X: float64(locked.Col) + float64(w)/2, Y: float64(locked.Row) + float64(h)/2},
	}}

	full := m.grid.CompleteRows()
	if len(full) == 0 {
		return append(events, m.spawn()...)
	}

	m.clearing = true
	m.clearLeft = float64(m.cfg.Timing.ClearFrames)
	m.doomed = m.grid.PiecesInRows(full)
	if m.clearLeft <= 0 {
		events = append(events, m.finishClear()...)
	}
	return events
}

// Animate advances the clear animation by frames reference frames and
// completes the clear when it runs out.
func (m *Machine) Animate(frames float64) []core.Event {
	if !m.clearing || m.status != StatusPlaying {
		return nil
	}
	m.clearLeft -= frames
	if m.clearLeft > 0 {
		return nil
	}
	return m.finishClear()
}

func (m *Machine) finishClear() []core.Event {
	rows, cells := m.grid.Resolve()
	m.clearing = false
	m.clearLeft = 0
	m.doomed = nil

	m.rows += rows
	m.cells += cells
	m.score += rows*m.cfg.Scoring.RowPoints + cells*m.cfg.Scoring.CellPoints

	events := []core.Event{{Kind: core.EventLineClear, Count: rows}}
	return append(events, m.spawn()...)
}

// spawn promotes next to current at the top centre. A blocked spawn ends
// the game.
func (m *Machine) spawn() []core.Event {
	p := *m.next
	w, _ := p.Shape.Size()
	p.Col = (m.grid.Cols() - w) / 2
	p.Row = 0

	n := m.makePiece()
	m.next = &n

	if !m.grid.Fits(p) {
		m.current = nil
		m.status = StatusGameOver
		return []core.Event{{Kind: core.EventGameOver, Count: m.score}}
	}
	m.current = &p
	m.shown = p.Content
	m.pieces++
	return nil
}

func (m *Machine) makePiece() Piece {
	var rec content.Record
	if len(m.records) > 0 {
		rec = m.records[m.cursor%len(m.records)]
		m.cursor++
	}
	return newPiece(m.rng, rec)
}

// Status returns the lifecycle state.
func (m *Machine) Status() Status { return m.status }

// Grid returns the lock surface.
func (m *Machine) Grid() *Grid { return m.grid }

// Current returns the falling piece, nil between lock and spawn.
func (m *Machine) Current() *Piece { return m.current }

// Next returns the upcoming piece, nil before Start.
func (m *Machine) Next() *Piece { return m.next }

// Clearing reports whether a clear animation is running.
func (m *Machine) Clearing() bool { return m.clearing }

// Doomed reports whether the cell belongs to a piece about to be cleared.
func (m *Machine) Doomed(c *Cell) bool {
	return c != nil && m.doomed[c.PieceID]
}

// ClearProgress returns how far the clear animation has run, 0..1.
func (m *Machine) ClearProgress() float64 {
	if !m.clearing || m.cfg.Timing.ClearFrames <= 0 {
		return 0
	}
	return core.ClampF(1-m.clearLeft/float64(m.cfg.Timing.ClearFrames), 0, 1)
}

// Shown returns the record of the most recent current piece.
func (m *Machine) Shown() content.Record { return m.shown }

// Score returns points so far.
func (m *Machine) Score() int { return m.score }

// Lines returns the number of completed rows cleared.
func (m *Machine) Lines() int { return m.rows }
