package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlai-aus/arcade/internal/config"
	"github.com/mlai-aus/arcade/internal/content"
	"github.com/mlai-aus/arcade/internal/core"
)

func machineConfig() config.TetrisConfig {
	cfg := config.DefaultTetrisConfig()
	cfg.Difficulty.Enabled = false
	return cfg
}

func newMachine(cfg config.TetrisConfig, seed int64) *Machine {
	return NewMachine(cfg, rand.New(rand.NewSource(seed)))
}

func hasEvent(events []core.Event, k core.EventKind) bool {
	for _, e := range events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

func TestStateTransitions(t *testing.T) {
	cfg := machineConfig()
	cfg.Timing.AutoStart = false
	m := newMachine(cfg, 1)

	require.Equal(t, StatusIdle, m.Status())
	m.Visible()
	assert.Equal(t, StatusIdle, m.Status(), "no auto-start")
	assert.Nil(t, m.Tick())

	m.Start()
	require.Equal(t, StatusPlaying, m.Status())
	require.NotNil(t, m.Current())
	require.NotNil(t, m.Next())
	assert.Equal(t, 0, m.Current().Row)

	m.Hidden()
	assert.Equal(t, StatusPaused, m.Status())
	before := *m.Current()
	assert.False(t, m.MoveLeft())
	assert.False(t, m.MoveDown())
	assert.Nil(t, m.Tick())
	assert.Equal(t, before, *m.Current())

	m.Visible()
	assert.Equal(t, StatusPlaying, m.Status())

	m.Reset()
	assert.Equal(t, StatusIdle, m.Status())
	assert.Nil(t, m.Current())
	assert.Zero(t, m.Grid().Occupied())
}

func TestPlayerPauseSurvivesVisibility(t *testing.T) {
	m := newMachine(machineConfig(), 1)
	m.Start()

	m.TogglePause()
	require.Equal(t, StatusPaused, m.Status())
	m.Hidden()
	m.Visible()
	assert.Equal(t, StatusPaused, m.Status(), "regaining visibility keeps the player's pause")
	assert.True(t, m.Held())
	assert.Nil(t, m.Tick())

	m.TogglePause()
	assert.Equal(t, StatusPlaying, m.Status())

	m.Hidden()
	m.TogglePause()
	m.TogglePause()
	assert.Equal(t, StatusPaused, m.Status(), "a hidden game cannot be unpaused by key")
	m.Visible()
	assert.Equal(t, StatusPlaying, m.Status())
}

func TestAutoStartOnVisible(t *testing.T) {
	m := newMachine(machineConfig(), 1)
	m.Visible()
	assert.Equal(t, StatusPlaying, m.Status())
}

func TestMovesStayInBounds(t *testing.T) {
	m := newMachine(machineConfig(), 3)
	m.Start()
	m.current = &Piece{Shape: ShapeI4, Col: 3, Row: 0, InstanceID: "p"}

	for range 20 {
		m.MoveLeft()
	}
	assert.Equal(t, 0, m.Current().Col)
	for range 20 {
		m.MoveRight()
	}
	assert.Equal(t, 6, m.Current().Col)
	for range 40 {
		m.MoveDown()
	}
	assert.Equal(t, 13, m.Current().Row, "manual down stops at the floor without locking")
	assert.Zero(t, m.Grid().Occupied())

	events := m.Tick()
	assert.True(t, hasEvent(events, core.EventLock))
	assert.Equal(t, 4, m.Grid().Occupied())
}

func TestClearAnimationBlocksMoves(t *testing.T) {
	cfg := machineConfig()
	cfg.Timing.ClearFrames = 10
	m := newMachine(cfg, 5)
	m.Start()

	wall := Piece{Shape: ShapeI3, Col: 0, Row: 13, InstanceID: "w1"}
	m.grid.Lock(wall)
	m.grid.Lock(Piece{Shape: ShapeI3, Col: 7, Row: 13, InstanceID: "w2"})
	m.current = &Piece{Shape: ShapeI4, Col: 3, Row: 13, InstanceID: "p"}

	events := m.Tick()
	require.True(t, hasEvent(events, core.EventLock))
	require.True(t, m.Clearing())
	assert.True(t, m.Doomed(m.grid.At(0, 13)))

	assert.False(t, m.MoveLeft())
	assert.False(t, m.MoveRight())
	assert.False(t, m.MoveDown())
	assert.Nil(t, m.Tick(), "fall ticks wait for the animation")

	assert.Nil(t, m.Animate(5))
	assert.InDelta(t, 0.5, m.ClearProgress(), 1e-9)

	m.Hidden()
	assert.Nil(t, m.Animate(100), "paused animation does not advance")
	m.Visible()

	events = m.Animate(5)
	require.True(t, hasEvent(events, core.EventLineClear))
	assert.False(t, m.Clearing())
	assert.Zero(t, m.Grid().Occupied())
	assert.Equal(t, 100+10*10, m.Score())
	assert.Equal(t, 1, m.Lines())
	assert.NotNil(t, m.Current(), "next piece spawned after the clear")
}

func TestSpawnIntoOccupiedEndsGame(t *testing.T) {
	m := newMachine(machineConfig(), 9)
	m.Start()

	for r := 1; r < m.grid.Rows(); r++ {
		for c := 0; c < m.grid.Cols()-1; c++ {
			m.grid.Set(c, r, &Cell{PieceID: "wall"})
		}
	}
	m.current = &Piece{Shape: ShapeDot, Col: 4, Row: 0, InstanceID: "p"}

	events := m.Tick()
	assert.True(t, hasEvent(events, core.EventGameOver))
	assert.Equal(t, StatusGameOver, m.Status())
	assert.Nil(t, m.Current())

	m.Visible()
	assert.Equal(t, StatusGameOver, m.Status(), "visibility does not leave game over")
	m.Reset()
	assert.Equal(t, StatusIdle, m.Status())
}

func TestRandomPlayKeepsGridInvariants(t *testing.T) {
	cfg := machineConfig()
	cfg.Timing.ClearFrames = 0
	m := newMachine(cfg, 2024)
	rng := rand.New(rand.NewSource(1))
	m.Start()

	games := 0
	for i := 0; i < 5000; i++ {
		switch rng.Intn(4) {
		case 0:
			m.MoveLeft()
		case 1:
			m.MoveRight()
		}
		m.Tick()

		if m.Status() == StatusGameOver {
			games++
			m.Reset()
			m.Start()
			continue
		}
		if rows := m.Grid().CompleteRows(); len(rows) != 0 {
			t.Fatalf("step %d: complete rows left after lock+clear: %v", i, rows)
		}
		if p := m.Current(); p != nil && !m.Grid().Fits(*p) {
			t.Fatalf("step %d: current piece overlaps locked cells", i)
		}
	}
	assert.Positive(t, games+m.Lines())
}

func TestPiecesCarryRecords(t *testing.T) {
	m := newMachine(machineConfig(), 1)
	m.SetRecords([]content.Record{
		content.Testimonial{Author: "A", Quote: "one"},
		content.Testimonial{Author: "B", Quote: "two"},
	})
	m.Start()

	first := m.Current().Content.(content.Testimonial)
	second := m.Next().Content.(content.Testimonial)
	assert.Equal(t, "A", first.Author)
	assert.Equal(t, "B", second.Author)
	assert.Equal(t, first, m.Shown())
	assert.NotEqual(t, m.Current().InstanceID, m.Next().InstanceID)
}
