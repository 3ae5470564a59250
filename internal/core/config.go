package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int     // Screen width in cells
	ScreenH    int     // Screen height in cells
	TickRate   int     // Frames per second requested from the host (default 60)
	Seed       int64   // RNG seed for deterministic gameplay
	CellAspect float64 // Cell height divided by cell width (2 for terminals)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		CellAspect: 2,
	}
}

// Aspect returns CellAspect, defaulting to 2 when unset.
func (c RuntimeConfig) Aspect() float64 {
	if c.CellAspect <= 0 {
		return 2
	}
	return c.CellAspect
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind classifies something noteworthy that happened during a step.
type EventKind int

const (
	EventShot EventKind = iota + 1
	EventHit
	EventLock
	EventLineClear
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventHit:
		return "hit"
	case EventLock:
		return "lock"
	case EventLineClear:
		return "line_clear"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by games for cosmetic host reactions such as sound.
type Event struct {
	Kind  EventKind
	Pos   Vec2 // Where it happened, if meaningful
	Count int  // Rows cleared, etc.
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
