// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mlai-aus/arcade/internal/assets"
	"github.com/mlai-aus/arcade/internal/content"
	"github.com/mlai-aus/arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "shooter", "tetris").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame. in.Frames carries the
	// elapsed time normalised to the reference frame rate.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// IntervalGame is implemented by games that need a second fixed-interval
// timer besides the frame loop (the grid game's fall tick).
// Hosts call OnInterval every Interval() while the game is visible.
type IntervalGame interface {
	Game
	Interval() time.Duration
	OnInterval() core.StepResult
}

// ContentReceiver accepts content records, at start and on hot reload.
type ContentReceiver interface {
	SetContent(lib content.Library)
}

// AssetConsumer declares the images a game wants loaded and receives the
// cache once it is populated. Missing entries must render as placeholders.
type AssetConsumer interface {
	AssetPaths() []string
	UseAssets(lookup assets.Lookup)
}

// ShotReporter exposes per-session accuracy for games that count shots.
type ShotReporter interface {
	ShotStats() (shots, hits int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Prepare wires the optional capabilities of g: content is handed to a
// ContentReceiver and, when cache is non-nil, an AssetConsumer gets it.
// Hosts call this once after Create and before the first Reset.
func Prepare(g Game, lib content.Library, cache assets.Lookup) {
	if r, ok := g.(ContentReceiver); ok {
		r.SetContent(lib)
	}
	if a, ok := g.(AssetConsumer); ok && cache != nil {
		a.UseAssets(cache)
	}
}
