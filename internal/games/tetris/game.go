// Package tetris implements Testimonial Tetris, a falling-block game where
// every block carries a community testimonial.
//
// It differs from classic Tetris on purpose: blocks are plain rectangles
// that never rotate, and completing a row removes every piece touching
// that row in full, after which each column settles independently.
package tetris

import (
	"math/rand"
	"time"

	"github.com/mlai-aus/arcade/internal/assets"
	"github.com/mlai-aus/arcade/internal/config"
	"github.com/mlai-aus/arcade/internal/content"
	"github.com/mlai-aus/arcade/internal/core"
	"github.com/mlai-aus/arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game adapts a Machine to the arcade host.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.TetrisConfig
	pinned     bool
	difficulty *config.DifficultyManager

	m      *Machine
	lib    content.Library
	lookup assets.Lookup
	frame  uint64
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{lib: content.Default()}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	g := New()
	g.cfg = cfg
	g.pinned = true
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Testimonial Tetris"
}

// SetContent sets the testimonials attached to upcoming pieces.
func (g *Game) SetContent(lib content.Library) {
	if len(lib.Testimonials) == 0 {
		return
	}
	g.lib = lib
	if g.m != nil {
		g.m.SetRecords(g.records())
	}
}

func (g *Game) records() []content.Record {
	recs := make([]content.Record, 0, len(g.lib.Testimonials))
	for _, t := range g.lib.Testimonials {
		recs = append(recs, t)
	}
	return recs
}

// AssetPaths returns the testimonial avatars.
func (g *Game) AssetPaths() []string {
	return content.Library{Testimonials: g.lib.Testimonials}.ImagePaths()
}

// UseAssets sets the image cache for avatars.
func (g *Game) UseAssets(lookup assets.Lookup) {
	g.lookup = lookup
}

// Reset initializes or restarts the game. The view is assumed visible, so
// with auto-start the first piece spawns immediately.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.pinned {
		cfg, err := config.LoadTetris(configPath)
		if err != nil {
			cfg = config.DefaultTetrisConfig()
		}
		if difficultyPreset != "" {
			config.ApplyTetrisPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.m = NewMachine(g.cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.m.SetRecords(g.records())
	g.frame = 0
	g.m.Visible()
}

// Machine exposes the underlying state machine.
func (g *Game) Machine() *Machine {
	return g.m
}

// Step handles input and the clear animation for one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++
	var events []core.Event

	switch in.Visibility {
	case core.VisibilityHidden:
		g.m.Hidden()
	case core.VisibilityVisible:
		events = append(events, g.m.Visible()...)
	}

	if g.m.Status() == StatusIdle && (in.Has(core.ActionConfirm) || in.Has(core.ActionFire)) {
		events = append(events, g.m.Start()...)
	}
	if in.Has(core.ActionPause) {
		g.m.TogglePause()
	}

	if in.Has(core.ActionLeft) {
		g.m.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.m.MoveRight()
	}
	if in.Has(core.ActionDown) {
		g.m.MoveDown()
	}

	events = append(events, g.m.Animate(in.Elapsed())...)
	return core.StepResult{State: g.State(), Events: events}
}

// Interval is the current fall interval; it shortens as the score grows.
func (g *Game) Interval() time.Duration {
	base := time.Duration(g.cfg.Timing.FallIntervalMs) * time.Millisecond
	floor := time.Duration(g.cfg.Timing.MinFallIntervalMs) * time.Millisecond
	return g.difficulty.Interval(base, floor, g.m.Score(), 0)
}

// OnInterval runs one fall step.
func (g *Game) OnInterval() core.StepResult {
	events := g.m.Tick()
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.m.Score(),
		GameOver: g.m.Status() == StatusGameOver,
		Paused:   g.m.Status() == StatusPaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}
