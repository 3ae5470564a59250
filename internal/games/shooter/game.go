// Package shooter implements Logo Shooter: partner logos fly out of a
// starfield toward the camera and the player shoots them down.
//
// The simulation works in viewport percent and depth units. Everything that
// reaches the screen goes through a Projector, so hit testing and drawing
// agree on where a logo is.
package shooter

import (
	"math/rand"

	"github.com/mlai-aus/arcade/internal/assets"
	"github.com/mlai-aus/arcade/internal/config"
	"github.com/mlai-aus/arcade/internal/content"
	"github.com/mlai-aus/arcade/internal/core"
	"github.com/mlai-aus/arcade/internal/registry"
)

// crosshairStep is how far one arrow key press moves the crosshair, in cells.
const crosshairStep = 2

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

// Game implements the Logo Shooter game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.ShooterConfig
	pinned     bool // cfg was supplied by the caller, skip loading
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	proj    Projector
	pool    *Pool
	stars   *Starfield
	effects Effects

	logos  []content.Logo
	lookup assets.Lookup

	canvas    Canvas
	crosshair core.Vec2
	clockMs   float64
	tick      uint64

	shots, hits, score int
	roundLeftMs        float64

	paused   bool // toggled by the player
	hidden   bool // host view not visible
	gameOver bool
}

// New creates a Logo Shooter that loads its config on Reset.
func New() *Game {
	return &Game{logos: content.Default().Logos}
}

// NewWithConfig creates a Logo Shooter with a fixed configuration.
func NewWithConfig(cfg config.ShooterConfig) *Game {
	g := New()
	g.cfg = cfg
	g.pinned = true
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Logo Shooter"
}

// SetContent swaps the logo rotation.
func (g *Game) SetContent(lib content.Library) {
	if len(lib.Logos) == 0 {
		return
	}
	g.logos = lib.Logos
	if g.pool != nil {
		g.pool.SetLogos(g.logos)
	}
}

// AssetPaths returns the logo images the game can draw.
func (g *Game) AssetPaths() []string {
	return content.Library{Logos: g.logos}.ImagePaths()
}

// UseAssets sets the image cache used for logo colours and sprites.
func (g *Game) UseAssets(lookup assets.Lookup) {
	g.lookup = lookup
}

// ShotStats returns shots fired and hits since the last Reset.
func (g *Game) ShotStats() (shots, hits int) {
	return g.shots, g.hits
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.pinned {
		cfg, err := config.LoadShooter(configPath)
		if err != nil {
			cfg = config.DefaultShooterConfig()
		}
		if difficultyPreset != "" {
			config.ApplyShooterPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.proj = NewProjector(g.cfg.Projection)

	g.pool = NewPool(g.cfg.Pool, g.cfg.Motion, g.rng)
	g.pool.SetLogos(g.logos)
	g.pool.Fill()
	g.stars = NewStarfield(g.cfg.Stars, g.cfg.Motion.ExitDepth, g.rng)
	g.effects.Reset()

	g.canvas = Canvas{W: float64(runtime.ScreenW), H: float64(runtime.ScreenH), Aspect: runtime.Aspect()}
	g.crosshair = g.canvas.Center()
	g.clockMs = 0
	g.tick = 0
	g.shots, g.hits, g.score = 0, 0, 0
	g.roundLeftMs = float64(g.cfg.Gameplay.RoundSeconds) * 1000
	g.paused = false
	g.hidden = false
	g.gameOver = false
	g.updateScale()
}

// Step advances the game by in.Elapsed() reference frames.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch in.Visibility {
	case core.VisibilityHidden:
		g.hidden = true
	case core.VisibilityVisible:
		g.hidden = false
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.playing() {
		return core.StepResult{State: g.State()}
	}

	frames := in.Elapsed()
	g.tick++
	g.clockMs += frames * 1000 / core.ReferenceFPS
	now := g.now()

	speed := g.difficulty.Speed(1, g.score, int(g.tick))
	g.pool.Tick(frames, speed, now, int64(g.cfg.Effects.HitFlashMs))
	g.stars.Tick(frames)
	g.updateScale()

	g.steerCrosshair(in)

	var events []core.Event
	for _, c := range in.Clicks {
		events = append(events, g.Shoot(c)...)
	}
	if in.Has(core.ActionFire) {
		events = append(events, g.Shoot(g.crosshair)...)
	}

	g.effects.Prune(now)

	if g.cfg.Gameplay.RoundSeconds > 0 {
		g.roundLeftMs -= frames * 1000 / core.ReferenceFPS
		if g.roundLeftMs <= 0 {
			g.roundLeftMs = 0
			g.gameOver = true
			events = append(events, core.Event{Kind: core.EventGameOver, Count: g.score})
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) playing() bool {
	return !g.paused && !g.hidden && !g.gameOver
}

func (g *Game) now() int64 {
	return int64(g.clockMs)
}

func (g *Game) steerCrosshair(in core.InputFrame) {
	if in.Pointer != nil && in.Pointer.Inside {
		g.crosshair = in.Pointer.Pos
	}
	if in.Has(core.ActionLeft) {
		g.crosshair.X -= crosshairStep
	}
	if in.Has(core.ActionRight) {
		g.crosshair.X += crosshairStep
	}
	if in.Has(core.ActionUp) {
		g.crosshair.Y -= crosshairStep / g.canvas.Aspect
	}
	if in.Has(core.ActionDown) {
		g.crosshair.Y += crosshairStep / g.canvas.Aspect
	}
	g.crosshair.X = core.ClampF(g.crosshair.X, 0, max(0, g.canvas.W-1))
	g.crosshair.Y = core.ClampF(g.crosshair.Y, 0, max(0, g.canvas.H-1))
}

// Shoot fires at click (cell coordinates). Every call counts as a shot;
// at most one not-yet-hit logo is marked, and only that raises Hits.
func (g *Game) Shoot(click core.Vec2) []core.Event {
	g.shots++
	now := g.now()

	g.effects.Add(Effect{
		Kind: EffectLaser,
		From: core.Vec2{X: g.canvas.W / 2, Y: g.canvas.H - 1},
		To:   click,
		Born: now,
		TTL:  int64(g.cfg.Effects.LaserMs),
	})
	events := []core.Event{{Kind: core.EventShot, Pos: click}}

	entities := g.pool.Entities()
	idx := HitTest(click, entities, g.proj, g.canvas, g.cfg.Motion.ExitDepth)
	if idx < 0 {
		return events
	}

	e := entities[idx]
	e.Hit = true
	e.HitAt = now
	g.hits++
	g.score += g.cfg.Gameplay.PointsPerHit

	at := g.project(e).Pos
	g.effects.Add(Effect{Kind: EffectBurst, From: at, To: at, Born: now, TTL: int64(g.cfg.Effects.BurstMs)})
	return append(events, core.Event{Kind: core.EventHit, Pos: at, Count: g.hits})
}

func (g *Game) project(e *Entity) Projection {
	return g.proj.Project(core.Vec2{X: e.X, Y: e.Y}, e.Progress(g.cfg.Motion.ExitDepth), g.canvas)
}

func (g *Game) updateScale() {
	for _, e := range g.pool.Entities() {
		e.Scale = g.project(e).Size
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.hidden,
	}
}

// Register the game with the registry
func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}
