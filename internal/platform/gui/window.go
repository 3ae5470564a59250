// Package gui hosts games in a pixel window using ebiten. The game's cell
// screen is drawn as coloured blocks and glyphs, with logo sprites painted
// from the asset cache on top.
package gui

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mlai-aus/arcade/internal/assets"
	"github.com/mlai-aus/arcade/internal/audio"
	"github.com/mlai-aus/arcade/internal/content"
	"github.com/mlai-aus/arcade/internal/core"
	"github.com/mlai-aus/arcade/internal/registry"
	"github.com/mlai-aus/arcade/internal/storage"
)

// Cell size in pixels. One game cell is twice as tall as it is wide, the
// same aspect as a terminal cell.
const (
	CellW = 8
	CellH = 16
)

// Options carries the optional services a window uses.
type Options struct {
	Store   *storage.Store
	Player  *audio.Player
	Logger  *log.Logger
	Assets  assets.Lookup
	Content <-chan content.Library
	Scale   int
}

// Window implements ebiten.Game for one arcade game.
type Window struct {
	game     registry.Game
	interval registry.IntervalGame
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	controls controls

	input   core.InputFrame
	clock   *core.FrameClock
	focused bool
	last    time.Time
	acc     time.Duration
	state   core.GameState
	saved   bool

	images map[string]*ebiten.Image
}

// NewWindow creates a window sized cfg.ScreenW x cfg.ScreenH cells. The
// game must already have been prepared with registry.Prepare.
func NewWindow(game registry.Game, cfg core.RuntimeConfig, opts Options) *Window {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	cfg.CellAspect = float64(CellH) / float64(CellW)

	w := &Window{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
		opts:     opts,
		controls: ebitenControls{},
		input:    core.NewInputFrame(),
		clock:    core.NewFrameClock(),
		focused:  true,
		images:   make(map[string]*ebiten.Image),
	}
	if ig, ok := game.(registry.IntervalGame); ok {
		w.interval = ig
	}
	game.Reset(cfg)
	w.state = game.State()
	return w
}

// Update advances the game once per ebiten tick.
func (w *Window) Update() error {
	return w.update(time.Now())
}

func (w *Window) update(now time.Time) error {
	w.drainContent()

	focused := w.controls.Focused()
	if focused != w.focused {
		w.focused = focused
		if !focused {
			w.input.Visibility = core.VisibilityHidden
			w.apply(w.game.Step(w.input))
			w.input.Clear()
			return nil
		}
		w.input.Visibility = core.VisibilityVisible
		w.clock.Reset()
		w.last = time.Time{}
		w.acc = 0
	}
	if !w.focused {
		return nil
	}

	if w.controls.Pressed(core.ActionQuit) {
		w.saveResults()
		return ebiten.Termination
	}
	for a := range actionKeys {
		if a != core.ActionQuit && w.controls.Pressed(a) {
			w.input.Set(a)
		}
	}

	px, py := w.controls.Cursor()
	pos := w.cellAt(px, py)
	w.input.Pointer = &core.Pointer{Pos: pos, Inside: w.inside(pos)}
	if w.controls.Clicked() && w.inside(pos) {
		w.input.Click(pos.X, pos.Y)
	}

	if w.input.Has(core.ActionRestart) && w.state.GameOver {
		w.config.Seed = now.UnixNano()
		w.game.Reset(w.config)
		w.state = w.game.State()
		w.saved = false
		w.clock.Reset()
		w.last = time.Time{}
		w.acc = 0
		w.input.Clear()
		return nil
	}

	// A repeated timestamp covers no time; input waits for the next update.
	if frames := w.clock.Tick(now); frames > 0 {
		w.input.Frames = frames
		w.apply(w.game.Step(w.input))
		w.input.Clear()
	}

	w.runInterval(now)
	return nil
}

// runInterval fires OnInterval for every full interval elapsed since the
// previous update.
func (w *Window) runInterval(now time.Time) {
	if w.interval == nil {
		return
	}
	if !w.last.IsZero() {
		w.acc += now.Sub(w.last)
	}
	w.last = now

	for {
		d := w.interval.Interval()
		if d <= 0 || w.acc < d {
			return
		}
		w.acc -= d
		w.apply(w.interval.OnInterval())
	}
}

func (w *Window) drainContent() {
	if w.opts.Content == nil {
		return
	}
	select {
	case lib, ok := <-w.opts.Content:
		if !ok {
			w.opts.Content = nil
			return
		}
		if r, ok := w.game.(registry.ContentReceiver); ok {
			r.SetContent(lib)
		}
	default:
	}
}

// cellAt maps a pixel position to canvas coordinates in cells.
func (w *Window) cellAt(px, py int) core.Vec2 {
	return core.Vec2{X: float64(px) / CellW, Y: float64(py) / CellH}
}

func (w *Window) inside(pos core.Vec2) bool {
	return pos.X >= 0 && pos.Y >= 0 &&
		pos.X < float64(w.config.ScreenW) && pos.Y < float64(w.config.ScreenH)
}

func (w *Window) apply(r core.StepResult) {
	w.state = r.State
	if w.opts.Player != nil {
		for _, ev := range r.Events {
			w.opts.Player.Play(audio.ForEvent(ev.Kind))
		}
	}
	if w.state.GameOver {
		w.saveResults()
	}
}

// saveResults stores the score and shot statistics once per game.
func (w *Window) saveResults() {
	if w.saved {
		return
	}
	w.saved = true
	if w.opts.Store == nil {
		return
	}

	id := w.game.ID()
	if score := w.game.State().Score; score > 0 {
		if _, err := w.opts.Store.SaveScore(id, score); err != nil {
			w.opts.Logger.Warn("could not save score", "game", id, "error", err)
		}
	}
	if sr, ok := w.game.(registry.ShotReporter); ok {
		shots, hits := sr.ShotStats()
		if err := w.opts.Store.SaveShotStats(id, shots, hits); err != nil {
			w.opts.Logger.Warn("could not save shot stats", "game", id, "error", err)
		}
	}
}

// Layout returns the fixed logical size in pixels.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.config.ScreenW * CellW, w.config.ScreenH * CellH
}

// State returns the last state reported by the game.
func (w *Window) State() core.GameState {
	return w.state
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	w := NewWindow(game, cfg, opts)

	ebiten.SetWindowSize(cfg.ScreenW*CellW*w.opts.Scale, cfg.ScreenH*CellH*w.opts.Scale)
	ebiten.SetWindowTitle(game.Title())
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}
	ebiten.SetRunnableOnUnfocused(true)

	err := ebiten.RunGame(w)
	w.saveResults()
	return err
}
