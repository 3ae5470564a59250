package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/mlai-aus/arcade/internal/audio"
	"github.com/mlai-aus/arcade/internal/content"
	"github.com/mlai-aus/arcade/internal/core"
	"github.com/mlai-aus/arcade/internal/registry"
	"github.com/mlai-aus/arcade/internal/storage"
)

// Options carries the optional services a game model uses.
type Options struct {
	Store  *storage.Store
	Player *audio.Player
	Logger *log.Logger

	// Content delivers hot-reloaded libraries. Nil disables reloading.
	Content <-chan content.Library

	// ScreenshotDir defaults to ~/.arcade/screenshots.
	ScreenshotDir string
}

// GameModel runs one game inside Bubble Tea: the frame loop, the optional
// interval timer, focus as visibility, mouse clicks as pointer input, and
// score persistence.
type GameModel struct {
	game     registry.Game
	interval registry.IntervalGame
	screen   *core.Screen
	clock    *core.FrameClock
	opts     Options
	config   core.RuntimeConfig
	input    core.InputFrame
	keys     *KeyMapper
	state    core.GameState

	// gen is replaced whenever the loops start, stop or restart; ticks
	// carrying any other value are discarded.
	gen    int
	hidden bool

	standalone bool
	quitting   bool
	backToMenu bool
	saved      bool
}

// NewGameModel creates a model for game. The game must already have been
// prepared with registry.Prepare.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	m := GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		clock:  core.NewFrameClock(),
		opts:   opts,
		config: cfg,
		input:  core.NewInputFrame(),
		keys:   NewKeyMapper(),
		gen:    nextGen(),
	}
	if ig, ok := game.(registry.IntervalGame); ok {
		m.interval = ig
	}
	return m
}

// Init resets the game and starts the loops.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(m.loops(), waitContent(m.opts.Content))
}

// loops schedules the frame tick and, for interval games, the second timer.
func (m GameModel) loops() tea.Cmd {
	cmds := []tea.Cmd{frameCmd(m.config.TickRate, m.gen)}
	if m.interval != nil {
		cmds = append(cmds, intervalCmd(m.interval.Interval(), m.gen))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		return m.hide()

	case tea.FocusMsg:
		return m.show()

	case frameMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m.handleFrame(msg.at)

	case intervalMsg:
		if msg.gen != m.gen || m.interval == nil {
			return m, nil
		}
		return m.handleInterval()

	case ContentMsg:
		m.SetContent(msg.Library)
		return m, waitContent(m.opts.Content)
	}

	return m, nil
}

// SetContent hands a reloaded library to the game, if it takes content.
func (m GameModel) SetContent(lib content.Library) {
	if r, ok := m.game.(registry.ContentReceiver); ok {
		r.SetContent(lib)
		m.opts.Logger.Debug("content reloaded", "game", m.game.ID(), "records", len(lib.Records()))
	}
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.saveResults()
		m.quitting = true
		return m, tea.Quit
	}

	if m.input.Has(core.ActionBack) {
		delete(m.input.Actions, core.ActionBack)
		if m.state.GameOver || m.state.Paused {
			m.saveResults()
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			m.backToMenu = true
			return m, nil
		}
		if msg.String() == "esc" {
			m.input.Set(core.ActionPause)
		}
	}

	return m, nil
}

// handleMouse maps terminal cells to canvas coordinates at the cell centre.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pos := core.Vec2{X: float64(msg.X) + 0.5, Y: float64(msg.Y) + 0.5}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.input.Click(pos.X, pos.Y)
	case msg.Action == tea.MouseActionMotion:
		m.input.Pointer = &core.Pointer{Pos: pos, Inside: true}
	}
	return m, nil
}

// hide stops both loops and tells the game it is no longer visible.
func (m GameModel) hide() (tea.Model, tea.Cmd) {
	if m.hidden {
		return m, nil
	}
	m.hidden = true
	m.gen = nextGen()

	m.input.Visibility = core.VisibilityHidden
	m.apply(m.game.Step(m.input))
	m.input.Clear()
	return m, nil
}

// show resumes the loops without replaying the hidden period.
func (m GameModel) show() (tea.Model, tea.Cmd) {
	if !m.hidden {
		return m, nil
	}
	m.hidden = false
	m.gen = nextGen()
	m.clock.Reset()

	m.input.Visibility = core.VisibilityVisible
	return m, m.loops()
}

func (m GameModel) handleFrame(at time.Time) (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionRestart) && m.state.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.saved = false
		m.input.Clear()
		m.clock.Reset()
		m.gen = nextGen()
		return m, m.loops()
	}

	frames := m.clock.Tick(at)
	if frames <= 0 {
		return m, frameCmd(m.config.TickRate, m.gen)
	}
	m.input.Frames = frames
	m.apply(m.game.Step(m.input))
	m.input.Clear()

	return m, frameCmd(m.config.TickRate, m.gen)
}

func (m GameModel) handleInterval() (tea.Model, tea.Cmd) {
	m.apply(m.interval.OnInterval())
	return m, intervalCmd(m.interval.Interval(), m.gen)
}

// apply records the new state, plays sounds for events and saves results
// on the transition to game over.
func (m *GameModel) apply(r core.StepResult) {
	m.state = r.State
	if m.opts.Player != nil {
		for _, ev := range r.Events {
			m.opts.Player.Play(audio.ForEvent(ev.Kind))
		}
	}
	if m.state.GameOver {
		m.saveResults()
	}
}

// saveResults stores the score and shot statistics once per game.
func (m *GameModel) saveResults() {
	if m.saved {
		return
	}
	m.saved = true
	if m.opts.Store == nil {
		return
	}

	id := m.game.ID()
	if score := m.game.State().Score; score > 0 {
		if _, err := m.opts.Store.SaveScore(id, score); err != nil {
			m.opts.Logger.Warn("could not save score", "game", id, "error", err)
		}
	}
	if sr, ok := m.game.(registry.ShotReporter); ok {
		shots, hits := sr.ShotStats()
		if err := m.opts.Store.SaveShotStats(id, shots, hits); err != nil {
			m.opts.Logger.Warn("could not save shot stats", "game", id, "error", err)
		}
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
			return
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.opts.Logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.state
}

// Hidden reports whether the loops are stopped because focus was lost.
func (m GameModel) Hidden() bool {
	return m.hidden
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
