package gui

import (
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlai-aus/arcade/internal/content"
	"github.com/mlai-aus/arcade/internal/core"
	"github.com/mlai-aus/arcade/internal/storage"
)

type fakeControls struct {
	focused bool
	pressed map[core.Action]bool
	x, y    int
	click   bool
}

func (c *fakeControls) Focused() bool              { return c.focused }
func (c *fakeControls) Pressed(a core.Action) bool { return c.pressed[a] }
func (c *fakeControls) Cursor() (x, y int)         { return c.x, c.y }
func (c *fakeControls) Clicked() bool              { return c.click }

type stubGame struct {
	steps     int
	intervals int
	last      core.InputFrame
	state     core.GameState
	lib       *content.Library
}

func (g *stubGame) ID() string                     { return "stub" }
func (g *stubGame) Title() string                  { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)       { g.state = core.GameState{} }
func (g *stubGame) State() core.GameState          { return g.state }
func (g *stubGame) Render(*core.Screen)            {}
func (g *stubGame) Interval() time.Duration        { return 100 * time.Millisecond }
func (g *stubGame) SetContent(lib content.Library) { g.lib = &lib }
func (g *stubGame) OnInterval() core.StepResult {
	g.intervals++
	return core.StepResult{State: g.state}
}
func (g *stubGame) ShotStats() (shots, hits int) { return 3, 1 }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.state}
}

func newTestWindow(g *stubGame, opts Options) (*Window, *fakeControls) {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	w := NewWindow(g, cfg, opts)
	c := &fakeControls{focused: true, pressed: map[core.Action]bool{}}
	w.controls = c
	return w, c
}

func TestWindowUsesPixelAspect(t *testing.T) {
	w, _ := newTestWindow(&stubGame{}, Options{})
	assert.Equal(t, 2.0, w.config.CellAspect)

	width, height := w.Layout(0, 0)
	assert.Equal(t, 80*CellW, width)
	assert.Equal(t, 24*CellH, height)
}

func TestUpdateMapsInput(t *testing.T) {
	g := &stubGame{}
	w, c := newTestWindow(g, Options{})

	c.pressed[core.ActionLeft] = true
	c.x, c.y = 84, 40
	c.click = true
	require.NoError(t, w.update(time.Now()))

	assert.True(t, g.last.Has(core.ActionLeft))
	require.Len(t, g.last.Clicks, 1)
	assert.Equal(t, core.Vec2{X: 10.5, Y: 2.5}, g.last.Clicks[0])
	assert.True(t, g.last.Pointer.Inside)
}

func TestClickOutsideIgnored(t *testing.T) {
	g := &stubGame{}
	w, c := newTestWindow(g, Options{})

	c.x, c.y = -5, 10
	c.click = true
	require.NoError(t, w.update(time.Now()))
	assert.Empty(t, g.last.Clicks)
	assert.False(t, g.last.Pointer.Inside)
}

func TestFocusLossStopsStepping(t *testing.T) {
	g := &stubGame{}
	w, c := newTestWindow(g, Options{})
	now := time.Now()

	require.NoError(t, w.update(now))
	c.focused = false
	require.NoError(t, w.update(now.Add(16*time.Millisecond)))
	assert.Equal(t, core.VisibilityHidden, g.last.Visibility)
	steps := g.steps

	require.NoError(t, w.update(now.Add(time.Second)))
	assert.Equal(t, steps, g.steps)

	c.focused = true
	require.NoError(t, w.update(now.Add(10*time.Second)))
	assert.Equal(t, core.VisibilityVisible, g.last.Visibility)
	assert.Equal(t, 1.0, g.last.Frames, "the hidden period is not replayed")
	assert.Equal(t, 0, g.intervals)
}

func TestIntervalAccumulates(t *testing.T) {
	g := &stubGame{}
	w, _ := newTestWindow(g, Options{})
	now := time.Now()

	require.NoError(t, w.update(now))
	require.NoError(t, w.update(now.Add(250*time.Millisecond)))
	assert.Equal(t, 2, g.intervals)
	assert.Equal(t, 50*time.Millisecond, w.acc)
}

func TestQuitSavesAndTerminates(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	g := &stubGame{}
	w, c := newTestWindow(g, Options{Store: store})
	g.state.Score = 9

	c.pressed[core.ActionQuit] = true
	assert.ErrorIs(t, w.update(time.Now()), ebiten.Termination)

	high, err := store.HighScore("stub")
	require.NoError(t, err)
	assert.Equal(t, 9, high)

	totals, err := store.ShotTotals("stub")
	require.NoError(t, err)
	assert.Equal(t, 3, totals.Shots)
}

func TestRestartAfterGameOver(t *testing.T) {
	g := &stubGame{}
	w, c := newTestWindow(g, Options{})

	g.state.GameOver = true
	require.NoError(t, w.update(time.Now()))
	assert.True(t, w.State().GameOver)

	c.pressed[core.ActionRestart] = true
	require.NoError(t, w.update(time.Now()))
	assert.False(t, w.State().GameOver)
}

func TestRestartDropsPendingInterval(t *testing.T) {
	g := &stubGame{}
	w, c := newTestWindow(g, Options{})
	now := time.Now()

	require.NoError(t, w.update(now))
	require.NoError(t, w.update(now.Add(90*time.Millisecond)))
	require.Equal(t, 0, g.intervals)

	g.state.GameOver = true
	require.NoError(t, w.update(now.Add(95*time.Millisecond)))
	c.pressed[core.ActionRestart] = true
	require.NoError(t, w.update(now.Add(96*time.Millisecond)))
	c.pressed[core.ActionRestart] = false

	require.NoError(t, w.update(now.Add(100*time.Millisecond)))
	require.NoError(t, w.update(now.Add(120*time.Millisecond)))
	assert.Equal(t, 0, g.intervals, "time from the previous game must not fire the new one")
	assert.Equal(t, 20*time.Millisecond, w.acc)
}

func TestRepeatedTimestampDoesNotStep(t *testing.T) {
	g := &stubGame{}
	w, _ := newTestWindow(g, Options{})
	now := time.Now()

	require.NoError(t, w.update(now))
	require.NoError(t, w.update(now))
	assert.Equal(t, 1, g.steps)

	require.NoError(t, w.update(now.Add(time.Second/60)))
	assert.Equal(t, 2, g.steps)
	assert.InDelta(t, 1.0, g.last.Frames, 1e-6)
}

func TestContentDrained(t *testing.T) {
	g := &stubGame{}
	ch := make(chan content.Library, 1)
	w, _ := newTestWindow(g, Options{Content: ch})

	ch <- content.Default()
	require.NoError(t, w.update(time.Now()))
	require.NotNil(t, g.lib)

	close(ch)
	require.NoError(t, w.update(time.Now()))
	assert.Nil(t, w.opts.Content)
}

func TestBlockShade(t *testing.T) {
	tests := []struct {
		r     rune
		shade float64
		ok    bool
	}{
		{'█', 1, true},
		{'▓', 0.75, true},
		{'░', 0.25, true},
		{'x', 0, false},
	}
	for _, tt := range tests {
		shade, ok := blockShade(tt.r)
		assert.Equal(t, tt.ok, ok, string(tt.r))
		assert.Equal(t, tt.shade, shade, string(tt.r))
	}
}

func TestCellColorPremultiplied(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, cellColor(core.ColorBrightWhite, false, 1))
	assert.Equal(t, color.RGBA{127, 127, 127, 127}, cellColor(core.ColorBrightWhite, true, 1))
	assert.Equal(t, color.RGBA{}, cellColor(core.ColorRed, false, -1))
}
