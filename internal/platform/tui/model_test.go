package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlai-aus/arcade/internal/content"
	"github.com/mlai-aus/arcade/internal/core"
	"github.com/mlai-aus/arcade/internal/storage"
)

type stubGame struct {
	steps     int
	intervals int
	resets    int
	last      core.InputFrame
	state     core.GameState
	events    []core.Event
	shots     int
	hits      int
	lib       *content.Library
}

func (g *stubGame) ID() string                   { return "stub" }
func (g *stubGame) Title() string                { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)     { g.resets++; g.state = core.GameState{} }
func (g *stubGame) State() core.GameState        { return g.state }
func (g *stubGame) Interval() time.Duration      { return 100 * time.Millisecond }
func (g *stubGame) ShotStats() (shots, hits int) { return g.shots, g.hits }
func (g *stubGame) SetContent(lib content.Library) {
	g.lib = &lib
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.state, Events: g.events}
}

func (g *stubGame) OnInterval() core.StepResult {
	g.intervals++
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

func newTestModel(t *testing.T, g *stubGame, opts Options) GameModel {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewGameModel(g, cfg, opts)
	m.Init()
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm, cmd
}

func TestFrameStepsGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})
	require.Equal(t, 1, g.resets)

	m, cmd := update(t, m, frameMsg{gen: m.gen, at: time.Now()})
	assert.Equal(t, 1, g.steps)
	assert.NotNil(t, cmd, "next frame is scheduled")
}

func TestBlurStopsLoops(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})

	before := m.gen
	m, cmd := update(t, m, tea.BlurMsg{})
	assert.Nil(t, cmd)
	assert.True(t, m.Hidden())
	assert.Equal(t, 1, g.steps, "hidden signal is delivered with one step")
	assert.Equal(t, core.VisibilityHidden, g.last.Visibility)

	m, _ = update(t, m, frameMsg{gen: before, at: time.Now()})
	m, _ = update(t, m, intervalMsg{gen: before})
	assert.Equal(t, 1, g.steps, "stale frame must be dropped")
	assert.Equal(t, 0, g.intervals, "stale interval must be dropped")

	m, cmd = update(t, m, tea.FocusMsg{})
	assert.NotNil(t, cmd)
	assert.False(t, m.Hidden())

	m, _ = update(t, m, frameMsg{gen: m.gen, at: time.Now()})
	assert.Equal(t, 2, g.steps)
	assert.Equal(t, core.VisibilityVisible, g.last.Visibility)
	assert.Equal(t, 1.0, g.last.Frames, "resumed clock does not replay the pause")
}

func TestModelsNeverShareGeneration(t *testing.T) {
	first := newTestModel(t, &stubGame{}, Options{})
	second := newTestModel(t, &stubGame{}, Options{})
	assert.NotEqual(t, first.gen, second.gen)

	g := &stubGame{}
	m := newTestModel(t, g, Options{})
	_, cmd := update(t, m, intervalMsg{gen: first.gen})
	assert.Equal(t, 0, g.intervals, "a tick from another model is ignored")
	assert.Nil(t, cmd, "no second interval loop is scheduled")
}

func TestRepeatedFrameTimeDoesNotStep(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})
	at := time.Now()

	m, _ = update(t, m, frameMsg{gen: m.gen, at: at})
	m, cmd := update(t, m, frameMsg{gen: m.gen, at: at})
	assert.Equal(t, 1, g.steps)
	assert.NotNil(t, cmd, "the loop keeps running")

	update(t, m, frameMsg{gen: m.gen, at: at.Add(time.Second / 60)})
	assert.Equal(t, 2, g.steps)
	assert.InDelta(t, 1.0, g.last.Frames, 1e-6)
}

func TestIntervalTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})

	_, cmd := update(t, m, intervalMsg{gen: m.gen})
	assert.Equal(t, 1, g.intervals)
	assert.NotNil(t, cmd)
}

func TestMouseClickMapsToCellCentre(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionMotion})
	update(t, m, frameMsg{gen: m.gen, at: time.Now()})

	require.Len(t, g.last.Clicks, 1)
	assert.Equal(t, core.Vec2{X: 10.5, Y: 4.5}, g.last.Clicks[0])
	require.NotNil(t, g.last.Pointer)
	assert.Equal(t, core.Vec2{X: 12.5, Y: 5.5}, g.last.Pointer.Pos)
}

func TestKeysBecomeActions(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	update(t, m, frameMsg{gen: m.gen, at: time.Now()})

	assert.True(t, g.last.Has(core.ActionFire))
	assert.True(t, g.last.Has(core.ActionLeft))
}

func TestEscPausesWhilePlaying(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu())
	update(t, m, frameMsg{gen: m.gen, at: time.Now()})
	assert.True(t, g.last.Has(core.ActionPause))
}

func TestGameOverSavesOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	g := &stubGame{shots: 4, hits: 2}
	m := newTestModel(t, g, Options{Store: store})

	g.state = core.GameState{Score: 7, GameOver: true}
	m, _ = update(t, m, frameMsg{gen: m.gen, at: time.Now()})
	m, _ = update(t, m, frameMsg{gen: m.gen, at: time.Now()})
	update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 7, scores[0].Score)

	totals, err := store.ShotTotals("stub")
	require.NoError(t, err)
	assert.Equal(t, storage.ShotTotals{Sessions: 1, Shots: 4, Hits: 2}, totals)
}

func TestRestartAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})

	g.state = core.GameState{GameOver: true}
	m, _ = update(t, m, frameMsg{gen: m.gen, at: time.Now()})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m, cmd := update(t, m, frameMsg{gen: m.gen, at: time.Now()})

	assert.Equal(t, 2, g.resets)
	assert.NotNil(t, cmd)
	assert.False(t, m.State().GameOver)
}

func TestBackToMenuAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})

	g.state = core.GameState{GameOver: true}
	m, _ = update(t, m, frameMsg{gen: m.gen, at: time.Now()})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	assert.True(t, m.BackToMenu())
}

func TestContentMessageReachesGame(t *testing.T) {
	g := &stubGame{}
	ch := make(chan content.Library, 1)
	m := newTestModel(t, g, Options{Content: ch})

	lib := content.Default()
	_, cmd := update(t, m, ContentMsg{Library: lib})
	require.NotNil(t, g.lib)
	assert.Equal(t, len(lib.Records()), len(g.lib.Records()))
	assert.NotNil(t, cmd, "keeps waiting for the next reload")
}

func TestViewRendersGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})
	assert.True(t, strings.Contains(m.View(), "stub"))
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "red", core.ColorRed)
	s.SetCell(4, 0, core.Cell{Rune: '*', Color: core.ColorGray, Faint: true})
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	assert.Contains(t, out, "red")
	assert.Contains(t, out, "*")
	assert.Contains(t, out, "plain")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}
