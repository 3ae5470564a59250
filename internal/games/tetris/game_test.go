package tetris

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/mlai-aus/arcade/internal/config"
	"github.com/mlai-aus/arcade/internal/content"
	"github.com/mlai-aus/arcade/internal/core"
)

func runtimeCfg(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed, CellAspect: 2}
}

func TestGameAutoStartsOnReset(t *testing.T) {
	g := NewWithConfig(machineConfig())
	g.Reset(runtimeCfg(1))
	assert.Equal(t, StatusPlaying, g.Machine().Status())
}

func TestGameStartsOnConfirm(t *testing.T) {
	cfg := machineConfig()
	cfg.Timing.AutoStart = false
	g := NewWithConfig(cfg)
	g.Reset(runtimeCfg(1))
	assert.Equal(t, StatusIdle, g.Machine().Status())

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	assert.Equal(t, StatusPlaying, g.Machine().Status())
}

func TestGameVisibility(t *testing.T) {
	g := NewWithConfig(machineConfig())
	g.Reset(runtimeCfg(1))

	in := core.NewInputFrame()
	in.Visibility = core.VisibilityHidden
	assert.True(t, g.Step(in).State.Paused)

	before := g.Machine().Snapshot()
	g.OnInterval()
	assert.Equal(t, before, g.Machine().Snapshot())

	in.Visibility = core.VisibilityVisible
	assert.False(t, g.Step(in).State.Paused)
}

func TestGameMovesWithInput(t *testing.T) {
	g := NewWithConfig(machineConfig())
	g.Reset(runtimeCfg(1))
	col := g.Machine().Current().Col

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)
	assert.Equal(t, col-1, g.Machine().Current().Col)

	in = core.NewInputFrame()
	in.Set(core.ActionDown)
	g.Step(in)
	assert.Equal(t, 1, g.Machine().Current().Row)
}

func TestIntervalShortensWithScore(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	g := NewWithConfig(cfg)
	g.Reset(runtimeCfg(1))

	assert.Equal(t, 700*time.Millisecond, g.Interval())
	g.Machine().score = cfg.Difficulty.Progression.MaxAt
	got := g.Interval()
	assert.Less(t, got, 700*time.Millisecond)
	assert.GreaterOrEqual(t, got, 150*time.Millisecond)
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := NewWithConfig(machineConfig())
		g.Reset(runtimeCfg(77))
		for i := range 400 {
			in := core.NewInputFrame()
			if i%3 == 0 {
				in.Set(core.ActionRight)
			}
			g.Step(in)
			g.OnInterval()
			if g.State().GameOver {
				break
			}
		}
		return g.Machine().Snapshot()
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("same seed, different outcome:\n%s", diff)
	}
}

func TestRenderShowsPanel(t *testing.T) {
	g := NewWithConfig(machineConfig())
	g.SetContent(content.Library{Testimonials: []content.Testimonial{
		{Author: "Ana Lee", Role: "Founder", Quote: "Met my co-founder at a hack night."},
	}})
	g.Reset(runtimeCfg(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "- Ana Lee")
	assert.Contains(t, out, "Founder")
	assert.Contains(t, out, "co-founder")
}

func TestRenderIdleMessage(t *testing.T) {
	cfg := machineConfig()
	cfg.Timing.AutoStart = false
	g := NewWithConfig(cfg)
	g.Reset(runtimeCfg(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Press Enter to start")
}

func TestWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"one two three", 7, []string{"one two", "three"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"", 5, nil},
		{"x", 0, nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, wrap(tt.text, tt.width)); diff != "" {
			t.Errorf("wrap(%q, %d) mismatch:\n%s", tt.text, tt.width, diff)
		}
	}
}
