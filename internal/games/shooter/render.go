package shooter

import (
	"fmt"
	"math"
	"sort"

	"github.com/mlai-aus/arcade/internal/content"
	"github.com/mlai-aus/arcade/internal/core"
)

// Render draws the starfield, logos back-to-front, feedback effects and
// the HUD. It adopts dst's size as the canvas so clicks map onto what
// was drawn.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.canvas.W = float64(dst.Width())
	g.canvas.H = float64(dst.Height())
	now := g.now()

	g.drawStars(dst)

	// Far logos first so near ones cover them.
	ordered := append([]*Entity(nil), g.pool.Entities()...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Z < ordered[j].Z })
	for _, e := range ordered {
		g.drawEntity(dst, e, now)
	}

	for _, fx := range g.effects.Active() {
		g.drawEffect(dst, fx, now)
	}

	dst.SetColor(round(g.crosshair.X), round(g.crosshair.Y), '+', core.ColorBrightGreen)
	g.drawHUD(dst)

	switch {
	case g.gameOver:
		dst.DrawMessage("ROUND OVER", fmt.Sprintf("%d hits, %d%% accuracy  |  R to play again", g.hits, g.accuracy()))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

func (g *Game) drawStars(dst *core.Screen) {
	exit := g.cfg.Motion.ExitDepth
	for _, s := range g.stars.Stars() {
		p := core.ClampF(s.Z/exit, 0, 1)
		pos := g.proj.Project(core.Vec2{X: s.X, Y: s.Y}, p, g.canvas).Pos

		cell := core.Cell{Rune: '.', Color: core.ColorGray, Faint: p < 0.4}
		switch {
		case p > 0.8:
			cell = core.Cell{Rune: '*', Color: core.ColorBrightWhite}
		case p > 0.5:
			cell = core.Cell{Rune: '·', Color: core.ColorWhite}
		}
		dst.SetCell(round(pos.X), round(pos.Y), cell)
	}
}

func (g *Game) drawEntity(dst *core.Screen, e *Entity, now int64) {
	proj := g.project(e)
	w := max(1, round(proj.Size))
	h := max(1, round(proj.Size/g.canvas.Aspect))
	box := core.NewRect(round(proj.Pos.X-float64(w)/2), round(proj.Pos.Y-float64(h)/2), w, h)

	color := core.ColorGray
	asset := false
	if g.lookup != nil && e.Image != "" {
		if a, ok := g.lookup.Get(e.Image); ok {
			color = a.Color
			asset = true
		}
	}

	if e.Hit {
		flash := (now-e.HitAt)/80%2 == 0
		c := core.Cell{Rune: '░', Color: core.ColorBrightWhite}
		if flash {
			c = core.Cell{Rune: '▓', Color: core.ColorBrightYellow}
		}
		dst.FillRect(box, c)
		return
	}

	faint := proj.Opacity < 0.5
	if w < 3 || h < 2 {
		dst.FillRect(box, core.Cell{Rune: '■', Color: color, Faint: faint})
	} else {
		dst.FillRect(box, core.Cell{Rune: '█', Color: color, Faint: faint})
		dst.DrawBoxColor(box, core.ColorWhite)

		label := e.Name
		if len([]rune(label)) > w-2 || !asset {
			label = content.Initials(e.Name)
		}
		lx := box.X + (w-len([]rune(label)))/2
		dst.DrawTextColor(lx, box.Y+h/2, label, core.ColorBrightWhite)
	}

	if asset {
		dst.DrawSprite(core.Sprite{
			Key:   e.Image,
			X:     proj.Pos.X,
			Y:     proj.Pos.Y,
			W:     float64(w),
			H:     float64(h),
			Alpha: proj.Opacity,
			Depth: e.Z,
		})
	}
}

func (g *Game) drawEffect(dst *core.Screen, fx Effect, now int64) {
	age := fx.Age(now)
	switch fx.Kind {
	case EffectLaser:
		dst.DrawLine(round(fx.From.X), round(fx.From.Y), round(fx.To.X), round(fx.To.Y),
			core.Cell{Rune: '·', Color: core.ColorBrightRed, Faint: age > 0.5})
	case EffectBurst:
		r := 1 + age*4
		for i := range 8 {
			a := float64(i) * math.Pi / 4
			x := fx.From.X + math.Cos(a)*r
			y := fx.From.Y + math.Sin(a)*r/g.canvas.Aspect
			dst.SetCell(round(x), round(y), core.Cell{Rune: '*', Color: core.ColorOrange, Faint: age > 0.6})
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Shots: %d  Accuracy: %d%% ", g.score, g.shots, g.accuracy())
	if g.cfg.Gameplay.RoundSeconds > 0 {
		hud += fmt.Sprintf(" Time: %ds ", int(math.Ceil(g.roundLeftMs/1000)))
	}
	dst.DrawText(1, 0, hud)
}

func (g *Game) accuracy() int {
	if g.shots == 0 {
		return 0
	}
	return g.hits * 100 / g.shots
}

func round(f float64) int {
	return int(math.Round(f))
}
