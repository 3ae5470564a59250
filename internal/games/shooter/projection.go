package shooter

import (
	"github.com/mlai-aus/arcade/internal/config"
	"github.com/mlai-aus/arcade/internal/core"
)

// Canvas is the drawing surface in cells. Aspect is cell height over cell
// width, used to keep projected discs round.
type Canvas struct {
	W, H   float64
	Aspect float64
}

// Center returns the middle of the canvas in cells.
func (c Canvas) Center() core.Vec2 {
	return core.Vec2{X: c.W / 2, Y: c.H / 2}
}

// ToCells converts a percent position to cell coordinates.
func (c Canvas) ToCells(pos core.Vec2) core.Vec2 {
	return core.Vec2{X: pos.X / 100 * c.W, Y: pos.Y / 100 * c.H}
}

// Projection is where and how large an entity appears.
// Size is a width in cells; the height in rows is Size/Aspect.
type Projection struct {
	Pos     core.Vec2
	Size    float64
	Opacity float64
}

// Projector maps depth-progress to screen placement. It holds no state
// besides its curve parameters, so Project is pure.
type Projector struct {
	cfg config.ProjectionConfig
}

// NewProjector creates a projector with the given curve.
func NewProjector(cfg config.ProjectionConfig) Projector {
	return Projector{cfg: cfg}
}

// Spread is the outward expansion factor at progress p.
func (pr Projector) Spread(p float64) float64 {
	return pr.cfg.SpreadMin + (pr.cfg.SpreadMax-pr.cfg.SpreadMin)*core.PowCurve(p, pr.cfg.SpreadCurve)
}

// Project places pos (percent of viewport) at depth-progress p on canvas.
// Points move away from the centre along (pos - centre) as p grows.
func (pr Projector) Project(pos core.Vec2, p float64, c Canvas) Projection {
	center := c.Center()
	offset := c.ToCells(pos).Sub(center)

	return Projection{
		Pos:     center.Add(offset.Scale(pr.Spread(p))),
		Size:    core.Lerp(pr.cfg.SizeMin, pr.cfg.SizeMax, core.PowCurve(p, pr.cfg.SizeCurve)),
		Opacity: core.ClampF(p*pr.cfg.FadeIn, 0, 1),
	}
}

// Contains reports whether pt lies inside the projected disc. Vertical
// distance is scaled by the cell aspect so the disc is round on screen.
func (p Projection) Contains(pt core.Vec2, aspect float64) bool {
	if aspect <= 0 {
		aspect = 1
	}
	d := pt.Sub(p.Pos)
	d.Y *= aspect
	r := p.Size / 2
	return d.X*d.X+d.Y*d.Y <= r*r
}
