package shooter

import "github.com/mlai-aus/arcade/internal/core"

// HitTest returns the index of the first entity, in slice order, that has
// not been hit yet and whose projected disc contains click. It returns -1
// when nothing is under the click.
func HitTest(click core.Vec2, entities []*Entity, pr Projector, c Canvas, exitDepth float64) int {
	for i, e := range entities {
		if e.Hit {
			continue
		}
		proj := pr.Project(core.Vec2{X: e.X, Y: e.Y}, e.Progress(exitDepth), c)
		if proj.Contains(click, c.Aspect) {
			return i
		}
	}
	return -1
}
