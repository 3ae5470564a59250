package shooter

import (
	"math/rand"

	"github.com/mlai-aus/arcade/internal/config"
)

// Starfield is a fixed number of stars recycled as they pass the camera.
type Starfield struct {
	cfg       config.StarfieldConfig
	exitDepth float64
	rng       *rand.Rand
	stars     []Star
}

// NewStarfield scatters cfg.Count stars at random depths.
func NewStarfield(cfg config.StarfieldConfig, exitDepth float64, rng *rand.Rand) *Starfield {
	f := &Starfield{cfg: cfg, exitDepth: exitDepth, rng: rng}
	f.stars = make([]Star, cfg.Count)
	for i := range f.stars {
		f.respawn(&f.stars[i])
		f.stars[i].Z = rng.Float64() * exitDepth
	}
	return f
}

func (f *Starfield) respawn(s *Star) {
	s.X = f.rng.Float64() * 100
	s.Y = f.rng.Float64() * 100
	s.Z = 0
	s.VZ = f.cfg.MinSpeed + f.rng.Float64()*(f.cfg.MaxSpeed-f.cfg.MinSpeed)
}

// Tick advances every star, recycling those past the exit depth.
func (f *Starfield) Tick(frames float64) {
	for i := range f.stars {
		s := &f.stars[i]
		s.Z += s.VZ * frames
		if s.Z >= f.exitDepth {
			f.respawn(s)
		}
	}
}

// Stars returns the current stars.
func (f *Starfield) Stars() []Star {
	return f.stars
}
