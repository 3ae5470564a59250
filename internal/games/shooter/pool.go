package shooter

import (
	"math/rand"

	"github.com/mlai-aus/arcade/internal/config"
	"github.com/mlai-aus/arcade/internal/content"
	"github.com/mlai-aus/arcade/internal/core"
)

// Pool keeps between Min and Max logos in flight.
type Pool struct {
	cfg    config.ShooterPool
	motion config.ShooterMotion
	rng    *rand.Rand

	logos    []content.Logo
	next     int
	entities []*Entity
	spawned  int
}

// NewPool creates an empty pool. Call Fill or Tick to populate it.
func NewPool(cfg config.ShooterPool, motion config.ShooterMotion, rng *rand.Rand) *Pool {
	return &Pool{
		cfg:    cfg,
		motion: motion,
		rng:    rng,
		logos:  []content.Logo{{Name: "MLAI"}},
	}
}

// SetLogos replaces the logo rotation. Entities already in flight keep
// their logo until they retire.
func (p *Pool) SetLogos(logos []content.Logo) {
	if len(logos) == 0 {
		return
	}
	p.logos = append([]content.Logo(nil), logos...)
	p.rng.Shuffle(len(p.logos), func(i, j int) {
		p.logos[i], p.logos[j] = p.logos[j], p.logos[i]
	})
	p.next = 0
}

// Entities returns the live entities in spawn order.
func (p *Pool) Entities() []*Entity {
	return p.entities
}

// Len returns the number of live entities.
func (p *Pool) Len() int {
	return len(p.entities)
}

// Spawned returns how many entities were created since the pool was made.
func (p *Pool) Spawned() int {
	return p.spawned
}

// Fill tops the pool up to Min without advancing anything.
func (p *Pool) Fill() {
	for len(p.entities) < p.cfg.Min {
		p.entities = append(p.entities, p.spawn())
	}
}

// Tick runs one physics step:
// retire finished entities, top up to Min, maybe add one extra while below
// Max, trim to Max, then advance depth and drift.
// Hit entities retire once nowMs-HitAt reaches flashMs.
// It returns the number of entities retired.
func (p *Pool) Tick(frames, speedMul float64, nowMs, flashMs int64) int {
	live := p.entities[:0]
	retired := 0
	for _, e := range p.entities {
		if e.Progress(p.motion.ExitDepth) >= 1 || (e.Hit && nowMs-e.HitAt >= flashMs) {
			retired++
			continue
		}
		live = append(live, e)
	}
	clear(p.entities[len(live):])
	p.entities = live

	p.Fill()

	if len(p.entities) < p.cfg.Max && p.rng.Float64() < p.cfg.ExtraSpawnChance*frames {
		p.entities = append(p.entities, p.spawn())
	}

	if over := len(p.entities) - p.cfg.Max; over > 0 {
		p.entities = append(p.entities[:0], p.entities[over:]...)
	}

	for _, e := range p.entities {
		e.Z += e.VZ * frames * speedMul
		e.X += e.DriftX * frames
		e.Y += e.DriftY * frames
	}
	return retired
}

func (p *Pool) spawn() *Entity {
	logo := p.logos[p.next%len(p.logos)]
	p.next++
	p.spawned++

	x, y := p.place()
	drift := p.motion.MaxDrift
	return &Entity{
		ID:     newID(p.rng),
		Name:   logo.Name,
		Image:  logo.Image,
		X:      x,
		Y:      y,
		VZ:     p.motion.MinSpeed + p.rng.Float64()*(p.motion.MaxSpeed-p.motion.MinSpeed),
		DriftX: (p.rng.Float64()*2 - 1) * drift,
		DriftY: (p.rng.Float64()*2 - 1) * drift,
	}
}

// place picks a spawn position at least MinSpacing from every live
// entity. When the attempt budget runs out the last candidate is used.
func (p *Pool) place() (float64, float64) {
	lo := p.cfg.SpawnMargin
	span := 100 - 2*lo
	attempts := max(1, p.cfg.PlacementAttempts)

	var cand core.Vec2
	for range attempts {
		cand = core.Vec2{X: lo + p.rng.Float64()*span, Y: lo + p.rng.Float64()*span}
		if p.spacedFrom(cand) {
			break
		}
	}
	return cand.X, cand.Y
}

func (p *Pool) spacedFrom(c core.Vec2) bool {
	for _, e := range p.entities {
		if core.Dist(c, core.Vec2{X: e.X, Y: e.Y}) < p.cfg.MinSpacing {
			return false
		}
	}
	return true
}
