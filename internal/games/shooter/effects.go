package shooter

import "github.com/mlai-aus/arcade/internal/core"

// EffectKind distinguishes transient feedback drawings.
type EffectKind int

const (
	EffectLaser EffectKind = iota
	EffectBurst
)

// Effect is a short-lived drawing in cell coordinates.
type Effect struct {
	Kind     EffectKind
	From, To core.Vec2
	Born     int64 // game clock, ms
	TTL      int64
}

// Age returns how far through its life the effect is, 0..1.
func (e Effect) Age(nowMs int64) float64 {
	if e.TTL <= 0 {
		return 1
	}
	return core.ClampF(float64(nowMs-e.Born)/float64(e.TTL), 0, 1)
}

// Effects is the list of live feedback drawings.
type Effects struct {
	list []Effect
}

// Add appends an effect.
func (fx *Effects) Add(e Effect) {
	fx.list = append(fx.list, e)
}

// Prune drops effects whose TTL has elapsed.
func (fx *Effects) Prune(nowMs int64) {
	live := fx.list[:0]
	for _, e := range fx.list {
		if nowMs-e.Born < e.TTL {
			live = append(live, e)
		}
	}
	fx.list = live
}

// Active returns the live effects.
func (fx *Effects) Active() []Effect {
	return fx.list
}

// Reset drops every effect.
func (fx *Effects) Reset() {
	fx.list = fx.list[:0]
}
