package shooter

import (
	"math/rand"

	"github.com/google/uuid"
)

// Entity is a logo flying toward the camera.
// X and Y are percent of the viewport; Z runs from 0 (far) to the exit depth.
type Entity struct {
	ID     string
	Name   string
	Image  string
	X, Y   float64
	Z, VZ  float64
	DriftX float64
	DriftY float64
	Scale  float64 // projected size in cells, refreshed every step

	Hit   bool
	HitAt int64 // game clock, ms
}

// Progress returns depth-progress: 0 at spawn, 1 at the exit threshold.
func (e *Entity) Progress(exitDepth float64) float64 {
	if exitDepth <= 0 {
		return 1
	}
	return max(0, e.Z/exitDepth)
}

// Star is a background point travelling the same perspective as logos.
type Star struct {
	X, Y  float64
	Z, VZ float64
}

// newID derives a UUID from the game RNG so seeded runs are reproducible.
func newID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
