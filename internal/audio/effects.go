package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/mlai-aus/arcade/internal/core"
)

// Effect names a cosmetic sound.
type Effect int

const (
	EffectNone Effect = iota
	EffectShot
	EffectHit
	EffectLock
	EffectClear
	EffectGameOver
)

func (e Effect) String() string {
	switch e {
	case EffectShot:
		return "shot"
	case EffectHit:
		return "hit"
	case EffectLock:
		return "lock"
	case EffectClear:
		return "clear"
	case EffectGameOver:
		return "gameover"
	default:
		return "none"
	}
}

// ForEvent maps a game event to the sound it triggers.
func ForEvent(k core.EventKind) Effect {
	switch k {
	case core.EventShot:
		return EffectShot
	case core.EventHit:
		return EffectHit
	case core.EventLock:
		return EffectLock
	case core.EventLineClear:
		return EffectClear
	case core.EventGameOver:
		return EffectGameOver
	default:
		return EffectNone
	}
}

// sweep is a sine tone gliding linearly from one frequency to another,
// with a linear fade out over its whole length.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
	amp      float64
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration, amp float64) *sweep {
	return &sweep{sr: sr, from: from, to: to, total: sr.N(d), amp: amp}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		t := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*t
		v := math.Sin(2*math.Pi*s.phase) * s.amp * (1 - t)

		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(s.sr)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is a decaying white-noise burst.
type noise struct {
	rng   *rand.Rand
	total int
	pos   int
	amp   float64
}

func newNoise(sr beep.SampleRate, d time.Duration, amp float64) *noise {
	return &noise{rng: rand.New(rand.NewSource(1)), total: sr.N(d), amp: amp}
}

func (s *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		decay := 1 - float64(s.pos)/float64(s.total)
		v := (s.rng.Float64()*2 - 1) * s.amp * decay * decay
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *noise) Err() error { return nil }

// Sound builds a fresh streamer for e at the given rate and volume
// (0..1). It returns nil for EffectNone.
func Sound(e Effect, sr beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch e {
	case EffectShot:
		s = newSweep(sr, 1400, 500, 90*time.Millisecond, 0.35)
	case EffectHit:
		s = beep.Mix(
			newNoise(sr, 120*time.Millisecond, 0.4),
			newSweep(sr, 300, 120, 160*time.Millisecond, 0.3),
		)
	case EffectLock:
		s = newSweep(sr, 180, 140, 60*time.Millisecond, 0.3)
	case EffectClear:
		s = beep.Seq(
			newSweep(sr, 660, 660, 70*time.Millisecond, 0.3),
			newSweep(sr, 880, 880, 70*time.Millisecond, 0.3),
			newSweep(sr, 1320, 1320, 110*time.Millisecond, 0.3),
		)
	case EffectGameOver:
		s = newSweep(sr, 440, 110, 600*time.Millisecond, 0.35)
	default:
		return nil
	}
	return withVolume(s, volume)
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(vol, 1))}
}
