package core

import "time"

// ReferenceFPS is the frame rate that game speeds are tuned for.
const ReferenceFPS = 60

// DefaultMaxFrameSkip bounds how many reference frames a single step may
// cover, so a stalled host cannot teleport entities.
const DefaultMaxFrameSkip = 4.0

// FrameClock converts wall-clock frame timestamps into elapsed time measured
// in reference frames. Reset it whenever the loop resumes after being
// stopped so that the pause is not replayed as one huge step.
type FrameClock struct {
	last    time.Time
	started bool
	MaxSkip float64
}

// NewFrameClock returns a clock clamped to DefaultMaxFrameSkip.
func NewFrameClock() *FrameClock {
	return &FrameClock{MaxSkip: DefaultMaxFrameSkip}
}

// Tick records a frame at now and returns the elapsed reference frames since
// the previous one. The first frame after creation or Reset returns 1.
func (c *FrameClock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 1
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt <= 0 {
		return 0
	}
	frames := dt.Seconds() * ReferenceFPS
	limit := c.MaxSkip
	if limit <= 0 {
		limit = DefaultMaxFrameSkip
	}
	return ClampF(frames, 0, limit)
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.started = false
	c.last = time.Time{}
}
