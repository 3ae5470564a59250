// Package audio plays the games' cosmetic sound effects through the system
// speaker. Sound is optional: every failure leaves the player silent
// instead of surfacing an error to the game.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes effect streamers into a single speaker output.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player with volume in 0..1. It stays silent until Init.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Init opens the speaker. A failure is logged at debug level and the
// player remains a no-op; Init reports whether sound is available.
func (p *Player) Init() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return true
	}
	if p.volume <= 0 {
		return false
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Debug("audio unavailable", "error", err)
		return false
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return true
}

// Enabled reports whether Init succeeded.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues an effect. It never blocks on the audio device.
func (p *Player) Play(e Effect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Sound(e, sampleRate, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences pending effects and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
