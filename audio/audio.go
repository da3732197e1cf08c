// Package audio plays short feedback tones for the tour: a key click per
// typewriter mutation and a chime when the headline goes live. Speaker
// initialization failure leaves the player in silent mode; the tour never
// fails because a machine has no audio device.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker and the mute flag
type Player struct {
	initialized bool
	muted       atomic.Bool
}

// NewPlayer initializes the speaker with a 100ms buffer. The returned error is
// informational; the player is usable (silently) either way.
func NewPlayer() (*Player, error) {
	p := &Player{}
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		p.initialized = true
	}
	return p, err
}

// NewSilentPlayer returns a player that never touches the speaker
// Used by tests and headless runs
func NewSilentPlayer() *Player {
	return &Player{}
}

// KeyClick plays a short high tick, one per typewriter character
func (p *Player) KeyClick() {
	p.tone(1320, 18*time.Millisecond)
}

// Chime plays a soft tone marking the headline going live
func (p *Player) Chime() {
	p.tone(660, 120*time.Millisecond)
}

// ToggleMute flips the mute flag and returns the new state
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return muted
}

// SetMuted sets the mute flag directly
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Close releases the speaker
func (p *Player) Close() {
	if p.initialized {
		speaker.Close()
	}
}

func (p *Player) tone(freq float64, d time.Duration) {
	if !p.initialized || p.muted.Load() {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
