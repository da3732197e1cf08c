package engine

import (
	"sync"
	"time"
)

// Phase is the coarse display mode of the opening sequence
type Phase uint8

const (
	// PhaseIntro shows the greeting line
	PhaseIntro Phase = iota
	// PhaseThinking shows the transitional dots indicator
	PhaseThinking
	// PhaseLive shows the typewriter headline; the typewriter starts here
	PhaseLive
)

// String returns the phase name for logging and test failures
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseThinking:
		return "thinking"
	case PhaseLive:
		return "live"
	}
	return "unknown"
}

// IntroSequencer advances the opening phase on two fixed delays, both measured
// from construction time. The phase only ever moves forward; Stop cancels any
// pending transition so a torn-down sequencer can never mutate again.
type IntroSequencer struct {
	mu      sync.Mutex
	phase   Phase
	stopped bool
	timers  []Timer
}

// NewIntroSequencer starts a sequencer at PhaseIntro and schedules the
// transitions to PhaseThinking at thinkingDelay and PhaseLive at liveDelay,
// both relative to now. liveDelay is expected to exceed thinkingDelay.
func NewIntroSequencer(clock Clock, thinkingDelay, liveDelay time.Duration) *IntroSequencer {
	s := &IntroSequencer{}
	s.timers = []Timer{
		clock.AfterFunc(thinkingDelay, func() { s.advanceTo(PhaseThinking) }),
		clock.AfterFunc(liveDelay, func() { s.advanceTo(PhaseLive) }),
	}
	return s
}

// Phase returns the current phase
func (s *IntroSequencer) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Stop cancels pending transitions. The phase freezes wherever it is.
func (s *IntroSequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

// advanceTo raises the phase to p. Phases never regress, so an out-of-order
// timer firing is absorbed rather than rewinding the sequence.
func (s *IntroSequencer) advanceTo(p Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if p > s.phase {
		s.phase = p
	}
}
