package engine

import (
	"testing"
	"time"
)

func TestIntroSequencerTimeline(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	seq := NewIntroSequencer(clock, 1600*time.Millisecond, 2800*time.Millisecond)

	if got := seq.Phase(); got != PhaseIntro {
		t.Fatalf("phase at t=0 = %v, want %v", got, PhaseIntro)
	}

	clock.Advance(1599 * time.Millisecond)
	if got := seq.Phase(); got != PhaseIntro {
		t.Fatalf("phase just before first delay = %v, want %v", got, PhaseIntro)
	}

	clock.Advance(1 * time.Millisecond)
	if got := seq.Phase(); got != PhaseThinking {
		t.Fatalf("phase at first delay = %v, want %v", got, PhaseThinking)
	}

	clock.Advance(1199 * time.Millisecond)
	if got := seq.Phase(); got != PhaseThinking {
		t.Fatalf("phase just before second delay = %v, want %v", got, PhaseThinking)
	}

	clock.Advance(1 * time.Millisecond)
	if got := seq.Phase(); got != PhaseLive {
		t.Fatalf("phase at second delay = %v, want %v", got, PhaseLive)
	}

	// Terminal: no further transitions, ever
	clock.Advance(time.Hour)
	if got := seq.Phase(); got != PhaseLive {
		t.Fatalf("phase long after = %v, want %v", got, PhaseLive)
	}
}

func TestIntroSequencerDelaysAreIndependent(t *testing.T) {
	// Both delays are measured from t=0; one big jump lands directly in the
	// final phase without requiring the intermediate timer to be observed
	clock := NewMockClock(time.Unix(0, 0))
	seq := NewIntroSequencer(clock, 100*time.Millisecond, 300*time.Millisecond)

	clock.Advance(time.Second)
	if got := seq.Phase(); got != PhaseLive {
		t.Fatalf("phase = %v, want %v", got, PhaseLive)
	}
}

func TestIntroSequencerStopCancelsPendingTransitions(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	seq := NewIntroSequencer(clock, 100*time.Millisecond, 300*time.Millisecond)

	clock.Advance(150 * time.Millisecond)
	if got := seq.Phase(); got != PhaseThinking {
		t.Fatalf("phase = %v, want %v", got, PhaseThinking)
	}

	seq.Stop()
	clock.Advance(time.Hour)
	if got := seq.Phase(); got != PhaseThinking {
		t.Fatalf("phase mutated after Stop: %v", got)
	}
}
