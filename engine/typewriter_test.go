package engine

import (
	"sync/atomic"
	"testing"
)

func newTestTypewriter(t *testing.T, words []string, reveals, completions *atomic.Int32) *Typewriter {
	t.Helper()
	cfg := TypewriterConfig{Words: words}
	if reveals != nil {
		cfg.OnFirstReveal = func() { reveals.Add(1) }
	}
	if completions != nil {
		cfg.OnFirstWordComplete = func() { completions.Add(1) }
	}
	tw, err := NewTypewriter(cfg)
	if err != nil {
		t.Fatalf("NewTypewriter: %v", err)
	}
	return tw
}

func assertState(t *testing.T, tw *Typewriter, wordIndex, visible int, dir Direction) {
	t.Helper()
	gotIndex, gotVisible, gotDir := tw.State()
	if gotIndex != wordIndex || gotVisible != visible || gotDir != dir {
		t.Fatalf("state = (%d, %d, %d), want (%d, %d, %d)",
			gotIndex, gotVisible, gotDir, wordIndex, visible, dir)
	}
}

func TestNewTypewriterRejectsEmptyWordList(t *testing.T) {
	if _, err := NewTypewriter(TypewriterConfig{}); err != ErrNoWords {
		t.Fatalf("expected ErrNoWords, got %v", err)
	}
}

func TestFullCycle(t *testing.T) {
	var completions atomic.Int32
	tw := newTestTypewriter(t, []string{"feed", "events"}, nil, &completions)

	assertState(t, tw, 0, 0, DirectionGrowing)

	for i := 0; i < 4; i++ {
		tw.Tick()
	}
	assertState(t, tw, 0, 4, DirectionGrowing)
	if got := tw.Text(); got != "feed" {
		t.Fatalf("Text() = %q, want %q", got, "feed")
	}

	// The word is fully visible: the next tick flips direction and fires the
	// first-word completion exactly here
	tw.Tick()
	assertState(t, tw, 0, 4, DirectionShrinking)
	if completions.Load() != 1 {
		t.Fatalf("completions = %d, want 1", completions.Load())
	}

	for i := 0; i < 4; i++ {
		tw.Tick()
	}
	assertState(t, tw, 0, 0, DirectionShrinking)

	tw.Tick()
	assertState(t, tw, 1, 0, DirectionGrowing)
}

func TestRequestShrinkIdempotent(t *testing.T) {
	tw := newTestTypewriter(t, []string{"feed"}, nil, nil)

	// Reach (0, 4, Shrinking)
	for i := 0; i < 5; i++ {
		tw.Tick()
	}
	assertState(t, tw, 0, 4, DirectionShrinking)

	// A redundant shrink request must leave the state untouched
	tw.RequestShrink()
	assertState(t, tw, 0, 4, DirectionShrinking)
}

func TestFirstRevealFiresExactlyOnce(t *testing.T) {
	var reveals atomic.Int32
	tw := newTestTypewriter(t, []string{"ab", "cd"}, &reveals, nil)

	tw.Tick()
	if reveals.Load() != 1 {
		t.Fatalf("reveals after first tick = %d, want 1", reveals.Load())
	}

	// Many full loops later it must still have fired only once
	for i := 0; i < 200; i++ {
		tw.Tick()
	}
	if reveals.Load() != 1 {
		t.Fatalf("reveals after 200 ticks = %d, want 1", reveals.Load())
	}
}

func TestFirstWordCompleteOnlyForFirstWord(t *testing.T) {
	var completions atomic.Int32
	tw := newTestTypewriter(t, []string{"ab", "wxyz"}, nil, &completions)

	// Word 0 "ab": grow 2, flip, shrink 2, advance = 6 ticks
	for i := 0; i < 6; i++ {
		tw.Tick()
	}
	assertState(t, tw, 1, 0, DirectionGrowing)
	if completions.Load() != 1 {
		t.Fatalf("completions after word 0 = %d, want 1", completions.Load())
	}

	// Word 1 "wxyz" reaching full visibility must not fire, even on its first visit
	for i := 0; i < 5; i++ {
		tw.Tick()
	}
	assertState(t, tw, 1, 4, DirectionShrinking)
	if completions.Load() != 1 {
		t.Fatalf("completions after word 1 full = %d, want 1", completions.Load())
	}

	// Nor does word 0 fire again on the second loop
	for i := 0; i < 100; i++ {
		tw.Tick()
	}
	if completions.Load() != 1 {
		t.Fatalf("completions after many loops = %d, want 1", completions.Load())
	}
}

func TestWraparoundRepeatsIdentically(t *testing.T) {
	tw := newTestTypewriter(t, []string{"ab", "xyz"}, nil, nil)

	// One full pass over both words:
	// "ab": 2 grow + 1 flip + 2 shrink + 1 advance = 6 ticks
	// "xyz": 3 grow + 1 flip + 3 shrink + 1 advance = 8 ticks
	const cycleTicks = 14

	record := func() []string {
		texts := make([]string, 0, cycleTicks)
		for i := 0; i < cycleTicks; i++ {
			tw.Tick()
			texts = append(texts, tw.Text())
		}
		return texts
	}

	first := record()

	// Back at the start of the list
	wordIndex, visible, dir := tw.State()
	if wordIndex%2 != 0 || visible != 0 || dir != DirectionGrowing {
		t.Fatalf("after full pass: state = (%d, %d, %d)", wordIndex, visible, dir)
	}

	second := record()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("cycle drift at tick %d: first %q, second %q", i, first[i], second[i])
		}
	}
}

func TestLifecycleFlagsInspectable(t *testing.T) {
	tw := newTestTypewriter(t, []string{"hi"}, nil, nil)

	if tw.Revealed() || tw.FirstWordDone() {
		t.Fatal("flags must start false")
	}
	tw.Tick()
	if !tw.Revealed() {
		t.Fatal("Revealed must be true after the first visible character")
	}
	tw.Tick()
	tw.Tick()
	if !tw.FirstWordDone() {
		t.Fatal("FirstWordDone must be true after the first word fully types")
	}
}
