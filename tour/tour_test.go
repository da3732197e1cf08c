package tour

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/quadhq/quad-tour/audio"
	"github.com/quadhq/quad-tour/constants"
	"github.com/quadhq/quad-tour/engine"
)

func newTestTour(t *testing.T, w, h int) (*Tour, *engine.MockClock, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(w, h)

	clock := engine.NewMockClock(time.Unix(0, 0))
	tr, err := New(s, clock, audio.NewSilentPlayer(), Options{
		TypeInterval: 100 * time.Millisecond,
		HoldDuration: time.Second,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// The simulation screen reports its size only after the resize event,
	// so pick it up directly
	tr.width, tr.height = w, h
	return tr, clock, s
}

func keyEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestQuitKeys(t *testing.T) {
	tr, _, s := newTestTour(t, 120, 40)
	defer s.Fini()
	defer tr.Stop()

	if tr.handleEvent(keyEvent('q')) {
		t.Error("'q' must quit")
	}
	if tr.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Escape must quit")
	}
	if tr.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)) {
		t.Error("Ctrl-C must quit")
	}
	if tr.handleEvent(nil) {
		t.Error("a finalized screen must quit")
	}
	if !tr.handleEvent(keyEvent('x')) {
		t.Error("an unbound key must not quit")
	}
}

func TestModalToggle(t *testing.T) {
	tr, _, s := newTestTour(t, 120, 40)
	defer s.Fini()
	defer tr.Stop()

	if tr.modalOpen {
		t.Fatal("modal must start closed")
	}
	tr.handleEvent(keyEvent('c'))
	if !tr.modalOpen {
		t.Fatal("'c' must open the modal")
	}
	tr.handleEvent(keyEvent('c'))
	if tr.modalOpen {
		t.Fatal("'c' again must close the modal")
	}
}

func TestTypewriterMountsWhenSequenceGoesLive(t *testing.T) {
	tr, clock, s := newTestTour(t, 120, 40)
	defer s.Fini()
	defer tr.Stop()

	// Before the live phase the typewriter must not have started
	clock.Advance(constants.LiveDelay - time.Millisecond)
	tr.update()
	clock.Advance(time.Second)
	if got := tr.tw.Text(); got != "" {
		t.Fatalf("typewriter ran before mount: %q", got)
	}

	// The frame loop observes the live phase and starts the driver
	tr.update()
	if !tr.driverStarted {
		t.Fatal("driver must start once the sequence is live")
	}

	clock.Advance(100 * time.Millisecond)
	if got := tr.tw.Text(); got != "f" {
		t.Fatalf("typewriter text after one tick = %q, want %q", got, "f")
	}
	if !tr.phoneRevealed.Load() {
		t.Fatal("first reveal must mark the phone revealed")
	}
	if tr.phoneLive.Load() {
		t.Fatal("phone must not be live before the first word completes")
	}

	// Finish the first word
	clock.Advance(3*100*time.Millisecond + time.Second)
	if !tr.phoneLive.Load() {
		t.Fatal("first word completion must mark the phone live")
	}
}

func TestDrawSmoke(t *testing.T) {
	sizes := [][2]int{{120, 40}, {80, 24}, {40, 10}}
	for _, size := range sizes {
		tr, clock, s := newTestTour(t, size[0], size[1])

		clock.Advance(constants.LiveDelay)
		tr.update()
		clock.Advance(500 * time.Millisecond)

		tr.draw()
		tr.modalOpen = true
		tr.draw()

		tr.Stop()
		s.Fini()
	}
}
