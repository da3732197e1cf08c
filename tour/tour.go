// Package tour runs the interactive Quad product tour: it owns the screen
// event loop and wires the intro sequencer and typewriter into the page.
package tour

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/quadhq/quad-tour/audio"
	"github.com/quadhq/quad-tour/constants"
	"github.com/quadhq/quad-tour/content"
	"github.com/quadhq/quad-tour/engine"
	"github.com/quadhq/quad-tour/render"
)

// Options are the user-tunable knobs, normally filled from flags
type Options struct {
	TypeInterval time.Duration
	HoldDuration time.Duration
	Muted        bool
}

// Tour is the running page: opening sequencer, typewriter, and display state.
// All fields are owned by the frame loop goroutine except the two reveal
// flags, which the typewriter's callbacks set from timer goroutines.
type Tour struct {
	screen tcell.Screen
	clock  engine.Clock
	sounds *audio.Player

	seq    *engine.IntroSequencer
	tw     *engine.Typewriter
	driver *engine.TypewriterDriver

	// Demo reveal flags, set once each by the typewriter lifecycle callbacks
	phoneRevealed atomic.Bool
	phoneLive     atomic.Bool

	width, height int
	modalOpen     bool
	driverStarted bool
	start         time.Time
}

// New builds the tour and starts the opening sequence clock. The typewriter
// does not tick until the sequencer reaches PhaseLive.
func New(screen tcell.Screen, clock engine.Clock, sounds *audio.Player, opts Options) (*Tour, error) {
	t := &Tour{
		screen: screen,
		clock:  clock,
		sounds: sounds,
		start:  clock.Now(),
	}
	t.width, t.height = screen.Size()
	sounds.SetMuted(opts.Muted)

	tw, err := engine.NewTypewriter(engine.TypewriterConfig{
		Words:        content.Words,
		TypeInterval: opts.TypeInterval,
		HoldDuration: opts.HoldDuration,
		OnFirstReveal: func() {
			t.phoneRevealed.Store(true)
		},
		OnFirstWordComplete: func() {
			t.phoneLive.Store(true)
			t.sounds.Chime()
		},
	})
	if err != nil {
		return nil, err
	}
	t.tw = tw
	t.driver = engine.NewTypewriterDriver(clock, tw, engine.TypewriterConfig{
		TypeInterval: opts.TypeInterval,
		HoldDuration: opts.HoldDuration,
	}, sounds.KeyClick)

	t.seq = engine.NewIntroSequencer(clock, constants.ThinkingDelay, constants.LiveDelay)
	return t, nil
}

// Run drives the event and frame loop until a quit key or screen teardown
func (t *Tour) Run() error {
	defer t.Stop()

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			events <- ev
			if ev == nil {
				// Screen finalized
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			t.update()
			t.draw()
		}
	}
}

// Stop tears down the timers. Pending ticks and phase transitions are
// cancelled so nothing mutates after this returns.
func (t *Tour) Stop() {
	t.driver.Stop()
	t.seq.Stop()
}

// handleEvent processes one terminal event, returning false on quit
func (t *Tour) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return false
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'c', 'C':
				t.modalOpen = !t.modalOpen
			case 'm', 'M':
				t.sounds.ToggleMute()
			}
		}
	case *tcell.EventResize:
		t.width, t.height = t.screen.Size()
		t.screen.Sync()
	}
	return true
}

// update advances frame-derived state and mounts the typewriter when the
// opening sequence goes live
func (t *Tour) update() {
	if !t.driverStarted && t.seq.Phase() == engine.PhaseLive {
		t.driverStarted = true
		t.driver.Start()
	}
}

// draw renders one frame of the page
func (t *Tour) draw() {
	s := t.screen
	s.Clear()

	w, h := t.width, t.height
	if w < constants.MinWidth || h < constants.MinHeight {
		render.DrawResizeNotice(s, w, h)
		s.Show()
		return
	}

	elapsed := t.clock.Now().Sub(t.start)

	hero := render.Rect{X: 0, Y: 1, W: w, H: 5}
	wide := w >= constants.WideLayoutWidth
	if wide {
		hero.W = w - constants.PhoneWidth - 6
	}

	render.DrawHero(s, hero, render.HeroState{
		Phase:        t.seq.Phase(),
		Typed:        t.tw.Text(),
		CursorOn:     (elapsed/constants.CursorBlinkInterval)%2 == 0,
		ThinkingDots: int(elapsed/constants.ThinkingDotInterval)%3 + 1,
	})

	frameIndex := int(elapsed / constants.PhoneFrameInterval)
	y := hero.Y + hero.H + constants.SectionGap
	if wide {
		phone := render.Rect{
			X: w - constants.PhoneWidth - 4,
			Y: 2,
			W: constants.PhoneWidth,
			H: constants.PhoneHeight,
		}
		render.DrawPhone(s, phone, frameIndex, t.phoneRevealed.Load(), t.phoneLive.Load())
	} else if h >= hero.H+constants.PhoneHeight+12 {
		phone := render.Rect{
			X: (w - constants.PhoneWidth) / 2,
			Y: y,
			W: constants.PhoneWidth,
			H: constants.PhoneHeight,
		}
		render.DrawPhone(s, phone, frameIndex, t.phoneRevealed.Load(), t.phoneLive.Load())
		if t.phoneRevealed.Load() {
			y = phone.Y + phone.H + constants.SectionGap
		}
	}

	sectionW := w
	if wide {
		sectionW = hero.W
	}
	sections := render.Rect{X: 0, Y: y, W: sectionW, H: h - y}

	render.DrawFeatures(s, render.Rect{X: sections.X, Y: sections.Y, W: sections.W, H: 2}, content.Features)

	ti := int(elapsed/constants.TestimonialInterval) % len(content.Testimonials)
	render.DrawTestimonial(s, render.Rect{
		X: sections.X,
		Y: sections.Y + 2 + constants.SectionGap,
		W: sections.W,
		H: 2,
	}, content.Testimonials[ti])

	render.DrawStats(s, render.Rect{
		X: sections.X,
		Y: sections.Y + 5 + constants.SectionGap,
		W: sections.W,
		H: 2,
	}, content.Stats)

	render.DrawFooter(s, render.Rect{X: 0, Y: h - 2, W: w, H: 1})

	if t.modalOpen {
		render.DrawCompareModal(s, w, h)
	}

	s.Show()
}
