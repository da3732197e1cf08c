package engine

import (
	"sync"
	"time"
)

// TypewriterDriver owns the timers that advance a Typewriter. It keeps the
// transition logic (Typewriter.Tick) separate from the scheduling primitive,
// so the state machine stays deterministic under test while the driver decides
// cadence: grow ticks at TypeInterval, shrink ticks at half that, and a single
// delayed tick of HoldDuration when a word sits fully visible.
//
// Exactly one tick callback is outstanding at any moment, so ticks for one
// driver never overlap. Stop cancels the pending timer and bars any callback
// that already left the timer heap from touching the typewriter again.
type TypewriterDriver struct {
	mu sync.Mutex

	clock Clock
	tw    *Typewriter

	typeInterval time.Duration
	holdDuration time.Duration

	timer   Timer
	gen     uint64
	holding bool
	started bool
	stopped bool

	// onTick, when set, runs after every applied tick (display refresh, audio)
	onTick func()
}

// NewTypewriterDriver creates a driver for tw using the intervals from cfg.
// Nothing is scheduled until Start.
func NewTypewriterDriver(clock Clock, tw *Typewriter, cfg TypewriterConfig, onTick func()) *TypewriterDriver {
	return &TypewriterDriver{
		clock:        clock,
		tw:           tw,
		typeInterval: cfg.TypeInterval,
		holdDuration: cfg.HoldDuration,
		onTick:       onTick,
	}
}

// Start schedules the first tick. Calling Start again is a no-op.
func (d *TypewriterDriver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true
	d.scheduleLocked(d.typeInterval)
}

// Stop cancels the pending tick and all future ones. Safe to call more than
// once; after Stop no state mutation or callback can occur.
func (d *TypewriterDriver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// SetHoldDuration changes the hold length. If a hold is in progress the
// pending timer is cancelled and rescheduled, so a stale duration never fires
// against the new configuration. Stop on a timer whose callback already left
// the heap returns false and cannot prevent the callback from running, so the
// generation stamp is what actually fences the old one out.
func (d *TypewriterDriver) SetHoldDuration(hold time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.holdDuration = hold
	if d.holding && !d.stopped && d.timer != nil {
		d.timer.Stop()
		d.scheduleLocked(hold)
	}
}

// scheduleLocked stamps the next tick with a fresh generation and schedules
// it. A callback whose stamp no longer matches d.gen was superseded by a
// reschedule and must not run. Caller holds d.mu.
func (d *TypewriterDriver) scheduleLocked(delay time.Duration) {
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(delay, func() { d.tick(gen) })
}

// tick applies one transition and schedules the next, choosing the delay from
// the state the transition produced
func (d *TypewriterDriver) tick(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}

	d.tw.Tick()

	_, _, dir := d.tw.State()
	var delay time.Duration
	switch {
	case d.tw.AtFullWord():
		// Word just reached full visibility: hold before the shrink begins
		delay = d.holdDuration
		d.holding = true
	case dir == DirectionShrinking:
		delay = d.typeInterval / 2
		d.holding = false
	default:
		delay = d.typeInterval
		d.holding = false
	}
	d.scheduleLocked(delay)
	notify := d.onTick
	d.mu.Unlock()

	if notify != nil {
		notify()
	}
}
