package engine

import (
	"sync"
	"time"
)

// MockClock provides a controllable time source for testing
// Advancing the clock fires due timers in deadline order, each seeing
// Now() equal to its own deadline, so rescheduling chains run to completion
// within a single Advance call
type MockClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*mockTimer
}

// NewMockClock creates a new mock clock with the given start time
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the current mocked time
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc registers fn to fire when the clock advances past d
func (c *MockClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &mockTimer{
		clock: c,
		when:  c.now.Add(d),
		seq:   c.seq,
		fn:    fn,
	}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer whose deadline
// falls within the window. Callbacks run without the clock lock held, so
// they may schedule or stop timers.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	for {
		t := c.popDueLocked(target)
		if t == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = t.when
		c.mu.Unlock()
		t.fn()
		c.mu.Lock()
	}
}

// popDueLocked removes and returns the earliest timer due at or before target,
// breaking deadline ties by scheduling order
func (c *MockClock) popDueLocked(target time.Time) *mockTimer {
	best := -1
	for i, t := range c.timers {
		if t.when.After(target) {
			continue
		}
		if best == -1 || t.when.Before(c.timers[best].when) ||
			(t.when.Equal(c.timers[best].when) && t.seq < c.timers[best].seq) {
			best = i
		}
	}
	if best == -1 {
		return nil
	}
	t := c.timers[best]
	c.timers = append(c.timers[:best], c.timers[best+1:]...)
	return t
}

type mockTimer struct {
	clock *MockClock
	when  time.Time
	seq   int
	fn    func()
}

// Stop removes the timer from the pending set, reporting whether it was still pending
func (t *mockTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, pending := range c.timers {
		if pending == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}
