package engine

import "time"

// Clock abstracts wall-clock time and one-shot timer scheduling so the
// animation state machines can be driven by a controllable source in tests
type Clock interface {
	// Now returns the current time with monotonic clock reading
	Now() time.Time

	// AfterFunc schedules fn to run once after d elapses
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is an outstanding scheduled callback
type Timer interface {
	// Stop cancels the pending callback, reporting whether it was still pending
	Stop() bool
}

// SystemClock provides the real system time with monotonic clock readings
type SystemClock struct{}

// NewSystemClock creates a new monotonic system clock
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn on the runtime timer heap
func (c *SystemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return systemTimer{time.AfterFunc(d, fn)}
}

type systemTimer struct {
	t *time.Timer
}

func (s systemTimer) Stop() bool {
	return s.t.Stop()
}
