package constants

import "time"

// Frame & Animation Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TypeInterval is the default delay between typewriter grow ticks
	// Shrink ticks run at half this interval
	TypeInterval = 90 * time.Millisecond

	// HoldDuration is the default pause with a word fully typed before erasure
	HoldDuration = 1400 * time.Millisecond
)

// Opening Sequence Delays (both measured from startup, not from each other)
const (
	// ThinkingDelay is when the greeting gives way to the dots indicator
	ThinkingDelay = 1600 * time.Millisecond

	// LiveDelay is when the typewriter headline takes over and starts running
	LiveDelay = 2800 * time.Millisecond
)

// Demo Animation
const (
	// PhoneFrameInterval is the delay between phone demo animation frames
	PhoneFrameInterval = 600 * time.Millisecond

	// ThinkingDotInterval is the cadence of the dots indicator
	ThinkingDotInterval = 250 * time.Millisecond

	// TestimonialInterval is how long each testimonial stays on screen
	TestimonialInterval = 5 * time.Second

	// CursorBlinkInterval is the block cursor blink cadence on the headline
	CursorBlinkInterval = 500 * time.Millisecond
)
