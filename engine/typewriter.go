package engine

import (
	"errors"
	"sync"
	"time"
)

// Direction is the typewriter's current animation direction
type Direction uint8

const (
	// DirectionGrowing adds one character per tick
	DirectionGrowing Direction = iota
	// DirectionShrinking removes one character per tick
	DirectionShrinking
)

// ErrNoWords is returned when a typewriter is constructed with an empty word list
var ErrNoWords = errors.New("typewriter: word list must not be empty")

// TypewriterConfig is the construction-time contract for a Typewriter
type TypewriterConfig struct {
	// Words is the ordered list the typewriter cycles through, wrapping at the end
	Words []string

	// TypeInterval is the delay between ticks while growing
	// Shrink ticks run at half this interval
	TypeInterval time.Duration

	// HoldDuration is the pause with a word fully visible before erasure begins
	HoldDuration time.Duration

	// OnFirstReveal is invoked once, the first time any character becomes visible
	OnFirstReveal func()

	// OnFirstWordComplete is invoked once, when the first word in the list
	// reaches full visibility. Later words and later loops never trigger it.
	OnFirstWordComplete func()
}

// Typewriter animates cycling through a word list one character at a time:
// grow to full visibility, hold, shrink to empty, advance to the next word,
// forever. It holds no timers itself; a TypewriterDriver (or a test) calls
// Tick on whatever schedule it owns.
type Typewriter struct {
	mu sync.Mutex

	words     [][]rune
	onReveal  func()
	onFirstWC func()

	wordIndex int
	visible   int
	direction Direction

	// One-shot lifecycle flags, kept as inspectable state rather than
	// closure-captured booleans
	revealed      bool
	firstWordDone bool
}

// NewTypewriter validates cfg and returns a typewriter in its initial state:
// first word, nothing visible, growing
func NewTypewriter(cfg TypewriterConfig) (*Typewriter, error) {
	if len(cfg.Words) == 0 {
		return nil, ErrNoWords
	}
	words := make([][]rune, len(cfg.Words))
	for i, w := range cfg.Words {
		words[i] = []rune(w)
	}
	return &Typewriter{
		words:     words,
		onReveal:  cfg.OnFirstReveal,
		onFirstWC: cfg.OnFirstWordComplete,
	}, nil
}

// Tick applies one animation step. Growing adds a character, or switches to
// shrinking when the word is already full; shrinking removes a character, or
// advances to the next word when nothing is left.
func (t *Typewriter) Tick() {
	t.mu.Lock()
	var fire []func()

	word := t.words[t.wordIndex%len(t.words)]
	switch t.direction {
	case DirectionGrowing:
		if t.visible < len(word) {
			t.visible++
			if !t.revealed {
				t.revealed = true
				if t.onReveal != nil {
					fire = append(fire, t.onReveal)
				}
			}
		} else {
			if t.wordIndex == 0 && !t.firstWordDone {
				t.firstWordDone = true
				if t.onFirstWC != nil {
					fire = append(fire, t.onFirstWC)
				}
			}
			t.requestShrinkLocked()
		}
	case DirectionShrinking:
		if t.visible > 0 {
			t.visible--
		} else {
			t.direction = DirectionGrowing
			t.wordIndex++
		}
	}
	t.mu.Unlock()

	// Callbacks run outside the lock so they may read typewriter state
	for _, fn := range fire {
		fn()
	}
}

// RequestShrink switches the direction to shrinking. Requesting while already
// shrinking is a no-op; the tick path and the hold timeout both funnel through
// this single mutation point so their scheduling race is harmless.
func (t *Typewriter) RequestShrink() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.requestShrinkLocked()
}

func (t *Typewriter) requestShrinkLocked() {
	t.direction = DirectionShrinking
}

// Text returns the currently visible substring of the active word
func (t *Typewriter) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return VisiblePrefix(string(t.words[t.wordIndex%len(t.words)]), t.visible)
}

// State reports the raw animation state
func (t *Typewriter) State() (wordIndex, visible int, dir Direction) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wordIndex, t.visible, t.direction
}

// AtFullWord reports whether the active word is fully visible and still growing,
// which is the condition that starts a hold
func (t *Typewriter) AtFullWord() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.direction == DirectionGrowing &&
		t.visible == len(t.words[t.wordIndex%len(t.words)])
}

// Revealed reports whether any character has ever been shown
func (t *Typewriter) Revealed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.revealed
}

// FirstWordDone reports whether the first word has reached full visibility
func (t *Typewriter) FirstWordDone() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.firstWordDone
}
