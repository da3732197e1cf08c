package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/quadhq/quad-tour/content"
	"github.com/quadhq/quad-tour/engine"
)

// HeroState is everything the hero section needs for one frame
type HeroState struct {
	Phase        engine.Phase
	Typed        string // current typewriter text, only read in PhaseLive
	CursorOn     bool
	ThinkingDots int // 1..3, only read in PhaseThinking
}

// DrawHero renders the brand title, tagline, and the phase-dependent line:
// greeting, thinking dots, or the live typewriter headline with block cursor
func DrawHero(s tcell.Screen, r Rect, st HeroState) {
	title := content.HeroTitle
	tw := runewidth.StringWidth(title)
	GradientText(s, r.X+(r.W-tw)/2, r.Y, title)

	DrawTextCentered(s, r.X, r.Y+1, r.W, StyleDim, content.HeroTagline)

	line := r.Y + 3
	switch st.Phase {
	case engine.PhaseIntro:
		DrawTextCentered(s, r.X, line, r.W, StyleBase.Italic(true), content.IntroGreeting)

	case engine.PhaseThinking:
		dots := strings.Repeat("· ", st.ThinkingDots)
		DrawTextCentered(s, r.X, line, r.W, StyleDim, strings.TrimSpace(dots))

	case engine.PhaseLive:
		// Center on the widest word so the line doesn't jitter as it types
		widest := 0
		for _, w := range content.Words {
			if n := runewidth.StringWidth(w); n > widest {
				widest = n
			}
		}
		total := runewidth.StringWidth(content.HeadlinePrefix) + widest + 1
		x := r.X + (r.W-total)/2
		x = DrawText(s, x, line, StyleBase, content.HeadlinePrefix)
		x = DrawText(s, x, line, StyleAccent, st.Typed)
		if st.CursorOn {
			s.SetContent(x, line, ' ', nil, StyleCursor)
		}
	}
}
