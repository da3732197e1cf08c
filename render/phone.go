package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/quadhq/quad-tour/content"
)

// DrawPhone renders the phone-shaped demo frame. The frame stays hidden until
// the typewriter reveals its first character; the feed animation inside only
// plays once the first word has fully typed out.
func DrawPhone(s tcell.Screen, r Rect, frameIndex int, revealed, complete bool) {
	if !revealed || r.W < 6 || r.H < 6 {
		return
	}

	DrawBox(s, r, StyleFrame)

	// Speaker notch on the top edge
	notchW := r.W / 3
	notchX := r.X + (r.W-notchW)/2
	for x := notchX; x < notchX+notchW; x++ {
		s.SetContent(x, r.Y, '▔', nil, StyleFrame)
	}

	inner := r.Inset(1)
	if !complete {
		DrawTextCentered(s, inner.X, inner.Y+inner.H/2, inner.W, StyleDim, "quad")
		return
	}

	frames := content.PhoneFrames
	frame := frames[frameIndex%len(frames)]
	for i, row := range frame {
		if i >= inner.H {
			break
		}
		DrawText(s, inner.X+1, inner.Y+i, StyleBase, truncate(row, inner.W-2))
	}

	// Home bar
	barW := r.W / 4
	barX := r.X + (r.W-barW)/2
	for x := barX; x < barX+barW; x++ {
		s.SetContent(x, r.Y+r.H-1, '▁', nil, StyleFrame)
	}
}

// truncate cuts text to at most w display cells
func truncate(text string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(text, w, "")
}
