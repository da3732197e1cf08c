package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/quadhq/quad-tour/content"
)

// DrawFeatures lays the feature cards out in equal columns across r
func DrawFeatures(s tcell.Screen, r Rect, features []content.Feature) {
	if len(features) == 0 || r.W < len(features)*8 {
		return
	}
	colW := r.W / len(features)
	for i, f := range features {
		x := r.X + i*colW
		DrawTextCentered(s, x, r.Y, colW, StyleBold, string(f.Icon)+" "+f.Title)
		DrawTextCentered(s, x, r.Y+1, colW, StyleDim, f.Blurb)
	}
}

// DrawTestimonial renders one quote with its attribution
func DrawTestimonial(s tcell.Screen, r Rect, t content.Testimonial) {
	DrawTextCentered(s, r.X, r.Y, r.W, StyleBase.Italic(true), "“"+t.Quote+"”")
	DrawTextCentered(s, r.X, r.Y+1, r.W, StyleDim, fmt.Sprintf("— %s, %s", t.Name, t.Campus))
}

// DrawStats spreads the stat figures across r, values above labels
func DrawStats(s tcell.Screen, r Rect, stats []content.Stat) {
	if len(stats) == 0 {
		return
	}
	colW := r.W / len(stats)
	for i, st := range stats {
		x := r.X + i*colW
		DrawTextCentered(s, x, r.Y, colW, StyleAccent, st.Value)
		DrawTextCentered(s, x, r.Y+1, colW, StyleDim, st.Label)
	}
}

// DrawFooter renders the key hint line
func DrawFooter(s tcell.Screen, r Rect) {
	DrawTextCentered(s, r.X, r.Y, r.W, StyleDim, content.FooterHint)
}

// DrawResizeNotice fills the screen with the too-small message
func DrawResizeNotice(s tcell.Screen, w, h int) {
	DrawTextCentered(s, 0, h/2, w, StyleDim, content.ResizeNotice)
}
