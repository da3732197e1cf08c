package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Styles shared across the page
var (
	StyleBase   = tcell.StyleDefault
	StyleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleBold   = tcell.StyleDefault.Bold(true)
	StyleAccent = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x7c, 0x5c, 0xff)).Bold(true)
	StyleFrame  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x55, 0x5a, 0x66))
	StyleCursor = tcell.StyleDefault.Reverse(true)
)

// Gradient blends from one color to another across n steps in HCL space,
// which keeps the midpoints from washing out the way RGB blending does
func Gradient(from, to colorful.Color, n int) []tcell.Color {
	if n < 1 {
		return nil
	}
	out := make([]tcell.Color, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := from.BlendHcl(to, t).Clamped()
		out[i] = tcell.NewRGBColor(int32(c.R*255), int32(c.G*255), int32(c.B*255))
	}
	return out
}

// Brand gradient endpoints: Quad purple to campus-lawn teal
var (
	brandFrom = colorful.Color{R: 0.49, G: 0.36, B: 1.00}
	brandTo   = colorful.Color{R: 0.22, G: 0.84, B: 0.67}
)

var titleGradient = Gradient(brandFrom, brandTo, 16)

// GradientText writes text with one gradient color per rune, advancing by
// display width like DrawText so wide runes keep their two cells
func GradientText(s tcell.Screen, x, y int, text string) {
	runes := []rune(text)
	colors := titleGradient
	if len(runes) > len(colors) {
		colors = Gradient(brandFrom, brandTo, len(runes))
	}
	for i, r := range runes {
		ci := i
		if ci >= len(colors) {
			ci = len(colors) - 1
		}
		style := tcell.StyleDefault.Foreground(colors[ci]).Bold(true)
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
