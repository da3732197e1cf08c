package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Rect is a screen region in cell coordinates
type Rect struct {
	X, Y, W, H int
}

// Inset shrinks the rect by n cells on every side
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// DrawText writes text starting at (x, y), advancing by display width so wide
// runes occupy their two cells. Returns the x position after the last rune.
func DrawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// DrawTextCentered writes text centered within [x, x+w) at row y
func DrawTextCentered(s tcell.Screen, x, y, w int, style tcell.Style, text string) {
	tw := runewidth.StringWidth(text)
	DrawText(s, x+(w-tw)/2, y, style, text)
}

// Rounded box drawing characters
var boxChars = [6]rune{'╭', '─', '╮', '│', '╰', '╯'}

// DrawBox draws a rounded border around r and clears its interior
func DrawBox(s tcell.Screen, r Rect, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	for y := r.Y + 1; y < r.Y+r.H-1; y++ {
		for x := r.X + 1; x < r.X+r.W-1; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
	s.SetContent(r.X, r.Y, boxChars[0], nil, style)
	s.SetContent(r.X+r.W-1, r.Y, boxChars[2], nil, style)
	s.SetContent(r.X, r.Y+r.H-1, boxChars[4], nil, style)
	s.SetContent(r.X+r.W-1, r.Y+r.H-1, boxChars[5], nil, style)
	for x := r.X + 1; x < r.X+r.W-1; x++ {
		s.SetContent(x, r.Y, boxChars[1], nil, style)
		s.SetContent(x, r.Y+r.H-1, boxChars[1], nil, style)
	}
	for y := r.Y + 1; y < r.Y+r.H-1; y++ {
		s.SetContent(r.X, y, boxChars[3], nil, style)
		s.SetContent(r.X+r.W-1, y, boxChars[3], nil, style)
	}
}
