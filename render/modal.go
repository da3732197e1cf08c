package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/quadhq/quad-tour/constants"
	"github.com/quadhq/quad-tour/content"
)

const (
	markIncluded = "✓"
	markMissing  = "─"
)

// DrawCompareModal draws the tier comparison overlay centered on the screen.
// It paints over whatever is beneath it; the page redraws every frame anyway.
func DrawCompareModal(s tcell.Screen, screenW, screenH int) {
	w := constants.ModalWidth
	h := constants.ModalHeight
	if w > screenW-2 {
		w = screenW - 2
	}
	if h > screenH-2 {
		h = screenH - 2
	}
	box := Rect{X: (screenW - w) / 2, Y: (screenH - h) / 2, W: w, H: h}
	DrawBox(s, box, StyleFrame)

	title := " compare plans "
	DrawText(s, box.X+(w-runewidth.StringWidth(title))/2, box.Y, StyleBold, title)

	inner := box.Inset(1)
	colPlus := inner.X + inner.W - runewidth.StringWidth(content.PlanPlusName) - 1
	colFree := colPlus - runewidth.StringWidth(content.PlanFreeName) - 4

	DrawText(s, colFree, inner.Y, StyleBold, content.PlanFreeName)
	DrawText(s, colPlus, inner.Y, StyleAccent, content.PlanPlusName)

	for i, row := range content.PlanRows {
		y := inner.Y + 2 + i
		if y >= inner.Y+inner.H-1 {
			break
		}
		DrawText(s, inner.X+1, y, StyleBase, truncate(row.Feature, colFree-inner.X-3))
		DrawText(s, colFree+1, y, markStyle(row.Free), mark(row.Free))
		DrawText(s, colPlus+2, y, markStyle(row.Plus), mark(row.Plus))
	}

	DrawTextCentered(s, inner.X, inner.Y+inner.H-1, inner.W, StyleDim, "c close")
}

func mark(included bool) string {
	if included {
		return markIncluded
	}
	return markMissing
}

func markStyle(included bool) tcell.Style {
	if included {
		return StyleAccent
	}
	return StyleDim
}
