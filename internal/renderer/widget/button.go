package widget

import (
	"github.com/dshills/plotview/internal/renderer/backend"
	"github.com/dshills/plotview/internal/renderer/core"
)

// Button is a clickable label drawn as " Label ". Its rectangle is set when
// it is placed and used for hit testing until the next placement.
type Button struct {
	Label string
	rect  core.ScreenRect
}

// NewButton creates a button with the given label.
func NewButton(label string) *Button {
	return &Button{Label: label}
}

// Width returns the number of columns the button occupies.
func (btn *Button) Width() int {
	return core.StringWidth(btn.Label) + 2
}

// Place positions the button with its left edge at x on row y.
func (btn *Button) Place(x, y int) core.ScreenRect {
	btn.rect = core.RectFromSize(y, x, 1, btn.Width())
	return btn.rect
}

// Hide takes the button off screen until it is placed again.
func (btn *Button) Hide() {
	btn.rect = core.ScreenRect{}
}

// Rect returns the rectangle from the last placement.
func (btn *Button) Rect() core.ScreenRect {
	return btn.rect
}

// Hit reports whether (x, y) falls on the button.
func (btn *Button) Hit(x, y int) bool {
	return btn.rect.Contains(x, y)
}

// Draw renders the button at its placed rectangle, clipped to limit.
func (btn *Button) Draw(b backend.Backend, limit int, style core.Style) {
	if btn.rect.IsEmpty() {
		return
	}
	DrawText(b, btn.rect.Left, btn.rect.Top, min(limit, btn.rect.Right), " "+btn.Label+" ", style)
}

// PlaceRow lays buttons out left to right from x with gap columns between
// them and returns the column after the last one.
func PlaceRow(buttons []*Button, x, y, gap int) int {
	for i, btn := range buttons {
		if i > 0 {
			x += gap
		}
		x = btn.Place(x, y).Right
	}
	return x
}

// PlaceRowRight lays buttons out so the last one ends at right and returns
// the column of the first one.
func PlaceRowRight(buttons []*Button, right, y, gap int) int {
	total := 0
	for i, btn := range buttons {
		if i > 0 {
			total += gap
		}
		total += btn.Width()
	}
	start := right - total
	PlaceRow(buttons, start, y, gap)
	return start
}

// HitAny returns the first button under (x, y), or nil.
func HitAny(buttons []*Button, x, y int) *Button {
	for _, btn := range buttons {
		if btn.Hit(x, y) {
			return btn
		}
	}
	return nil
}
