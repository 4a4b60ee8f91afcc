package widget

import (
	"github.com/dshills/plotview/internal/renderer/backend"
	"github.com/dshills/plotview/internal/renderer/core"
)

const (
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
	boxHorizontal  = '─'
	boxVertical    = '│'
)

// DrawBox draws a single-line border around rect with title set into the
// top edge, fills the interior with style and returns the interior.
func DrawBox(b backend.Backend, rect core.ScreenRect, title string, border, style core.Style) core.ScreenRect {
	if rect.Width() < 2 || rect.Height() < 2 {
		return core.ScreenRect{}
	}

	inner := rect.Inset(1, 1, 1, 1)
	b.Fill(inner, core.NewStyledCell(' ', style))

	top, bottom := rect.Top, rect.Bottom-1
	left, right := rect.Left, rect.Right-1
	for x := left + 1; x < right; x++ {
		b.SetCell(x, top, core.NewStyledCell(boxHorizontal, border))
		b.SetCell(x, bottom, core.NewStyledCell(boxHorizontal, border))
	}
	for y := top + 1; y < bottom; y++ {
		b.SetCell(left, y, core.NewStyledCell(boxVertical, border))
		b.SetCell(right, y, core.NewStyledCell(boxVertical, border))
	}
	b.SetCell(left, top, core.NewStyledCell(boxTopLeft, border))
	b.SetCell(right, top, core.NewStyledCell(boxTopRight, border))
	b.SetCell(left, bottom, core.NewStyledCell(boxBottomLeft, border))
	b.SetCell(right, bottom, core.NewStyledCell(boxBottomRight, border))

	if title != "" && rect.Width() > 4 {
		t := Truncate(" "+title+" ", rect.Width()-4)
		DrawText(b, left+2, top, right-1, t, border.Bold())
	}
	return inner
}

// DrawWrapped wraps text to rect's width and draws as many lines as fit,
// starting skip lines into the wrapped text. It returns the total number
// of wrapped lines.
func DrawWrapped(b backend.Backend, rect core.ScreenRect, text string, skip int, style core.Style) int {
	lines := Wrap(text, rect.Width())
	skip = min(max(skip, 0), len(lines))
	for i, line := range lines[skip:] {
		y := rect.Top + i
		if y >= rect.Bottom {
			break
		}
		DrawText(b, rect.Left, y, rect.Right, line, style)
	}
	return len(lines)
}

// BoxSize returns the outer size of a box that holds the wrapped text
// within maxWidth x maxHeight, including the border.
func BoxSize(text string, maxWidth, maxHeight int) (width, height int) {
	if maxWidth < 3 || maxHeight < 3 {
		return 0, 0
	}
	lines := Wrap(text, maxWidth-2)
	for _, line := range lines {
		width = max(width, core.StringWidth(line))
	}
	return min(width+2, maxWidth), min(len(lines)+2, maxHeight)
}

// Centered returns a width x height rectangle centred in outer.
func Centered(outer core.ScreenRect, width, height int) core.ScreenRect {
	width = min(width, outer.Width())
	height = min(height, outer.Height())
	left := outer.Left + (outer.Width()-width)/2
	top := outer.Top + (outer.Height()-height)/2
	return core.RectFromSize(top, left, height, width)
}
