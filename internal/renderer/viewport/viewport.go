// Package viewport tracks which part of a text document is visible.
//
// The editor and its line-number gutter share one Viewport, so the gutter
// scroll offset is the text scroll offset by construction.
package viewport

// Viewport represents the visible portion of a document in lines and
// visual columns.
type Viewport struct {
	topLine    int
	leftColumn int

	width  int
	height int

	// Scroll margins keep the cursor this far from the edges.
	marginVertical   int
	marginHorizontal int

	lineCount int
}

// New creates a viewport with the given size. Width and height are at
// least 1.
func New(width, height int) *Viewport {
	return &Viewport{
		width:            max(width, 1),
		height:           max(height, 1),
		marginVertical:   1,
		marginHorizontal: 4,
		lineCount:        1,
	}
}

// Width returns the viewport width in columns.
func (v *Viewport) Width() int { return v.width }

// Height returns the viewport height in rows.
func (v *Viewport) Height() int { return v.height }

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int { return v.topLine }

// LeftColumn returns the first visible visual column.
func (v *Viewport) LeftColumn() int { return v.leftColumn }

// Resize updates the size and keeps the scroll offset in range.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
	v.clamp()
}

// SetMargins sets the vertical and horizontal scroll margins.
func (v *Viewport) SetMargins(vertical, horizontal int) {
	v.marginVertical = max(vertical, 0)
	v.marginHorizontal = max(horizontal, 0)
}

// SetLineCount sets the number of lines in the document.
func (v *Viewport) SetLineCount(n int) {
	v.lineCount = max(n, 1)
	v.clamp()
}

// VisibleLineRange returns the visible lines [start, end).
func (v *Viewport) VisibleLineRange() (start, end int) {
	return v.topLine, min(v.topLine+v.height, v.lineCount)
}

// IsLineVisible reports whether line is on screen.
func (v *Viewport) IsLineVisible(line int) bool {
	start, end := v.VisibleLineRange()
	return line >= start && line < end
}

// ScreenToBuffer converts a row and column relative to the viewport to a
// document line and visual column.
func (v *Viewport) ScreenToBuffer(row, col int) (line, visCol int) {
	return v.topLine + row, v.leftColumn + col
}

// BufferToScreen converts a document position to viewport-relative row and
// column.
func (v *Viewport) BufferToScreen(line, visCol int) (row, col int) {
	return line - v.topLine, visCol - v.leftColumn
}

// ScrollTo shows line at the top.
func (v *Viewport) ScrollTo(line int) {
	v.topLine = line
	v.clamp()
}

// ScrollBy scrolls by delta lines and reports whether the offset changed.
func (v *Viewport) ScrollBy(delta int) bool {
	before := v.topLine
	v.topLine += delta
	v.clamp()
	return v.topLine != before
}

// ScrollHorizontalBy scrolls by delta columns.
func (v *Viewport) ScrollHorizontalBy(delta int) {
	v.leftColumn = max(v.leftColumn+delta, 0)
}

// PageSize returns the number of lines a page key moves, keeping one line
// of overlap.
func (v *Viewport) PageSize() int {
	return max(v.height-1, 1)
}

// ScrollToReveal scrolls minimally so (line, visCol) is visible with the
// margins around it. It reports whether scrolling occurred.
func (v *Viewport) ScrollToReveal(line, visCol int) bool {
	top, left := v.topLine, v.leftColumn

	mv := min(v.marginVertical, (v.height-1)/2)
	if line < v.topLine+mv {
		v.topLine = line - mv
	} else if line > v.topLine+v.height-1-mv {
		v.topLine = line - v.height + 1 + mv
	}

	mh := min(v.marginHorizontal, (v.width-1)/2)
	if visCol < v.leftColumn+mh {
		v.leftColumn = max(visCol-mh, 0)
	} else if visCol > v.leftColumn+v.width-1-mh {
		v.leftColumn = visCol - v.width + 1 + mh
	}

	v.clamp()
	return v.topLine != top || v.leftColumn != left
}

// clamp keeps the top line within the document, allowing the last line to
// scroll up to the top.
func (v *Viewport) clamp() {
	v.topLine = min(max(v.topLine, 0), v.lineCount-1)
	v.leftColumn = max(v.leftColumn, 0)
}
