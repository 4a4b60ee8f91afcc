package termplot

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/plotview/internal/renderer/core"
)

// Canvas is a fixed-size grid of cells the engine draws into.
type Canvas struct {
	width  int
	height int
	cells  []core.Cell
}

// NewCanvas creates a canvas filled with blanks in the given style.
func NewCanvas(width, height int, style core.Style) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{width: width, height: height, cells: make([]core.Cell, width*height)}
	blank := core.NewStyledCell(' ', style)
	for i := range c.cells {
		c.cells[i] = blank
	}
	return c
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Set sets the cell at (x, y). Out of range positions are ignored.
func (c *Canvas) Set(x, y int, r rune, style core.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = core.NewStyledCell(r, style)
}

// At returns the cell at (x, y).
func (c *Canvas) At(x, y int) core.Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return core.EmptyCell()
	}
	return c.cells[y*c.width+x]
}

// Text writes s starting at (x, y), one grapheme cluster per cell run, and
// returns the number of columns used. Text past the right edge is dropped.
func (c *Canvas) Text(x, y int, s string, style core.Style) int {
	col := x
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		w := max(g.Width(), 1)
		if col+w > c.width {
			break
		}
		c.Set(col, y, runes[0], style)
		for i := 1; i < w; i++ {
			// Continuation cells of a wide cluster.
			c.Set(col+i, y, 0, style)
		}
		col += w
	}
	return col - x
}

// CenterText writes s centred within [left, right).
func (c *Canvas) CenterText(left, right, y int, s string, style core.Style) {
	w := core.StringWidth(s)
	x := left + max((right-left-w)/2, 0)
	c.Text(x, y, s, style)
}

// Row returns the runes of row y, for tests and plain-text output.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < c.width; x++ {
		if r := c.cells[y*c.width+x].Rune; r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// String returns the whole canvas as plain text, one line per row.
func (c *Canvas) String() string {
	lines := make([]string, c.height)
	for y := range lines {
		lines[y] = strings.TrimRight(c.Row(y), " ")
	}
	return strings.Join(lines, "\n")
}
