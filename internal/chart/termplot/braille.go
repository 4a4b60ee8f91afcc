package termplot

import "github.com/dshills/plotview/internal/renderer/core"

// braille is a dot layer with 2x4 dots per cell.
type braille struct {
	cols, rows int
	bits       []uint8
	colors     []core.Color
}

// dotBits maps (x%2, y%4) to the braille pattern bit.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func newBraille(cols, rows int) *braille {
	cols, rows = max(cols, 0), max(rows, 0)
	return &braille{
		cols:   cols,
		rows:   rows,
		bits:   make([]uint8, cols*rows),
		colors: make([]core.Color, cols*rows),
	}
}

func (b *braille) dotSize() (w, h int) {
	return b.cols * 2, b.rows * 4
}

func (b *braille) set(x, y int, color core.Color) {
	if x < 0 || y < 0 || x >= b.cols*2 || y >= b.rows*4 {
		return
	}
	i := (y/4)*b.cols + x/2
	b.bits[i] |= dotBits[x%2][y%4]
	b.colors[i] = color
}

// line draws a Bresenham line between two dots.
func (b *braille) line(x0, y0, x1, y1 int, color core.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		b.set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// flush copies non-empty cells onto the canvas at the given origin.
func (b *braille) flush(c *Canvas, left, top int, base core.Style) {
	for i, bits := range b.bits {
		if bits == 0 {
			continue
		}
		x, y := left+i%b.cols, top+i/b.cols
		c.Set(x, y, rune(0x2800+int(bits)), base.WithForeground(b.colors[i]))
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
