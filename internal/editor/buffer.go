// Package editor implements the document editor pane: a text buffer with a
// grapheme-aware cursor, a line-number gutter that scrolls with the text,
// and the Prettify and Copy toolbar.
package editor

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/plotview/internal/renderer/core"
	"github.com/dshills/plotview/internal/renderer/layout"
)

// zeroStyle is used for layouts that only need column positions.
var zeroStyle = core.DefaultStyle()

// Position is a cursor position. Col counts grapheme clusters, not bytes
// or columns.
type Position struct {
	Line int
	Col  int
}

// Buffer holds the document as lines and a single cursor.
type Buffer struct {
	lines  []string
	cursor Position

	// goal is the visual column kept across vertical moves, -1 when unset.
	goal int

	engine *layout.Engine
}

// NewBuffer creates a buffer holding text with the cursor at the start.
func NewBuffer(text string, engine *layout.Engine) *Buffer {
	b := &Buffer{engine: engine, goal: -1}
	b.lines = splitLines(text)
	return b
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// Text returns the whole document.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// SetText replaces the document and keeps the cursor as close as possible
// to where it was.
func (b *Buffer) SetText(text string) {
	b.lines = splitLines(text)
	b.MoveTo(b.cursor)
}

// IsEmpty reports whether the document has no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && b.lines[0] == ""
}

// LineCount returns the number of lines. An empty document has one line.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns line i, or "" when i is out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() Position {
	return b.cursor
}

// VisualColumn returns the display column of the cursor.
func (b *Buffer) VisualColumn() int {
	return b.engine.Layout(b.lines[b.cursor.Line], zeroStyle).VisualColumn(b.cursor.Col)
}

func (b *Buffer) clusters(line int) int {
	return uniseg.GraphemeClusterCount(b.lines[line])
}

// byteOffset returns the byte offset of cluster col in line.
func (b *Buffer) byteOffset(line, col int) int {
	s := b.lines[line]
	if col <= 0 {
		return 0
	}
	g := uniseg.NewGraphemes(s)
	for i := 0; g.Next(); i++ {
		if i == col {
			from, _ := g.Positions()
			return from
		}
	}
	return len(s)
}

// MoveTo places the cursor, clamped to the document.
func (b *Buffer) MoveTo(p Position) {
	p.Line = min(max(p.Line, 0), len(b.lines)-1)
	p.Col = min(max(p.Col, 0), b.clusters(p.Line))
	b.cursor = p
	b.goal = -1
}

// MoveToVisual places the cursor on line at the cluster covering visCol.
func (b *Buffer) MoveToVisual(line, visCol int) {
	line = min(max(line, 0), len(b.lines)-1)
	col := b.engine.Layout(b.lines[line], zeroStyle).ClusterAt(visCol)
	b.MoveTo(Position{Line: line, Col: col})
}

// Insert inserts s at the cursor and leaves the cursor after it.
func (b *Buffer) Insert(s string) {
	if s == "" {
		return
	}
	line := b.lines[b.cursor.Line]
	off := b.byteOffset(b.cursor.Line, b.cursor.Col)
	head, tail := line[:off], line[off:]

	parts := splitLines(s)
	last := len(parts) - 1
	if last == 0 {
		b.lines[b.cursor.Line] = head + s + tail
		// Combining marks can merge with the cluster before them.
		b.cursor.Col = uniseg.GraphemeClusterCount(head + s)
		b.goal = -1
		return
	}

	newLines := make([]string, 0, len(b.lines)+last)
	newLines = append(newLines, b.lines[:b.cursor.Line]...)
	newLines = append(newLines, head+parts[0])
	newLines = append(newLines, parts[1:last]...)
	newLines = append(newLines, parts[last]+tail)
	newLines = append(newLines, b.lines[b.cursor.Line+1:]...)
	b.lines = newLines

	b.cursor = Position{Line: b.cursor.Line + last, Col: uniseg.GraphemeClusterCount(parts[last])}
	b.goal = -1
}

// InsertNewline splits the line at the cursor.
func (b *Buffer) InsertNewline() {
	b.Insert("\n")
}

// Backspace deletes the cluster before the cursor, joining lines at the
// start of a line. It reports whether anything changed.
func (b *Buffer) Backspace() bool {
	c := b.cursor
	if c.Col > 0 {
		line := b.lines[c.Line]
		from := b.byteOffset(c.Line, c.Col-1)
		to := b.byteOffset(c.Line, c.Col)
		b.lines[c.Line] = line[:from] + line[to:]
		b.cursor.Col--
		b.goal = -1
		return true
	}
	if c.Line == 0 {
		return false
	}
	prev := b.lines[c.Line-1]
	col := uniseg.GraphemeClusterCount(prev)
	b.lines[c.Line-1] = prev + b.lines[c.Line]
	b.lines = append(b.lines[:c.Line], b.lines[c.Line+1:]...)
	b.cursor = Position{Line: c.Line - 1, Col: col}
	b.goal = -1
	return true
}

// Delete deletes the cluster under the cursor, joining the next line at
// the end of a line. It reports whether anything changed.
func (b *Buffer) Delete() bool {
	c := b.cursor
	if c.Col < b.clusters(c.Line) {
		line := b.lines[c.Line]
		from := b.byteOffset(c.Line, c.Col)
		to := b.byteOffset(c.Line, c.Col+1)
		b.lines[c.Line] = line[:from] + line[to:]
		return true
	}
	if c.Line == len(b.lines)-1 {
		return false
	}
	b.lines[c.Line] += b.lines[c.Line+1]
	b.lines = append(b.lines[:c.Line+1], b.lines[c.Line+2:]...)
	return true
}

// Left moves one cluster left, wrapping to the end of the previous line.
func (b *Buffer) Left() {
	c := b.cursor
	switch {
	case c.Col > 0:
		b.MoveTo(Position{Line: c.Line, Col: c.Col - 1})
	case c.Line > 0:
		b.MoveTo(Position{Line: c.Line - 1, Col: b.clusters(c.Line - 1)})
	}
}

// Right moves one cluster right, wrapping to the start of the next line.
func (b *Buffer) Right() {
	c := b.cursor
	switch {
	case c.Col < b.clusters(c.Line):
		b.MoveTo(Position{Line: c.Line, Col: c.Col + 1})
	case c.Line < len(b.lines)-1:
		b.MoveTo(Position{Line: c.Line + 1})
	}
}

// Up moves n lines up, keeping the visual column.
func (b *Buffer) Up(n int) {
	b.vertical(-n)
}

// Down moves n lines down, keeping the visual column.
func (b *Buffer) Down(n int) {
	b.vertical(n)
}

func (b *Buffer) vertical(delta int) {
	goal := b.goal
	if goal < 0 {
		goal = b.VisualColumn()
	}
	target := b.cursor.Line + delta
	switch {
	case target < 0:
		b.MoveTo(Position{})
		return
	case target >= len(b.lines):
		last := len(b.lines) - 1
		b.MoveTo(Position{Line: last, Col: b.clusters(last)})
		return
	}
	b.MoveToVisual(target, goal)
	b.goal = goal
}

// Home moves to the start of the line.
func (b *Buffer) Home() {
	b.MoveTo(Position{Line: b.cursor.Line})
}

// End moves to the end of the line.
func (b *Buffer) End() {
	b.MoveTo(Position{Line: b.cursor.Line, Col: b.clusters(b.cursor.Line)})
}
