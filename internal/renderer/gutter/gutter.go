// Package gutter provides gutter rendering for the document editor.
// The gutter is the read-only column to the left of the text that shows
// 1-based line numbers and an error marker on the line a parse failed at.
package gutter

// Config holds gutter configuration.
type Config struct {
	// MinLineNumberWidth is the minimum number of digits reserved.
	MinLineNumberWidth int

	// PaddingLeft and PaddingRight surround the number column.
	PaddingLeft  int
	PaddingRight int
}

// DefaultConfig returns the default gutter configuration.
func DefaultConfig() Config {
	return Config{
		MinLineNumberWidth: 3,
		PaddingLeft:        1,
		PaddingRight:       1,
	}
}

// CellStyle describes how to style a gutter cell.
type CellStyle uint8

const (
	StyleNormal CellStyle = iota
	StyleCurrentLine
	StyleError
	StyleBlank
)

// Cell represents a single gutter cell.
type Cell struct {
	Rune  rune
	Style CellStyle
}

// Gutter lays out line numbers. It holds no scroll state of its own; the
// caller passes the first visible line on every render, so the gutter can
// never drift from the text it annotates.
type Gutter struct {
	config Config

	lineCount   int
	currentLine int // 0-based
	errorLine   int // 0-based, -1 when none
	numWidth    int
}

// New creates a new gutter with the given configuration.
func New(config Config) *Gutter {
	g := &Gutter{config: config, errorLine: -1, lineCount: 1}
	g.numWidth = CalculateWidth(1, config.MinLineNumberWidth)
	return g
}

// SetLineCount updates the total line count (affects width calculation).
// Counts below one are treated as one: an empty document still has line 1.
func (g *Gutter) SetLineCount(count int) {
	g.lineCount = max(count, 1)
	g.numWidth = CalculateWidth(g.lineCount, g.config.MinLineNumberWidth)
}

// LineCount returns the number of lines the gutter numbers.
func (g *Gutter) LineCount() int {
	return g.lineCount
}

// SetCurrentLine updates the cursor line (0-based).
func (g *Gutter) SetCurrentLine(line int) {
	g.currentLine = line
}

// SetErrorLine marks a 0-based line with the error style; -1 clears it.
func (g *Gutter) SetErrorLine(line int) {
	g.errorLine = line
}

// Width returns the total gutter width including padding.
func (g *Gutter) Width() int {
	return g.config.PaddingLeft + g.numWidth + g.config.PaddingRight
}

// RenderLine renders the gutter for a single 0-based line. Lines past the
// end of the document render blank.
func (g *Gutter) RenderLine(line int) []Cell {
	cells := make([]Cell, g.Width())
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Style: StyleBlank}
	}
	if line < 0 || line >= g.lineCount {
		return cells
	}

	style := StyleNormal
	switch line {
	case g.errorLine:
		style = StyleError
	case g.currentLine:
		style = StyleCurrentLine
	}

	text := PadLeft(FormatNumber(line+1), g.numWidth)
	col := g.config.PaddingLeft
	for _, r := range text {
		if col >= len(cells) {
			break
		}
		cells[col] = Cell{Rune: r, Style: style}
		col++
	}
	for i := range cells {
		if cells[i].Style == StyleBlank {
			cells[i].Style = style
		}
	}
	return cells
}

// Numbers returns the line numbers for rows starting at the given first
// visible line, one string per row, as the gutter would display them.
func (g *Gutter) Numbers(first, rows int) []string {
	out := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		line := first + i
		if line >= g.lineCount {
			break
		}
		out = append(out, FormatNumber(line+1))
	}
	return out
}
