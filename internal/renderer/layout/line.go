// Package layout computes the visual layout of editor lines: tab expansion,
// grapheme clusters and wide characters mapped onto terminal columns.
package layout

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/plotview/internal/renderer/core"
)

// LineLayout is the visual layout of a single line.
type LineLayout struct {
	// Cells holds one cell per visual column. Wide characters are followed
	// by a continuation cell.
	Cells []core.Cell

	// ClusterCols maps a grapheme cluster index to its first visual column.
	// It has one extra entry for the end of the line.
	ClusterCols []int

	// ClusterBytes maps a grapheme cluster index to its byte offset in the
	// source line, with one extra entry for the line length.
	ClusterBytes []int

	Width   int
	HasTabs bool
	HasWide bool
}

// Clusters returns the number of grapheme clusters in the line.
func (l *LineLayout) Clusters() int {
	return len(l.ClusterCols) - 1
}

// VisualColumn converts a cluster index to a visual column. Indices past
// the end extrapolate one column per cluster.
func (l *LineLayout) VisualColumn(cluster int) int {
	if cluster <= 0 {
		return 0
	}
	if n := l.Clusters(); cluster > n {
		return l.Width + cluster - n
	}
	return l.ClusterCols[cluster]
}

// ClusterAt converts a visual column to the cluster that covers it.
// Columns past the end of the line return the cluster count.
func (l *LineLayout) ClusterAt(visCol int) int {
	if visCol <= 0 {
		return 0
	}
	for i := 1; i < len(l.ClusterCols); i++ {
		if visCol < l.ClusterCols[i] {
			return i - 1
		}
	}
	return l.Clusters()
}

// ColumnsForBytes converts a byte range of the source line to the visual
// columns [start, end) of the clusters that begin inside it.
func (l *LineLayout) ColumnsForBytes(from, to int) (start, end int) {
	start, end = -1, -1
	for i := 0; i < l.Clusters(); i++ {
		b := l.ClusterBytes[i]
		if b < from || b >= to {
			continue
		}
		if start < 0 {
			start = l.ClusterCols[i]
		}
		end = l.ClusterCols[i+1]
	}
	if start < 0 {
		return 0, 0
	}
	return start, end
}

// Slice returns up to width cells starting at visual column from.
func (l *LineLayout) Slice(from, width int) []core.Cell {
	if from >= len(l.Cells) || width <= 0 {
		return nil
	}
	from = max(from, 0)
	return l.Cells[from:min(from+width, len(l.Cells))]
}

// Engine computes line layouts.
type Engine struct {
	tabs *TabExpander
}

// NewEngine creates a layout engine with the given tab width.
func NewEngine(tabWidth int) *Engine {
	return &Engine{tabs: NewTabExpander(tabWidth)}
}

// Layout computes the visual layout for a line in the given style.
func (e *Engine) Layout(line string, style core.Style) *LineLayout {
	l := &LineLayout{
		Cells:        make([]core.Cell, 0, len(line)),
		ClusterCols:  make([]int, 0, len(line)+1),
		ClusterBytes: make([]int, 0, len(line)+1),
	}

	col := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		l.ClusterCols = append(l.ClusterCols, col)
		from, _ := g.Positions()
		l.ClusterBytes = append(l.ClusterBytes, from)
		cluster := g.Str()

		if cluster == "\t" {
			l.HasTabs = true
			for i := e.tabs.TabStopOffset(col); i > 0; i-- {
				l.Cells = append(l.Cells, core.NewStyledCell(' ', style))
				col++
			}
			continue
		}

		w := g.Width()
		runes := g.Runes()
		if w == 0 || core.RuneWidth(runes[0]) == 0 {
			// Control characters take no column.
			continue
		}

		cell := core.NewStyledCell(runes[0], style)
		cell.Width = w
		l.Cells = append(l.Cells, cell)
		col++
		for i := 1; i < w; i++ {
			l.HasWide = true
			cont := core.ContinuationCell()
			cont.Style = style
			l.Cells = append(l.Cells, cont)
			col++
		}
	}

	l.ClusterCols = append(l.ClusterCols, col)
	l.ClusterBytes = append(l.ClusterBytes, len(line))
	l.Width = col
	return l
}
