// Package widget provides the small drawing primitives shared by the panes:
// text runs, buttons, single-line text fields and bordered boxes.
package widget

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/plotview/internal/renderer/backend"
	"github.com/dshills/plotview/internal/renderer/core"
)

// Ellipsis marks text cut by Truncate.
const Ellipsis = "…"

// DrawText writes text at (x, y) one grapheme cluster at a time, stopping
// before any cluster that would cross limit. It returns the columns used.
func DrawText(b backend.Backend, x, y, limit int, text string, style core.Style) int {
	col := x
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		if w == 0 {
			continue
		}
		if col+w > limit {
			break
		}
		b.SetCell(col, y, core.Cell{Rune: runes[0], Width: w, Style: style})
		for i := 1; i < w; i++ {
			c := core.ContinuationCell()
			c.Style = style
			b.SetCell(col+i, y, c)
		}
		col += w
	}
	return col - x
}

// DrawCentered writes text centred in [left, right) on row y.
func DrawCentered(b backend.Backend, left, right, y int, text string, style core.Style) {
	text = Truncate(text, right-left)
	x := left + max((right-left-core.StringWidth(text))/2, 0)
	DrawText(b, x, y, right, text, style)
}

// Truncate shortens text to at most width columns, ending it with an
// ellipsis when anything was cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if core.StringWidth(text) <= width {
		return text
	}

	var out strings.Builder
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := g.Width()
		if used+w > width-1 {
			break
		}
		out.WriteString(g.Str())
		used += w
	}
	out.WriteString(Ellipsis)
	return out.String()
}

// Wrap breaks text into lines of at most width columns. Newlines in text
// always break; words longer than width are split between clusters.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, width)...)
	}
	return lines
}

func wrapParagraph(para string, width int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	lineW := 0
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	for _, word := range words {
		ww := core.StringWidth(word)
		if lineW > 0 && lineW+1+ww > width {
			flush()
		}
		if lineW > 0 {
			line.WriteByte(' ')
			lineW++
		}
		if ww <= width-lineW {
			line.WriteString(word)
			lineW += ww
			continue
		}

		g := uniseg.NewGraphemes(word)
		for g.Next() {
			w := g.Width()
			if lineW+w > width && lineW > 0 {
				flush()
			}
			line.WriteString(g.Str())
			lineW += w
		}
	}
	if lineW > 0 {
		flush()
	}
	return lines
}
