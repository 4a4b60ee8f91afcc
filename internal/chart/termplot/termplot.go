// Package termplot draws chart models into a grid of terminal cells.
//
// Pixel sizes are mapped to cells using a configurable cell size, so a
// 700x500 figure with 8x16 pixel cells occupies 87x31 cells. Bars use
// eighth-block glyphs for sub-cell height and lines are drawn with braille
// dots, which give a 2x4 grid per cell.
package termplot

import (
	"math"

	"github.com/dshills/plotview/internal/chart"
	"github.com/dshills/plotview/internal/renderer/core"
)

// Theme holds the colours of chart chrome.
type Theme struct {
	Foreground core.Color
	Background core.Color
	Axis       core.Color
	Muted      core.Color
}

// DefaultTheme matches a white plotting template on a light surface.
func DefaultTheme() Theme {
	return Theme{
		Foreground: core.ColorFromRGB(42, 63, 95),
		Background: core.ColorFromRGB(255, 255, 255),
		Axis:       core.ColorFromRGB(148, 163, 184),
		Muted:      core.ColorFromRGB(100, 116, 139),
	}
}

// Options configures the engine.
type Options struct {
	CellWidth  int // pixels per column
	CellHeight int // pixels per row
	Theme      Theme
}

// DefaultOptions returns 8x16 pixel cells and the default theme.
func DefaultOptions() Options {
	return Options{CellWidth: 8, CellHeight: 16, Theme: DefaultTheme()}
}

// Size converts a pixel size into cells. Each dimension is at least one.
func (o Options) Size(widthPx, heightPx int) (cols, rows int) {
	cw, ch := max(o.CellWidth, 1), max(o.CellHeight, 1)
	return max(widthPx/cw, 1), max(heightPx/ch, 1)
}

const (
	minPlotCols = 4
	minPlotRows = 2
)

var lowerBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Render draws m into a canvas sized from the model's pixel dimensions.
func Render(m chart.Model, opts Options) *Canvas {
	cols, rows := opts.Size(m.Width, m.Height)
	return RenderCells(m, cols, rows, opts.Theme)
}

// RenderCells draws m into a canvas of exactly cols x rows cells.
func RenderCells(m chart.Model, cols, rows int, theme Theme) *Canvas {
	base := core.DefaultStyle().WithForeground(theme.Foreground).WithBackground(theme.Background)
	c := NewCanvas(cols, rows, base)
	p := &plotter{c: c, m: m, theme: theme, base: base}
	p.draw()
	return c
}

type plotter struct {
	c     *Canvas
	m     chart.Model
	theme Theme
	base  core.Style

	// plot area, inclusive left/top, exclusive right/bottom
	left, top, right, bottom int

	xlo, xhi float64
	ylo, yhi float64
}

func (p *plotter) style(fg core.Color) core.Style {
	return p.base.WithForeground(fg)
}

func (p *plotter) draw() {
	w, h := p.c.Size()
	top, bottom := 0, h

	if p.m.Title != "" && h > 0 {
		p.c.CenterText(0, w, top, p.m.Title, p.base.Bold())
		top++
	}
	if p.m.ShowLegend && bottom-top > minPlotRows+3 {
		bottom--
		p.drawLegend(bottom)
	}
	if p.m.XTitle != "" && bottom-top > minPlotRows+2 {
		bottom--
		p.c.CenterText(0, w, bottom, p.m.XTitle, p.style(p.theme.Muted))
	}
	if p.m.YTitle != "" && bottom-top > minPlotRows+2 {
		p.c.Text(0, top, p.m.YTitle, p.style(p.theme.Muted))
		top++
	}

	xlo, xhi, okx := p.m.XRange()
	ylo, yhi, oky := p.m.YRange()
	if !okx || !oky {
		p.drawEmpty(top, bottom)
		return
	}

	// x axis line and tick labels take the last two rows.
	plotBottom := bottom - 2
	plotRows := plotBottom - top
	if plotRows < minPlotRows {
		p.drawTooSmall(top)
		return
	}

	yticks := chart.NiceTicks(ylo, yhi, max(plotRows/3, 2))
	if len(yticks) >= 2 {
		ylo, yhi = yticks[0].Value, yticks[len(yticks)-1].Value
	}
	labelW := 0
	for _, t := range yticks {
		labelW = max(labelW, core.StringWidth(t.Label))
	}

	p.left, p.top, p.right, p.bottom = labelW+1, top, w, plotBottom
	if p.right-p.left < minPlotCols {
		p.drawTooSmall(top)
		return
	}
	p.xlo, p.xhi, p.ylo, p.yhi = xlo, xhi, ylo, yhi

	p.drawYAxis(yticks, labelW)
	p.drawXAxis()

	bars := 0
	dots := newBraille(p.right-p.left, p.bottom-p.top)
	for _, s := range p.m.Series {
		if s.Kind == chart.KindBar {
			p.drawBars(s, bars)
			bars++
			continue
		}
		if s.Kind.HasLine() {
			p.traceLine(dots, s)
		}
	}
	dots.flush(p.c, p.left, p.top, p.base)
	for _, s := range p.m.Series {
		if s.Kind.HasMarkers() {
			p.drawMarkers(s)
		}
	}
}

func (p *plotter) drawEmpty(top, bottom int) {
	w, _ := p.c.Size()
	mid := top + max((bottom-top)/2-1, 0)
	p.c.CenterText(0, w, mid, "No drawable traces", p.style(p.theme.Muted))
	for i, s := range p.m.Skipped {
		if mid+1+i >= bottom {
			break
		}
		p.c.CenterText(0, w, mid+1+i, s, p.style(p.theme.Muted))
	}
}

func (p *plotter) drawTooSmall(y int) {
	w, _ := p.c.Size()
	p.c.CenterText(0, w, y, "Chart too small", p.style(p.theme.Muted))
}

// rowOf maps a y value to a fractional row offset from the plot bottom.
func (p *plotter) rowOf(v float64) float64 {
	return (v - p.ylo) / (p.yhi - p.ylo) * float64(p.bottom-p.top)
}

// colOf maps an x value to a fractional column within the plot.
func (p *plotter) colOf(v float64) float64 {
	return (v - p.xlo) / (p.xhi - p.xlo) * float64(p.right-p.left)
}

func (p *plotter) drawYAxis(ticks []chart.Tick, labelW int) {
	axis := p.style(p.theme.Axis)
	for y := p.top; y < p.bottom; y++ {
		p.c.Set(p.left-1, y, '│', axis)
	}
	rows := p.bottom - p.top
	for _, t := range ticks {
		r := int(math.Round(p.rowOf(t.Value)))
		y := p.bottom - 1 - min(max(r, 0), rows-1)
		x := labelW - core.StringWidth(t.Label)
		p.c.Text(max(x, 0), y, t.Label, p.style(p.theme.Muted))
		p.c.Set(p.left-1, y, '┤', axis)
	}
}

func (p *plotter) drawXAxis() {
	axis := p.style(p.theme.Axis)
	y := p.bottom
	p.c.Set(p.left-1, y, '└', axis)
	for x := p.left; x < p.right; x++ {
		p.c.Set(x, y, '─', axis)
	}

	labels := p.xLabels()
	next := p.left
	for _, t := range labels {
		col := p.left + int(p.colOf(t.Value))
		w := core.StringWidth(t.Label)
		x := min(max(col-w/2, p.left), p.right-w)
		if x < next {
			// Skip labels that would overlap the previous one.
			continue
		}
		p.c.Set(min(max(col, p.left), p.right-1), y, '┴', axis)
		p.c.Text(x, y+1, t.Label, p.style(p.theme.Muted))
		next = x + w + 1
	}
}

func (p *plotter) xLabels() []chart.Tick {
	if !p.m.Categorical() {
		return chart.NiceTicks(p.xlo, p.xhi, max((p.right-p.left)/10, 2))
	}
	ticks := make([]chart.Tick, len(p.m.Categories))
	for i, label := range p.m.Categories {
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}
	return ticks
}

func (p *plotter) drawBars(s chart.Series, slot int) {
	groups := max(p.m.BarSeries(), 1)
	slotW := p.colOf(p.xlo+1) - p.colOf(p.xlo)
	groupW := max(slotW*0.8, 1)
	barW := max(groupW/float64(groups), 1)

	style := p.style(core.FromColorful(s.Color))
	rows := p.bottom - p.top
	zero := p.rowOf(0) * 8

	for i := 0; i < s.Len(); i++ {
		v := s.Y[i]
		if math.IsNaN(v) {
			continue
		}
		center := p.colOf(s.X[i])
		x0 := int(math.Round(center - groupW/2 + float64(slot)*barW))
		x1 := max(int(math.Round(center-groupW/2+float64(slot+1)*barW)), x0+1)
		top := p.rowOf(v) * 8

		lo, hi := math.Min(zero, top), math.Max(zero, top)
		for r := 0; r < rows; r++ {
			cellLo, cellHi := float64(r*8), float64(r*8+8)
			fill := math.Min(hi, cellHi) - math.Max(lo, cellLo)
			if fill <= 0 {
				continue
			}
			eighths := int(math.Round(fill))
			if v < 0 || hi > cellHi {
				eighths = 8
			}
			if eighths == 0 {
				continue
			}
			for x := x0; x < x1; x++ {
				if x >= 0 && x < p.right-p.left {
					p.c.Set(p.left+x, p.bottom-1-r, lowerBlocks[min(eighths, 8)], style)
				}
			}
		}
	}
}

func (p *plotter) traceLine(dots *braille, s chart.Series) {
	dw, dh := dots.dotSize()
	color := core.FromColorful(s.Color)
	prevOK := false
	var px, py int
	for i := 0; i < s.Len(); i++ {
		if math.IsNaN(s.Y[i]) || math.IsNaN(s.X[i]) {
			prevOK = false
			continue
		}
		x := int(math.Round(p.colOf(s.X[i]) * 2))
		y := dh - 1 - int(math.Round(p.rowOf(s.Y[i])*4))
		x = min(max(x, 0), dw-1)
		y = min(max(y, 0), dh-1)
		if prevOK {
			dots.line(px, py, x, y, color)
		} else {
			dots.set(x, y, color)
		}
		px, py, prevOK = x, y, true
	}
}

func (p *plotter) drawMarkers(s chart.Series) {
	style := p.style(core.FromColorful(s.Color))
	rows := p.bottom - p.top
	for i := 0; i < s.Len(); i++ {
		if math.IsNaN(s.Y[i]) {
			continue
		}
		x := p.left + min(int(p.colOf(s.X[i])), p.right-p.left-1)
		r := min(max(int(p.rowOf(s.Y[i])), 0), rows-1)
		p.c.Set(x, p.bottom-1-r, '●', style)
	}
}

func (p *plotter) drawLegend(y int) {
	w, _ := p.c.Size()
	x := 1
	for _, s := range p.m.Series {
		need := core.StringWidth(s.Name) + 4
		if x+need > w {
			break
		}
		p.c.Set(x, y, '■', p.style(core.FromColorful(s.Color)))
		x += 2
		x += p.c.Text(x, y, s.Name, p.base)
		x += 2
	}
}
