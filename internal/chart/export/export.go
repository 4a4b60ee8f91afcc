// Package export renders chart models to PNG or SVG images with go-chart.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dshills/plotview/internal/chart"
)

// Format is an image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

var (
	// ErrNoSeries is returned when the model has nothing to draw.
	ErrNoSeries = errors.New("no drawable series")

	// ErrUnknownFormat is returned for an unsupported image format.
	ErrUnknownFormat = errors.New("unknown image format")
)

// ParseFormat parses "png" or "svg", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FileName returns a timestamped file name for an export in dir.
func FileName(dir string, format Format, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("chart-%s.%s", now.Format("20060102-150405"), format))
}

func (f Format) provider() gochart.RendererProvider {
	if f == FormatSVG {
		return gochart.SVG
	}
	return gochart.PNG
}

// Render writes m as an image of exactly m.Width x m.Height pixels.
func Render(m chart.Model, format Format, w io.Writer) error {
	if len(m.Series) == 0 {
		return ErrNoSeries
	}
	if _, err := ParseFormat(string(format)); err != nil {
		return err
	}

	if len(m.Series) == 1 && m.Series[0].Kind == chart.KindBar && m.Categorical() {
		return renderBarChart(m, format, w)
	}
	return renderChart(m, format, w)
}

// WriteFile renders m to path. The file is only created once rendering
// succeeded.
func WriteFile(m chart.Model, format Format, path string) error {
	var buf bytes.Buffer
	if err := Render(m, format, &buf); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

func renderBarChart(m chart.Model, format Format, w io.Writer) error {
	s := m.Series[0]
	style := gochart.Style{
		FillColor:   toDrawing(s.Color),
		StrokeColor: toDrawing(s.Color),
		StrokeWidth: 0,
	}

	values := make([]gochart.Value, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		v := s.Y[i]
		if math.IsNaN(v) {
			v = 0
		}
		values = append(values, gochart.Value{
			Label: m.Categories[int(s.X[i])],
			Value: v,
			Style: style,
		})
	}

	lo, hi, _ := m.YRange()
	ticks := chart.NiceTicks(lo, hi, 6)
	if len(ticks) >= 2 {
		lo, hi = ticks[0].Value, ticks[len(ticks)-1].Value
	}

	// Leave room for the y axis labels on the right.
	avail := max(m.Width-120, len(values))
	barW := max(avail*2/(len(values)*3), 1)

	bc := gochart.BarChart{
		Title:      m.Title,
		Width:      m.Width,
		Height:     m.Height,
		BarWidth:   barW,
		BarSpacing: max(barW/2, 1),
		Background: gochart.Style{Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		YAxis: gochart.YAxis{
			Name:  m.YTitle,
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
			Ticks: goTicks(ticks),
		},
		Bars: values,
	}
	return bc.Render(format.provider(), w)
}

func renderChart(m chart.Model, format Format, w io.Writer) error {
	series := make([]gochart.Series, 0, len(m.Series))
	for _, s := range m.Series {
		xs, ys := points(s)
		if len(xs) == 0 {
			continue
		}
		if len(xs) == 1 {
			// go-chart needs at least two points per series.
			xs = append(xs, xs[0]+1e-9)
			ys = append(ys, ys[0])
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   seriesStyle(s),
		})
	}
	if len(series) == 0 {
		return ErrNoSeries
	}

	xlo, xhi, _ := m.XRange()
	ylo, yhi, _ := m.YRange()
	yticks := chart.NiceTicks(ylo, yhi, 6)
	if len(yticks) >= 2 {
		ylo, yhi = yticks[0].Value, yticks[len(yticks)-1].Value
	}

	xaxis := gochart.XAxis{
		Name:  m.XTitle,
		Range: &gochart.ContinuousRange{Min: xlo, Max: xhi},
	}
	if m.Categorical() {
		ticks := make([]gochart.Tick, len(m.Categories))
		for i, label := range m.Categories {
			ticks[i] = gochart.Tick{Value: float64(i), Label: label}
		}
		xaxis.Ticks = ticks
	} else {
		xaxis.Ticks = goTicks(chart.NiceTicks(xlo, xhi, 8))
	}

	graph := gochart.Chart{
		Title:      m.Title,
		Width:      m.Width,
		Height:     m.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      xaxis,
		YAxis: gochart.YAxis{
			Name:  m.YTitle,
			Range: &gochart.ContinuousRange{Min: ylo, Max: yhi},
			Ticks: goTicks(yticks),
		},
		Series: series,
	}
	if m.ShowLegend {
		graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}
	}
	return graph.Render(format.provider(), w)
}

func points(s chart.Series) (xs, ys []float64) {
	for i := 0; i < s.Len(); i++ {
		if math.IsNaN(s.X[i]) || math.IsNaN(s.Y[i]) {
			continue
		}
		xs = append(xs, s.X[i])
		ys = append(ys, s.Y[i])
	}
	return xs, ys
}

func seriesStyle(s chart.Series) gochart.Style {
	c := toDrawing(s.Color)
	st := gochart.Style{StrokeColor: c, StrokeWidth: 2}
	switch {
	case s.Kind == chart.KindBar:
		// Bars mixed with other traces are drawn as filled areas.
		st.FillColor = c.WithAlpha(96)
	case s.Kind == chart.KindMarkers:
		st.StrokeWidth = gochart.Disabled
		st.DotWidth = 4
		st.DotColor = c
	case s.Kind.HasMarkers():
		st.DotWidth = 3
		st.DotColor = c
	}
	return st
}

func goTicks(ticks []chart.Tick) []gochart.Tick {
	out := make([]gochart.Tick, len(ticks))
	for i, t := range ticks {
		out[i] = gochart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}

func toDrawing(c colorful.Color) drawing.Color {
	r, g, b := c.Clamped().RGB255()
	return drawing.Color{R: r, G: g, B: b, A: 255}
}
