package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tidwall/gjson"
)

// Kind is how a series is drawn.
type Kind int

const (
	KindBar Kind = iota
	KindLine
	KindMarkers
	KindLineMarkers
)

func (k Kind) String() string {
	switch k {
	case KindBar:
		return "bar"
	case KindLine:
		return "lines"
	case KindMarkers:
		return "markers"
	case KindLineMarkers:
		return "lines+markers"
	default:
		return "unknown"
	}
}

// HasLine reports whether points are joined.
func (k Kind) HasLine() bool {
	return k == KindLine || k == KindLineMarkers
}

// HasMarkers reports whether points are marked.
func (k Kind) HasMarkers() bool {
	return k == KindMarkers || k == KindLineMarkers
}

// SupportedTypes lists the trace types the engines draw.
var SupportedTypes = []string{"bar", "scatter", "scattergl"}

// markerThreshold is the point count below which a scatter trace without an
// explicit mode gets markers as well as lines.
const markerThreshold = 20

// Series is one drawable trace.
type Series struct {
	Name  string
	Kind  Kind
	X     []float64 // category index when the x axis is categorical
	Y     []float64 // NaN marks a gap
	Color colorful.Color
}

// Len returns the number of points.
func (s Series) Len() int {
	return min(len(s.X), len(s.Y))
}

// Model is a figure reduced to what the engines draw.
type Model struct {
	Title  string
	XTitle string
	YTitle string
	Width  int
	Height int

	// Categories holds the x axis labels when the axis is categorical.
	Categories []string

	Series     []Series
	ShowLegend bool

	// Skipped describes traces that could not be drawn.
	Skipped []string
}

// Categorical reports whether the x axis uses category labels.
func (m Model) Categorical() bool {
	return m.Categories != nil
}

// BarSeries returns the number of bar series, which share each category slot.
func (m Model) BarSeries() int {
	n := 0
	for _, s := range m.Series {
		if s.Kind == KindBar {
			n++
		}
	}
	return n
}

// XRange returns the x extent of all series.
func (m Model) XRange() (lo, hi float64, ok bool) {
	if m.Categorical() {
		if len(m.Categories) == 0 {
			return 0, 0, false
		}
		return -0.5, float64(len(m.Categories)) - 0.5, true
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range m.Series {
		for i := 0; i < s.Len(); i++ {
			lo = math.Min(lo, s.X[i])
			hi = math.Max(hi, s.X[i])
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 0, false
	}
	if m.BarSeries() > 0 {
		lo -= 0.5
		hi += 0.5
	}
	return lo, hi, true
}

// YRange returns the y extent of all series. Bars always include zero.
func (m Model) YRange() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range m.Series {
		for i := 0; i < s.Len(); i++ {
			if math.IsNaN(s.Y[i]) {
				continue
			}
			lo = math.Min(lo, s.Y[i])
			hi = math.Max(hi, s.Y[i])
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 0, false
	}
	if m.BarSeries() > 0 {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi, true
}

type rawTrace struct {
	index int
	trace gjson.Result
	kind  Kind
	x     []gjson.Result
	y     []gjson.Result
}

// Interpret reduces a figure to a Model. It never fails: traces it cannot
// draw are listed in Skipped.
func Interpret(fig Figure) Model {
	m := Model{
		Title:  titleText(fig.LayoutValue("title")),
		XTitle: titleText(fig.LayoutValue("xaxis.title")),
		YTitle: titleText(fig.LayoutValue("yaxis.title")),
		Width:  fig.Width,
		Height: fig.Height,
	}

	var colorway []string
	for _, c := range fig.LayoutValue("colorway").Array() {
		colorway = append(colorway, c.String())
	}
	palette := NewPalette(colorway)

	var raws []rawTrace
	categorical := fig.LayoutValue("xaxis.type").String() == "category"
	for i, tr := range fig.TraceList() {
		raw, reason := collect(i, tr)
		if reason != "" {
			m.Skipped = append(m.Skipped, fmt.Sprintf("trace %d: %s", i, reason))
			continue
		}
		for _, x := range raw.x {
			if x.Type == gjson.String {
				categorical = true
			}
		}
		raws = append(raws, raw)
	}

	catIndex := map[string]int{}
	if categorical {
		m.Categories = []string{}
	}

	for _, raw := range raws {
		s := Series{
			Name:  raw.trace.Get("name").String(),
			Kind:  raw.kind,
			Color: traceColor(raw.trace, palette.At(raw.index)),
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("trace %d", raw.index)
		}

		n := len(raw.y)
		if raw.x != nil {
			n = min(n, len(raw.x))
		}
		s.X = make([]float64, n)
		s.Y = make([]float64, n)
		for i := 0; i < n; i++ {
			s.Y[i] = number(raw.y[i])
			switch {
			case categorical:
				label := strconv.Itoa(i)
				if raw.x != nil {
					label = raw.x[i].String()
				}
				idx, ok := catIndex[label]
				if !ok {
					idx = len(m.Categories)
					catIndex[label] = idx
					m.Categories = append(m.Categories, label)
				}
				s.X[i] = float64(idx)
			case raw.x != nil:
				s.X[i] = number(raw.x[i])
			default:
				s.X[i] = float64(i)
			}
		}
		m.Series = append(m.Series, s)
	}

	if sl := fig.LayoutValue("showlegend"); sl.Exists() {
		m.ShowLegend = sl.Bool()
	} else {
		m.ShowLegend = len(m.Series) > 1
	}

	return m
}

func collect(index int, tr gjson.Result) (rawTrace, string) {
	if !tr.IsObject() {
		return rawTrace{}, "not an object"
	}

	typ := tr.Get("type").String()
	if typ == "" {
		typ = "scatter"
	}

	switch typ {
	case "bar":
		if tr.Get("orientation").String() == "h" {
			return rawTrace{}, "horizontal bars are not supported"
		}
	case "scatter", "scattergl":
	default:
		return rawTrace{}, fmt.Sprintf("unsupported type %q", typ)
	}

	y := tr.Get("y")
	if !y.IsArray() || len(y.Array()) == 0 {
		return rawTrace{}, "no y values"
	}
	raw := rawTrace{index: index, trace: tr, kind: KindBar, y: y.Array()}
	if x := tr.Get("x"); x.IsArray() {
		raw.x = x.Array()
	}
	if typ != "bar" {
		raw.kind = scatterKind(tr.Get("mode").String(), len(raw.y))
	}
	return raw, ""
}

func scatterKind(mode string, points int) Kind {
	if mode == "" {
		if points < markerThreshold {
			return KindLineMarkers
		}
		return KindLine
	}
	lines := strings.Contains(mode, "lines")
	markers := strings.Contains(mode, "markers")
	switch {
	case lines && markers:
		return KindLineMarkers
	case markers:
		return KindMarkers
	default:
		return KindLine
	}
}

func traceColor(tr gjson.Result, fallback colorful.Color) colorful.Color {
	for _, path := range []string{"marker.color", "line.color"} {
		if v := tr.Get(path); v.Type == gjson.String {
			if c, ok := ParseColor(v.Str); ok {
				return c
			}
		}
	}
	return fallback
}

// titleText accepts both the string and the {"text": ...} title forms.
func titleText(r gjson.Result) string {
	if r.IsObject() {
		return r.Get("text").String()
	}
	if r.Type == gjson.String {
		return r.Str
	}
	return ""
}

func number(r gjson.Result) float64 {
	switch r.Type {
	case gjson.Number:
		return r.Num
	case gjson.String:
		if v, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64); err == nil {
			return v
		}
	}
	return math.NaN()
}
