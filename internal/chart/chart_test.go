package chart

import (
	"math"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/plotview/internal/chartspec"
)

func mustSpec(t *testing.T, text string) *chartspec.Spec {
	t.Helper()
	spec, err := chartspec.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return spec
}

func mustFigure(t *testing.T, text string, w, h int) Figure {
	t.Helper()
	fig, err := NewFigure(mustSpec(t, text), w, h)
	if err != nil {
		t.Fatalf("NewFigure failed: %v", err)
	}
	return fig
}

func TestNewFigureForcesSize(t *testing.T) {
	fig := mustFigure(t, `{"data":[],"layout":{"title":"t","width":10,"height":20,"autosize":true}}`, 900, 400)

	if got := fig.LayoutValue("width").Int(); got != 900 {
		t.Errorf("layout.width = %d, want 900", got)
	}
	if got := fig.LayoutValue("height").Int(); got != 400 {
		t.Errorf("layout.height = %d, want 400", got)
	}
	if got := fig.LayoutValue("autosize"); got.Type != gjson.False {
		t.Errorf("layout.autosize = %s, want false", got.Raw)
	}
	if got := fig.LayoutValue("title").String(); got != "t" {
		t.Errorf("layout.title = %q, other keys should survive", got)
	}
}

func TestNewFigureMissingLayout(t *testing.T) {
	fig := mustFigure(t, `{"data":[{"y":[1]}]}`, 700, 500)

	if !gjson.Valid(fig.Layout) {
		t.Fatalf("layout is not valid JSON: %s", fig.Layout)
	}
	if fig.LayoutValue("width").Int() != 700 || fig.LayoutValue("height").Int() != 500 {
		t.Errorf("layout = %s", fig.Layout)
	}
}

func TestNewFigureConfig(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"absent", `{"data":[]}`, DefaultConfig},
		{"null", `{"data":[],"config":null}`, DefaultConfig},
		{"false", `{"data":[],"config":false}`, DefaultConfig},
		{"object", `{"data":[],"config":{"displayModeBar":false}}`, `{"displayModeBar":false}`},
		{"empty object", `{"data":[],"config":{}}`, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig := mustFigure(t, tt.doc, 700, 500)
			if fig.Config != tt.want {
				t.Errorf("Config = %s, want %s", fig.Config, tt.want)
			}
		})
	}
}

func TestFigureJSON(t *testing.T) {
	fig := mustFigure(t, `{"data":[{"type":"bar","x":["A"],"y":[1]}],"layout":{}}`, 700, 500)

	out, err := fig.JSON()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(gjson.Get(out, "data").Array()); n != 1 {
		t.Errorf("data length = %d, want 1", n)
	}
	if gjson.Get(out, "layout.autosize").Bool() {
		t.Error("autosize should be false")
	}
	if !gjson.Get(out, "config.responsive").Bool() {
		t.Error("config should default to responsive")
	}
}

func TestInterpretSample(t *testing.T) {
	m := Interpret(mustFigure(t, chartspec.Sample(), 700, 500))

	if !strings.HasPrefix(m.Title, "Annual Gold Price") {
		t.Errorf("Title = %q", m.Title)
	}
	if m.XTitle != "Year" || m.YTitle != "Price (USD per troy ounce)" {
		t.Errorf("axis titles = %q / %q", m.XTitle, m.YTitle)
	}
	if !m.Categorical() || len(m.Categories) != 8 || m.Categories[0] != "2019" {
		t.Errorf("Categories = %v", m.Categories)
	}
	if len(m.Series) != 1 {
		t.Fatalf("Series = %d, want 1", len(m.Series))
	}

	s := m.Series[0]
	if s.Kind != KindBar || s.Name != "Gold Price (USD/oz)" {
		t.Errorf("series = %s %q", s.Kind, s.Name)
	}
	if s.Color.Hex() != "#005a94" {
		t.Errorf("Color = %s, want #005a94", s.Color.Hex())
	}
	if m.ShowLegend {
		t.Error("single series should not show a legend by default")
	}

	lo, hi, ok := m.YRange()
	if !ok || lo != 0 || hi != 4958.99 {
		t.Errorf("YRange = %v, %v, %v", lo, hi, ok)
	}
}

func TestInterpretScatterModes(t *testing.T) {
	doc := `{"data":[
		{"y":[1,2,3]},
		{"type":"scatter","mode":"markers","x":[1,2,3],"y":[3,2,1]},
		{"type":"scatter","mode":"lines","x":[1,2],"y":[0,5]}
	]}`
	m := Interpret(mustFigure(t, doc, 700, 500))

	if m.Categorical() {
		t.Error("numeric x should not be categorical")
	}
	want := []Kind{KindLineMarkers, KindMarkers, KindLine}
	for i, k := range want {
		if m.Series[i].Kind != k {
			t.Errorf("series %d kind = %s, want %s", i, m.Series[i].Kind, k)
		}
	}
	if !m.ShowLegend {
		t.Error("several series should show a legend")
	}
	if m.Series[0].Name != "trace 0" {
		t.Errorf("default name = %q", m.Series[0].Name)
	}
	if m.Series[0].Color.Hex() == m.Series[1].Color.Hex() {
		t.Error("palette should give distinct colours")
	}
}

func TestInterpretMixedBarAndScatter(t *testing.T) {
	long := strings.Repeat("1,", markerThreshold) + "1"
	doc := `{"data":[
		{"type":"bar","y":[4,5]},
		{"type":"scattergl","mode":"lines+markers","y":[1,2]},
		{"type":"scatter","y":[` + long + `]}
	]}`
	m := Interpret(mustFigure(t, doc, 700, 500))

	want := []Kind{KindBar, KindLineMarkers, KindLine}
	if len(m.Series) != len(want) {
		t.Fatalf("Series = %d, want %d", len(m.Series), len(want))
	}
	for i, k := range want {
		if m.Series[i].Kind != k {
			t.Errorf("series %d kind = %s, want %s", i, m.Series[i].Kind, k)
		}
	}
}

func TestInterpretSkipsUnsupported(t *testing.T) {
	doc := `{"data":[{"type":"pie","values":[1,2]},{"type":"bar"},7,{"type":"bar","y":[1]}]}`
	m := Interpret(mustFigure(t, doc, 700, 500))

	if len(m.Series) != 1 {
		t.Errorf("Series = %d, want 1", len(m.Series))
	}
	if len(m.Skipped) != 3 {
		t.Errorf("Skipped = %v, want 3 entries", m.Skipped)
	}
}

func TestInterpretGaps(t *testing.T) {
	m := Interpret(mustFigure(t, `{"data":[{"x":[1,2,3],"y":[1,null,"3"]}]}`, 700, 500))

	y := m.Series[0].Y
	if y[0] != 1 || !math.IsNaN(y[1]) || y[2] != 3 {
		t.Errorf("Y = %v", y)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#005a94", "#005a94", true},
		{"#fff", "#ffffff", true},
		{"rgb(255, 0, 0)", "#ff0000", true},
		{"rgba(0,128,0,0.5)", "#008000", true},
		{"SteelBlue", "#4682b4", true},
		{"chartreuse-ish", "", false},
		{"rgb(1,2)", "", false},
	}

	for _, tt := range tests {
		c, ok := ParseColor(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseColor(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && c.Hex() != tt.want {
			t.Errorf("ParseColor(%q) = %s, want %s", tt.in, c.Hex(), tt.want)
		}
	}
}

func TestPaletteColorway(t *testing.T) {
	p := NewPalette([]string{"#111111", "bogus", "#222222"})
	if p.At(0).Hex() != "#111111" || p.At(1).Hex() != "#222222" || p.At(2).Hex() != "#111111" {
		t.Error("palette should skip bad entries and cycle")
	}
	if NewPalette(nil).At(0).Hex() != "#636efa" {
		t.Error("empty colorway should fall back to the default")
	}
}

func TestNiceTicks(t *testing.T) {
	ticks := NiceTicks(0, 4958.99, 5)
	if len(ticks) == 0 {
		t.Fatal("no ticks")
	}
	if ticks[0].Value != 0 {
		t.Errorf("first tick = %v, want 0", ticks[0].Value)
	}
	if last := ticks[len(ticks)-1]; last.Value < 4958.99 {
		t.Errorf("last tick %v does not cover the range", last.Value)
	}
	for _, tk := range ticks {
		if tk.Value == 2000 && tk.Label != "2,000" {
			t.Errorf("label = %q, want 2,000", tk.Label)
		}
	}

	if NiceTicks(math.NaN(), 1, 5) != nil {
		t.Error("NaN range should give no ticks")
	}
	if len(NiceTicks(3, 3, 5)) < 2 {
		t.Error("flat range should still give ticks")
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v, step float64
		want    string
	}{
		{1000, 500, "1,000"},
		{0.5, 0.1, "0.5"},
		{0.25, 0.05, "0.25"},
		{-2, 1, "-2"},
	}
	for _, tt := range tests {
		if got := FormatTick(tt.v, tt.step); got != tt.want {
			t.Errorf("FormatTick(%v, %v) = %q, want %q", tt.v, tt.step, got, tt.want)
		}
	}
}
