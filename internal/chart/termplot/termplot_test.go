package termplot

import (
	"strings"
	"testing"

	"github.com/dshills/plotview/internal/chart"
	"github.com/dshills/plotview/internal/chartspec"
	"github.com/dshills/plotview/internal/renderer/core"
)

func model(t *testing.T, doc string, w, h int) chart.Model {
	t.Helper()
	spec, err := chartspec.Parse(doc)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	fig, err := chart.NewFigure(spec, w, h)
	if err != nil {
		t.Fatalf("NewFigure failed: %v", err)
	}
	return chart.Interpret(fig)
}

func TestOptionsSize(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		w, h       int
		cols, rows int
	}{
		{700, 500, 87, 31},
		{900, 400, 112, 25},
		{4, 4, 1, 1},
	}
	for _, tt := range tests {
		cols, rows := opts.Size(tt.w, tt.h)
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("Size(%d, %d) = %d x %d, want %d x %d", tt.w, tt.h, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestRenderSample(t *testing.T) {
	c := Render(model(t, chartspec.Sample(), 700, 500), DefaultOptions())

	w, h := c.Size()
	if w != 87 || h != 31 {
		t.Fatalf("canvas = %d x %d, want 87 x 31", w, h)
	}
	if !strings.Contains(c.Row(0), "Annual Gold Price") {
		t.Errorf("title row = %q", c.Row(0))
	}
	if !strings.Contains(c.Row(1), "Price (USD per troy ounce)") {
		t.Errorf("y title row = %q", c.Row(1))
	}
	if !strings.Contains(c.Row(h-1), "Year") {
		t.Errorf("x title row = %q", c.Row(h-1))
	}

	out := c.String()
	for _, want := range []string{"2019", "2026", "5,000", "█", "└"} {
		if !strings.Contains(out, want) {
			t.Errorf("canvas missing %q:\n%s", want, out)
		}
	}
}

func TestRenderBarsUseTraceColor(t *testing.T) {
	c := Render(model(t, chartspec.Sample(), 700, 500), DefaultOptions())

	want, _ := core.ColorFromHex("#005a94")
	w, h := c.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := c.At(x, y)
			if cell.Rune == '█' {
				if !cell.Style.Foreground.Equals(want) {
					t.Fatalf("bar colour = %s, want %s", cell.Style.Foreground.ToHex(), want.ToHex())
				}
				return
			}
		}
	}
	t.Fatal("no bar cells drawn")
}

func TestRenderLinesUseBraille(t *testing.T) {
	c := Render(model(t, `{"data":[{"type":"scatter","mode":"lines","x":[0,1,2,3],"y":[0,3,1,2]}]}`, 400, 320), DefaultOptions())

	found := false
	w, h := c.Size()
	for y := 0; y < h && !found; y++ {
		for x := 0; x < w; x++ {
			if r := c.At(x, y).Rune; r > 0x2800 && r <= 0x28FF {
				found = true
				break
			}
		}
	}
	if !found {
		t.Errorf("no braille cells in line chart:\n%s", c.String())
	}
}

func TestRenderMarkers(t *testing.T) {
	c := Render(model(t, `{"data":[{"mode":"markers","x":[1,2],"y":[1,2]}]}`, 400, 320), DefaultOptions())
	if !strings.Contains(c.String(), "●") {
		t.Errorf("no markers drawn:\n%s", c.String())
	}
}

func TestRenderLegend(t *testing.T) {
	doc := `{"data":[{"name":"alpha","y":[1,2]},{"name":"beta","y":[2,1]}]}`
	c := Render(model(t, doc, 400, 320), DefaultOptions())

	_, h := c.Size()
	last := c.Row(h - 1)
	if !strings.Contains(last, "alpha") || !strings.Contains(last, "beta") {
		t.Errorf("legend row = %q", last)
	}
}

func TestRenderNoDrawableTraces(t *testing.T) {
	c := Render(model(t, `{"data":[{"type":"pie","values":[1]}]}`, 400, 320), DefaultOptions())
	out := c.String()
	if !strings.Contains(out, "No drawable traces") || !strings.Contains(out, "unsupported type") {
		t.Errorf("empty chart output:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	m := model(t, chartspec.Sample(), 700, 500)
	c := RenderCells(m, 10, 3, DefaultTheme())
	if w, h := c.Size(); w != 10 || h != 3 {
		t.Fatalf("canvas = %d x %d", w, h)
	}
}

func TestCanvasText(t *testing.T) {
	c := NewCanvas(6, 1, core.DefaultStyle())

	if n := c.Text(0, 0, "ab日c", core.DefaultStyle()); n != 5 {
		t.Errorf("Text width = %d, want 5", n)
	}
	if got := c.Row(0); got != "ab日c " {
		t.Errorf("Row = %q", got)
	}
	if n := c.Text(5, 0, "日", core.DefaultStyle()); n != 0 {
		t.Errorf("wide cluster past the edge should be dropped, wrote %d", n)
	}
}
