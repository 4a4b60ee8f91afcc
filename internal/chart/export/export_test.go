package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/plotview/internal/chart"
	"github.com/dshills/plotview/internal/chartspec"
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

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"png", FormatPNG, false},
		{"SVG", FormatSVG, false},
		{" png ", FormatPNG, false},
		{"gif", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
		}
		if err != nil && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("error should wrap ErrUnknownFormat, got %v", err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)
	got := FileName("out", FormatSVG, now)
	want := filepath.Join("out", "chart-20261019-150405.svg")
	if got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}
}

func TestRenderSamplePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(model(t, chartspec.Sample(), 700, 500), FormatPNG, &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestRenderScatterSVG(t *testing.T) {
	doc := `{"data":[
		{"name":"a","x":[1,2,3],"y":[2,4,3]},
		{"name":"b","mode":"markers","x":[1,2,3],"y":[1,3,5]},
		{"name":"c","x":[2],"y":[2]}
	],"layout":{"title":"Mixed","xaxis":{"title":"x"}}}`

	var buf bytes.Buffer
	if err := Render(model(t, doc, 900, 400), FormatSVG, &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Error("output is not an SVG")
	}
	if !strings.Contains(out, `width="900"`) || !strings.Contains(out, `height="400"`) {
		t.Error("SVG should have the applied size")
	}
}

func TestRenderCategoricalLines(t *testing.T) {
	doc := `{"data":[{"x":["a","b","c"],"y":[1,2,3]},{"type":"bar","x":["a","b","c"],"y":[3,2,1]}]}`

	var buf bytes.Buffer
	if err := Render(model(t, doc, 600, 400), FormatPNG, &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
}

func TestRenderNoSeries(t *testing.T) {
	var buf bytes.Buffer
	err := Render(model(t, `{"data":[]}`, 700, 500), FormatPNG, &buf)
	if !errors.Is(err, ErrNoSeries) {
		t.Errorf("error = %v, want ErrNoSeries", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "chart.png")
	if err := WriteFile(model(t, chartspec.Sample(), 700, 500), FormatPNG, path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("exported file is empty")
	}
}

func TestWriteFileNoSeriesCreatesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	if err := WriteFile(model(t, `{"data":[]}`, 700, 500), FormatPNG, path); !errors.Is(err, ErrNoSeries) {
		t.Fatalf("error = %v, want ErrNoSeries", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written on failure")
	}
}
