package preview

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/plotview/internal/chartspec"
	"github.com/dshills/plotview/internal/controller"
)

type ackRecorder struct {
	ids []string
}

func (a *ackRecorder) ack(id string) {
	a.ids = append(a.ids, id)
}

func render(s *State, text string) *ackRecorder {
	rec := &ackRecorder{}
	s.Render(controller.RenderCommand{ID: "id-1", Text: text}, rec.ack)
	return rec
}

func TestRenderValidDocument(t *testing.T) {
	s := NewState(nil)
	rec := render(s, `{"data":[{"type":"bar","x":["A"],"y":[1]}],"layout":{}}`)

	if s.Err() != nil {
		t.Fatalf("Err() = %v", s.Err())
	}
	if !s.HasChart() || s.Spec().TraceCount() != 1 {
		t.Error("expected a chart with one trace")
	}
	if len(rec.ids) != 1 || rec.ids[0] != "id-1" {
		t.Errorf("acks = %v, want exactly one", rec.ids)
	}
}

func TestRenderParseError(t *testing.T) {
	s := NewState(nil)
	render(s, `{"data":[{"type":"bar"}]}`)

	rec := render(s, `{"data": [`)
	if len(rec.ids) != 1 {
		t.Errorf("acks = %v, a failed render must still acknowledge", rec.ids)
	}
	if s.HasChart() || s.Spec() != nil {
		t.Error("a parse error should drop the chart")
	}
	var perr *chartspec.ParseError
	if !errors.As(s.Err(), &perr) {
		t.Fatalf("Err() = %v, want ParseError", s.Err())
	}
	if !strings.HasPrefix(s.Message(), "Error: ") || !strings.Contains(s.Message(), perr.Reason) {
		t.Errorf("Message() = %q", s.Message())
	}
	if s.ErrorLine() != 0 {
		t.Errorf("ErrorLine() = %d, want 0", s.ErrorLine())
	}
}

func TestRenderValidationError(t *testing.T) {
	for _, doc := range []string{`{"data": {}}`, `{"layout": {}}`, `[1, 2]`, `"text"`} {
		s := NewState(nil)
		render(s, doc)
		if s.Message() != "Error: Invalid chart spec: 'data' field must be an array" {
			t.Errorf("%s: Message() = %q", doc, s.Message())
		}
		if s.ErrorLine() != -1 {
			t.Errorf("%s: ErrorLine() = %d, want -1", doc, s.ErrorLine())
		}
	}
}

func TestRenderBlankDocumentIsNoop(t *testing.T) {
	s := NewState(nil)
	render(s, `{"data": {}}`)
	gen := s.Generation()

	rec := render(s, "  \n\t ")
	if len(rec.ids) != 1 {
		t.Errorf("acks = %v, a blank render must still acknowledge", rec.ids)
	}
	if s.Generation() != gen || s.Err() == nil {
		t.Error("a blank render should not change the state")
	}

	s.Clear(controller.ClearEvent{Seq: 1})
	render(s, "")
	if s.Err() != nil || s.HasChart() {
		t.Error("rendering a blank document after reset should show the placeholder, not an error")
	}
}

func TestRenderSuccessClearsError(t *testing.T) {
	s := NewState(nil)
	render(s, `nope`)
	render(s, chartspec.Sample())
	if s.Err() != nil || !s.HasChart() {
		t.Errorf("Err() = %v, HasChart() = %v", s.Err(), s.HasChart())
	}
}

func TestClear(t *testing.T) {
	s := NewState(nil)
	render(s, chartspec.Sample())
	gen := s.Generation()

	s.Clear(controller.ClearEvent{Seq: 1})
	if s.HasChart() || s.Err() != nil || s.Message() != "" {
		t.Error("Clear should drop chart and error")
	}
	if s.Generation() == gen {
		t.Error("Clear should bump the generation")
	}
}

func TestRenderNilAck(t *testing.T) {
	s := NewState(nil)
	s.Render(controller.RenderCommand{ID: "x", Text: chartspec.Sample()}, nil)
	if !s.HasChart() {
		t.Error("render without an ack callback should still succeed")
	}
}
