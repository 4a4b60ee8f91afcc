package preview

import (
	"errors"
	"fmt"

	"github.com/dshills/plotview/internal/chartspec"
	"github.com/dshills/plotview/internal/controller"
)

// ErrNoChart is returned when an operation needs a chart and none is shown.
var ErrNoChart = errors.New("no chart to export")

// Logger is the logging surface the preview needs.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// State holds the outcome of the last render: a chart, an error, or
// neither. At most one of the two is set.
type State struct {
	spec *chartspec.Spec
	err  error

	// generation changes whenever the chart or error changes so views can
	// drop cached drawings.
	generation uint64
	log        Logger
}

// NewState creates an empty state. A nil logger discards output.
func NewState(log Logger) *State {
	if log == nil {
		log = nopLogger{}
	}
	return &State{log: log}
}

// Spec returns the active chart, or nil.
func (s *State) Spec() *chartspec.Spec {
	return s.spec
}

// Err returns the active render error, or nil.
func (s *State) Err() error {
	return s.err
}

// HasChart reports whether a chart is shown.
func (s *State) HasChart() bool {
	return s.spec != nil && s.err == nil
}

// Message returns the error text the pane shows, or "".
func (s *State) Message() string {
	return chartspec.Message(s.err)
}

// ErrorLine returns the 0-based document line of a parse error, or -1.
func (s *State) ErrorLine() int {
	return chartspec.ErrorLine(s.err)
}

// Generation changes every time the chart or error is replaced.
func (s *State) Generation() uint64 {
	return s.generation
}

// Clear drops the chart and error.
func (s *State) Clear(ev controller.ClearEvent) {
	s.spec = nil
	s.err = nil
	s.generation++
	s.log.Debug("preview cleared", "seq", ev.Seq)
}

// Render parses and validates the command's text and acknowledges the
// command exactly once, whatever the outcome. A blank document changes
// nothing.
func (s *State) Render(cmd controller.RenderCommand, ack func(id string)) {
	defer func() {
		if r := recover(); r != nil {
			s.Fail(fmt.Errorf("render: %v", r))
		}
		if ack != nil {
			ack(cmd.ID)
		}
	}()

	spec, err := chartspec.Parse(cmd.Text)
	switch {
	case errors.Is(err, chartspec.ErrEmpty):
		s.log.Debug("render skipped, empty document", "render_id", cmd.ID)
	case err != nil:
		s.Fail(err)
		s.log.Debug("render failed", "render_id", cmd.ID, "error", err)
	default:
		s.spec = spec
		s.err = nil
		s.generation++
		s.log.Debug("render succeeded", "render_id", cmd.ID, "traces", spec.TraceCount())
	}
}

// Fail replaces the chart with err.
func (s *State) Fail(err error) {
	s.spec = nil
	s.err = err
	s.generation++
}
