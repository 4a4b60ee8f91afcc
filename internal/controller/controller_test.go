package controller

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/dshills/plotview/internal/chartspec"
)

type fakeClipboard struct {
	mu   sync.Mutex
	text []string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = append(f.text, text)
	return f.err
}

type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func newController(doc string) *Controller {
	n := 0
	return New(doc, Options{
		Clipboard: &fakeClipboard{},
		NewID: func() string {
			n++
			return "r" + strconv.Itoa(n)
		},
	})
}

func TestRenderStateString(t *testing.T) {
	tests := map[RenderState]string{Idle: "idle", Requested: "requested", Acknowledged: "acknowledged", RenderState(9): "unknown"}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("String() = %q, want %q", s.String(), want)
		}
	}
}

func TestInitialRenderRequested(t *testing.T) {
	c := newController(chartspec.Sample())

	if c.State() != Requested {
		t.Fatalf("initial state = %s, want requested", c.State())
	}
	cmd, ok := c.TakeRenderCommand()
	if !ok || cmd.Text != chartspec.Sample() {
		t.Fatalf("initial command = %+v, %v", cmd, ok)
	}
	if _, ok := c.TakeRenderCommand(); ok {
		t.Error("the command slot should hold one command")
	}
	if c.State() != Requested {
		t.Error("trigger should stay raised until acknowledged")
	}

	c.Acknowledge(cmd.ID)
	if c.State() != Acknowledged {
		t.Errorf("state = %s, want acknowledged", c.State())
	}
}

func TestUpdateDocumentNeverRenders(t *testing.T) {
	c := newController("")
	cmd, _ := c.TakeRenderCommand()
	c.Acknowledge(cmd.ID)

	c.UpdateDocument(`{"data":[]}`)
	if c.Document() != `{"data":[]}` {
		t.Errorf("Document() = %q", c.Document())
	}
	if _, ok := c.TakeRenderCommand(); ok || c.State() != Acknowledged {
		t.Error("UpdateDocument should not raise the trigger")
	}
}

func TestRequestRenderSnapshot(t *testing.T) {
	c := newController("a")
	c.TakeRenderCommand()

	c.UpdateDocument("b")
	c.RequestRender()
	c.UpdateDocument("c")

	cmd, ok := c.TakeRenderCommand()
	if !ok || cmd.Text != "b" {
		t.Errorf("command = %+v, want the text at request time", cmd)
	}
}

func TestAcknowledgeIgnoresStaleIDs(t *testing.T) {
	c := newController("a")
	first, _ := c.TakeRenderCommand()
	c.RequestRender()

	c.Acknowledge(first.ID)
	if c.State() != Requested {
		t.Error("acknowledging an older command should not lower the trigger")
	}

	second, _ := c.TakeRenderCommand()
	c.Acknowledge("bogus")
	if c.State() != Requested {
		t.Error("unknown id should be ignored")
	}
	c.Acknowledge(second.ID)
	if c.State() != Acknowledged {
		t.Errorf("state = %s, want acknowledged", c.State())
	}
}

func TestResetSuppressesPendingRender(t *testing.T) {
	c := newController(chartspec.Sample())

	clear1 := c.Reset()
	if c.Document() != "" || c.State() != Idle {
		t.Errorf("after Reset: doc=%q state=%s", c.Document(), c.State())
	}
	if _, ok := c.TakeRenderCommand(); ok {
		t.Error("Reset should drop the pending render")
	}

	clear2 := c.Reset()
	if clear2.Seq <= clear1.Seq {
		t.Error("each reset should produce a new clear event")
	}
}

func TestResetAfterTakeIgnoresLateAck(t *testing.T) {
	c := newController("x")
	cmd, _ := c.TakeRenderCommand()
	c.Reset()
	c.Acknowledge(cmd.ID)
	if c.State() != Idle {
		t.Errorf("state = %s, a late ack after reset should be ignored", c.State())
	}
}

func TestPrettify(t *testing.T) {
	c := newController(`{"data":[],"layout":{}}`)

	changed, err := c.Prettify()
	if err != nil || !changed {
		t.Fatalf("Prettify() = %v, %v", changed, err)
	}
	want := "{\n  \"data\": [],\n  \"layout\": {}\n}"
	if c.Document() != want {
		t.Errorf("Document() = %q, want %q", c.Document(), want)
	}

	changed, err = c.Prettify()
	if err != nil || changed {
		t.Errorf("second Prettify() = %v, %v, want unchanged", changed, err)
	}
}

func TestPrettifyInvalidLeavesDocument(t *testing.T) {
	c := newController(`{"data": [`)

	changed, err := c.Prettify()
	if changed {
		t.Error("invalid text should not change")
	}
	var nerr *NoticeError
	if !errors.As(err, &nerr) {
		t.Fatalf("error = %v, want *NoticeError", err)
	}
	if nerr.Notice.Text != "Invalid JSON: Cannot prettify" || nerr.Notice.Level != LevelError {
		t.Errorf("notice = %+v", nerr.Notice)
	}
	if nerr.Notice.Detail == "" {
		t.Error("notice should carry the parser reason")
	}
	var perr *chartspec.ParseError
	if !errors.As(err, &perr) {
		t.Error("error should wrap the parse error")
	}
	if c.Document() != `{"data": [` {
		t.Errorf("Document() = %q, should be untouched", c.Document())
	}
}

func TestCopy(t *testing.T) {
	clip := &fakeClipboard{}
	c := New("hello", Options{Clipboard: clip})

	c.Copy()
	c.Wait()

	if len(clip.text) != 1 || clip.text[0] != "hello" {
		t.Errorf("clipboard = %v", clip.text)
	}
}

func TestCopyFailureIsLoggedOnly(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no display")}
	log := &recordingLogger{}
	c := New("hello", Options{Clipboard: clip, Logger: log})

	c.Copy()
	c.Wait()

	if len(log.warns) != 1 {
		t.Errorf("warnings = %v, want one", log.warns)
	}
	if c.Document() != "hello" {
		t.Error("copy failure should not touch the document")
	}
}

func TestNoticeString(t *testing.T) {
	n := Notice{Text: "Invalid JSON: Cannot prettify", Detail: "unexpected end of JSON input"}
	if n.String() != "Invalid JSON: Cannot prettify (unexpected end of JSON input)" {
		t.Errorf("String() = %q", n.String())
	}
	if (Notice{Text: "x"}).String() != "x" {
		t.Error("notice without detail should be the text")
	}
}
