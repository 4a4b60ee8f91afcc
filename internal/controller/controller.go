package controller

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/plotview/internal/chartspec"
)

// RenderState is the render trigger.
type RenderState int

const (
	Idle RenderState = iota
	Requested
	Acknowledged
)

// String returns the state name.
func (s RenderState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Requested:
		return "requested"
	case Acknowledged:
		return "acknowledged"
	default:
		return "unknown"
	}
}

// RenderCommand asks the preview to render Text once.
type RenderCommand struct {
	ID   string
	Text string
}

// ClearEvent tells the preview to drop its chart and error.
type ClearEvent struct {
	Seq uint64
}

// NoticeLevel is the severity of a notice.
type NoticeLevel int

const (
	LevelInfo NoticeLevel = iota
	LevelError
)

// Notice is a user-facing message produced by an operation.
type Notice struct {
	Text   string
	Detail string
	Level  NoticeLevel
}

// String joins text and detail for display.
func (n Notice) String() string {
	if n.Detail == "" {
		return n.Text
	}
	return n.Text + " (" + n.Detail + ")"
}

// Logger is the logging surface the controller needs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}

// Options configures a Controller. Nil fields get defaults.
type Options struct {
	Clipboard Clipboard
	Logger    Logger
	NewID     func() string
}

// Controller is the root state holder. It is not safe for concurrent use;
// the event loop owns it.
type Controller struct {
	document string
	state    RenderState
	pending  *RenderCommand
	inflight string
	clearSeq uint64

	clipboard Clipboard
	log       Logger
	newID     func() string
	copies    sync.WaitGroup
}

// New creates a controller holding document with a render already
// requested, so the first frame shows the chart.
func New(document string, opts Options) *Controller {
	c := &Controller{
		document:  document,
		clipboard: opts.Clipboard,
		log:       opts.Logger,
		newID:     opts.NewID,
	}
	if c.clipboard == nil {
		c.clipboard = SystemClipboard{}
	}
	if c.log == nil {
		c.log = nopLogger{}
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	c.RequestRender()
	return c
}

// Document returns the current text.
func (c *Controller) Document() string {
	return c.document
}

// State returns the render trigger.
func (c *Controller) State() RenderState {
	return c.state
}

// UpdateDocument replaces the text. It never renders.
func (c *Controller) UpdateDocument(text string) {
	c.document = text
}

// RequestRender raises the trigger with a snapshot of the document. A
// request that has not been taken yet is replaced, so the preview still
// renders once.
func (c *Controller) RequestRender() {
	c.pending = &RenderCommand{ID: c.newID(), Text: c.document}
	c.state = Requested
	c.log.Debug("render requested", "render_id", c.pending.ID)
}

// TakeRenderCommand empties the command slot. The trigger stays Requested
// until the command is acknowledged.
func (c *Controller) TakeRenderCommand() (RenderCommand, bool) {
	if c.pending == nil {
		return RenderCommand{}, false
	}
	cmd := *c.pending
	c.pending = nil
	c.inflight = cmd.ID
	return cmd, true
}

// Acknowledge lowers the trigger for the command id. Stale ids, such as a
// command taken before a reset, are ignored.
func (c *Controller) Acknowledge(id string) {
	if c.state != Requested || c.pending != nil || id != c.inflight {
		c.log.Debug("stale render acknowledgement", "render_id", id)
		return
	}
	c.state = Acknowledged
	c.log.Debug("render acknowledged", "render_id", id)
}

// Reset empties the document, drops any pending render and returns the
// clear event to hand to the preview.
func (c *Controller) Reset() ClearEvent {
	c.document = ""
	c.pending = nil
	c.inflight = ""
	c.state = Idle
	c.clearSeq++
	c.log.Info("document reset")
	return ClearEvent{Seq: c.clearSeq}
}

// PrettifyFailed is the notice text when the document cannot be parsed.
const PrettifyFailed = chartspec.PrettifyFailedMessage

// Prettify replaces the document with its canonical indented form. On
// failure the document is left untouched and the returned error carries
// the notice to show.
func (c *Controller) Prettify() (changed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			changed = false
			err = &NoticeError{Notice: Notice{Text: PrettifyFailed, Detail: fmt.Sprint(r), Level: LevelError}}
		}
	}()

	out, perr := chartspec.Prettify(c.document)
	if perr != nil {
		detail := ""
		var pe *chartspec.ParseError
		if errors.As(perr, &pe) {
			detail = pe.Error()
		}
		c.log.Debug("prettify failed", "error", perr)
		return false, &NoticeError{Notice: Notice{Text: PrettifyFailed, Detail: detail, Level: LevelError}, Err: perr}
	}
	if out == c.document {
		return false, nil
	}
	c.document = out
	return true, nil
}

// NoticeError is an operation failure with a user-facing notice.
type NoticeError struct {
	Notice Notice
	Err    error
}

func (e *NoticeError) Error() string {
	return e.Notice.String()
}

func (e *NoticeError) Unwrap() error {
	return e.Err
}

// Copy hands the document to the clipboard in the background. Failures
// are logged only.
func (c *Controller) Copy() {
	text := c.document
	c.copies.Add(1)
	go func() {
		defer c.copies.Done()
		if err := c.clipboard.WriteAll(text); err != nil {
			c.log.Warn("clipboard write failed", "error", err)
			return
		}
		c.log.Debug("copied document", "bytes", len(text))
	}()
}

// Wait blocks until background clipboard writes finish.
func (c *Controller) Wait() {
	c.copies.Wait()
}
