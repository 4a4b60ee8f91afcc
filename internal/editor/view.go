package editor

import (
	"strings"
	"time"

	"github.com/dshills/plotview/internal/input/mouse"
	"github.com/dshills/plotview/internal/renderer/backend"
	"github.com/dshills/plotview/internal/renderer/core"
	"github.com/dshills/plotview/internal/renderer/gutter"
	"github.com/dshills/plotview/internal/renderer/highlight"
	"github.com/dshills/plotview/internal/renderer/layout"
	"github.com/dshills/plotview/internal/renderer/viewport"
	"github.com/dshills/plotview/internal/renderer/widget"
)

// Placeholder is shown in an empty editor.
const Placeholder = "Enter Plotly JSON here..."

// Button labels.
const (
	LabelPrettify = "Prettify"
	LabelCopy     = "Copy"
	LabelCopied   = "✓ Copied"
)

// Action tells the caller what an input event asked for.
type Action int

const (
	ActionNone Action = iota
	// ActionMoved means only the cursor or scroll offset changed.
	ActionMoved
	// ActionEdited means the text changed; read it with Text.
	ActionEdited
	ActionPrettify
	ActionCopy
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionMoved:
		return "moved"
	case ActionEdited:
		return "edited"
	case ActionPrettify:
		return "prettify"
	case ActionCopy:
		return "copy"
	default:
		return "none"
	}
}

// Styles holds the styles the editor is drawn with.
type Styles struct {
	Toolbar       core.Style
	Button        core.Style
	ButtonActive  core.Style
	Text          core.Style
	Placeholder   core.Style
	Gutter        core.Style
	GutterCurrent core.Style
	GutterError   core.Style
	GutterBorder  core.Style

	// Syntax colours the text. Nil draws everything in Text.
	Syntax *highlight.Theme
}

// DefaultStyles returns the built-in dark editor styles.
func DefaultStyles() Styles {
	text := core.DefaultStyle().
		WithForeground(core.ColorWhite).
		WithBackground(core.ColorFromRGB(15, 23, 42))
	toolbar := core.DefaultStyle().WithBackground(core.ColorFromRGB(30, 41, 59)).WithForeground(core.ColorWhite)
	gutterBg := core.DefaultStyle().WithBackground(core.ColorFromRGB(2, 6, 23))
	return Styles{
		Toolbar:       toolbar,
		Button:        toolbar.WithBackground(core.ColorFromRGB(51, 65, 85)),
		ButtonActive:  toolbar.WithBackground(core.ColorFromRGB(51, 65, 85)).WithForeground(core.ColorGreen),
		Text:          text,
		Placeholder:   text.WithForeground(core.ColorFromRGB(100, 116, 139)),
		Gutter:        gutterBg.WithForeground(core.ColorFromRGB(100, 116, 139)),
		GutterCurrent: gutterBg.WithForeground(core.ColorFromRGB(203, 213, 225)),
		GutterError:   gutterBg.WithForeground(core.ColorFromRGB(248, 113, 113)).Bold(),
		GutterBorder:  gutterBg.WithForeground(core.ColorFromRGB(51, 65, 85)),
		Syntax:        highlight.DefaultTheme().WithBase(text),
	}
}

// Config holds editor behaviour settings.
type Config struct {
	TabWidth       int
	CopiedDuration time.Duration
	Scroll         mouse.ScrollConfig
}

// DefaultConfig returns two-space tabs, a three second copied window and
// three-line wheel steps.
func DefaultConfig() Config {
	return Config{
		TabWidth:       2,
		CopiedDuration: DefaultCopiedDuration,
		Scroll:         mouse.DefaultScrollConfig(),
	}
}

// View is the editor pane.
type View struct {
	buf    *Buffer
	cache  *layout.LineCache
	vp     *viewport.Viewport
	gutter *gutter.Gutter
	syntax *highlight.Provider
	copied *CopiedIndicator

	prettify *widget.Button
	copy     *widget.Button

	styles  Styles
	cfg     Config
	focused bool

	toolbarRect core.ScreenRect
	gutterRect  core.ScreenRect
	textRect    core.ScreenRect
}

// NewView creates an editor holding text.
func NewView(text string, cfg Config, styles Styles) *View {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 2
	}
	engine := layout.NewEngine(cfg.TabWidth)
	v := &View{
		buf:      NewBuffer(text, engine),
		cache:    layout.NewLineCache(engine, styles.Text, 2000),
		vp:       viewport.New(1, 1),
		gutter:   gutter.New(gutter.DefaultConfig()),
		syntax:   highlight.NewProvider(syntaxTheme(styles), 2000),
		copied:   NewCopiedIndicator(cfg.CopiedDuration),
		prettify: widget.NewButton(LabelPrettify),
		copy:     widget.NewButton(LabelCopy),
		styles:   styles,
		cfg:      cfg,
	}
	v.refresh()
	return v
}

func syntaxTheme(styles Styles) *highlight.Theme {
	if styles.Syntax == nil {
		return highlight.PlainTheme(styles.Text)
	}
	return styles.Syntax
}

// SetStyles replaces the styles, e.g. after a theme reload.
func (v *View) SetStyles(styles Styles) {
	v.styles = styles
	v.cache.SetStyle(styles.Text)
	v.syntax.SetTheme(syntaxTheme(styles))
}

// SetCopiedDuration changes how long the copied confirmation stays on.
func (v *View) SetCopiedDuration(d time.Duration) {
	v.copied.SetDuration(d)
}

// Text returns the document text.
func (v *View) Text() string {
	return v.buf.Text()
}

// SetText replaces the document when it differs from what the editor
// holds, keeping the cursor close to where it was.
func (v *View) SetText(text string) {
	if text == v.buf.Text() {
		return
	}
	v.buf.SetText(text)
	v.refresh()
}

// Cursor returns the cursor position.
func (v *View) Cursor() Position {
	return v.buf.Cursor()
}

// TopLine returns the first visible line, shared by text and gutter.
func (v *View) TopLine() int {
	return v.vp.TopLine()
}

// LineCount returns the number of lines in the document.
func (v *View) LineCount() int {
	return v.buf.LineCount()
}

// SetErrorLine marks a line (0-based) in the gutter; -1 clears the mark.
func (v *View) SetErrorLine(line int) {
	v.gutter.SetErrorLine(line)
}

// SetFocused gives or removes keyboard focus.
func (v *View) SetFocused(focused bool) {
	v.focused = focused
}

// Focused reports whether the editor has keyboard focus.
func (v *View) Focused() bool {
	return v.focused
}

// MarkCopied starts the copied confirmation at now and returns when it
// ends, so the caller can schedule a redraw.
func (v *View) MarkCopied(now time.Time) time.Time {
	return v.copied.Trigger(now)
}

// CopiedActive reports whether the copy button reads "Copied" at now.
func (v *View) CopiedActive(now time.Time) bool {
	return v.copied.Active(now)
}

// Contains reports whether (x, y) is inside the pane as last drawn.
func (v *View) Contains(x, y int) bool {
	return v.toolbarRect.Contains(x, y) || v.gutterRect.Contains(x, y) || v.textRect.Contains(x, y)
}

// refresh brings the gutter and viewport in line with the buffer and
// scrolls the cursor into view.
func (v *View) refresh() {
	n := v.buf.LineCount()
	v.gutter.SetLineCount(n)
	v.gutter.SetCurrentLine(v.buf.Cursor().Line)
	v.vp.SetLineCount(n)
	v.vp.ScrollToReveal(v.buf.Cursor().Line, v.buf.VisualColumn())
}

// HandleKey applies a key event.
func (v *View) HandleKey(ev backend.Event) Action {
	edited := false
	switch ev.Key {
	case backend.KeyRune:
		v.buf.Insert(string(ev.Rune))
		edited = true
	case backend.KeyEnter:
		v.buf.InsertNewline()
		edited = true
	case backend.KeyTab:
		v.buf.Insert(strings.Repeat(" ", v.cfg.TabWidth))
		edited = true
	case backend.KeyBackspace:
		edited = v.buf.Backspace()
	case backend.KeyDelete:
		edited = v.buf.Delete()
	case backend.KeyLeft:
		v.buf.Left()
	case backend.KeyRight:
		v.buf.Right()
	case backend.KeyUp:
		v.buf.Up(1)
	case backend.KeyDown:
		v.buf.Down(1)
	case backend.KeyHome:
		v.buf.Home()
	case backend.KeyEnd:
		v.buf.End()
	case backend.KeyPageUp:
		v.buf.Up(v.vp.PageSize())
	case backend.KeyPageDown:
		v.buf.Down(v.vp.PageSize())
	default:
		return ActionNone
	}

	v.refresh()
	if edited {
		return ActionEdited
	}
	return ActionMoved
}

// Paste inserts text at the cursor as a single edit.
func (v *View) Paste(text string) Action {
	if text == "" {
		return ActionNone
	}
	v.buf.Insert(text)
	v.refresh()
	return ActionEdited
}

// HandleMouse applies a classified mouse event inside the pane.
func (v *View) HandleMouse(ev mouse.Event) Action {
	x, y := ev.Position.X, ev.Position.Y

	switch ev.Action {
	case mouse.ActionScroll:
		if !v.Contains(x, y) {
			return ActionNone
		}
		if v.vp.ScrollBy(mouse.ParseScroll(ev, v.cfg.Scroll)) {
			return ActionMoved
		}
		return ActionNone

	case mouse.ActionPress:
		if ev.Button != mouse.ButtonLeft {
			return ActionNone
		}
		switch {
		case v.prettify.Hit(x, y):
			return ActionPrettify
		case v.copy.Hit(x, y):
			return ActionCopy
		}
		return v.placeCursor(x, y)

	case mouse.ActionDrag:
		if ev.Button != mouse.ButtonLeft {
			return ActionNone
		}
		return v.placeCursor(x, y)
	}
	return ActionNone
}

// placeCursor moves the cursor to the text under (x, y).
func (v *View) placeCursor(x, y int) Action {
	switch {
	case v.textRect.Contains(x, y):
		line, visCol := v.vp.ScreenToBuffer(y-v.textRect.Top, x-v.textRect.Left)
		if line >= v.buf.LineCount() {
			v.buf.MoveTo(Position{Line: v.buf.LineCount() - 1})
			v.buf.End()
		} else {
			v.buf.MoveToVisual(line, visCol)
		}
	case v.gutterRect.Contains(x, y):
		line, _ := v.vp.ScreenToBuffer(y-v.gutterRect.Top, 0)
		v.buf.MoveTo(Position{Line: line})
	default:
		return ActionNone
	}
	v.gutter.SetCurrentLine(v.buf.Cursor().Line)
	v.vp.ScrollToReveal(v.buf.Cursor().Line, v.buf.VisualColumn())
	return ActionMoved
}

// Arrange splits rect into toolbar, gutter and text areas and sizes the
// viewport to the text area. The scroll offset is left alone so wheel
// scrolling can move away from the cursor.
func (v *View) Arrange(rect core.ScreenRect) {
	v.toolbarRect, rect = rect.SplitTop(1)
	v.gutterRect, v.textRect = rect.SplitLeft(v.gutter.Width() + 1)
	v.vp.Resize(v.textRect.Width(), v.textRect.Height())
}

// Draw arranges the pane in rect and renders it.
func (v *View) Draw(b backend.Backend, rect core.ScreenRect, now time.Time) {
	v.Arrange(rect)
	v.drawToolbar(b, now)
	v.drawGutter(b)
	v.drawText(b)
}

func (v *View) drawToolbar(b backend.Backend, now time.Time) {
	r := v.toolbarRect
	if r.IsEmpty() {
		return
	}
	b.Fill(r, core.NewStyledCell(' ', v.styles.Toolbar))

	copyStyle := v.styles.Button
	v.copy.Label = LabelCopy
	if v.copied.Active(now) {
		v.copy.Label = LabelCopied
		copyStyle = v.styles.ButtonActive
	}
	widget.PlaceRow([]*widget.Button{v.prettify, v.copy}, r.Left+1, r.Top, 1)
	v.prettify.Draw(b, r.Right, v.styles.Button)
	v.copy.Draw(b, r.Right, copyStyle)
}

func (v *View) gutterStyle(s gutter.CellStyle) core.Style {
	switch s {
	case gutter.StyleCurrentLine:
		return v.styles.GutterCurrent
	case gutter.StyleError:
		return v.styles.GutterError
	default:
		return v.styles.Gutter
	}
}

func (v *View) drawGutter(b backend.Backend) {
	r := v.gutterRect
	if r.IsEmpty() {
		return
	}
	top := v.vp.TopLine()
	for row := 0; row < r.Height(); row++ {
		y := r.Top + row
		x := r.Left
		for _, c := range v.gutter.RenderLine(top + row) {
			if x >= r.Right-1 {
				break
			}
			b.SetCell(x, y, core.NewStyledCell(c.Rune, v.gutterStyle(c.Style)))
			x++
		}
		b.SetCell(r.Right-1, y, core.NewStyledCell('│', v.styles.GutterBorder))
	}
}

func (v *View) drawText(b backend.Backend) {
	r := v.textRect
	if r.IsEmpty() {
		return
	}
	b.Fill(r, core.NewStyledCell(' ', v.styles.Text))

	if v.buf.IsEmpty() {
		widget.DrawText(b, r.Left, r.Top, r.Right, Placeholder, v.styles.Placeholder)
	} else {
		start, end := v.vp.VisibleLineRange()
		for line := start; line < end; line++ {
			v.drawLine(b, line, r.Top+line-start)
		}
	}

	if !v.focused {
		return
	}
	row, col := v.vp.BufferToScreen(v.buf.Cursor().Line, v.buf.VisualColumn())
	if row >= 0 && row < r.Height() && col >= 0 && col < r.Width() {
		b.ShowCursor(r.Left+col, r.Top+row)
	}
}

func (v *View) drawLine(b backend.Backend, line, y int) {
	r := v.textRect
	text := v.buf.Line(line)
	l := v.cache.Get(line, text)

	left := v.vp.LeftColumn()
	cells := append([]core.Cell(nil), l.Slice(left, r.Width())...)
	for _, span := range v.syntax.SpansForLine(line, text) {
		s, e := l.ColumnsForBytes(span.Start, span.End)
		for col := max(s, left); col < e && col-left < len(cells); col++ {
			cells[col-left].Style = span.Style
		}
	}
	for i, c := range cells {
		b.SetCell(r.Left+i, y, c)
	}
}
