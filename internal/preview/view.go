package preview

import (
	"fmt"
	"strconv"

	"github.com/dshills/plotview/internal/chart"
	"github.com/dshills/plotview/internal/chart/termplot"
	"github.com/dshills/plotview/internal/input/mouse"
	"github.com/dshills/plotview/internal/renderer/backend"
	"github.com/dshills/plotview/internal/renderer/core"
	"github.com/dshills/plotview/internal/renderer/widget"
)

// Pane text.
const (
	Placeholder     = `Enter JSON and click "Plot" to preview chart`
	ErrorTitle      = "Chart Error"
	LabelWidth      = "Width:"
	LabelHeight     = "Height:"
	LabelApply      = "Apply"
	LabelHelpButton = "?"
)

const (
	fieldInputWidth = MaxDimensionDigits + 1
	errorBoxWidth   = 64
	horizontalStep  = 4
)

// Action tells the caller what an input event did.
type Action int

const (
	ActionNone Action = iota
	// ActionMoved means focus, a field cursor or the scroll offset changed.
	ActionMoved
	// ActionEdited means a size field's text changed.
	ActionEdited
	// ActionCommitted means a size field was committed to its pending value.
	ActionCommitted
	// ActionApplied means Apply was pressed.
	ActionApplied
	// ActionHelp means the help dialog was toggled.
	ActionHelp
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionMoved:
		return "moved"
	case ActionEdited:
		return "edited"
	case ActionCommitted:
		return "committed"
	case ActionApplied:
		return "applied"
	case ActionHelp:
		return "help"
	default:
		return "none"
	}
}

// Field identifies a size field.
type Field int

const (
	FieldNone Field = iota
	FieldWidth
	FieldHeight
)

// Styles holds the styles the pane is drawn with.
type Styles struct {
	Toolbar      core.Style
	Label        core.Style
	Input        core.Style
	InputFocused core.Style
	Button       core.Style
	Surface      core.Style
	Placeholder  core.Style
	ErrorBorder  core.Style
	ErrorText    core.Style
	Help         HelpStyles
	Chart        termplot.Theme
}

// DefaultStyles returns the built-in light preview styles.
func DefaultStyles() Styles {
	surface := core.DefaultStyle().
		WithBackground(core.ColorFromRGB(248, 250, 252)).
		WithForeground(core.ColorFromRGB(15, 23, 42))
	toolbar := surface.WithBackground(core.ColorWhite)
	errBg := surface.WithBackground(core.ColorFromRGB(254, 242, 242))
	return Styles{
		Toolbar:      toolbar,
		Label:        toolbar.Bold(),
		Input:        toolbar.WithBackground(core.ColorFromRGB(226, 232, 240)),
		InputFocused: toolbar.WithBackground(core.ColorFromRGB(191, 219, 254)),
		Button:       core.DefaultStyle().WithBackground(core.ColorFromRGB(0, 90, 148)).WithForeground(core.ColorWhite),
		Surface:      surface,
		Placeholder:  surface.WithForeground(core.ColorFromRGB(148, 163, 184)),
		ErrorBorder:  errBg.WithForeground(core.ColorFromRGB(153, 27, 27)),
		ErrorText:    errBg.WithForeground(core.ColorFromRGB(185, 28, 28)),
		Help: HelpStyles{
			Border: core.DefaultStyle().WithBackground(core.ColorFromRGB(30, 41, 59)).WithForeground(core.ColorFromRGB(96, 165, 250)),
			Text:   core.DefaultStyle().WithBackground(core.ColorFromRGB(30, 41, 59)).WithForeground(core.ColorWhite),
		},
		Chart: termplot.DefaultTheme(),
	}
}

// Config holds preview behaviour settings.
type Config struct {
	Defaults   Size
	Floor      int
	CellWidth  int // pixels per column
	CellHeight int // pixels per row
	Scroll     mouse.ScrollConfig
}

// DefaultConfig returns 700x500 defaults, a floor of 100 and 8x16 pixel
// cells.
func DefaultConfig() Config {
	opts := termplot.DefaultOptions()
	return Config{
		Defaults:   DefaultSize(),
		Floor:      MinDimension,
		CellWidth:  opts.CellWidth,
		CellHeight: opts.CellHeight,
		Scroll:     mouse.DefaultScrollConfig(),
	}
}

type canvasKey struct {
	generation uint64
	size       Size
}

// View is the preview pane.
type View struct {
	state *State
	dims  *Dimensions
	help  Help

	width   *widget.TextField
	height  *widget.TextField
	apply   *widget.Button
	helpBtn *widget.Button
	focus   Field

	styles Styles
	cfg    Config

	canvas    *termplot.Canvas
	canvasKey canvasKey
	scrollX   int
	scrollY   int

	toolbarRect core.ScreenRect
	contentRect core.ScreenRect
}

// NewView creates a preview pane over state.
func NewView(state *State, cfg Config, styles Styles) *View {
	dims := NewDimensions(cfg.Defaults, cfg.Floor)
	v := &View{
		state:   state,
		dims:    dims,
		width:   newSizeField(LabelWidth, dims.Pending().Width),
		height:  newSizeField(LabelHeight, dims.Pending().Height),
		apply:   widget.NewButton(LabelApply),
		helpBtn: widget.NewButton(LabelHelpButton),
		styles:  styles,
		cfg:     cfg,
	}
	return v
}

func newSizeField(label string, value int) *widget.TextField {
	f := widget.NewTextField(label, strconv.Itoa(value))
	f.Accept = widget.Digits
	f.MaxLen = MaxDimensionDigits
	return f
}

// State returns the render state the pane shows.
func (v *View) State() *State {
	return v.state
}

// Dimensions returns the pending and applied sizes.
func (v *View) Dimensions() *Dimensions {
	return v.dims
}

// Help returns the help dialog.
func (v *View) Help() *Help {
	return &v.help
}

// SetStyles replaces the styles, e.g. after a theme reload.
func (v *View) SetStyles(styles Styles) {
	v.styles = styles
	v.canvas = nil
}

// SetCellSize changes the pixel size of one terminal cell.
func (v *View) SetCellSize(width, height int) {
	if width == v.cfg.CellWidth && height == v.cfg.CellHeight {
		return
	}
	v.cfg.CellWidth, v.cfg.CellHeight = width, height
	v.canvas = nil
}

// fieldText returns the text currently in a size field.
func (v *View) fieldText(f Field) string {
	if tf := v.field(f); tf != nil {
		return tf.Value()
	}
	return ""
}

func (v *View) field(f Field) *widget.TextField {
	switch f {
	case FieldWidth:
		return v.width
	case FieldHeight:
		return v.height
	default:
		return nil
	}
}

// Focused returns the size field with keyboard focus.
func (v *View) Focused() Field {
	return v.focus
}

// Focus moves keyboard focus to f. The field losing focus is committed.
func (v *View) Focus(f Field) {
	if f == v.focus {
		return
	}
	if old := v.field(v.focus); old != nil {
		v.commit(v.focus)
		old.Blur()
	}
	v.focus = f
	if tf := v.field(f); tf != nil {
		tf.Focus()
	}
}

// Blur commits and releases the focused field.
func (v *View) Blur() {
	v.Focus(FieldNone)
}

// commit turns the field text into a pending value and shows the value
// adopted.
func (v *View) commit(f Field) {
	switch f {
	case FieldWidth:
		v.width.SetValue(strconv.Itoa(v.dims.CommitWidth(v.fieldText(f))))
	case FieldHeight:
		v.height.SetValue(strconv.Itoa(v.dims.CommitHeight(v.fieldText(f))))
	}
}

// Apply commits the focused field and adopts the pending size. It reports
// whether the applied size changed.
func (v *View) Apply() bool {
	v.commit(v.focus)
	if !v.dims.Apply() {
		return false
	}
	v.scrollX, v.scrollY = 0, 0
	return true
}

// HandleKey applies a key event to the focused size field.
func (v *View) HandleKey(ev backend.Event) Action {
	tf := v.field(v.focus)
	if tf == nil {
		return ActionNone
	}
	switch tf.HandleKey(ev) {
	case widget.FieldCommit:
		v.commit(v.focus)
		return ActionCommitted
	case widget.FieldEdited:
		return ActionEdited
	case widget.FieldMoved:
		return ActionMoved
	}
	return ActionNone
}

// Paste types the digits of text into the focused size field.
func (v *View) Paste(text string) Action {
	tf := v.field(v.focus)
	if tf == nil || !tf.InsertString(text) {
		return ActionNone
	}
	return ActionEdited
}

// HandleMouse applies a classified mouse event inside the pane.
func (v *View) HandleMouse(ev mouse.Event) Action {
	x, y := ev.Position.X, ev.Position.Y

	switch ev.Action {
	case mouse.ActionScroll:
		if !v.contentRect.Contains(x, y) {
			return ActionNone
		}
		delta := mouse.ParseScroll(ev, v.cfg.Scroll)
		if ev.Modifiers.Has(backend.ModShift) {
			return v.scrollBy(delta*horizontalStep, 0)
		}
		return v.scrollBy(0, delta)

	case mouse.ActionPress:
		if ev.Button != mouse.ButtonLeft {
			return ActionNone
		}
		switch {
		case v.apply.Hit(x, y):
			v.Apply()
			return ActionApplied
		case v.helpBtn.Hit(x, y):
			v.help.Toggle()
			return ActionHelp
		case v.width.Hit(x, y):
			v.Focus(FieldWidth)
			v.width.ClickAt(x)
			return ActionMoved
		case v.height.Hit(x, y):
			v.Focus(FieldHeight)
			v.height.ClickAt(x)
			return ActionMoved
		case v.Contains(x, y) && v.focus != FieldNone:
			v.Blur()
			return ActionCommitted
		}
	}
	return ActionNone
}

func (v *View) scrollBy(dx, dy int) Action {
	oldX, oldY := v.scrollX, v.scrollY
	v.scrollX += dx
	v.scrollY += dy
	v.clampScroll()
	if v.scrollX == oldX && v.scrollY == oldY {
		return ActionNone
	}
	return ActionMoved
}

func (v *View) clampScroll() {
	cw, ch, _ := v.chartCells()
	v.scrollX = min(max(v.scrollX, 0), max(cw-v.contentRect.Width(), 0))
	v.scrollY = min(max(v.scrollY, 0), max(ch-v.contentRect.Height(), 0))
}

// Scroll returns the chart scroll offset in cells.
func (v *View) Scroll() (x, y int) {
	return v.scrollX, v.scrollY
}

// Contains reports whether (x, y) is inside the pane as last drawn.
func (v *View) Contains(x, y int) bool {
	return v.toolbarRect.Contains(x, y) || v.contentRect.Contains(x, y)
}

// Arrange splits rect into the toolbar row and the chart area and places
// the toolbar widgets.
func (v *View) Arrange(rect core.ScreenRect) {
	v.toolbarRect, v.contentRect = rect.SplitTop(1)
	r := v.toolbarRect
	x := v.width.Place(r.Left+1, r.Top, fieldInputWidth).Right + 2
	x = v.height.Place(x, r.Top, fieldInputWidth).Right + 2
	v.apply.Place(x, r.Top)
	widget.PlaceRowRight([]*widget.Button{v.helpBtn}, r.Right-1, r.Top, 0)
}

// Draw arranges the pane in rect and renders it.
func (v *View) Draw(b backend.Backend, rect core.ScreenRect) {
	v.Arrange(rect)
	v.drawToolbar(b)
	v.drawContent(b)
}

// DrawHelp draws the help dialog over screen when it is open.
func (v *View) DrawHelp(b backend.Backend, screen core.ScreenRect) {
	v.help.Draw(b, screen, v.styles.Help)
}

func (v *View) drawToolbar(b backend.Backend) {
	r := v.toolbarRect
	if r.IsEmpty() {
		return
	}
	b.Fill(r, core.NewStyledCell(' ', v.styles.Toolbar))

	fs := widget.FieldStyles{Label: v.styles.Label, Input: v.styles.Input, Focused: v.styles.InputFocused}
	v.width.Draw(b, r.Right, fs)
	v.height.Draw(b, r.Right, fs)
	v.apply.Draw(b, r.Right, v.styles.Button)
	if v.helpBtn.Rect().Left > v.apply.Rect().Right {
		v.helpBtn.Draw(b, r.Right, v.styles.Button)
	}
}

func (v *View) drawContent(b backend.Backend) {
	r := v.contentRect
	if r.IsEmpty() {
		return
	}
	b.Fill(r, core.NewStyledCell(' ', v.styles.Surface))

	switch {
	case v.state.Err() != nil:
		v.drawError(b, r)
	case v.state.HasChart():
		v.drawChart(b, r)
	default:
		widget.DrawCentered(b, r.Left, r.Right, r.Top+r.Height()/2, Placeholder, v.styles.Placeholder)
	}
}

func (v *View) drawError(b backend.Backend, r core.ScreenRect) {
	msg := v.state.Message()
	maxW := min(r.Width()-2, errorBoxWidth)
	w, h := widget.BoxSize(msg, maxW-2, r.Height()-2)
	if w == 0 {
		widget.DrawText(b, r.Left, r.Top, r.Right, widget.Truncate(msg, r.Width()), v.styles.ErrorText)
		return
	}
	box := core.RectFromSize(r.Top+1, r.Left+(r.Width()-w-2)/2, h, w+2)
	inner := widget.DrawBox(b, box, ErrorTitle, v.styles.ErrorBorder, v.styles.ErrorText)
	widget.DrawWrapped(b, inner.Inset(0, 1, 0, 1), msg, 0, v.styles.ErrorText)
}

func (v *View) drawChart(b backend.Backend, r core.ScreenRect) {
	canvas, err := v.chartCanvas()
	if err != nil {
		v.state.Fail(err)
		v.drawError(b, r)
		return
	}
	v.clampScroll()

	cw, ch := canvas.Size()
	ox := r.Left + max((r.Width()-cw)/2, 0) - v.scrollX
	oy := r.Top + max((r.Height()-ch)/2, 0) - v.scrollY
	for y := 0; y < ch; y++ {
		sy := oy + y
		if sy < r.Top || sy >= r.Bottom {
			continue
		}
		for x := 0; x < cw; x++ {
			sx := ox + x
			if sx < r.Left || sx >= r.Right {
				continue
			}
			b.SetCell(sx, sy, canvas.At(x, y))
		}
	}
}

// chartCanvas draws the active chart at the applied size, reusing the last
// drawing while neither has changed. Engine panics become errors.
func (v *View) chartCanvas() (c *termplot.Canvas, err error) {
	size := v.dims.Applied()
	key := canvasKey{generation: v.state.Generation(), size: size}
	if v.canvas != nil && v.canvasKey == key {
		return v.canvas, nil
	}

	defer func() {
		if r := recover(); r != nil {
			c, err = nil, fmt.Errorf("chart engine: %v", r)
		}
	}()

	fig, err := chart.NewFigure(v.state.Spec(), size.Width, size.Height)
	if err != nil {
		return nil, err
	}
	c = termplot.Render(chart.Interpret(fig), termplot.Options{
		CellWidth:  v.cfg.CellWidth,
		CellHeight: v.cfg.CellHeight,
		Theme:      v.styles.Chart,
	})
	v.canvas, v.canvasKey = c, key
	return c, nil
}

// chartCells returns the size in cells of the chart as last drawn.
func (v *View) chartCells() (cols, rows int, ok bool) {
	if v.canvas == nil || !v.state.HasChart() {
		return 0, 0, false
	}
	cols, rows = v.canvas.Size()
	return cols, rows, true
}

// Model returns the active chart reduced for an engine at the applied size.
func (v *View) Model() (chart.Model, error) {
	if !v.state.HasChart() {
		return chart.Model{}, ErrNoChart
	}
	size := v.dims.Applied()
	fig, err := chart.NewFigure(v.state.Spec(), size.Width, size.Height)
	if err != nil {
		return chart.Model{}, err
	}
	return chart.Interpret(fig), nil
}
