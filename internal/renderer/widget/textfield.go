package widget

import (
	"github.com/dshills/plotview/internal/renderer/backend"
	"github.com/dshills/plotview/internal/renderer/core"
)

// FieldResult reports what a key did to a text field.
type FieldResult int

const (
	// FieldIgnored means the key was not handled.
	FieldIgnored FieldResult = iota
	// FieldMoved means the cursor moved without changing the value.
	FieldMoved
	// FieldEdited means the value changed.
	FieldEdited
	// FieldCommit means the user pressed Enter.
	FieldCommit
)

// TextField is a single-line editable field with a label.
type TextField struct {
	Label string

	// Accept filters typed and pasted runes. Nil accepts every printable rune.
	Accept func(r rune) bool

	// MaxLen limits the value length in runes. Zero means no limit.
	MaxLen int

	value   []rune
	cursor  int
	focused bool
	rect    core.ScreenRect
	input   core.ScreenRect
}

// NewTextField creates a field with the given label and initial value.
func NewTextField(label, value string) *TextField {
	f := &TextField{Label: label}
	f.SetValue(value)
	return f
}

// Digits accepts only ASCII digits.
func Digits(r rune) bool {
	return r >= '0' && r <= '9'
}

// Value returns the current text.
func (f *TextField) Value() string {
	return string(f.value)
}

// SetValue replaces the text and moves the cursor to its end.
func (f *TextField) SetValue(v string) {
	f.value = []rune(v)
	f.cursor = len(f.value)
}

// Cursor returns the cursor position in runes.
func (f *TextField) Cursor() int {
	return f.cursor
}

// Focused reports whether the field has keyboard focus.
func (f *TextField) Focused() bool {
	return f.focused
}

// Focus gives the field keyboard focus.
func (f *TextField) Focus() {
	f.focused = true
}

// Blur removes keyboard focus.
func (f *TextField) Blur() {
	f.focused = false
}

// Insert types r at the cursor if the filter and length limit allow it.
func (f *TextField) Insert(r rune) bool {
	if r < ' ' || r == 0x7F {
		return false
	}
	if f.Accept != nil && !f.Accept(r) {
		return false
	}
	if f.MaxLen > 0 && len(f.value) >= f.MaxLen {
		return false
	}
	f.value = append(f.value, 0)
	copy(f.value[f.cursor+1:], f.value[f.cursor:])
	f.value[f.cursor] = r
	f.cursor++
	return true
}

// InsertString types every acceptable rune of s.
func (f *TextField) InsertString(s string) bool {
	changed := false
	for _, r := range s {
		if f.Insert(r) {
			changed = true
		}
	}
	return changed
}

// Backspace deletes the rune before the cursor.
func (f *TextField) Backspace() bool {
	if f.cursor == 0 {
		return false
	}
	f.value = append(f.value[:f.cursor-1], f.value[f.cursor:]...)
	f.cursor--
	return true
}

// Delete deletes the rune under the cursor.
func (f *TextField) Delete() bool {
	if f.cursor >= len(f.value) {
		return false
	}
	f.value = append(f.value[:f.cursor], f.value[f.cursor+1:]...)
	return true
}

// MoveTo places the cursor at pos, clamped to the value.
func (f *TextField) MoveTo(pos int) {
	f.cursor = min(max(pos, 0), len(f.value))
}

// HandleKey applies a key event to the field.
func (f *TextField) HandleKey(ev backend.Event) FieldResult {
	switch ev.Key {
	case backend.KeyEnter:
		return FieldCommit
	case backend.KeyRune:
		if f.Insert(ev.Rune) {
			return FieldEdited
		}
	case backend.KeyBackspace:
		if f.Backspace() {
			return FieldEdited
		}
	case backend.KeyDelete:
		if f.Delete() {
			return FieldEdited
		}
	case backend.KeyLeft:
		f.MoveTo(f.cursor - 1)
		return FieldMoved
	case backend.KeyRight:
		f.MoveTo(f.cursor + 1)
		return FieldMoved
	case backend.KeyHome:
		f.MoveTo(0)
		return FieldMoved
	case backend.KeyEnd:
		f.MoveTo(len(f.value))
		return FieldMoved
	}
	return FieldIgnored
}

// Width returns the columns needed to show the label and an input of
// inputWidth columns.
func (f *TextField) Width(inputWidth int) int {
	return core.StringWidth(f.Label) + 1 + inputWidth + 2
}

// Place positions the field at (x, y) with an input of inputWidth columns.
func (f *TextField) Place(x, y, inputWidth int) core.ScreenRect {
	f.rect = core.RectFromSize(y, x, 1, f.Width(inputWidth))
	labelW := core.StringWidth(f.Label) + 1
	f.input = core.RectFromSize(y, x+labelW, 1, inputWidth+2)
	return f.rect
}

// Rect returns the rectangle from the last placement.
func (f *TextField) Rect() core.ScreenRect {
	return f.rect
}

// Hit reports whether (x, y) falls on the field.
func (f *TextField) Hit(x, y int) bool {
	return f.rect.Contains(x, y)
}

// ClickAt moves the cursor to the column under x.
func (f *TextField) ClickAt(x int) {
	f.MoveTo(x - f.input.Left - 1 + f.scroll())
}

// scroll returns the first visible rune so the cursor stays in view.
func (f *TextField) scroll() int {
	visible := f.input.Width() - 2
	if visible <= 0 || f.cursor < visible {
		return 0
	}
	return f.cursor - visible + 1
}

// FieldStyles are the styles a text field is drawn with.
type FieldStyles struct {
	Label   core.Style
	Input   core.Style
	Focused core.Style
}

// Draw renders the field at its placed rectangle and, when focused, places
// the terminal cursor.
func (f *TextField) Draw(b backend.Backend, limit int, styles FieldStyles) {
	if f.rect.IsEmpty() {
		return
	}
	right := min(limit, f.rect.Right)
	DrawText(b, f.rect.Left, f.rect.Top, right, f.Label, styles.Label)

	style := styles.Input
	if f.focused {
		style = styles.Focused
	}
	in := f.input
	for x := in.Left; x < min(in.Right, right); x++ {
		b.SetCell(x, in.Top, core.NewStyledCell(' ', style))
	}

	first := f.scroll()
	visible := f.value[first:]
	if n := in.Width() - 2; len(visible) > n {
		visible = visible[:max(n, 0)]
	}
	DrawText(b, in.Left+1, in.Top, min(in.Right-1, right), string(visible), style)

	if f.focused {
		cx := in.Left + 1 + f.cursor - first
		if cx < right {
			b.ShowCursor(cx, in.Top)
		}
	}
}
