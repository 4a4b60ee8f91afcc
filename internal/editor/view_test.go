package editor

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dshills/plotview/internal/input/mouse"
	"github.com/dshills/plotview/internal/renderer/backend"
	"github.com/dshills/plotview/internal/renderer/core"
	"github.com/dshills/plotview/internal/renderer/highlight"
)

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T, text string) (*View, *backend.NullBackend) {
	t.Helper()
	b := backend.NewNullBackend(40, 10)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	v := NewView(text, DefaultConfig(), DefaultStyles())
	v.Draw(b, core.RectFromSize(0, 0, 10, 40), epoch)
	return v, b
}

func key(k backend.Key) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k}
}

func typed(r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r}
}

func press(x, y int) mouse.Event {
	return mouse.Event{Position: mouse.Position{X: x, Y: y}, Button: mouse.ButtonLeft, Action: mouse.ActionPress}
}

func numbered(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line " + strconv.Itoa(i+1)
	}
	return strings.Join(lines, "\n")
}

func TestViewDraw(t *testing.T) {
	_, b := setup(t, "{\n  \"data\": []\n}")

	if got := b.Row(0); !strings.Contains(got, " Prettify ") || !strings.Contains(got, " Copy ") {
		t.Errorf("toolbar = %q", got)
	}
	if got := b.Row(1); !strings.HasPrefix(got, "   1 │{") {
		t.Errorf("row 1 = %q", got)
	}
	if got := b.Row(2); !strings.HasPrefix(got, "   2 │  \"data\": []") {
		t.Errorf("row 2 = %q", got)
	}
	if got := b.Row(4); !strings.HasPrefix(got, "     │") {
		t.Errorf("row past the end = %q, want a blank gutter", got)
	}
}

func TestViewPlaceholder(t *testing.T) {
	_, b := setup(t, "")

	if got := b.Row(1); !strings.HasPrefix(got, "   1 │"+Placeholder) {
		t.Errorf("row 1 = %q, want line 1 and the placeholder", got)
	}
}

func TestViewSyntaxColours(t *testing.T) {
	_, b := setup(t, `{"a": 1}`)
	styles := DefaultStyles()

	quote := b.GetCell(7, 1) // the opening quote of "a"
	if !quote.Style.Equals(styles.Syntax.StyleFor(highlight.TokenKey)) {
		t.Errorf("key style = %+v", quote.Style)
	}
}

func TestViewKeyEditing(t *testing.T) {
	v, _ := setup(t, "")

	for _, r := range "{}" {
		if got := v.HandleKey(typed(r)); got != ActionEdited {
			t.Errorf("typing %q = %s, want edited", r, got)
		}
	}
	if got := v.HandleKey(key(backend.KeyLeft)); got != ActionMoved {
		t.Errorf("Left = %s, want moved", got)
	}
	v.HandleKey(key(backend.KeyEnter))
	v.HandleKey(key(backend.KeyTab))
	if v.Text() != "{\n  }" {
		t.Errorf("Text() = %q", v.Text())
	}
	if got := v.HandleKey(key(backend.KeyF1)); got != ActionNone {
		t.Errorf("F1 = %s, want none", got)
	}
	if got := v.HandleKey(key(backend.KeyDelete)); got != ActionEdited {
		t.Errorf("Delete = %s, want edited", got)
	}
	if v.Text() != "{\n  " {
		t.Errorf("Text() = %q", v.Text())
	}
}

func TestViewBackspaceAtOriginIsNotAnEdit(t *testing.T) {
	v, _ := setup(t, "x")
	v.HandleKey(key(backend.KeyHome))
	if got := v.HandleKey(key(backend.KeyBackspace)); got != ActionMoved {
		t.Errorf("Backspace at origin = %s, want moved", got)
	}
}

func TestViewPaste(t *testing.T) {
	v, _ := setup(t, "")
	if got := v.Paste("{\r\n\"data\": []\r\n}"); got != ActionEdited {
		t.Errorf("Paste = %s", got)
	}
	if v.Text() != "{\n\"data\": []\n}" || v.LineCount() != 3 {
		t.Errorf("Text() = %q", v.Text())
	}
	if v.Paste("") != ActionNone {
		t.Error("empty paste should do nothing")
	}
}

func TestViewToolbarButtons(t *testing.T) {
	v, b := setup(t, "{}")

	if got := v.HandleMouse(press(3, 0)); got != ActionPrettify {
		t.Errorf("click on Prettify = %s", got)
	}
	if got := v.HandleMouse(press(14, 0)); got != ActionCopy {
		t.Errorf("click on Copy = %s", got)
	}

	end := v.MarkCopied(epoch)
	if !end.Equal(epoch.Add(3 * time.Second)) {
		t.Errorf("copied deadline = %v", end)
	}
	v.Draw(b, core.RectFromSize(0, 0, 10, 40), epoch.Add(2*time.Second))
	if !strings.Contains(b.Row(0), LabelCopied) {
		t.Errorf("toolbar = %q, want copied label", b.Row(0))
	}
	v.Draw(b, core.RectFromSize(0, 0, 10, 40), epoch.Add(3*time.Second))
	if strings.Contains(b.Row(0), "Copied") {
		t.Errorf("toolbar = %q, copied label should be gone after 3s", b.Row(0))
	}
}

func TestViewCopiedRestarts(t *testing.T) {
	v, _ := setup(t, "")
	v.MarkCopied(epoch)
	v.MarkCopied(epoch.Add(2 * time.Second))

	if !v.CopiedActive(epoch.Add(4 * time.Second)) {
		t.Error("a second copy should restart the window")
	}
	if v.CopiedActive(epoch.Add(5 * time.Second)) {
		t.Error("window should close 3s after the last copy")
	}
}

func TestViewWheelScrollsGutterWithText(t *testing.T) {
	v, b := setup(t, numbered(50))

	ev := mouse.Event{Position: mouse.Position{X: 10, Y: 5}, Button: mouse.ButtonScrollDown, Action: mouse.ActionScroll}
	if got := v.HandleMouse(ev); got != ActionMoved {
		t.Fatalf("wheel = %s, want moved", got)
	}
	if v.TopLine() != 3 {
		t.Errorf("TopLine = %d, want 3", v.TopLine())
	}

	v.Draw(b, core.RectFromSize(0, 0, 10, 40), epoch)
	if got := b.Row(1); !strings.HasPrefix(got, "   4 │line 4") {
		t.Errorf("row 1 = %q, gutter and text should scroll together", got)
	}

	ev.Button = mouse.ButtonScrollUp
	v.HandleMouse(ev)
	if v.HandleMouse(ev) != ActionNone {
		t.Error("scrolling above the top should do nothing")
	}
}

func TestViewWheelOutsidePane(t *testing.T) {
	v, _ := setup(t, numbered(50))
	ev := mouse.Event{Position: mouse.Position{X: 60, Y: 5}, Button: mouse.ButtonScrollDown, Action: mouse.ActionScroll}
	if v.HandleMouse(ev) != ActionNone || v.TopLine() != 0 {
		t.Error("wheel outside the pane should be ignored")
	}
}

func TestViewClickPlacesCursor(t *testing.T) {
	v, _ := setup(t, "abc\ndefgh")

	if got := v.HandleMouse(press(9, 2)); got != ActionMoved {
		t.Fatalf("click = %s", got)
	}
	if c := v.Cursor(); c.Line != 1 || c.Col != 3 {
		t.Errorf("cursor = %+v, want {1 3}", c)
	}

	v.HandleMouse(press(20, 8))
	if c := v.Cursor(); c.Line != 1 || c.Col != 5 {
		t.Errorf("click below the text = %+v, want end of document", c)
	}

	v.HandleMouse(press(2, 1))
	if c := v.Cursor(); c.Line != 0 || c.Col != 0 {
		t.Errorf("click on the gutter = %+v, want start of line 1", c)
	}
}

func TestViewErrorLineMarker(t *testing.T) {
	v, b := setup(t, "{\n  bad\n}")
	v.SetErrorLine(1)
	v.Draw(b, core.RectFromSize(0, 0, 10, 40), epoch)

	if got := b.GetCell(3, 2).Style; !got.Equals(DefaultStyles().GutterError) {
		t.Errorf("gutter style on the error line = %+v", got)
	}
	v.SetErrorLine(-1)
	v.Draw(b, core.RectFromSize(0, 0, 10, 40), epoch)
	if got := b.GetCell(3, 2).Style; got.Equals(DefaultStyles().GutterError) {
		t.Error("error marker should clear")
	}
}

func TestViewCursorShownWhenFocused(t *testing.T) {
	v, b := setup(t, "abc")
	v.HandleKey(key(backend.KeyEnd))

	v.Draw(b, core.RectFromSize(0, 0, 10, 40), epoch)
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor should be hidden without focus")
	}

	v.SetFocused(true)
	v.Draw(b, core.RectFromSize(0, 0, 10, 40), epoch)
	x, y, visible := b.CursorPosition()
	if !visible || x != 9 || y != 1 {
		t.Errorf("cursor = (%d, %d, %v), want (9, 1, true)", x, y, visible)
	}
}

func TestViewSetTextKeepsSameText(t *testing.T) {
	v, _ := setup(t, "abc")
	v.HandleKey(key(backend.KeyEnd))
	v.SetText("abc")
	if v.Cursor().Col != 3 {
		t.Error("SetText with identical text should not move the cursor")
	}
	v.SetText("")
	if v.Cursor().Col != 0 || v.Text() != "" {
		t.Error("SetText should replace the document")
	}
}
