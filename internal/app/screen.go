package app

import (
	"time"

	"github.com/dshills/plotview/internal/renderer/backend"
	"github.com/dshills/plotview/internal/renderer/core"
)

// keyHint is shown on the right of the status line.
const keyHint = "F1 help  ^R plot  ^Q quit"

// screenLayout is the division of the terminal into the fixed rows.
type screenLayout struct {
	screen core.ScreenRect
	topbar core.ScreenRect
	body   core.ScreenRect
	status core.ScreenRect
}

func computeLayout(width, height int) screenLayout {
	screen := core.RectFromSize(0, 0, height, width)
	top, rest := screen.SplitTop(1)
	body, status := rest.SplitTop(rest.Height() - 1)
	return screenLayout{screen: screen, topbar: top, body: body, status: status}
}

// Draw renders a frame. A pending render command is carried out first so
// the frame shows its outcome.
func (app *Application) Draw() {
	start := time.Now()
	app.flushRender()

	b := app.backend
	w, h := b.Size()
	l := computeLayout(w, h)
	now := app.now()

	b.HideCursor()
	b.Clear()

	app.topbar.Draw(b, l.topbar)

	left, divider, right := app.split.Arrange(l.body)
	app.editor.Draw(b, left, now)
	app.drawDivider(b, divider)
	app.preview.Draw(b, right)

	cur := app.editor.Cursor()
	app.status.SetPosition(cur.Line, cur.Col)
	app.status.SetDrag(app.split.Dragging(), int(app.split.Percent()+0.5))
	if !l.status.IsEmpty() {
		app.status.Render(b, l.status.Top, w, now)
	}

	if app.preview.Help().IsOpen() {
		app.preview.DrawHelp(b, l.screen)
		b.HideCursor()
	}

	b.Show()
	app.metrics.RecordFrame(time.Since(start))
}

func (app *Application) drawDivider(b backend.Backend, r core.ScreenRect) {
	style := app.styles.Divider
	if app.split.Dragging() {
		style = app.styles.DividerActive
	}
	for y := r.Top; y < r.Bottom; y++ {
		for x := r.Left; x < r.Right; x++ {
			b.SetCell(x, y, core.NewStyledCell('│', style))
		}
	}
}

// arrange places every component without drawing, so hit tests work
// before the first frame and right after a resize.
func (app *Application) arrange() {
	w, h := app.backend.Size()
	l := computeLayout(w, h)
	app.topbar.Arrange(l.topbar)
	left, _, right := app.split.Arrange(l.body)
	app.editor.Arrange(left)
	app.preview.Arrange(right)
}
