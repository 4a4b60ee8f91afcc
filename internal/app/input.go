package app

import (
	"strings"

	"github.com/dshills/plotview/internal/editor"
	"github.com/dshills/plotview/internal/input/mouse"
	"github.com/dshills/plotview/internal/preview"
	"github.com/dshills/plotview/internal/renderer/backend"
	"github.com/dshills/plotview/internal/topbar"
)

// handleKey runs global bindings first, then hands the key to the help
// dialog when open, then to the focused widget.
func (app *Application) handleKey(ev backend.Event) error {
	switch ev.Key {
	case backend.KeyCtrlQ, backend.KeyCtrlC:
		return ErrQuit
	case backend.KeyF1:
		app.preview.Help().Toggle()
		return nil
	}

	if app.preview.Help().HandleKey(ev) {
		return nil
	}

	switch ev.Key {
	case backend.KeyCtrlR:
		app.Plot()
		return nil
	case backend.KeyCtrlN:
		app.Reset()
		return nil
	case backend.KeyCtrlP:
		app.Prettify()
		return nil
	case backend.KeyCtrlY:
		app.Copy()
		return nil
	case backend.KeyCtrlE:
		app.Export()
		return nil
	case backend.KeyBacktab:
		app.cycleFocus()
		return nil
	case backend.KeyTab:
		if app.focus != focusEditor {
			app.cycleFocus()
			return nil
		}
	case backend.KeyEscape:
		if app.focus == focusWidth || app.focus == focusHeight {
			app.setFocus(focusEditor)
		}
		return nil
	}

	switch app.focus {
	case focusEditor:
		app.editorAction(app.editor.HandleKey(ev))
	case focusWidth, focusHeight:
		app.preview.HandleKey(ev)
	}
	return nil
}

// setFocus moves keyboard focus. A size field losing focus is committed.
func (app *Application) setFocus(f focusTarget) {
	app.focus = f
	app.editor.SetFocused(f == focusEditor)
	switch f {
	case focusWidth:
		app.preview.Focus(preview.FieldWidth)
	case focusHeight:
		app.preview.Focus(preview.FieldHeight)
	default:
		app.preview.Blur()
	}
}

// cycleFocus moves focus editor → width → height → editor.
func (app *Application) cycleFocus() {
	switch app.focus {
	case focusEditor:
		app.setFocus(focusWidth)
	case focusWidth:
		app.setFocus(focusHeight)
	default:
		app.setFocus(focusEditor)
	}
}

// syncFocus adopts the field the preview focused itself, e.g. on a click.
func (app *Application) syncFocus() {
	switch app.preview.Focused() {
	case preview.FieldWidth:
		app.focus = focusWidth
	case preview.FieldHeight:
		app.focus = focusHeight
	default:
		if app.focus == focusWidth || app.focus == focusHeight {
			app.focus = focusNone
		}
	}
	app.editor.SetFocused(app.focus == focusEditor)
}

func (app *Application) editorAction(a editor.Action) {
	switch a {
	case editor.ActionEdited:
		app.ctrl.UpdateDocument(app.editor.Text())
	case editor.ActionPrettify:
		app.Prettify()
	case editor.ActionCopy:
		app.Copy()
	}
}

func (app *Application) handleMouse(raw backend.Event) {
	ev := app.mouse.Classify(raw)
	x, y := ev.Position.X, ev.Position.Y

	if app.drag != nil {
		switch ev.Action {
		case mouse.ActionDrag, mouse.ActionMove:
			app.drag.Move(x)
		case mouse.ActionRelease:
			app.endDrag("released")
		}
		return
	}

	if help := app.preview.Help(); help.IsOpen() {
		switch {
		case ev.Action == mouse.ActionScroll:
			help.ScrollBy(mouse.ParseScroll(ev, mouse.DefaultScrollConfig()))
		case ev.Action == mouse.ActionPress && ev.Button == mouse.ButtonLeft:
			help.Close()
		}
		return
	}

	if ev.Action == mouse.ActionPress && ev.Button == mouse.ButtonLeft && app.split.OnDivider(x, y) {
		app.drag = app.split.BeginDrag()
		app.log.Debug("split drag started", "percent", app.split.Percent())
		return
	}

	switch {
	case app.topbar.Contains(x, y):
		switch app.topbar.HandleMouse(ev) {
		case topbar.ActionReset:
			app.Reset()
		case topbar.ActionPlot:
			app.Plot()
		case topbar.ActionGitHub:
			app.OpenProject()
		}

	case app.editor.Contains(x, y):
		if ev.Action == mouse.ActionPress && ev.Button == mouse.ButtonLeft {
			app.setFocus(focusEditor)
		}
		app.editorAction(app.editor.HandleMouse(ev))

	case app.preview.Contains(x, y):
		app.preview.HandleMouse(ev)
		if ev.Action == mouse.ActionPress {
			app.syncFocus()
		}
	}
}

// endDrag releases the divider drag session, if any.
func (app *Application) endDrag(reason string) {
	if app.drag == nil {
		return
	}
	app.drag.End()
	app.drag = nil
	app.log.Debug("split drag ended", "reason", reason, "percent", app.split.Percent())
}

// handlePaste opens or closes a bracketed paste. Keys in between are
// collected and delivered to the focused widget as one edit.
func (app *Application) handlePaste(ev backend.Event) {
	if ev.Focused {
		app.paste = &strings.Builder{}
		return
	}
	if app.paste == nil {
		return
	}
	text := app.paste.String()
	app.paste = nil

	switch app.focus {
	case focusEditor:
		app.editorAction(app.editor.Paste(text))
	case focusWidth, focusHeight:
		app.preview.Paste(text)
	}
}

func (app *Application) pasteKey(ev backend.Event) {
	switch ev.Key {
	case backend.KeyRune:
		app.paste.WriteRune(ev.Rune)
	case backend.KeyEnter:
		app.paste.WriteByte('\n')
	case backend.KeyTab:
		app.paste.WriteByte('\t')
	}
}
