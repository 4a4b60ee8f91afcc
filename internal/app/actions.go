package app

import (
	"errors"
	"time"

	"github.com/dshills/plotview/internal/chart/export"
	"github.com/dshills/plotview/internal/controller"
	"github.com/dshills/plotview/internal/preview"
	"github.com/dshills/plotview/internal/renderer/backend"
	"github.com/dshills/plotview/internal/renderer/statusline"
)

// noticeDuration is how long a status line notice stays up.
const noticeDuration = 4 * time.Second

// notice is an interrupt payload carrying a status message from another
// goroutine.
type notice struct {
	text  string
	level statusline.Level
}

func (app *Application) notify(text string, level statusline.Level) {
	app.status.SetMessage(text, level, app.now().Add(noticeDuration))
}

// post hands payload to the event loop. Safe from any goroutine.
func (app *Application) post(payload any) {
	if app.backend == nil {
		return
	}
	app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Payload: payload})
}

func (app *Application) handleInterrupt(payload any) {
	switch p := payload.(type) {
	case notice:
		app.notify(p.text, p.level)
	case configReload:
		app.applyReload(p)
	}
}

// Plot asks the preview to render the current document.
func (app *Application) Plot() {
	app.ctrl.RequestRender()
}

// flushRender carries out a pending render command and acknowledges it.
func (app *Application) flushRender() {
	cmd, ok := app.ctrl.TakeRenderCommand()
	if !ok {
		return
	}
	start := time.Now()
	app.state.Render(cmd, app.ctrl.Acknowledge)
	app.metrics.RecordRender(time.Since(start), app.state.Err() != nil)
	app.editor.SetErrorLine(app.state.ErrorLine())
}

// Reset empties the document and clears the chart and error together.
func (app *Application) Reset() {
	ev := app.ctrl.Reset()
	app.state.Clear(ev)
	app.editor.SetText("")
	app.editor.SetErrorLine(-1)
}

// Prettify rewrites the document in canonical form. An unparseable
// document is left alone and a notice explains why.
func (app *Application) Prettify() {
	changed, err := app.ctrl.Prettify()
	if err != nil {
		var ne *controller.NoticeError
		if errors.As(err, &ne) {
			app.notify(ne.Notice.String(), statusline.LevelError)
		} else {
			app.notify(err.Error(), statusline.LevelError)
		}
		return
	}
	if changed {
		app.editor.SetText(app.ctrl.Document())
	}
}

// Copy writes the document to the clipboard and shows the confirmation.
func (app *Application) Copy() {
	app.ctrl.Copy()
	app.editor.MarkCopied(app.now())
}

// Export writes the chart as an image at the applied size into the
// configured export directory.
func (app *Application) Export() {
	format, err := export.ParseFormat(app.cfg.Export.Format)
	if err != nil {
		app.notify("Export failed: "+err.Error(), statusline.LevelError)
		return
	}
	m, err := app.preview.Model()
	switch {
	case errors.Is(err, preview.ErrNoChart):
		app.notify("Nothing to export: no chart", statusline.LevelWarning)
		return
	case err != nil:
		app.notify("Export failed: "+err.Error(), statusline.LevelError)
		return
	}

	path := export.FileName(app.cfg.Export.Dir, format, app.now())
	if err := export.WriteFile(m, format, path); err != nil {
		app.log.Warn("export failed", "path", path, "error", err)
		if errors.Is(err, export.ErrNoSeries) {
			app.notify("Nothing to export: chart has no drawable series", statusline.LevelWarning)
			return
		}
		app.notify("Export failed: "+err.Error(), statusline.LevelError)
		return
	}
	app.log.Info("chart exported", "path", path, "width", m.Width, "height", m.Height)
	app.notify("Exported "+path, statusline.LevelInfo)
}

// OpenProject opens the project page in the browser without blocking the
// loop. Failures come back as a notice.
func (app *Application) OpenProject() {
	url := app.projectURL
	go func() {
		if err := app.opener.OpenURL(url); err != nil {
			app.log.Warn("open project page failed", "url", url, "error", err)
			app.post(notice{text: "Could not open " + url, level: statusline.LevelError})
		}
	}()
}
