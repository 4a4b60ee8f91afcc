package app

import (
	"fmt"

	"github.com/dshills/plotview/internal/config"
	"github.com/dshills/plotview/internal/config/watcher"
	"github.com/dshills/plotview/internal/renderer/statusline"
)

// configReload is an interrupt payload with the outcome of a reload.
type configReload struct {
	cfg *config.Config
	err error
}

// startWatcher watches the config file when reloading is enabled and a
// file was loaded. Watch failures only disable reloading.
func (app *Application) startWatcher() {
	if app.opts.Reload == nil || app.cfg.Path == "" {
		return
	}
	opts := *app.opts.Reload
	opts.Path = app.cfg.Path
	log := app.log.WithComponent("config")

	w, err := watcher.New(opts.Path, func(ev watcher.Event) {
		if ev.Op == watcher.OpRemove {
			app.post(configReload{err: fmt.Errorf("%s was removed", ev.Path)})
			return
		}
		cfg, err := config.Load(opts)
		app.post(configReload{cfg: cfg, err: err})
	}, watcher.WithErrorHandler(func(err error) {
		log.Warn("watch error", "error", err)
	}))
	if err != nil {
		log.Warn("live reload disabled", "path", opts.Path, "error", err)
		return
	}
	app.watcher = w
	log.Debug("watching", "path", opts.Path)
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Close(); err != nil {
		app.log.Warn("close config watcher", "error", err)
	}
	app.watcher = nil
}

// applyReload adopts a reloaded configuration. Theme, project URL, the
// copied duration and the cell size apply at once; sizes and split bounds
// only apply at the next start.
func (app *Application) applyReload(r configReload) {
	log := app.log.WithComponent("config")
	if r.err != nil {
		log.Warn("reload failed", "error", r.err)
		app.notify("Config not reloaded: "+r.err.Error(), statusline.LevelError)
		return
	}

	changed := r.cfg.Changed(app.cfg)
	app.cfg = r.cfg
	app.applyConfig()

	for _, p := range r.cfg.Problems {
		log.Warn("config value ignored", "error", p)
	}
	log.Info("reloaded", "path", r.cfg.Path, "changed", changed)
	if len(r.cfg.Problems) > 0 {
		app.notify(fmt.Sprintf("Config reloaded with %d ignored value(s)", len(r.cfg.Problems)), statusline.LevelWarning)
		return
	}
	app.notify("Config reloaded", statusline.LevelInfo)
}

// applyConfig pushes the runtime-adjustable settings to the components.
func (app *Application) applyConfig() {
	app.styles = StylesFromTheme(app.cfg.Theme)
	app.topbar.SetStyles(app.styles.TopBar)
	app.editor.SetStyles(app.styles.Editor)
	app.preview.SetStyles(app.styles.Preview)
	app.status.SetStyles(app.styles.Status)

	app.projectURL = app.cfg.ProjectURL
	app.editor.SetCopiedDuration(app.cfg.Editor.CopiedDuration)
	app.preview.SetCellSize(app.cfg.Preview.CellWidthPx, app.cfg.Preview.CellHeightPx)
}
