package app

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/plotview/internal/config"
	"github.com/dshills/plotview/internal/config/watcher"
	"github.com/dshills/plotview/internal/controller"
	"github.com/dshills/plotview/internal/editor"
	"github.com/dshills/plotview/internal/input/mouse"
	"github.com/dshills/plotview/internal/layout"
	"github.com/dshills/plotview/internal/preview"
	"github.com/dshills/plotview/internal/renderer/backend"
	"github.com/dshills/plotview/internal/renderer/statusline"
	"github.com/dshills/plotview/internal/topbar"
)

// Options configures the application.
type Options struct {
	// Document is the initial editor text.
	Document string

	// Config is the effective configuration. Nil uses config.Default().
	Config *config.Config

	// Reload, when set, watches Config.Path and reloads with these options
	// whenever the file changes.
	Reload *config.Options

	// Clipboard, Opener, Logger and NewID default to the system clipboard,
	// the system browser, NullLogger and random UUIDs.
	Clipboard controller.Clipboard
	Opener    topbar.Opener
	Logger    *Logger
	NewID     func() string

	// Now is the clock used for notices and the copied indicator.
	Now func() time.Time
}

// focusTarget is the widget that receives key events.
type focusTarget int

const (
	focusNone focusTarget = iota
	focusEditor
	focusWidth
	focusHeight
)

func (f focusTarget) String() string {
	switch f {
	case focusEditor:
		return "editor"
	case focusWidth:
		return "width"
	case focusHeight:
		return "height"
	default:
		return "none"
	}
}

// Application owns the screen components and the controller. Everything
// except Shutdown must be called from the event loop goroutine.
type Application struct {
	opts    Options
	cfg     *config.Config
	log     *Logger
	metrics *Metrics
	now     func() time.Time
	styles  Styles

	backend backend.Backend

	ctrl    *controller.Controller
	state   *preview.State
	editor  *editor.View
	preview *preview.View
	topbar  *topbar.Bar
	split   *layout.Split
	status  *statusline.StatusLine
	mouse   *mouse.Classifier
	drag    *layout.DragSession

	opener     topbar.Opener
	projectURL string

	focus focusTarget
	paste *strings.Builder // non-nil inside a bracketed paste

	watcher *watcher.Watcher

	running   atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
}

// New creates an application showing opts.Document.
func New(opts Options) *Application {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = NullLogger
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	opener := opts.Opener
	if opener == nil {
		opener = topbar.BrowserOpener{}
	}

	app := &Application{
		opts:       opts,
		cfg:        cfg,
		log:        log,
		metrics:    NewMetrics(),
		now:        now,
		styles:     StylesFromTheme(cfg.Theme),
		opener:     opener,
		projectURL: cfg.ProjectURL,
		mouse:      mouse.NewClassifier(),
		done:       make(chan struct{}),
	}

	app.ctrl = controller.New(opts.Document, controller.Options{
		Clipboard: opts.Clipboard,
		Logger:    log.WithComponent("controller"),
		NewID:     opts.NewID,
	})
	app.state = preview.NewState(log.WithComponent("preview"))

	app.editor = editor.NewView(opts.Document, editor.Config{
		TabWidth:       cfg.Editor.TabWidth,
		CopiedDuration: cfg.Editor.CopiedDuration,
		Scroll:         mouse.DefaultScrollConfig(),
	}, app.styles.Editor)

	app.preview = preview.NewView(app.state, preview.Config{
		Defaults:   preview.Size{Width: cfg.Preview.DefaultWidth, Height: cfg.Preview.DefaultHeight},
		Floor:      cfg.Preview.MinDimension,
		CellWidth:  cfg.Preview.CellWidthPx,
		CellHeight: cfg.Preview.CellHeightPx,
		Scroll:     mouse.DefaultScrollConfig(),
	}, app.styles.Preview)

	app.topbar = topbar.New(app.styles.TopBar)
	app.split = layout.NewSplit(float64(cfg.Layout.InitialSplit), layout.Bounds{
		Min: float64(cfg.Layout.MinSplit),
		Max: float64(cfg.Layout.MaxSplit),
	})
	app.status = statusline.New(app.styles.Status)
	app.status.SetHint(keyHint)

	for _, p := range cfg.Problems {
		log.Warn("config value ignored", "error", p)
	}

	app.setFocus(focusEditor)
	return app
}

// SetBackend sets the terminal backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// IsRunning reports whether Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the configuration in effect.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Controller returns the root controller.
func (app *Application) Controller() *controller.Controller {
	return app.ctrl
}

// Editor returns the editor pane.
func (app *Application) Editor() *editor.View {
	return app.editor
}

// Preview returns the preview pane.
func (app *Application) Preview() *preview.View {
	return app.preview
}

// Split returns the split container.
func (app *Application) Split() *layout.Split {
	return app.split
}

// Status returns the status line.
func (app *Application) Status() *statusline.StatusLine {
	return app.status
}

// Metrics returns the session metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.log
}
