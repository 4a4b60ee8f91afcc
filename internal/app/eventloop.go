package app

import (
	"errors"
	"time"

	"github.com/dshills/plotview/internal/renderer/backend"
)

// tickInterval is how often the screen is redrawn while idle, so timed
// notices and the copied indicator expire on time.
const tickInterval = 250 * time.Millisecond

// Run initialises the backend and runs the event loop until quit. It
// returns ErrQuit after a normal quit.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	app.startWatcher()
	defer app.stopWatcher()

	events := make(chan backend.Event, 64)
	go app.poll(events)

	app.log.Info("started", "split", app.split.Percent(), "config", app.cfg.Path)
	err := app.eventLoop(events)
	app.cleanup()
	return err
}

// Shutdown stops the event loop. It is safe to call from any goroutine
// and more than once.
func (app *Application) Shutdown() {
	app.closeOnce.Do(func() { close(app.done) })
}

func (app *Application) cleanup() {
	app.endDrag("shutdown")
	app.ctrl.Wait()
	app.Shutdown()
	app.log.Info("stopped", app.metrics.Snapshot().LogArgs()...)
}

// poll forwards backend events to the loop until the backend closes or the
// loop stops.
func (app *Application) poll(events chan<- backend.Event) {
	for {
		ev := app.backend.PollEvent()
		if ev.Type == backend.EventClosed {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-app.done:
			return
		}
	}
}

func (app *Application) eventLoop(events <-chan backend.Event) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	app.arrange()
	app.Draw()

	for {
		select {
		case <-app.done:
			return ErrQuit

		case ev, ok := <-events:
			if !ok {
				return ErrQuit
			}
			if err := app.HandleEvent(ev); err != nil {
				return err
			}
			// Drain what is already queued before paying for a frame.
			for drained := false; !drained; {
				select {
				case ev, ok := <-events:
					if !ok {
						return ErrQuit
					}
					if err := app.HandleEvent(ev); err != nil {
						return err
					}
				default:
					drained = true
				}
			}

		case <-ticker.C:
		}
		app.Draw()
	}
}

// HandleEvent applies one backend event. It returns ErrQuit when the user
// asked to quit.
func (app *Application) HandleEvent(ev backend.Event) error {
	app.metrics.RecordEvent()

	switch ev.Type {
	case backend.EventKey:
		if app.paste != nil {
			app.pasteKey(ev)
			return nil
		}
		return app.handleKey(ev)
	case backend.EventMouse:
		app.handleMouse(ev)
	case backend.EventPaste:
		app.handlePaste(ev)
	case backend.EventResize:
		app.endDrag("resize")
		app.arrange()
	case backend.EventFocus:
		if !ev.Focused {
			app.endDrag("focus lost")
			app.mouse.Reset()
		}
	case backend.EventInterrupt:
		app.handleInterrupt(ev.Payload)
	case backend.EventClosed:
		return ErrQuit
	}
	return nil
}

// IsQuit reports whether err is a normal quit.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}
