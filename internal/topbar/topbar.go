// Package topbar draws the title row with the Reset, Plot and GitHub
// buttons. It holds no document state; presses are reported to the caller.
package topbar

import (
	"github.com/pkg/browser"

	"github.com/dshills/plotview/internal/input/mouse"
	"github.com/dshills/plotview/internal/renderer/backend"
	"github.com/dshills/plotview/internal/renderer/core"
	"github.com/dshills/plotview/internal/renderer/widget"
)

// Title is shown at the left of the bar.
const Title = "Plotly Chart Previewer"

// DefaultProjectURL is opened by the GitHub button.
const DefaultProjectURL = "https://github.com/tnpaul/PlotlyChartPreviewer"

// Button labels.
const (
	LabelReset  = "Reset"
	LabelPlot   = "Plot"
	LabelGitHub = "GitHub"
)

// Action is a button press.
type Action int

const (
	ActionNone Action = iota
	ActionReset
	ActionPlot
	ActionGitHub
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionReset:
		return "reset"
	case ActionPlot:
		return "plot"
	case ActionGitHub:
		return "github"
	default:
		return "none"
	}
}

// Opener opens a URL outside the terminal.
type Opener interface {
	OpenURL(url string) error
}

// BrowserOpener opens URLs in the system browser.
type BrowserOpener struct{}

// OpenURL implements Opener.
func (BrowserOpener) OpenURL(url string) error {
	return browser.OpenURL(url)
}

// Styles holds the styles of the bar.
type Styles struct {
	Bar    core.Style
	Title  core.Style
	Reset  core.Style
	Plot   core.Style
	GitHub core.Style
}

// DefaultStyles returns the built-in bar styles.
func DefaultStyles() Styles {
	bar := core.DefaultStyle().WithBackground(core.ColorFromRGB(0, 90, 148)).WithForeground(core.ColorWhite)
	return Styles{
		Bar:    bar,
		Title:  bar.Bold(),
		Reset:  bar.WithBackground(core.ColorFromRGB(220, 38, 38)),
		Plot:   bar.WithBackground(core.ColorFromRGB(22, 163, 74)),
		GitHub: bar.WithBackground(core.ColorFromRGB(36, 41, 47)),
	}
}

// Bar is the top bar.
type Bar struct {
	reset  *widget.Button
	plot   *widget.Button
	github *widget.Button
	styles Styles
	rect   core.ScreenRect
}

// New creates a bar.
func New(styles Styles) *Bar {
	return &Bar{
		reset:  widget.NewButton(LabelReset),
		plot:   widget.NewButton(LabelPlot),
		github: widget.NewButton(LabelGitHub),
		styles: styles,
	}
}

// SetStyles replaces the styles.
func (t *Bar) SetStyles(styles Styles) {
	t.styles = styles
}

func (t *Bar) buttons() []*widget.Button {
	return []*widget.Button{t.reset, t.plot, t.github}
}

// Arrange places the buttons at the right end of rect's first row.
func (t *Bar) Arrange(rect core.ScreenRect) {
	t.rect, _ = rect.SplitTop(1)
	widget.PlaceRowRight(t.buttons(), t.rect.Right-1, t.rect.Top, 1)
}

// HandleMouse reports which button a left press hit.
func (t *Bar) HandleMouse(ev mouse.Event) Action {
	if ev.Action != mouse.ActionPress || ev.Button != mouse.ButtonLeft {
		return ActionNone
	}
	switch widget.HitAny(t.buttons(), ev.Position.X, ev.Position.Y) {
	case t.reset:
		return ActionReset
	case t.plot:
		return ActionPlot
	case t.github:
		return ActionGitHub
	}
	return ActionNone
}

// Contains reports whether (x, y) is on the bar.
func (t *Bar) Contains(x, y int) bool {
	return t.rect.Contains(x, y)
}

// Draw arranges the bar in rect and renders it. The title is cut short
// before it would run into the buttons.
func (t *Bar) Draw(b backend.Backend, rect core.ScreenRect) {
	t.Arrange(rect)
	if t.rect.IsEmpty() {
		return
	}
	b.Fill(t.rect, core.NewStyledCell(' ', t.styles.Bar))

	first := t.reset.Rect().Left
	if first <= t.rect.Left {
		// Too narrow for the buttons: show only the title.
		for _, btn := range t.buttons() {
			btn.Hide()
		}
		first = t.rect.Right
	}
	widget.DrawText(b, t.rect.Left+1, t.rect.Top, first-1, widget.Truncate(Title, first-t.rect.Left-2), t.styles.Title)

	t.reset.Draw(b, t.rect.Right, t.styles.Reset)
	t.plot.Draw(b, t.rect.Right, t.styles.Plot)
	t.github.Draw(b, t.rect.Right, t.styles.GitHub)
}
