package mouse

import (
	"github.com/dshills/plotview/internal/renderer/backend"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonScrollUp indicates scroll wheel up.
	ButtonScrollUp
	// ButtonScrollDown indicates scroll wheel down.
	ButtonScrollDown
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	default:
		return "none"
	}
}

// IsScroll returns true if this is a scroll button.
func (b Button) IsScroll() bool {
	return b == ButtonScrollUp || b == ButtonScrollDown
}

// ButtonFromBackend maps a backend mouse button to a Button.
func ButtonFromBackend(b backend.MouseButton) Button {
	switch b {
	case backend.MouseLeft:
		return ButtonLeft
	case backend.MouseMiddle:
		return ButtonMiddle
	case backend.MouseRight:
		return ButtonRight
	case backend.MouseWheelUp:
		return ButtonScrollUp
	case backend.MouseWheelDown:
		return ButtonScrollDown
	default:
		return ButtonNone
	}
}

// Action represents the type of mouse action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates mouse movement (no button held).
	ActionMove
	// ActionDrag indicates mouse movement with a button held.
	ActionDrag
	// ActionScroll indicates a wheel tick.
	ActionScroll
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionDrag:
		return "drag"
	case ActionScroll:
		return "scroll"
	default:
		return "none"
	}
}

// Position represents a screen coordinate.
type Position struct {
	X int
	Y int
}

// Event represents a classified mouse event.
type Event struct {
	// Position is the screen coordinates.
	Position Position

	// Button is the mouse button involved. For ActionRelease it is the
	// button that was let go.
	Button Button

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers backend.ModMask

	// Action is the type of mouse action.
	Action Action
}

// Classifier turns raw terminal mouse reports into press, drag, release,
// move and scroll actions.
//
// Terminals report only the set of buttons held at each motion sample, so a
// press is the first report with a button held and a release is the first
// report with none. The Classifier keeps that history. It is owned by the
// event loop goroutine and is not safe for concurrent use.
type Classifier struct {
	drag *dragTracker
}

// NewClassifier creates a new mouse classifier.
func NewClassifier() *Classifier {
	return &Classifier{drag: newDragTracker()}
}

// Classify classifies a raw backend mouse event.
func (c *Classifier) Classify(ev backend.Event) Event {
	return c.classify(Position{X: ev.MouseX, Y: ev.MouseY}, ButtonFromBackend(ev.MouseButton), ev.Mod)
}

func (c *Classifier) classify(pos Position, held Button, mods backend.ModMask) Event {
	out := Event{Position: pos, Button: held, Modifiers: mods}

	switch {
	case held.IsScroll():
		out.Action = ActionScroll

	case held == ButtonNone && c.drag.isActive():
		out.Button = c.drag.getButton()
		out.Action = ActionRelease
		c.drag.end()

	case held == ButtonNone:
		out.Action = ActionMove

	case c.drag.isActive() && c.drag.getButton() == held:
		out.Action = ActionDrag

	default:
		// A different button while another is held counts as a new press.
		out.Action = ActionPress
		c.drag.start(held)
	}

	return out
}

// Reset forgets any held button, as if it had been released off-screen.
func (c *Classifier) Reset() {
	c.drag.end()
}
