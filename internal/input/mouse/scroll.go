package mouse

import "github.com/dshills/plotview/internal/renderer/backend"

// ScrollDirection represents the direction of a scroll event.
type ScrollDirection uint8

const (
	// ScrollNone indicates no scroll.
	ScrollNone ScrollDirection = iota
	// ScrollUp indicates scrolling up (content moves down).
	ScrollUp
	// ScrollDown indicates scrolling down (content moves up).
	ScrollDown
)

// String returns a string representation of the scroll direction.
func (d ScrollDirection) String() string {
	switch d {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	default:
		return "none"
	}
}

// ScrollConfig configures wheel scrolling.
type ScrollConfig struct {
	// Lines is the number of lines to scroll per wheel tick.
	Lines int

	// LinesShift is the number of lines when Shift is held.
	LinesShift int
}

// DefaultScrollConfig returns the default wheel configuration.
func DefaultScrollConfig() ScrollConfig {
	return ScrollConfig{Lines: 3, LinesShift: 1}
}

// ParseScroll converts a scroll event into a signed line delta: negative
// scrolls toward the top of the document. Non-scroll events return 0.
func ParseScroll(event Event, config ScrollConfig) int {
	if event.Action != ActionScroll {
		return 0
	}

	lines := config.Lines
	if event.Modifiers.Has(backend.ModShift) {
		lines = config.LinesShift
	}

	switch event.Button {
	case ButtonScrollUp:
		return -lines
	case ButtonScrollDown:
		return lines
	default:
		return 0
	}
}

// Direction returns the scroll direction of the event.
func Direction(event Event) ScrollDirection {
	switch event.Button {
	case ButtonScrollUp:
		return ScrollUp
	case ButtonScrollDown:
		return ScrollDown
	default:
		return ScrollNone
	}
}
