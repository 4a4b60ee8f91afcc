// Package layout arranges the editor and preview panes side by side with a
// draggable divider between them.
package layout

import (
	"github.com/dshills/plotview/internal/renderer/core"
)

// Split bounds and defaults, in percent of the container width.
const (
	MinPercent     = 5.0
	MaxPercent     = 95.0
	DefaultPercent = 50.0

	// DividerWidth is the width of the divider in columns.
	DividerWidth = 1
)

// Bounds limits the split percentage. Both ends are inclusive.
type Bounds struct {
	Min float64
	Max float64
}

// DefaultBounds returns [5, 95].
func DefaultBounds() Bounds {
	return Bounds{Min: MinPercent, Max: MaxPercent}
}

// Normalize narrows b to lie within [5, 95]. A bound pair that is empty
// after narrowing falls back to the defaults.
func (b Bounds) Normalize() Bounds {
	b.Min = max(b.Min, MinPercent)
	b.Max = min(b.Max, MaxPercent)
	if b.Min >= b.Max {
		return DefaultBounds()
	}
	return b
}

// Contains reports whether p lies within the bounds.
func (b Bounds) Contains(p float64) bool {
	return p >= b.Min && p <= b.Max
}

// Split is the split layout container. Its percentage only changes during
// a drag session and always stays within its bounds.
type Split struct {
	percent   float64
	bounds    Bounds
	container core.ScreenRect
	session   *DragSession
}

// NewSplit creates a split with the given initial percentage and bounds.
// An initial value outside the bounds is replaced by 50, or by the middle of
// the bounds when 50 is outside them too.
func NewSplit(initial float64, bounds Bounds) *Split {
	bounds = bounds.Normalize()
	if !bounds.Contains(initial) {
		initial = DefaultPercent
		if !bounds.Contains(initial) {
			initial = (bounds.Min + bounds.Max) / 2
		}
	}
	return &Split{percent: initial, bounds: bounds}
}

// Percent returns the share of the container width given to the left pane.
func (s *Split) Percent() float64 {
	return s.percent
}

// Bounds returns the split bounds.
func (s *Split) Bounds() Bounds {
	return s.bounds
}

// Dragging reports whether a drag session is active.
func (s *Split) Dragging() bool {
	return s.session != nil
}

// Arrange records the container rectangle and divides it into the left
// pane, the divider column and the right pane.
func (s *Split) Arrange(container core.ScreenRect) (left, divider, right core.ScreenRect) {
	s.container = container

	w := container.Width()
	if w <= DividerWidth {
		left, rest := container.SplitLeft(0)
		divider, right = rest.SplitLeft(w)
		return left, divider, right
	}

	leftW := int(s.percent * float64(w) / 100)
	leftW = min(max(leftW, 0), w-DividerWidth)

	left, rest := container.SplitLeft(leftW)
	divider, right = rest.SplitLeft(DividerWidth)
	return left, divider, right
}

// OnDivider reports whether (x, y) hits the divider. The hit area extends
// one column to each side so the one-column divider is easy to grab.
func (s *Split) OnDivider(x, y int) bool {
	_, div, _ := s.Arrange(s.container)
	if div.IsEmpty() {
		return false
	}
	return y >= div.Top && y < div.Bottom && x >= div.Left-1 && x <= div.Right
}

// percentAt converts a pointer column into a percentage of the container.
func (s *Split) percentAt(x int) (float64, bool) {
	w := s.container.Width()
	if w <= 0 {
		return 0, false
	}
	return float64(x-s.container.Left) / float64(w) * 100, true
}

// BeginDrag starts a drag session. If one is already active it is returned
// unchanged.
func (s *Split) BeginDrag() *DragSession {
	if s.session == nil {
		s.session = &DragSession{split: s}
	}
	return s.session
}

// EndDrag ends the active drag session, if any. It is used when a drag is
// interrupted by focus loss, resize or shutdown.
func (s *Split) EndDrag() {
	if s.session != nil {
		s.session.End()
	}
}

// DragSession is a scoped drag of the divider. Pointer moves are only
// applied while the session is live; End releases it and is idempotent.
type DragSession struct {
	split *Split
	ended bool
}

// Move applies a pointer move at column x anywhere on screen. The computed
// percentage is adopted only when it lies within the split bounds; any other
// position leaves the previous value in place. It reports whether the value
// was adopted.
func (d *DragSession) Move(x int) bool {
	if d.ended {
		return false
	}
	p, ok := d.split.percentAt(x)
	if !ok || !d.split.bounds.Contains(p) {
		return false
	}
	d.split.percent = p
	return true
}

// Active reports whether the session has not ended.
func (d *DragSession) Active() bool {
	return !d.ended
}

// End releases the session. Calling End more than once is safe.
func (d *DragSession) End() {
	if d.ended {
		return
	}
	d.ended = true
	if d.split.session == d {
		d.split.session = nil
	}
}
