package preview

import (
	"strconv"
	"strings"
)

// Dimension defaults, in pixels.
const (
	DefaultWidth  = 700
	DefaultHeight = 500

	// MinDimension is the smallest accepted width or height. Smaller
	// values fall back to the default.
	MinDimension = 100

	// MaxDimensionDigits limits what the size fields accept.
	MaxDimensionDigits = 4
)

// Size is a chart size in pixels.
type Size struct {
	Width  int
	Height int
}

// DefaultSize returns 700x500.
func DefaultSize() Size {
	return Size{Width: DefaultWidth, Height: DefaultHeight}
}

// ParseDimension reads the leading digits of text. A missing number or one
// below floor returns def.
func ParseDimension(text string, def, floor int) int {
	text = strings.TrimSpace(text)
	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return def
	}
	return NormalizeDimension(n, def, floor)
}

// NormalizeDimension returns n, or def when n is below floor.
func NormalizeDimension(n, def, floor int) int {
	if n < floor {
		return def
	}
	return n
}

// Dimensions holds the pending size being edited and the applied size the
// chart is drawn at. Pending values have no effect until Apply.
type Dimensions struct {
	defaults Size
	floor    int
	pending  Size
	applied  Size
}

// NewDimensions starts both sizes at defaults. Defaults below floor are
// replaced by 700x500.
func NewDimensions(defaults Size, floor int) *Dimensions {
	if floor <= 0 {
		floor = MinDimension
	}
	defaults.Width = NormalizeDimension(defaults.Width, DefaultWidth, floor)
	defaults.Height = NormalizeDimension(defaults.Height, DefaultHeight, floor)
	return &Dimensions{defaults: defaults, floor: floor, pending: defaults, applied: defaults}
}

// Defaults returns the fallback size.
func (d *Dimensions) Defaults() Size {
	return d.defaults
}

// Floor returns the smallest accepted value.
func (d *Dimensions) Floor() int {
	return d.floor
}

// Pending returns the size that Apply would adopt.
func (d *Dimensions) Pending() Size {
	return d.pending
}

// Applied returns the size the chart is drawn at.
func (d *Dimensions) Applied() Size {
	return d.applied
}

// CommitWidth sets the pending width from field text and returns the value
// adopted.
func (d *Dimensions) CommitWidth(text string) int {
	d.pending.Width = ParseDimension(text, d.defaults.Width, d.floor)
	return d.pending.Width
}

// CommitHeight sets the pending height from field text and returns the
// value adopted.
func (d *Dimensions) CommitHeight(text string) int {
	d.pending.Height = ParseDimension(text, d.defaults.Height, d.floor)
	return d.pending.Height
}

// Apply copies the pending size into the applied size and reports whether
// the applied size changed.
func (d *Dimensions) Apply() bool {
	if d.applied == d.pending {
		return false
	}
	d.applied = d.pending
	return true
}
