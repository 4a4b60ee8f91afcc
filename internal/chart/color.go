package chart

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// defaultColorway is the trace colour cycle used when neither the trace nor
// layout.colorway picks one.
var defaultColorway = []string{
	"#636efa", "#ef553b", "#00cc96", "#ab63fa", "#ffa15a",
	"#19d3f3", "#ff6692", "#b6e880", "#ff97ff", "#fecb52",
}

var namedColors = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"red":       "#ff0000",
	"green":     "#008000",
	"blue":      "#0000ff",
	"yellow":    "#ffff00",
	"orange":    "#ffa500",
	"purple":    "#800080",
	"gray":      "#808080",
	"grey":      "#808080",
	"steelblue": "#4682b4",
	"teal":      "#008080",
	"navy":      "#000080",
	"gold":      "#ffd700",
	"crimson":   "#dc143c",
}

// Palette hands out trace colours in order.
type Palette struct {
	colors []colorful.Color
}

// NewPalette builds a palette from CSS colour strings. Unparseable entries
// are skipped; an empty result falls back to the default colourway.
func NewPalette(colorway []string) Palette {
	var p Palette
	for _, s := range colorway {
		if c, ok := ParseColor(s); ok {
			p.colors = append(p.colors, c)
		}
	}
	if len(p.colors) == 0 {
		for _, s := range defaultColorway {
			c, _ := ParseColor(s)
			p.colors = append(p.colors, c)
		}
	}
	return p
}

// At returns the colour for the i-th trace.
func (p Palette) At(i int) colorful.Color {
	if i < 0 {
		i = -i
	}
	return p.colors[i%len(p.colors)]
}

// ParseColor parses "#rgb", "#rrggbb", "rgb(r, g, b)", "rgba(r, g, b, a)"
// and a small set of CSS colour names.
func ParseColor(s string) (colorful.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		return c, err == nil
	}

	var body string
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body = s[5 : len(s)-1]
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body = s[4 : len(s)-1]
	default:
		return colorful.Color{}, false
	}

	parts := strings.Split(body, ",")
	if len(parts) < 3 {
		return colorful.Color{}, false
	}
	var rgb [3]float64
	for i := range rgb {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return colorful.Color{}, false
		}
		rgb[i] = min(max(v, 0), 255) / 255
	}
	return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, true
}
