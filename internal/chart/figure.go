// Package chart is the boundary between chart documents and the rendering
// engines.
//
// NewFigure builds what an engine consumes from a validated spec: the traces,
// the layout with width and height forced to the applied size and autosize
// off, and the config (defaulting to {"responsive": true}). Interpret reduces
// a Figure to a Model the terminal and image engines can both draw.
package chart

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/plotview/internal/chartspec"
)

// DefaultConfig is used when the document has no usable config.
const DefaultConfig = `{"responsive":true}`

// Figure is the input of a rendering engine.
type Figure struct {
	Traces string // JSON array
	Layout string // JSON object
	Config string // JSON value
	Width  int
	Height int
}

// NewFigure builds a figure for spec at the given pixel size.
func NewFigure(spec *chartspec.Spec, width, height int) (Figure, error) {
	layout := "{}"
	if l := spec.Layout(); l.IsObject() {
		layout = l.Raw
	}

	var err error
	if layout, err = sjson.Set(layout, "width", width); err != nil {
		return Figure{}, fmt.Errorf("set layout width: %w", err)
	}
	if layout, err = sjson.Set(layout, "height", height); err != nil {
		return Figure{}, fmt.Errorf("set layout height: %w", err)
	}
	if layout, err = sjson.Set(layout, "autosize", false); err != nil {
		return Figure{}, fmt.Errorf("set layout autosize: %w", err)
	}

	config := DefaultConfig
	if c := spec.Config(); truthy(c) {
		config = c.Raw
	}

	return Figure{
		Traces: spec.Data().Raw,
		Layout: layout,
		Config: config,
		Width:  width,
		Height: height,
	}, nil
}

// TraceList returns the traces in order.
func (f Figure) TraceList() []gjson.Result {
	return gjson.Parse(f.Traces).Array()
}

// LayoutValue returns the layout field at path.
func (f Figure) LayoutValue(path string) gjson.Result {
	return gjson.Get(f.Layout, path)
}

// JSON returns the figure as a single {"data","layout","config"} document.
func (f Figure) JSON() (string, error) {
	out := "{}"
	var err error
	for _, kv := range []struct{ key, raw string }{
		{"data", f.Traces},
		{"layout", f.Layout},
		{"config", f.Config},
	} {
		if out, err = sjson.SetRaw(out, kv.key, kv.raw); err != nil {
			return "", fmt.Errorf("set %s: %w", kv.key, err)
		}
	}
	return out, nil
}

// truthy mirrors the loose "is this value set" test chart documents expect:
// null, false, 0 and "" count as absent.
func truthy(r gjson.Result) bool {
	if !r.Exists() {
		return false
	}
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	default:
		return true
	}
}
