// Package chartspec parses, validates and re-serialises chart documents.
//
// A chart document is JSON with a "data" array of traces and optional
// "layout" and "config" objects. The package reports two kinds of failure:
// ParseError for text that is not JSON and ValidationError for JSON without
// an array-typed "data" field.
package chartspec

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// Field names.
const (
	FieldData   = "data"
	FieldLayout = "layout"
	FieldConfig = "config"
)

// Spec is a parsed and validated chart document. It is immutable.
type Spec struct {
	raw  string
	root gjson.Result
}

// Parse parses and validates text. Blank text returns ErrEmpty without
// attempting a parse.
func Parse(text string) (*Spec, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmpty
	}
	if err := checkSyntax(text); err != nil {
		return nil, err
	}

	root := gjson.ParseBytes(resolve(gjson.Parse(text)))
	if !root.IsObject() || !root.Get(FieldData).IsArray() {
		return nil, &ValidationError{Field: FieldData}
	}

	return &Spec{raw: text, root: root}, nil
}

// Raw returns the source text the spec was parsed from. Duplicate keys are
// still present; the accessors below see only the last value of each.
func (s *Spec) Raw() string {
	return s.raw
}

// Data returns the trace collection.
func (s *Spec) Data() gjson.Result {
	return s.root.Get(FieldData)
}

// Traces returns the traces in document order.
func (s *Spec) Traces() []gjson.Result {
	return s.Data().Array()
}

// TraceCount returns the number of traces.
func (s *Spec) TraceCount() int {
	return len(s.Traces())
}

// Layout returns the layout object. It does not exist when absent.
func (s *Spec) Layout() gjson.Result {
	return s.root.Get(FieldLayout)
}

// Config returns the config object. It does not exist when absent.
func (s *Spec) Config() gjson.Result {
	return s.root.Get(FieldConfig)
}

// checkSyntax reports whether text is a single well-formed JSON value.
func checkSyntax(text string) error {
	var raw json.RawMessage
	err := json.Unmarshal([]byte(text), &raw)
	if err == nil {
		return nil
	}

	perr := &ParseError{Reason: err.Error(), Err: err}
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		perr.Offset = syn.Offset
		perr.Line, perr.Column = position(text, syn.Offset)
	}
	return perr
}

// position converts a parser byte offset into a 1-based line and column.
// The parser reports the offset after the offending byte.
func position(text string, offset int64) (line, col int) {
	off := int(offset)
	if off > 0 {
		off--
	}
	off = min(max(off, 0), len(text))

	head := []byte(text[:off])
	line = bytes.Count(head, []byte{'\n'}) + 1
	col = off - (bytes.LastIndexByte(head, '\n') + 1) + 1
	return line, col
}
