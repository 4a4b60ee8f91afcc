package chartspec

import (
	"errors"
	"fmt"
)

// User-facing messages.
const (
	// GenericParseMessage is shown when the parser gives no reason.
	GenericParseMessage = "Invalid JSON format. Please check your input."

	// ValidationMessage is the fixed text of a ValidationError.
	ValidationMessage = "Invalid chart spec: 'data' field must be an array"

	// PrettifyFailedMessage is the notice shown when prettify cannot parse
	// the document.
	PrettifyFailedMessage = "Invalid JSON: Cannot prettify"
)

// ErrEmpty is returned by Parse for a document that is blank after trimming
// whitespace. A blank document is never parsed.
var ErrEmpty = errors.New("empty document")

// ParseError reports text that is not well-formed JSON.
type ParseError struct {
	Reason string // parser's own message, may be empty
	Offset int64  // byte offset the parser stopped at
	Line   int    // 1-based
	Column int    // 1-based, in bytes
	Err    error  // underlying parser error
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return GenericParseMessage
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d, column %d)", e.Reason, e.Line, e.Column)
	}
	return e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a well-formed document without a usable trace
// collection.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return ValidationMessage
}

// Message returns the text the preview shows for a render failure.
func Message(err error) string {
	var perr *ParseError
	if errors.As(err, &perr) && perr.Reason == "" {
		return GenericParseMessage
	}
	if err == nil {
		return ""
	}
	return "Error: " + err.Error()
}

// ErrorLine returns the 0-based line a parse error points at, or -1.
func ErrorLine(err error) int {
	var perr *ParseError
	if errors.As(err, &perr) && perr.Line > 0 {
		return perr.Line - 1
	}
	return -1
}
