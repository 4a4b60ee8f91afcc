package config

import (
	"errors"
	"fmt"

	"github.com/dshills/plotview/internal/config/loader"
)

// ErrFileNotFound is returned when an explicitly named config file does not
// exist.
var ErrFileNotFound = errors.New("config file not found")

// ParseError reports a config file that could not be parsed.
type ParseError = loader.ParseError

// ValidationError describes a setting that was out of range and replaced by
// its default.
type ValidationError struct {
	// Path is the dotted setting path, e.g. "layout.min_split".
	Path string
	// Message describes what was wrong.
	Message string
	// Value is the rejected value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s (got %v)", e.Path, e.Message, e.Value)
}

// IsParseError reports whether err is or wraps a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
