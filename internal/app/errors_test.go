package app

import (
	"errors"
	"fmt"
	"testing"
)

func TestInitError(t *testing.T) {
	cause := errors.New("no tty")
	err := &InitError{Component: "backend", Err: cause}

	if got := err.Error(); got != "init backend: no tty" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("InitError should unwrap to its cause")
	}
}

func TestIsQuit(t *testing.T) {
	if !IsQuit(ErrQuit) {
		t.Error("IsQuit(ErrQuit) = false")
	}
	if !IsQuit(fmt.Errorf("loop: %w", ErrQuit)) {
		t.Error("IsQuit should see through wrapping")
	}
	if IsQuit(ErrNoBackend) {
		t.Error("IsQuit(ErrNoBackend) = true")
	}
}
