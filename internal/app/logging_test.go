package app

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"DEBUG", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"Warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLogLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLogLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: slog.LevelInfo, Output: &buf, NoColor: true})

	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("info message missing: %q", out)
	}

	buf.Reset()
	logger.SetLevel(slog.LevelDebug)
	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("debug message missing after SetLevel: %q", buf.String())
	}
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: slog.LevelDebug, Output: &buf, NoColor: true})

	logger.WithComponent("controller").Warn("render acknowledged", "render_id", "r1")

	out := buf.String()
	for _, want := range []string{"render acknowledged", "component=controller", "render_id=r1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestLogger_DerivedSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: slog.LevelError, Output: &buf, NoColor: true})
	child := logger.WithComponent("preview")

	logger.SetLevel(slog.LevelInfo)
	child.Info("from child")

	if !strings.Contains(buf.String(), "from child") {
		t.Errorf("child did not follow parent level: %q", buf.String())
	}
	if !child.Enabled(slog.LevelInfo) {
		t.Error("Enabled(info) = false after SetLevel(info)")
	}
}

func TestNullLogger(t *testing.T) {
	// Must not panic.
	NullLogger.Debug("debug")
	NullLogger.Info("info")
	NullLogger.WithComponent("x").Warn("warn", "k", 1)
	NullLogger.Error("error")
	if NullLogger.Enabled(slog.LevelError) {
		t.Error("NullLogger should not be enabled")
	}
}
