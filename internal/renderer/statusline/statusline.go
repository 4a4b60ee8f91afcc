// Package statusline renders the bottom row of the screen: a transient
// notice on the left and cursor or drag information on the right.
package statusline

import (
	"strconv"
	"time"

	"github.com/dshills/plotview/internal/renderer/backend"
	"github.com/dshills/plotview/internal/renderer/core"
	"github.com/dshills/plotview/internal/renderer/widget"
)

// Level indicates the severity of a notice.
type Level int

const (
	LevelNone Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "none"
	}
}

// Styles holds the styles used for each part of the status line.
type Styles struct {
	Bar     core.Style
	Info    core.Style
	Warning core.Style
	Error   core.Style
	Drag    core.Style
}

// DefaultStyles returns the built-in status line styles.
func DefaultStyles() Styles {
	bar := core.DefaultStyle().
		WithBackground(core.ColorFromRGB(30, 41, 59)).
		WithForeground(core.ColorFromRGB(203, 213, 225))
	return Styles{
		Bar:     bar,
		Info:    bar,
		Warning: bar.WithForeground(core.ColorFromRGB(250, 204, 21)),
		Error:   bar.WithForeground(core.ColorFromRGB(248, 113, 113)).Bold(),
		Drag:    bar.WithForeground(core.ColorFromRGB(96, 165, 250)).Bold(),
	}
}

// StatusLine renders the bottom status line.
type StatusLine struct {
	message string
	level   Level
	expires time.Time

	line int // 0-based
	col  int // 0-based
	hint string

	dragging bool
	percent  int

	styles Styles
}

// New creates an empty status line.
func New(styles Styles) *StatusLine {
	return &StatusLine{styles: styles}
}

// SetStyles replaces the styles, e.g. after a theme reload.
func (s *StatusLine) SetStyles(styles Styles) {
	s.styles = styles
}

// SetMessage shows a notice until expires. A zero expires keeps it until
// it is replaced or cleared.
func (s *StatusLine) SetMessage(msg string, level Level, expires time.Time) {
	s.message = msg
	s.level = level
	s.expires = expires
}

// ClearMessage removes the notice.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.level = LevelNone
	s.expires = time.Time{}
}

// Message returns the notice visible at now.
func (s *StatusLine) Message(now time.Time) (string, Level) {
	if s.message == "" {
		return "", LevelNone
	}
	if !s.expires.IsZero() && !now.Before(s.expires) {
		return "", LevelNone
	}
	return s.message, s.level
}

// SetPosition updates the editor cursor position (0-based).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetHint sets the text shown after the position, usually the key help.
func (s *StatusLine) SetHint(hint string) {
	s.hint = hint
}

// SetDrag shows the split percentage while a divider drag is active.
func (s *StatusLine) SetDrag(active bool, percent int) {
	s.dragging = active
	s.percent = percent
}

// Render draws the status line across width columns of row.
func (s *StatusLine) Render(b backend.Backend, row, width int, now time.Time) {
	if width <= 0 {
		return
	}
	b.Fill(core.RectFromSize(row, 0, 1, width), core.NewStyledCell(' ', s.styles.Bar))

	right := s.rightText()
	rightStyle := s.styles.Bar
	if s.dragging {
		rightStyle = s.styles.Drag
	}
	rightStart := width - core.StringWidth(right) - 1
	if rightStart < 0 {
		rightStart = 0
	}

	if msg, level := s.Message(now); msg != "" {
		widget.DrawText(b, 1, row, rightStart-1, widget.Truncate(msg, rightStart-2), s.levelStyle(level))
	}
	widget.DrawText(b, rightStart, row, width, right, rightStyle)
}

func (s *StatusLine) rightText() string {
	if s.dragging {
		return "Split " + strconv.Itoa(s.percent) + "%"
	}
	text := formatPosition(s.line, s.col)
	if s.hint != "" {
		text += " | " + s.hint
	}
	return text
}

func (s *StatusLine) levelStyle(level Level) core.Style {
	switch level {
	case LevelError:
		return s.styles.Error
	case LevelWarning:
		return s.styles.Warning
	default:
		return s.styles.Info
	}
}

// formatPosition formats a 0-based position as "Ln 12, Col 4".
func formatPosition(line, col int) string {
	return "Ln " + strconv.Itoa(line+1) + ", Col " + strconv.Itoa(col+1)
}
