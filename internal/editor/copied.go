package editor

import "time"

// DefaultCopiedDuration is how long the Copy button reads "Copied".
const DefaultCopiedDuration = 3 * time.Second

// CopiedIndicator tracks the confirmation window after a copy. Each
// trigger restarts the window.
type CopiedIndicator struct {
	duration time.Duration
	until    time.Time
}

// NewCopiedIndicator creates an indicator that stays on for duration.
// A non-positive duration uses DefaultCopiedDuration.
func NewCopiedIndicator(duration time.Duration) *CopiedIndicator {
	if duration <= 0 {
		duration = DefaultCopiedDuration
	}
	return &CopiedIndicator{duration: duration}
}

// SetDuration changes the window length for later triggers.
func (c *CopiedIndicator) SetDuration(d time.Duration) {
	if d > 0 {
		c.duration = d
	}
}

// Trigger starts (or restarts) the window at now and returns its end.
func (c *CopiedIndicator) Trigger(now time.Time) time.Time {
	c.until = now.Add(c.duration)
	return c.until
}

// Active reports whether the window is open at now.
func (c *CopiedIndicator) Active(now time.Time) bool {
	return !c.until.IsZero() && now.Before(c.until)
}

// Deadline returns the end of the current window, zero if never triggered.
func (c *CopiedIndicator) Deadline() time.Time {
	return c.until
}
