package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts frames, chart renders and input events for the session
// summary written to the log at shutdown. It may be read from any
// goroutine.
type Metrics struct {
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMaxNs   atomic.Int64

	renderCount   atomic.Uint64
	renderFailed  atomic.Uint64
	renderTotalNs atomic.Int64

	eventCount atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a metrics tracker started now.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records the time taken to draw one frame.
func (m *Metrics) RecordFrame(d time.Duration) {
	ns := d.Nanoseconds()
	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordRender records one chart render and whether it produced an error.
func (m *Metrics) RecordRender(d time.Duration, failed bool) {
	m.renderCount.Add(1)
	m.renderTotalNs.Add(d.Nanoseconds())
	if failed {
		m.renderFailed.Add(1)
	}
}

// RecordEvent records one handled terminal event.
func (m *Metrics) RecordEvent() {
	m.eventCount.Add(1)
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime       time.Duration
	FrameCount   uint64
	AvgFrame     time.Duration
	MaxFrame     time.Duration
	RenderCount  uint64
	RenderFailed uint64
	AvgRender    time.Duration
	EventCount   uint64
}

// Snapshot returns the current values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Uptime:       time.Since(m.startTime),
		FrameCount:   m.frameCount.Load(),
		MaxFrame:     time.Duration(m.frameMaxNs.Load()),
		RenderCount:  m.renderCount.Load(),
		RenderFailed: m.renderFailed.Load(),
		EventCount:   m.eventCount.Load(),
	}
	if s.FrameCount > 0 {
		s.AvgFrame = time.Duration(m.frameTotalNs.Load() / int64(s.FrameCount))
	}
	if s.RenderCount > 0 {
		s.AvgRender = time.Duration(m.renderTotalNs.Load() / int64(s.RenderCount))
	}
	return s
}

// LogArgs returns the snapshot as slog key/value pairs.
func (s MetricsSnapshot) LogArgs() []any {
	return []any{
		"uptime", s.Uptime.Round(time.Second),
		"frames", s.FrameCount,
		"avg_frame", s.AvgFrame,
		"max_frame", s.MaxFrame,
		"renders", s.RenderCount,
		"render_errors", s.RenderFailed,
		"avg_render", s.AvgRender,
		"events", s.EventCount,
	}
}
