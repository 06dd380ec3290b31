package app

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Metrics tracks session counters. Recording is lock free so the log
// can snapshot it from any goroutine.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMaxNs   atomic.Int64
	cellsWritten atomic.Uint64

	// Commands applied
	commandCount   atomic.Uint64
	commandTotalNs atomic.Int64

	// Sink calls made by the renderer, as running totals
	sinkMoves  atomic.Uint64
	sinkWrites atomic.Uint64

	// Config reloads
	reloadCount atomic.Uint64

	// Start time for uptime calculation
	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records one render pass and the cells it wrote.
func (m *Metrics) RecordFrame(duration time.Duration, cells int) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.cellsWritten.Add(uint64(max(0, cells)))

	// Update max (atomic compare-and-swap loop)
	for {
		old := m.frameMaxNs.Load()
		if ns <= old {
			break
		}
		if m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordCommand records one applied command.
func (m *Metrics) RecordCommand(duration time.Duration) {
	m.commandCount.Add(1)
	m.commandTotalNs.Add(duration.Nanoseconds())
}

// RecordSink stores the renderer's running totals of cursor moves and
// text writes sent to the sink.
func (m *Metrics) RecordSink(moves, writes uint64) {
	m.sinkMoves.Store(moves)
	m.sinkWrites.Store(writes)
}

// RecordReload records a configuration reload.
func (m *Metrics) RecordReload() {
	m.reloadCount.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frames := m.frameCount.Load()
	commands := m.commandCount.Load()

	var avgFrameNs int64
	if frames > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frames)
	}

	var avgCommandNs int64
	if commands > 0 {
		avgCommandNs = m.commandTotalNs.Load() / int64(commands)
	}

	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		FrameCount:     frames,
		AvgFrameTimeNs: avgFrameNs,
		MaxFrameTimeNs: m.frameMaxNs.Load(),
		CellsWritten:   m.cellsWritten.Load(),
		CommandCount:   commands,
		AvgCommandNs:   avgCommandNs,
		ReloadCount:    m.reloadCount.Load(),
		SinkMoves:      m.sinkMoves.Load(),
		SinkWrites:     m.sinkWrites.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTimeNs int64
	MaxFrameTimeNs int64
	CellsWritten   uint64
	CommandCount   uint64
	AvgCommandNs   int64
	ReloadCount    uint64
	SinkMoves      uint64
	SinkWrites     uint64
}

// String formats the snapshot for the log.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("frames=%d cells=%d commands=%d reloads=%d moves=%d writes=%d avg_frame=%s max_frame=%s uptime=%s",
		s.FrameCount, s.CellsWritten, s.CommandCount, s.ReloadCount, s.SinkMoves, s.SinkWrites,
		time.Duration(s.AvgFrameTimeNs), time.Duration(s.MaxFrameTimeNs), s.Uptime.Round(time.Millisecond))
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
