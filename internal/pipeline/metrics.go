// Package pipeline implements pipeline metrics.
package pipeline

import (
	"sync/atomic"
)

// Metrics contains per-pipeline metrics counters.
type Metrics struct {
	// Packet counters (using atomic for thread-safety)
	Received      atomic.Uint64
	Decoded       atomic.Uint64
	DecodeSkipped atomic.Uint64 // non-UDP frames
	Inspected     atomic.Uint64
	InspectErrors atomic.Uint64
	Sent          atomic.Uint64
	SendErrors    atomic.Uint64

	// Per-kind counters
	RTP       atomic.Uint64
	RTCP      atomic.Uint64
	Discovery atomic.Uint64
	Keepalive atomic.Uint64
	Unknown   atomic.Uint64
}

// NewMetrics creates a new metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Reset resets all counters to zero.
func (m *Metrics) Reset() {
	m.Received.Store(0)
	m.Decoded.Store(0)
	m.DecodeSkipped.Store(0)
	m.Inspected.Store(0)
	m.InspectErrors.Store(0)
	m.Sent.Store(0)
	m.SendErrors.Store(0)
	m.RTP.Store(0)
	m.RTCP.Store(0)
	m.Discovery.Store(0)
	m.Keepalive.Store(0)
	m.Unknown.Store(0)
}

// countKind bumps the per-kind counter for a classification result.
func (m *Metrics) countKind(kind string) {
	switch kind {
	case "rtp":
		m.RTP.Add(1)
	case "rtcp":
		m.RTCP.Add(1)
	case "discovery":
		m.Discovery.Add(1)
	case "keepalive":
		m.Keepalive.Add(1)
	default:
		m.Unknown.Add(1)
	}
}
