// Package core defines the data structures shared by the inspector pipeline.
package core

import (
	"net/netip"
	"time"
)

// RawPacket is a captured frame before any decoding.
type RawPacket struct {
	Data       []byte    // Raw frame data, zero-copy slice
	Timestamp  time.Time // Capture timestamp
	CaptureLen uint32    // Actual captured length
	OrigLen    uint32    // Original frame length
}

// DecodedPacket is the result of L2-L4 decoding: the UDP datagram payload
// plus the flow it belongs to.
type DecodedPacket struct {
	Timestamp time.Time
	SrcIP     netip.Addr
	DstIP     netip.Addr
	SrcPort   uint16
	DstPort   uint16
	Payload   []byte // UDP payload, zero-copy slice into the frame
}

// OutputPacket is the final inspection result sent to sinks.
type OutputPacket struct {
	Timestamp time.Time

	// Network context
	SrcIP   netip.Addr
	DstIP   netip.Addr
	SrcPort uint16
	DstPort uint16

	// Classification result, e.g. "rtp", "rtcp", "discovery", "keepalive", "unknown"
	PayloadKind string

	// Labels — inspector annotations
	Labels Labels

	// Raw UDP payload (optional preservation)
	RawPayload []byte
}
