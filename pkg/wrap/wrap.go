// Package wrap provides modular-arithmetic counter types for RTP sequence
// numbers (16-bit) and media timestamps (32-bit). Both are expected to
// overflow during normal operation; ordering treats each counter as a ring,
// so 0x0000 is the successor of 0xFFFF, not a smaller value.
package wrap

// Seq is an RTP sequence number under 16-bit wraparound arithmetic.
type Seq uint16

// Add returns s advanced by n, wrapping modulo 2^16.
func (s Seq) Add(n uint16) Seq { return s + Seq(n) }

// Sub returns s rewound by n, wrapping modulo 2^16.
func (s Seq) Sub(n uint16) Seq { return s - Seq(n) }

// Next returns the successor of s.
func (s Seq) Next() Seq { return s + 1 }

// Before reports whether s precedes o on the ring, using the signed
// half-range comparison from RFC 1982 serial number arithmetic.
func (s Seq) Before(o Seq) bool { return int16(s-o) < 0 }

// After reports whether s follows o on the ring.
func (s Seq) After(o Seq) bool { return int16(s-o) > 0 }

// Timestamp is an RTP media timestamp under 32-bit wraparound arithmetic.
type Timestamp uint32

// Add returns t advanced by n, wrapping modulo 2^32.
func (t Timestamp) Add(n uint32) Timestamp { return t + Timestamp(n) }

// Sub returns t rewound by n, wrapping modulo 2^32.
func (t Timestamp) Sub(n uint32) Timestamp { return t - Timestamp(n) }

// Next returns the successor of t.
func (t Timestamp) Next() Timestamp { return t + 1 }

// Before reports whether t precedes o on the ring.
func (t Timestamp) Before(o Timestamp) bool { return int32(t-o) < 0 }

// After reports whether t follows o on the ring.
func (t Timestamp) After(o Timestamp) bool { return int32(t-o) > 0 }
