package rtcp

import (
	"fmt"

	"firestige.xyz/strix/pkg/wire"
)

// peekLen is the prefix needed to identify the next sub-packet: the first
// header word through the declared length field.
const peekLen = 4

// Compound walks a buffer of back-to-back RTCP sub-packets, in the style of
// bufio.Scanner:
//
//	c := rtcp.NewCompound(buf)
//	for c.Next() {
//	    handle(c.Packet())
//	}
//	if err := c.Err(); err != nil {
//	    // declared length overran the buffer; c.Offset() marks the spot
//	}
//	if rest := c.Trailing(); rest != nil {
//	    // remainder too short to form another header; preserved, not dropped
//	}
//
// Each sub-packet view covers exactly the 4*(length+1) bytes its header
// declares. A declared length landing exactly on the buffer's end is a
// valid terminal sub-packet; overshooting it terminates the walk with
// ErrInsufficientData. The walk is not restartable after a failure — the
// cursor stays at the offending sub-packet.
type Compound struct {
	buf      []byte
	off      int
	pkt      *Packet
	trailing []byte
	err      error
	done     bool
}

// NewCompound returns a walker over buf. The walker and every view it
// produces alias buf.
func NewCompound(buf []byte) *Compound {
	return &Compound{buf: buf}
}

// Next advances to the next sub-packet, reporting whether one was decoded.
// It returns false when the buffer is exhausted, the remainder is too short
// to identify a sub-packet, or a declared length overran the buffer.
func (c *Compound) Next() bool {
	if c.done {
		return false
	}
	c.pkt = nil

	rem := c.buf[c.off:]
	if len(rem) == 0 {
		c.done = true
		return false
	}
	if len(rem) < peekLen {
		c.trailing = rem
		c.done = true
		return false
	}

	size := 4 * (int(wire.Uint16(rem, 2)) + 1)
	sub, err := wire.Slice(rem, 0, size)
	if err != nil {
		c.err = fmt.Errorf("rtcp: compound sub-packet at offset %d: %w", c.off, err)
		c.done = true
		return false
	}

	pkt, err := Decode(sub)
	if err != nil {
		c.err = fmt.Errorf("rtcp: compound sub-packet at offset %d: %w", c.off, err)
		c.done = true
		return false
	}

	c.pkt = pkt
	c.off += size
	return true
}

// Packet returns the sub-packet decoded by the last successful Next.
func (c *Compound) Packet() *Packet { return c.pkt }

// Trailing returns leftover bytes too short to form another sub-packet, or
// nil when the walk consumed the buffer exactly.
func (c *Compound) Trailing() []byte { return c.trailing }

// Err returns the length-validation failure that terminated the walk, if
// any.
func (c *Compound) Err() error { return c.err }

// Offset returns the cursor position: the byte offset of the next
// sub-packet, or of the one that failed.
func (c *Compound) Offset() int { return c.off }
