// Package rtp implements zero-copy read and write views over RTP packets
// (RFC 3550 §5.1).
//
// Fixed header layout, all integers big-endian:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|V=2|P|X|  CC   |M|     PT      |       sequence number         |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                           timestamp                           |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|           synchronization source (SSRC) identifier            |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|            contributing source (CSRC) identifiers             |
//	|                             ....                              |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// A view borrows the caller's buffer and must not outlive it. Construction
// fails only when too few bytes are present for the fixed header plus the
// CSRC list the header declares — never because a field holds a semantically
// odd value. Non-compliant peers send packets with wrong versions and
// reserved payload types, and those must still be inspectable; stricter
// validation belongs to a calling layer.
package rtp

import (
	"fmt"

	"firestige.xyz/strix/pkg/wire"
	"firestige.xyz/strix/pkg/wrap"
)

// FixedHeaderLen is the size of the fixed RTP header, before the CSRC list.
const FixedHeaderLen = 12

// Packet is a read-only view over a single RTP packet.
type Packet struct {
	buf []byte
}

// NewPacket validates that buf can hold the fixed header and the declared
// CSRC list, and returns a view over it. The view aliases buf; no copy is
// made.
func NewPacket(buf []byte) (*Packet, error) {
	if err := wire.Check(buf, FixedHeaderLen); err != nil {
		return nil, fmt.Errorf("rtp: %w", err)
	}
	p := &Packet{buf: buf}

	csrcLen, err := wire.VarLen(int(p.CSRCCount()), 4, 0)
	if err != nil {
		return nil, fmt.Errorf("rtp: csrc list: %w", err)
	}
	if _, err := wire.Slice(buf, FixedHeaderLen, csrcLen); err != nil {
		return nil, fmt.Errorf("rtp: csrc list: %w", err)
	}
	return p, nil
}

// Version returns the 2-bit RTP version. 2 on compliant streams.
func (p *Packet) Version() uint8 { return wire.Bits(p.buf[0], 0, 2) }

// Padding reports whether the padding flag is set. When set, the last byte
// of the payload counts trailing octets to ignore, itself included.
func (p *Packet) Padding() bool { return wire.Bit(p.buf[0], 2) }

// HasExtension reports whether exactly one extension header follows the
// CSRC list.
func (p *Packet) HasExtension() bool { return wire.Bit(p.buf[0], 3) }

// CSRCCount returns the 4-bit count of contributing-source identifiers.
func (p *Packet) CSRCCount() uint8 { return wire.Bits(p.buf[0], 4, 4) }

// Marker returns the profile-specific marker flag.
func (p *Packet) Marker() bool { return wire.Bit(p.buf[1], 0) }

// PayloadType returns the 7-bit payload format code.
func (p *Packet) PayloadType() PayloadType { return PayloadType(wire.Bits(p.buf[1], 1, 7)) }

// Sequence returns the wraparound sequence number.
func (p *Packet) Sequence() wrap.Seq { return wrap.Seq(wire.Uint16(p.buf, 2)) }

// Timestamp returns the wraparound media timestamp.
func (p *Packet) Timestamp() wrap.Timestamp { return wrap.Timestamp(wire.Uint32(p.buf, 4)) }

// SSRC returns the synchronization source identifier.
func (p *Packet) SSRC() uint32 { return wire.Uint32(p.buf, 8) }

// CSRC returns the i-th contributing source identifier, or 0 when i is
// outside the range the buffer actually holds.
func (p *Packet) CSRC(i int) uint32 {
	off := FixedHeaderLen + 4*i
	if i < 0 || i >= int(p.CSRCCount()) || off+4 > len(p.buf) {
		return 0
	}
	return wire.Uint32(p.buf, off)
}

// CSRCList decodes the CSRC identifiers into a fresh slice. This is the one
// accessor that allocates; use CSRC for zero-copy indexed access.
func (p *Packet) CSRCList() []uint32 {
	n := int(p.CSRCCount())
	out := make([]uint32, 0, n)
	for i := 0; i < n; i++ {
		off := FixedHeaderLen + 4*i
		if off+4 > len(p.buf) {
			break
		}
		out = append(out, wire.Uint32(p.buf, off))
	}
	return out
}

// HeaderLen returns the byte length of the fixed header plus CSRC list,
// clamped to the buffer. It only diverges from 12+4*CC when a mutable view
// raised the count past what the buffer holds.
func (p *Packet) HeaderLen() int {
	n := FixedHeaderLen + 4*int(p.CSRCCount())
	if n > len(p.buf) {
		return len(p.buf)
	}
	return n
}

// Payload returns the opaque RTP body following the header. The slice
// aliases the packet buffer.
func (p *Packet) Payload() []byte { return p.buf[p.HeaderLen():] }

// Extension builds a view over the extension header, which occupies the
// start of the payload area when HasExtension reports true.
func (p *Packet) Extension() (*Extension, error) { return NewExtension(p.Payload()) }

// Bytes returns the full underlying buffer.
func (p *Packet) Bytes() []byte { return p.buf }

// MutablePacket is a read-write view over a single RTP packet. Setters write
// in place; the view never grows the buffer, so raising CSRCCount is only
// meaningful when the caller sized the buffer for it beforehand.
type MutablePacket struct {
	Packet
}

// NewMutablePacket validates buf exactly as NewPacket does and returns a
// writable view. The caller must have exclusive access to buf while the
// view is in use.
func NewMutablePacket(buf []byte) (*MutablePacket, error) {
	p, err := NewPacket(buf)
	if err != nil {
		return nil, err
	}
	return &MutablePacket{Packet: *p}, nil
}

// SetVersion sets the 2-bit version field.
func (p *MutablePacket) SetVersion(v uint8) { p.buf[0] = wire.PutBits(p.buf[0], 0, 2, v) }

// SetPadding sets the padding flag.
func (p *MutablePacket) SetPadding(v bool) { p.buf[0] = wire.PutBit(p.buf[0], 2, v) }

// SetHasExtension sets the extension flag.
func (p *MutablePacket) SetHasExtension(v bool) { p.buf[0] = wire.PutBit(p.buf[0], 3, v) }

// SetCSRCCount sets the 4-bit CSRC count. The buffer is not resized.
func (p *MutablePacket) SetCSRCCount(v uint8) { p.buf[0] = wire.PutBits(p.buf[0], 4, 4, v) }

// SetMarker sets the marker flag.
func (p *MutablePacket) SetMarker(v bool) { p.buf[1] = wire.PutBit(p.buf[1], 0, v) }

// SetPayloadType sets the 7-bit payload format code.
func (p *MutablePacket) SetPayloadType(v PayloadType) {
	p.buf[1] = wire.PutBits(p.buf[1], 1, 7, uint8(v))
}

// SetSequence writes the sequence number.
func (p *MutablePacket) SetSequence(v wrap.Seq) { wire.PutUint16(p.buf, 2, uint16(v)) }

// SetTimestamp writes the media timestamp.
func (p *MutablePacket) SetTimestamp(v wrap.Timestamp) { wire.PutUint32(p.buf, 4, uint32(v)) }

// SetSSRC writes the synchronization source identifier.
func (p *MutablePacket) SetSSRC(v uint32) { wire.PutUint32(p.buf, 8, v) }

// SetCSRC writes the i-th contributing source identifier. Out-of-range
// writes are ignored rather than allowed to run past the buffer.
func (p *MutablePacket) SetCSRC(i int, v uint32) {
	off := FixedHeaderLen + 4*i
	if i < 0 || i >= int(p.CSRCCount()) || off+4 > len(p.buf) {
		return
	}
	wire.PutUint32(p.buf, off, v)
}

// MutableExtension builds a writable view over the extension header area.
func (p *MutablePacket) MutableExtension() (*MutableExtension, error) {
	return NewMutableExtension(p.Payload())
}
