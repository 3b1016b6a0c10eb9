package rtcp

import (
	"fmt"

	"firestige.xyz/strix/pkg/wire"
)

// HeaderLen is the size of the common RTCP header through the sender SSRC.
const HeaderLen = 8

// header provides the accessors every RTCP report view shares.
type header struct {
	buf []byte
}

// Version returns the 2-bit RTP version.
func (h header) Version() uint8 { return wire.Bits(h.buf[0], 0, 2) }

// Padding reports whether padding octets trail the packet.
func (h header) Padding() bool { return wire.Bit(h.buf[0], 2) }

// ReportCount returns the 5-bit count of report blocks. May be 0.
func (h header) ReportCount() uint8 { return wire.Bits(h.buf[0], 3, 5) }

// Type returns the RTCP packet type code.
func (h header) Type() PacketType { return PacketType(h.buf[1]) }

// Length returns the declared packet length in 32-bit words, minus one.
// 0 is valid inside compound packets.
func (h header) Length() uint16 { return wire.Uint16(h.buf, 2) }

// Size returns the declared byte length of the whole sub-packet,
// 4*(Length+1), header and padding included.
func (h header) Size() int { return 4 * (int(h.Length()) + 1) }

// SSRC returns the packet sender's synchronization source.
func (h header) SSRC() uint32 { return wire.Uint32(h.buf, 4) }

// Payload returns the body following the common header.
func (h header) Payload() []byte { return h.buf[HeaderLen:] }

// Bytes returns the full underlying buffer.
func (h header) Bytes() []byte { return h.buf }

// mutableHeader adds in-place setters to header.
type mutableHeader struct {
	header
}

func (h *mutableHeader) SetVersion(v uint8)      { h.buf[0] = wire.PutBits(h.buf[0], 0, 2, v) }
func (h *mutableHeader) SetPadding(v bool)       { h.buf[0] = wire.PutBit(h.buf[0], 2, v) }
func (h *mutableHeader) SetReportCount(v uint8)  { h.buf[0] = wire.PutBits(h.buf[0], 3, 5, v) }
func (h *mutableHeader) SetType(v PacketType)    { h.buf[1] = byte(v) }
func (h *mutableHeader) SetLength(v uint16)      { wire.PutUint16(h.buf, 2, v) }
func (h *mutableHeader) SetSSRC(v uint32)        { wire.PutUint32(h.buf, 4, v) }

// SenderReport is a read-only view over an RTCP sender report
// (RFC 3550 §6.4.1). The body is a SenderInfo block followed by
// ReportCount report blocks.
type SenderReport struct {
	header
}

// NewSenderReport validates the 8-byte common header and returns a view
// aliasing buf.
func NewSenderReport(buf []byte) (*SenderReport, error) {
	if err := wire.Check(buf, HeaderLen); err != nil {
		return nil, fmt.Errorf("rtcp: sender report: %w", err)
	}
	return &SenderReport{header{buf: buf}}, nil
}

// Info builds a view over the sender info block at the start of the body.
func (r *SenderReport) Info() (*SenderInfo, error) {
	return NewSenderInfo(r.Payload())
}

// Blocks decodes the declared report blocks, which follow the sender info
// block. Fails with ErrInsufficientData when the body is shorter than
// ReportCount blocks require.
func (r *SenderReport) Blocks() ([]ReportBlock, error) {
	if err := wire.Check(r.Payload(), SenderInfoLen); err != nil {
		return nil, fmt.Errorf("rtcp: sender report: %w", err)
	}
	return decodeBlocks(r.Payload()[SenderInfoLen:], int(r.ReportCount()))
}

// ReceiverReport is a read-only view over an RTCP receiver report
// (RFC 3550 §6.4.2). The body is ReportCount report blocks.
type ReceiverReport struct {
	header
}

// NewReceiverReport validates the 8-byte common header and returns a view
// aliasing buf.
func NewReceiverReport(buf []byte) (*ReceiverReport, error) {
	if err := wire.Check(buf, HeaderLen); err != nil {
		return nil, fmt.Errorf("rtcp: receiver report: %w", err)
	}
	return &ReceiverReport{header{buf: buf}}, nil
}

// Blocks decodes the declared report blocks.
func (r *ReceiverReport) Blocks() ([]ReportBlock, error) {
	return decodeBlocks(r.Payload(), int(r.ReportCount()))
}

func decodeBlocks(body []byte, count int) ([]ReportBlock, error) {
	blocks := make([]ReportBlock, 0, count)
	for i := 0; i < count; i++ {
		sub, err := wire.Slice(body, i*ReportBlockLen, ReportBlockLen)
		if err != nil {
			return nil, fmt.Errorf("rtcp: report block %d: %w", i, err)
		}
		blocks = append(blocks, ReportBlock{buf: sub})
	}
	return blocks, nil
}

// MutableSenderReport is a read-write view over a sender report.
type MutableSenderReport struct {
	mutableHeader
}

// NewMutableSenderReport validates buf exactly as NewSenderReport does and
// returns a writable view.
func NewMutableSenderReport(buf []byte) (*MutableSenderReport, error) {
	if _, err := NewSenderReport(buf); err != nil {
		return nil, err
	}
	return &MutableSenderReport{mutableHeader{header{buf: buf}}}, nil
}

// Info builds a writable view over the sender info block.
func (r *MutableSenderReport) Info() (*MutableSenderInfo, error) {
	return NewMutableSenderInfo(r.Payload())
}

// MutableReceiverReport is a read-write view over a receiver report.
type MutableReceiverReport struct {
	mutableHeader
}

// NewMutableReceiverReport validates buf exactly as NewReceiverReport does
// and returns a writable view.
func NewMutableReceiverReport(buf []byte) (*MutableReceiverReport, error) {
	if _, err := NewReceiverReport(buf); err != nil {
		return nil, err
	}
	return &MutableReceiverReport{mutableHeader{header{buf: buf}}}, nil
}
