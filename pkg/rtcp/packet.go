package rtcp

import (
	"fmt"

	"firestige.xyz/strix/pkg/wire"
)

// Packet is the decoded form of one RTCP sub-packet: the discriminant type
// plus the matching view. Kinds without a dedicated view keep their raw
// bytes in Body — an unrecognized-but-well-formed type is not a parse
// error, callers may ignore or log it.
type Packet struct {
	Type PacketType

	// Exactly one of the following is set for types with dedicated views.
	SenderReport   *SenderReport
	ReceiverReport *ReceiverReport

	// Body holds the raw sub-packet bytes for every other type.
	Body []byte
}

// Decode reads the discriminant at byte 1 and builds the matching view over
// buf. buf must span exactly one sub-packet when used standalone; Compound
// hands Decode correctly sized sub-slices.
func Decode(buf []byte) (*Packet, error) {
	if err := wire.Check(buf, 2); err != nil {
		return nil, fmt.Errorf("rtcp: %w", err)
	}

	t := PacketType(buf[1])
	switch t {
	case TypeSenderReport:
		sr, err := NewSenderReport(buf)
		if err != nil {
			return nil, err
		}
		return &Packet{Type: t, SenderReport: sr}, nil
	case TypeReceiverReport:
		rr, err := NewReceiverReport(buf)
		if err != nil {
			return nil, err
		}
		return &Packet{Type: t, ReceiverReport: rr}, nil
	default:
		return &Packet{Type: t, Body: buf}, nil
	}
}

// Bytes returns the sub-packet's underlying bytes regardless of variant.
func (p *Packet) Bytes() []byte {
	switch {
	case p.SenderReport != nil:
		return p.SenderReport.Bytes()
	case p.ReceiverReport != nil:
		return p.ReceiverReport.Bytes()
	}
	return p.Body
}

// SSRC returns the sender SSRC when the sub-packet is long enough to carry
// one, and 0 otherwise.
func (p *Packet) SSRC() uint32 {
	b := p.Bytes()
	if len(b) < HeaderLen {
		return 0
	}
	return wire.Uint32(b, 4)
}

// MutablePacket is the writable counterpart of Packet.
type MutablePacket struct {
	Type PacketType

	SenderReport   *MutableSenderReport
	ReceiverReport *MutableReceiverReport

	Body []byte
}

// DecodeMut behaves like Decode but yields writable views. The caller must
// have exclusive access to buf while any view is in use.
func DecodeMut(buf []byte) (*MutablePacket, error) {
	if err := wire.Check(buf, 2); err != nil {
		return nil, fmt.Errorf("rtcp: %w", err)
	}

	t := PacketType(buf[1])
	switch t {
	case TypeSenderReport:
		sr, err := NewMutableSenderReport(buf)
		if err != nil {
			return nil, err
		}
		return &MutablePacket{Type: t, SenderReport: sr}, nil
	case TypeReceiverReport:
		rr, err := NewMutableReceiverReport(buf)
		if err != nil {
			return nil, err
		}
		return &MutablePacket{Type: t, ReceiverReport: rr}, nil
	default:
		return &MutablePacket{Type: t, Body: buf}, nil
	}
}
