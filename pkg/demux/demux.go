// Package demux separates RTP and RTCP packets multiplexed onto a single
// socket, per the RFC 5761 profile rules: the second header byte is read as
// an RTCP packet type, and a value in the registered RTCP range marks the
// packet as RTCP. Every other value — including the RTP interpretations
// where that byte is marker+payload type — marks it as RTP. The reserved
// RTP payload types 72–76 exist exactly so this cannot misfire.
package demux

import (
	"fmt"

	"firestige.xyz/strix/pkg/rtcp"
	"firestige.xyz/strix/pkg/rtp"
	"firestige.xyz/strix/pkg/wire"
)

// Kind tags the demultiplexed result.
type Kind uint8

const (
	// KindRTP marks a media packet.
	KindRTP Kind = iota

	// KindRTCP marks a control packet (possibly the first of a compound).
	KindRTCP
)

func (k Kind) String() string {
	switch k {
	case KindRTP:
		return "rtp"
	case KindRTCP:
		return "rtcp"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Packet is the demultiplexed result: the kind plus the matching view.
type Packet struct {
	Kind Kind

	RTP  *rtp.Packet
	RTCP *rtcp.Packet
}

// MutablePacket is the writable counterpart of Packet.
type MutablePacket struct {
	Kind Kind

	RTP  *rtp.MutablePacket
	RTCP *rtcp.MutablePacket
}

// classifyRTCP reports whether the buffer's second byte names a registered
// RTCP packet type.
func classifyRTCP(buf []byte) bool {
	return rtcp.PacketType(buf[1]).Known()
}

// Demux classifies buf and constructs the matching read-only view.
// Classification needs two bytes; the chosen constructor's length demands
// apply on top of that.
func Demux(buf []byte) (*Packet, error) {
	if err := wire.Check(buf, 2); err != nil {
		return nil, fmt.Errorf("demux: %w", err)
	}

	if classifyRTCP(buf) {
		p, err := rtcp.Decode(buf)
		if err != nil {
			return nil, err
		}
		return &Packet{Kind: KindRTCP, RTCP: p}, nil
	}

	p, err := rtp.NewPacket(buf)
	if err != nil {
		return nil, err
	}
	return &Packet{Kind: KindRTP, RTP: p}, nil
}

// DemuxMut behaves like Demux but yields writable views.
func DemuxMut(buf []byte) (*MutablePacket, error) {
	if err := wire.Check(buf, 2); err != nil {
		return nil, fmt.Errorf("demux: %w", err)
	}

	if classifyRTCP(buf) {
		p, err := rtcp.DecodeMut(buf)
		if err != nil {
			return nil, err
		}
		return &MutablePacket{Kind: KindRTCP, RTCP: p}, nil
	}

	p, err := rtp.NewMutablePacket(buf)
	if err != nil {
		return nil, err
	}
	return &MutablePacket{Kind: KindRTP, RTP: p}, nil
}
