package demux

import (
	"encoding/binary"
	"errors"
	"testing"

	"firestige.xyz/strix/pkg/rtcp"
	"firestige.xyz/strix/pkg/wire"
)

func buildRTP(pt uint8, ssrc uint32) []byte {
	b := make([]byte, 12)
	b[0] = 0x80
	b[1] = pt & 0x7F
	binary.BigEndian.PutUint32(b[8:12], ssrc)
	return b
}

func buildRTCP(pt rtcp.PacketType, ssrc uint32) []byte {
	b := make([]byte, 8)
	b[0] = 0x80
	b[1] = byte(pt)
	binary.BigEndian.PutUint16(b[2:4], 1)
	binary.BigEndian.PutUint32(b[4:8], ssrc)
	return b
}

func TestDemuxRTP(t *testing.T) {
	p, err := Demux(buildRTP(96, 0xFEED))
	if err != nil {
		t.Fatalf("Demux: %v", err)
	}
	if p.Kind != KindRTP || p.RTP == nil || p.RTCP != nil {
		t.Fatalf("result = %+v; want RTP", p)
	}
	if p.RTP.SSRC() != 0xFEED {
		t.Errorf("SSRC = %#x", p.RTP.SSRC())
	}
}

func TestDemuxRTCP(t *testing.T) {
	p, err := Demux(buildRTCP(rtcp.TypeReceiverReport, 0xBEEF))
	if err != nil {
		t.Fatalf("Demux: %v", err)
	}
	if p.Kind != KindRTCP || p.RTCP == nil || p.RTP != nil {
		t.Fatalf("result = %+v; want RTCP", p)
	}
	if p.RTCP.Type != rtcp.TypeReceiverReport {
		t.Errorf("Type = %v", p.RTCP.Type)
	}
}

func TestDemuxMarkerDoesNotMisfire(t *testing.T) {
	// Marker bit set, payload type 72 → byte 1 is 200, which would read as
	// an RTCP SR if the reserved PT range did not exist. RFC 5761
	// classification sends it to RTCP by design; the reserved range means
	// compliant RTP senders never emit it.
	b := buildRTP(72, 1)
	b[1] |= 0x80

	p, err := Demux(b)
	if err != nil {
		t.Fatalf("Demux: %v", err)
	}
	if p.Kind != KindRTCP {
		t.Errorf("byte1=200 should classify as RTCP, got %v", p.Kind)
	}

	// Marker bit with a dynamic payload type stays RTP: byte 1 = 224.
	p, err = Demux(buildRTPWithMarker(96))
	if err != nil {
		t.Fatalf("Demux: %v", err)
	}
	if p.Kind != KindRTP {
		t.Errorf("marker+dynamic PT should classify as RTP, got %v", p.Kind)
	}
}

func buildRTPWithMarker(pt uint8) []byte {
	b := buildRTP(pt, 1)
	b[1] |= 0x80
	return b
}

func TestDemuxShortBuffers(t *testing.T) {
	if _, err := Demux([]byte{0x80}); !errors.Is(err, wire.ErrInsufficientData) {
		t.Errorf("1-byte err = %v; want ErrInsufficientData", err)
	}

	// Classifies as RTP but cannot hold the fixed header.
	if _, err := Demux([]byte{0x80, 96, 0, 0, 0}); !errors.Is(err, wire.ErrInsufficientData) {
		t.Errorf("short RTP err = %v; want ErrInsufficientData", err)
	}
}

func TestDemuxMutWritesThrough(t *testing.T) {
	buf := buildRTP(96, 1)
	p, err := DemuxMut(buf)
	if err != nil {
		t.Fatalf("DemuxMut: %v", err)
	}
	if p.Kind != KindRTP {
		t.Fatalf("Kind = %v", p.Kind)
	}
	p.RTP.SetSSRC(0x0A0B0C0D)
	if binary.BigEndian.Uint32(buf[8:12]) != 0x0A0B0C0D {
		t.Error("mutable view must write into the caller's buffer")
	}
}
