package discord

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"firestige.xyz/strix/pkg/wire"
)

// buildDiscovery builds an IP Discovery packet with the given declared
// length. The buffer is sized to fit: 8 + (length-8) + 2 bytes.
func buildDiscovery(typ DiscoveryType, length uint16, ssrc uint32, addr string, port uint16) []byte {
	addrLen := int(length) - 8
	b := make([]byte, 8+addrLen+2)
	binary.BigEndian.PutUint16(b[0:2], uint16(typ))
	binary.BigEndian.PutUint16(b[2:4], length)
	binary.BigEndian.PutUint32(b[4:8], ssrc)
	copy(b[8:8+addrLen], addr)
	binary.BigEndian.PutUint16(b[8+addrLen:], port)
	return b
}

func TestDiscoveryStandardLayout(t *testing.T) {
	buf := buildDiscovery(DiscoveryResponse, StandardLength, 0x12345678, "203.0.113.9", 50004)
	if len(buf) != StandardSize {
		t.Fatalf("standard packet is %d bytes; want %d", len(buf), StandardSize)
	}

	p, err := NewIPDiscovery(buf)
	if err != nil {
		t.Fatalf("NewIPDiscovery: %v", err)
	}

	if p.Type() != DiscoveryResponse {
		t.Errorf("Type = %v; want response", p.Type())
	}
	if p.Length() != StandardLength {
		t.Errorf("Length = %d; want 70", p.Length())
	}
	if p.SSRC() != 0x12345678 {
		t.Errorf("SSRC = %#08x", p.SSRC())
	}

	// length=70 puts a 62-byte address field directly before the port.
	if len(p.AddressRaw()) != 62 {
		t.Errorf("address field = %d bytes; want 62", len(p.AddressRaw()))
	}
	if p.Address() != "203.0.113.9" {
		t.Errorf("Address = %q", p.Address())
	}
	if p.Port() != 50004 {
		t.Errorf("Port = %d; want 50004", p.Port())
	}
	if binary.BigEndian.Uint16(buf[len(buf)-2:]) != 50004 {
		t.Error("port must sit in the last two bytes")
	}
}

func TestDiscoveryMalformedLength(t *testing.T) {
	buf := buildDiscovery(DiscoveryRequest, StandardLength, 1, "", 0)
	binary.BigEndian.PutUint16(buf[2:4], 5) // below the 8-byte floor

	if _, err := NewIPDiscovery(buf); !errors.Is(err, wire.ErrMalformedLength) {
		t.Errorf("err = %v; want ErrMalformedLength", err)
	}
}

func TestDiscoveryTruncated(t *testing.T) {
	buf := buildDiscovery(DiscoveryRequest, StandardLength, 1, "", 0)

	// Declared length says 62+2 bytes follow the prefix; cut some off.
	if _, err := NewIPDiscovery(buf[:30]); !errors.Is(err, wire.ErrInsufficientData) {
		t.Errorf("err = %v; want ErrInsufficientData", err)
	}
	if _, err := NewIPDiscovery(buf[:5]); !errors.Is(err, wire.ErrInsufficientData) {
		t.Errorf("short prefix err = %v; want ErrInsufficientData", err)
	}
}

func TestDiscoveryZeroAddress(t *testing.T) {
	// length=8 resolves to a zero-byte address; the port follows the prefix
	// immediately. Zero-length fields are always valid.
	buf := buildDiscovery(DiscoveryRequest, 8, 7, "", 1234)

	p, err := NewIPDiscovery(buf)
	if err != nil {
		t.Fatalf("NewIPDiscovery: %v", err)
	}
	if len(p.AddressRaw()) != 0 || p.Address() != "" {
		t.Error("address should be empty")
	}
	if p.Port() != 1234 {
		t.Errorf("Port = %d; want 1234", p.Port())
	}
}

func TestMutableDiscoveryRoundTrip(t *testing.T) {
	buf := make([]byte, StandardSize)
	binary.BigEndian.PutUint16(buf[2:4], StandardLength)

	m, err := NewMutableIPDiscovery(buf)
	if err != nil {
		t.Fatalf("NewMutableIPDiscovery: %v", err)
	}
	m.SetType(DiscoveryRequest)
	m.SetSSRC(0xABCD0123)
	m.SetAddress("198.51.100.77")
	m.SetPort(40000)

	p, err := NewIPDiscovery(buf)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if p.Type() != DiscoveryRequest || p.SSRC() != 0xABCD0123 {
		t.Error("prefix fields did not round-trip")
	}
	if p.Address() != "198.51.100.77" {
		t.Errorf("Address = %q", p.Address())
	}
	if p.Port() != 40000 {
		t.Errorf("Port = %d", p.Port())
	}

	// The address field must stay NUL-terminated after a shorter rewrite.
	m.SetAddress("10.0.0.1")
	if p.Address() != "10.0.0.1" {
		t.Errorf("Address after rewrite = %q", p.Address())
	}
}

func TestKeepalive(t *testing.T) {
	buf := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	p, err := NewKeepalive(buf)
	if err != nil {
		t.Fatalf("NewKeepalive: %v", err)
	}
	if p.SSRC() != 0xDEADBEEF {
		t.Errorf("SSRC = %#08x", p.SSRC())
	}

	m, err := NewMutableKeepalive(buf)
	if err != nil {
		t.Fatalf("NewMutableKeepalive: %v", err)
	}
	m.SetSSRC(0x01020304)
	if !bytes.Equal(buf, []byte{1, 2, 3, 4}) {
		t.Error("SetSSRC must write through to the buffer")
	}

	if _, err := NewKeepalive(buf[:3]); !errors.Is(err, wire.ErrInsufficientData) {
		t.Errorf("err = %v; want ErrInsufficientData", err)
	}
}

func TestClassify(t *testing.T) {
	ka, err := Classify([]byte{0, 0, 0, 9})
	if err != nil {
		t.Fatalf("Classify keepalive: %v", err)
	}
	if ka.Kind != KindKeepalive || ka.Keepalive.SSRC() != 9 {
		t.Errorf("keepalive dispatch = %+v", ka)
	}

	disc, err := Classify(buildDiscovery(DiscoveryResponse, StandardLength, 5, "192.0.2.1", 7))
	if err != nil {
		t.Fatalf("Classify discovery: %v", err)
	}
	if disc.Kind != KindDiscovery || disc.Discovery.Address() != "192.0.2.1" {
		t.Errorf("discovery dispatch = %+v", disc)
	}

	// Unrecognized discriminant on a well-formed shape: unknown, raw bytes
	// carried unmodified.
	raw := []byte{0x00, 0x63, 0x00, 0x00, 1, 2, 3, 4}
	unk, err := Classify(raw)
	if err != nil {
		t.Fatalf("Classify unknown: %v", err)
	}
	if unk.Kind != KindUnknown || !bytes.Equal(unk.Raw, raw) {
		t.Errorf("unknown dispatch = %+v", unk)
	}

	// A recognized type whose declared length overruns the buffer is a
	// constructor failure, not an unknown.
	if _, err := Classify(buildDiscovery(DiscoveryRequest, StandardLength, 1, "", 0)[:20]); !errors.Is(err, wire.ErrInsufficientData) {
		t.Errorf("truncated discovery err = %v; want ErrInsufficientData", err)
	}

	if _, err := Classify([]byte{1, 2}); !errors.Is(err, wire.ErrInsufficientData) {
		t.Errorf("2-byte classify err = %v; want ErrInsufficientData", err)
	}
}
