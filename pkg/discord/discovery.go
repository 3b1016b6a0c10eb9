// Package discord implements views over the vendor packet formats Discord
// uses on its voice UDP socket alongside RTP: the IP Discovery exchange for
// NAT tunnelling, and bare SSRC keepalives.
//
// IP Discovery layout, all integers big-endian:
//
//	type:u16  length:u16  ssrc:u32  address:[length-8]u8  port:u16
//
// length covers the fields after itself and nominally holds 70, putting the
// null-terminated address string at 62 bytes. Requests leave address empty;
// the server echoes the requester's address and source port back in the
// response.
package discord

import (
	"bytes"
	"fmt"

	"firestige.xyz/strix/pkg/wire"
)

// DiscoveryType is the 16-bit request/response discriminant.
type DiscoveryType uint16

const (
	// DiscoveryRequest is sent by the client.
	DiscoveryRequest DiscoveryType = 1

	// DiscoveryResponse is the server's echo carrying the observed address.
	DiscoveryResponse DiscoveryType = 2
)

func (t DiscoveryType) String() string {
	switch t {
	case DiscoveryRequest:
		return "request"
	case DiscoveryResponse:
		return "response"
	}
	return fmt.Sprintf("other(%d)", uint16(t))
}

const (
	// discoveryHeaderLen covers type, length and ssrc.
	discoveryHeaderLen = 8

	// StandardLength is the length-field value Discord specifies.
	StandardLength = 70

	// StandardSize is the full packet size at the standard length:
	// the 8-byte prefix, a 62-byte address field and the 2-byte port.
	StandardSize = discoveryHeaderLen + StandardLength - 8 + 2
)

// IPDiscovery is a read-only view over an IP Discovery packet. The address
// field's size is governed by the declared length, so construction resolves
// it before the port can be located.
type IPDiscovery struct {
	buf     []byte
	addrLen int
}

// NewIPDiscovery validates the fixed prefix, resolves the address length
// from the declared length field, and checks that address plus trailing
// port fit the buffer. A declared length below the 8-byte floor is
// ErrMalformedLength; it is reported, not clamped.
func NewIPDiscovery(buf []byte) (*IPDiscovery, error) {
	if err := wire.Check(buf, discoveryHeaderLen); err != nil {
		return nil, fmt.Errorf("discord: ip discovery: %w", err)
	}
	p := &IPDiscovery{buf: buf}

	addrLen, err := wire.VarLen(int(p.Length()), 1, -8)
	if err != nil {
		return nil, fmt.Errorf("discord: ip discovery address: %w", err)
	}
	if _, err := wire.Slice(buf, discoveryHeaderLen, addrLen+2); err != nil {
		return nil, fmt.Errorf("discord: ip discovery address+port: %w", err)
	}
	p.addrLen = addrLen
	return p, nil
}

// Type returns the request/response discriminant.
func (p *IPDiscovery) Type() DiscoveryType { return DiscoveryType(wire.Uint16(p.buf, 0)) }

// Length returns the declared length of all fields after itself.
func (p *IPDiscovery) Length() uint16 { return wire.Uint16(p.buf, 2) }

// SSRC returns the RTP source the requesting client was assigned.
func (p *IPDiscovery) SSRC() uint32 { return wire.Uint32(p.buf, 4) }

// AddressRaw returns the full address field, padding included. The slice
// aliases the packet buffer.
func (p *IPDiscovery) AddressRaw() []byte {
	return p.buf[discoveryHeaderLen : discoveryHeaderLen+p.addrLen]
}

// Address returns the address as a string, cut at the first NUL.
func (p *IPDiscovery) Address() string {
	raw := p.AddressRaw()
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw)
}

// Port returns the 16-bit port following the address field.
func (p *IPDiscovery) Port() uint16 { return wire.Uint16(p.buf, discoveryHeaderLen+p.addrLen) }

// Bytes returns the full underlying buffer.
func (p *IPDiscovery) Bytes() []byte { return p.buf }

// MutableIPDiscovery is a read-write view over an IP Discovery packet.
// Setters write in place; SetLength does not move the port field of an
// already-built view, so set it before filling address and port.
type MutableIPDiscovery struct {
	IPDiscovery
}

// NewMutableIPDiscovery validates buf exactly as NewIPDiscovery does and
// returns a writable view.
func NewMutableIPDiscovery(buf []byte) (*MutableIPDiscovery, error) {
	p, err := NewIPDiscovery(buf)
	if err != nil {
		return nil, err
	}
	return &MutableIPDiscovery{IPDiscovery: *p}, nil
}

// SetType writes the request/response discriminant.
func (p *MutableIPDiscovery) SetType(v DiscoveryType) { wire.PutUint16(p.buf, 0, uint16(v)) }

// SetLength writes the declared length field.
func (p *MutableIPDiscovery) SetLength(v uint16) { wire.PutUint16(p.buf, 2, v) }

// SetSSRC writes the assigned source identifier.
func (p *MutableIPDiscovery) SetSSRC(v uint32) { wire.PutUint32(p.buf, 4, v) }

// SetAddress copies s into the address field and NUL-fills the rest.
// Strings longer than the field are truncated to leave the terminator room.
func (p *MutableIPDiscovery) SetAddress(s string) {
	raw := p.buf[discoveryHeaderLen : discoveryHeaderLen+p.addrLen]
	for i := range raw {
		raw[i] = 0
	}
	if len(s) >= len(raw) && len(raw) > 0 {
		s = s[:len(raw)-1]
	}
	copy(raw, s)
}

// SetPort writes the port following the address field.
func (p *MutableIPDiscovery) SetPort(v uint16) {
	wire.PutUint16(p.buf, discoveryHeaderLen+p.addrLen, v)
}
