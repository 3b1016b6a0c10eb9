package discord

import (
	"fmt"

	"firestige.xyz/strix/pkg/wire"
)

// KeepaliveLen is the exact size of a keepalive: one SSRC, nothing else.
const KeepaliveLen = 4

// Keepalive is a read-only view over a Discord UDP keepalive.
type Keepalive struct {
	buf []byte
}

// NewKeepalive validates the 4-byte packet and returns a view aliasing buf.
func NewKeepalive(buf []byte) (*Keepalive, error) {
	if err := wire.Check(buf, KeepaliveLen); err != nil {
		return nil, fmt.Errorf("discord: keepalive: %w", err)
	}
	return &Keepalive{buf: buf}, nil
}

// SSRC returns the sending source.
func (p *Keepalive) SSRC() uint32 { return wire.Uint32(p.buf, 0) }

// Bytes returns the full underlying buffer.
func (p *Keepalive) Bytes() []byte { return p.buf }

// MutableKeepalive is a read-write view over a keepalive.
type MutableKeepalive struct {
	Keepalive
}

// NewMutableKeepalive validates buf exactly as NewKeepalive does and returns
// a writable view.
func NewMutableKeepalive(buf []byte) (*MutableKeepalive, error) {
	p, err := NewKeepalive(buf)
	if err != nil {
		return nil, err
	}
	return &MutableKeepalive{Keepalive: *p}, nil
}

// SetSSRC writes the sending source.
func (p *MutableKeepalive) SetSSRC(v uint32) { wire.PutUint32(p.buf, 0, v) }
