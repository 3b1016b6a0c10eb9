package discord

import (
	"fmt"

	"firestige.xyz/strix/pkg/wire"
)

// Kind tags the dispatch result.
type Kind uint8

const (
	// KindDiscovery marks an IP Discovery request or response.
	KindDiscovery Kind = iota

	// KindKeepalive marks a 4-byte SSRC keepalive.
	KindKeepalive

	// KindUnknown marks a well-formed buffer whose discriminant matches no
	// known packet kind. Not a failure; the raw bytes are preserved.
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindDiscovery:
		return "discovery"
	case KindKeepalive:
		return "keepalive"
	case KindUnknown:
		return "unknown"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Packet is the dispatch result: the kind plus the matching view, or the
// untouched raw bytes for KindUnknown.
type Packet struct {
	Kind Kind

	Discovery *IPDiscovery
	Keepalive *Keepalive
	Raw       []byte
}

// Classify dispatches a buffer from a Discord voice socket to the matching
// view. Keepalives are identified by their exact 4-byte size; anything
// larger is dispatched on the 16-bit type field — 1 and 2 are IP Discovery,
// every other value yields KindUnknown with the buffer preserved.
//
// Classification itself needs 4 bytes; shorter buffers are
// ErrInsufficientData. A recognized discovery type whose declared length
// does not fit the buffer propagates the constructor's failure.
func Classify(buf []byte) (*Packet, error) {
	if err := wire.Check(buf, KeepaliveLen); err != nil {
		return nil, fmt.Errorf("discord: %w", err)
	}

	if len(buf) == KeepaliveLen {
		ka, err := NewKeepalive(buf)
		if err != nil {
			return nil, err
		}
		return &Packet{Kind: KindKeepalive, Keepalive: ka}, nil
	}

	switch DiscoveryType(wire.Uint16(buf, 0)) {
	case DiscoveryRequest, DiscoveryResponse:
		d, err := NewIPDiscovery(buf)
		if err != nil {
			return nil, err
		}
		return &Packet{Kind: KindDiscovery, Discovery: d}, nil
	}

	return &Packet{Kind: KindUnknown, Raw: buf}, nil
}
