// Package decode implements L2-L4 protocol stack decoding.
//
// Decoding is delegated to gopacket: the decoder walks the layer chain for
// the capture's link type and extracts the UDP datagram payload together
// with the IP/port flow context. Non-UDP frames are rejected with
// core.ErrNotUDP so the pipeline can count and skip them.
package decode

import (
	"net/netip"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"firestige.xyz/strix/internal/core"
)

// Decoder decodes raw packets into structured format.
type Decoder interface {
	Decode(raw core.RawPacket) (core.DecodedPacket, error)
}

// UDPDecoder extracts UDP datagrams from captured frames.
type UDPDecoder struct {
	linkType layers.LinkType
}

// NewUDPDecoder creates a decoder for frames of the given link type.
func NewUDPDecoder(linkType layers.LinkType) *UDPDecoder {
	return &UDPDecoder{linkType: linkType}
}

// Decode walks the frame's layer chain and returns the UDP payload with
// its flow context. The payload slice aliases raw.Data.
func (d *UDPDecoder) Decode(raw core.RawPacket) (core.DecodedPacket, error) {
	if len(raw.Data) == 0 {
		return core.DecodedPacket{}, core.ErrPacketTooShort
	}

	pkt := gopacket.NewPacket(raw.Data, d.linkType, gopacket.NoCopy)

	udpLayer := pkt.Layer(layers.LayerTypeUDP)
	if udpLayer == nil {
		return core.DecodedPacket{}, core.ErrNotUDP
	}
	udp := udpLayer.(*layers.UDP)

	decoded := core.DecodedPacket{
		Timestamp: raw.Timestamp,
		SrcPort:   uint16(udp.SrcPort),
		DstPort:   uint16(udp.DstPort),
		Payload:   udp.Payload,
	}

	switch ip := pkt.NetworkLayer().(type) {
	case *layers.IPv4:
		decoded.SrcIP, _ = netip.AddrFromSlice(ip.SrcIP)
		decoded.DstIP, _ = netip.AddrFromSlice(ip.DstIP)
	case *layers.IPv6:
		decoded.SrcIP, _ = netip.AddrFromSlice(ip.SrcIP)
		decoded.DstIP, _ = netip.AddrFromSlice(ip.DstIP)
	}

	return decoded, nil
}
