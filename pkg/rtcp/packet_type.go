// Package rtcp implements zero-copy read and write views over RTCP packets
// (RFC 3550 §6), plus a scanner for the compound packets RTCP is normally
// sent as.
//
// Common header layout shared by every RTCP packet kind:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|V=2|P|    RC   |  packet type  |            length             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                     SSRC of packet sender                     |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// length counts 32-bit words minus one, so a sub-packet occupies exactly
// 4*(length+1) bytes including the header. Views follow the same contract as
// package rtp: they borrow the caller's buffer, and construction fails only
// on insufficient bytes, never on odd field values.
package rtcp

import "fmt"

// PacketType is the 8-bit RTCP packet type code from the IANA registry.
type PacketType uint8

const (
	// TypeSMPTEMap is SMPTE time-code mapping (RFC 5484).
	TypeSMPTEMap PacketType = 194

	// TypeJitterReport is the extended inter-arrival jitter report (RFC 5450).
	TypeJitterReport PacketType = 195

	// TypeSenderReport carries jitter, reception, timing and volume
	// information (RFC 3550 §6.4.1).
	TypeSenderReport PacketType = 200

	// TypeReceiverReport carries jitter and reception information
	// (RFC 3550 §6.4.2).
	TypeReceiverReport PacketType = 201

	// TypeSourceDescription maps SSRC/CSRC values to host information
	// (RFC 3550 §6.5).
	TypeSourceDescription PacketType = 202

	// TypeGoodbye announces exiting sources (RFC 3550 §6.6).
	TypeGoodbye PacketType = 203

	// TypeApplicationDefined carries a name and arbitrary application data
	// (RFC 3550 §6.7).
	TypeApplicationDefined PacketType = 204

	// TypeTransportFeedback is RTPFB, transport-layer feedback (RFC 4585).
	TypeTransportFeedback PacketType = 205

	// TypePayloadFeedback is PSFB, payload-specific feedback (RFC 4585).
	TypePayloadFeedback PacketType = 206

	// TypeExtendedReport is the XR mixed report block container (RFC 3611).
	TypeExtendedReport PacketType = 207

	// TypeAVB is the AVB RTCP packet (IEEE P1733).
	TypeAVB PacketType = 208

	// TypeReceiverSummary is RSI, receiver summary information (RFC 5760).
	TypeReceiverSummary PacketType = 209

	// TypePortMapping is token-based port mapping (RFC 6284).
	TypePortMapping PacketType = 210

	// TypeIDMS carries IDMS settings (RFC 7272).
	TypeIDMS PacketType = 211

	// TypeReportingGroupSources reports group reporting sources.
	TypeReportingGroupSources PacketType = 212

	// TypeSplicingNotification is the splicing notification message
	// (RFC 8286).
	TypeSplicingNotification PacketType = 213
)

// Known reports whether t is a registered RTCP packet type. This is the
// classification RFC 5761 multiplexing relies on: a second header byte that
// maps to a known RTCP type marks the packet as RTCP, anything else is RTP.
func (t PacketType) Known() bool {
	return t == TypeSMPTEMap || t == TypeJitterReport ||
		(t >= TypeSenderReport && t <= TypeSplicingNotification)
}

// Reserved reports whether t is an explicitly reserved code point.
func (t PacketType) Reserved() bool {
	return t == 0 || t == 192 || t == 193 || t == 255
}

var typeNames = map[PacketType]string{
	TypeSMPTEMap:              "SMPTE-map",
	TypeJitterReport:          "IJ",
	TypeSenderReport:          "SR",
	TypeReceiverReport:        "RR",
	TypeSourceDescription:     "SDES",
	TypeGoodbye:               "BYE",
	TypeApplicationDefined:    "APP",
	TypeTransportFeedback:     "RTPFB",
	TypePayloadFeedback:       "PSFB",
	TypeExtendedReport:        "XR",
	TypeAVB:                   "AVB",
	TypeReceiverSummary:       "RSI",
	TypePortMapping:           "TOKEN",
	TypeIDMS:                  "IDMS",
	TypeReportingGroupSources: "RGRS",
	TypeSplicingNotification:  "SNM",
}

func (t PacketType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	if t.Reserved() {
		return fmt.Sprintf("reserved(%d)", uint8(t))
	}
	return fmt.Sprintf("unassigned(%d)", uint8(t))
}
