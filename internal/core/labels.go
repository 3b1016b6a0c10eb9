package core

// Labels represents key-value metadata attached by inspectors.
type Labels map[string]string

// Label naming constants following {protocol}.{field} convention.
const (
	// RTP labels
	LabelRTPVersion     = "rtp.version"
	LabelRTPPayloadType = "rtp.payload_type" // Payload type number (0-127)
	LabelRTPPayloadName = "rtp.payload_name" // Static assignment name, e.g. "PCMU"
	LabelRTPSeq         = "rtp.seq"          // Sequence number (decimal)
	LabelRTPTimestamp   = "rtp.timestamp"    // RTP timestamp (decimal)
	LabelRTPSSRC        = "rtp.ssrc"         // Synchronization source (hex, 0xXXXXXXXX)
	LabelRTPMarker      = "rtp.marker"       // Marker bit ("true"/"false")
	LabelRTPExtension   = "rtp.has_ext"      // Header extension present ("true"/"false")
	LabelRTPCSRCCount   = "rtp.csrc_count"   // Contributing source count
	LabelRTPPayloadLen  = "rtp.payload_len"  // Media payload length in bytes

	// RTCP uses rtcp.* prefix to distinguish from media RTP
	LabelRTCPPacketType = "rtcp.packet_type" // First sub-packet type (decimal)
	LabelRTCPTypeName   = "rtcp.type_name"   // e.g. "SR", "RR"
	LabelRTCPSSRC       = "rtcp.ssrc"        // Sender/source SSRC (hex)
	LabelRTCPCount      = "rtcp.sub_packets" // Sub-packets in the compound datagram
	LabelRTCPReports    = "rtcp.reports"     // Report count of the first sub-packet
	LabelRTCPTrailing   = "rtcp.trailing"    // Bytes left over after the last sub-packet

	// Discord voice labels
	LabelDiscordKind    = "discord.kind"    // "discovery" or "keepalive"
	LabelDiscordType    = "discord.type"    // Discovery discriminant ("request"/"response")
	LabelDiscordSSRC    = "discord.ssrc"    // SSRC (hex)
	LabelDiscordAddress = "discord.address" // External address from a discovery response
	LabelDiscordPort    = "discord.port"    // External port (decimal)
)
