// Package inspect turns UDP datagrams into labeled output packets.
//
// The inspector classifies each datagram as RTP, RTCP, Discord voice
// discovery/keepalive, or unknown, and surfaces the decoded header fields
// as core.Labels. Classification order (cheapest first):
//
//  1. Exactly 4 bytes — a keepalive (no RTP/RTCP datagram is that short).
//  2. Version bits == 2 — RTP or RTCP, split on the second byte.
//  3. Discovery discriminant 0x0001/0x0002 — NAT discovery.
//  4. Anything else — unknown, raw bytes preserved.
//
// The optional heuristic mode additionally requires a plausible payload
// type before accepting a datagram as RTP, which filters out protocols
// that happen to place 0b10 in the top bits of their first byte.
package inspect

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/pkg/demux"
	"firestige.xyz/strix/pkg/discord"
	"firestige.xyz/strix/pkg/rtcp"
	"firestige.xyz/strix/pkg/rtp"
)

// Options controls inspection behavior. Decoded from the task
// configuration via mapstructure.
type Options struct {
	// Heuristic enables plausibility checks beyond structural parsing:
	// RTP datagrams must carry a non-reserved payload type and at least
	// the fixed header. Off by default so structurally valid packets
	// always classify.
	Heuristic bool `mapstructure:"heuristic"`

	// KeepPayload copies the raw datagram into the output packet.
	KeepPayload bool `mapstructure:"keep_payload"`
}

// Inspector classifies datagrams and extracts header labels.
type Inspector struct {
	opts Options
}

// New creates an Inspector with the given options.
func New(opts Options) *Inspector {
	return &Inspector{opts: opts}
}

// NewFromMap creates an Inspector from a raw option map, as found in the
// task configuration.
func NewFromMap(raw map[string]any) (*Inspector, error) {
	var opts Options
	if err := mapstructure.Decode(raw, &opts); err != nil {
		return nil, fmt.Errorf("inspect: bad options: %w", err)
	}
	return New(opts), nil
}

// Inspect classifies the datagram and returns the labeled output packet.
// A datagram that parses as none of the known formats is still a success:
// it comes back with PayloadKind "unknown".
func (i *Inspector) Inspect(pkt *core.DecodedPacket) (core.OutputPacket, error) {
	out := core.OutputPacket{
		Timestamp: pkt.Timestamp,
		SrcIP:     pkt.SrcIP,
		DstIP:     pkt.DstIP,
		SrcPort:   pkt.SrcPort,
		DstPort:   pkt.DstPort,
	}
	if i.opts.KeepPayload {
		out.RawPayload = pkt.Payload
	}

	if len(pkt.Payload) < 2 {
		return out, fmt.Errorf("inspect: datagram too short (%d bytes): %w",
			len(pkt.Payload), core.ErrPacketTooShort)
	}

	switch {
	case len(pkt.Payload) == discord.KeepaliveLen:
		ka, err := discord.NewKeepalive(pkt.Payload)
		if err != nil {
			return out, err
		}
		out.PayloadKind = "keepalive"
		out.Labels = keepaliveLabels(ka)
		return out, nil

	case pkt.Payload[0]>>6 == 2:
		return i.inspectMedia(pkt.Payload, out)

	default:
		dp, err := discord.Classify(pkt.Payload)
		if err != nil {
			return out, err
		}
		switch dp.Kind {
		case discord.KindDiscovery:
			out.PayloadKind = "discovery"
			out.Labels = discoveryLabels(dp.Discovery)
		default:
			out.PayloadKind = "unknown"
		}
		return out, nil
	}
}

// inspectMedia splits a version-2 datagram into RTP or RTCP and labels it.
func (i *Inspector) inspectMedia(payload []byte, out core.OutputPacket) (core.OutputPacket, error) {
	dm, err := demux.Demux(payload)
	if err != nil {
		return out, err
	}

	switch dm.Kind {
	case demux.KindRTP:
		if i.opts.Heuristic && !plausibleRTP(dm.RTP) {
			out.PayloadKind = "unknown"
			return out, nil
		}
		out.PayloadKind = "rtp"
		out.Labels = rtpLabels(dm.RTP)

	case demux.KindRTCP:
		out.PayloadKind = "rtcp"
		out.Labels = rtcpLabels(payload, dm.RTCP)
	}
	return out, nil
}

// plausibleRTP rejects datagrams whose payload type is reserved or whose
// header cannot be complete. Structural parsing already succeeded; this
// is the stricter opt-in gate.
func plausibleRTP(p *rtp.Packet) bool {
	if p.PayloadType().IsReserved() {
		return false
	}
	return len(p.Bytes()) >= rtp.FixedHeaderLen
}

func rtpLabels(p *rtp.Packet) core.Labels {
	labels := core.Labels{
		core.LabelRTPVersion:     fmt.Sprintf("%d", p.Version()),
		core.LabelRTPPayloadType: fmt.Sprintf("%d", uint8(p.PayloadType())),
		core.LabelRTPPayloadName: p.PayloadType().String(),
		core.LabelRTPSeq:         fmt.Sprintf("%d", uint16(p.Sequence())),
		core.LabelRTPTimestamp:   fmt.Sprintf("%d", uint32(p.Timestamp())),
		core.LabelRTPSSRC:        fmt.Sprintf("0x%08X", p.SSRC()),
		core.LabelRTPMarker:      boolStr(p.Marker()),
		core.LabelRTPExtension:   boolStr(p.HasExtension()),
		core.LabelRTPCSRCCount:   fmt.Sprintf("%d", p.CSRCCount()),
		core.LabelRTPPayloadLen:  fmt.Sprintf("%d", len(p.Payload())),
	}
	return labels
}

// rtcpLabels walks the compound datagram to count sub-packets and labels
// the first one.
func rtcpLabels(payload []byte, first *rtcp.Packet) core.Labels {
	labels := core.Labels{
		core.LabelRTCPPacketType: fmt.Sprintf("%d", uint8(first.Type)),
		core.LabelRTCPTypeName:   first.Type.String(),
		core.LabelRTCPSSRC:       fmt.Sprintf("0x%08X", first.SSRC()),
	}

	switch first.Type {
	case rtcp.TypeSenderReport:
		labels[core.LabelRTCPReports] = fmt.Sprintf("%d", first.SenderReport.ReportCount())
	case rtcp.TypeReceiverReport:
		labels[core.LabelRTCPReports] = fmt.Sprintf("%d", first.ReceiverReport.ReportCount())
	}

	count := 0
	c := rtcp.NewCompound(payload)
	for c.Next() {
		count++
	}
	labels[core.LabelRTCPCount] = fmt.Sprintf("%d", count)
	if tr := c.Trailing(); len(tr) > 0 {
		labels[core.LabelRTCPTrailing] = fmt.Sprintf("%d", len(tr))
	}
	return labels
}

func discoveryLabels(d *discord.IPDiscovery) core.Labels {
	labels := core.Labels{
		core.LabelDiscordKind: "discovery",
		core.LabelDiscordType: d.Type().String(),
		core.LabelDiscordSSRC: fmt.Sprintf("0x%08X", d.SSRC()),
	}
	if addr := d.Address(); addr != "" {
		labels[core.LabelDiscordAddress] = addr
		labels[core.LabelDiscordPort] = fmt.Sprintf("%d", d.Port())
	}
	return labels
}

func keepaliveLabels(ka *discord.Keepalive) core.Labels {
	return core.Labels{
		core.LabelDiscordKind: "keepalive",
		core.LabelDiscordSSRC: fmt.Sprintf("0x%08X", ka.SSRC()),
	}
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
