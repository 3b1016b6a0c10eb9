package rtp

import "fmt"

// PayloadType is the 7-bit RTP payload format code. The static assignments
// below follow the IANA audio/video table (RFC 3551 §6); codes 96–127 are
// dynamically bound per session, and 1–2, 19 and 72–76 are reserved — the
// latter range so that RTCP packet types 200–204 cannot be mistaken for RTP
// when the marker bit is set.
type PayloadType uint8

// Static payload format assignments.
const (
	PayloadPCMU      PayloadType = 0
	PayloadGSM       PayloadType = 3
	PayloadG723      PayloadType = 4
	PayloadDVI4_8K   PayloadType = 5
	PayloadDVI4_16K  PayloadType = 6
	PayloadLPC       PayloadType = 7
	PayloadPCMA      PayloadType = 8
	PayloadG722      PayloadType = 9
	PayloadL16Stereo PayloadType = 10
	PayloadL16Mono   PayloadType = 11
	PayloadQCELP     PayloadType = 12
	PayloadCN        PayloadType = 13
	PayloadMPA       PayloadType = 14
	PayloadG728      PayloadType = 15
	PayloadDVI4_11K  PayloadType = 16
	PayloadDVI4_22K  PayloadType = 17
	PayloadG729      PayloadType = 18
	PayloadCelB      PayloadType = 25
	PayloadJPEG      PayloadType = 26
	PayloadNV        PayloadType = 28
	PayloadH261      PayloadType = 31
	PayloadMPV       PayloadType = 32
	PayloadMP2T      PayloadType = 33
	PayloadH263      PayloadType = 34
)

// IsDynamic reports whether t is in the dynamically-assigned range 96–127.
func (t PayloadType) IsDynamic() bool { return t >= 96 && t <= 127 }

// IsReserved reports whether t is a reserved code point (1–2, 19, 72–76).
func (t PayloadType) IsReserved() bool {
	switch {
	case t == 1 || t == 2 || t == 19:
		return true
	case t >= 72 && t <= 76:
		return true
	}
	return false
}

// IsAssigned reports whether t carries a static IANA assignment.
func (t PayloadType) IsAssigned() bool { return payloadNames[t] != "" }

var payloadNames = map[PayloadType]string{
	PayloadPCMU:      "PCMU",
	PayloadGSM:       "GSM",
	PayloadG723:      "G723",
	PayloadDVI4_8K:   "DVI4/8000",
	PayloadDVI4_16K:  "DVI4/16000",
	PayloadLPC:       "LPC",
	PayloadPCMA:      "PCMA",
	PayloadG722:      "G722",
	PayloadL16Stereo: "L16/stereo",
	PayloadL16Mono:   "L16/mono",
	PayloadQCELP:     "QCELP",
	PayloadCN:        "CN",
	PayloadMPA:       "MPA",
	PayloadG728:      "G728",
	PayloadDVI4_11K:  "DVI4/11025",
	PayloadDVI4_22K:  "DVI4/22050",
	PayloadG729:      "G729",
	PayloadCelB:      "CelB",
	PayloadJPEG:      "JPEG",
	PayloadNV:        "nv",
	PayloadH261:      "H261",
	PayloadMPV:       "MPV",
	PayloadMP2T:      "MP2T",
	PayloadH263:      "H263",
}

func (t PayloadType) String() string {
	if name, ok := payloadNames[t]; ok {
		return name
	}
	switch {
	case t.IsDynamic():
		return fmt.Sprintf("dynamic(%d)", uint8(t))
	case t.IsReserved():
		return fmt.Sprintf("reserved(%d)", uint8(t))
	case t > 127:
		return fmt.Sprintf("illegal(%d)", uint8(t))
	}
	return fmt.Sprintf("unassigned(%d)", uint8(t))
}
