package rtcp

import (
	"fmt"

	"firestige.xyz/strix/pkg/wire"
	"firestige.xyz/strix/pkg/wrap"
)

const (
	// SenderInfoLen is the fixed size of the sender info block.
	SenderInfoLen = 20

	// ReportBlockLen is the fixed size of one reception report block.
	ReportBlockLen = 24
)

// SenderInfo is a view over the sender info block of a sender report:
// NTP wallclock, the matching RTP-clock timestamp, and running packet and
// byte counts for the sending SSRC.
type SenderInfo struct {
	buf []byte
}

// NewSenderInfo validates the 20-byte block and returns a view aliasing buf.
func NewSenderInfo(buf []byte) (*SenderInfo, error) {
	if err := wire.Check(buf, SenderInfoLen); err != nil {
		return nil, fmt.Errorf("rtcp: sender info: %w", err)
	}
	return &SenderInfo{buf: buf}, nil
}

// NTPSeconds returns the integer part of the NTP timestamp.
func (s *SenderInfo) NTPSeconds() uint32 { return wire.Uint32(s.buf, 0) }

// NTPFraction returns the fractional part of the NTP timestamp.
func (s *SenderInfo) NTPFraction() uint32 { return wire.Uint32(s.buf, 4) }

// RTPTimestamp returns the NTP instant converted to the RTP media clock.
func (s *SenderInfo) RTPTimestamp() wrap.Timestamp { return wrap.Timestamp(wire.Uint32(s.buf, 8)) }

// PacketCount returns the sender's total packet count this session.
func (s *SenderInfo) PacketCount() uint32 { return wire.Uint32(s.buf, 12) }

// ByteCount returns the sender's total payload byte count this session.
func (s *SenderInfo) ByteCount() uint32 { return wire.Uint32(s.buf, 16) }

// Payload returns the bytes following the block.
func (s *SenderInfo) Payload() []byte { return s.buf[SenderInfoLen:] }

// MutableSenderInfo is a read-write view over a sender info block.
type MutableSenderInfo struct {
	SenderInfo
}

// NewMutableSenderInfo validates buf exactly as NewSenderInfo does and
// returns a writable view.
func NewMutableSenderInfo(buf []byte) (*MutableSenderInfo, error) {
	s, err := NewSenderInfo(buf)
	if err != nil {
		return nil, err
	}
	return &MutableSenderInfo{SenderInfo: *s}, nil
}

func (s *MutableSenderInfo) SetNTPSeconds(v uint32)  { wire.PutUint32(s.buf, 0, v) }
func (s *MutableSenderInfo) SetNTPFraction(v uint32) { wire.PutUint32(s.buf, 4, v) }
func (s *MutableSenderInfo) SetRTPTimestamp(v wrap.Timestamp) {
	wire.PutUint32(s.buf, 8, uint32(v))
}
func (s *MutableSenderInfo) SetPacketCount(v uint32) { wire.PutUint32(s.buf, 12, v) }
func (s *MutableSenderInfo) SetByteCount(v uint32)   { wire.PutUint32(s.buf, 16, v) }

// ReportBlock is a view over one reception report block, as carried in
// sender and receiver reports.
type ReportBlock struct {
	buf []byte
}

// NewReportBlock validates the 24-byte block and returns a view aliasing buf.
func NewReportBlock(buf []byte) (*ReportBlock, error) {
	if err := wire.Check(buf, ReportBlockLen); err != nil {
		return nil, fmt.Errorf("rtcp: report block: %w", err)
	}
	return &ReportBlock{buf: buf}, nil
}

// SSRC returns the source this report concerns.
func (b ReportBlock) SSRC() uint32 { return wire.Uint32(b.buf, 0) }

// FractionLost returns packet loss as a fixed-point n/256 fraction.
func (b ReportBlock) FractionLost() uint8 { return b.buf[4] }

// CumulativeLost returns the 24-bit total of packets lost from this source.
func (b ReportBlock) CumulativeLost() uint32 { return wire.Uint24(b.buf, 5) }

// Cycles returns how many times the source's sequence number has wrapped.
// Together with Sequence this forms the extended highest sequence number.
func (b ReportBlock) Cycles() uint16 { return wire.Uint16(b.buf, 8) }

// Sequence returns the highest sequence number observed from this source.
func (b ReportBlock) Sequence() wrap.Seq { return wrap.Seq(wire.Uint16(b.buf, 10)) }

// Jitter returns the estimated variance of RTP interarrival time.
func (b ReportBlock) Jitter() uint32 { return wire.Uint32(b.buf, 12) }

// LastSR returns the middle 32 bits of the most recent sender report's NTP
// timestamp, or 0 when none has been observed.
func (b ReportBlock) LastSR() uint32 { return wire.Uint32(b.buf, 16) }

// LastSRDelay returns the delay since the last sender report, in 1/65536
// second units; 0 when none has been observed.
func (b ReportBlock) LastSRDelay() uint32 { return wire.Uint32(b.buf, 20) }

// MutableReportBlock is a read-write view over a reception report block.
type MutableReportBlock struct {
	ReportBlock
}

// NewMutableReportBlock validates buf exactly as NewReportBlock does and
// returns a writable view.
func NewMutableReportBlock(buf []byte) (*MutableReportBlock, error) {
	b, err := NewReportBlock(buf)
	if err != nil {
		return nil, err
	}
	return &MutableReportBlock{ReportBlock: *b}, nil
}

func (b *MutableReportBlock) SetSSRC(v uint32)          { wire.PutUint32(b.buf, 0, v) }
func (b *MutableReportBlock) SetFractionLost(v uint8)   { b.buf[4] = v }
func (b *MutableReportBlock) SetCumulativeLost(v uint32) { wire.PutUint24(b.buf, 5, v) }
func (b *MutableReportBlock) SetCycles(v uint16)        { wire.PutUint16(b.buf, 8, v) }
func (b *MutableReportBlock) SetSequence(v wrap.Seq)    { wire.PutUint16(b.buf, 10, uint16(v)) }
func (b *MutableReportBlock) SetJitter(v uint32)        { wire.PutUint32(b.buf, 12, v) }
func (b *MutableReportBlock) SetLastSR(v uint32)        { wire.PutUint32(b.buf, 16, v) }
func (b *MutableReportBlock) SetLastSRDelay(v uint32)   { wire.PutUint32(b.buf, 20, v) }
