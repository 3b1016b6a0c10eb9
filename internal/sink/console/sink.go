// Package console implements a sink that prints one line per packet.
package console

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"firestige.xyz/strix/internal/core"
)

const Name = "console"

// Sink writes inspection results as single-line text records.
type Sink struct {
	w io.Writer
}

func NewSink() *Sink {
	return &Sink{w: os.Stdout}
}

// NewSinkWriter creates a sink writing to w. Used by tests.
func NewSinkWriter(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Send formats the packet as
//
//	15:04:05.000000 10.0.0.1:50000 > 10.0.0.2:50004 rtp rtp.seq=17 rtp.ssrc=0x00001234 ...
//
// with labels sorted by key for stable output.
func (s *Sink) Send(out *core.OutputPacket) error {
	var b strings.Builder

	b.WriteString(out.Timestamp.Format("15:04:05.000000"))
	fmt.Fprintf(&b, " %s:%d > %s:%d %s",
		out.SrcIP, out.SrcPort, out.DstIP, out.DstPort, out.PayloadKind)

	keys := make([]string, 0, len(out.Labels))
	for k := range out.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, out.Labels[k])
	}
	b.WriteByte('\n')

	_, err := io.WriteString(s.w, b.String())
	return err
}

func (s *Sink) Close() error { return nil }
