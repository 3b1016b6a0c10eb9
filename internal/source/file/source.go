// Package file implements a pcap file packet source.
package file

import (
	"fmt"
	"io"

	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"

	"firestige.xyz/strix/internal/core"
)

const Name = "file"

// Source reads captured frames from a pcap file.
type Source struct {
	path   string
	handle *pcap.Handle
}

func NewSource(path string) (*Source, error) {
	if path == "" {
		return nil, fmt.Errorf("file source: path is required: %w", core.ErrConfigInvalid)
	}
	return &Source{path: path}, nil
}

// Start opens the pcap file.
func (fs *Source) Start() error {
	handle, err := pcap.OpenOffline(fs.path)
	if err != nil {
		return fmt.Errorf("file source: open %s: %w", fs.path, err)
	}
	fs.handle = handle
	return nil
}

// ReadPacket returns the next frame. io.EOF signals end of file.
func (fs *Source) ReadPacket() (core.RawPacket, error) {
	if fs.handle == nil {
		return core.RawPacket{}, fmt.Errorf("file source: not started")
	}

	data, ci, err := fs.handle.ReadPacketData()
	if err != nil {
		if err == io.EOF {
			return core.RawPacket{}, io.EOF
		}
		return core.RawPacket{}, fmt.Errorf("file source: read: %w", err)
	}

	return core.RawPacket{
		Data:       data,
		Timestamp:  ci.Timestamp,
		CaptureLen: uint32(ci.CaptureLength),
		OrigLen:    uint32(ci.Length),
	}, nil
}

// SetFilter applies a BPF filter to the handle, e.g. "udp portrange 50000-50255".
func (fs *Source) SetFilter(bpf string) error {
	if fs.handle == nil {
		return fmt.Errorf("file source: not started")
	}
	if bpf == "" {
		return nil
	}
	if err := fs.handle.SetBPFFilter(bpf); err != nil {
		return fmt.Errorf("file source: bad filter %q: %w", bpf, err)
	}
	return nil
}

// LinkType reports the capture's link type for the decoder.
func (fs *Source) LinkType() layers.LinkType {
	if fs.handle == nil {
		return layers.LinkTypeEthernet
	}
	return fs.handle.LinkType()
}

func (fs *Source) Stop() error {
	if fs.handle != nil {
		fs.handle.Close()
		fs.handle = nil
	}
	return nil
}
