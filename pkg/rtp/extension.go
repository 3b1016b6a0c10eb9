package rtp

import (
	"fmt"

	"firestige.xyz/strix/pkg/wire"
)

// ExtensionHeaderLen is the fixed prefix of an RTP header extension:
// a 16-bit profile-defined info field and a 16-bit word count.
const ExtensionHeaderLen = 4

// Extension is a read-only view over an RTP header extension (RFC 3550
// §5.3.1). Its buffer starts where the CSRC list ends; the declared length
// counts 32-bit words of extension data, and anything after those words is
// surfaced as opaque payload.
type Extension struct {
	buf []byte
}

// NewExtension validates that buf holds the 4-byte extension prefix plus the
// 4*length data bytes it declares, and returns a view aliasing buf.
func NewExtension(buf []byte) (*Extension, error) {
	if err := wire.Check(buf, ExtensionHeaderLen); err != nil {
		return nil, fmt.Errorf("rtp: extension: %w", err)
	}
	e := &Extension{buf: buf}

	dataLen, err := wire.VarLen(int(e.Length()), 4, 0)
	if err != nil {
		return nil, fmt.Errorf("rtp: extension data: %w", err)
	}
	if _, err := wire.Slice(buf, ExtensionHeaderLen, dataLen); err != nil {
		return nil, fmt.Errorf("rtp: extension data: %w", err)
	}
	return e, nil
}

// Info returns the profile-defined 16-bit field, usually an extension type.
func (e *Extension) Info() uint16 { return wire.Uint16(e.buf, 0) }

// Length returns the declared extension data length in 32-bit words.
// Zero is valid.
func (e *Extension) Length() uint16 { return wire.Uint16(e.buf, 2) }

// Data returns the 4*Length extension data bytes, clamped to the buffer.
func (e *Extension) Data() []byte {
	end := ExtensionHeaderLen + 4*int(e.Length())
	if end > len(e.buf) {
		end = len(e.buf)
	}
	return e.buf[ExtensionHeaderLen:end]
}

// Payload returns the remainder of the buffer after the extension data.
func (e *Extension) Payload() []byte {
	off := ExtensionHeaderLen + len(e.Data())
	return e.buf[off:]
}

// Bytes returns the full underlying buffer.
func (e *Extension) Bytes() []byte { return e.buf }

// MutableExtension is a read-write view over an RTP header extension.
type MutableExtension struct {
	Extension
}

// NewMutableExtension validates buf exactly as NewExtension does and returns
// a writable view.
func NewMutableExtension(buf []byte) (*MutableExtension, error) {
	e, err := NewExtension(buf)
	if err != nil {
		return nil, err
	}
	return &MutableExtension{Extension: *e}, nil
}

// SetInfo writes the profile-defined field.
func (e *MutableExtension) SetInfo(v uint16) { wire.PutUint16(e.buf, 0, v) }

// SetLength writes the data word count. The buffer is not resized.
func (e *MutableExtension) SetLength(v uint16) { wire.PutUint16(e.buf, 2, v) }
