// Package wire implements the primitive field codec shared by every packet
// view: big-endian multi-byte integers, sub-byte bitfields packed within a
// shared octet, and resolution of length fields whose byte count depends on
// sibling field values.
//
// All functions are pure computations over caller-owned buffers. The package
// never allocates, never logs, and the only failure modes are the two
// sentinel errors ErrInsufficientData and ErrMalformedLength.
package wire

import "encoding/binary"

// Uint8 reads the byte at off.
func Uint8(b []byte, off int) uint8 {
	return b[off]
}

// Uint16 reads a big-endian 16-bit integer at byte offset off.
func Uint16(b []byte, off int) uint16 {
	return binary.BigEndian.Uint16(b[off : off+2])
}

// Uint24 reads a big-endian 24-bit integer at byte offset off.
// RTCP report blocks use this width for the cumulative-loss counter.
func Uint24(b []byte, off int) uint32 {
	return uint32(b[off])<<16 | uint32(b[off+1])<<8 | uint32(b[off+2])
}

// Uint32 reads a big-endian 32-bit integer at byte offset off.
func Uint32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off : off+4])
}

// PutUint8 writes v at off.
func PutUint8(b []byte, off int, v uint8) {
	b[off] = v
}

// PutUint16 writes a big-endian 16-bit integer at byte offset off.
func PutUint16(b []byte, off int, v uint16) {
	binary.BigEndian.PutUint16(b[off:off+2], v)
}

// PutUint24 writes the low 24 bits of v big-endian at byte offset off.
func PutUint24(b []byte, off int, v uint32) {
	b[off] = byte(v >> 16)
	b[off+1] = byte(v >> 8)
	b[off+2] = byte(v)
}

// PutUint32 writes a big-endian 32-bit integer at byte offset off.
func PutUint32(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:off+4], v)
}
