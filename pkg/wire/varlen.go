package wire

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all packet views. Callers match with errors.Is;
// views wrap them with positional context.
var (
	// ErrInsufficientData means the buffer is shorter than the fixed header
	// or a resolved variable-length field requires. Recoverable: wait for
	// more bytes or reject the datagram.
	ErrInsufficientData = errors.New("strix: insufficient data")

	// ErrMalformedLength means a declared length field resolves to an
	// impossible (negative) byte count. Reported, never silently clamped.
	ErrMalformedLength = errors.New("strix: malformed length")
)

// VarLen resolves the byte count of a variable-size field declared as the
// linear relation scale*value+bias over an already-decoded sibling field.
// Typical relations: csrc_count*4, ext_length*4, discovery_length-8.
//
// A negative result is a malformed packet (declared length below the fixed
// floor it is derived from) and yields ErrMalformedLength. Zero is valid.
func VarLen(value, scale, bias int) (int, error) {
	n := scale*value + bias
	if n < 0 {
		return 0, fmt.Errorf("field length %d*%d%+d = %d: %w", scale, value, bias, n, ErrMalformedLength)
	}
	return n, nil
}

// Slice returns buf[off : off+n] after checking that the range lies within
// the buffer. The returned slice aliases buf; no copy is made.
func Slice(buf []byte, off, n int) ([]byte, error) {
	if off+n > len(buf) {
		return nil, fmt.Errorf("need %d bytes at offset %d, have %d: %w", n, off, len(buf), ErrInsufficientData)
	}
	return buf[off : off+n], nil
}

// Check verifies that buf holds at least n bytes.
func Check(buf []byte, n int) error {
	if len(buf) < n {
		return fmt.Errorf("need %d bytes, have %d: %w", n, len(buf), ErrInsufficientData)
	}
	return nil
}
