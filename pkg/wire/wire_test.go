package wire

import (
	"errors"
	"testing"
)

func TestBitsExtraction(t *testing.T) {
	// RTP byte 0: V=2 P=1 X=0 CC=5 → 10 1 0 0101 = 0xA5
	b := byte(0xA5)

	if v := Bits(b, 0, 2); v != 2 {
		t.Errorf("version = %d; want 2", v)
	}
	if !Bit(b, 2) {
		t.Error("padding bit should be set")
	}
	if Bit(b, 3) {
		t.Error("extension bit should be clear")
	}
	if v := Bits(b, 4, 4); v != 5 {
		t.Errorf("csrc count = %d; want 5", v)
	}
}

func TestPutBitsPreservesSiblings(t *testing.T) {
	b := byte(0xA5) // V=2 P=1 X=0 CC=5

	b = PutBits(b, 4, 4, 0xF)
	if b != 0xAF {
		t.Errorf("after CC=15: %#02x; want 0xaf", b)
	}

	b = PutBit(b, 2, false)
	if b != 0x8F {
		t.Errorf("after P=0: %#02x; want 0x8f", b)
	}

	// Writing a value wider than the field must be masked, not smeared.
	b = PutBits(b, 0, 2, 0xFF)
	if b != 0xCF {
		t.Errorf("after V=3 (overwide write): %#02x; want 0xcf", b)
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	b := make([]byte, 8)

	PutUint16(b, 0, 0xBEEF)
	if v := Uint16(b, 0); v != 0xBEEF {
		t.Errorf("Uint16 = %#04x; want 0xbeef", v)
	}

	PutUint24(b, 2, 0xABCDEF)
	if v := Uint24(b, 2); v != 0xABCDEF {
		t.Errorf("Uint24 = %#06x; want 0xabcdef", v)
	}

	PutUint32(b, 4, 0xDEADBEEF)
	if v := Uint32(b, 4); v != 0xDEADBEEF {
		t.Errorf("Uint32 = %#08x; want 0xdeadbeef", v)
	}

	// Big-endian byte order on the wire.
	if b[0] != 0xBE || b[1] != 0xEF {
		t.Errorf("Uint16 byte order = % x; want be ef", b[0:2])
	}
}

func TestVarLen(t *testing.T) {
	tests := []struct {
		name                string
		value, scale, bias  int
		want                int
		wantMalformed       bool
	}{
		{"csrc words", 5, 4, 0, 20, false},
		{"zero is valid", 0, 4, 0, 0, false},
		{"discovery address", 70, 1, -8, 62, false},
		{"exact floor", 8, 1, -8, 0, false},
		{"below floor", 6, 1, -8, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := VarLen(tt.value, tt.scale, tt.bias)
			if tt.wantMalformed {
				if !errors.Is(err, ErrMalformedLength) {
					t.Fatalf("err = %v; want ErrMalformedLength", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != tt.want {
				t.Errorf("VarLen = %d; want %d", n, tt.want)
			}
		})
	}
}

func TestSliceBounds(t *testing.T) {
	buf := []byte{1, 2, 3, 4}

	s, err := Slice(buf, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 3 || s[0] != 2 {
		t.Errorf("Slice = %v; want [2 3 4]", s)
	}

	// Aliasing, not copying.
	s[0] = 9
	if buf[1] != 9 {
		t.Error("Slice must alias the source buffer")
	}

	if _, err := Slice(buf, 2, 3); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("overrun err = %v; want ErrInsufficientData", err)
	}

	// Zero-length slice at the very end is valid.
	if _, err := Slice(buf, 4, 0); err != nil {
		t.Errorf("zero-length at end: %v", err)
	}
}

func TestCheck(t *testing.T) {
	if err := Check([]byte{1, 2}, 2); err != nil {
		t.Errorf("Check(2,2) = %v", err)
	}
	if err := Check([]byte{1}, 2); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Check(1,2) = %v; want ErrInsufficientData", err)
	}
}
