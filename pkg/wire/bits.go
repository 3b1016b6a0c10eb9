package wire

// Bits extracts a width-bit unsigned field from b, where bitOff counts from
// the most significant bit. The field must lie entirely within the octet:
// bitOff+width <= 8. Sibling fields packed in the same octet are untouched
// by the matching PutBits.
//
// RTP's first header byte, for example, packs version(2) padding(1)
// extension(1) csrc_count(4) at bit offsets 0, 2, 3 and 4.
func Bits(b byte, bitOff, width uint) uint8 {
	shift := 8 - bitOff - width
	mask := byte(1<<width - 1)
	return (b >> shift) & mask
}

// PutBits returns b with the width-bit field at bitOff replaced by the low
// width bits of v. All other bits of b are preserved.
func PutBits(b byte, bitOff, width uint, v uint8) byte {
	shift := 8 - bitOff - width
	mask := byte(1<<width-1) << shift
	return b&^mask | (v<<shift)&mask
}

// Bit reports whether the single bit at bitOff (from the MSB) is set.
func Bit(b byte, bitOff uint) bool {
	return Bits(b, bitOff, 1) == 1
}

// PutBit returns b with the single bit at bitOff set to v.
func PutBit(b byte, bitOff uint, v bool) byte {
	if v {
		return PutBits(b, bitOff, 1, 1)
	}
	return PutBits(b, bitOff, 1, 0)
}
