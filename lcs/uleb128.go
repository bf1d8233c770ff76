package lcs

import "math"

// maxUleb128Bytes is the longest encoding of a 32-bit value.
const maxUleb128Bytes = 5

// AppendUleb128 appends the minimal uleb128 encoding of v to dst.
func AppendUleb128(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// ReadUleb128 decodes a uleb128 value bounded by math.MaxUint32 from the
// front of src. It returns the value and the number of bytes consumed.
// The returned error is one of ErrTruncatedInput, ErrLengthOverflow or
// ErrNonCanonicalLength.
func ReadUleb128(src []byte) (uint32, int, error) {
	var value uint64
	for i := 0; i < maxUleb128Bytes; i++ {
		if i >= len(src) {
			return 0, i, ErrTruncatedInput
		}
		b := src[i]
		digit := uint64(b & 0x7f)
		value |= digit << (7 * i)
		if b&0x80 != 0 {
			continue
		}
		if i > 0 && digit == 0 {
			return 0, i + 1, ErrNonCanonicalLength
		}
		if value > math.MaxUint32 {
			return 0, i + 1, ErrLengthOverflow
		}
		return uint32(value), i + 1, nil
	}
	return 0, maxUleb128Bytes, ErrLengthOverflow
}
