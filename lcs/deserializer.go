package lcs

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Unmarshaler is implemented by records that decode in place.
// Implementations must leave the receiver untouched on error.
type Unmarshaler interface {
	UnmarshalLCS(d *Deserializer) error
}

// Deserializer is a cursor over a complete input buffer.
type Deserializer struct {
	input  []byte
	pos    int
	depth  int
	limits Limits
}

// NewDeserializer creates a Deserializer over input with DefaultLimits.
func NewDeserializer(input []byte) *Deserializer {
	return NewDeserializerWithLimits(input, DefaultLimits)
}

// NewDeserializerWithLimits creates a Deserializer bounded by limits.
// Zero fields fall back to the defaults.
func NewDeserializerWithLimits(input []byte, limits Limits) *Deserializer {
	return &Deserializer{input: input, limits: limits.normalize()}
}

func (d *Deserializer) fail(kind error, format string, args ...any) error {
	return NewDecodeError(kind, d.pos, fmt.Sprintf(format, args...))
}

// next consumes n bytes, failing if fewer remain.
func (d *Deserializer) next(n int) ([]byte, error) {
	if n > d.Remaining() {
		return nil, d.fail(ErrTruncatedInput, "need %d bytes, have %d", n, d.Remaining())
	}
	b := d.input[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// DeserializeBool reads a bool, rejecting bytes other than 0x00 and 0x01.
func (d *Deserializer) DeserializeBool() (bool, error) {
	b, err := d.next(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		d.pos--
		return false, d.fail(ErrInvalidBool, "byte 0x%02x", b[0])
	}
}

// DeserializeU8 reads a single byte.
func (d *Deserializer) DeserializeU8() (uint8, error) {
	b, err := d.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// DeserializeU16 reads a little-endian u16.
func (d *Deserializer) DeserializeU16() (uint16, error) {
	b, err := d.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// DeserializeU32 reads a little-endian u32.
func (d *Deserializer) DeserializeU32() (uint32, error) {
	b, err := d.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// DeserializeU64 reads a little-endian u64.
func (d *Deserializer) DeserializeU64() (uint64, error) {
	b, err := d.next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// DeserializeU128 reads the low half, then the high half.
func (d *Deserializer) DeserializeU128() (Uint128, error) {
	b, err := d.next(16)
	if err != nil {
		return Uint128{}, err
	}
	return Uint128{
		Low:  binary.LittleEndian.Uint64(b[:8]),
		High: binary.LittleEndian.Uint64(b[8:]),
	}, nil
}

func (d *Deserializer) readUleb128() (uint32, error) {
	v, n, err := ReadUleb128(d.input[d.pos:])
	if err != nil {
		return 0, d.fail(err, "uleb128")
	}
	d.pos += n
	return v, nil
}

// DeserializeLen reads a length prefix and checks it against the
// configured ceiling.
func (d *Deserializer) DeserializeLen() (int, error) {
	start := d.pos
	v, err := d.readUleb128()
	if err != nil {
		return 0, err
	}
	if uint64(v) > uint64(d.limits.MaxSequenceLength) {
		d.pos = start
		return 0, d.fail(ErrLengthOverflow, "length %d exceeds %d", v, d.limits.MaxSequenceLength)
	}
	return int(v), nil
}

// DeserializeVariantIndex reads a tagged-union discriminant.
func (d *Deserializer) DeserializeVariantIndex() (uint32, error) {
	return d.readUleb128()
}

// DeserializeOptionTag reads the presence byte of an optional value.
func (d *Deserializer) DeserializeOptionTag() (bool, error) {
	b, err := d.next(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		d.pos--
		return false, d.fail(ErrInvalidOptionTag, "byte 0x%02x", b[0])
	}
}

// DeserializeBytes reads a length-prefixed byte string. The result is a
// copy and never aliases the input. An empty string decodes as nil.
func (d *Deserializer) DeserializeBytes() ([]byte, error) {
	n, err := d.DeserializeLen()
	if err != nil {
		return nil, err
	}
	return d.DeserializeFixedBytes(n)
}

// DeserializeStr reads a length-prefixed UTF-8 string.
func (d *Deserializer) DeserializeStr() (string, error) {
	n, err := d.DeserializeLen()
	if err != nil {
		return "", err
	}
	start := d.pos
	b, err := d.next(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		d.pos = start
		return "", d.fail(ErrInvalidUTF8, "%d bytes", n)
	}
	return string(b), nil
}

// DeserializeFixedBytes reads exactly n bytes with no length prefix.
func (d *Deserializer) DeserializeFixedBytes(n int) ([]byte, error) {
	b, err := d.next(n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// IncreaseContainerDepth enters a nested container.
func (d *Deserializer) IncreaseContainerDepth() error {
	if d.depth >= d.limits.MaxContainerDepth {
		return d.fail(ErrDepthExceeded, "depth %d", d.depth)
	}
	d.depth++
	return nil
}

// DecreaseContainerDepth leaves a nested container.
func (d *Deserializer) DecreaseContainerDepth() {
	d.depth--
}

// Offset returns the number of bytes consumed so far.
func (d *Deserializer) Offset() int { return d.pos }

// Remaining returns the number of unread bytes.
func (d *Deserializer) Remaining() int { return len(d.input) - d.pos }

// CheckFinished fails with ErrTrailingData if any input is unread.
func (d *Deserializer) CheckFinished() error {
	if n := d.Remaining(); n > 0 {
		return d.fail(ErrTrailingData, "%d unread bytes", n)
	}
	return nil
}
