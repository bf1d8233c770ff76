package lcs

import "encoding/binary"

// Marshaler is implemented by every value that has a canonical encoding.
type Marshaler interface {
	MarshalLCS(s *Serializer)
}

// Serializer accumulates the canonical encoding of a value.
// Serialization of a well-formed value never fails, so none of its
// methods return an error.
type Serializer struct {
	buf []byte
}

// NewSerializer creates an empty Serializer.
func NewSerializer() *Serializer {
	return &Serializer{buf: make([]byte, 0, 64)}
}

// SerializeBool writes 0x01 for true and 0x00 for false.
func (s *Serializer) SerializeBool(v bool) {
	if v {
		s.buf = append(s.buf, 1)
	} else {
		s.buf = append(s.buf, 0)
	}
}

// SerializeU8 writes a single byte.
func (s *Serializer) SerializeU8(v uint8) {
	s.buf = append(s.buf, v)
}

// SerializeU16 writes v little-endian.
func (s *Serializer) SerializeU16(v uint16) {
	s.buf = binary.LittleEndian.AppendUint16(s.buf, v)
}

// SerializeU32 writes v little-endian.
func (s *Serializer) SerializeU32(v uint32) {
	s.buf = binary.LittleEndian.AppendUint32(s.buf, v)
}

// SerializeU64 writes v little-endian.
func (s *Serializer) SerializeU64(v uint64) {
	s.buf = binary.LittleEndian.AppendUint64(s.buf, v)
}

// SerializeU128 writes the low half first.
func (s *Serializer) SerializeU128(v Uint128) {
	s.SerializeU64(v.Low)
	s.SerializeU64(v.High)
}

// SerializeLen writes a sequence length prefix.
func (s *Serializer) SerializeLen(n int) {
	s.buf = AppendUleb128(s.buf, uint64(n))
}

// SerializeVariantIndex writes a tagged-union discriminant.
func (s *Serializer) SerializeVariantIndex(index uint32) {
	s.buf = AppendUleb128(s.buf, uint64(index))
}

// SerializeOptionTag writes the presence byte of an optional value.
func (s *Serializer) SerializeOptionTag(present bool) {
	s.SerializeBool(present)
}

// SerializeBytes writes a length-prefixed byte string.
func (s *Serializer) SerializeBytes(v []byte) {
	s.SerializeLen(len(v))
	s.buf = append(s.buf, v...)
}

// SerializeStr writes a length-prefixed UTF-8 string.
func (s *Serializer) SerializeStr(v string) {
	s.SerializeLen(len(v))
	s.buf = append(s.buf, v...)
}

// SerializeFixedBytes writes v with no length prefix. The length is
// implied by the type being encoded.
func (s *Serializer) SerializeFixedBytes(v []byte) {
	s.buf = append(s.buf, v...)
}

// Offset returns the number of bytes written so far.
func (s *Serializer) Offset() int { return len(s.buf) }

// Bytes returns the encoding accumulated so far.
func (s *Serializer) Bytes() []byte { return s.buf }
