package lcs

// EncodeFunc writes one element of type T.
type EncodeFunc[T any] func(s *Serializer, v T)

// DecodeFunc reads one element of type T.
type DecodeFunc[T any] func(d *Deserializer) (T, error)

// Pair is one entry of an ordered key/value list.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Encode is an EncodeFunc for any Marshaler.
func Encode[T Marshaler](s *Serializer, v T) {
	v.MarshalLCS(s)
}

// SerializeArray writes items with no length prefix. The caller's type
// fixes len(items).
func SerializeArray[T any](s *Serializer, items []T, enc EncodeFunc[T]) {
	for _, item := range items {
		enc(s, item)
	}
}

// DeserializeArray reads exactly n elements.
func DeserializeArray[T any](d *Deserializer, n int, dec DecodeFunc[T]) ([]T, error) {
	out := make([]T, n)
	for i := range out {
		v, err := dec(d)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// SerializeSeq writes a length prefix followed by every element.
func SerializeSeq[T any](s *Serializer, items []T, enc EncodeFunc[T]) {
	s.SerializeLen(len(items))
	for _, item := range items {
		enc(s, item)
	}
}

// maxSeqPrealloc bounds the capacity reserved up front for a decoded
// sequence. Longer sequences grow by append as elements decode.
const maxSeqPrealloc = 4096

// seqCapacity is the capacity to reserve for a sequence claiming n
// elements with remaining input bytes left. Every element takes at
// least one byte, and a forged count must not size the allocation.
func seqCapacity(n, remaining int) int {
	return min(n, remaining, maxSeqPrealloc)
}

// DeserializeSeq reads a length-prefixed sequence. An empty sequence
// decodes as nil.
func DeserializeSeq[T any](d *Deserializer, dec DecodeFunc[T]) ([]T, error) {
	n, err := d.DeserializeLen()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]T, 0, seqCapacity(n, d.Remaining()))
	for i := 0; i < n; i++ {
		v, err := dec(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// SerializeOption writes 0x00 for nil or 0x01 followed by *v.
func SerializeOption[T any](s *Serializer, v *T, enc EncodeFunc[T]) {
	if v == nil {
		s.SerializeOptionTag(false)
		return
	}
	s.SerializeOptionTag(true)
	enc(s, *v)
}

// DeserializeOption reads an optional value; absent decodes as nil.
func DeserializeOption[T any](d *Deserializer, dec DecodeFunc[T]) (*T, error) {
	present, err := d.DeserializeOptionTag()
	if err != nil || !present {
		return nil, err
	}
	v, err := dec(d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SerializePairs writes pairs in the given order as a sequence of
// key||value encodings. Order is part of the encoding; nothing is
// sorted or deduplicated.
func SerializePairs[K, V any](s *Serializer, pairs []Pair[K, V], encKey EncodeFunc[K], encValue EncodeFunc[V]) {
	SerializeSeq(s, pairs, func(s *Serializer, p Pair[K, V]) {
		encKey(s, p.Key)
		encValue(s, p.Value)
	})
}

// DeserializePairs reads a pair list written by SerializePairs.
func DeserializePairs[K, V any](d *Deserializer, decKey DecodeFunc[K], decValue DecodeFunc[V]) ([]Pair[K, V], error) {
	return DeserializeSeq(d, func(d *Deserializer) (Pair[K, V], error) {
		k, err := decKey(d)
		if err != nil {
			return Pair[K, V]{}, err
		}
		v, err := decValue(d)
		if err != nil {
			return Pair[K, V]{}, err
		}
		return Pair[K, V]{Key: k, Value: v}, nil
	})
}

// Primitive element codecs for use with the generic helpers.

// EncodeBool writes a bool.
func EncodeBool(s *Serializer, v bool) { s.SerializeBool(v) }

// EncodeU8 writes a u8.
func EncodeU8(s *Serializer, v uint8) { s.SerializeU8(v) }

// EncodeU16 writes a u16.
func EncodeU16(s *Serializer, v uint16) { s.SerializeU16(v) }

// EncodeU32 writes a u32.
func EncodeU32(s *Serializer, v uint32) { s.SerializeU32(v) }

// EncodeU64 writes a u64.
func EncodeU64(s *Serializer, v uint64) { s.SerializeU64(v) }

// EncodeU128 writes a u128.
func EncodeU128(s *Serializer, v Uint128) { s.SerializeU128(v) }

// EncodeBytes writes a length-prefixed byte string.
func EncodeBytes(s *Serializer, v []byte) { s.SerializeBytes(v) }

// EncodeStr writes a length-prefixed string.
func EncodeStr(s *Serializer, v string) { s.SerializeStr(v) }

// DecodeBool reads a bool.
func DecodeBool(d *Deserializer) (bool, error) { return d.DeserializeBool() }

// DecodeU8 reads a u8.
func DecodeU8(d *Deserializer) (uint8, error) { return d.DeserializeU8() }

// DecodeU16 reads a u16.
func DecodeU16(d *Deserializer) (uint16, error) { return d.DeserializeU16() }

// DecodeU32 reads a u32.
func DecodeU32(d *Deserializer) (uint32, error) { return d.DeserializeU32() }

// DecodeU64 reads a u64.
func DecodeU64(d *Deserializer) (uint64, error) { return d.DeserializeU64() }

// DecodeU128 reads a u128.
func DecodeU128(d *Deserializer) (Uint128, error) { return d.DeserializeU128() }

// DecodeBytes reads a length-prefixed byte string.
func DecodeBytes(d *Deserializer) ([]byte, error) { return d.DeserializeBytes() }

// DecodeStr reads a length-prefixed string.
func DecodeStr(d *Deserializer) (string, error) { return d.DeserializeStr() }
