package lcs

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shape is a small three-variant union used to exercise Union.
type shape interface {
	Marshaler
	isShape()
}

type shapeKind uint32

const (
	shapeKindPoint shapeKind = iota
	shapeKindEmpty
	shapeKindBox
)

type shapePoint struct{ X uint8 }

type shapeEmpty struct{}

type shapeBox struct {
	Inner shape
	Tag   *bool
}

func (shapePoint) isShape() {}
func (shapeEmpty) isShape() {}
func (shapeBox) isShape()   {}

func (v shapePoint) MarshalLCS(s *Serializer) {
	SerializeVariant(s, uint32(shapeKindPoint), func(s *Serializer) { s.SerializeU8(v.X) })
}

func (shapeEmpty) MarshalLCS(s *Serializer) {
	SerializeVariant(s, uint32(shapeKindEmpty), nil)
}

func (v shapeBox) MarshalLCS(s *Serializer) {
	SerializeVariant(s, uint32(shapeKindBox), func(s *Serializer) {
		v.Inner.MarshalLCS(s)
		SerializeOption(s, v.Tag, EncodeBool)
	})
}

var shapes *Union[shape]

func init() {
	shapes = NewUnion("shape", []DecodeFunc[shape]{
		shapeKindPoint: func(d *Deserializer) (shape, error) {
			x, err := d.DeserializeU8()
			if err != nil {
				return nil, err
			}
			return shapePoint{X: x}, nil
		},
		shapeKindEmpty: func(*Deserializer) (shape, error) { return shapeEmpty{}, nil },
		shapeKindBox: func(d *Deserializer) (shape, error) {
			inner, err := shapes.Deserialize(d)
			if err != nil {
				return nil, err
			}
			tag, err := DeserializeOption(d, DecodeBool)
			if err != nil {
				return nil, err
			}
			return shapeBox{Inner: inner, Tag: tag}, nil
		},
	})
}

func decodeShape(d *Deserializer) (shape, error) { return shapes.Deserialize(d) }

func serialize(fn func(s *Serializer)) []byte {
	s := NewSerializer()
	fn(s)
	return s.Bytes()
}

func TestPrimitives_LittleEndian(t *testing.T) {
	t.Parallel()

	got := serialize(func(s *Serializer) {
		s.SerializeBool(true)
		s.SerializeBool(false)
		s.SerializeU8(0xab)
		s.SerializeU16(0x0102)
		s.SerializeU32(0x01020304)
		s.SerializeU64(0x0102030405060708)
	})
	want := []byte{
		0x01, 0x00, 0xab,
		0x02, 0x01,
		0x04, 0x03, 0x02, 0x01,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	assert.Equal(t, want, got)

	d := NewDeserializer(got)
	b1, _ := d.DeserializeBool()
	b2, _ := d.DeserializeBool()
	u8, _ := d.DeserializeU8()
	u16, _ := d.DeserializeU16()
	u32, _ := d.DeserializeU32()
	u64, err := d.DeserializeU64()
	require.Nil(t, err)
	assert.True(t, b1)
	assert.False(t, b2)
	assert.Equal(t, uint8(0xab), u8)
	assert.Equal(t, uint16(0x0102), u16)
	assert.Equal(t, uint32(0x01020304), u32)
	assert.Equal(t, uint64(0x0102030405060708), u64)
	assert.Nil(t, d.CheckFinished())
}

func TestU128(t *testing.T) {
	t.Parallel()

	v := Uint128{High: 0x1122334455667788, Low: 0x99aabbccddeeff00}
	got := serialize(func(s *Serializer) { s.SerializeU128(v) })
	assert.Equal(t, []byte{
		0x00, 0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa, 0x99,
		0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11,
	}, got)

	back, err := Deserialize(got, DecodeU128)
	require.Nil(t, err)
	assert.Equal(t, v, back)

	top := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	u, err := Uint128FromBig(top)
	require.Nil(t, err)
	assert.Equal(t, Uint128{High: ^uint64(0), Low: ^uint64(0)}, u)
	assert.Equal(t, 0, top.Cmp(u.Big()))

	_, err = Uint128FromBig(new(big.Int).Lsh(big.NewInt(1), 128))
	assert.NotNil(t, err)
	_, err = Uint128FromBig(big.NewInt(-1))
	assert.NotNil(t, err)
	assert.Equal(t, "42", Uint128FromUint64(42).String())
}

func TestBool_InvalidByte(t *testing.T) {
	t.Parallel()

	_, err := Deserialize([]byte{0x02}, DecodeBool)
	assert.ErrorIs(t, err, ErrInvalidBool)

	de, ok := IsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, 0, de.Offset)
}

func TestTruncatedInput(t *testing.T) {
	t.Parallel()

	_, err := Deserialize([]byte{0x01, 0x02, 0x03}, DecodeU32)
	assert.ErrorIs(t, err, ErrTruncatedInput)

	_, err = Deserialize([]byte{}, DecodeU8)
	assert.ErrorIs(t, err, ErrTruncatedInput)

	// Claimed length far beyond the input fails before allocating.
	_, err = Deserialize([]byte{0xff, 0xff, 0xff, 0x07}, DecodeBytes)
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestTrailingData(t *testing.T) {
	t.Parallel()

	_, err := Deserialize([]byte{0x05, 0x00}, DecodeU8)
	assert.ErrorIs(t, err, ErrTrailingData)

	de, ok := IsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, 1, de.Offset)
}

func TestBytesAndStrings(t *testing.T) {
	t.Parallel()

	got := serialize(func(s *Serializer) {
		s.SerializeBytes([]byte{0xca, 0xfe})
		s.SerializeStr("LBR")
	})
	assert.Equal(t, []byte{0x02, 0xca, 0xfe, 0x03, 'L', 'B', 'R'}, got)

	d := NewDeserializer(got)
	b, err := d.DeserializeBytes()
	require.Nil(t, err)
	str, err := d.DeserializeStr()
	require.Nil(t, err)
	assert.Equal(t, []byte{0xca, 0xfe}, b)
	assert.Equal(t, "LBR", str)

	// The result must not alias the input.
	got[1] = 0
	assert.Equal(t, byte(0xca), b[0])

	empty, err := Deserialize([]byte{0x00}, DecodeBytes)
	require.Nil(t, err)
	assert.Nil(t, empty)
}

func TestStr_InvalidUTF8(t *testing.T) {
	t.Parallel()

	_, err := Deserialize([]byte{0x02, 0xc3, 0x28}, DecodeStr)
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	s, err := Deserialize([]byte{0x02, 0xc3, 0xa9}, DecodeStr)
	require.Nil(t, err)
	assert.Equal(t, "é", s)
}

func TestOption(t *testing.T) {
	t.Parallel()

	yes := true
	assert.Equal(t, []byte{0x01, 0x01}, serialize(func(s *Serializer) { SerializeOption(s, &yes, EncodeBool) }))
	assert.Equal(t, []byte{0x00}, serialize(func(s *Serializer) { SerializeOption[bool](s, nil, EncodeBool) }))

	v, err := Deserialize([]byte{0x01, 0x01}, func(d *Deserializer) (*bool, error) {
		return DeserializeOption(d, DecodeBool)
	})
	require.Nil(t, err)
	require.NotNil(t, v)
	assert.True(t, *v)

	v, err = Deserialize([]byte{0x00}, func(d *Deserializer) (*bool, error) {
		return DeserializeOption(d, DecodeBool)
	})
	require.Nil(t, err)
	assert.Nil(t, v)

	_, err = Deserialize([]byte{0x02, 0x01}, func(d *Deserializer) (*bool, error) {
		return DeserializeOption(d, DecodeBool)
	})
	assert.ErrorIs(t, err, ErrInvalidOptionTag)
}

func TestSequence(t *testing.T) {
	t.Parallel()

	got := serialize(func(s *Serializer) { SerializeSeq(s, []uint8{5, 7}, EncodeU8) })
	assert.Equal(t, []byte{0x02, 0x05, 0x07}, got)

	decodeSeq := func(d *Deserializer) ([]uint8, error) { return DeserializeSeq(d, DecodeU8) }

	back, err := Deserialize(got, decodeSeq)
	require.Nil(t, err)
	assert.Equal(t, []uint8{5, 7}, back)

	empty, err := Deserialize([]byte{0x00}, decodeSeq)
	require.Nil(t, err)
	assert.Nil(t, empty)

	_, err = Deserialize([]byte{0x03, 0x05, 0x07}, decodeSeq)
	assert.ErrorIs(t, err, ErrTruncatedInput)

	_, err = Deserialize([]byte{0x80, 0x00}, decodeSeq)
	assert.ErrorIs(t, err, ErrNonCanonicalLength)
}

func TestFixedArray(t *testing.T) {
	t.Parallel()

	got := serialize(func(s *Serializer) { SerializeArray(s, []uint16{1, 2, 3}, EncodeU16) })
	assert.Equal(t, []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00}, got)

	decode3 := func(d *Deserializer) ([]uint16, error) { return DeserializeArray(d, 3, DecodeU16) }
	back, err := Deserialize(got, decode3)
	require.Nil(t, err)
	assert.Equal(t, []uint16{1, 2, 3}, back)

	_, err = Deserialize(got[:5], decode3)
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestPairs_PreserveOrder(t *testing.T) {
	t.Parallel()

	pairs := []Pair[string, uint8]{
		{Key: "b", Value: 2},
		{Key: "a", Value: 1},
		{Key: "b", Value: 3},
	}
	got := serialize(func(s *Serializer) { SerializePairs(s, pairs, EncodeStr, EncodeU8) })
	assert.Equal(t, []byte{
		0x03,
		0x01, 'b', 0x02,
		0x01, 'a', 0x01,
		0x01, 'b', 0x03,
	}, got)

	back, err := Deserialize(got, func(d *Deserializer) ([]Pair[string, uint8], error) {
		return DeserializePairs(d, DecodeStr, DecodeU8)
	})
	require.Nil(t, err)
	assert.Equal(t, pairs, back)
}

func TestUnion_Encoding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte{0x01}, Marshal(shapeEmpty{}))
	assert.Equal(t, []byte{0x00, 0x09}, Marshal(shapePoint{X: 9}))

	tag := false
	nested := shapeBox{Inner: shapeBox{Inner: shapePoint{X: 1}}, Tag: &tag}
	data := Marshal(nested)
	assert.Equal(t, []byte{0x02, 0x02, 0x00, 0x01, 0x00, 0x01, 0x00}, data)

	back, err := Deserialize(data, decodeShape)
	require.Nil(t, err)
	assert.Equal(t, shape(nested), back)
	assert.Equal(t, 3, shapes.Len())
	assert.Equal(t, "shape", shapes.Name())
}

func TestUnion_UnknownVariant(t *testing.T) {
	t.Parallel()

	_, err := Deserialize([]byte{0x03}, decodeShape)
	assert.ErrorIs(t, err, ErrUnknownVariant)

	_, err = Deserialize([]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, decodeShape)
	assert.ErrorIs(t, err, ErrUnknownVariant)

	_, err = Deserialize([]byte{0x81, 0x00}, decodeShape)
	assert.ErrorIs(t, err, ErrNonCanonicalLength)
}

func TestUnion_DepthLimit(t *testing.T) {
	t.Parallel()

	data := append([]byte(strings.Repeat("\x02", 10)), 0x01)
	data = append(data, []byte(strings.Repeat("\x00", 10))...)

	_, err := Deserialize(data, decodeShape)
	require.Nil(t, err)

	_, err = DeserializeWithLimits(data, Limits{MaxContainerDepth: 5}, decodeShape)
	assert.ErrorIs(t, err, ErrDepthExceeded)
}

func TestLengthLimit(t *testing.T) {
	t.Parallel()

	data := []byte{0x04, 1, 2, 3, 4}
	_, err := DeserializeWithLimits(data, Limits{MaxSequenceLength: 3}, DecodeBytes)
	assert.ErrorIs(t, err, ErrLengthOverflow)

	// 2^31 is one past the format ceiling.
	_, err = Deserialize([]byte{0x80, 0x80, 0x80, 0x80, 0x08}, DecodeBytes)
	assert.ErrorIs(t, err, ErrLengthOverflow)
}

func TestNewUnion_PanicsOnGap(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewUnion("gappy", []DecodeFunc[shape]{
			0: decodeShape,
			2: decodeShape,
		})
	})
	assert.Panics(t, func() { NewUnion[shape]("empty", nil) })
}

type pair16 struct {
	A uint16
	B string
}

func (p pair16) MarshalLCS(s *Serializer) {
	s.SerializeU16(p.A)
	s.SerializeStr(p.B)
}

func (p *pair16) UnmarshalLCS(d *Deserializer) error {
	a, err := d.DeserializeU16()
	if err != nil {
		return err
	}
	b, err := d.DeserializeStr()
	if err != nil {
		return err
	}
	*p = pair16{A: a, B: b}
	return nil
}

func TestUnmarshal_Strict(t *testing.T) {
	t.Parallel()

	in := pair16{A: 7, B: "x"}
	data := Marshal(in)

	var out pair16
	require.Nil(t, Unmarshal(data, &out))
	assert.Equal(t, in, out)

	untouched := pair16{A: 1}
	err := Unmarshal(append(data, 0x00), &untouched)
	assert.True(t, errors.Is(err, ErrTrailingData))
	assert.Equal(t, pair16{A: 1}, untouched)
}

func TestSeqCapacity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		n, remaining int
		want         int
	}{
		{"short sequence", 3, 100, 3},
		{"forged count", 1 << 30, 10, 10},
		{"large input", 1 << 20, 1 << 20, maxSeqPrealloc},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, seqCapacity(tt.n, tt.remaining), tt.name)
	}
}

func TestSequence_LongerThanPrealloc(t *testing.T) {
	t.Parallel()

	items := make([]uint8, maxSeqPrealloc*3+1)
	for i := range items {
		items[i] = uint8(i)
	}
	data := serialize(func(s *Serializer) { SerializeSeq(s, items, EncodeU8) })
	back, err := Deserialize(data, func(d *Deserializer) ([]uint8, error) { return DeserializeSeq(d, DecodeU8) })
	require.NoError(t, err)
	assert.Equal(t, items, back)
}

func TestMarshalChecked(t *testing.T) {
	t.Parallel()

	box := shapeBox{Inner: shapePoint{X: 9}}
	data, err := MarshalChecked(box)
	require.NoError(t, err)
	assert.Equal(t, Marshal(box), data)

	_, err = MarshalChecked(shapeBox{})
	assert.ErrorIs(t, err, ErrIncompleteValue)
	assert.Contains(t, err.Error(), "lcs.shapeBox")

	_, err = MarshalChecked(nil)
	assert.ErrorIs(t, err, ErrIncompleteValue)

	var nilBox *shapeBox
	_, err = MarshalChecked(nilBox)
	assert.ErrorIs(t, err, ErrIncompleteValue)
}
