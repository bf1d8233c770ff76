package types

import (
	"fmt"

	"github.com/blockberries/ledgertypes/lcs"
)

// TypeTagKind is the discriminant of a TypeTag.
type TypeTagKind uint32

const (
	TypeTagKindBool TypeTagKind = iota
	TypeTagKindU8
	TypeTagKindU64
	TypeTagKindU128
	TypeTagKindAddress
	TypeTagKindSigner
	TypeTagKindVector
	TypeTagKindStruct
)

// TypeTag names a Move type. Vector and Struct tags nest other tags.
type TypeTag interface {
	lcs.Marshaler
	Kind() TypeTagKind
	isTypeTag()
}

type (
	TypeTagBool    struct{}
	TypeTagU8      struct{}
	TypeTagU64     struct{}
	TypeTagU128    struct{}
	TypeTagAddress struct{}
	TypeTagSigner  struct{}

	// TypeTagVector is vector<Elem>.
	TypeTagVector struct {
		Elem TypeTag
	}

	// TypeTagStruct is a struct type instantiated at the given tag.
	TypeTagStruct struct {
		Value StructTag
	}
)

func (TypeTagBool) Kind() TypeTagKind    { return TypeTagKindBool }
func (TypeTagU8) Kind() TypeTagKind      { return TypeTagKindU8 }
func (TypeTagU64) Kind() TypeTagKind     { return TypeTagKindU64 }
func (TypeTagU128) Kind() TypeTagKind    { return TypeTagKindU128 }
func (TypeTagAddress) Kind() TypeTagKind { return TypeTagKindAddress }
func (TypeTagSigner) Kind() TypeTagKind  { return TypeTagKindSigner }
func (TypeTagVector) Kind() TypeTagKind  { return TypeTagKindVector }
func (TypeTagStruct) Kind() TypeTagKind  { return TypeTagKindStruct }

func (TypeTagBool) isTypeTag()    {}
func (TypeTagU8) isTypeTag()      {}
func (TypeTagU64) isTypeTag()     {}
func (TypeTagU128) isTypeTag()    {}
func (TypeTagAddress) isTypeTag() {}
func (TypeTagSigner) isTypeTag()  {}
func (TypeTagVector) isTypeTag()  {}
func (TypeTagStruct) isTypeTag()  {}

func (t TypeTagBool) MarshalLCS(s *lcs.Serializer)    { lcs.SerializeVariant(s, uint32(t.Kind()), nil) }
func (t TypeTagU8) MarshalLCS(s *lcs.Serializer)      { lcs.SerializeVariant(s, uint32(t.Kind()), nil) }
func (t TypeTagU64) MarshalLCS(s *lcs.Serializer)     { lcs.SerializeVariant(s, uint32(t.Kind()), nil) }
func (t TypeTagU128) MarshalLCS(s *lcs.Serializer)    { lcs.SerializeVariant(s, uint32(t.Kind()), nil) }
func (t TypeTagAddress) MarshalLCS(s *lcs.Serializer) { lcs.SerializeVariant(s, uint32(t.Kind()), nil) }
func (t TypeTagSigner) MarshalLCS(s *lcs.Serializer)  { lcs.SerializeVariant(s, uint32(t.Kind()), nil) }

func (t TypeTagVector) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(t.Kind()), t.Elem.MarshalLCS)
}

func (t TypeTagStruct) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(t.Kind()), t.Value.MarshalLCS)
}

// StructTag identifies a struct type declared in a module.
type StructTag struct {
	Address    AccountAddress
	Module     Identifier
	Name       Identifier
	TypeParams []TypeTag
}

func (t StructTag) MarshalLCS(s *lcs.Serializer) {
	t.Address.MarshalLCS(s)
	t.Module.MarshalLCS(s)
	t.Name.MarshalLCS(s)
	lcs.SerializeSeq(s, t.TypeParams, lcs.Encode[TypeTag])
}

// DecodeStructTag reads a StructTag.
func DecodeStructTag(d *lcs.Deserializer) (StructTag, error) {
	addr, err := DecodeAccountAddress(d)
	if err != nil {
		return StructTag{}, err
	}
	module, err := DecodeIdentifier(d)
	if err != nil {
		return StructTag{}, err
	}
	name, err := DecodeIdentifier(d)
	if err != nil {
		return StructTag{}, err
	}
	params, err := lcs.DeserializeSeq(d, DecodeTypeTag)
	if err != nil {
		return StructTag{}, err
	}
	return StructTag{Address: addr, Module: module, Name: name, TypeParams: params}, nil
}

// typeTags refers to itself through vector and struct tags, so it is
// built in init rather than in its declaration.
var typeTags *lcs.Union[TypeTag]

func init() {
	unit := func(v TypeTag) lcs.DecodeFunc[TypeTag] {
		return func(*lcs.Deserializer) (TypeTag, error) { return v, nil }
	}
	typeTags = lcs.NewUnion("TypeTag", []lcs.DecodeFunc[TypeTag]{
		TypeTagKindBool:    unit(TypeTagBool{}),
		TypeTagKindU8:      unit(TypeTagU8{}),
		TypeTagKindU64:     unit(TypeTagU64{}),
		TypeTagKindU128:    unit(TypeTagU128{}),
		TypeTagKindAddress: unit(TypeTagAddress{}),
		TypeTagKindSigner:  unit(TypeTagSigner{}),
		TypeTagKindVector: func(d *lcs.Deserializer) (TypeTag, error) {
			elem, err := typeTags.Deserialize(d)
			if err != nil {
				return nil, err
			}
			return TypeTagVector{Elem: elem}, nil
		},
		TypeTagKindStruct: func(d *lcs.Deserializer) (TypeTag, error) {
			st, err := DecodeStructTag(d)
			if err != nil {
				return nil, err
			}
			return TypeTagStruct{Value: st}, nil
		},
	})
}

// DecodeTypeTag reads a TypeTag.
func DecodeTypeTag(d *lcs.Deserializer) (TypeTag, error) {
	return typeTags.Deserialize(d)
}

// CurrencyTypeTag returns the type tag of the currency with the given
// code: a struct tag at CoreCodeAddress whose module and name are both
// the code.
func CurrencyTypeTag(code string) TypeTag {
	return TypeTagStruct{Value: StructTag{
		Address: CoreCodeAddress,
		Module:  Identifier(code),
		Name:    Identifier(code),
	}}
}

// CurrencyCode returns the currency code named by a struct type tag.
func CurrencyCode(tag TypeTag) (string, error) {
	st, ok := tag.(TypeTagStruct)
	if !ok {
		return "", fmt.Errorf("type tag %T does not name a currency", tag)
	}
	return string(st.Value.Name), nil
}
