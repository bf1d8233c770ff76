package types

import "github.com/blockberries/ledgertypes/lcs"

// ArgumentKind is the discriminant of a TransactionArgument.
type ArgumentKind uint32

const (
	ArgumentKindU8 ArgumentKind = iota
	ArgumentKindU64
	ArgumentKindU128
	ArgumentKindAddress
	ArgumentKindU8Vector
	ArgumentKindBool
)

// TransactionArgument is a typed argument passed to a script.
type TransactionArgument interface {
	lcs.Marshaler
	Kind() ArgumentKind
	isTransactionArgument()
}

type (
	ArgumentU8       uint8
	ArgumentU64      uint64
	ArgumentU128     lcs.Uint128
	ArgumentAddress  AccountAddress
	ArgumentU8Vector []byte
	ArgumentBool     bool
)

func (ArgumentU8) Kind() ArgumentKind       { return ArgumentKindU8 }
func (ArgumentU64) Kind() ArgumentKind      { return ArgumentKindU64 }
func (ArgumentU128) Kind() ArgumentKind     { return ArgumentKindU128 }
func (ArgumentAddress) Kind() ArgumentKind  { return ArgumentKindAddress }
func (ArgumentU8Vector) Kind() ArgumentKind { return ArgumentKindU8Vector }
func (ArgumentBool) Kind() ArgumentKind     { return ArgumentKindBool }

func (ArgumentU8) isTransactionArgument()       {}
func (ArgumentU64) isTransactionArgument()      {}
func (ArgumentU128) isTransactionArgument()     {}
func (ArgumentAddress) isTransactionArgument()  {}
func (ArgumentU8Vector) isTransactionArgument() {}
func (ArgumentBool) isTransactionArgument()     {}

func (a ArgumentU8) MarshalLCS(s *lcs.Serializer) {
	s.SerializeVariantIndex(uint32(a.Kind()))
	s.SerializeU8(uint8(a))
}

func (a ArgumentU64) MarshalLCS(s *lcs.Serializer) {
	s.SerializeVariantIndex(uint32(a.Kind()))
	s.SerializeU64(uint64(a))
}

func (a ArgumentU128) MarshalLCS(s *lcs.Serializer) {
	s.SerializeVariantIndex(uint32(a.Kind()))
	s.SerializeU128(lcs.Uint128(a))
}

func (a ArgumentAddress) MarshalLCS(s *lcs.Serializer) {
	s.SerializeVariantIndex(uint32(a.Kind()))
	AccountAddress(a).MarshalLCS(s)
}

func (a ArgumentU8Vector) MarshalLCS(s *lcs.Serializer) {
	s.SerializeVariantIndex(uint32(a.Kind()))
	s.SerializeBytes(a)
}

func (a ArgumentBool) MarshalLCS(s *lcs.Serializer) {
	s.SerializeVariantIndex(uint32(a.Kind()))
	s.SerializeBool(bool(a))
}

var arguments = lcs.NewUnion("TransactionArgument", []lcs.DecodeFunc[TransactionArgument]{
	ArgumentKindU8: func(d *lcs.Deserializer) (TransactionArgument, error) {
		v, err := d.DeserializeU8()
		if err != nil {
			return nil, err
		}
		return ArgumentU8(v), nil
	},
	ArgumentKindU64: func(d *lcs.Deserializer) (TransactionArgument, error) {
		v, err := d.DeserializeU64()
		if err != nil {
			return nil, err
		}
		return ArgumentU64(v), nil
	},
	ArgumentKindU128: func(d *lcs.Deserializer) (TransactionArgument, error) {
		v, err := d.DeserializeU128()
		if err != nil {
			return nil, err
		}
		return ArgumentU128(v), nil
	},
	ArgumentKindAddress: func(d *lcs.Deserializer) (TransactionArgument, error) {
		v, err := DecodeAccountAddress(d)
		if err != nil {
			return nil, err
		}
		return ArgumentAddress(v), nil
	},
	ArgumentKindU8Vector: func(d *lcs.Deserializer) (TransactionArgument, error) {
		v, err := d.DeserializeBytes()
		if err != nil {
			return nil, err
		}
		return ArgumentU8Vector(v), nil
	},
	ArgumentKindBool: func(d *lcs.Deserializer) (TransactionArgument, error) {
		v, err := d.DeserializeBool()
		if err != nil {
			return nil, err
		}
		return ArgumentBool(v), nil
	},
})

// DecodeTransactionArgument reads a TransactionArgument.
func DecodeTransactionArgument(d *lcs.Deserializer) (TransactionArgument, error) {
	return arguments.Deserialize(d)
}

// Script is Move bytecode executed once with the given arguments.
type Script struct {
	Code   []byte
	TyArgs []TypeTag
	Args   []TransactionArgument
}

func (sc Script) MarshalLCS(s *lcs.Serializer) {
	s.SerializeBytes(sc.Code)
	lcs.SerializeSeq(s, sc.TyArgs, lcs.Encode[TypeTag])
	lcs.SerializeSeq(s, sc.Args, lcs.Encode[TransactionArgument])
}

// DecodeScript reads a Script.
func DecodeScript(d *lcs.Deserializer) (Script, error) {
	code, err := d.DeserializeBytes()
	if err != nil {
		return Script{}, err
	}
	tyArgs, err := lcs.DeserializeSeq(d, DecodeTypeTag)
	if err != nil {
		return Script{}, err
	}
	args, err := lcs.DeserializeSeq(d, DecodeTransactionArgument)
	if err != nil {
		return Script{}, err
	}
	return Script{Code: code, TyArgs: tyArgs, Args: args}, nil
}
