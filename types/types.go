// Package types defines the ledger records exchanged with the chain:
// addresses, transactions, scripts, write sets, events and type tags.
//
// Every record encodes with the canonical lcs format. Records are plain
// Go values: each has a MarshalLCS method that writes its fields in
// declared order and a DecodeX function that reads them back. Tagged
// unions are sealed interfaces whose variants report a Kind constant;
// the constant is the variant's wire discriminant and must never be
// reassigned.
package types

import "github.com/blockberries/ledgertypes/lcs"

// HashValue is a cryptographic hash.
type HashValue []byte

func (h HashValue) MarshalLCS(s *lcs.Serializer) { s.SerializeBytes(h) }

// DecodeHashValue reads a HashValue.
func DecodeHashValue(d *lcs.Deserializer) (HashValue, error) {
	b, err := d.DeserializeBytes()
	return HashValue(b), err
}

// EventKey identifies an event stream.
type EventKey []byte

func (k EventKey) MarshalLCS(s *lcs.Serializer) { s.SerializeBytes(k) }

// DecodeEventKey reads an EventKey.
func DecodeEventKey(d *lcs.Deserializer) (EventKey, error) {
	b, err := d.DeserializeBytes()
	return EventKey(b), err
}

// Identifier names a Move module or struct.
type Identifier string

func (i Identifier) MarshalLCS(s *lcs.Serializer) { s.SerializeStr(string(i)) }

// DecodeIdentifier reads an Identifier.
func DecodeIdentifier(d *lcs.Deserializer) (Identifier, error) {
	v, err := d.DeserializeStr()
	return Identifier(v), err
}

// ChainID prevents replay of transactions across chains.
type ChainID uint8

// ChainIDFromInt converts a numeric chain id.
func ChainIDFromInt(id int) ChainID { return ChainID(uint8(id)) }

// Int returns the chain id as an int.
func (c ChainID) Int() int { return int(c) }

func (c ChainID) MarshalLCS(s *lcs.Serializer) { s.SerializeU8(uint8(c)) }

// DecodeChainID reads a ChainID.
func DecodeChainID(d *lcs.Deserializer) (ChainID, error) {
	v, err := d.DeserializeU8()
	return ChainID(v), err
}

// Module is published Move bytecode.
type Module struct {
	Code []byte
}

func (m Module) MarshalLCS(s *lcs.Serializer) { s.SerializeBytes(m.Code) }

// DecodeModule reads a Module.
func DecodeModule(d *lcs.Deserializer) (Module, error) {
	code, err := d.DeserializeBytes()
	if err != nil {
		return Module{}, err
	}
	return Module{Code: code}, nil
}
