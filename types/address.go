package types

import (
	"fmt"

	"github.com/blockberries/ledgertypes/lcs"
)

// AddressLength is the size of an account address in bytes.
const AddressLength = 16

// AccountAddress is a 16-byte account address. It encodes as a fixed
// array with no length prefix.
type AccountAddress [AddressLength]byte

// CoreCodeAddress is the address that hosts the core Move modules.
var CoreCodeAddress = AccountAddress{AddressLength - 1: 0x01}

// NewAccountAddress copies b into an address. b must be exactly
// AddressLength bytes.
func NewAccountAddress(b []byte) (AccountAddress, error) {
	var a AccountAddress
	if len(b) != AddressLength {
		return a, fmt.Errorf("account address: got %d bytes, want %d: %w",
			len(b), AddressLength, lcs.ErrInvalidFixedLength)
	}
	copy(a[:], b)
	return a, nil
}

// Bytes returns a copy of the address bytes.
func (a AccountAddress) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])
	return b
}

func (a AccountAddress) MarshalLCS(s *lcs.Serializer) { s.SerializeFixedBytes(a[:]) }

// DecodeAccountAddress reads exactly AddressLength bytes.
func DecodeAccountAddress(d *lcs.Deserializer) (AccountAddress, error) {
	b, err := d.DeserializeFixedBytes(AddressLength)
	if err != nil {
		return AccountAddress{}, err
	}
	var a AccountAddress
	copy(a[:], b)
	return a, nil
}

// AccessPath locates a resource under an account.
type AccessPath struct {
	Address AccountAddress
	Path    []byte
}

func (p AccessPath) MarshalLCS(s *lcs.Serializer) {
	p.Address.MarshalLCS(s)
	s.SerializeBytes(p.Path)
}

// DecodeAccessPath reads an AccessPath.
func DecodeAccessPath(d *lcs.Deserializer) (AccessPath, error) {
	addr, err := DecodeAccountAddress(d)
	if err != nil {
		return AccessPath{}, err
	}
	path, err := d.DeserializeBytes()
	if err != nil {
		return AccessPath{}, err
	}
	return AccessPath{Address: addr, Path: path}, nil
}
