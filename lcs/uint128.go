package lcs

import (
	"fmt"
	"math/big"
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	High uint64
	Low  uint64
}

// Uint128FromUint64 widens v.
func Uint128FromUint64(v uint64) Uint128 {
	return Uint128{Low: v}
}

// Uint128FromBig converts a non-negative big.Int of at most 128 bits.
func Uint128FromBig(v *big.Int) (Uint128, error) {
	if v.Sign() < 0 || v.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("lcs: %s does not fit in uint128", v)
	}
	low := new(big.Int).And(v, new(big.Int).SetUint64(^uint64(0)))
	high := new(big.Int).Rsh(v, 64)
	return Uint128{High: high.Uint64(), Low: low.Uint64()}, nil
}

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	v := new(big.Int).SetUint64(u.High)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.Low))
}

// String formats u in decimal.
func (u Uint128) String() string {
	return u.Big().String()
}
