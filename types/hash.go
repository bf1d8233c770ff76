package types

import (
	"golang.org/x/crypto/sha3"

	"github.com/blockberries/ledgertypes/lcs"
)

// HashPrefix is prepended to a type name to form its hashing salt.
const HashPrefix = "LIBRA::"

// HashLength is the size of a SHA3-256 digest.
const HashLength = 32

// hashWithSalt returns sha3-256(sha3-256(HashPrefix+name) || lcs(v)).
func hashWithSalt(name string, v lcs.Marshaler) HashValue {
	salt := sha3.Sum256([]byte(HashPrefix + name))
	h := sha3.New256()
	h.Write(salt[:])
	h.Write(lcs.Marshal(v))
	return HashValue(h.Sum(nil))
}

// SigningMessage returns the bytes an authenticator signs for t: the
// RawTransaction salt followed by the canonical encoding of t.
func (t RawTransaction) SigningMessage() []byte {
	salt := sha3.Sum256([]byte(HashPrefix + "RawTransaction"))
	return append(salt[:], lcs.Marshal(t)...)
}

// TransactionHash returns the ledger hash of a committed transaction.
func TransactionHash(txn Transaction) HashValue {
	return hashWithSalt("Transaction", txn)
}

// Hash returns the hash under which the ledger records t.
func (t SignedTransaction) Hash() HashValue {
	return TransactionHash(UserTransaction{Value: t})
}
