package types_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/blockberries/ledgertypes/lcs"
	lcstest "github.com/blockberries/ledgertypes/testing"
	"github.com/blockberries/ledgertypes/types"
)

// sha3-256("LIBRA::RawTransaction")
const rawTransactionSalt = "a55742d83cb3ca87cdf8f231f22dd75534a2588b174b20e6dc41292e92ce79e5"

func TestSigningMessage(t *testing.T) {
	raw := lcstest.SampleRawTransaction(1)
	msg := raw.SigningMessage()
	salt, _ := hex.DecodeString(rawTransactionSalt)
	if !bytes.HasPrefix(msg, salt) {
		t.Fatalf("signing message prefix = %x", msg[:types.HashLength])
	}
	if !bytes.Equal(msg[types.HashLength:], lcs.Marshal(raw)) {
		t.Fatal("signing message body is not the raw transaction encoding")
	}
}

func TestTransactionHash(t *testing.T) {
	a := lcstest.SampleSignedTransaction(1)
	h := a.Hash()
	if len(h) != types.HashLength {
		t.Fatalf("hash length = %d", len(h))
	}
	if !bytes.Equal(h, lcstest.SampleSignedTransaction(1).Hash()) {
		t.Fatal("hash is not deterministic")
	}
	if bytes.Equal(h, lcstest.SampleSignedTransaction(2).Hash()) {
		t.Fatal("different transactions share a hash")
	}
	if !bytes.Equal(h, types.TransactionHash(types.UserTransaction{Value: a})) {
		t.Fatal("SignedTransaction.Hash differs from TransactionHash")
	}
}
