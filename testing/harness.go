package lcstest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockberries/ledgertypes/lcs"
	"github.com/blockberries/ledgertypes/types"
)

// Harness wraps the strict codec of one type with test assertions.
type Harness[T lcs.Marshaler] struct {
	t   testing.TB
	dec lcs.DecodeFunc[T]
}

// NewHarness creates a harness for the type decoded by dec.
func NewHarness[T lcs.Marshaler](t testing.TB, dec lcs.DecodeFunc[T]) *Harness[T] {
	t.Helper()
	return &Harness[T]{t: t, dec: dec}
}

// Encode returns the canonical encoding of v.
func (h *Harness[T]) Encode(v T) []byte {
	return lcs.Marshal(v)
}

// Decode strictly decodes data and fails the test on error.
func (h *Harness[T]) Decode(data []byte) T {
	h.t.Helper()
	v, err := lcs.Deserialize(data, h.dec)
	require.NoError(h.t, err, "decode %x", data)
	return v
}

// RoundTrip encodes v, decodes it back and checks both the value and
// the re-encoded bytes.
func (h *Harness[T]) RoundTrip(v T) T {
	h.t.Helper()
	data := h.Encode(v)
	got := h.Decode(data)
	require.Equal(h.t, v, got)
	require.Equal(h.t, data, h.Encode(got), "re-encoding differs")
	return got
}

// MustEncodeTo checks that v encodes to exactly want and that want
// decodes back to v.
func (h *Harness[T]) MustEncodeTo(v T, want []byte) {
	h.t.Helper()
	require.Equal(h.t, want, h.Encode(v))
	require.Equal(h.t, v, h.Decode(want))
}

// MustReject checks that data fails to decode with kind and returns
// the decode error for further inspection.
func (h *Harness[T]) MustReject(data []byte, kind error) *lcs.DecodeError {
	h.t.Helper()
	_, err := lcs.Deserialize(data, h.dec)
	require.ErrorIs(h.t, err, kind, "decode %x", data)
	de, ok := lcs.IsDecodeError(err)
	require.True(h.t, ok, "expected a *lcs.DecodeError, got %T", err)
	return de
}

// --- Fixtures ---

// SampleSender is the sender of every sample transaction.
var SampleSender = types.AccountAddress{
	0xf7, 0x2a, 0x18, 0x82, 0x03, 0x4d, 0x6b, 0x01,
	0x9c, 0x55, 0xe0, 0x3a, 0x73, 0x11, 0x42, 0xbd,
}

// SampleReceiver is the payee in sample scripts.
var SampleReceiver = types.AccountAddress{
	0x33, 0x0c, 0x9e, 0x41, 0x57, 0xd8, 0x20, 0x6a,
	0x05, 0xf1, 0x7b, 0xcc, 0x12, 0x88, 0x0e, 0x9d,
}

// SampleChainID is the chain id used by the fixtures.
const SampleChainID types.ChainID = 4

// SampleScript returns a peer-to-peer transfer script with metadata.
func SampleScript(amount uint64) types.Script {
	return types.Script{
		Code:   []byte{0xa1, 0x1c, 0xeb, 0x0b, 0x01, 0x00, 0x00, 0x00, 0x07},
		TyArgs: []types.TypeTag{types.CurrencyTypeTag("Coin1")},
		Args: []types.TransactionArgument{
			types.ArgumentAddress(SampleReceiver),
			types.ArgumentU64(amount),
			types.ArgumentU8Vector{0x01, 0x02},
			types.ArgumentU8Vector{0xde, 0xad},
		},
	}
}

// SampleRawTransaction returns a script transaction from SampleSender.
func SampleRawTransaction(seq uint64) types.RawTransaction {
	return types.RawTransaction{
		Sender:                  SampleSender,
		SequenceNumber:          seq,
		Payload:                 types.PayloadScript{Value: SampleScript(1_000_000)},
		MaxGasAmount:            1_000_000,
		GasUnitPrice:            0,
		GasCurrencyCode:         "Coin1",
		ExpirationTimestampSecs: 1_611_792_876,
		ChainID:                 SampleChainID,
	}
}

// SampleSignedTransaction signs SampleRawTransaction(seq) with fixed
// key and signature bytes. The signature is not valid.
func SampleSignedTransaction(seq uint64) types.SignedTransaction {
	pk := make([]byte, 32)
	sig := make([]byte, 64)
	for i := range pk {
		pk[i] = byte(i + 1)
	}
	for i := range sig {
		sig[i] = byte(0xff - i)
	}
	return types.NewEd25519SignedTransaction(SampleRawTransaction(seq), pk, sig)
}

// SampleChangeSet returns a change set with one write, one deletion
// and one event.
func SampleChangeSet() types.ChangeSet {
	return types.ChangeSet{
		WriteSet: types.WriteSet{Value: types.WriteSetMut{WriteSet: []types.WriteSetEntry{
			{
				Key:   types.AccessPath{Address: SampleSender, Path: []byte{0x01, 0x02}},
				Value: types.WriteOpValue{Value: []byte{0x2a}},
			},
			{
				Key:   types.AccessPath{Address: SampleReceiver, Path: []byte{0x03}},
				Value: types.WriteOpDeletion{},
			},
		}}},
		Events: []types.ContractEvent{
			types.ContractEventVersion0{Value: types.ContractEventV0{
				Key:            types.EventKey{0x00, 0x01, 0x02, 0x03},
				SequenceNumber: 9,
				TypeTag:        types.TypeTagVector{Elem: types.TypeTagU8{}},
				EventData:      []byte{0x10, 0x20},
			}},
		},
	}
}
