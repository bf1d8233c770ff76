package types_test

import (
	"testing"

	lcstest "github.com/blockberries/ledgertypes/testing"
	"github.com/blockberries/ledgertypes/types"
)

func TestCanonical_Records(t *testing.T) {
	t.Run("SignedTransaction", func(t *testing.T) {
		lcstest.RunCanonicalSuite(t, lcstest.SampleSignedTransaction(3), types.DecodeSignedTransaction)
	})
	t.Run("RawTransaction", func(t *testing.T) {
		lcstest.RunCanonicalSuite(t, lcstest.SampleRawTransaction(0), types.DecodeRawTransaction)
	})
	t.Run("ChangeSet", func(t *testing.T) {
		lcstest.RunCanonicalSuite(t, lcstest.SampleChangeSet(), types.DecodeChangeSet)
	})
	t.Run("Script", func(t *testing.T) {
		lcstest.RunCanonicalSuite(t, lcstest.SampleScript(12), types.DecodeScript)
	})
	t.Run("AccessPath", func(t *testing.T) {
		lcstest.RunCanonicalSuite(t, types.AccessPath{Address: lcstest.SampleReceiver, Path: []byte("p")}, types.DecodeAccessPath)
	})
	t.Run("BlockMetadata", func(t *testing.T) {
		lcstest.RunCanonicalSuite(t, types.BlockMetadata{
			ID:                 types.HashValue{0x01, 0x02, 0x03},
			Round:              11,
			TimestampUsecs:     1_611_792_876_000_000,
			PreviousBlockVotes: []types.AccountAddress{lcstest.SampleSender, lcstest.SampleReceiver},
			Proposer:           lcstest.SampleSender,
		}, types.DecodeBlockMetadata)
	})
}

func TestCanonical_Unions(t *testing.T) {
	t.Run("Transaction/User", func(t *testing.T) {
		lcstest.RunCanonicalSuite[types.Transaction](t,
			types.UserTransaction{Value: lcstest.SampleSignedTransaction(1)}, types.DecodeTransaction)
	})
	t.Run("Transaction/Genesis", func(t *testing.T) {
		lcstest.RunCanonicalSuite[types.Transaction](t,
			types.GenesisTransaction{Value: types.WriteSetPayloadDirect{Value: lcstest.SampleChangeSet()}},
			types.DecodeTransaction)
	})
	t.Run("Transaction/BlockMetadata", func(t *testing.T) {
		lcstest.RunCanonicalSuite[types.Transaction](t,
			types.BlockMetadataTransaction{Value: types.BlockMetadata{
				ID:       types.HashValue{0xee},
				Round:    1,
				Proposer: lcstest.SampleReceiver,
			}}, types.DecodeTransaction)
	})
	t.Run("TransactionPayload/WriteSetScript", func(t *testing.T) {
		lcstest.RunCanonicalSuite[types.TransactionPayload](t,
			types.PayloadWriteSet{Value: types.WriteSetPayloadScript{
				ExecuteAs: types.CoreCodeAddress,
				Script:    lcstest.SampleScript(1),
			}}, types.DecodeTransactionPayload)
	})
	t.Run("TransactionPayload/Module", func(t *testing.T) {
		lcstest.RunCanonicalSuite[types.TransactionPayload](t,
			types.PayloadModule{Value: types.Module{Code: []byte{0xa1, 0x1c, 0xeb, 0x0b}}},
			types.DecodeTransactionPayload)
	})
	t.Run("TransactionAuthenticator/MultiEd25519", func(t *testing.T) {
		lcstest.RunCanonicalSuite[types.TransactionAuthenticator](t,
			types.MultiEd25519Authenticator{
				PublicKey: types.MultiEd25519PublicKey{0x01, 0x02, 0x03, 0x02},
				Signature: types.MultiEd25519Signature{0x04, 0x05, 0xc0, 0x00, 0x00, 0x00},
			}, types.DecodeTransactionAuthenticator)
	})
	t.Run("TypeTag", func(t *testing.T) {
		lcstest.RunCanonicalSuite[types.TypeTag](t, types.CurrencyTypeTag("Coin1"), types.DecodeTypeTag)
	})
	t.Run("ContractEvent", func(t *testing.T) {
		lcstest.RunCanonicalSuite[types.ContractEvent](t, lcstest.SampleChangeSet().Events[0], types.DecodeContractEvent)
	})
	t.Run("Metadata/UnstructuredBytes", func(t *testing.T) {
		b := []byte("memo")
		lcstest.RunCanonicalSuite[types.Metadata](t,
			types.MetadataUnstructuredBytes{Value: types.UnstructuredBytesMetadata{Metadata: &b}},
			types.DecodeMetadata)
	})
}
