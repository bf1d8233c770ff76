package types

import (
	"fmt"

	"github.com/blockberries/ledgertypes/lcs"
)

// PayloadKind is the discriminant of a TransactionPayload.
type PayloadKind uint32

const (
	PayloadKindWriteSet PayloadKind = iota
	PayloadKindScript
	PayloadKindModule
)

// TransactionPayload is what a RawTransaction asks the chain to do.
type TransactionPayload interface {
	lcs.Marshaler
	Kind() PayloadKind
	isTransactionPayload()
}

type (
	PayloadWriteSet struct{ Value WriteSetPayload }
	PayloadScript   struct{ Value Script }
	PayloadModule   struct{ Value Module }
)

func (PayloadWriteSet) Kind() PayloadKind { return PayloadKindWriteSet }
func (PayloadScript) Kind() PayloadKind   { return PayloadKindScript }
func (PayloadModule) Kind() PayloadKind   { return PayloadKindModule }

func (PayloadWriteSet) isTransactionPayload() {}
func (PayloadScript) isTransactionPayload()   {}
func (PayloadModule) isTransactionPayload()   {}

func (p PayloadWriteSet) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(p.Kind()), p.Value.MarshalLCS)
}

func (p PayloadScript) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(p.Kind()), p.Value.MarshalLCS)
}

func (p PayloadModule) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(p.Kind()), p.Value.MarshalLCS)
}

var payloads = lcs.NewUnion("TransactionPayload", []lcs.DecodeFunc[TransactionPayload]{
	PayloadKindWriteSet: func(d *lcs.Deserializer) (TransactionPayload, error) {
		v, err := DecodeWriteSetPayload(d)
		if err != nil {
			return nil, err
		}
		return PayloadWriteSet{Value: v}, nil
	},
	PayloadKindScript: func(d *lcs.Deserializer) (TransactionPayload, error) {
		v, err := DecodeScript(d)
		if err != nil {
			return nil, err
		}
		return PayloadScript{Value: v}, nil
	},
	PayloadKindModule: func(d *lcs.Deserializer) (TransactionPayload, error) {
		v, err := DecodeModule(d)
		if err != nil {
			return nil, err
		}
		return PayloadModule{Value: v}, nil
	},
})

// DecodeTransactionPayload reads a TransactionPayload.
func DecodeTransactionPayload(d *lcs.Deserializer) (TransactionPayload, error) {
	return payloads.Deserialize(d)
}

// RawTransaction is an unsigned transaction. Its encoding is the exact
// message that gets signed, so the field order is fixed forever.
type RawTransaction struct {
	Sender                  AccountAddress
	SequenceNumber          uint64
	Payload                 TransactionPayload
	MaxGasAmount            uint64
	GasUnitPrice            uint64
	GasCurrencyCode         string
	ExpirationTimestampSecs uint64
	ChainID                 ChainID
}

func (t RawTransaction) MarshalLCS(s *lcs.Serializer) {
	t.Sender.MarshalLCS(s)
	s.SerializeU64(t.SequenceNumber)
	t.Payload.MarshalLCS(s)
	s.SerializeU64(t.MaxGasAmount)
	s.SerializeU64(t.GasUnitPrice)
	s.SerializeStr(t.GasCurrencyCode)
	s.SerializeU64(t.ExpirationTimestampSecs)
	t.ChainID.MarshalLCS(s)
}

// DecodeRawTransaction reads a RawTransaction.
func DecodeRawTransaction(d *lcs.Deserializer) (RawTransaction, error) {
	var (
		t   RawTransaction
		err error
	)
	if t.Sender, err = DecodeAccountAddress(d); err != nil {
		return RawTransaction{}, err
	}
	if t.SequenceNumber, err = d.DeserializeU64(); err != nil {
		return RawTransaction{}, err
	}
	if t.Payload, err = DecodeTransactionPayload(d); err != nil {
		return RawTransaction{}, err
	}
	if t.MaxGasAmount, err = d.DeserializeU64(); err != nil {
		return RawTransaction{}, err
	}
	if t.GasUnitPrice, err = d.DeserializeU64(); err != nil {
		return RawTransaction{}, err
	}
	if t.GasCurrencyCode, err = d.DeserializeStr(); err != nil {
		return RawTransaction{}, err
	}
	if t.ExpirationTimestampSecs, err = d.DeserializeU64(); err != nil {
		return RawTransaction{}, err
	}
	if t.ChainID, err = DecodeChainID(d); err != nil {
		return RawTransaction{}, err
	}
	return t, nil
}

// Validate reports a transaction that has no encoding because its
// payload, or a union nested inside it, is nil.
func (t RawTransaction) Validate() error {
	if t.Payload == nil {
		return fmt.Errorf("%w: RawTransaction.Payload is nil", lcs.ErrIncompleteValue)
	}
	_, err := lcs.MarshalChecked(t)
	return err
}

// UnmarshalLCS implements lcs.Unmarshaler.
func (t *RawTransaction) UnmarshalLCS(d *lcs.Deserializer) error {
	v, err := DecodeRawTransaction(d)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// SignedTransaction is a RawTransaction with its authenticator.
type SignedTransaction struct {
	RawTxn        RawTransaction
	Authenticator TransactionAuthenticator
}

// NewEd25519SignedTransaction attaches an Ed25519 public key and a
// signature over the encoding of raw. Neither is checked here.
func NewEd25519SignedTransaction(raw RawTransaction, publicKey, signature []byte) SignedTransaction {
	return SignedTransaction{
		RawTxn: raw,
		Authenticator: Ed25519Authenticator{
			PublicKey: Ed25519PublicKey(publicKey),
			Signature: Ed25519Signature(signature),
		},
	}
}

func (t SignedTransaction) MarshalLCS(s *lcs.Serializer) {
	t.RawTxn.MarshalLCS(s)
	t.Authenticator.MarshalLCS(s)
}

// Validate reports a signed transaction that has no encoding.
func (t SignedTransaction) Validate() error {
	if err := t.RawTxn.Validate(); err != nil {
		return err
	}
	if t.Authenticator == nil {
		return fmt.Errorf("%w: SignedTransaction.Authenticator is nil", lcs.ErrIncompleteValue)
	}
	return nil
}

// DecodeSignedTransaction reads a SignedTransaction.
func DecodeSignedTransaction(d *lcs.Deserializer) (SignedTransaction, error) {
	raw, err := DecodeRawTransaction(d)
	if err != nil {
		return SignedTransaction{}, err
	}
	auth, err := DecodeTransactionAuthenticator(d)
	if err != nil {
		return SignedTransaction{}, err
	}
	return SignedTransaction{RawTxn: raw, Authenticator: auth}, nil
}

// UnmarshalLCS implements lcs.Unmarshaler.
func (t *SignedTransaction) UnmarshalLCS(d *lcs.Deserializer) error {
	v, err := DecodeSignedTransaction(d)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// BlockMetadata is the prologue transaction that opens a block.
type BlockMetadata struct {
	ID                 HashValue
	Round              uint64
	TimestampUsecs     uint64
	PreviousBlockVotes []AccountAddress
	Proposer           AccountAddress
}

func (b BlockMetadata) MarshalLCS(s *lcs.Serializer) {
	b.ID.MarshalLCS(s)
	s.SerializeU64(b.Round)
	s.SerializeU64(b.TimestampUsecs)
	lcs.SerializeSeq(s, b.PreviousBlockVotes, lcs.Encode[AccountAddress])
	b.Proposer.MarshalLCS(s)
}

// DecodeBlockMetadata reads a BlockMetadata.
func DecodeBlockMetadata(d *lcs.Deserializer) (BlockMetadata, error) {
	id, err := DecodeHashValue(d)
	if err != nil {
		return BlockMetadata{}, err
	}
	round, err := d.DeserializeU64()
	if err != nil {
		return BlockMetadata{}, err
	}
	ts, err := d.DeserializeU64()
	if err != nil {
		return BlockMetadata{}, err
	}
	votes, err := lcs.DeserializeSeq(d, DecodeAccountAddress)
	if err != nil {
		return BlockMetadata{}, err
	}
	proposer, err := DecodeAccountAddress(d)
	if err != nil {
		return BlockMetadata{}, err
	}
	return BlockMetadata{
		ID:                 id,
		Round:              round,
		TimestampUsecs:     ts,
		PreviousBlockVotes: votes,
		Proposer:           proposer,
	}, nil
}

// TransactionKind is the discriminant of a Transaction.
type TransactionKind uint32

const (
	TransactionKindUser TransactionKind = iota
	TransactionKindGenesis
	TransactionKindBlockMetadata
)

// Transaction is any transaction the ledger can commit.
type Transaction interface {
	lcs.Marshaler
	Kind() TransactionKind
	isTransaction()
}

type (
	UserTransaction          struct{ Value SignedTransaction }
	GenesisTransaction       struct{ Value WriteSetPayload }
	BlockMetadataTransaction struct{ Value BlockMetadata }
)

func (UserTransaction) Kind() TransactionKind          { return TransactionKindUser }
func (GenesisTransaction) Kind() TransactionKind       { return TransactionKindGenesis }
func (BlockMetadataTransaction) Kind() TransactionKind { return TransactionKindBlockMetadata }

func (UserTransaction) isTransaction()          {}
func (GenesisTransaction) isTransaction()       {}
func (BlockMetadataTransaction) isTransaction() {}

func (t UserTransaction) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(t.Kind()), t.Value.MarshalLCS)
}

func (t GenesisTransaction) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(t.Kind()), t.Value.MarshalLCS)
}

func (t BlockMetadataTransaction) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(t.Kind()), t.Value.MarshalLCS)
}

var transactions = lcs.NewUnion("Transaction", []lcs.DecodeFunc[Transaction]{
	TransactionKindUser: func(d *lcs.Deserializer) (Transaction, error) {
		v, err := DecodeSignedTransaction(d)
		if err != nil {
			return nil, err
		}
		return UserTransaction{Value: v}, nil
	},
	TransactionKindGenesis: func(d *lcs.Deserializer) (Transaction, error) {
		v, err := DecodeWriteSetPayload(d)
		if err != nil {
			return nil, err
		}
		return GenesisTransaction{Value: v}, nil
	},
	TransactionKindBlockMetadata: func(d *lcs.Deserializer) (Transaction, error) {
		v, err := DecodeBlockMetadata(d)
		if err != nil {
			return nil, err
		}
		return BlockMetadataTransaction{Value: v}, nil
	},
})

// DecodeTransaction reads a Transaction.
func DecodeTransaction(d *lcs.Deserializer) (Transaction, error) {
	return transactions.Deserialize(d)
}
