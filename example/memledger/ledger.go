// Package memledger implements a minimal in-memory ledger. It checks
// the chain id and sequence number of each transaction and simulates
// scripts as a sequence number bump.
//
// Signatures are not verified.
package memledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/blockberries/ledgertypes"
	"github.com/blockberries/ledgertypes/lcs"
	"github.com/blockberries/ledgertypes/types"
)

// Compile-time interface checks.
var (
	_ ledgertypes.Ledger    = (*Ledger)(nil)
	_ ledgertypes.Simulator = (*Ledger)(nil)
)

// Status codes carried by the RejectErrors this ledger returns.
const (
	CodeBadChainID uint64 = iota + 1
	CodeSequenceTooOld
	CodeSequenceTooNew
	CodeMalformed
)

// SequenceNumberPath is the access path, under the sender's address,
// of the account sequence number.
var SequenceNumberPath = []byte("sequence_number")

// Ledger is an in-memory ledger for a single chain.
type Ledger struct {
	chainID types.ChainID

	mu        sync.RWMutex
	sequences map[types.AccountAddress]uint64
	committed []types.HashValue
}

// New creates an empty ledger for chainID.
func New(chainID types.ChainID) *Ledger {
	return &Ledger{
		chainID:   chainID,
		sequences: make(map[types.AccountAddress]uint64),
	}
}

func (l *Ledger) Submit(_ context.Context, txn types.SignedTransaction) (types.HashValue, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.validate(txn); err != nil {
		return nil, err
	}
	l.sequences[txn.RawTxn.Sender]++
	h := txn.Hash()
	l.committed = append(l.committed, h)
	return h, nil
}

func (l *Ledger) Simulate(_ context.Context, txn types.SignedTransaction) (types.ChangeSet, error) {
	l.mu.RLock()
	err := l.validate(txn)
	l.mu.RUnlock()
	if err != nil {
		return types.ChangeSet{}, err
	}

	raw := txn.RawTxn
	if p, ok := raw.Payload.(types.PayloadWriteSet); ok {
		if direct, ok := p.Value.(types.WriteSetPayloadDirect); ok {
			return direct.Value, nil
		}
	}

	s := lcs.NewSerializer()
	s.SerializeU64(raw.SequenceNumber + 1)
	return types.ChangeSet{
		WriteSet: types.WriteSet{Value: types.WriteSetMut{WriteSet: []types.WriteSetEntry{{
			Key:   types.AccessPath{Address: raw.Sender, Path: SequenceNumberPath},
			Value: types.WriteOpValue{Value: s.Bytes()},
		}}}},
		Events: []types.ContractEvent{
			types.ContractEventVersion0{Value: types.ContractEventV0{
				Key:            types.EventKey(raw.Sender.Bytes()),
				SequenceNumber: raw.SequenceNumber,
				TypeTag:        types.CurrencyTypeTag(raw.GasCurrencyCode),
				EventData:      txn.Hash(),
			}},
		},
	}, nil
}

// validate must be called with l.mu held.
func (l *Ledger) validate(txn types.SignedTransaction) error {
	raw := txn.RawTxn
	if raw.ChainID != l.chainID {
		return ledgertypes.NewRejectError(CodeBadChainID,
			fmt.Sprintf("chain id %d, ledger is %d", raw.ChainID, l.chainID))
	}
	if err := txn.Validate(); err != nil {
		return ledgertypes.NewRejectError(CodeMalformed, err.Error())
	}
	want := l.sequences[raw.Sender]
	switch {
	case raw.SequenceNumber < want:
		return ledgertypes.NewRejectError(CodeSequenceTooOld,
			fmt.Sprintf("sequence number %d, expected %d", raw.SequenceNumber, want))
	case raw.SequenceNumber > want:
		return ledgertypes.NewRejectError(CodeSequenceTooNew,
			fmt.Sprintf("sequence number %d, expected %d", raw.SequenceNumber, want))
	}
	return nil
}

// SequenceNumber returns the next sequence number expected from addr.
func (l *Ledger) SequenceNumber(addr types.AccountAddress) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sequences[addr]
}

// Committed returns the hashes of accepted transactions in order.
func (l *Ledger) Committed() []types.HashValue {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]types.HashValue, len(l.committed))
	copy(out, l.committed)
	return out
}
