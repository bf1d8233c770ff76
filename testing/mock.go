// Package lcstest provides test utilities for code built on the lcs
// codec: a strict-codec harness, sample ledger records, a canonical
// form test suite and a configurable mock ledger.
package lcstest

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/blockberries/ledgertypes"
	"github.com/blockberries/ledgertypes/types"
)

// Compile-time check that MockLedger satisfies all interfaces.
var (
	_ ledgertypes.Ledger    = (*MockLedger)(nil)
	_ ledgertypes.Simulator = (*MockLedger)(nil)
)

// MockLedger is a configurable mock ledger. Unconfigured methods
// accept everything: Submit returns the transaction hash and Simulate
// an empty change set.
type MockLedger struct {
	mu        sync.Mutex
	submitted []types.SignedTransaction

	SubmitFn   func(context.Context, types.SignedTransaction) (types.HashValue, error)
	SimulateFn func(context.Context, types.SignedTransaction) (types.ChangeSet, error)

	// Call counters (atomic for concurrent access).
	SubmitCalls   atomic.Int64
	SimulateCalls atomic.Int64
}

func (m *MockLedger) Submit(ctx context.Context, txn types.SignedTransaction) (types.HashValue, error) {
	m.SubmitCalls.Add(1)
	m.mu.Lock()
	m.submitted = append(m.submitted, txn)
	m.mu.Unlock()
	if m.SubmitFn != nil {
		return m.SubmitFn(ctx, txn)
	}
	return txn.Hash(), nil
}

func (m *MockLedger) Simulate(ctx context.Context, txn types.SignedTransaction) (types.ChangeSet, error) {
	m.SimulateCalls.Add(1)
	if m.SimulateFn != nil {
		return m.SimulateFn(ctx, txn)
	}
	return types.ChangeSet{}, nil
}

// Submitted returns every transaction passed to Submit, in call order.
func (m *MockLedger) Submitted() []types.SignedTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]types.SignedTransaction, len(m.submitted))
	copy(out, m.submitted)
	return out
}
