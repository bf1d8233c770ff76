// Package ledgertypes defines the boundary between a ledger client and
// the chain it submits transactions to.
//
// Records on both sides of the boundary are the canonical lcs types in
// package types. The core [Ledger] interface is required; [Simulator]
// is an optional capability discovered by type assertion.
package ledgertypes

import (
	"context"

	"github.com/blockberries/ledgertypes/types"
)

// Ledger accepts signed transactions.
type Ledger interface {
	// Submit hands a signed transaction to the chain and returns its
	// transaction hash once accepted.
	//
	// A transaction the chain refuses is reported as a *RejectError,
	// not as a transport failure. Submit MUST be safe for concurrent
	// use.
	Submit(ctx context.Context, txn types.SignedTransaction) (types.HashValue, error)
}

// Simulator is implemented by ledgers that can dry-run a transaction.
type Simulator interface {
	// Simulate executes txn against current state without committing
	// and returns the change set it would produce.
	//
	// This method MUST be safe for concurrent use.
	Simulate(ctx context.Context, txn types.SignedTransaction) (types.ChangeSet, error)
}

// Connection is a transport-agnostic handle to a ledger. Both the
// gRPC client and the in-process adapter implement it.
type Connection interface {
	Ledger

	// AsSimulator returns the Simulator if the ledger supports
	// simulation, or nil.
	AsSimulator() Simulator

	// Close terminates the connection.
	Close() error
}
