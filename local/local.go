// Package local provides an in-process ledger connection.
//
// For ledgers compiled into the same binary as their client, the
// adapter adds capability discovery and close semantics without any
// serialization.
package local

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/blockberries/ledgertypes"
	"github.com/blockberries/ledgertypes/types"
)

// Compile-time interface check.
var _ ledgertypes.Connection = (*Connection)(nil)

// ErrClosed is returned by calls made after Close.
var ErrClosed = errors.New("local: connection closed")

// Connection wraps a local Ledger implementation.
type Connection struct {
	ledger    ledgertypes.Ledger
	simulator ledgertypes.Simulator
	closed    atomic.Bool
}

// NewConnection creates an in-process connection to l. Simulation is
// available when l also implements ledgertypes.Simulator.
func NewConnection(l ledgertypes.Ledger) *Connection {
	c := &Connection{ledger: l}
	if sim, ok := l.(ledgertypes.Simulator); ok {
		c.simulator = &simulator{conn: c, sim: sim}
	}
	return c
}

func (c *Connection) Submit(ctx context.Context, txn types.SignedTransaction) (types.HashValue, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	return c.ledger.Submit(ctx, txn)
}

func (c *Connection) AsSimulator() ledgertypes.Simulator {
	if c.simulator == nil {
		return nil
	}
	return c.simulator
}

func (c *Connection) Close() error {
	c.closed.Store(true)
	return nil
}

// Ledger returns the wrapped ledger.
func (c *Connection) Ledger() ledgertypes.Ledger {
	return c.ledger
}

type simulator struct {
	conn *Connection
	sim  ledgertypes.Simulator
}

func (s *simulator) Simulate(ctx context.Context, txn types.SignedTransaction) (types.ChangeSet, error) {
	if s.conn.closed.Load() {
		return types.ChangeSet{}, ErrClosed
	}
	return s.sim.Simulate(ctx, txn)
}
