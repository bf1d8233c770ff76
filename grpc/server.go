package ledgergrpc

import (
	"context"
	"strconv"

	logger "github.com/multiversx/mx-chain-logger-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/blockberries/ledgertypes"
	"github.com/blockberries/ledgertypes/types"
)

var log = logger.GetOrCreate("ledgergrpc")

// rejectCodeKey is the trailer that carries the RejectError code of a
// refused simulation.
const rejectCodeKey = "ledger-reject-code"

// Compile-time interface check.
var _ LedgerServiceServer = (*GRPCServer)(nil)

// GRPCServer exposes a ledger as a gRPC service.
type GRPCServer struct {
	ledger    ledgertypes.Ledger
	simulator ledgertypes.Simulator
}

// NewGRPCServer creates a gRPC server wrapping l. SimulateTransaction
// is served when l also implements ledgertypes.Simulator.
func NewGRPCServer(l ledgertypes.Ledger) *GRPCServer {
	s := &GRPCServer{ledger: l}
	if sim, ok := l.(ledgertypes.Simulator); ok {
		s.simulator = sim
	}
	return s
}

// Register adds the ledger service to a gRPC server.
func (s *GRPCServer) Register(gs *grpc.Server) {
	RegisterLedgerServiceServer(gs, s)
}

func (s *GRPCServer) SubmitTransaction(ctx context.Context, txn *types.SignedTransaction) (*SubmitResult, error) {
	raw := txn.RawTxn
	hash, err := s.ledger.Submit(ctx, *txn)
	if err != nil {
		if r, ok := ledgertypes.IsReject(err); ok {
			log.Debug("transaction rejected", "sender", raw.Sender.Bytes(),
				"seq", raw.SequenceNumber, "code", r.Code, "reason", r.Reason)
			return &SubmitResult{Code: r.Code, Reason: r.Reason}, nil
		}
		log.Error("submit failed", "sender", raw.Sender.Bytes(), "seq", raw.SequenceNumber, "err", err)
		return nil, err
	}
	log.Debug("transaction accepted", "sender", raw.Sender.Bytes(), "seq", raw.SequenceNumber, "hash", []byte(hash))
	return &SubmitResult{Accepted: true, Hash: hash}, nil
}

func (s *GRPCServer) SimulateTransaction(ctx context.Context, txn *types.SignedTransaction) (*types.ChangeSet, error) {
	if s.simulator == nil {
		return nil, status.Error(codes.Unimplemented, "ledger does not support simulation")
	}
	cs, err := s.simulator.Simulate(ctx, *txn)
	if err != nil {
		if r, ok := ledgertypes.IsReject(err); ok {
			_ = grpc.SetTrailer(ctx, metadata.Pairs(rejectCodeKey, strconv.FormatUint(r.Code, 10)))
			return nil, status.Error(codes.FailedPrecondition, r.Reason)
		}
		log.Error("simulate failed", "sender", txn.RawTxn.Sender.Bytes(), "err", err)
		return nil, err
	}
	return &cs, nil
}

func (s *GRPCServer) Capabilities(context.Context, *CapabilitiesRequest) (*CapabilitiesResponse, error) {
	return &CapabilitiesResponse{Simulation: s.simulator != nil}, nil
}
