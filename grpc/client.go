package ledgergrpc

import (
	"context"
	"fmt"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/blockberries/ledgertypes"
	"github.com/blockberries/ledgertypes/types"
)

// Compile-time interface checks.
var (
	_ ledgertypes.Connection = (*Client)(nil)
	_ ledgertypes.Simulator  = (*remoteSimulator)(nil)
)

// Client implements ledgertypes.Connection for a remote ledger over
// gRPC using the lcs codec.
type Client struct {
	cc         *grpc.ClientConn
	simulation bool
}

// Dial connects to a remote ledger and asks which optional
// capabilities it serves. Calls use Codec{} unless opts force another
// codec.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithDefaultCallOptions(
		grpc.ForceCodec(Codec{}),
	)}, opts...)
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("ledger client: dial %s: %w", addr, err)
	}
	resp := new(CapabilitiesResponse)
	if err := cc.Invoke(ctx, fullMethod("Capabilities"), &CapabilitiesRequest{}, resp); err != nil {
		cc.Close()
		return nil, fmt.Errorf("ledger client: capabilities %s: %w", addr, err)
	}
	log.Debug("connected to ledger", "addr", addr, "simulation", resp.Simulation)
	return &Client{cc: cc, simulation: resp.Simulation}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

// Submit sends txn to the remote ledger. A refusal is returned as a
// *ledgertypes.RejectError. A txn that fails Validate is not sent.
func (c *Client) Submit(ctx context.Context, txn types.SignedTransaction) (types.HashValue, error) {
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("ledger client: submit: %w", err)
	}
	resp := new(SubmitResult)
	if err := c.cc.Invoke(ctx, fullMethod("SubmitTransaction"), &txn, resp); err != nil {
		return nil, err
	}
	if !resp.Accepted {
		return nil, ledgertypes.NewRejectError(resp.Code, resp.Reason)
	}
	return types.HashValue(resp.Hash), nil
}

// AsSimulator returns a Simulator if the remote ledger serves
// SimulateTransaction, or nil.
func (c *Client) AsSimulator() ledgertypes.Simulator {
	if !c.simulation {
		return nil
	}
	return &remoteSimulator{cc: c.cc}
}

type remoteSimulator struct {
	cc *grpc.ClientConn
}

func (s *remoteSimulator) Simulate(ctx context.Context, txn types.SignedTransaction) (types.ChangeSet, error) {
	if err := txn.Validate(); err != nil {
		return types.ChangeSet{}, fmt.Errorf("ledger client: simulate: %w", err)
	}
	var trailer metadata.MD
	resp := new(types.ChangeSet)
	err := s.cc.Invoke(ctx, fullMethod("SimulateTransaction"), &txn, resp, grpc.Trailer(&trailer))
	if err != nil {
		if r, ok := rejectFromStatus(err, trailer); ok {
			return types.ChangeSet{}, r
		}
		return types.ChangeSet{}, err
	}
	return *resp, nil
}

// rejectFromStatus rebuilds the RejectError a server reported through
// a FailedPrecondition status and the reject-code trailer.
func rejectFromStatus(err error, trailer metadata.MD) (*ledgertypes.RejectError, bool) {
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.FailedPrecondition {
		return nil, false
	}
	vals := trailer.Get(rejectCodeKey)
	if len(vals) == 0 {
		return nil, false
	}
	code, perr := strconv.ParseUint(vals[0], 10, 64)
	if perr != nil {
		return nil, false
	}
	return ledgertypes.NewRejectError(code, st.Message()), true
}
