package ledgergrpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/blockberries/ledgertypes/types"
)

const serviceName = "github.com/blockberries/ledgertypes.v1.LedgerService"

// LedgerServiceServer is the server-side interface for the ledger gRPC
// service.
type LedgerServiceServer interface {
	SubmitTransaction(context.Context, *types.SignedTransaction) (*SubmitResult, error)
	SimulateTransaction(context.Context, *types.SignedTransaction) (*types.ChangeSet, error)
	Capabilities(context.Context, *CapabilitiesRequest) (*CapabilitiesResponse, error)
}

// RegisterLedgerServiceServer registers srv on a gRPC server.
func RegisterLedgerServiceServer(s *grpc.Server, srv LedgerServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

// --- Handler functions ---

func handlerSubmitTransaction(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(types.SignedTransaction)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(LedgerServiceServer).SubmitTransaction(ctx, req)
}

func handlerSimulateTransaction(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(types.SignedTransaction)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(LedgerServiceServer).SimulateTransaction(ctx, req)
}

func handlerCapabilities(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(CapabilitiesRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(LedgerServiceServer).Capabilities(ctx, req)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor for the ledger
// service.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*LedgerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SubmitTransaction", Handler: handlerSubmitTransaction},
		{MethodName: "SimulateTransaction", Handler: handlerSimulateTransaction},
		{MethodName: "Capabilities", Handler: handlerCapabilities},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "github.com/blockberries/ledgertypes/v1/service.lcs",
}
