package ledgergrpc

// Transport-specific wrapper types for RPC results that are not
// ledger records. These are used only at gRPC serialization
// boundaries.

// SubmitResult is the response to SubmitTransaction. A rejected
// transaction is a successful RPC with Accepted false.
type SubmitResult struct {
	Accepted bool   `cramberry:"1"`
	Hash     []byte `cramberry:"2"`
	Code     uint64 `cramberry:"3"`
	Reason   string `cramberry:"4"`
}

// CapabilitiesRequest is the (empty) request for Capabilities.
type CapabilitiesRequest struct{}

// CapabilitiesResponse reports the optional interfaces the remote
// ledger implements.
type CapabilitiesResponse struct {
	Simulation bool `cramberry:"1"`
}
