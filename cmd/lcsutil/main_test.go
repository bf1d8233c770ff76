package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/blockberries/ledgertypes/example/memledger"
	ledgergrpc "github.com/blockberries/ledgertypes/grpc"
	"github.com/blockberries/ledgertypes/lcs"
	lcstest "github.com/blockberries/ledgertypes/testing"
	"github.com/blockberries/ledgertypes/types"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runContext(context.Background(), args...)
}

func runContext(ctx context.Context, args ...string) (string, error) {
	var out bytes.Buffer
	err := newApp(ctx, &out).Run(append([]string{"lcsutil"}, args...))
	return out.String(), err
}

// freeAddr returns a loopback address with no listener on it.
func freeAddr(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())
	return addr
}

func TestTypes(t *testing.T) {
	out, err := run(t, "types")
	require.NoError(t, err)
	names := strings.Fields(out)
	assert.Contains(t, names, "SignedTransaction")
	assert.Contains(t, names, "TypeTag")
	assert.IsIncreasing(t, names)
}

func TestVerify(t *testing.T) {
	txn := hex.EncodeToString(lcs.Marshal(lcstest.SampleSignedTransaction(2)))

	out, err := run(t, "verify", "--type", "SignedTransaction", txn)
	require.NoError(t, err)
	assert.Contains(t, out, "canonical SignedTransaction")

	out, err = run(t, "verify", "--type", "ChainID", "0x04")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 1 bytes")
}

func TestVerify_Rejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"non-minimal length", []string{"--type", "Identifier", "8000"}, lcs.ErrNonCanonicalLength},
		{"trailing byte", []string{"--type", "ChainID", "0400"}, lcs.ErrTrailingData},
		{"unknown variant", []string{"--type", "WriteOp", "02"}, lcs.ErrUnknownVariant},
		{"short address", []string{"--type", "AccountAddress", strings.Repeat("ab", 15)}, lcs.ErrTruncatedInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"verify"}, tt.args...)...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cs.bin")
	require.NoError(t, os.WriteFile(path, lcs.Marshal(lcstest.SampleChangeSet()), 0o600))

	out, err := run(t, "decode", "--type", "ChangeSet", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "WriteOpDeletion")
	assert.Contains(t, out, "ContractEventV0")
}

func TestDecode_RequiresType(t *testing.T) {
	_, err := run(t, "decode", "00")
	assert.Error(t, err)
}

func TestDecode_ConfigLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lcsutil.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Codec]\nMaxSequenceLength = 2\n"), 0o600))

	_, err := run(t, "--config", path, "decode", "--type", "HashValue", "03010203")
	assert.ErrorIs(t, err, lcs.ErrLengthOverflow)

	_, err = run(t, "--config", path, "decode", "--type", "HashValue", "020102")
	assert.NoError(t, err)
}

func TestSubmit(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	l := memledger.New(lcstest.SampleChainID)
	gs := grpc.NewServer()
	ledgergrpc.NewGRPCServer(l).Register(gs)
	go func() { _ = gs.Serve(lis) }()
	defer gs.GracefulStop()

	txn := lcstest.SampleSignedTransaction(0)
	in := hex.EncodeToString(lcs.Marshal(txn))
	addr := lis.Addr().String()

	out, err := run(t, "simulate", "--addr", addr, in)
	require.NoError(t, err)
	assert.Contains(t, out, "WriteOpValue")

	out, err = run(t, "submit", "--addr", addr, in)
	require.NoError(t, err)
	assert.Equal(t, "accepted "+hex.EncodeToString(txn.Hash())+"\n", out)
	assert.Equal(t, uint64(1), l.SequenceNumber(lcstest.SampleSender))

	// Replaying the same transaction is refused by the ledger.
	_, err = run(t, "submit", "--addr", addr, in)
	assert.ErrorContains(t, err, "rejected")
}

func TestServe_ConfiguredLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lcsutil.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Codec]\nMaxSequenceLength = 48\n"), 0o600))
	addr := freeAddr(t)

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() {
		_, err := runContext(ctx, "--config", path, "serve", "--listen", addr)
		served <- err
	}()

	dialCtx, dialCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer dialCancel()
	client, err := ledgergrpc.Dial(dialCtx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.WaitForReady(true)),
	)
	require.NoError(t, err)
	defer client.Close()

	// Every length in this transaction fits the configured ceiling.
	short := types.NewEd25519SignedTransaction(lcstest.SampleRawTransaction(0), make([]byte, 32), make([]byte, 32))
	out, err := run(t, "submit", "--addr", addr, hex.EncodeToString(lcs.Marshal(short)))
	require.NoError(t, err)
	assert.Equal(t, "accepted "+hex.EncodeToString(short.Hash())+"\n", out)

	// A 64-byte signature exceeds it, so the server refuses to decode.
	_, err = client.Submit(context.Background(), lcstest.SampleSignedTransaction(1))
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Contains(t, err.Error(), "length overflow")

	cancel()
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancellation")
	}
}

func TestServe_ChainIDOutOfRange(t *testing.T) {
	addr := freeAddr(t)
	_, err := run(t, "serve", "--listen", addr, "--chain-id", "300")
	assert.ErrorContains(t, err, "out of range")

	// Nothing was left listening on the address.
	lis, err := net.Listen("tcp", addr)
	require.NoError(t, err)
	require.NoError(t, lis.Close())
}
