package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/blockberries/ledgertypes"
	"github.com/blockberries/ledgertypes/config"
	"github.com/blockberries/ledgertypes/example/memledger"
	ledgergrpc "github.com/blockberries/ledgertypes/grpc"
	"github.com/blockberries/ledgertypes/lcs"
	"github.com/blockberries/ledgertypes/types"
)

// ErrNotCanonical is returned by verify when the input decodes but is
// not the encoding of the decoded value.
var ErrNotCanonical = errors.New("encoding is not canonical")

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func listTypes(c *cli.Context) error {
	for _, name := range types.Names() {
		fmt.Fprintln(c.App.Writer, name)
	}
	return nil
}

// readInput returns the bytes named by --file, or else the hex first
// argument. Whitespace and a 0x prefix are ignored.
func readInput(c *cli.Context) ([]byte, error) {
	if path := c.String(fileFlag.Name); path != "" {
		return os.ReadFile(path)
	}
	if c.NArg() == 0 {
		return nil, errors.New("expected a hex argument or --file")
	}
	s := strings.Join(strings.Fields(strings.Join(c.Args(), "")), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hex input: %w", err)
	}
	return data, nil
}

func decodeInput(c *cli.Context, cfg *config.Config) (lcs.Marshaler, []byte, error) {
	name := c.String(typeFlag.Name)
	if name == "" {
		return nil, nil, errors.New("--type is required")
	}
	data, err := readInput(c)
	if err != nil {
		return nil, nil, err
	}
	v, err := types.Decode(name, data, cfg.Limits())
	if err != nil {
		if de, ok := lcs.IsDecodeError(err); ok {
			log.Debug("decode failed", "type", name, "offset", de.Offset, "err", de.Err.Error())
		}
		return nil, data, err
	}
	return v, data, nil
}

func decode(c *cli.Context, cfg *config.Config) error {
	v, _, err := decodeInput(c, cfg)
	if err != nil {
		return err
	}
	dumper.Fdump(c.App.Writer, v)
	return nil
}

func verify(c *cli.Context, cfg *config.Config) error {
	v, data, err := decodeInput(c, cfg)
	if err != nil {
		return err
	}
	if re := lcs.Marshal(v); !bytes.Equal(re, data) {
		return fmt.Errorf("%w: re-encoded as %x", ErrNotCanonical, re)
	}
	fmt.Fprintf(c.App.Writer, "ok: %d bytes, canonical %s\n", len(data), c.String(typeFlag.Name))
	return nil
}

// serve runs until ctx is done or the process is interrupted.
func serve(ctx context.Context, c *cli.Context, cfg *config.Config) error {
	chainID := c.Int(chainIDFlag.Name)
	if chainID < 0 || chainID > 255 {
		return fmt.Errorf("chain id %d out of range", chainID)
	}
	lis, err := net.Listen("tcp", c.String(listenFlag.Name))
	if err != nil {
		return err
	}

	gs := grpc.NewServer(grpc.ForceServerCodec(ledgergrpc.Codec{Limits: cfg.Limits()}))
	ledgergrpc.NewGRPCServer(memledger.New(types.ChainIDFromInt(chainID))).Register(gs)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		gs.GracefulStop()
	}()

	log.Info("serving in-memory ledger", "addr", lis.Addr().String(), "chain id", chainID,
		"max sequence length", cfg.Codec.MaxSequenceLength)
	return gs.Serve(lis)
}

func dialLedger(c *cli.Context, cfg *config.Config) (*ledgergrpc.Client, error) {
	return ledgergrpc.Dial(context.Background(), c.String(addrFlag.Name),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(ledgergrpc.Codec{Limits: cfg.Limits()})),
	)
}

func readSignedTransaction(c *cli.Context, cfg *config.Config) (types.SignedTransaction, error) {
	data, err := readInput(c)
	if err != nil {
		return types.SignedTransaction{}, err
	}
	return lcs.DeserializeWithLimits(data, cfg.Limits(), types.DecodeSignedTransaction)
}

func submit(c *cli.Context, cfg *config.Config) error {
	txn, err := readSignedTransaction(c, cfg)
	if err != nil {
		return err
	}
	client, err := dialLedger(c, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	hash, err := client.Submit(context.Background(), txn)
	if err != nil {
		if r, ok := ledgertypes.IsReject(err); ok {
			log.Warn("transaction rejected", "code", r.Code, "reason", r.Reason)
		}
		return err
	}
	fmt.Fprintf(c.App.Writer, "accepted %x\n", []byte(hash))
	return nil
}

func simulate(c *cli.Context, cfg *config.Config) error {
	txn, err := readSignedTransaction(c, cfg)
	if err != nil {
		return err
	}
	client, err := dialLedger(c, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	sim := client.AsSimulator()
	if sim == nil {
		return errors.New("ledger does not support simulation")
	}
	cs, err := sim.Simulate(context.Background(), txn)
	if err != nil {
		return err
	}
	dumper.Fdump(c.App.Writer, cs)
	return nil
}
