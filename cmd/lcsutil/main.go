package main

import (
	"context"
	"fmt"
	"io"
	"os"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"

	"github.com/blockberries/ledgertypes/config"
)

var log = logger.GetOrCreate("lcsutil")

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "Path to a TOML config file. Defaults apply when omitted",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "Logger pattern such as *:DEBUG. Overrides the config file",
	}
	typeFlag = cli.StringFlag{
		Name:  "type",
		Usage: "Ledger type name, as listed by the types command",
	}
	fileFlag = cli.StringFlag{
		Name:  "file",
		Usage: "Read the raw encoding from this file instead of a hex argument",
	}
	listenFlag = cli.StringFlag{
		Name:  "listen",
		Usage: "Address the ledger service listens on",
		Value: "127.0.0.1:7700",
	}
	addrFlag = cli.StringFlag{
		Name:  "addr",
		Usage: "Address of a running ledger service",
		Value: "127.0.0.1:7700",
	}
	chainIDFlag = cli.IntFlag{
		Name:  "chain-id",
		Usage: "Chain id accepted by the in-memory ledger",
		Value: 4,
	}
)

func main() {
	if err := newApp(context.Background(), os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newApp(ctx context.Context, out io.Writer) *cli.App {
	cfg := config.Default()

	app := cli.NewApp()
	app.Name = "lcsutil"
	app.Version = "v0.1.0"
	app.Usage = "Inspect and verify canonical ledger record encodings"
	app.Writer = out
	app.Flags = []cli.Flag{configFlag, logLevelFlag}
	app.Before = func(c *cli.Context) error {
		if path := c.GlobalString(configFlag.Name); path != "" {
			loaded, err := config.Load(path)
			if err != nil {
				return err
			}
			*cfg = *loaded
		}
		level := cfg.Log.Level
		if l := c.GlobalString(logLevelFlag.Name); l != "" {
			level = l
		}
		if err := logger.SetLogLevel(level); err != nil {
			return fmt.Errorf("log level %q: %w", level, err)
		}
		return logger.SetDisplayByteSlice(logger.ToHex)
	}
	app.Commands = []cli.Command{
		{
			Name:   "types",
			Usage:  "List the decodable type names",
			Action: listTypes,
		},
		{
			Name:      "decode",
			Usage:     "Strictly decode an encoding and print the value",
			ArgsUsage: "[HEX]",
			Flags:     []cli.Flag{typeFlag, fileFlag},
			Action:    func(c *cli.Context) error { return decode(c, cfg) },
		},
		{
			Name:      "verify",
			Usage:     "Check that an encoding is the canonical form of its value",
			ArgsUsage: "[HEX]",
			Flags:     []cli.Flag{typeFlag, fileFlag},
			Action:    func(c *cli.Context) error { return verify(c, cfg) },
		},
		{
			Name:   "serve",
			Usage:  "Serve an in-memory ledger over gRPC",
			Flags:  []cli.Flag{listenFlag, chainIDFlag},
			Action: func(c *cli.Context) error { return serve(ctx, c, cfg) },
		},
		{
			Name:      "submit",
			Usage:     "Submit a hex-encoded SignedTransaction to a ledger service",
			ArgsUsage: "HEX",
			Flags:     []cli.Flag{addrFlag, fileFlag},
			Action:    func(c *cli.Context) error { return submit(c, cfg) },
		},
		{
			Name:      "simulate",
			Usage:     "Simulate a hex-encoded SignedTransaction and print the change set",
			ArgsUsage: "HEX",
			Flags:     []cli.Flag{addrFlag, fileFlag},
			Action:    func(c *cli.Context) error { return simulate(c, cfg) },
		},
	}
	return app
}
