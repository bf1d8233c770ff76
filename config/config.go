// Package config loads the TOML configuration of the ledger tools.
package config

import (
	"errors"
	"fmt"
	"os"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pelletier/go-toml"

	"github.com/blockberries/ledgertypes/lcs"
)

var log = logger.GetOrCreate("config")

// ErrInvalidConfig is returned when a loaded configuration fails
// validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root of the configuration file.
type Config struct {
	Codec CodecConfig
	Log   LogConfig
}

// CodecConfig holds the decode ceilings.
type CodecConfig struct {
	MaxSequenceLength int
	MaxContainerDepth int
}

// LogConfig holds the logger settings.
type LogConfig struct {
	// Level is an mx-chain-logger-go pattern such as "*:INFO" or
	// "*:INFO,ledgergrpc:DEBUG".
	Level string
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Codec: CodecConfig{
			MaxSequenceLength: lcs.MaxSequenceLength,
			MaxContainerDepth: lcs.MaxContainerDepth,
		},
		Log: LogConfig{Level: "*:INFO"},
	}
}

// Load reads the TOML file at path and validates it. Keys absent from
// the file, or set to zero, take their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Error("cannot close config file", "path", path, "err", cerr.Error())
		}
	}()

	cfg := new(Config)
	if err := toml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Debug("config loaded", "path", path,
		"max sequence length", cfg.Codec.MaxSequenceLength,
		"max container depth", cfg.Codec.MaxContainerDepth)
	return cfg, nil
}

// Parse is Load for in-memory TOML.
func Parse(data []byte) (*Config, error) {
	cfg := new(Config)
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Codec.MaxSequenceLength == 0 {
		c.Codec.MaxSequenceLength = def.Codec.MaxSequenceLength
	}
	if c.Codec.MaxContainerDepth == 0 {
		c.Codec.MaxContainerDepth = def.Codec.MaxContainerDepth
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Validate checks that every ceiling is positive and within the
// format's own limits.
func (c *Config) Validate() error {
	switch {
	case c.Codec.MaxSequenceLength <= 0 || c.Codec.MaxSequenceLength > lcs.MaxSequenceLength:
		return fmt.Errorf("%w: Codec.MaxSequenceLength %d out of range (1..%d)",
			ErrInvalidConfig, c.Codec.MaxSequenceLength, lcs.MaxSequenceLength)
	case c.Codec.MaxContainerDepth <= 0:
		return fmt.Errorf("%w: Codec.MaxContainerDepth %d must be positive",
			ErrInvalidConfig, c.Codec.MaxContainerDepth)
	case c.Log.Level == "":
		return fmt.Errorf("%w: Log.Level is empty", ErrInvalidConfig)
	}
	return nil
}

// Limits returns the decode limits described by the configuration.
func (c *Config) Limits() lcs.Limits {
	return lcs.Limits{
		MaxSequenceLength: c.Codec.MaxSequenceLength,
		MaxContainerDepth: c.Codec.MaxContainerDepth,
	}
}
