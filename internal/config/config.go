// Package config handles command-line flag parsing and environment variable
// overrides for the rsacore tool. Priority is CLI flags, then environment
// variables (RSACORE_ prefix), then defaults.
package config

import (
	"flag"
	"io"
	"time"

	apperrors "github.com/agbru/rsacore/internal/errors"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "RSACORE_"

// Default configuration values.
const (
	DefaultTimeout     = 5 * time.Minute
	DefaultBenchRounds = 100
	DefaultBenchBits   = 512
)

// AppConfig holds the complete runtime configuration of the tool.
type AppConfig struct {
	// SelfTest runs the built-in RSA test vectors. This is the default mode.
	SelfTest bool
	// Bench runs the modular arithmetic benchmark.
	Bench bool
	// BenchRounds is the number of modular exponentiations per benchmark run.
	BenchRounds int
	// BenchBits is the modulus width in bits used by the benchmark.
	BenchBits int
	// Workers bounds the number of concurrent self-test suites.
	Workers int
	// Timeout bounds the total run time.
	Timeout time.Duration
	// Quiet suppresses progress output (spinner, per-suite lines).
	Quiet bool
	// Verbose enables debug-level logging.
	Verbose bool
	// JSONLog switches log output from console format to JSON.
	JSONLog bool
	// MetricsAddr, when non-empty, serves Prometheus metrics on this address.
	MetricsAddr string
	// Version requests printing version information and exiting.
	Version bool
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags not set explicitly.
// Output (usage text, errors) goes to w.
func ParseConfig(args []string, w io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet("rsacore", flag.ContinueOnError)
	fs.SetOutput(w)

	config := AppConfig{
		Timeout:     DefaultTimeout,
		BenchRounds: DefaultBenchRounds,
		BenchBits:   DefaultBenchBits,
	}

	fs.BoolVar(&config.SelfTest, "selftest", false, "Run the built-in RSA self-test suites (default mode)")
	fs.BoolVar(&config.Bench, "bench", false, "Run the modular exponentiation benchmark")
	fs.IntVar(&config.BenchRounds, "rounds", DefaultBenchRounds, "Number of operations per benchmark run")
	fs.IntVar(&config.BenchBits, "bits", DefaultBenchBits, "Modulus width in bits for the benchmark")
	fs.IntVar(&config.Workers, "workers", 0, "Maximum concurrent self-test suites (0 = one per CPU)")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Global timeout for the run (e.g. 30s, 5m)")
	fs.BoolVar(&config.Quiet, "quiet", false, "Suppress progress output")
	fs.BoolVar(&config.Quiet, "q", false, "Suppress progress output (shorthand)")
	fs.BoolVar(&config.Verbose, "v", false, "Enable verbose (debug) logging")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable verbose (debug) logging")
	fs.BoolVar(&config.JSONLog, "json-log", false, "Emit logs as JSON instead of console format")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	fs.BoolVar(&config.Version, "version", false, "Print version information and exit")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)
	config = ApplyAdaptiveDefaults(config)

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the configuration for inconsistent or out-of-range values.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %v", c.Timeout)
	}
	if c.BenchRounds <= 0 {
		return apperrors.NewConfigError("rounds must be positive, got %d", c.BenchRounds)
	}
	if c.BenchBits < 64 || c.BenchBits%64 != 0 {
		return apperrors.NewConfigError("bits must be a positive multiple of 64, got %d", c.BenchBits)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("workers must not be negative, got %d", c.Workers)
	}
	if c.SelfTest && c.Bench {
		return apperrors.NewConfigError("-selftest and -bench are mutually exclusive")
	}
	return nil
}
