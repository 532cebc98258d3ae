// Package config parses the binafft command line.
//
// Values are resolved with the priority: flags > BINAFFT_* environment
// variables > .env file > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/binafft"
	apperrors "github.com/cwbudde/binafft/internal/errors"
	"github.com/cwbudde/binafft/internal/fftypes"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "BINAFFT_"

// Run modes.
const (
	ModeBench  = "bench"
	ModeSample = "sample"
	ModeVerify = "verify"
	ModeAll    = "all"
)

// Precisions.
const (
	Precision32 = "complex64"
	Precision64 = "complex128"
)

// Defaults match the classic benchmark: sizes 2^4 to 2^18, 8000 iterations.
const (
	DefaultMinLog2    = 4
	DefaultMaxLog2    = 18
	DefaultIterations = 8000
	DefaultSampleLog2 = 4
	DefaultWorkers    = 4
	DefaultSeed       = 1
)

// AppConfig holds the resolved command configuration.
type AppConfig struct {
	Mode        string
	MinLog2     int
	MaxLog2     int
	Iterations  int
	Precision   string
	SIMD        string
	NoSmall     bool
	SampleLog2  int
	Workers     int
	Seed        int64
	MetricsAddr string
	LogLevel    string
	JSONLogs    bool
	Quiet       bool
	EnvFile     string
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Help requests return flag.ErrHelp; anything else invalid returns a
// ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}

	fs.StringVar(&cfg.Mode, "mode", ModeAll, "what to run: bench, sample, verify or all")
	fs.IntVar(&cfg.MinLog2, "min", DefaultMinLog2, "smallest benchmark size as log2 N")
	fs.IntVar(&cfg.MaxLog2, "max", DefaultMaxLog2, "largest benchmark size as log2 N")
	fs.IntVar(&cfg.Iterations, "iterations", DefaultIterations, "transforms per benchmark size")
	fs.StringVar(&cfg.Precision, "precision", Precision32, "sample type: complex64 or complex128")
	fs.StringVar(&cfg.SIMD, "simd", "", "cap kernel width: none, sse2, avx, avx512 or neon")
	fs.BoolVar(&cfg.NoSmall, "no-small", false, "route N <= 8 through the stage pipeline")
	fs.IntVar(&cfg.SampleLog2, "sample", DefaultSampleLog2, "log2 N of the printed sample transform")
	fs.IntVar(&cfg.Workers, "workers", DefaultWorkers, "goroutines sharing one twiddle table in verify mode")
	fs.Int64Var(&cfg.Seed, "seed", DefaultSeed, "random input seed")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.JSONLogs, "json-logs", false, "emit logs as JSON")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress the spinner and tables")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "dotenv file to load before reading BINAFFT_* variables")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return AppConfig{}, err
		}

		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}

	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := LoadDotEnv(cfg.EnvFile, isFlagSet(fs, "env-file")); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c AppConfig) Validate() error {
	switch c.Mode {
	case ModeBench, ModeSample, ModeVerify, ModeAll:
	default:
		return apperrors.NewConfigError("unknown mode %q", c.Mode)
	}

	if c.MinLog2 < 0 || c.MaxLog2 > binafft.MaxLog2 || c.MinLog2 > c.MaxLog2 {
		return apperrors.NewConfigError("invalid size range 2^%d..2^%d", c.MinLog2, c.MaxLog2)
	}

	if c.Iterations < 1 {
		return apperrors.NewConfigError("iterations must be positive, got %d", c.Iterations)
	}

	if c.Precision != Precision32 && c.Precision != Precision64 {
		return apperrors.NewConfigError("unknown precision %q", c.Precision)
	}

	if _, err := c.SIMDLevel(); err != nil {
		return err
	}

	if c.SampleLog2 < 0 || c.SampleLog2 > 10 {
		return apperrors.NewConfigError("sample size 2^%d out of range [2^0, 2^10]", c.SampleLog2)
	}

	if c.Workers < 1 {
		return apperrors.NewConfigError("workers must be positive, got %d", c.Workers)
	}

	return nil
}

// SIMDLevel returns the requested kernel cap. An empty SIMD field yields
// SIMDNone; callers check SIMD first to tell "no cap" from "scalar".
func (c AppConfig) SIMDLevel() (binafft.SIMDLevel, error) {
	if c.SIMD == "" {
		return binafft.SIMDNone, nil
	}

	level, err := parseSIMD(c.SIMD)
	if err != nil {
		return binafft.SIMDNone, apperrors.NewConfigError("%v", err)
	}

	return level, nil
}

// Options translates the configuration into library options.
func (c AppConfig) Options() []binafft.Option {
	var opts []binafft.Option

	if c.SIMD != "" {
		if level, err := c.SIMDLevel(); err == nil {
			opts = append(opts, binafft.WithSIMDLevel(level))
		}
	}

	if c.NoSmall {
		opts = append(opts, binafft.WithoutSmallKernels())
	}

	return opts
}

// Runs reports whether mode m is selected.
func (c AppConfig) Runs(m string) bool {
	return c.Mode == m || c.Mode == ModeAll
}

func parseSIMD(name string) (binafft.SIMDLevel, error) {
	name = strings.ToLower(name)

	switch name {
	case "none", "scalar":
		return binafft.SIMDNone, nil
	case "avx2":
		return binafft.SIMDAVX, nil
	}

	level, ok := fftypes.ParseSIMDLevel(name)
	if !ok {
		return binafft.SIMDNone, fmt.Errorf("unknown SIMD level %q", name)
	}

	return level, nil
}
