// Package app wires configuration, logging, metrics and the benchmark
// runner into the binafft command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/binafft"
	"github.com/cwbudde/binafft/internal/bench"
	"github.com/cwbudde/binafft/internal/config"
	apperrors "github.com/cwbudde/binafft/internal/errors"
	"github.com/cwbudde/binafft/internal/logging"
	"github.com/cwbudde/binafft/internal/metrics"
	"github.com/cwbudde/binafft/internal/ui"
)

// Application is one configured run of the command.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    zerolog.Logger
	Metrics   *metrics.Collector

	// newSpinner is replaced in tests.
	newSpinner func(io.Writer) ui.Spinner
}

// New parses args (including the program name) and prepares the
// application.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "binafft"

	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	level := logging.ParseLevel(cfg.LogLevel)

	logger := logging.NewLogger(errWriter, "binafft", level)
	if cfg.JSONLogs {
		logger = logging.NewJSONLogger(errWriter, "binafft", level)
	}

	return &Application{
		Config:     cfg,
		ErrWriter:  errWriter,
		Logger:     logger,
		Metrics:    metrics.NewCollector(),
		newSpinner: ui.NewSpinner,
	}, nil
}

// IsHelpError reports whether err came from -h or -help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// Run executes the configured modes and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := a.run(ctx, out)
	if err != nil {
		a.Logger.Error().Err(err).Msg("run failed")
	}

	return apperrors.ExitCode(err)
}

func (a *Application) run(ctx context.Context, out io.Writer) error {
	if a.Config.MetricsAddr == "" {
		return a.dispatch(ctx, out)
	}

	serveCtx, stopServing := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(serveCtx)

	g.Go(func() error {
		return a.Metrics.Serve(gctx, a.Config.MetricsAddr, a.Logger)
	})

	g.Go(func() error {
		defer stopServing()
		return a.dispatch(gctx, out)
	})

	return g.Wait()
}

func (a *Application) dispatch(ctx context.Context, out io.Writer) error {
	if a.Config.Precision == config.Precision64 {
		return runModes[complex128](ctx, a, out)
	}

	return runModes[complex64](ctx, a, out)
}

func (a *Application) runner() *bench.Runner {
	r := bench.NewRunner(a.Config.Iterations, a.Config.Seed, a.Config.Options()...)
	r.Logger = a.Logger
	r.Observer = a.Metrics

	return r
}

func runModes[T binafft.Complex](ctx context.Context, a *Application, out io.Writer) error {
	cfg := a.Config

	a.Logger.Info().
		Str("mode", cfg.Mode).
		Str("precision", cfg.Precision).
		Msg("starting")

	if cfg.Runs(config.ModeBench) {
		if err := runBenchmark[T](ctx, a, out); err != nil {
			return err
		}
	}

	if cfg.Runs(config.ModeVerify) {
		if err := runVerify[T](ctx, a, out); err != nil {
			return err
		}
	}

	if cfg.Runs(config.ModeSample) {
		if err := runSample[T](a, out); err != nil {
			return err
		}
	}

	return nil
}

func runBenchmark[T binafft.Complex](ctx context.Context, a *Application, out io.Writer) error {
	cfg := a.Config

	spin := ui.NopSpinner()
	if !cfg.Quiet {
		spin = a.newSpinner(a.ErrWriter)
	}

	r := a.runner()
	r.Progress = ui.BenchProgress(spin)

	spin.Start()
	results, err := bench.Benchmark[T](ctx, r, cfg.MinLog2, cfg.MaxLog2)
	spin.Stop()

	if err != nil {
		return apperrors.WrapError(err, "benchmark")
	}

	if cfg.Quiet {
		return nil
	}

	_, err = fmt.Fprintf(out, "\n==[ Benchmark (%s, %d iterations) ]==\n%s\n", cfg.Precision, cfg.Iterations, ui.BenchmarkTable(results))

	return err
}

func runVerify[T binafft.Complex](ctx context.Context, a *Application, out io.Writer) error {
	cfg := a.Config

	res, err := bench.Verify[T](ctx, a.runner(), cfg.MaxLog2, cfg.Workers)

	if !cfg.Quiet && res.N > 0 {
		if _, werr := fmt.Fprintf(out, "\n==[ Shared twiddle verification ]==\n%s\n", ui.VerifyTable(res)); werr != nil && err == nil {
			err = werr
		}
	}

	return err
}

func runSample[T binafft.Complex](a *Application, out io.Writer) error {
	s, err := bench.RunSample[T](a.runner(), a.Config.SampleLog2)
	if err != nil {
		return apperrors.WrapError(err, "sample")
	}

	if _, err := fmt.Fprintf(out, "\n==[ Sample transform, N=%d ]==\n", len(s.Input)); err != nil {
		return err
	}

	sections := []struct {
		title  string
		values []T
	}{
		{"in", s.Input},
		{"Twiddle factors", s.Twiddle},
		{"fft", s.Forward},
		{"ifft", s.Inverse},
	}

	for _, sec := range sections {
		if err := ui.PrintComplexArray(out, sec.title, sec.values); err != nil {
			return err
		}
	}

	return nil
}
