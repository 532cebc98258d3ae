// Package bench times and verifies transforms for the binafft command.
package bench

import (
	"context"
	"math"
	"math/cmplx"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cwbudde/binafft"
)

const tracerName = "github.com/cwbudde/binafft/internal/bench"

// Observer receives measurements as they are taken. metrics.Collector
// implements it.
type Observer interface {
	ObserveTransform(n int, direction, kernel string, perOp time.Duration, mflops float64)
	ObserveVerification(n int, maxErr float64, ok bool)
}

// Result is the outcome of benchmarking one size.
type Result struct {
	N          int
	Log2       int
	Kernel     string
	Iterations int
	Forward    time.Duration
	Inverse    time.Duration
	MFLOPS     float64
	// RoundTripError is max |x - Inverse(Forward(x))| over the input.
	RoundTripError float64
}

// Runner holds the settings shared by Benchmark and Verify.
type Runner struct {
	Iterations int
	Seed       int64
	Options    []binafft.Option
	Observer   Observer
	Logger     zerolog.Logger
	Tracer     trace.Tracer
	// Progress, when set, is called after each completed size.
	Progress func(done, total, n int)
}

// NewRunner returns a runner with the global tracer and a silent logger.
func NewRunner(iterations int, seed int64, opts ...binafft.Option) *Runner {
	return &Runner{
		Iterations: iterations,
		Seed:       seed,
		Options:    opts,
		Logger:     zerolog.Nop(),
		Tracer:     otel.Tracer(tracerName),
	}
}

func (r *Runner) tracer() trace.Tracer {
	if r.Tracer == nil {
		return otel.Tracer(tracerName)
	}

	return r.Tracer
}

// MFLOPS returns the conventional radix-2 throughput figure 5·N·log2(N)/t
// in millions of operations per second.
func MFLOPS(n int, perOp time.Duration) float64 {
	if n < 2 || perOp <= 0 {
		return 0
	}

	ops := 5 * float64(n) * math.Log2(float64(n))

	return ops / perOp.Seconds() / 1e6
}

// Benchmark times forward and inverse transforms for every size 2^minLog2
// through 2^maxLog2.
func Benchmark[T binafft.Complex](ctx context.Context, r *Runner, minLog2, maxLog2 int) ([]Result, error) {
	ctx, span := r.tracer().Start(ctx, "bench.Benchmark", trace.WithAttributes(
		attribute.Int("min_log2", minLog2),
		attribute.Int("max_log2", maxLog2),
		attribute.Int("iterations", r.Iterations),
	))
	defer span.End()

	total := maxLog2 - minLog2 + 1
	results := make([]Result, 0, total)
	rng := rand.New(rand.NewSource(r.Seed))

	for k := minLog2; k <= maxLog2; k++ {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "canceled")
			return results, err
		}

		res, err := benchmarkSize[T](ctx, r, rng, k)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			return results, err
		}

		results = append(results, res)

		r.Logger.Debug().
			Int("n", res.N).
			Str("kernel", res.Kernel).
			Dur("forward", res.Forward).
			Float64("mflops", res.MFLOPS).
			Msg("size done")

		if r.Progress != nil {
			r.Progress(len(results), total, res.N)
		}
	}

	return results, nil
}

func benchmarkSize[T binafft.Complex](ctx context.Context, r *Runner, rng *rand.Rand, k int) (Result, error) {
	n := 1 << uint(k)

	_, span := r.tracer().Start(ctx, "bench.size", trace.WithAttributes(attribute.Int("n", n)))
	defer span.End()

	plan, err := binafft.NewPlan[T](n, r.Options...)
	if err != nil {
		return Result{}, err
	}
	defer plan.Close()

	src := RandomInput[T](rng, n)
	freq := make([]T, n)
	back := make([]T, n)
	iters := max(r.Iterations, 1)

	start := time.Now()
	for _i, _n := 0, iters; _i < _n; _i++ {
		if err := plan.Forward(freq, src); err != nil {
			return Result{}, err
		}
	}
	forward := time.Since(start) / time.Duration(iters)

	start = time.Now()
	for _i, _n := 0, iters; _i < _n; _i++ {
		if err := plan.Inverse(back, freq); err != nil {
			return Result{}, err
		}
	}
	inverse := time.Since(start) / time.Duration(iters)

	res := Result{
		N:              n,
		Log2:           k,
		Kernel:         plan.Kernel(),
		Iterations:     iters,
		Forward:        forward,
		Inverse:        inverse,
		MFLOPS:         MFLOPS(n, forward),
		RoundTripError: MaxAbsDiff(back, src),
	}

	span.SetAttributes(
		attribute.String("kernel", res.Kernel),
		attribute.Int64("forward_ns", forward.Nanoseconds()),
		attribute.Float64("mflops", res.MFLOPS),
	)

	if r.Observer != nil {
		r.Observer.ObserveTransform(n, "forward", res.Kernel, forward, res.MFLOPS)
		r.Observer.ObserveTransform(n, "inverse", res.Kernel, inverse, MFLOPS(n, inverse))
	}

	return res, nil
}

// RandomInput returns n samples with both components uniform in [-1, 1).
func RandomInput[T binafft.Complex](rng *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		re, im := rng.Float64()*2-1, rng.Float64()*2-1

		switch p := any(&out[i]).(type) {
		case *complex64:
			*p = complex(float32(re), float32(im))
		case *complex128:
			*p = complex(re, im)
		}
	}

	return out
}

// MaxAbsDiff returns the largest element-wise distance between a and b.
func MaxAbsDiff[T binafft.Complex](a, b []T) float64 {
	worst := 0.0

	for i := range a {
		var d float64

		switch x := any(a[i] - b[i]).(type) {
		case complex64:
			d = cmplx.Abs(complex128(x))
		case complex128:
			d = cmplx.Abs(x)
		}

		worst = max(worst, d)
	}

	return worst
}
