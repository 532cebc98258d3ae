package bench

import (
	"context"
	"math/rand"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/binafft"
	apperrors "github.com/cwbudde/binafft/internal/errors"
)

// VerifyResult summarizes a concurrent verification run.
type VerifyResult struct {
	N         int
	Workers   int
	Kernel    string
	MaxError  float64
	Tolerance float64
}

// Tolerance returns the accepted error for a size-2^k transform of inputs in
// [-1, 1) at the precision of T.
func Tolerance[T binafft.Complex](k int) float64 {
	var zero T
	if _, single := any(zero).(complex64); single {
		return 1e-5 * float64(k+1)
	}

	return 1e-12 * float64(k+1)
}

// Verify has workers goroutines transform independent inputs through plans
// sharing one twiddle table. Each result is compared against a scalar
// reference plan and round-tripped back to its input. A VerificationError is
// returned when any error exceeds Tolerance.
func Verify[T binafft.Complex](ctx context.Context, r *Runner, k, workers int) (VerifyResult, error) {
	n := 1 << uint(k)

	ctx, span := r.tracer().Start(ctx, "bench.Verify", trace.WithAttributes(
		attribute.Int("n", n),
		attribute.Int("workers", workers),
	))
	defer span.End()

	table, err := binafft.NewTwiddleTable[T](k, r.Options...)
	if err != nil {
		return VerifyResult{}, err
	}
	defer table.Close()

	refOpts := append(append([]binafft.Option(nil), r.Options...), binafft.WithSIMDLevel(binafft.SIMDNone))

	ref, err := binafft.NewPlanWithTwiddle(table, refOpts...)
	if err != nil {
		return VerifyResult{}, err
	}
	defer ref.Close()

	res := VerifyResult{N: n, Workers: workers, Tolerance: Tolerance[T](k)}

	// Inputs and references are computed before fanning out: ref is not
	// safe for concurrent use.
	srcs := make([][]T, workers)
	wants := make([][]T, workers)

	for w, _n := 0, workers; w < _n; w++ {
		srcs[w] = RandomInput[T](rand.New(rand.NewSource(r.Seed+int64(w))), n)
		wants[w] = make([]T, n)

		if err := ref.Forward(wants[w], srcs[w]); err != nil {
			return res, err
		}
	}

	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)

	for w, _n := 0, workers; w < _n; w++ {
		src, want := srcs[w], wants[w]

		g.Go(func() error {
			plan, err := binafft.NewPlanWithTwiddle(table, r.Options...)
			if err != nil {
				return err
			}
			defer plan.Close()

			if err := ctx.Err(); err != nil {
				return err
			}

			got := make([]T, n)
			if err := plan.Forward(got, src); err != nil {
				return err
			}

			worst := MaxAbsDiff(got, want)

			if err := plan.InverseInPlace(got); err != nil {
				return err
			}

			worst = max(worst, MaxAbsDiff(got, src))

			mu.Lock()
			res.MaxError = max(res.MaxError, worst)
			if res.Kernel == "" {
				res.Kernel = plan.Kernel()
			}
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return res, err
	}

	ok := res.MaxError <= res.Tolerance

	if r.Observer != nil {
		r.Observer.ObserveVerification(n, res.MaxError, ok)
	}

	span.SetAttributes(attribute.Float64("max_error", res.MaxError))

	r.Logger.Debug().
		Int("n", n).
		Int("workers", workers).
		Float64("max_error", res.MaxError).
		Msg("verification done")

	if !ok {
		err := apperrors.VerificationError{N: n, MaxError: res.MaxError, Tolerance: res.Tolerance}
		span.SetStatus(codes.Error, err.Error())

		return res, err
	}

	return res, nil
}
