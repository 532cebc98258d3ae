package binafft

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/binafft/internal/reference"
)

// TestSharedTwiddleConcurrent runs many plans over one table at once. Run
// with -race to check that the table is only read.
func TestSharedTwiddleConcurrent(t *testing.T) {
	t.Parallel()

	const (
		k       = 9
		workers = 8
		rounds  = 20
	)

	table, err := NewTwiddleTable[complex128](k)
	if err != nil {
		t.Fatalf("NewTwiddleTable: %v", err)
	}
	defer table.Close()

	x := randomComplex128(1<<k, 77)
	want := reference.NaiveDFT128(x)

	var g errgroup.Group

	for w, _n := 0, workers; w < _n; w++ {
		w := w
		g.Go(func() error {
			plan, err := NewPlanWithTwiddle(table)
			if err != nil {
				return err
			}
			defer plan.Close()

			got := make([]complex128, len(x))

			for _i, _n := 0, rounds; _i < _n; _i++ {
				if err := plan.Forward(got, x); err != nil {
					return err
				}

				if d := maxAbsDiff(got, want); d > dftTol128 {
					return fmt.Errorf("worker %d: max diff %g", w, d)
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestOneShotConcurrent(t *testing.T) {
	t.Parallel()

	table, err := NewTwiddleTable[complex64](6)
	if err != nil {
		t.Fatalf("NewTwiddleTable: %v", err)
	}
	defer table.Close()

	var g errgroup.Group

	for seed, _n := int64(0), int64(6); seed < _n; seed++ {
		seed := seed
		g.Go(func() error {
			x := randomComplex64(64, seed)
			buf := append([]complex64(nil), x...)

			if err := Forward(6, table, buf); err != nil {
				return err
			}

			if err := Inverse(6, table, buf); err != nil {
				return err
			}

			if d := maxAbsDiff(buf, x); d > dftTol64 {
				return fmt.Errorf("seed %d: round trip diff %g", seed, d)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
