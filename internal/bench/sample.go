package bench

import (
	"math/rand"

	"github.com/cwbudde/binafft"
)

// Sample holds one transform and everything that went into it, for display.
type Sample[T binafft.Complex] struct {
	Input   []T
	Twiddle []T
	Forward []T
	Inverse []T
}

// RunSample transforms a random size-2^k input forward and back through the
// one-shot in-place API.
func RunSample[T binafft.Complex](r *Runner, k int) (Sample[T], error) {
	table, err := binafft.NewTwiddleTable[T](k, r.Options...)
	if err != nil {
		return Sample[T]{}, err
	}
	defer table.Close()

	in := RandomInput[T](rand.New(rand.NewSource(r.Seed)), 1<<uint(k))
	buf := append([]T(nil), in...)

	if err := binafft.Forward(k, table, buf, r.Options...); err != nil {
		return Sample[T]{}, err
	}

	freq := append([]T(nil), buf...)

	if err := binafft.Inverse(k, table, buf, r.Options...); err != nil {
		return Sample[T]{}, err
	}

	return Sample[T]{
		Input:   in,
		Twiddle: table.Factors(),
		Forward: freq,
		Inverse: buf,
	}, nil
}
