package fft

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/cwbudde/binafft/internal/cpu"
	m "github.com/cwbudde/binafft/internal/math"
)

const (
	engineTol64  = 1e-4
	engineTol128 = 1e-10
)

func randomComplex64(n int, seed int64) []complex64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(rng.Float32()*2-1, rng.Float32()*2-1)
	}

	return out
}

func randomComplex128(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return out
}

func assertComplex64Close(t *testing.T, got, want []complex64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range got {
		if diff := cmplx.Abs(complex128(got[i] - want[i])); diff > tol {
			t.Fatalf("index %d: got %v want %v (diff=%g)", i, got[i], want[i], diff)
		}
	}
}

func assertComplex128Close(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range got {
		if diff := cmplx.Abs(got[i] - want[i]); diff > tol {
			t.Fatalf("index %d: got %v want %v (diff=%g)", i, got[i], want[i], diff)
		}
	}
}

// twiddles returns a freshly filled size-2^k twiddle table.
func twiddles[T Complex](k int) []T {
	table := make([]T, TwiddleLen(k))
	FillTwiddleTable(table, k)

	return table
}

// newTestDescriptor builds a self-contained descriptor with plain Go slices.
func newTestDescriptor[T Complex](k int, features cpu.Features, useSmall bool) *Descriptor[T] {
	n := 1 << uint(k)

	return &Descriptor[T]{
		N:        n,
		K:        k,
		Twiddle:  twiddles[T](k),
		Perm:     m.PermutationTable(k),
		Scratch:  make([]T, n),
		Kernels:  SelectKernels[T](features),
		UseSmall: useSmall,
	}
}

// allLaneFeatures lists feature sets that force each lane width.
func allLaneFeatures() map[string]cpu.Features {
	return map[string]cpu.Features{
		"scalar": {ForceGeneric: true},
		"sse2":   {HasSSE2: true},
		"avx":    {HasSSE2: true, HasAVX: true},
		"avx512": {HasSSE2: true, HasAVX: true, HasAVX512: true},
	}
}
