package binafft

import (
	"math/cmplx"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

const (
	dftTol64  = 1e-5
	dftTol128 = 1e-10
)

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func assertApproxComplex128f(t *testing.T, got, want complex128, format string, args ...any) {
	t.Helper()
	assertApproxComplex128Tolf(t, got, want, dftTol128, format, args...)
}

func assertApproxComplex64f(t *testing.T, got, want complex64, tol float64, format string, args ...any) {
	t.Helper()
	assertApproxComplex128Tolf(t, complex128(got), complex128(want), tol, format, args...)
}

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

// maxAbsDiff returns the largest element-wise distance between a and b.
func maxAbsDiff[T Complex](a, b []T) float64 {
	worst := 0.0

	for i := range a {
		var d float64

		switch x := any(a[i] - b[i]).(type) {
		case complex64:
			d = cmplx.Abs(complex128(x))
		case complex128:
			d = cmplx.Abs(x)
		}

		if d > worst {
			worst = d
		}
	}

	return worst
}
