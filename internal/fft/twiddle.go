package fft

import (
	"math"

	m "github.com/cwbudde/binafft/internal/math"
)

// TwiddleLen returns the number of twiddle factors a size-2^k transform
// needs: N/2, or zero for k == 0.
func TwiddleLen(k int) int {
	if k <= 0 {
		return 0
	}

	return 1 << uint(k-1)
}

// FillTwiddleTable writes the size-2^k twiddle table into dst, which must
// hold at least TwiddleLen(k) entries.
//
// Angles are reduced to the first octant before evaluation so that every
// entry costs one float64 Sincos call on an argument in [0, π/4]; the
// result is rounded once to the element precision. Entries 0 and N/4 are
// exact.
func FillTwiddleTable[T Complex](dst []T, k int) {
	size := 1 << uint(k)
	for n := range dst[:TwiddleLen(k)] {
		s, c := twiddleSinCos(n, size)
		dst[n] = complexFromFloat64[T](c, -s)
	}
}

// twiddleSinCos returns sin and cos of 2πn/size for 0 <= n < size/2.
func twiddleSinCos(n, size int) (sin, cos float64) {
	switch {
	case 8*n <= size:
		return math.Sincos(m.TwoPi * float64(n) / float64(size))
	case 4*n <= size:
		// θ = π/2 - φ
		s, c := math.Sincos(m.TwoPi * float64(size/4-n) / float64(size))
		return c, s
	default:
		// θ = π/2 + φ
		s, c := twiddleSinCos(n-size/4, size)
		return c, -s
	}
}

// StageTwiddles materializes the factors stage s reads from a base table:
// every 2^s-th entry. The engine indexes the base table directly; this view
// exists for inspection.
func StageTwiddles[T Complex](table []T, stage int) []T {
	if stage < 0 {
		return nil
	}

	stride := 1 << uint(stage)
	count := len(table) / stride

	out := make([]T, count)
	for i := range out {
		out[i] = table[i*stride]
	}

	return out
}

// complexFromFloat64 creates a complex number of type T from float64 components.
func complexFromFloat64[T Complex](re, im float64) T {
	var zero T

	switch any(zero).(type) {
	case complex64:
		result, _ := any(complex(float32(re), float32(im))).(T)
		return result
	case complex128:
		result, _ := any(complex(re, im)).(T)
		return result
	default:
		panic("unsupported complex type")
	}
}
