// Package reference holds slow, obviously-correct transforms used to check
// the fast kernels in tests.
package reference

import (
	"math"
	"math/cmplx"
)

// NaiveDFT computes the forward DFT of src in O(n^2), accumulating in
// complex128.
func NaiveDFT(src []complex64) []complex64 {
	wide := make([]complex128, len(src))
	for i, v := range src {
		wide[i] = complex128(v)
	}

	out := make([]complex64, len(src))
	for i, v := range dft(wide, -1) {
		out[i] = complex64(v)
	}

	return out
}

// NaiveIDFT computes the inverse DFT of src, including the 1/n scale.
func NaiveIDFT(src []complex64) []complex64 {
	wide := make([]complex128, len(src))
	for i, v := range src {
		wide[i] = complex128(v)
	}

	out := make([]complex64, len(src))
	for i, v := range NaiveIDFT128(wide) {
		out[i] = complex64(v)
	}

	return out
}

// NaiveDFT128 computes the forward DFT of src in O(n^2).
func NaiveDFT128(src []complex128) []complex128 {
	return dft(src, -1)
}

// NaiveIDFT128 computes the inverse DFT of src, including the 1/n scale.
func NaiveIDFT128(src []complex128) []complex128 {
	out := dft(src, 1)
	if len(out) == 0 {
		return out
	}

	scale := complex(1/float64(len(out)), 0)
	for i := range out {
		out[i] *= scale
	}

	return out
}

func dft(src []complex128, sign float64) []complex128 {
	n := len(src)
	out := make([]complex128, n)

	for k, _n := 0, n; k < _n; k++ {
		var sum complex128

		for j, x := range src {
			// Reduce k*j modulo n to keep the angle small.
			angle := sign * 2 * math.Pi * float64((k*j)%n) / float64(n)
			sum += x * cmplx.Rect(1, angle)
		}

		out[k] = sum
	}

	return out
}
