package math

import "math/bits"

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2Floor returns the position of the highest set bit of n, which is
// floor(log2 n). Log2Floor(0) returns -1.
func Log2Floor(n uint64) int {
	return bits.Len64(n) - 1
}
