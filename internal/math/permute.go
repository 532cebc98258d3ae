package math

// MaxPermutationLog2 bounds the transform sizes a PermutationTable can index.
const MaxPermutationLog2 = 32

// Permute reorders the first 2^k elements of buf into bit-reversed index
// order in place. Sizes of one element or fewer are left untouched.
//
// Even indices below N/2 drive the walk: each such n is exchanged with its
// reversal when n < rev(n), together with the mirrored pair (N-1-n,
// N-1-rev(n)); the odd neighbour n+1 always pairs with rev(n) | N/2.
// Every transposition is therefore performed exactly once.
func Permute[T any](buf []T, k int) {
	if k <= 0 {
		return
	}

	n := 1 << uint(k)
	half := n >> 1
	mask := n - 1
	rev := SelectReverser(k)

	buf = buf[:n]

	for i := 0; i < half; i += 2 {
		r := int(rev(uint64(i)))
		if i < r {
			buf[i], buf[r] = buf[r], buf[i]
			buf[mask^i], buf[mask^r] = buf[mask^r], buf[mask^i]
		}

		j := r | half
		buf[i+1], buf[j] = buf[j], buf[i+1]
	}
}

// PermutationTable returns the reversed even indices of a size-2^k
// transform: entry i holds rev(2i). The odd partner of entry i is
// entry | N/2. The table is empty for k <= 0.
func PermutationTable(k int) []uint32 {
	if k <= 0 {
		return []uint32{}
	}

	half := 1 << uint(k-1)
	perm := make([]uint32, half)
	FillPermutationTable(perm, k)

	return perm
}

// FillPermutationTable writes the table described by PermutationTable into
// perm, which must hold at least 2^(k-1) entries.
func FillPermutationTable(perm []uint32, k int) {
	if k <= 0 {
		return
	}

	rev := SelectReverser(k)
	for i := range perm[:1<<uint(k-1)] {
		perm[i] = uint32(rev(uint64(2 * i)))
	}
}

// ApplyPermutation writes src into dst in the order given by a table from
// PermutationTable: dst[2i] = src[perm[i]] and dst[2i+1] = src[perm[i]|N/2].
// dst and src must not overlap.
func ApplyPermutation[T any](dst, src []T, perm []uint32) {
	half := uint32(len(perm))

	for i, p := range perm {
		dst[2*i] = src[p]
		dst[2*i+1] = src[p|half]
	}
}
