package binafft

import (
	"fmt"

	m "github.com/cwbudde/binafft/internal/math"
)

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return m.IsPowerOf2(n)
}

// Log2Floor returns floor(log2 n). It returns -1 for n == 0.
func Log2Floor(n uint) int {
	return m.Log2Floor(uint64(n))
}

// BitReverse reverses the low width bits of index. Bits above width are
// ignored; width is clamped to [0, 64].
func BitReverse(index uint64, width int) uint64 {
	return m.Reverse(index, width)
}

// PermuteBitReversed reorders buf, of length 2^k, into bit-reversed index
// order in place. Applying it twice restores the original order.
func PermuteBitReversed[T any](buf []T, k int) error {
	n, err := checkLog2Length(k, len(buf), buf == nil)
	if err != nil {
		return err
	}

	if n > 1 {
		m.Permute(buf, k)
	}

	return nil
}

// Forward transforms buf, of length 2^k, in place.
//
// twiddle may be nil, in which case a table is built for this call only and
// released before returning. A supplied table must have been built for the
// same k and is only read, so it may be shared with concurrent callers.
func Forward[T Complex](k int, twiddle *TwiddleTable[T], buf []T, opts ...Option) error {
	return transformInPlace(k, twiddle, buf, false, opts)
}

// Inverse computes the normalized inverse transform of buf in place.
// See Forward for the twiddle contract.
func Inverse[T Complex](k int, twiddle *TwiddleTable[T], buf []T, opts ...Option) error {
	return transformInPlace(k, twiddle, buf, true, opts)
}

func transformInPlace[T Complex](k int, twiddle *TwiddleTable[T], buf []T, inverse bool, opts []Option) (err error) {
	cfg := newConfig(opts)

	if _, err := checkLog2Length(k, len(buf), buf == nil); err != nil {
		cfg.logger.Error().Err(err).Int("k", k).Msg("rejected transform")
		return err
	}

	table := twiddle
	if table == nil {
		table, err = NewTwiddleTable[T](k, opts...)
		if err != nil {
			return err
		}

		defer func() {
			if cerr := table.Close(); err == nil {
				err = cerr
			}
		}()
	} else if table.closed() {
		return ErrClosed
	} else if table.Log2() != k {
		return fmt.Errorf("%w: twiddle table for log2 size %d, transform log2 size %d", ErrLengthMismatch, table.Log2(), k)
	}

	plan, err := newPlan(table, false, cfg)
	if err != nil {
		return err
	}
	defer plan.Close()

	if inverse {
		plan.desc.Inverse(buf, buf)
	} else {
		plan.desc.Forward(buf, buf)
	}

	return nil
}

func checkLog2Length(k, length int, isNil bool) (int, error) {
	if k < 0 || k > MaxLog2 {
		return 0, fmt.Errorf("%w: log2 size %d", ErrInvalidLength, k)
	}

	if isNil {
		return 0, ErrNilSlice
	}

	n := 1 << uint(k)
	if length != n {
		return 0, fmt.Errorf("%w: got %d elements, want %d", ErrLengthMismatch, length, n)
	}

	return n, nil
}
