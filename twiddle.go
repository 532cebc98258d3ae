package binafft

import (
	"fmt"
	"math/bits"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/binafft/internal/fft"
	m "github.com/cwbudde/binafft/internal/math"
	"github.com/cwbudde/binafft/internal/memory"
)

// MaxLog2 is the largest supported log2 transform size.
const MaxLog2 = m.MaxPermutationLog2

// TwiddleTable holds the N/2 roots of unity exp(-2πi·n/N) of a size-N
// transform. It is immutable once built and may be shared by any number of
// goroutines and plans of the same size.
type TwiddleTable[T Complex] struct {
	k       int
	factors []T
	block   []byte
	alloc   Allocator

	closeOnce sync.Once
	isClosed  atomic.Bool
}

// NewTwiddleTable builds the table for N = 2^k.
// The table is empty for k == 0.
func NewTwiddleTable[T Complex](k int, opts ...Option) (*TwiddleTable[T], error) {
	cfg := newConfig(opts)

	if k < 0 || k > MaxLog2 || k >= bits.UintSize-1 {
		cfg.logger.Error().Int("k", k).Msg("log2 size out of range")
		return nil, fmt.Errorf("%w: log2 size %d", ErrInvalidLength, k)
	}

	factors, block, err := memory.AllocSlice[T](cfg.allocator, memory.DefaultAlignment, fft.TwiddleLen(k))
	if err != nil {
		cfg.logger.Error().Err(err).Int("k", k).Msg("twiddle table allocation failed")
		return nil, fmt.Errorf("%w: twiddle table: %w", ErrAllocation, err)
	}

	fft.FillTwiddleTable(factors, k)

	return &TwiddleTable[T]{
		k:       k,
		factors: factors,
		block:   block,
		alloc:   cfg.allocator,
	}, nil
}

// Len returns the number of factors, N/2.
func (t *TwiddleTable[T]) Len() int {
	return len(t.factors)
}

// Log2 returns k for a table built for N = 2^k.
func (t *TwiddleTable[T]) Log2() int {
	return t.k
}

// Size returns the transform size N the table serves.
func (t *TwiddleTable[T]) Size() int {
	return 1 << uint(t.k)
}

// At returns factor i.
func (t *TwiddleTable[T]) At(i int) T {
	return t.factors[i]
}

// Factors returns a copy of all factors.
func (t *TwiddleTable[T]) Factors() []T {
	return append([]T(nil), t.factors...)
}

// Stage returns the factors butterfly stage s reads: every 2^s-th entry.
func (t *TwiddleTable[T]) Stage(s int) []T {
	return fft.StageTwiddles(t.factors, s)
}

// Close returns the table's storage to its allocator. Plans sharing the
// table must not be used afterwards. Close is idempotent.
func (t *TwiddleTable[T]) Close() error {
	if t == nil {
		return nil
	}

	t.closeOnce.Do(func() {
		t.isClosed.Store(true)
		t.alloc.Free(t.block)
		t.block = nil
		t.factors = nil
	})

	return nil
}

func (t *TwiddleTable[T]) closed() bool {
	return t.isClosed.Load()
}
