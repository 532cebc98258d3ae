package binafft

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cwbudde/binafft/internal/fft"
	m "github.com/cwbudde/binafft/internal/math"
	"github.com/cwbudde/binafft/internal/memory"
)

// Plan is a reusable radix-2 transform of one power-of-two size.
//
// A Plan owns its permutation table and scratch buffer and is therefore not
// safe for concurrent use. Goroutines that transform the same size should
// each build a Plan over one shared TwiddleTable with NewPlanWithTwiddle.
type Plan[T Complex] struct {
	n    int
	k    int
	desc fft.Descriptor[T]

	twiddle     *TwiddleTable[T]
	ownsTwiddle bool

	perm         []uint32
	permBlock    []byte
	scratchBlock []byte

	stridedScratch []T
	stridedBlock   []byte

	alloc  Allocator
	logger zerolog.Logger
	closed bool
}

// NewPlan creates a plan for transforms of length n, which must be a
// positive power of two. The plan builds and owns its twiddle table.
func NewPlan[T Complex](n int, opts ...Option) (*Plan[T], error) {
	cfg := newConfig(opts)

	if !IsPowerOfTwo(n) {
		cfg.logger.Error().Int("n", n).Msg("length is not a power of two")
		return nil, fmt.Errorf("%w: %d is not a power of two", ErrInvalidLength, n)
	}

	table, err := NewTwiddleTable[T](Log2Floor(uint(n)), opts...)
	if err != nil {
		return nil, err
	}

	plan, err := newPlan(table, true, cfg)
	if err != nil {
		_ = table.Close()
		return nil, err
	}

	return plan, nil
}

// NewPlanWithTwiddle creates a plan over an existing twiddle table. The
// plan's size is table.Size(). The table is borrowed: Close on the plan
// leaves it intact.
func NewPlanWithTwiddle[T Complex](table *TwiddleTable[T], opts ...Option) (*Plan[T], error) {
	cfg := newConfig(opts)

	if table == nil {
		return nil, ErrNilTable
	}

	if table.closed() {
		return nil, ErrClosed
	}

	return newPlan(table, false, cfg)
}

// NewPlan32 creates a single-precision plan.
func NewPlan32(n int, opts ...Option) (*Plan[complex64], error) {
	return NewPlan[complex64](n, opts...)
}

// NewPlan64 creates a double-precision plan.
func NewPlan64(n int, opts ...Option) (*Plan[complex128], error) {
	return NewPlan[complex128](n, opts...)
}

func newPlan[T Complex](table *TwiddleTable[T], owns bool, cfg config) (*Plan[T], error) {
	k := table.Log2()
	n := 1 << uint(k)
	log := cfg.logger.With().Int("n", n).Logger()

	p := &Plan[T]{
		n:           n,
		k:           k,
		twiddle:     table,
		ownsTwiddle: owns,
		alloc:       cfg.allocator,
		logger:      log,
	}

	kernels := fft.SelectKernels[T](cfg.cpuFeatures())
	p.desc = fft.Descriptor[T]{
		N:        n,
		K:        k,
		Twiddle:  table.factors,
		Kernels:  kernels,
		UseSmall: !cfg.noSmall,
	}

	// Closed-form sizes never reach the stage loop.
	if p.desc.UseSmall && k < fft.SmallSizes {
		log.Debug().Str("kernels", kernels.Name).Msg("plan created without stage buffers")
		return p, nil
	}

	perm, permBlock, err := memory.AllocSlice[uint32](p.alloc, memory.DefaultAlignment, fft.TwiddleLen(k))
	if err != nil {
		log.Error().Err(err).Msg("permutation table allocation failed")
		return nil, fmt.Errorf("%w: permutation table: %w", ErrAllocation, err)
	}

	p.perm, p.permBlock = perm, permBlock
	m.FillPermutationTable(perm, k)

	scratch, scratchBlock, err := memory.AllocSlice[T](p.alloc, memory.DefaultAlignment, n)
	if err != nil {
		p.alloc.Free(p.permBlock)
		log.Error().Err(err).Msg("scratch allocation failed")

		return nil, fmt.Errorf("%w: scratch buffer: %w", ErrAllocation, err)
	}

	p.scratchBlock = scratchBlock
	p.desc.Perm, p.desc.Scratch = perm, scratch

	log.Debug().
		Str("kernels", kernels.Name).
		Bool("small", p.desc.UseSmall).
		Bool("shared_twiddle", !owns).
		Msg("plan created")

	return p, nil
}

// Len returns the transform length.
func (p *Plan[T]) Len() int {
	return p.n
}

// Log2 returns log2 of the transform length.
func (p *Plan[T]) Log2() int {
	return p.k
}

// Kernel returns the name of the selected stage kernels, e.g. "avx/4-lane".
func (p *Plan[T]) Kernel() string {
	return p.desc.Kernels.Name
}

// SIMDLevel returns the SIMD level the kernels were selected for.
func (p *Plan[T]) SIMDLevel() SIMDLevel {
	return p.desc.Kernels.Level
}

// Twiddle returns the table the plan reads.
func (p *Plan[T]) Twiddle() *TwiddleTable[T] {
	return p.twiddle
}

// Forward computes the forward transform of src into dst. Both slices must
// have length Len(). dst and src may be the same slice; otherwise src is
// not modified.
func (p *Plan[T]) Forward(dst, src []T) error {
	if err := p.validate(dst, src); err != nil {
		return err
	}

	p.desc.Forward(dst, src)

	return nil
}

// Inverse computes the inverse transform of src into dst, scaled by 1/N so
// that Inverse(Forward(x)) reproduces x.
func (p *Plan[T]) Inverse(dst, src []T) error {
	if err := p.validate(dst, src); err != nil {
		return err
	}

	p.desc.Inverse(dst, src)

	return nil
}

// InPlace computes the forward transform of data in place.
func (p *Plan[T]) InPlace(data []T) error {
	return p.Forward(data, data)
}

// InverseInPlace computes the inverse transform of data in place.
func (p *Plan[T]) InverseInPlace(data []T) error {
	return p.Inverse(data, data)
}

// Close releases the plan's scratch space and tables. A twiddle table the
// plan built itself is closed too; a borrowed one is not. Close is
// idempotent.
func (p *Plan[T]) Close() error {
	if p == nil || p.closed {
		return nil
	}

	p.closed = true

	p.alloc.Free(p.scratchBlock)
	p.alloc.Free(p.permBlock)
	p.alloc.Free(p.stridedBlock)
	p.scratchBlock, p.permBlock, p.stridedBlock = nil, nil, nil
	p.desc.Scratch, p.desc.Perm, p.stridedScratch = nil, nil, nil

	if p.ownsTwiddle {
		return p.twiddle.Close()
	}

	return nil
}

func (p *Plan[T]) validate(dst, src []T) error {
	if p.closed || p.twiddle.closed() {
		return ErrClosed
	}

	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != p.n || len(src) != p.n {
		return fmt.Errorf("%w: got dst=%d src=%d, want %d", ErrLengthMismatch, len(dst), len(src), p.n)
	}

	return nil
}
