package binafft

import (
	"github.com/cwbudde/binafft/internal/fftypes"
	"github.com/cwbudde/binafft/internal/memory"
)

// Complex is a type constraint for complex number types supported by the FFT.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is a type constraint for the matching real component types.
type Float = fftypes.Float

// SIMDLevel names a vector register class used for kernel selection.
type SIMDLevel = fftypes.SIMDLevel

// SIMD levels accepted by WithSIMDLevel.
const (
	SIMDNone   = fftypes.SIMDNone
	SIMDSSE2   = fftypes.SIMDSSE2
	SIMDAVX    = fftypes.SIMDAVX
	SIMDAVX512 = fftypes.SIMDAVX512
	SIMDNEON   = fftypes.SIMDNEON
)

// Allocator supplies aligned, zeroed storage for tables and scratch space.
// Allocate(alignment, count, elemSize) returns count*elemSize bytes starting
// on an alignment boundary; Free(nil) is a no-op.
type Allocator = memory.Allocator

// BudgetAllocator caps the number of bytes live at once. Requests beyond
// the cap fail, which surfaces as ErrAllocation from plan construction.
type BudgetAllocator = memory.Budget

// DefaultAllocator returns the Go-heap backed aligned allocator.
func DefaultAllocator() Allocator {
	return memory.Default
}

// NewBudgetAllocator returns an allocator that refuses requests once more
// than limit bytes are in use.
func NewBudgetAllocator(limit int) *BudgetAllocator {
	return memory.NewBudget(limit)
}
