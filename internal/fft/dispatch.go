package fft

import (
	"fmt"

	"github.com/cwbudde/binafft/internal/cpu"
	"github.com/cwbudde/binafft/internal/fftypes"
)

// SmallSizes is the number of closed-form kernels: N = 1, 2, 4, 8.
const SmallSizes = 4

// Kernels groups the stage kernel and the small-size kernels selected for a
// given precision and CPU.
type Kernels[T Complex] struct {
	// Name identifies the selection, e.g. "avx/4-lane": the SIMD level
	// that fixed the batch width, then the width.
	Name string
	// Level is the SIMD level the selection was made for.
	Level fftypes.SIMDLevel
	// Lanes is the number of butterflies Stage processes per step.
	Lanes int
	// Stage runs one radix-2 stage.
	Stage fftypes.StageFunc[T]
	// SmallForward and SmallInverse are indexed by log2 N.
	SmallForward [SmallSizes]fftypes.SmallFunc[T]
	SmallInverse [SmallSizes]fftypes.SmallFunc[T]
}

// Small returns the closed-form kernel for a size-2^k transform, or nil.
func (k Kernels[T]) Small(log2n int, inverse bool) fftypes.SmallFunc[T] {
	if log2n < 0 || log2n >= SmallSizes {
		return nil
	}

	if inverse {
		return k.SmallInverse[log2n]
	}

	return k.SmallForward[log2n]
}

// SelectKernels returns the best available kernels for the detected features.
func SelectKernels[T Complex](features cpu.Features) Kernels[T] {
	var zero T
	switch any(zero).(type) {
	case complex64:
		k := selectKernels[complex64, float32](features, 32)
		return any(k).(Kernels[T])
	case complex128:
		k := selectKernels[complex128, float64](features, 64)
		return any(k).(Kernels[T])
	default:
		panic("unsupported complex type")
	}
}

// selectKernels must only be instantiated with matching component widths:
// (complex64, float32) or (complex128, float64).
func selectKernels[T Complex, F Float](features cpu.Features, floatBits int) Kernels[T] {
	level := features.Level()
	lanes := cpu.Lanes(level, floatBits)

	k := Kernels[T]{
		Level: level,
		Lanes: lanes,
		SmallForward: [SmallSizes]fftypes.SmallFunc[T]{
			forward1[T], forward2[T], forward4[T, F], forward8[T, F],
		},
		SmallInverse: [SmallSizes]fftypes.SmallFunc[T]{
			forward1[T], inverse2[T], inverse4[T, F], inverse8[T, F],
		},
	}

	switch lanes {
	case 4:
		k.Stage = stageLanes4[T, F]
	case 2:
		k.Stage = stageLanes2[T, F]
	default:
		k.Stage = stageScalar[T]
	}

	k.Name = fmt.Sprintf("%s/%d-lane", level, lanes)

	return k
}
