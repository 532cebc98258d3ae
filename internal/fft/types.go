// Package fft holds the radix-2 engine: twiddle generation, the butterfly
// stages, the closed-form kernels for N <= 8 and the Descriptor that runs
// them.
//
// The lane-batched stages are portable Go. Values are held in small arrays
// that mirror a 128- or 256-bit register, and the CPU's SIMD level only
// picks the batch width. Kernel names such as "avx/4-lane" name that
// choice; they do not imply hand-written vector code.
package fft

import "github.com/cwbudde/binafft/internal/fftypes"

// Complex is a type alias for the complex number constraint.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is the real component constraint matching Complex.
type Float = fftypes.Float
