package binafft

import "errors"

// Sentinel errors returned by FFT operations.
var (
	// ErrInvalidLength is returned when the FFT size is not valid.
	// Lengths must be positive powers of two.
	ErrInvalidLength = errors.New("binafft: invalid FFT length")

	// ErrAllocation is returned when a twiddle table, permutation table or
	// scratch buffer could not be allocated. The allocator's own error is
	// wrapped alongside it.
	ErrAllocation = errors.New("binafft: allocation failed")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("binafft: nil slice")

	// ErrNilTable is returned when a nil twiddle table is supplied.
	ErrNilTable = errors.New("binafft: nil twiddle table")

	// ErrLengthMismatch is returned when input/output slice sizes don't match
	// the Plan's expected dimensions.
	ErrLengthMismatch = errors.New("binafft: slice length mismatch")

	// ErrInvalidStride is returned when a stride parameter is invalid
	// for the given data layout (e.g., stride < 1 or doesn't align with data).
	ErrInvalidStride = errors.New("binafft: invalid stride")

	// ErrClosed is returned when a closed plan or table is used.
	ErrClosed = errors.New("binafft: use of closed plan or table")
)
