package memory

import "unsafe"

// DefaultAlignment covers the widest register class the lane kernels model.
const DefaultAlignment = Align32

// Element lists the pointer-free element types that may live in an
// allocator-provided block.
type Element interface {
	complex64 | complex128 | float32 | float64 | uint32
}

// AllocSlice allocates n elements of E from a and returns the typed view
// together with the backing block to hand back to a.Free.
func AllocSlice[E Element](a Allocator, alignment, n int) ([]E, []byte, error) {
	var zero E

	block, err := a.Allocate(alignment, n, int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, nil, err
	}

	if n == 0 || len(block) == 0 {
		return []E{}, block, nil
	}

	return unsafe.Slice((*E)(unsafe.Pointer(&block[0])), n), block, nil
}
