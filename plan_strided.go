package binafft

import (
	"fmt"

	"github.com/cwbudde/binafft/internal/memory"
)

// ForwardStrided computes the forward FFT of Len() elements spaced stride
// apart, e.g. one column of a row-major matrix when stride is the row width.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrInvalidStride if stride < 1 or overflows index computation.
// Returns ErrLengthMismatch if slices are too short for the given stride.
func (p *Plan[T]) ForwardStrided(dst, src []T, stride int) error {
	return p.transformStrided(dst, src, stride, false)
}

// InverseStrided computes the inverse FFT on strided input/output data.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrInvalidStride if stride < 1 or overflows index computation.
// Returns ErrLengthMismatch if slices are too short for the given stride.
func (p *Plan[T]) InverseStrided(dst, src []T, stride int) error {
	return p.transformStrided(dst, src, stride, true)
}

func (p *Plan[T]) transformStrided(dst, src []T, stride int, inverse bool) error {
	if err := p.validateStridedSlices(dst, src, stride); err != nil {
		return err
	}

	if stride == 1 {
		if inverse {
			return p.Inverse(dst[:p.n], src[:p.n])
		}

		return p.Forward(dst[:p.n], src[:p.n])
	}

	buffer, err := p.stridedBuffer()
	if err != nil {
		return err
	}

	for i, _n := 0, p.n; i < _n; i++ {
		buffer[i] = src[i*stride]
	}

	if inverse {
		p.desc.Inverse(buffer, buffer)
	} else {
		p.desc.Forward(buffer, buffer)
	}

	for i, _n := 0, p.n; i < _n; i++ {
		dst[i*stride] = buffer[i]
	}

	return nil
}

// stridedBuffer returns the gather buffer, allocating it on first use.
func (p *Plan[T]) stridedBuffer() ([]T, error) {
	if p.stridedScratch != nil {
		return p.stridedScratch, nil
	}

	buf, block, err := memory.AllocSlice[T](p.alloc, memory.DefaultAlignment, p.n)
	if err != nil {
		p.logger.Error().Err(err).Msg("strided buffer allocation failed")
		return nil, fmt.Errorf("%w: strided buffer: %w", ErrAllocation, err)
	}

	p.stridedScratch, p.stridedBlock = buf, block

	return buf, nil
}

func (p *Plan[T]) validateStridedSlices(dst, src []T, stride int) error {
	if p.closed || p.twiddle.closed() {
		return ErrClosed
	}

	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if stride < 1 {
		return ErrInvalidStride
	}

	maxInt := int(^uint(0) >> 1)
	maxIndex := p.n - 1

	if maxIndex > 0 && maxIndex > (maxInt-1)/stride {
		return ErrInvalidStride
	}

	required := 1 + maxIndex*stride
	if len(dst) < required || len(src) < required {
		return ErrLengthMismatch
	}

	return nil
}
