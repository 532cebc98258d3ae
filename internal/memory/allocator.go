//go:generate mockgen -source=allocator.go -destination=mocks/mock_allocator.go -package=mocks

// Package memory provides aligned buffers for FFT tables and scratch space.
package memory

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"
)

// Alignment presets for the supported vector widths.
const (
	Align16 = 16
	Align32 = 32
	Align64 = 64
)

var (
	// ErrOutOfMemory is returned when an allocator cannot satisfy a request.
	ErrOutOfMemory = errors.New("memory: out of memory")

	// ErrInvalidAlignment is returned for alignments that are not powers of two.
	ErrInvalidAlignment = errors.New("memory: invalid alignment")
)

// Allocator supplies zeroed, aligned byte blocks.
// Free(nil) must be a no-op.
type Allocator interface {
	// Allocate returns count*elemSize zeroed bytes whose first byte is a
	// multiple of alignment.
	Allocate(alignment, count, elemSize int) ([]byte, error)
	// Free releases a block previously returned by Allocate.
	Free(block []byte)
}

// Aligned is the default Allocator. It over-allocates from the Go heap and
// returns the aligned window; Free is a no-op left to the garbage collector.
type Aligned struct{}

// Default is the package-wide default allocator.
var Default Allocator = Aligned{}

// Allocate implements Allocator.
func (Aligned) Allocate(alignment, count, elemSize int) ([]byte, error) {
	size, err := blockSize(alignment, count, elemSize)
	if err != nil {
		return nil, err
	}

	if size == 0 {
		return []byte{}, nil
	}

	raw := make([]byte, size+alignment-1)
	offset := alignOffset(unsafe.Pointer(&raw[0]), alignment)

	return raw[offset : offset+size : offset+size], nil
}

// Free implements Allocator.
func (Aligned) Free([]byte) {}

// Budget wraps another allocator and refuses requests once the number of
// live bytes would exceed Limit.
type Budget struct {
	Base  Allocator
	Limit int

	mu   sync.Mutex
	used int
}

// NewBudget returns a Budget over the default allocator.
func NewBudget(limit int) *Budget {
	return &Budget{Base: Default, Limit: limit}
}

// Allocate implements Allocator.
func (b *Budget) Allocate(alignment, count, elemSize int) ([]byte, error) {
	size, err := blockSize(alignment, count, elemSize)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	if b.used+size > b.Limit {
		used := b.used
		b.mu.Unlock()

		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use", ErrOutOfMemory, size, used, b.Limit)
	}
	b.used += size
	b.mu.Unlock()

	base := b.Base
	if base == nil {
		base = Default
	}

	block, err := base.Allocate(alignment, count, elemSize)
	if err != nil {
		b.release(size)
		return nil, err
	}

	return block, nil
}

// Free implements Allocator.
func (b *Budget) Free(block []byte) {
	if block == nil {
		return
	}

	b.release(len(block))

	base := b.Base
	if base == nil {
		base = Default
	}

	base.Free(block)
}

// InUse reports the number of bytes currently allocated through b.
func (b *Budget) InUse() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.used
}

func (b *Budget) release(size int) {
	b.mu.Lock()
	b.used -= size
	if b.used < 0 {
		b.used = 0
	}
	b.mu.Unlock()
}

func blockSize(alignment, count, elemSize int) (int, error) {
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAlignment, alignment)
	}

	if count < 0 || elemSize < 0 {
		return 0, fmt.Errorf("%w: negative size %d x %d", ErrOutOfMemory, count, elemSize)
	}

	if elemSize != 0 && count > int(^uint(0)>>1)/elemSize {
		return 0, fmt.Errorf("%w: %d x %d overflows", ErrOutOfMemory, count, elemSize)
	}

	return count * elemSize, nil
}

func alignOffset(p unsafe.Pointer, alignment int) int {
	addr := uintptr(p)
	rem := int(addr & uintptr(alignment-1))

	if rem == 0 {
		return 0
	}

	return alignment - rem
}
