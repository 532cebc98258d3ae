package binafft

import "fmt"

// Kind identifies the algorithm behind a Transform.
type Kind uint8

const (
	// KindRadix2C2C is the complex-to-complex radix-2 transform.
	KindRadix2C2C Kind = iota + 1
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRadix2C2C:
		return "radix2-c2c"
	default:
		return "unknown"
	}
}

// Direction selects forward or inverse execution.
type Direction uint8

const (
	DirectionForward Direction = iota
	DirectionInverse
)

// Transform is a transform bound to its input and output buffers at
// creation. Execute may be called any number of times; each call reads the
// current contents of the input.
type Transform interface {
	Execute() error
	Close() error
	Kind() Kind
}

// Radix2C2C binds a Plan to fixed buffers.
type Radix2C2C[T Complex] struct {
	plan *Plan[T]
	in   []T
	out  []T
	dir  Direction
}

var _ Transform = (*Radix2C2C[complex64])(nil)

// NewRadix2C2C creates a transform from in to out, which must have the same
// power-of-two length. in and out may be the same slice.
func NewRadix2C2C[T Complex](in, out []T, dir Direction, opts ...Option) (*Radix2C2C[T], error) {
	if in == nil || out == nil {
		return nil, ErrNilSlice
	}

	if len(in) != len(out) {
		return nil, fmt.Errorf("%w: in=%d out=%d", ErrLengthMismatch, len(in), len(out))
	}

	if dir != DirectionForward && dir != DirectionInverse {
		return nil, fmt.Errorf("binafft: unknown direction %d", dir)
	}

	plan, err := NewPlan[T](len(in), opts...)
	if err != nil {
		return nil, err
	}

	return &Radix2C2C[T]{plan: plan, in: in, out: out, dir: dir}, nil
}

// Execute runs the transform.
func (t *Radix2C2C[T]) Execute() error {
	if t.dir == DirectionInverse {
		return t.plan.Inverse(t.out, t.in)
	}

	return t.plan.Forward(t.out, t.in)
}

// Close releases the underlying plan.
func (t *Radix2C2C[T]) Close() error {
	return t.plan.Close()
}

// Kind implements Transform.
func (t *Radix2C2C[T]) Kind() Kind {
	return KindRadix2C2C
}

// Len returns the transform length.
func (t *Radix2C2C[T]) Len() int {
	return t.plan.Len()
}
