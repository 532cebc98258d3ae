package fftypes

// Complex is a type constraint for the supported sample precisions.
type Complex interface {
	complex64 | complex128
}

// Float is the matching real component type constraint.
type Float interface {
	float32 | float64
}
