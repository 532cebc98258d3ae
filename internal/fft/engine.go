package fft

import (
	m "github.com/cwbudde/binafft/internal/math"
)

// Step names the phases a transform passes through.
type Step uint8

const (
	StepInit Step = iota
	StepSmall
	StepStage
	StepPermute
	StepCopy
	StepDone
)

// String returns a human-readable name for the step.
func (s Step) String() string {
	switch s {
	case StepInit:
		return "init"
	case StepSmall:
		return "small"
	case StepStage:
		return "stage"
	case StepPermute:
		return "permute"
	case StepCopy:
		return "copy"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// Descriptor holds the tables and kernels of one size-2^K transform.
// It does not own its slices; whoever built it releases them.
//
// A Descriptor is not safe for concurrent use because Scratch is shared
// between calls. Twiddle and Perm are only read.
type Descriptor[T Complex] struct {
	N       int
	K       int
	Twiddle []T      // N/2 entries
	Perm    []uint32 // N/2 entries
	Scratch []T      // N entries
	Kernels Kernels[T]

	// UseSmall enables the closed-form kernels for N <= 8.
	UseSmall bool

	// Observe, when set, is called at every step with the stage index
	// (or -1 outside the stage loop).
	Observe func(step Step, stage int)
}

// Forward computes the forward transform of src into dst. dst and src may
// be the same slice; otherwise src is left untouched. Both must hold at
// least N elements.
func (d *Descriptor[T]) Forward(dst, src []T) {
	d.run(dst, src, false)
}

// Inverse computes the normalized inverse transform of src into dst.
func (d *Descriptor[T]) Inverse(dst, src []T) {
	d.run(dst, src, true)
}

func (d *Descriptor[T]) observe(step Step, stage int) {
	if d.Observe != nil {
		d.Observe(step, stage)
	}
}

func (d *Descriptor[T]) run(dst, src []T, inverse bool) {
	n := d.N
	dst, src = dst[:n], src[:n]

	d.observe(StepInit, -1)

	if n == 1 {
		dst[0] = src[0]
		d.observe(StepDone, -1)

		return
	}

	if d.UseSmall {
		if small := d.Kernels.Small(d.K, inverse); small != nil && small(dst, src, d.Twiddle) {
			d.observe(StepSmall, -1)
			d.observe(StepDone, -1)

			return
		}
	}

	// Stage 0 reads the caller's input and writes scratch; after that the
	// stages alternate between scratch and dst. Once the loop ends, in holds
	// the last stage's output in bit-reversed order.
	scratch := d.Scratch[:n]
	in, out := src, scratch

	for s, _n := 0, d.K; s < _n; s++ {
		d.Kernels.Stage(out, in, d.Twiddle, n, s, inverse)
		d.observe(StepStage, s)

		if s == 0 {
			in, out = out, dst
		} else {
			in, out = out, in
		}
	}

	m.ApplyPermutation(out, in, d.Perm)
	d.observe(StepPermute, -1)

	if &out[0] != &dst[0] {
		copy(dst, out)
		d.observe(StepCopy, -1)
	}

	d.observe(StepDone, -1)
}
