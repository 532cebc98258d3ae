// Package binafft computes radix-2 fast Fourier transforms of complex
// sequences whose length is a power of two, in single (complex64) or double
// (complex128) precision.
//
// Three entry points share one engine:
//
//   - Plan: build once per size, then call Forward/Inverse repeatedly.
//   - Forward/Inverse: one-shot in-place transforms of a 2^k buffer.
//   - Radix2C2C: a Transform bound to fixed input and output buffers.
//
// The engine runs decimation-in-frequency butterfly stages that ping-pong
// between the output and a scratch buffer, then applies a bit-reversal
// permutation. Stages are lane-batched portable Go: they process 1, 2 or 4
// butterflies per step, a width chosen from the vector size the CPU
// reports. No assembly is involved. Sizes up to 8 use closed-form kernels.
// The inverse is normalized by 1/N.
//
// Example:
//
//	plan, err := binafft.NewPlan64(1024)
//	if err != nil {
//	    return err
//	}
//	defer plan.Close()
//
//	freq := make([]complex128, 1024)
//	if err := plan.Forward(freq, samples); err != nil {
//	    return err
//	}
//
// A TwiddleTable is read-only and may be shared between goroutines; a Plan
// is not safe for concurrent use. See NewPlanWithTwiddle.
package binafft
