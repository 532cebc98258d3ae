package fft

import (
	"fmt"
	"testing"

	"github.com/cwbudde/binafft/internal/cpu"
	"github.com/cwbudde/binafft/internal/reference"
)

const smallTrials = 100

// TestSmallKernelsMatchStagePipeline compares the closed-form kernels with
// the general stage pipeline on random inputs.
func TestSmallKernelsMatchStagePipeline(t *testing.T) {
	t.Parallel()

	features := cpu.DetectFeatures()

	for k := 1; k <= 3; k++ {
		k := k
		t.Run(fmt.Sprintf("N=%d", 1<<k), func(t *testing.T) {
			t.Parallel()

			n := 1 << k

			small64 := newTestDescriptor[complex64](k, features, true)
			general64 := newTestDescriptor[complex64](k, features, false)
			small128 := newTestDescriptor[complex128](k, features, true)
			general128 := newTestDescriptor[complex128](k, features, false)

			for trial, _n := 0, smallTrials; trial < _n; trial++ {
				seed := int64(1000*k + trial)

				x64 := randomComplex64(n, seed)
				got64, want64 := make([]complex64, n), make([]complex64, n)

				small64.Forward(got64, x64)
				general64.Forward(want64, x64)
				assertComplex64Close(t, got64, want64, 1e-5)

				small64.Inverse(got64, x64)
				general64.Inverse(want64, x64)
				assertComplex64Close(t, got64, want64, 1e-5)

				x128 := randomComplex128(n, seed)
				got128, want128 := make([]complex128, n), make([]complex128, n)

				small128.Forward(got128, x128)
				general128.Forward(want128, x128)
				assertComplex128Close(t, got128, want128, 1e-12)

				small128.Inverse(got128, x128)
				general128.Inverse(want128, x128)
				assertComplex128Close(t, got128, want128, 1e-12)
			}
		})
	}
}

func TestSmallKernelsAgainstDFT(t *testing.T) {
	t.Parallel()

	for k := 0; k <= 3; k++ {
		n := 1 << k
		kernels := SelectKernels[complex128](cpu.Features{ForceGeneric: true})
		tw := twiddles[complex128](k)
		x := randomComplex128(n, int64(k))

		got := make([]complex128, n)
		if !kernels.Small(k, false)(got, x, tw) {
			t.Fatalf("N=%d forward kernel declined", n)
		}

		assertComplex128Close(t, got, reference.NaiveDFT128(x), 1e-12)

		if !kernels.Small(k, true)(got, x, tw) {
			t.Fatalf("N=%d inverse kernel declined", n)
		}

		assertComplex128Close(t, got, reference.NaiveIDFT128(x), 1e-12)
	}
}

func TestSmallKernelsInPlace(t *testing.T) {
	t.Parallel()

	kernels := SelectKernels[complex64](cpu.DetectFeatures())

	for k := 1; k <= 3; k++ {
		n := 1 << k
		tw := twiddles[complex64](k)
		x := randomComplex64(n, 99)

		want := make([]complex64, n)
		kernels.Small(k, false)(want, x, tw)

		buf := append([]complex64(nil), x...)
		kernels.Small(k, false)(buf, buf, tw)
		assertComplex64Close(t, buf, want, 0)

		kernels.Small(k, true)(buf, buf, tw)
		assertComplex64Close(t, buf, x, 1e-6)
	}
}

func TestSmallKernelsRejectShortSlices(t *testing.T) {
	t.Parallel()

	kernels := SelectKernels[complex128](cpu.DetectFeatures())
	short := make([]complex128, 3)
	tw := twiddles[complex128](3)

	if kernels.Small(2, false)(short, short, tw) {
		t.Error("N=4 kernel accepted 3 elements")
	}

	if kernels.Small(3, true)(make([]complex128, 8), make([]complex128, 8), tw[:2]) {
		t.Error("N=8 kernel accepted a short twiddle table")
	}

	if kernels.Small(4, false) != nil || kernels.Small(-1, false) != nil {
		t.Error("Small returned a kernel outside N <= 8")
	}
}
