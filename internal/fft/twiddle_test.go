package fft

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"
)

func TestFillTwiddleTableValues(t *testing.T) {
	t.Parallel()

	for k := 0; k <= 14; k++ {
		k := k
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			t.Parallel()

			n := 1 << uint(k)
			tw := twiddles[complex128](k)

			if len(tw) != TwiddleLen(k) {
				t.Fatalf("len = %d, want %d", len(tw), TwiddleLen(k))
			}

			for i, got := range tw {
				want := cmplx.Exp(complex(0, -2*math.Pi*float64(i)/float64(n)))
				if diff := cmplx.Abs(got - want); diff > 1e-14 {
					t.Fatalf("tw[%d] = %v, want %v (diff=%g)", i, got, want, diff)
				}
			}
		})
	}
}

func TestFillTwiddleTableExactPoints(t *testing.T) {
	t.Parallel()

	for k := 2; k <= 16; k++ {
		tw := twiddles[complex128](k)
		if tw[0] != 1 {
			t.Errorf("k=%d: tw[0] = %v, want exactly 1", k, tw[0])
		}

		quarter := 1 << uint(k-2)
		if tw[quarter] != complex(0, -1) {
			t.Errorf("k=%d: tw[N/4] = %v, want exactly -i", k, tw[quarter])
		}
	}
}

func TestFillTwiddleTableComplex64(t *testing.T) {
	t.Parallel()

	const k = 10

	tw32 := twiddles[complex64](k)
	tw64 := twiddles[complex128](k)

	for i := range tw32 {
		// Single rounding from float64 keeps each component within half an ulp.
		if diff := cmplx.Abs(complex128(tw32[i]) - tw64[i]); diff > 2e-7 {
			t.Fatalf("tw[%d]: complex64 %v vs complex128 %v", i, tw32[i], tw64[i])
		}
	}
}

func TestTwiddleSymmetry(t *testing.T) {
	t.Parallel()

	const k = 12

	n := 1 << k
	tw := twiddles[complex128](k)

	// w[n/4 + j] = -i · w[j]
	for j := 0; j < n/4; j++ {
		want := complex(0, -1) * tw[j]
		if diff := cmplx.Abs(tw[n/4+j] - want); diff > 1e-15 {
			t.Fatalf("w[N/4+%d] = %v, want %v", j, tw[n/4+j], want)
		}
	}
}

func TestStageTwiddles(t *testing.T) {
	t.Parallel()

	tw := twiddles[complex128](4) // N = 16, 8 entries

	tests := []struct {
		stage int
		want  []complex128
	}{
		{0, tw},
		{1, []complex128{tw[0], tw[2], tw[4], tw[6]}},
		{2, []complex128{tw[0], tw[4]}},
		{3, []complex128{tw[0]}},
	}

	for _, tt := range tests {
		got := StageTwiddles(tw, tt.stage)
		assertComplex128Close(t, got, tt.want, 0)
	}

	if StageTwiddles(tw, -1) != nil {
		t.Error("negative stage should yield nil")
	}
}
