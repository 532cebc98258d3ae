package binafft

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cwbudde/binafft/internal/cpu"
	"github.com/cwbudde/binafft/internal/reference"
)

func TestNewPlanRejectsInvalidLengths(t *testing.T) {
	t.Parallel()

	for _, n := range []int{-8, 0, 3, 6, 12, 1000} {
		_, err := NewPlan64(n)
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("NewPlan64(%d) error = %v, want ErrInvalidLength", n, err)
		}
	}
}

func TestNewPlanLogsInvalidLength(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	_, err := NewPlan32(12, WithLogger(zerolog.New(&buf)))
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}

	if out := buf.String(); !strings.Contains(out, "not a power of two") || !strings.Contains(out, `"n":12`) {
		t.Fatalf("log output missing details: %s", out)
	}
}

// TestPlanMatchesDFT cross-checks small sizes against the direct DFT.
func TestPlanMatchesDFT(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 16, 32, 256} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			p64, err := NewPlan32(n)
			if err != nil {
				t.Fatalf("NewPlan32: %v", err)
			}
			defer p64.Close()

			x64 := randomComplex64(n, int64(n))
			got64 := make([]complex64, n)

			if err := p64.Forward(got64, x64); err != nil {
				t.Fatalf("Forward: %v", err)
			}

			tol64 := dftTol64
			if n > 16 {
				tol64 = 1e-4
			}

			if d := maxAbsDiff(got64, reference.NaiveDFT(x64)); d > tol64 {
				t.Fatalf("complex64 max diff %g", d)
			}

			p128, err := NewPlan64(n)
			if err != nil {
				t.Fatalf("NewPlan64: %v", err)
			}
			defer p128.Close()

			x128 := randomComplex128(n, int64(n))
			got128 := make([]complex128, n)

			if err := p128.Forward(got128, x128); err != nil {
				t.Fatalf("Forward: %v", err)
			}

			if d := maxAbsDiff(got128, reference.NaiveDFT128(x128)); d > dftTol128 {
				t.Fatalf("complex128 max diff %g", d)
			}

			back := make([]complex128, n)
			if err := p128.Inverse(back, got128); err != nil {
				t.Fatalf("Inverse: %v", err)
			}

			if d := maxAbsDiff(back, x128); d > dftTol128 {
				t.Fatalf("round trip max diff %g", d)
			}
		})
	}
}

// TestPlanLaneWidthsAgree runs every lane configuration over the same input.
func TestPlanLaneWidthsAgree(t *testing.T) {
	t.Parallel()

	featureSets := map[string]cpu.Features{
		"scalar": {ForceGeneric: true},
		"2-lane": {HasSSE2: true},
		"4-lane": {HasSSE2: true, HasAVX: true, HasAVX512: true},
	}

	const n = 512

	x := randomComplex128(n, 42)
	want := reference.NaiveDFT128(x)

	for name, f := range featureSets {
		f := f
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			plan, err := NewPlan64(n, withFeatures(f))
			if err != nil {
				t.Fatalf("NewPlan64: %v", err)
			}
			defer plan.Close()

			got := make([]complex128, n)
			if err := plan.Forward(got, x); err != nil {
				t.Fatalf("Forward: %v", err)
			}

			if d := maxAbsDiff(got, want); d > dftTol128 {
				t.Fatalf("%s (%s): max diff %g", name, plan.Kernel(), d)
			}
		})
	}
}

func TestPlanWithSIMDLevelNone(t *testing.T) {
	t.Parallel()

	plan, err := NewPlan32(64, WithSIMDLevel(SIMDNone))
	if err != nil {
		t.Fatalf("NewPlan32: %v", err)
	}
	defer plan.Close()

	if plan.SIMDLevel() != SIMDNone {
		t.Fatalf("SIMDLevel() = %v, want generic", plan.SIMDLevel())
	}

	if !strings.HasSuffix(plan.Kernel(), "/1-lane") {
		t.Fatalf("Kernel() = %q, want scalar kernel", plan.Kernel())
	}
}

func TestPlanWithoutSmallKernels(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 8} {
		a, err := NewPlan64(n)
		if err != nil {
			t.Fatalf("NewPlan64: %v", err)
		}

		b, err := NewPlan64(n, WithoutSmallKernels())
		if err != nil {
			t.Fatalf("NewPlan64: %v", err)
		}

		x := randomComplex128(n, 11)
		ga, gb := make([]complex128, n), make([]complex128, n)

		if err := a.Forward(ga, x); err != nil {
			t.Fatalf("n=%d: small kernel Forward: %v", n, err)
		}

		if err := b.Forward(gb, x); err != nil {
			t.Fatalf("n=%d: stage pipeline Forward: %v", n, err)
		}

		if d := maxAbsDiff(ga, gb); d > 1e-12 {
			t.Errorf("n=%d: small kernel differs from stage pipeline by %g", n, d)
		}

		_ = a.Close()
		_ = b.Close()
	}
}

func TestPlanValidation(t *testing.T) {
	t.Parallel()

	plan, err := NewPlan64(8)
	if err != nil {
		t.Fatalf("NewPlan64: %v", err)
	}

	good := make([]complex128, 8)

	if err := plan.Forward(nil, good); !errors.Is(err, ErrNilSlice) {
		t.Errorf("nil dst: %v", err)
	}

	if err := plan.Inverse(good, make([]complex128, 4)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short src: %v", err)
	}

	if err := plan.Forward(make([]complex128, 16), good); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("long dst: %v", err)
	}

	if err := plan.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := plan.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if err := plan.InPlace(good); !errors.Is(err, ErrClosed) {
		t.Errorf("closed plan: %v", err)
	}
}

func TestPlanInPlace(t *testing.T) {
	t.Parallel()

	plan, err := NewPlan32(128)
	if err != nil {
		t.Fatalf("NewPlan32: %v", err)
	}
	defer plan.Close()

	x := randomComplex64(128, 8)
	want := make([]complex64, 128)

	if err := plan.Forward(want, x); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	buf := append([]complex64(nil), x...)
	if err := plan.InPlace(buf); err != nil {
		t.Fatalf("InPlace: %v", err)
	}

	if d := maxAbsDiff(buf, want); d != 0 {
		t.Fatalf("in-place result differs by %g", d)
	}

	if err := plan.InverseInPlace(buf); err != nil {
		t.Fatalf("InverseInPlace: %v", err)
	}

	if d := maxAbsDiff(buf, x); d > 1e-5 {
		t.Fatalf("round trip differs by %g", d)
	}
}

func TestPlanSharedTwiddleLifetime(t *testing.T) {
	t.Parallel()

	table, err := NewTwiddleTable[complex128](6)
	if err != nil {
		t.Fatalf("NewTwiddleTable: %v", err)
	}

	plan, err := NewPlanWithTwiddle(table)
	if err != nil {
		t.Fatalf("NewPlanWithTwiddle: %v", err)
	}

	if plan.Len() != 64 || plan.Log2() != 6 || plan.Twiddle() != table {
		t.Fatalf("unexpected plan geometry: len=%d log2=%d", plan.Len(), plan.Log2())
	}

	_ = plan.Close()

	// The borrowed table survives the plan.
	if table.Len() != 32 || table.At(0) != 1 {
		t.Fatalf("table damaged by plan.Close: len=%d", table.Len())
	}

	_ = table.Close()

	if _, err := NewPlanWithTwiddle(table); !errors.Is(err, ErrClosed) {
		t.Fatalf("closed table: %v", err)
	}

	if _, err := NewPlanWithTwiddle[complex64](nil); !errors.Is(err, ErrNilTable) {
		t.Fatalf("nil table: %v", err)
	}
}

func BenchmarkPlanForward(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		b.Run(fmt.Sprintf("complex64/n=%d", n), func(b *testing.B) {
			plan, err := NewPlan32(n)
			if err != nil {
				b.Fatalf("NewPlan32: %v", err)
			}
			defer plan.Close()

			src := randomComplex64(n, 1)
			dst := make([]complex64, n)

			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			b.ResetTimer()
			for _i := 0; _i < b.N; _i++ {
				_ = plan.Forward(dst, src)
			}
		})

		b.Run(fmt.Sprintf("complex128/n=%d", n), func(b *testing.B) {
			plan, err := NewPlan64(n)
			if err != nil {
				b.Fatalf("NewPlan64: %v", err)
			}
			defer plan.Close()

			src := randomComplex128(n, 1)
			dst := make([]complex128, n)

			b.ReportAllocs()
			b.SetBytes(int64(n * 16))

			b.ResetTimer()
			for _i := 0; _i < b.N; _i++ {
				_ = plan.Forward(dst, src)
			}
		})
	}
}
