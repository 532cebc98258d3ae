package binafft

import (
	"math/cmplx"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func transformProperties(t *testing.T) *gopter.Properties {
	t.Helper()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	return gopter.NewProperties(parameters)
}

func TestPropertyRoundTrip(t *testing.T) {
	t.Parallel()

	properties := transformProperties(t)

	properties.Property("Inverse(Forward(x)) == x", prop.ForAll(
		func(k int, seed int64) bool {
			x := randomComplex128(1<<k, seed)
			buf := append([]complex128(nil), x...)

			if Forward(k, nil, buf) != nil || Inverse(k, nil, buf) != nil {
				return false
			}

			return maxAbsDiff(buf, x) <= 1e-9
		},
		gen.IntRange(0, 12),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestPropertyRoundTripComplex64(t *testing.T) {
	t.Parallel()

	properties := transformProperties(t)

	properties.Property("Inverse(Forward(x)) == x in single precision", prop.ForAll(
		func(k int, seed int64) bool {
			x := randomComplex64(1<<k, seed)
			buf := append([]complex64(nil), x...)

			if Forward(k, nil, buf) != nil || Inverse(k, nil, buf) != nil {
				return false
			}

			// Rounding grows with the stage count.
			return maxAbsDiff(buf, x) <= 1e-6*float64(k+1)
		},
		gen.IntRange(0, 12),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestPropertyLinearity(t *testing.T) {
	t.Parallel()

	properties := transformProperties(t)

	properties.Property("F(a·x + b·y) == a·F(x) + b·F(y)", prop.ForAll(
		func(k int, seed int64, a, b complex128) bool {
			n := 1 << k
			x := randomComplex128(n, seed)
			y := randomComplex128(n, seed+1)

			mixed := make([]complex128, n)
			for i := range mixed {
				mixed[i] = a*x[i] + b*y[i]
			}

			if Forward(k, nil, x) != nil || Forward(k, nil, y) != nil || Forward(k, nil, mixed) != nil {
				return false
			}

			for i := range mixed {
				if cmplx.Abs(mixed[i]-(a*x[i]+b*y[i])) > 1e-9*float64(n) {
					return false
				}
			}

			return true
		},
		gen.IntRange(1, 10),
		gen.Int64(),
		genScalar(),
		genScalar(),
	))

	properties.TestingRun(t)
}

// genScalar draws complex scalars with both parts in [-4, 4].
func genScalar() gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(-4, 4),
		gen.Float64Range(-4, 4),
	).Map(func(parts []any) complex128 {
		return complex(parts[0].(float64), parts[1].(float64))
	})
}

func TestPropertyParseval(t *testing.T) {
	t.Parallel()

	properties := transformProperties(t)

	properties.Property("sum |X|² == N · sum |x|²", prop.ForAll(
		func(k int, seed int64) bool {
			n := 1 << k
			x := randomComplex128(n, seed)

			var timeEnergy float64
			for _, v := range x {
				timeEnergy += real(v)*real(v) + imag(v)*imag(v)
			}

			if Forward(k, nil, x) != nil {
				return false
			}

			var freqEnergy float64
			for _, v := range x {
				freqEnergy += real(v)*real(v) + imag(v)*imag(v)
			}

			diff := freqEnergy - float64(n)*timeEnergy

			return diff*diff <= 1e-16*freqEnergy*freqEnergy+1e-20
		},
		gen.IntRange(0, 11),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestPropertyBitReverseInvolution(t *testing.T) {
	t.Parallel()

	properties := transformProperties(t)

	properties.Property("BitReverse is its own inverse", prop.ForAll(
		func(v uint64, width int) bool {
			low := v
			if width < 64 {
				low &= 1<<uint(width) - 1
			}

			return BitReverse(BitReverse(v, width), width) == low
		},
		gen.UInt64(),
		gen.IntRange(0, 64),
	))

	properties.TestingRun(t)
}
