package binafft

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadix2C2CExecute(t *testing.T) {
	t.Parallel()

	in := randomComplex128(32, 4)
	out := make([]complex128, 32)

	fwd, err := NewRadix2C2C(in, out, DirectionForward)
	require.NoError(t, err)

	defer fwd.Close()

	assert.Equal(t, KindRadix2C2C, fwd.Kind())
	assert.Equal(t, "radix2-c2c", fwd.Kind().String())
	assert.Equal(t, 32, fwd.Len())

	want := make([]complex128, 32)
	require.NoError(t, Forward(5, nil, append(want[:0], in...)))

	require.NoError(t, fwd.Execute())
	assert.LessOrEqual(t, maxAbsDiff(out, want), dftTol128)

	// Execute re-reads the bound input.
	in[0] += 1
	require.NoError(t, fwd.Execute())
	assert.InDelta(t, real(want[0])+1, real(out[0]), dftTol128)

	back := make([]complex128, 32)
	inv, err := NewRadix2C2C(out, back, DirectionInverse)
	require.NoError(t, err)

	defer inv.Close()

	require.NoError(t, inv.Execute())
	assert.LessOrEqual(t, maxAbsDiff(back, in), dftTol128)
}

func TestRadix2C2CInPlace(t *testing.T) {
	t.Parallel()

	buf := []complex64{1, 1, 1, 1}

	var tr Transform

	tr, err := NewRadix2C2C(buf, buf, DirectionForward)
	require.NoError(t, err)

	require.NoError(t, tr.Execute())
	assert.Equal(t, []complex64{4, 0, 0, 0}, buf)

	require.NoError(t, tr.Close())
	assert.True(t, errors.Is(tr.Execute(), ErrClosed))
}

func TestNewRadix2C2CErrors(t *testing.T) {
	t.Parallel()

	_, err := NewRadix2C2C[complex64](nil, make([]complex64, 4), DirectionForward)
	assert.ErrorIs(t, err, ErrNilSlice)

	_, err = NewRadix2C2C(make([]complex64, 4), make([]complex64, 8), DirectionForward)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = NewRadix2C2C(make([]complex64, 6), make([]complex64, 6), DirectionForward)
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = NewRadix2C2C(make([]complex64, 4), make([]complex64, 4), Direction(7))
	assert.Error(t, err)

	assert.Equal(t, "unknown", Kind(0).String())
}
