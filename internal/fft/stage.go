package fft

// Decimation-in-frequency radix-2 stage.
//
// Stage s splits the size-n transform into 2^s independent sub-transforms of
// n/2^s points. Each runs n/2^(s+1) butterflies pairing element i of its top
// half with element i of its bottom half:
//
//	top = a + b
//	bot = (a - b) · w[i·2^s]
//
// where w is the size-n twiddle table. The inverse conjugates w and halves
// both outputs, so k stages apply the full 1/n normalization.

// stageGeometry returns the number of sub-transforms, butterflies per
// sub-transform and twiddle stride for stage s of a size-n transform.
func stageGeometry(n, stage int) (numDFT, numBF, stride int) {
	stride = 1 << uint(stage)
	return stride, n >> uint(stage+1), stride
}

func stageScalarComplex64(out, in, twiddle []complex64, n, stage int, inverse bool) {
	numDFT, numBF, stride := stageGeometry(n, stage)

	for d, _n := 0, numDFT; d < _n; d++ {
		base := 2 * d * numBF
		top, bot := in[base:base+numBF], in[base+numBF:base+2*numBF]
		oTop, oBot := out[base:base+numBF], out[base+numBF:base+2*numBF]

		if inverse {
			for i, _n := 0, numBF; i < _n; i++ {
				w := twiddle[i*stride]
				w = complex(real(w), -imag(w))
				a, b := top[i], bot[i]
				oTop[i] = (a + b) * 0.5
				oBot[i] = (a - b) * w * 0.5
			}

			continue
		}

		for i, _n := 0, numBF; i < _n; i++ {
			a, b := top[i], bot[i]
			oTop[i] = a + b
			oBot[i] = (a - b) * twiddle[i*stride]
		}
	}
}

func stageScalarComplex128(out, in, twiddle []complex128, n, stage int, inverse bool) {
	numDFT, numBF, stride := stageGeometry(n, stage)

	for d, _n := 0, numDFT; d < _n; d++ {
		base := 2 * d * numBF
		top, bot := in[base:base+numBF], in[base+numBF:base+2*numBF]
		oTop, oBot := out[base:base+numBF], out[base+numBF:base+2*numBF]

		if inverse {
			for i, _n := 0, numBF; i < _n; i++ {
				w := twiddle[i*stride]
				w = complex(real(w), -imag(w))
				a, b := top[i], bot[i]
				oTop[i] = (a + b) * 0.5
				oBot[i] = (a - b) * w * 0.5
			}

			continue
		}

		for i, _n := 0, numBF; i < _n; i++ {
			a, b := top[i], bot[i]
			oTop[i] = a + b
			oBot[i] = (a - b) * twiddle[i*stride]
		}
	}
}

// stageScalar dispatches to the precision-specific scalar stage.
func stageScalar[T Complex](out, in, twiddle []T, n, stage int, inverse bool) {
	switch o := any(out).(type) {
	case []complex64:
		stageScalarComplex64(o, any(in).([]complex64), any(twiddle).([]complex64), n, stage, inverse)
	case []complex128:
		stageScalarComplex128(o, any(in).([]complex128), any(twiddle).([]complex128), n, stage, inverse)
	}
}
