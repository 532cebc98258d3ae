package fft

// Lane-batched variants of the radix-2 stage. They process 2 or 4
// consecutive butterflies of a sub-transform per step, gathering the
// strided twiddles into one register. When a stage has fewer butterflies
// per sub-transform than lanes, the narrower kernel takes over.

func stageLanes2[T Complex, F Float](out, in, twiddle []T, n, stage int, inverse bool) {
	numDFT, numBF, stride := stageGeometry(n, stage)
	if numBF < 2 {
		stageScalar(out, in, twiddle, n, stage, inverse)
		return
	}

	for d, _n := 0, numDFT; d < _n; d++ {
		base := 2 * d * numBF
		top, bot := in[base:base+numBF], in[base+numBF:base+2*numBF]
		oTop, oBot := out[base:base+numBF], out[base+numBF:base+2*numBF]

		for i := 0; i < numBF; i += 2 {
			a := load2[T, F](top[i:])
			b := load2[T, F](bot[i:])
			w := gather2[T, F](twiddle, i*stride, stride)

			yt := a.add(b)
			if inverse {
				yb := a.sub(b).cmul(w.negateImag())
				store2(oTop[i:], yt.scale(0.5))
				store2(oBot[i:], yb.scale(0.5))

				continue
			}

			store2(oTop[i:], yt)
			store2(oBot[i:], a.sub(b).cmul(w))
		}
	}
}

func stageLanes4[T Complex, F Float](out, in, twiddle []T, n, stage int, inverse bool) {
	numDFT, numBF, stride := stageGeometry(n, stage)
	if numBF < 4 {
		stageLanes2[T, F](out, in, twiddle, n, stage, inverse)
		return
	}

	for d, _n := 0, numDFT; d < _n; d++ {
		base := 2 * d * numBF
		top, bot := in[base:base+numBF], in[base+numBF:base+2*numBF]
		oTop, oBot := out[base:base+numBF], out[base+numBF:base+2*numBF]

		for i := 0; i < numBF; i += 4 {
			a := load4[T, F](top[i:])
			b := load4[T, F](bot[i:])
			w := gather4[T, F](twiddle, i*stride, stride)

			yt := a.add(b)
			if inverse {
				yb := a.sub(b).cmul(w.negateImag())
				store4(oTop[i:], yt.scale(0.5))
				store4(oBot[i:], yb.scale(0.5))

				continue
			}

			store4(oTop[i:], yt)
			store4(oBot[i:], a.sub(b).cmul(w))
		}
	}
}
