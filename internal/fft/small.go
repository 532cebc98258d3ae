package fft

// Closed-form kernels for N = 1, 2, 4 and 8. Each loads its whole input
// into registers before storing, so dst and src may be the same slice.
// Inverses conjugate the input, run the forward kernel, conjugate the
// result and scale by 1/N.

func forward1[T Complex](dst, src, _ []T) bool {
	if len(dst) < 1 || len(src) < 1 {
		return false
	}

	dst[0] = src[0]

	return true
}

func forward2[T Complex](dst, src, _ []T) bool {
	if len(dst) < 2 || len(src) < 2 {
		return false
	}

	a, b := src[0], src[1]
	dst[0], dst[1] = a+b, a-b

	return true
}

func inverse2[T Complex](dst, src, _ []T) bool {
	if len(dst) < 2 || len(src) < 2 {
		return false
	}

	a, b := src[0], src[1]
	dst[0], dst[1] = (a+b)*0.5, (a-b)*0.5

	return true
}

// dft4 transforms (x0, x1) = lo, (x2, x3) = hi and returns (X0, X1), (X2, X3).
//
//	s = (x0+x2, x1+x3), d = (x0-x2, x1-x3)
//	X0 = s0 + s1          X2 = s0 - s1
//	X1 = d0 + (-i)d1      X3 = d0 - (-i)d1
func dft4[F Float](lo, hi vec2[F]) (vec2[F], vec2[F]) {
	s := lo.add(hi)
	d := lo.sub(hi)
	d = d.blendHi(d.mulNegI())

	u := s.unpackLo(d)
	v := s.unpackHi(d)

	return u.add(v), u.sub(v)
}

func forward4[T Complex, F Float](dst, src, _ []T) bool {
	if len(dst) < 4 || len(src) < 4 {
		return false
	}

	lo, hi := dft4(load2[T, F](src), load2[T, F](src[2:]))
	store2(dst, lo)
	store2(dst[2:], hi)

	return true
}

func inverse4[T Complex, F Float](dst, src, _ []T) bool {
	if len(dst) < 4 || len(src) < 4 {
		return false
	}

	lo, hi := dft4(load2[T, F](src).negateImag(), load2[T, F](src[2:]).negateImag())
	store2(dst, lo.negateImag().scale(0.25))
	store2(dst[2:], hi.negateImag().scale(0.25))

	return true
}

// dft8 splits x into even and odd samples, runs dft4 on each half and
// combines them with w = exp(-2πik/8), k = 0..3:
//
//	X[k]   = E[k] + w[k]·O[k]
//	X[k+4] = E[k] - w[k]·O[k]
func dft8[F Float](a, b, w vec4[F]) (vec4[F], vec4[F]) {
	even, odd := deinterleave(a, b)

	e0, e1 := dft4(even.low(), even.high())
	o0, o1 := dft4(odd.low(), odd.high())
	e := join2(e0, e1)
	o := join2(o0, o1).cmul(w)

	return e.add(o), e.sub(o)
}

func forward8[T Complex, F Float](dst, src, twiddle []T) bool {
	if len(dst) < 8 || len(src) < 8 || len(twiddle) < 4 {
		return false
	}

	lo, hi := dft8(load4[T, F](src), load4[T, F](src[4:]), load4[T, F](twiddle))
	store4(dst, lo)
	store4(dst[4:], hi)

	return true
}

func inverse8[T Complex, F Float](dst, src, twiddle []T) bool {
	if len(dst) < 8 || len(src) < 8 || len(twiddle) < 4 {
		return false
	}

	lo, hi := dft8(
		load4[T, F](src).negateImag(),
		load4[T, F](src[4:]).negateImag(),
		load4[T, F](twiddle),
	)
	store4(dst, lo.negateImag().scale(0.125))
	store4(dst[4:], hi.negateImag().scale(0.125))

	return true
}
