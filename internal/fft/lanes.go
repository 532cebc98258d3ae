package fft

import (
	"fmt"
	"strings"
	"unsafe"
)

// vec2 models a register holding two complex lanes as interleaved
// (re, im) components. vec4 holds four.
//
// Loads and stores reinterpret the element memory directly, so a vector of
// F must only ever be paired with the complex type of the same component
// width: complex64 with float32, complex128 with float64. SelectKernels is
// the only place that instantiates the pairs.
type (
	vec2[F Float] [4]F
	vec4[F Float] [8]F
)

func load2[T Complex, F Float](s []T) vec2[F] {
	_ = s[1]
	return *(*vec2[F])(unsafe.Pointer(&s[0]))
}

func store2[T Complex, F Float](s []T, v vec2[F]) {
	_ = s[1]
	*(*vec2[F])(unsafe.Pointer(&s[0])) = v
}

func load4[T Complex, F Float](s []T) vec4[F] {
	_ = s[3]
	return *(*vec4[F])(unsafe.Pointer(&s[0]))
}

func store4[T Complex, F Float](s []T, v vec4[F]) {
	_ = s[3]
	*(*vec4[F])(unsafe.Pointer(&s[0])) = v
}

// components returns the (re, im) pair of one complex element.
func components[T Complex, F Float](x *T) [2]F {
	return *(*[2]F)(unsafe.Pointer(x))
}

// gather2 loads s[base] and s[base+stride] into one register.
func gather2[T Complex, F Float](s []T, base, stride int) vec2[F] {
	a := components[T, F](&s[base])
	b := components[T, F](&s[base+stride])

	return vec2[F]{a[0], a[1], b[0], b[1]}
}

// gather4 loads four elements spaced stride apart starting at base.
func gather4[T Complex, F Float](s []T, base, stride int) vec4[F] {
	a := components[T, F](&s[base])
	b := components[T, F](&s[base+stride])
	c := components[T, F](&s[base+2*stride])
	d := components[T, F](&s[base+3*stride])

	return vec4[F]{a[0], a[1], b[0], b[1], c[0], c[1], d[0], d[1]}
}

// toArray2 converts a register into its complex lanes.
func toArray2[T Complex, F Float](v vec2[F]) [2]T {
	var out [2]T
	store2[T](out[:], v)

	return out
}

// fromArray2 builds a register from complex lanes.
func fromArray2[T Complex, F Float](lanes [2]T) vec2[F] {
	return load2[T, F](lanes[:])
}

// toArray4 converts a register into its complex lanes.
func toArray4[T Complex, F Float](v vec4[F]) [4]T {
	var out [4]T
	store4[T](out[:], v)

	return out
}

func (a vec2[F]) add(b vec2[F]) vec2[F] {
	return vec2[F]{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a vec2[F]) sub(b vec2[F]) vec2[F] {
	return vec2[F]{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (a vec2[F]) mul(b vec2[F]) vec2[F] {
	return vec2[F]{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func (a vec2[F]) scale(f F) vec2[F] {
	return vec2[F]{a[0] * f, a[1] * f, a[2] * f, a[3] * f}
}

// addsub subtracts in the real slots and adds in the imaginary slots.
func (a vec2[F]) addsub(b vec2[F]) vec2[F] {
	return vec2[F]{a[0] - b[0], a[1] + b[1], a[2] - b[2], a[3] + b[3]}
}

// swapReIm exchanges the components of every lane.
func (a vec2[F]) swapReIm() vec2[F] {
	return vec2[F]{a[1], a[0], a[3], a[2]}
}

func (a vec2[F]) dupReal() vec2[F] {
	return vec2[F]{a[0], a[0], a[2], a[2]}
}

func (a vec2[F]) dupImag() vec2[F] {
	return vec2[F]{a[1], a[1], a[3], a[3]}
}

// negateImag flips the sign of every imaginary slot (lane-wise conjugate).
func (a vec2[F]) negateImag() vec2[F] {
	return vec2[F]{a[0], -a[1], a[2], -a[3]}
}

// cmul multiplies lane-wise as complex numbers:
// re = ar·br - ai·bi, im = ai·br + ar·bi.
func (a vec2[F]) cmul(b vec2[F]) vec2[F] {
	return a.mul(b.dupReal()).addsub(a.swapReIm().mul(b.dupImag()))
}

// mulNegI multiplies every lane by -i: (re, im) -> (im, -re).
func (a vec2[F]) mulNegI() vec2[F] {
	return a.swapReIm().negateImag()
}

// unpackLo returns (a.lane0, b.lane0).
func (a vec2[F]) unpackLo(b vec2[F]) vec2[F] {
	return vec2[F]{a[0], a[1], b[0], b[1]}
}

// unpackHi returns (a.lane1, b.lane1).
func (a vec2[F]) unpackHi(b vec2[F]) vec2[F] {
	return vec2[F]{a[2], a[3], b[2], b[3]}
}

// blendHi keeps lane 0 of a and takes lane 1 from b.
func (a vec2[F]) blendHi(b vec2[F]) vec2[F] {
	return vec2[F]{a[0], a[1], b[2], b[3]}
}

// swapLanes exchanges the two complex lanes.
func (a vec2[F]) swapLanes() vec2[F] {
	return vec2[F]{a[2], a[3], a[0], a[1]}
}

func (a vec2[F]) String() string {
	return formatLanes(a[:])
}

func (a vec4[F]) add(b vec4[F]) vec4[F] {
	var out vec4[F]
	for i := range out {
		out[i] = a[i] + b[i]
	}

	return out
}

func (a vec4[F]) sub(b vec4[F]) vec4[F] {
	var out vec4[F]
	for i := range out {
		out[i] = a[i] - b[i]
	}

	return out
}

func (a vec4[F]) scale(f F) vec4[F] {
	var out vec4[F]
	for i := range out {
		out[i] = a[i] * f
	}

	return out
}

func (a vec4[F]) negateImag() vec4[F] {
	out := a
	for i := 1; i < len(out); i += 2 {
		out[i] = -out[i]
	}

	return out
}

func (a vec4[F]) cmul(b vec4[F]) vec4[F] {
	var out vec4[F]
	for i := 0; i < len(out); i += 2 {
		out[i] = a[i]*b[i] - a[i+1]*b[i+1]
		out[i+1] = a[i+1]*b[i] + a[i]*b[i+1]
	}

	return out
}

// low and high split a vec4 into its lane halves.
func (a vec4[F]) low() vec2[F] {
	return vec2[F]{a[0], a[1], a[2], a[3]}
}

func (a vec4[F]) high() vec2[F] {
	return vec2[F]{a[4], a[5], a[6], a[7]}
}

// join2 concatenates two vec2 registers into lanes (lo0, lo1, hi0, hi1).
func join2[F Float](lo, hi vec2[F]) vec4[F] {
	return vec4[F]{lo[0], lo[1], lo[2], lo[3], hi[0], hi[1], hi[2], hi[3]}
}

// deinterleave splits the lanes of (a, b) into even and odd positions:
// even = (a0, a2, b0, b2), odd = (a1, a3, b1, b3).
func deinterleave[F Float](a, b vec4[F]) (even, odd vec4[F]) {
	even = vec4[F]{a[0], a[1], a[4], a[5], b[0], b[1], b[4], b[5]}
	odd = vec4[F]{a[2], a[3], a[6], a[7], b[2], b[3], b[6], b[7]}

	return even, odd
}

func (a vec4[F]) String() string {
	return formatLanes(a[:])
}

func formatLanes[F Float](components []F) string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i := 0; i+1 < len(components); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}

		fmt.Fprintf(&sb, "(%g%+gi)", float64(components[i]), float64(components[i+1]))
	}

	sb.WriteByte(']')

	return sb.String()
}
