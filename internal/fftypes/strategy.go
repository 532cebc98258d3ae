package fftypes

// SIMDLevel describes the widest vector class a kernel set may use.
type SIMDLevel uint8

const (
	SIMDNone   SIMDLevel = iota // Pure Go scalar butterflies
	SIMDSSE2                    // 128-bit registers
	SIMDAVX                     // 256-bit registers
	SIMDAVX512                  // 512-bit registers
	SIMDNEON                    // 128-bit ARM registers
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "generic"
	case SIMDSSE2:
		return "sse2"
	case SIMDAVX:
		return "avx"
	case SIMDAVX512:
		return "avx512"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// VectorBits returns the register width in bits for the level.
func (s SIMDLevel) VectorBits() int {
	switch s {
	case SIMDSSE2, SIMDNEON:
		return 128
	case SIMDAVX:
		return 256
	case SIMDAVX512:
		return 512
	default:
		return 0
	}
}

// ParseSIMDLevel maps a name produced by String back to its level.
// The second result is false for unknown names.
func ParseSIMDLevel(name string) (SIMDLevel, bool) {
	for level := SIMDNone; level <= SIMDNEON; level++ {
		if level.String() == name {
			return level, true
		}
	}

	return SIMDNone, false
}
