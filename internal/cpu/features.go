// Package cpu reports the vector capabilities used to pick butterfly kernels.
package cpu

import (
	"runtime"
	"sync"

	"github.com/cwbudde/binafft/internal/fftypes"
)

// Features describes CPU capabilities relevant to FFT kernel selection.
type Features struct {
	HasSSE2      bool
	HasSSE3      bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	ForceGeneric bool
	Architecture string
}

var (
	detectOnce sync.Once
	detected   Features
)

// DetectFeatures reports the available CPU features for the current process.
// Detection runs once; later calls return the cached result.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
		if detected.Architecture == "" {
			detected.Architecture = runtime.GOARCH
		}
	})

	return detected
}

// Level returns the widest SIMD level the features allow.
func (f Features) Level() fftypes.SIMDLevel {
	switch {
	case f.ForceGeneric:
		return fftypes.SIMDNone
	case f.HasAVX512:
		return fftypes.SIMDAVX512
	case f.HasAVX || f.HasAVX2:
		return fftypes.SIMDAVX
	case f.HasSSE2:
		return fftypes.SIMDSSE2
	case f.HasNEON:
		return fftypes.SIMDNEON
	default:
		return fftypes.SIMDNone
	}
}

// Lanes returns how many complex samples of floatBits-wide components fit in
// one register of the given level. A result of 1 means scalar execution.
func Lanes(level fftypes.SIMDLevel, floatBits int) int {
	if floatBits <= 0 {
		return 1
	}

	lanes := level.VectorBits() / (2 * floatBits)
	switch {
	case lanes >= 4:
		return 4
	case lanes >= 2:
		return 2
	default:
		return 1
	}
}

// Cap lowers f so that Level does not exceed the requested level.
// Requesting a level wider than the hardware supports returns f unchanged.
func (f Features) Cap(level fftypes.SIMDLevel) Features {
	if level == fftypes.SIMDNone {
		return Features{ForceGeneric: true, Architecture: f.Architecture}
	}

	if level.VectorBits() >= f.Level().VectorBits() {
		return f
	}

	capped := Features{Architecture: f.Architecture}

	switch level {
	case fftypes.SIMDSSE2:
		capped.HasSSE2, capped.HasSSE3 = f.HasSSE2, f.HasSSE3
		capped.HasNEON = f.HasNEON
	case fftypes.SIMDNEON:
		capped.HasNEON = f.HasNEON
		capped.HasSSE2 = f.HasSSE2
	case fftypes.SIMDAVX:
		capped.HasSSE2, capped.HasSSE3 = f.HasSSE2, f.HasSSE3
		capped.HasAVX, capped.HasAVX2 = f.HasAVX, f.HasAVX2
	}

	return capped
}
