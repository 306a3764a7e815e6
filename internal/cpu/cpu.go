// Package cpu reports the SIMD extensions the vector kernels can use.
//
// Detection runs once, on the first DetectFeatures call. Tests can pin the
// result with SetForcedFeatures and undo it with ResetDetection.
package cpu

import "sync"

// SIMDLevel is the instruction set a kernel backend needs.
type SIMDLevel int

const (
	// SIMDNone marks the portable Go kernels.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 marks kernels built from SSE and SSE2 (amd64 baseline).
	SIMDSSE2

	// SIMDSSE3 marks the horizontal, add-sub and duplicate kernels.
	SIMDSSE3
)

// String returns the instruction set name.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDSSE3:
		return "SSE3"
	default:
		return "Unknown"
	}
}

// Features describes the processor. Only SSE2 and SSE3 select kernels; the
// AVX and NEON flags are reported by vec4info.
type Features struct {
	HasSSE2   bool
	HasSSE3   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	// ForceGeneric restricts selection to SIMDNone kernels.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	detectMu sync.Mutex
	detected Features
	once     sync.Once

	forcedMu sync.RWMutex
	forced   *Features
)

// DetectFeatures returns the forced features if set, otherwise the cached
// result of probing the processor. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()
	if f != nil {
		return *f
	}

	detectMu.Lock()
	defer detectMu.Unlock()
	once.Do(func() { detected = detectFeaturesImpl() })
	return detected
}

// HasSSE3 reports whether SSE3 kernels may run.
func HasSSE3() bool {
	return DetectFeatures().HasSSE3
}

// SetForcedFeatures makes DetectFeatures return f. Tests only.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	forced = &f
}

// ResetDetection drops forced features and the cached detection result. Tests only.
func ResetDetection() {
	forcedMu.Lock()
	forced = nil
	forcedMu.Unlock()

	detectMu.Lock()
	once = sync.Once{}
	detected = Features{}
	detectMu.Unlock()
}

// Supports reports whether kernels requiring level may run on features.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDSSE3:
		return features.HasSSE2 && features.HasSSE3
	default:
		return false
	}
}
