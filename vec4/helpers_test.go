package vec4

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-simd/internal/cpu"
)

var (
	nan32  = float32(math.NaN())
	inf32  = float32(math.Inf(1))
	ninf32 = float32(math.Inf(-1))
	negZ32 = math.Float32frombits(0x80000000)
)

const (
	maskTrue  uint32 = 0xFFFFFFFF
	maskFalse uint32 = 0
)

// forceGeneric pins dispatch to the generic backend for the rest of the test.
func forceGeneric(t *testing.T) {
	t.Helper()
	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	resetDispatch()
	t.Cleanup(func() {
		cpu.ResetDetection()
		resetDispatch()
	})
}

// eachBackend runs fn once with generic dispatch and once with the detected
// backends.
func eachBackend(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	t.Run("generic", func(t *testing.T) {
		forceGeneric(t)
		fn(t)
	})
	t.Run("detected", func(t *testing.T) {
		resetDispatch()
		t.Cleanup(resetDispatch)
		fn(t)
	})
}

func bits(b0, b1, b2, b3 uint32) Vector4f {
	return FromBits([4]uint32{b0, b1, b2, b3})
}
