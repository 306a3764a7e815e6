//go:build amd64 && !purego

package sse3

import (
	"github.com/cwbudde/algo-simd/internal/cpu"
	"github.com/cwbudde/algo-simd/internal/kernel/registry"
)

// Entry returns the SSE3 implementation table. Everything else resolves to
// sse2 or generic.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      "sse3",
		SIMDLevel: cpu.SIMDSSE3,
		Priority:  12,

		HorizontalAdd: haddPS,
		HorizontalSub: hsubPS,
		AddSub:        addSubPS,
		DuplicateLow:  dupLowPS,
		DuplicateHigh: dupHighPS,
	}
}

// Priority: 12 (preferred over SSE2 for the operations it provides)
func init() {
	registry.Global.Register(Entry())
}
