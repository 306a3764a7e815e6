//go:build amd64 && !purego

package vec4

// Blank imports register the backends with the global registry.

import (
	_ "github.com/cwbudde/algo-simd/internal/kernel/arch/generic"

	_ "github.com/cwbudde/algo-simd/internal/kernel/arch/amd64/sse2"
	_ "github.com/cwbudde/algo-simd/internal/kernel/arch/amd64/sse3"
)
