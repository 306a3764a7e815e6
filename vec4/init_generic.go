//go:build purego || !amd64

package vec4

import (
	_ "github.com/cwbudde/algo-simd/internal/kernel/arch/generic"
)
