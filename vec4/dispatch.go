package vec4

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/cwbudde/algo-simd/internal/cpu"
	"github.com/cwbudde/algo-simd/internal/kernel/registry"
)

// NoSIMDEnv is the environment variable that forces the generic backend.
const NoSIMDEnv = "VEC4_NO_SIMD"

var (
	backends    = registry.Global
	resolved    registry.Resolution
	resolveErr  string
	resolveOnce sync.Once
)

// kernels returns the resolved operation table, building it on first use.
// A failed resolution panics with the same message on every call.
func kernels() *registry.Resolution {
	resolveOnce.Do(resolveKernels)
	if resolveErr != "" {
		panic(resolveErr)
	}
	return &resolved
}

func resolveKernels() {
	features := cpu.DetectFeatures()
	if noSIMD() {
		features.ForceGeneric = true
		Logger().Warn("vec4: SIMD disabled by environment", "env", NoSIMDEnv)
	}

	res, ok := backends.Resolve(features)
	if !ok {
		resolveErr = "vec4: no compatible backend registered"
		return
	}
	if missing := res.Missing(); len(missing) > 0 {
		resolveErr = "vec4: no backend implements " + strings.Join(missing, ", ")
		return
	}

	log := Logger()
	log.Info("vec4: backend resolved",
		"implementation", res.Name,
		"level", res.SIMDLevel.String(),
		"arch", features.Architecture)
	if log.Enabled(context.Background(), slog.LevelDebug) {
		for _, op := range res.Provided() {
			log.Debug("vec4: operation", "op", op, "backend", res.Sources[op])
		}
	}

	resolved = res
}

// noSIMD reports whether NoSIMDEnv is set. Any non-empty value that does not
// parse as a boolean counts as true.
func noSIMD() bool {
	val := os.Getenv(NoSIMDEnv)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// resetDispatch forgets the resolved table so the next operation resolves
// again. Tests only.
func resetDispatch() {
	resolveOnce = sync.Once{}
	resolved = registry.Resolution{}
	resolveErr = ""
}

// Implementation returns the names of the backends in use, highest priority
// first, joined with "+" (for example "sse3+sse2+generic").
func Implementation() string {
	return kernels().Name
}

// OpInfo names the backend chosen for one operation.
type OpInfo struct {
	Op      string
	Backend string
}

// Operations lists every operation with the backend that implements it, in a
// stable order.
func Operations() []OpInfo {
	k := kernels()
	ops := k.Provided()
	out := make([]OpInfo, 0, len(ops))
	for _, op := range ops {
		out = append(out, OpInfo{Op: op, Backend: k.Sources[op]})
	}
	return out
}
