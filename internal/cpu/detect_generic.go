//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl reports no SIMD extensions; only the generic kernels
// are eligible.
func detectFeaturesImpl() Features {
	return Features{Architecture: runtime.GOARCH}
}
