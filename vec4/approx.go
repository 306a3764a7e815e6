package vec4

import "github.com/meko-christian/algo-approx"

// ApproxSqrt returns a fast approximation of Sqrt(v). Results are not
// bit-exact and may differ between releases; lanes should be finite and
// non-negative.
func ApproxSqrt(v Vector4f) Vector4f {
	var r Vector4f
	for i, x := range v {
		r[i] = approx.FastSqrt32(x)
	}
	return r
}

// ApproxInvSqrt returns a fast approximation of InvSqrt(v), with the same
// caveats as ApproxSqrt. Lanes should be finite and positive.
func ApproxInvSqrt(v Vector4f) Vector4f {
	var r Vector4f
	for i, x := range v {
		r[i] = approx.FastInvSqrt32(x)
	}
	return r
}
