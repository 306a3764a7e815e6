package vec4

var (
	signMask = FromBits([4]uint32{0x80000000, 0x80000000, 0x80000000, 0x80000000})
	allOnes  = FromBits([4]uint32{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF})
)

// And returns the lane-wise AND of the raw bits of v and u.
func (v Vector4f) And(u Vector4f) Vector4f { return kernels().And(v, u) }

// Or returns the lane-wise OR of the raw bits of v and u.
func (v Vector4f) Or(u Vector4f) Vector4f { return kernels().Or(v, u) }

// Xor returns the lane-wise XOR of the raw bits of v and u.
func (v Vector4f) Xor(u Vector4f) Vector4f { return kernels().Xor(v, u) }

// Add returns v + u per lane.
func (v Vector4f) Add(u Vector4f) Vector4f { return kernels().Add(v, u) }

// Sub returns v - u per lane.
func (v Vector4f) Sub(u Vector4f) Vector4f { return kernels().Sub(v, u) }

// Mul returns v * u per lane.
func (v Vector4f) Mul(u Vector4f) Vector4f { return kernels().Mul(v, u) }

// Div returns v / u per lane. x/0 gives ±Inf, 0/0 gives NaN.
func (v Vector4f) Div(u Vector4f) Vector4f { return kernels().Div(v, u) }

// AndNot returns (^a) & b per lane, on raw bits.
func AndNot(a, b Vector4f) Vector4f {
	return kernels().AndNot(a, b)
}

// Not flips every bit of v.
func Not(v Vector4f) Vector4f {
	return v.Xor(allOnes)
}

// Neg flips the sign bit of every lane. Unlike 0 - v it maps +0 to -0 and
// keeps NaN payloads.
func Neg(v Vector4f) Vector4f {
	return v.Xor(signMask)
}

// Abs clears the sign bit of every lane.
func Abs(v Vector4f) Vector4f {
	return AndNot(signMask, v)
}

// Scale multiplies every lane by s.
func Scale(v Vector4f, s float32) Vector4f {
	return v.Mul(Splat(s))
}

// Min returns a[i] if a[i] < b[i], else b[i]. When either lane is NaN, or
// the lanes are zeros of either sign, b's lane is returned.
func Min(a, b Vector4f) Vector4f {
	return kernels().Min(a, b)
}

// Max returns a[i] if a[i] > b[i], else b[i], with the same NaN and zero
// convention as Min.
func Max(a, b Vector4f) Vector4f {
	return kernels().Max(a, b)
}

// Sqrt returns the correctly rounded square root of every lane.
func Sqrt(v Vector4f) Vector4f {
	return kernels().Sqrt(v)
}

// InvSqrt returns 1/sqrt(v) per lane, computed in float64 and rounded to
// float32 once.
func InvSqrt(v Vector4f) Vector4f {
	return kernels().InvSqrt(v)
}

// Reciprocal returns 1/v per lane, exactly rounded.
func Reciprocal(v Vector4f) Vector4f {
	return kernels().Reciprocal(v)
}
