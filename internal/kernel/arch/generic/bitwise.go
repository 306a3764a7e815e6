package generic

import "math"

// And returns the lane-wise AND of the raw bit patterns of a and b.
func And(a, b [4]float32) [4]float32 {
	return bitwise(a, b, func(x, y uint32) uint32 { return x & y })
}

// Or returns the lane-wise OR of the raw bit patterns of a and b.
func Or(a, b [4]float32) [4]float32 {
	return bitwise(a, b, func(x, y uint32) uint32 { return x | y })
}

// Xor returns the lane-wise XOR of the raw bit patterns of a and b.
func Xor(a, b [4]float32) [4]float32 {
	return bitwise(a, b, func(x, y uint32) uint32 { return x ^ y })
}

// AndNot returns (^a) & b per lane, on raw bits.
func AndNot(a, b [4]float32) [4]float32 {
	return bitwise(a, b, func(x, y uint32) uint32 { return ^x & y })
}

// bitwise never lets a lane pass through float arithmetic, so signed zeros
// and NaN payloads survive unchanged.
func bitwise(a, b [4]float32, op func(x, y uint32) uint32) [4]float32 {
	var r [4]float32
	for i := range r {
		r[i] = math.Float32frombits(op(math.Float32bits(a[i]), math.Float32bits(b[i])))
	}
	return r
}
