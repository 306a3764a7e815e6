package generic

import "math"

// Add returns a + b per lane.
func Add(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub returns a - b per lane.
func Sub(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul returns a * b per lane.
func Mul(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Div returns a / b per lane.
func Div(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// Min returns the smaller lane, or b's lane when the comparison is false.
// That makes b win for NaN in either operand and for a ±0 tie, like MINPS.
func Min(a, b [4]float32) [4]float32 {
	var r [4]float32
	for i := range r {
		if a[i] < b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// Max returns the larger lane, or b's lane when the comparison is false.
func Max(a, b [4]float32) [4]float32 {
	var r [4]float32
	for i := range r {
		if a[i] > b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// Sqrt returns the correctly rounded single-precision square root per lane.
// Rounding the float64 root to float32 is exact for this operation.
func Sqrt(v [4]float32) [4]float32 {
	var r [4]float32
	for i := range r {
		r[i] = sqrt32(v[i])
	}
	return r
}

// Reciprocal returns 1/v per lane.
func Reciprocal(v [4]float32) [4]float32 {
	return [4]float32{1 / v[0], 1 / v[1], 1 / v[2], 1 / v[3]}
}

// InvSqrt returns 1/sqrt(v) per lane. The root and the quotient are taken in
// float64 and rounded to float32 once.
func InvSqrt(v [4]float32) [4]float32 {
	var r [4]float32
	for i := range r {
		r[i] = float32(1 / math.Sqrt(float64(v[i])))
	}
	return r
}

func sqrt32(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}
