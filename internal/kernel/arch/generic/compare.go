package generic

import "math"

const (
	maskTrue  uint32 = 0xFFFFFFFF
	maskFalse uint32 = 0
)

// CompareEqual returns all-ones lanes where a == b.
func CompareEqual(a, b [4]float32) [4]float32 {
	return compare(a, b, func(x, y float32) bool { return x == y })
}

// CompareLessThan returns all-ones lanes where a < b.
func CompareLessThan(a, b [4]float32) [4]float32 {
	return compare(a, b, func(x, y float32) bool { return x < y })
}

// CompareLessEqual returns all-ones lanes where a <= b.
func CompareLessEqual(a, b [4]float32) [4]float32 {
	return compare(a, b, func(x, y float32) bool { return x <= y })
}

// CompareNotEqual returns all-ones lanes where a != b, including NaN lanes.
func CompareNotEqual(a, b [4]float32) [4]float32 {
	return compare(a, b, func(x, y float32) bool { return x != y })
}

// CompareNotLessThan returns all-ones lanes where !(a < b). NaN lanes are true.
func CompareNotLessThan(a, b [4]float32) [4]float32 {
	return compare(a, b, func(x, y float32) bool { return !(x < y) })
}

// CompareNotLessEqual returns all-ones lanes where !(a <= b). NaN lanes are true.
func CompareNotLessEqual(a, b [4]float32) [4]float32 {
	return compare(a, b, func(x, y float32) bool { return !(x <= y) })
}

// CompareUnordered returns all-ones lanes where either operand is NaN.
func CompareUnordered(a, b [4]float32) [4]float32 {
	return compare(a, b, func(x, y float32) bool { return isNaN(x) || isNaN(y) })
}

// CompareOrdered returns all-ones lanes where neither operand is NaN.
func CompareOrdered(a, b [4]float32) [4]float32 {
	return compare(a, b, func(x, y float32) bool { return !isNaN(x) && !isNaN(y) })
}

// MoveMask packs the sign bit of lane i into bit i of the result.
func MoveMask(v [4]float32) uint8 {
	var m uint8
	for i := range v {
		m |= uint8(math.Float32bits(v[i])>>31) << i
	}
	return m
}

func isNaN(f float32) bool { return f != f }

func compare(a, b [4]float32, pred func(x, y float32) bool) [4]float32 {
	var r [4]float32
	for i := range r {
		bits := maskFalse
		if pred(a[i], b[i]) {
			bits = maskTrue
		}
		r[i] = math.Float32frombits(bits)
	}
	return r
}
