package vec4

// Comparisons return mask vectors: each lane is all-ones bits when the
// condition holds and all-zero bits otherwise. Combine masks with And, Or,
// AndNot, or feed them to Select.

// CompareEqual returns a mask of a == b. NaN lanes are false.
func CompareEqual(a, b Vector4f) Vector4f {
	return kernels().CompareEqual(a, b)
}

// CompareLessThan returns a mask of a < b. NaN lanes are false.
func CompareLessThan(a, b Vector4f) Vector4f {
	return kernels().CompareLessThan(a, b)
}

// CompareLessEqual returns a mask of a <= b. NaN lanes are false.
func CompareLessEqual(a, b Vector4f) Vector4f {
	return kernels().CompareLessEqual(a, b)
}

// CompareNotEqual returns a mask of a != b. NaN lanes are true.
func CompareNotEqual(a, b Vector4f) Vector4f {
	return kernels().CompareNotEqual(a, b)
}

// CompareNotLessThan returns a mask of !(a < b). This is not a >= b: lanes
// involving NaN are true.
func CompareNotLessThan(a, b Vector4f) Vector4f {
	return kernels().CompareNotLessThan(a, b)
}

// CompareNotLessEqual returns a mask of !(a <= b). Lanes involving NaN are
// true.
func CompareNotLessEqual(a, b Vector4f) Vector4f {
	return kernels().CompareNotLessEqual(a, b)
}

// CompareUnordered returns a mask of lanes where a or b is NaN.
func CompareUnordered(a, b Vector4f) Vector4f {
	return kernels().CompareUnordered(a, b)
}

// CompareOrdered returns a mask of lanes where neither a nor b is NaN.
func CompareOrdered(a, b Vector4f) Vector4f {
	return kernels().CompareOrdered(a, b)
}

// Select picks a's lane where mask is set and b's lane where it is clear,
// bit by bit: (mask & a) | (^mask & b).
func Select(mask, a, b Vector4f) Vector4f {
	return mask.And(a).Or(AndNot(mask, b))
}

// MoveMask packs the sign bit of lane i into bit i of the result. For a
// comparison mask this is one bit per true lane.
func MoveMask(v Vector4f) uint8 {
	return kernels().MoveMask(v)
}
