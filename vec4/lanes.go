package vec4

// HorizontalAdd returns (a.X+a.Y, a.Z+a.W, b.X+b.Y, b.Z+b.W).
func HorizontalAdd(a, b Vector4f) Vector4f {
	return kernels().HorizontalAdd(a, b)
}

// HorizontalSub returns (a.X-a.Y, a.Z-a.W, b.X-b.Y, b.Z-b.W).
func HorizontalSub(a, b Vector4f) Vector4f {
	return kernels().HorizontalSub(a, b)
}

// AddSub returns (a.X-b.X, a.Y+b.Y, a.Z-b.Z, a.W+b.W).
func AddSub(a, b Vector4f) Vector4f {
	return kernels().AddSub(a, b)
}

// DuplicateLow returns (v.X, v.X, v.Z, v.Z), the same lanes as
// Shuffle(v, MakeShuffle(0, 0, 2, 2)).
func DuplicateLow(v Vector4f) Vector4f {
	return kernels().DuplicateLow(v)
}

// DuplicateHigh returns (v.Y, v.Y, v.W, v.W).
func DuplicateHigh(v Vector4f) Vector4f {
	return kernels().DuplicateHigh(v)
}

// InterleaveLow returns (a.X, b.X, a.Y, b.Y).
func InterleaveLow(a, b Vector4f) Vector4f {
	return kernels().InterleaveLow(a, b)
}

// InterleaveHigh returns (a.Z, b.Z, a.W, b.W).
func InterleaveHigh(a, b Vector4f) Vector4f {
	return kernels().InterleaveHigh(a, b)
}

// Shuffle returns the vector whose lane d is v's lane sel.Source(d).
func Shuffle(v Vector4f, sel ShuffleSel) Vector4f {
	return kernels().Shuffle(v, uint8(sel))
}
