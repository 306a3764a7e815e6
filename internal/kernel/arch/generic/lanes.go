package generic

// HorizontalAdd sums adjacent lane pairs: (a0+a1, a2+a3, b0+b1, b2+b3).
func HorizontalAdd(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] + a[1], a[2] + a[3], b[0] + b[1], b[2] + b[3]}
}

// HorizontalSub subtracts adjacent lane pairs: (a0-a1, a2-a3, b0-b1, b2-b3).
func HorizontalSub(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] - a[1], a[2] - a[3], b[0] - b[1], b[2] - b[3]}
}

// AddSub subtracts in even lanes and adds in odd lanes.
func AddSub(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] - b[0], a[1] + b[1], a[2] - b[2], a[3] + b[3]}
}

// DuplicateLow returns (v0, v0, v2, v2).
func DuplicateLow(v [4]float32) [4]float32 {
	return [4]float32{v[0], v[0], v[2], v[2]}
}

// DuplicateHigh returns (v1, v1, v3, v3).
func DuplicateHigh(v [4]float32) [4]float32 {
	return [4]float32{v[1], v[1], v[3], v[3]}
}

// InterleaveLow returns (a0, b0, a1, b1).
func InterleaveLow(a, b [4]float32) [4]float32 {
	return [4]float32{a[0], b[0], a[1], b[1]}
}

// InterleaveHigh returns (a2, b2, a3, b3).
func InterleaveHigh(a, b [4]float32) [4]float32 {
	return [4]float32{a[2], b[2], a[3], b[3]}
}

// Shuffle sets destination lane d to v[(sel >> 2d) & 3]. Every selector value
// is valid.
func Shuffle(v [4]float32, sel uint8) [4]float32 {
	return [4]float32{
		v[sel&3],
		v[(sel>>2)&3],
		v[(sel>>4)&3],
		v[(sel>>6)&3],
	}
}
