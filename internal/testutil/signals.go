package testutil

import (
	"math"
	"math/rand"
)

// Lane bit patterns every kernel must handle.
const (
	PositiveZero  uint32 = 0x00000000
	NegativeZero  uint32 = 0x80000000
	One           uint32 = 0x3F800000
	MinusOne      uint32 = 0xBF800000
	PositiveInf   uint32 = 0x7F800000
	NegativeInf   uint32 = 0xFF800000
	QuietNaN      uint32 = 0x7FC00000
	PayloadNaN    uint32 = 0x7FC00001
	NegativeNaN   uint32 = 0xFFC00000
	SignalingNaN  uint32 = 0x7F800001
	MinDenormal   uint32 = 0x00000001
	MaxDenormal   uint32 = 0x007FFFFF
	MinNormal     uint32 = 0x00800000
	MaxFinite     uint32 = 0x7F7FFFFF
	NegMaxFinite  uint32 = 0xFF7FFFFF
	AllOnes       uint32 = 0xFFFFFFFF
	AlternateBits uint32 = 0xAAAAAAAA
)

// SpecialPatterns lists the edge-case lane patterns above.
func SpecialPatterns() []uint32 {
	return []uint32{
		PositiveZero, NegativeZero, One, MinusOne,
		PositiveInf, NegativeInf,
		QuietNaN, PayloadNaN, NegativeNaN, SignalingNaN,
		MinDenormal, MaxDenormal, MinNormal, MaxFinite, NegMaxFinite,
		AllOnes, AlternateBits,
	}
}

// BitPatterns returns a deterministic corpus of vectors: every special pattern
// paired with its neighbors, followed by count random vectors drawn from seed.
// Random lanes mix raw 32-bit patterns with ordinary finite values so that both
// bitwise and arithmetic paths get exercised.
func BitPatterns(seed int64, count int) [][4]float32 {
	special := SpecialPatterns()
	out := make([][4]float32, 0, len(special)+count)

	for i := range special {
		out = append(out, FromBits(
			special[i],
			special[(i+1)%len(special)],
			special[(i+5)%len(special)],
			special[(i+11)%len(special)],
		))
	}

	rng := rand.New(rand.NewSource(seed))
	for range count {
		var v [4]float32
		for j := range v {
			switch rng.Intn(4) {
			case 0:
				v[j] = math.Float32frombits(rng.Uint32())
			case 1:
				v[j] = math.Float32frombits(special[rng.Intn(len(special))])
			default:
				v[j] = float32((rng.Float64()*2 - 1) * 1000)
			}
		}
		out = append(out, v)
	}
	return out
}
