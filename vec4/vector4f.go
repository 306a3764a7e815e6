package vec4

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// Vector4f is four float32 lanes (X, Y, Z, W) in 16 bytes.
//
// It is a plain value: two vectors with the same lane bits are
// interchangeable, and every operation returns a new vector.
type Vector4f [4]float32

// Lane indices.
const (
	LaneX = 0
	LaneY = 1
	LaneZ = 2
	LaneW = 3
)

// New returns the vector (x, y, z, w). Any float32 bit pattern is accepted.
func New(x, y, z, w float32) Vector4f {
	return Vector4f{x, y, z, w}
}

// Splat returns f in all four lanes.
func Splat(f float32) Vector4f {
	return Vector4f{f, f, f, f}
}

// FromBits builds a vector from raw IEEE-754 lane bit patterns.
func FromBits(bits [4]uint32) Vector4f {
	return Vector4f{
		math.Float32frombits(bits[0]),
		math.Float32frombits(bits[1]),
		math.Float32frombits(bits[2]),
		math.Float32frombits(bits[3]),
	}
}

// FromVec4 converts an x/image f32.Vec4. The layouts are identical.
func FromVec4(v f32.Vec4) Vector4f {
	return Vector4f(v)
}

// Vec4 returns v as an x/image f32.Vec4.
func (v Vector4f) Vec4() f32.Vec4 {
	return f32.Vec4(v)
}

// Bits returns the raw IEEE-754 bit pattern of every lane.
func (v Vector4f) Bits() [4]uint32 {
	return [4]uint32{
		math.Float32bits(v[0]),
		math.Float32bits(v[1]),
		math.Float32bits(v[2]),
		math.Float32bits(v[3]),
	}
}

// X returns lane X.
func (v Vector4f) X() float32 { return v[LaneX] }

// Y returns lane Y.
func (v Vector4f) Y() float32 { return v[LaneY] }

// Z returns lane Z.
func (v Vector4f) Z() float32 { return v[LaneZ] }

// W returns lane W.
func (v Vector4f) W() float32 { return v[LaneW] }

// SetX overwrites lane X; the other lanes keep their bits.
func (v *Vector4f) SetX(f float32) { v[LaneX] = f }

// SetY overwrites lane Y; the other lanes keep their bits.
func (v *Vector4f) SetY(f float32) { v[LaneY] = f }

// SetZ overwrites lane Z; the other lanes keep their bits.
func (v *Vector4f) SetZ(f float32) { v[LaneZ] = f }

// SetW overwrites lane W; the other lanes keep their bits.
func (v *Vector4f) SetW(f float32) { v[LaneW] = f }

// Lane returns lane i&3, so every index is valid.
func (v Vector4f) Lane(i int) float32 {
	return v[i&3]
}

// SetLane overwrites lane i&3.
func (v *Vector4f) SetLane(i int, f float32) {
	v[i&3] = f
}

// String formats the vector as (x, y, z, w).
func (v Vector4f) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v[0], v[1], v[2], v[3])
}
