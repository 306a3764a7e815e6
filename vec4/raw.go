package vec4

import "encoding/binary"

// Raw128 is the 16 bytes shared by every vector type, in memory order.
// Multi-byte lanes are encoded in the machine's native byte order, matching
// what a SIMD register load of the same memory would see.
type Raw128 [16]byte

// Vector128 is implemented by Vector4f and its nine sibling types.
type Vector128 interface {
	Raw() Raw128
	Shape() LaneShape
}

// Lanes128 is the closed set of 16-byte vector types Reinterpret accepts.
type Lanes128 interface {
	Vector4f | Vector2d | Vector2l | Vector2ul | Vector4i | Vector4ui |
		Vector8s | Vector8us | Vector16sb | Vector16b

	Vector128
}

// Reinterpret returns v's 16 bytes viewed as T. No lane value is converted;
// Reinterpret[A](Reinterpret[B](a)) == a for every bit pattern.
func Reinterpret[T Lanes128](v Vector128) T {
	r := v.Raw()

	var out T
	switch p := any(&out).(type) {
	case *Vector4f:
		*p = Vector4fFromRaw(r)
	case *Vector2d:
		*p = Vector2dFromRaw(r)
	case *Vector2l:
		*p = Vector2lFromRaw(r)
	case *Vector2ul:
		*p = Vector2ulFromRaw(r)
	case *Vector4i:
		*p = Vector4iFromRaw(r)
	case *Vector4ui:
		*p = Vector4uiFromRaw(r)
	case *Vector8s:
		*p = Vector8sFromRaw(r)
	case *Vector8us:
		*p = Vector8usFromRaw(r)
	case *Vector16sb:
		*p = Vector16sbFromRaw(r)
	case *Vector16b:
		*p = Vector16bFromRaw(r)
	}
	return out
}

// LaneShape names a lane width and signedness of a 16-byte vector.
type LaneShape byte

const (
	ShapeF32x4 LaneShape = iota
	ShapeF64x2
	ShapeI64x2
	ShapeU64x2
	ShapeI32x4
	ShapeU32x4
	ShapeI16x8
	ShapeU16x8
	ShapeI8x16
	ShapeU8x16
)

// String implements fmt.Stringer.
func (s LaneShape) String() string {
	switch s {
	case ShapeF32x4:
		return "f32x4"
	case ShapeF64x2:
		return "f64x2"
	case ShapeI64x2:
		return "i64x2"
	case ShapeU64x2:
		return "u64x2"
	case ShapeI32x4:
		return "i32x4"
	case ShapeU32x4:
		return "u32x4"
	case ShapeI16x8:
		return "i16x8"
	case ShapeU16x8:
		return "u16x8"
	case ShapeI8x16:
		return "i8x16"
	case ShapeU8x16:
		return "u8x16"
	default:
		return "invalid"
	}
}

// LaneBits returns the width of one lane in bits, or 0 for an invalid shape.
func (s LaneShape) LaneBits() int {
	switch s {
	case ShapeF64x2, ShapeI64x2, ShapeU64x2:
		return 64
	case ShapeF32x4, ShapeI32x4, ShapeU32x4:
		return 32
	case ShapeI16x8, ShapeU16x8:
		return 16
	case ShapeI8x16, ShapeU8x16:
		return 8
	default:
		return 0
	}
}

// Lanes returns the number of lanes, or 0 for an invalid shape.
func (s LaneShape) Lanes() int {
	if b := s.LaneBits(); b != 0 {
		return 128 / b
	}
	return 0
}

func (r Raw128) uint64s() [2]uint64 {
	return [2]uint64{
		binary.NativeEndian.Uint64(r[0:]),
		binary.NativeEndian.Uint64(r[8:]),
	}
}

func (r Raw128) uint32s() [4]uint32 {
	var out [4]uint32
	for i := range out {
		out[i] = binary.NativeEndian.Uint32(r[4*i:])
	}
	return out
}

func (r Raw128) uint16s() [8]uint16 {
	var out [8]uint16
	for i := range out {
		out[i] = binary.NativeEndian.Uint16(r[2*i:])
	}
	return out
}

func rawFrom64(lanes [2]uint64) Raw128 {
	var r Raw128
	binary.NativeEndian.PutUint64(r[0:], lanes[0])
	binary.NativeEndian.PutUint64(r[8:], lanes[1])
	return r
}

func rawFrom32(lanes [4]uint32) Raw128 {
	var r Raw128
	for i, l := range lanes {
		binary.NativeEndian.PutUint32(r[4*i:], l)
	}
	return r
}

func rawFrom16(lanes [8]uint16) Raw128 {
	var r Raw128
	for i, l := range lanes {
		binary.NativeEndian.PutUint16(r[2*i:], l)
	}
	return r
}

// Raw returns the 16 bytes of v.
func (v Vector4f) Raw() Raw128 { return rawFrom32(v.Bits()) }

// Shape reports ShapeF32x4.
func (Vector4f) Shape() LaneShape { return ShapeF32x4 }

// Vector4fFromRaw views r as four float32 lanes.
func Vector4fFromRaw(r Raw128) Vector4f { return FromBits(r.uint32s()) }

// AsVector2d returns the bits of v viewed as a Vector2d.
func (v Vector4f) AsVector2d() Vector2d { return Vector2dFromRaw(v.Raw()) }

// AsVector2l returns the bits of v viewed as a Vector2l.
func (v Vector4f) AsVector2l() Vector2l { return Vector2lFromRaw(v.Raw()) }

// AsVector2ul returns the bits of v viewed as a Vector2ul.
func (v Vector4f) AsVector2ul() Vector2ul { return Vector2ulFromRaw(v.Raw()) }

// AsVector4i returns the bits of v viewed as a Vector4i.
func (v Vector4f) AsVector4i() Vector4i { return Vector4iFromRaw(v.Raw()) }

// AsVector4ui returns the bits of v viewed as a Vector4ui.
func (v Vector4f) AsVector4ui() Vector4ui { return Vector4uiFromRaw(v.Raw()) }

// AsVector8s returns the bits of v viewed as a Vector8s.
func (v Vector4f) AsVector8s() Vector8s { return Vector8sFromRaw(v.Raw()) }

// AsVector8us returns the bits of v viewed as a Vector8us.
func (v Vector4f) AsVector8us() Vector8us { return Vector8usFromRaw(v.Raw()) }

// AsVector16sb returns the bits of v viewed as a Vector16sb.
func (v Vector4f) AsVector16sb() Vector16sb { return Vector16sbFromRaw(v.Raw()) }

// AsVector16b returns the bits of v viewed as a Vector16b.
func (v Vector4f) AsVector16b() Vector16b { return Vector16bFromRaw(v.Raw()) }
