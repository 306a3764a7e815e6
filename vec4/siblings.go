package vec4

import "math"

// Sibling vector types: the same 16 bytes as Vector4f under another lane
// layout. Each converts to and from Raw128 and Vector4f without touching a
// single bit.
type (
	Vector2d   [2]float64 // two float64 lanes
	Vector2l   [2]int64   // two int64 lanes
	Vector2ul  [2]uint64  // two uint64 lanes
	Vector4i   [4]int32   // four int32 lanes
	Vector4ui  [4]uint32  // four uint32 lanes
	Vector8s   [8]int16   // eight int16 lanes
	Vector8us  [8]uint16  // eight uint16 lanes
	Vector16sb [16]int8   // sixteen int8 lanes
	Vector16b  [16]uint8  // sixteen uint8 lanes
)

// Raw returns the 16 bytes of v.
func (v Vector2d) Raw() Raw128 {
	return rawFrom64([2]uint64{math.Float64bits(v[0]), math.Float64bits(v[1])})
}

// Shape reports ShapeF64x2.
func (Vector2d) Shape() LaneShape { return ShapeF64x2 }

// AsVector4f returns the bits of v viewed as a Vector4f.
func (v Vector2d) AsVector4f() Vector4f { return Vector4fFromRaw(v.Raw()) }

// Vector2dFromRaw views r as two float64 lanes.
func Vector2dFromRaw(r Raw128) Vector2d {
	u := r.uint64s()
	return Vector2d{math.Float64frombits(u[0]), math.Float64frombits(u[1])}
}

// Raw returns the 16 bytes of v.
func (v Vector2l) Raw() Raw128 { return rawFrom64([2]uint64{uint64(v[0]), uint64(v[1])}) }

// Shape reports ShapeI64x2.
func (Vector2l) Shape() LaneShape { return ShapeI64x2 }

// AsVector4f returns the bits of v viewed as a Vector4f.
func (v Vector2l) AsVector4f() Vector4f { return Vector4fFromRaw(v.Raw()) }

// Vector2lFromRaw views r as two int64 lanes.
func Vector2lFromRaw(r Raw128) Vector2l {
	u := r.uint64s()
	return Vector2l{int64(u[0]), int64(u[1])}
}

// Raw returns the 16 bytes of v.
func (v Vector2ul) Raw() Raw128 { return rawFrom64(v) }

// Shape reports ShapeU64x2.
func (Vector2ul) Shape() LaneShape { return ShapeU64x2 }

// AsVector4f returns the bits of v viewed as a Vector4f.
func (v Vector2ul) AsVector4f() Vector4f { return Vector4fFromRaw(v.Raw()) }

// Vector2ulFromRaw views r as two uint64 lanes.
func Vector2ulFromRaw(r Raw128) Vector2ul { return r.uint64s() }

// Raw returns the 16 bytes of v.
func (v Vector4i) Raw() Raw128 {
	var u [4]uint32
	for i, l := range v {
		u[i] = uint32(l)
	}
	return rawFrom32(u)
}

// Shape reports ShapeI32x4.
func (Vector4i) Shape() LaneShape { return ShapeI32x4 }

// AsVector4f returns the bits of v viewed as a Vector4f.
func (v Vector4i) AsVector4f() Vector4f { return Vector4fFromRaw(v.Raw()) }

// Vector4iFromRaw views r as four int32 lanes.
func Vector4iFromRaw(r Raw128) Vector4i {
	var v Vector4i
	for i, l := range r.uint32s() {
		v[i] = int32(l)
	}
	return v
}

// Raw returns the 16 bytes of v.
func (v Vector4ui) Raw() Raw128 { return rawFrom32(v) }

// Shape reports ShapeU32x4.
func (Vector4ui) Shape() LaneShape { return ShapeU32x4 }

// AsVector4f returns the bits of v viewed as a Vector4f.
func (v Vector4ui) AsVector4f() Vector4f { return Vector4fFromRaw(v.Raw()) }

// Vector4uiFromRaw views r as four uint32 lanes.
func Vector4uiFromRaw(r Raw128) Vector4ui { return r.uint32s() }

// Raw returns the 16 bytes of v.
func (v Vector8s) Raw() Raw128 {
	var u [8]uint16
	for i, l := range v {
		u[i] = uint16(l)
	}
	return rawFrom16(u)
}

// Shape reports ShapeI16x8.
func (Vector8s) Shape() LaneShape { return ShapeI16x8 }

// AsVector4f returns the bits of v viewed as a Vector4f.
func (v Vector8s) AsVector4f() Vector4f { return Vector4fFromRaw(v.Raw()) }

// Vector8sFromRaw views r as eight int16 lanes.
func Vector8sFromRaw(r Raw128) Vector8s {
	var v Vector8s
	for i, l := range r.uint16s() {
		v[i] = int16(l)
	}
	return v
}

// Raw returns the 16 bytes of v.
func (v Vector8us) Raw() Raw128 { return rawFrom16(v) }

// Shape reports ShapeU16x8.
func (Vector8us) Shape() LaneShape { return ShapeU16x8 }

// AsVector4f returns the bits of v viewed as a Vector4f.
func (v Vector8us) AsVector4f() Vector4f { return Vector4fFromRaw(v.Raw()) }

// Vector8usFromRaw views r as eight uint16 lanes.
func Vector8usFromRaw(r Raw128) Vector8us { return r.uint16s() }

// Raw returns the 16 bytes of v.
func (v Vector16sb) Raw() Raw128 {
	var r Raw128
	for i, l := range v {
		r[i] = byte(l)
	}
	return r
}

// Shape reports ShapeI8x16.
func (Vector16sb) Shape() LaneShape { return ShapeI8x16 }

// AsVector4f returns the bits of v viewed as a Vector4f.
func (v Vector16sb) AsVector4f() Vector4f { return Vector4fFromRaw(v.Raw()) }

// Vector16sbFromRaw views r as sixteen int8 lanes.
func Vector16sbFromRaw(r Raw128) Vector16sb {
	var v Vector16sb
	for i, b := range r {
		v[i] = int8(b)
	}
	return v
}

// Raw returns the 16 bytes of v.
func (v Vector16b) Raw() Raw128 { return Raw128(v) }

// Shape reports ShapeU8x16.
func (Vector16b) Shape() LaneShape { return ShapeU8x16 }

// AsVector4f returns the bits of v viewed as a Vector4f.
func (v Vector16b) AsVector4f() Vector4f { return Vector4fFromRaw(v.Raw()) }

// Vector16bFromRaw views r as sixteen uint8 lanes.
func Vector16bFromRaw(r Raw128) Vector16b { return Vector16b(r) }
