package vec4

import (
	"testing"
	"unsafe"
)

func TestLayoutSize(t *testing.T) {
	tests := []struct {
		name string
		size uintptr
	}{
		{"Vector4f", unsafe.Sizeof(Vector4f{})},
		{"Vector2d", unsafe.Sizeof(Vector2d{})},
		{"Vector2l", unsafe.Sizeof(Vector2l{})},
		{"Vector2ul", unsafe.Sizeof(Vector2ul{})},
		{"Vector4i", unsafe.Sizeof(Vector4i{})},
		{"Vector4ui", unsafe.Sizeof(Vector4ui{})},
		{"Vector8s", unsafe.Sizeof(Vector8s{})},
		{"Vector8us", unsafe.Sizeof(Vector8us{})},
		{"Vector16sb", unsafe.Sizeof(Vector16sb{})},
		{"Vector16b", unsafe.Sizeof(Vector16b{})},
		{"Raw128", unsafe.Sizeof(Raw128{})},
	}
	for _, tt := range tests {
		if tt.size != 16 {
			t.Errorf("unsafe.Sizeof(%s) = %d, want 16", tt.name, tt.size)
		}
	}

	var v Vector4f
	offsets := []uintptr{
		uintptr(unsafe.Pointer(&v[LaneX])) - uintptr(unsafe.Pointer(&v)),
		uintptr(unsafe.Pointer(&v[LaneY])) - uintptr(unsafe.Pointer(&v)),
		uintptr(unsafe.Pointer(&v[LaneZ])) - uintptr(unsafe.Pointer(&v)),
		uintptr(unsafe.Pointer(&v[LaneW])) - uintptr(unsafe.Pointer(&v)),
	}
	for i, off := range offsets {
		if off != uintptr(4*i) {
			t.Errorf("lane %d at offset %d, want %d", i, off, 4*i)
		}
	}
}

// memoryBytes returns the in-memory bytes of a 16-byte value.
func memoryBytes[T any](v *T) Raw128 {
	return *(*Raw128)(unsafe.Pointer(v))
}

func TestRawMatchesMemory(t *testing.T) {
	v := bits(0x7FC00001, 0x80000000, 0x12345678, 0xFF800000)
	if got, want := v.Raw(), memoryBytes(&v); got != want {
		t.Fatalf("Vector4f.Raw() = %x, memory = %x", got, want)
	}

	d, l, ul := v.AsVector2d(), v.AsVector2l(), v.AsVector2ul()
	i, ui := v.AsVector4i(), v.AsVector4ui()
	s, us := v.AsVector8s(), v.AsVector8us()
	sb, b := v.AsVector16sb(), v.AsVector16b()

	checks := []struct {
		name     string
		raw, mem Raw128
	}{
		{"Vector2d", d.Raw(), memoryBytes(&d)},
		{"Vector2l", l.Raw(), memoryBytes(&l)},
		{"Vector2ul", ul.Raw(), memoryBytes(&ul)},
		{"Vector4i", i.Raw(), memoryBytes(&i)},
		{"Vector4ui", ui.Raw(), memoryBytes(&ui)},
		{"Vector8s", s.Raw(), memoryBytes(&s)},
		{"Vector8us", us.Raw(), memoryBytes(&us)},
		{"Vector16sb", sb.Raw(), memoryBytes(&sb)},
		{"Vector16b", b.Raw(), memoryBytes(&b)},
	}

	want := memoryBytes(&v)
	for _, c := range checks {
		if c.raw != c.mem {
			t.Errorf("%s: Raw() = %x, memory = %x", c.name, c.raw, c.mem)
		}
		if c.mem != want {
			t.Errorf("%s: memory %x differs from source Vector4f %x", c.name, c.mem, want)
		}
	}
}
