package registry

import (
	"slices"
	"testing"

	"github.com/cwbudde/algo-simd/internal/cpu"
)

func dummyBinary(tag float32) BinaryFn {
	return func(a, b Vec) Vec { return Vec{tag, tag, tag, tag} }
}

func dummyUnary(tag float32) UnaryFn {
	return func(v Vec) Vec { return Vec{tag, tag, tag, tag} }
}

func TestOpRegistry_Register(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Add: dummyBinary(0)})
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10, Add: dummyBinary(1)})

	entries := reg.ListEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "sse2" {
		t.Errorf("expected highest priority first, got %q", entries[0].Name)
	}

	reg.Reset()
	if n := len(reg.ListEntries()); n != 0 {
		t.Errorf("expected empty registry after Reset, got %d entries", n)
	}
}

func TestOpRegistry_Lookup_Priority(t *testing.T) {
	reg := &OpRegistry{}

	// Register out of order to test sorting
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "sse3", SIMDLevel: cpu.SIMDSSE3, Priority: 12})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"SSE3 available - select SSE3", cpu.Features{HasSSE2: true, HasSSE3: true}, "sse3"},
		{"SSE2 only - select SSE2", cpu.Features{HasSSE2: true}, "sse2"},
		{"NEON only - select generic", cpu.Features{HasNEON: true}, "generic"},
		{"No SIMD - select generic", cpu.Features{}, "generic"},
		{"ForceGeneric - select generic", cpu.Features{HasSSE2: true, HasSSE3: true, ForceGeneric: true}, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestOpRegistry_Lookup_Empty(t *testing.T) {
	reg := &OpRegistry{}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Errorf("expected nil from empty registry, got %q", entry.Name)
	}
	if _, ok := reg.Resolve(cpu.Features{}); ok {
		t.Error("expected Resolve to fail on empty registry")
	}
}

func TestOpRegistry_Resolve_FillsGaps(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{
		Name: "generic", SIMDLevel: cpu.SIMDNone,
		Add: dummyBinary(0), Sub: dummyBinary(0), Sqrt: dummyUnary(0), HorizontalAdd: dummyBinary(0),
	})
	reg.Register(OpEntry{
		Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10,
		Add: dummyBinary(1), Sqrt: dummyUnary(1),
	})
	reg.Register(OpEntry{
		Name: "sse3", SIMDLevel: cpu.SIMDSSE3, Priority: 12,
		HorizontalAdd: dummyBinary(2),
	})

	res, ok := reg.Resolve(cpu.Features{HasSSE2: true, HasSSE3: true})
	if !ok {
		t.Fatal("Resolve failed")
	}
	if res.Name != "sse3+sse2+generic" {
		t.Errorf("Name = %q, want %q", res.Name, "sse3+sse2+generic")
	}
	if res.SIMDLevel != cpu.SIMDSSE3 || res.Priority != 12 {
		t.Errorf("level/priority = %v/%d, want SSE3/12", res.SIMDLevel, res.Priority)
	}

	wantSources := map[string]string{
		"Add":           "sse2",
		"Sub":           "generic",
		"Sqrt":          "sse2",
		"HorizontalAdd": "sse3",
	}
	for op, want := range wantSources {
		if got := res.Sources[op]; got != want {
			t.Errorf("Sources[%s] = %q, want %q", op, got, want)
		}
	}

	if got := res.Add(Vec{}, Vec{})[0]; got != 1 {
		t.Errorf("Add came from tag %v, want sse2 (1)", got)
	}
	if got := res.HorizontalAdd(Vec{}, Vec{})[0]; got != 2 {
		t.Errorf("HorizontalAdd came from tag %v, want sse3 (2)", got)
	}
	if got := res.Sub(Vec{}, Vec{})[0]; got != 0 {
		t.Errorf("Sub came from tag %v, want generic (0)", got)
	}
}

func TestOpRegistry_Resolve_SkipsIncompatible(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Add: dummyBinary(0)})
	reg.Register(OpEntry{Name: "sse3", SIMDLevel: cpu.SIMDSSE3, Priority: 12, Add: dummyBinary(2)})

	res, ok := reg.Resolve(cpu.Features{HasSSE2: true})
	if !ok {
		t.Fatal("Resolve failed")
	}
	if res.Name != "generic" || res.Sources["Add"] != "generic" {
		t.Errorf("resolved %q with Add from %q, want generic", res.Name, res.Sources["Add"])
	}
}

func TestOpRegistry_Resolve_DoesNotMutateEntries(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Add: dummyBinary(0), Sub: dummyBinary(0)})
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10, Add: dummyBinary(1)})

	if _, ok := reg.Resolve(cpu.Features{HasSSE2: true}); !ok {
		t.Fatal("Resolve failed")
	}

	sse2 := reg.Lookup(cpu.Features{HasSSE2: true})
	if sse2.Sub != nil {
		t.Error("Resolve filled Sub into the registered sse2 entry")
	}
}

func TestOpEntry_ProvidedMissing(t *testing.T) {
	e := OpEntry{And: dummyBinary(0), Sqrt: dummyUnary(0), MoveMask: func(Vec) uint8 { return 0 }}

	if got, want := e.Provided(), []string{"And", "Sqrt", "MoveMask"}; !slices.Equal(got, want) {
		t.Errorf("Provided() = %v, want %v", got, want)
	}

	missing := e.Missing()
	if len(missing)+3 != len((&OpEntry{}).Missing()) {
		t.Errorf("Missing() has %d names, want total minus 3", len(missing))
	}
	if slices.Contains(missing, "And") || !slices.Contains(missing, "Shuffle") || !slices.Contains(missing, "PrefetchNTA") {
		t.Errorf("Missing() = %v", missing)
	}
}

func TestSIMDLevel_String(t *testing.T) {
	tests := []struct {
		level cpu.SIMDLevel
		want  string
	}{
		{cpu.SIMDNone, "None"},
		{cpu.SIMDSSE2, "SSE2"},
		{cpu.SIMDSSE3, "SSE3"},
		{cpu.SIMDLevel(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCPU_Supports(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		level    cpu.SIMDLevel
		want     bool
	}{
		{"Generic always supported", cpu.Features{}, cpu.SIMDNone, true},
		{"SSE2 supported when HasSSE2", cpu.Features{HasSSE2: true}, cpu.SIMDSSE2, true},
		{"SSE2 not supported without HasSSE2", cpu.Features{}, cpu.SIMDSSE2, false},
		{"SSE3 supported when HasSSE3", cpu.Features{HasSSE2: true, HasSSE3: true}, cpu.SIMDSSE3, true},
		{"SSE3 not implied by SSE2", cpu.Features{HasSSE2: true}, cpu.SIMDSSE3, false},
		{"SSE3 requires SSE2", cpu.Features{HasSSE3: true}, cpu.SIMDSSE3, false},
		{"Unknown level unsupported", cpu.Features{HasSSE2: true, HasSSE3: true, HasAVX2: true}, cpu.SIMDLevel(99), false},
		{"ForceGeneric blocks all SIMD", cpu.Features{HasSSE2: true, HasSSE3: true, ForceGeneric: true}, cpu.SIMDSSE3, false},
		{"ForceGeneric allows Generic", cpu.Features{ForceGeneric: true}, cpu.SIMDNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cpu.Supports(tt.features, tt.level); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
