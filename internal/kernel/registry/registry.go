// Package registry provides the backend registry for four-lane vector kernels.
//
// Several implementation variants (generic, SSE2, SSE3, ...) coexist. Each
// registers an OpEntry from an init() function; the vec4 package resolves the
// best kernel for every operation once, based on detected CPU features.
//
// A backend does not have to implement every operation. Resolve fills the gaps
// from the next compatible backend down the priority order, ending at the
// generic fallback, so a partial accelerated backend is always usable.
package registry

import (
	"strings"
	"sync"

	"github.com/cwbudde/algo-simd/internal/cpu"
)

// Vec is the kernel-level lane layout: four float32 lanes, X at index 0.
type Vec = [4]float32

// BinaryFn combines two vectors lane by lane (or pairwise for horizontal ops).
type BinaryFn func(a, b Vec) Vec

// UnaryFn maps one vector to another.
type UnaryFn func(v Vec) Vec

// ShuffleFn permutes lanes according to a 2-bit-per-lane selector.
type ShuffleFn func(v Vec, sel uint8) Vec

// MaskFn extracts one bit per lane from a vector.
type MaskFn func(v Vec) uint8

// PrefetchFn hints the memory system about an upcoming access to p.
type PrefetchFn func(p *Vec)

// OpEntry represents a registered implementation variant.
//
// Each entry contains typed function pointers for the supported operations at
// a specific SIMD level. Nil fields mean "not implemented here".
type OpEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "sse2").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - SSE3: 12
	Priority int

	// Bitwise operations on raw lane bits.
	And    BinaryFn
	Or     BinaryFn
	Xor    BinaryFn
	AndNot BinaryFn // (^a) & b

	// IEEE-754 single-precision arithmetic.
	Add BinaryFn
	Sub BinaryFn
	Mul BinaryFn
	Div BinaryFn

	// Min and Max return the second operand when either lane is NaN.
	Min BinaryFn
	Max BinaryFn

	Sqrt       UnaryFn
	InvSqrt    UnaryFn
	Reciprocal UnaryFn

	// Cross-lane operations.
	HorizontalAdd  BinaryFn
	HorizontalSub  BinaryFn
	AddSub         BinaryFn
	DuplicateLow   UnaryFn
	DuplicateHigh  UnaryFn
	InterleaveLow  BinaryFn
	InterleaveHigh BinaryFn
	Shuffle        ShuffleFn

	// Comparisons produce all-ones or all-zero lanes.
	CompareEqual        BinaryFn
	CompareLessThan     BinaryFn
	CompareLessEqual    BinaryFn
	CompareNotEqual     BinaryFn
	CompareNotLessThan  BinaryFn
	CompareNotLessEqual BinaryFn
	CompareUnordered    BinaryFn
	CompareOrdered      BinaryFn
	MoveMask            MaskFn

	// Cache hints. They never change program state.
	PrefetchT0  PrefetchFn
	PrefetchT1  PrefetchFn
	PrefetchT2  PrefetchFn
	PrefetchNTA PrefetchFn
}

// slot is a type-erased view of one operation field of an OpEntry.
type slot struct {
	name     string
	binary   *BinaryFn
	unary    *UnaryFn
	shuffle  *ShuffleFn
	mask     *MaskFn
	prefetch *PrefetchFn
}

func (s slot) present() bool {
	switch {
	case s.binary != nil:
		return *s.binary != nil
	case s.unary != nil:
		return *s.unary != nil
	case s.shuffle != nil:
		return *s.shuffle != nil
	case s.mask != nil:
		return *s.mask != nil
	default:
		return *s.prefetch != nil
	}
}

// fillFrom copies src's operation into s if s is empty and src has one.
func (s slot) fillFrom(src slot) bool {
	if s.present() || !src.present() {
		return false
	}
	switch {
	case s.binary != nil:
		*s.binary = *src.binary
	case s.unary != nil:
		*s.unary = *src.unary
	case s.shuffle != nil:
		*s.shuffle = *src.shuffle
	case s.mask != nil:
		*s.mask = *src.mask
	default:
		*s.prefetch = *src.prefetch
	}
	return true
}

// slots lists every operation field in declaration order.
func (e *OpEntry) slots() []slot {
	return []slot{
		{name: "And", binary: &e.And},
		{name: "Or", binary: &e.Or},
		{name: "Xor", binary: &e.Xor},
		{name: "AndNot", binary: &e.AndNot},
		{name: "Add", binary: &e.Add},
		{name: "Sub", binary: &e.Sub},
		{name: "Mul", binary: &e.Mul},
		{name: "Div", binary: &e.Div},
		{name: "Min", binary: &e.Min},
		{name: "Max", binary: &e.Max},
		{name: "Sqrt", unary: &e.Sqrt},
		{name: "InvSqrt", unary: &e.InvSqrt},
		{name: "Reciprocal", unary: &e.Reciprocal},
		{name: "HorizontalAdd", binary: &e.HorizontalAdd},
		{name: "HorizontalSub", binary: &e.HorizontalSub},
		{name: "AddSub", binary: &e.AddSub},
		{name: "DuplicateLow", unary: &e.DuplicateLow},
		{name: "DuplicateHigh", unary: &e.DuplicateHigh},
		{name: "InterleaveLow", binary: &e.InterleaveLow},
		{name: "InterleaveHigh", binary: &e.InterleaveHigh},
		{name: "Shuffle", shuffle: &e.Shuffle},
		{name: "CompareEqual", binary: &e.CompareEqual},
		{name: "CompareLessThan", binary: &e.CompareLessThan},
		{name: "CompareLessEqual", binary: &e.CompareLessEqual},
		{name: "CompareNotEqual", binary: &e.CompareNotEqual},
		{name: "CompareNotLessThan", binary: &e.CompareNotLessThan},
		{name: "CompareNotLessEqual", binary: &e.CompareNotLessEqual},
		{name: "CompareUnordered", binary: &e.CompareUnordered},
		{name: "CompareOrdered", binary: &e.CompareOrdered},
		{name: "MoveMask", mask: &e.MoveMask},
		{name: "PrefetchT0", prefetch: &e.PrefetchT0},
		{name: "PrefetchT1", prefetch: &e.PrefetchT1},
		{name: "PrefetchT2", prefetch: &e.PrefetchT2},
		{name: "PrefetchNTA", prefetch: &e.PrefetchNTA},
	}
}

// Provided returns the names of the operations this entry implements.
func (e *OpEntry) Provided() []string {
	var names []string
	for _, s := range e.slots() {
		if s.present() {
			names = append(names, s.name)
		}
	}
	return names
}

// Missing returns the names of the operations this entry leaves nil.
func (e *OpEntry) Missing() []string {
	var names []string
	for _, s := range e.slots() {
		if !s.present() {
			names = append(names, s.name)
		}
	}
	return names
}

// Resolution records which backend supplied each operation of a resolved entry.
type Resolution struct {
	OpEntry

	// Sources maps an operation name to the backend name that implements it.
	Sources map[string]string
}

// OpRegistry manages the registration and lookup of implementation variants.
//
// Implementations register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority implementation compatible with the current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the vec4 package.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// This function is typically called from init() functions in architecture-specific
// implementation packages. It is safe to call concurrently, but all registrations
// should complete before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best implementation variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU, or nil if no
// compatible implementation is registered (which should never happen if a
// generic fallback is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Resolve builds a complete operation table for the given CPU features.
//
// The highest-priority compatible entry wins for every operation it provides;
// each remaining operation comes from the next compatible entry that has it.
// The resolved Name joins the contributing backends with "+". Resolve returns
// false if no compatible entry exists. Operations no backend provides stay nil
// and are reported by Missing.
func (r *OpRegistry) Resolve(features cpu.Features) (Resolution, bool) {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var res Resolution
	res.Sources = make(map[string]string)

	var used []string
	found := false
	dst := res.slots()

	for i := range r.entries {
		entry := &r.entries[i]
		if !cpu.Supports(features, entry.SIMDLevel) {
			continue
		}
		if !found {
			res.SIMDLevel = entry.SIMDLevel
			res.Priority = entry.Priority
			found = true
		}

		contributed := false
		for j, src := range entry.slots() {
			if dst[j].fillFrom(src) {
				res.Sources[src.name] = entry.Name
				contributed = true
			}
		}
		if contributed {
			used = append(used, entry.Name)
		}
	}

	res.Name = strings.Join(used, "+")
	return res, found
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Simple insertion sort (registry holds a handful of entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
