package generic

import (
	"github.com/cwbudde/algo-simd/internal/cpu"
	"github.com/cwbudde/algo-simd/internal/kernel/registry"
)

// Entry returns the generic (pure Go) implementation table.
//
// Every operation is populated: generic is the reference semantics that all
// accelerated backends are tested against, and the fallback the registry uses
// for operations they leave out.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		// Bitwise operations
		And:    And,
		Or:     Or,
		Xor:    Xor,
		AndNot: AndNot,

		// Arithmetic operations
		Add:        Add,
		Sub:        Sub,
		Mul:        Mul,
		Div:        Div,
		Min:        Min,
		Max:        Max,
		Sqrt:       Sqrt,
		InvSqrt:    InvSqrt,
		Reciprocal: Reciprocal,

		// Cross-lane operations
		HorizontalAdd:  HorizontalAdd,
		HorizontalSub:  HorizontalSub,
		AddSub:         AddSub,
		DuplicateLow:   DuplicateLow,
		DuplicateHigh:  DuplicateHigh,
		InterleaveLow:  InterleaveLow,
		InterleaveHigh: InterleaveHigh,
		Shuffle:        Shuffle,

		// Comparisons
		CompareEqual:        CompareEqual,
		CompareLessThan:     CompareLessThan,
		CompareLessEqual:    CompareLessEqual,
		CompareNotEqual:     CompareNotEqual,
		CompareNotLessThan:  CompareNotLessThan,
		CompareNotLessEqual: CompareNotLessEqual,
		CompareUnordered:    CompareUnordered,
		CompareOrdered:      CompareOrdered,
		MoveMask:            MoveMask,

		// Cache hints
		PrefetchT0:  Prefetch,
		PrefetchT1:  Prefetch,
		PrefetchT2:  Prefetch,
		PrefetchNTA: Prefetch,
	}
}

// init registers the generic implementations with the kernel registry.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Global.Register(Entry())
}
