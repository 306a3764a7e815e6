//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-simd/internal/cpu"
	"github.com/cwbudde/algo-simd/internal/kernel/registry"
)

// Entry returns the SSE2 implementation table.
//
// Horizontal operations, AddSub and the duplicates need SSE3 and live in the
// sse3 package. Shuffle is left to the generic kernel: SHUFPS only takes an
// immediate selector.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		And:    andPS,
		Or:     orPS,
		Xor:    xorPS,
		AndNot: andNotPS,

		Add:        addPS,
		Sub:        subPS,
		Mul:        mulPS,
		Div:        divPS,
		Min:        minPS,
		Max:        maxPS,
		Sqrt:       sqrtPS,
		InvSqrt:    invSqrtPS,
		Reciprocal: rcpPS,

		InterleaveLow:  unpackLowPS,
		InterleaveHigh: unpackHighPS,

		CompareEqual:        cmpEqPS,
		CompareLessThan:     cmpLtPS,
		CompareLessEqual:    cmpLePS,
		CompareNotEqual:     cmpNeqPS,
		CompareNotLessThan:  cmpNltPS,
		CompareNotLessEqual: cmpNlePS,
		CompareUnordered:    cmpUnordPS,
		CompareOrdered:      cmpOrdPS,
		MoveMask:            moveMaskPS,

		PrefetchT0:  prefetchT0,
		PrefetchT1:  prefetchT1,
		PrefetchT2:  prefetchT2,
		PrefetchNTA: prefetchNTA,
	}
}

// init registers the SSE2 kernels with the kernel registry.
//
// SSE2 is part of the x86-64 baseline, so it's available on all amd64 CPUs.
//
// Priority: 10 (preferred over generic, lower than SSE3)
func init() {
	registry.Global.Register(Entry())
}
