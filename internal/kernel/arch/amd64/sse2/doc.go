// Package sse2 provides amd64 assembly kernels for the four-lane float vector
// built from SSE and SSE2 instructions (ANDPS, ADDPS, MINPS, SQRTPS, CMPPS,
// UNPCKLPS, MOVMSKPS, PREFETCHh).
//
// The kernels are only built with the amd64 && !purego constraint; other
// builds see an empty package.
package sse2
