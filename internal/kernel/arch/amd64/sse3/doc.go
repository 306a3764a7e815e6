// Package sse3 provides amd64 assembly kernels for the vector operations that
// map onto SSE3 instructions: HADDPS, HSUBPS, ADDSUBPS, MOVSLDUP, MOVSHDUP.
package sse3
