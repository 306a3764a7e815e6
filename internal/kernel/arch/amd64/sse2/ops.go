//go:build amd64 && !purego

package sse2

// Assembly function declarations (implemented in ops_amd64.s).
// Arguments are passed as 16-byte values and loaded with MOVUPS, so the
// kernels do not depend on the alignment of the caller's copy.

func andPS(a, b [4]float32) [4]float32
func orPS(a, b [4]float32) [4]float32
func xorPS(a, b [4]float32) [4]float32
func andNotPS(a, b [4]float32) [4]float32

func addPS(a, b [4]float32) [4]float32
func subPS(a, b [4]float32) [4]float32
func mulPS(a, b [4]float32) [4]float32
func divPS(a, b [4]float32) [4]float32
func minPS(a, b [4]float32) [4]float32
func maxPS(a, b [4]float32) [4]float32

func sqrtPS(v [4]float32) [4]float32
func rcpPS(v [4]float32) [4]float32
func invSqrtPS(v [4]float32) [4]float32

func unpackLowPS(a, b [4]float32) [4]float32
func unpackHighPS(a, b [4]float32) [4]float32

func cmpEqPS(a, b [4]float32) [4]float32
func cmpLtPS(a, b [4]float32) [4]float32
func cmpLePS(a, b [4]float32) [4]float32
func cmpUnordPS(a, b [4]float32) [4]float32
func cmpNeqPS(a, b [4]float32) [4]float32
func cmpNltPS(a, b [4]float32) [4]float32
func cmpNlePS(a, b [4]float32) [4]float32
func cmpOrdPS(a, b [4]float32) [4]float32

func moveMaskPS(v [4]float32) uint8

//go:noescape
func prefetchT0(p *[4]float32)

//go:noescape
func prefetchT1(p *[4]float32)

//go:noescape
func prefetchT2(p *[4]float32)

//go:noescape
func prefetchNTA(p *[4]float32)
