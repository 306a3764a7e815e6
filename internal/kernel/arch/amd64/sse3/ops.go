//go:build amd64 && !purego

package sse3

// Assembly function declarations (implemented in ops_amd64.s)

func haddPS(a, b [4]float32) [4]float32
func hsubPS(a, b [4]float32) [4]float32
func addSubPS(a, b [4]float32) [4]float32
func dupLowPS(v [4]float32) [4]float32
func dupHighPS(v [4]float32) [4]float32
