package testutil

import (
	"fmt"
	"math"
	"testing"
)

// LaneBits returns the raw IEEE-754 bit pattern of every lane.
func LaneBits(v [4]float32) [4]uint32 {
	return [4]uint32{
		math.Float32bits(v[0]),
		math.Float32bits(v[1]),
		math.Float32bits(v[2]),
		math.Float32bits(v[3]),
	}
}

// FromBits builds a vector from raw lane bit patterns.
func FromBits(b0, b1, b2, b3 uint32) [4]float32 {
	return [4]float32{
		math.Float32frombits(b0),
		math.Float32frombits(b1),
		math.Float32frombits(b2),
		math.Float32frombits(b3),
	}
}

// RequireBitsEqual fails t if any lane of got differs bit-for-bit from want.
func RequireBitsEqual(t *testing.T, got, want [4]float32) {
	t.Helper()
	if err := BitsDiff(got, want); err != nil {
		t.Fatal(err)
	}
}

// RequireLanesEqual fails t unless every lane pair is bit-identical or both
// lanes are NaN. Use it for arithmetic results, where the payload of a NaN
// produced from two NaN operands depends on operand order.
func RequireLanesEqual(t *testing.T, got, want [4]float32) {
	t.Helper()
	if err := LanesDiff(got, want); err != nil {
		t.Fatal(err)
	}
}

// BitsDiff returns an error describing the first lane whose bits differ.
func BitsDiff(got, want [4]float32) error {
	g, w := LaneBits(got), LaneBits(want)
	for i := range g {
		if g[i] != w[i] {
			return fmt.Errorf("lane %d: got %#08x (%v), want %#08x (%v)", i, g[i], got[i], w[i], want[i])
		}
	}
	return nil
}

// LanesDiff is BitsDiff with NaN lanes treated as equal to any other NaN.
func LanesDiff(got, want [4]float32) error {
	g, w := LaneBits(got), LaneBits(want)
	for i := range g {
		if isNaN(got[i]) && isNaN(want[i]) {
			continue
		}
		if g[i] != w[i] {
			return fmt.Errorf("lane %d: got %#08x (%v), want %#08x (%v)", i, g[i], got[i], w[i], want[i])
		}
	}
	return nil
}

func isNaN(f float32) bool { return f != f }
