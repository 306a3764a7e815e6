//go:build amd64 && !purego

package sse2

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-simd/internal/kernel/conformance"
	"github.com/cwbudde/algo-simd/internal/testutil"
)

func TestConformance(t *testing.T) {
	conformance.Run(t, Entry())
}

func TestMinMaxSecondOperandOnNaN(t *testing.T) {
	nan := testutil.FromBits(testutil.PayloadNaN, testutil.PayloadNaN, testutil.One, testutil.NegativeZero)
	one := testutil.FromBits(testutil.One, testutil.One, testutil.PayloadNaN, testutil.PositiveZero)

	testutil.RequireBitsEqual(t, minPS(nan, one), testutil.FromBits(testutil.One, testutil.One, testutil.PayloadNaN, testutil.PositiveZero))
	testutil.RequireBitsEqual(t, maxPS(nan, one), testutil.FromBits(testutil.One, testutil.One, testutil.PayloadNaN, testutil.PositiveZero))
}

func TestInvSqrtPSSingleRounding(t *testing.T) {
	for b := math.Float32bits(1e-3); b < math.Float32bits(1e3); b += 4 * 1009 {
		var v [4]float32
		for i := range v {
			v[i] = math.Float32frombits(b + uint32(i)*1009)
		}
		got := invSqrtPS(v)
		for i, x := range v {
			want := float32(1 / math.Sqrt(float64(x)))
			if math.Float32bits(got[i]) != math.Float32bits(want) {
				t.Fatalf("invSqrtPS lane %d (%v) = %v, want %v", i, x, got[i], want)
			}
		}
	}
}

func TestMoveMaskPS(t *testing.T) {
	v := testutil.FromBits(testutil.NegativeZero, testutil.One, testutil.NegativeInf, testutil.AllOnes)
	if got := moveMaskPS(v); got != 0b1101 {
		t.Errorf("moveMaskPS = %04b, want 1101", got)
	}
}

func BenchmarkAddPS(b *testing.B) {
	x := [4]float32{1, 2, 3, 4}
	y := [4]float32{5, 6, 7, 8}
	b.ReportAllocs()
	for b.Loop() {
		x = addPS(x, y)
	}
	_ = x
}
