package testutil

import (
	"math"
	"testing"
)

func TestBitsDiffDistinguishesSignedZero(t *testing.T) {
	a := FromBits(PositiveZero, One, One, One)
	b := FromBits(NegativeZero, One, One, One)

	if a[0] != b[0] {
		t.Fatal("+0 and -0 should compare equal as floats")
	}
	if err := BitsDiff(a, b); err == nil {
		t.Fatal("expected BitsDiff to report the sign difference")
	}
}

func TestLanesDiffTreatsNaNsAsEqual(t *testing.T) {
	a := FromBits(QuietNaN, One, PayloadNaN, One)
	b := FromBits(NegativeNaN, One, QuietNaN, One)

	if err := LanesDiff(a, b); err != nil {
		t.Fatalf("LanesDiff: %v", err)
	}
	if err := BitsDiff(a, b); err == nil {
		t.Fatal("BitsDiff should see different NaN payloads")
	}
}

func TestLanesDiffReportsNaNAgainstNumber(t *testing.T) {
	a := FromBits(QuietNaN, One, One, One)
	b := FromBits(One, One, One, One)

	if err := LanesDiff(a, b); err == nil {
		t.Fatal("expected NaN vs 1.0 to differ")
	}
}

func TestLaneBitsRoundTrip(t *testing.T) {
	want := [4]uint32{SignalingNaN, NegativeZero, MaxDenormal, AllOnes}
	got := LaneBits(FromBits(want[0], want[1], want[2], want[3]))
	if got != want {
		t.Fatalf("LaneBits = %#x, want %#x", got, want)
	}
	if math.Float32bits(FromBits(One, 0, 0, 0)[0]) != One {
		t.Fatal("FromBits lost lane 0")
	}
}
