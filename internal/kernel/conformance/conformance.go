// Package conformance holds the shared test suite every kernel backend must
// pass. Each operation an entry provides is compared against the generic
// reference over a corpus of edge-case and random bit patterns.
//
// Results of bitwise, selection, permutation and comparison operations must
// match bit for bit. Arithmetic results must match bit for bit unless both
// lanes are NaN.
package conformance

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-simd/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-simd/internal/kernel/registry"
	"github.com/cwbudde/algo-simd/internal/testutil"
)

// DefaultSeed and DefaultCount size the random part of the corpus.
const (
	DefaultSeed  = 20081
	DefaultCount = 256
)

type exactness int

const (
	exactBits exactness = iota
	nanTolerant
)

type binaryCase struct {
	name  string
	got   registry.BinaryFn
	want  registry.BinaryFn
	exact exactness
}

type unaryCase struct {
	name  string
	got   registry.UnaryFn
	want  registry.UnaryFn
	exact exactness
}

// Mismatch describes one disagreement between a backend and the reference.
type Mismatch struct {
	Op     string
	Inputs [][4]float32
	Err    error
}

// String formats the operation, its inputs and the difference.
func (m Mismatch) String() string {
	return fmt.Sprintf("%s%v: %v", m.Op, m.Inputs, m.Err)
}

// Run checks every operation entry provides against the generic reference
// and reports each mismatch as a test error.
func Run(t *testing.T, entry registry.OpEntry) {
	t.Helper()

	if len(entry.Provided()) == 0 {
		t.Fatalf("%s: entry provides no operations", entry.Name)
	}

	for _, m := range Check(entry, DefaultSeed, DefaultCount) {
		t.Errorf("%s: %s", entry.Name, m)
	}
}

// Check compares entry against the generic reference and returns every
// mismatch. Operations entry leaves nil are skipped. It is also used by the
// vec4info self-check outside of tests.
func Check(entry registry.OpEntry, seed int64, count int) []Mismatch {
	ref := generic.Entry()
	corpus := testutil.BitPatterns(seed, count)

	var out []Mismatch

	for _, c := range binaryCases(entry, ref) {
		if c.got == nil {
			continue
		}
		for i, a := range corpus {
			b := corpus[(i*7+3)%len(corpus)]
			for _, pair := range [][2][4]float32{{a, b}, {a, a}} {
				got := c.got(pair[0], pair[1])
				want := c.want(pair[0], pair[1])
				if err := diff(got, want, c.exact); err != nil {
					out = append(out, Mismatch{Op: c.name, Inputs: [][4]float32{pair[0], pair[1]}, Err: err})
				}
			}
		}
	}

	for _, c := range unaryCases(entry, ref) {
		if c.got == nil {
			continue
		}
		for _, v := range corpus {
			if err := diff(c.got(v), c.want(v), c.exact); err != nil {
				out = append(out, Mismatch{Op: c.name, Inputs: [][4]float32{v}, Err: err})
			}
		}
	}

	if entry.Shuffle != nil {
		for _, v := range corpus {
			for sel := 0; sel < 256; sel += 17 {
				got := entry.Shuffle(v, uint8(sel))
				want := ref.Shuffle(v, uint8(sel))
				if err := testutil.BitsDiff(got, want); err != nil {
					out = append(out, Mismatch{Op: fmt.Sprintf("Shuffle(%#02x)", sel), Inputs: [][4]float32{v}, Err: err})
				}
			}
		}
	}

	if entry.MoveMask != nil {
		for _, v := range corpus {
			if got, want := entry.MoveMask(v), ref.MoveMask(v); got != want {
				out = append(out, Mismatch{Op: "MoveMask", Inputs: [][4]float32{v}, Err: fmt.Errorf("got %04b, want %04b", got, want)})
			}
		}
	}

	out = append(out, checkPrefetch(entry, corpus)...)

	return out
}

// checkPrefetch verifies that the cache hints leave the target untouched.
func checkPrefetch(entry registry.OpEntry, corpus [][4]float32) []Mismatch {
	hints := []struct {
		name string
		fn   registry.PrefetchFn
	}{
		{"PrefetchT0", entry.PrefetchT0},
		{"PrefetchT1", entry.PrefetchT1},
		{"PrefetchT2", entry.PrefetchT2},
		{"PrefetchNTA", entry.PrefetchNTA},
	}

	var out []Mismatch
	for _, h := range hints {
		if h.fn == nil {
			continue
		}
		for _, v := range corpus {
			target := v
			h.fn(&target)
			if err := testutil.BitsDiff(target, v); err != nil {
				out = append(out, Mismatch{Op: h.name, Inputs: [][4]float32{v}, Err: err})
			}
		}
	}
	return out
}

func diff(got, want [4]float32, exact exactness) error {
	if exact == nanTolerant {
		return testutil.LanesDiff(got, want)
	}
	return testutil.BitsDiff(got, want)
}

func binaryCases(e, ref registry.OpEntry) []binaryCase {
	return []binaryCase{
		{"And", e.And, ref.And, exactBits},
		{"Or", e.Or, ref.Or, exactBits},
		{"Xor", e.Xor, ref.Xor, exactBits},
		{"AndNot", e.AndNot, ref.AndNot, exactBits},
		{"Add", e.Add, ref.Add, nanTolerant},
		{"Sub", e.Sub, ref.Sub, nanTolerant},
		{"Mul", e.Mul, ref.Mul, nanTolerant},
		{"Div", e.Div, ref.Div, nanTolerant},
		{"Min", e.Min, ref.Min, exactBits},
		{"Max", e.Max, ref.Max, exactBits},
		{"HorizontalAdd", e.HorizontalAdd, ref.HorizontalAdd, nanTolerant},
		{"HorizontalSub", e.HorizontalSub, ref.HorizontalSub, nanTolerant},
		{"AddSub", e.AddSub, ref.AddSub, nanTolerant},
		{"InterleaveLow", e.InterleaveLow, ref.InterleaveLow, exactBits},
		{"InterleaveHigh", e.InterleaveHigh, ref.InterleaveHigh, exactBits},
		{"CompareEqual", e.CompareEqual, ref.CompareEqual, exactBits},
		{"CompareLessThan", e.CompareLessThan, ref.CompareLessThan, exactBits},
		{"CompareLessEqual", e.CompareLessEqual, ref.CompareLessEqual, exactBits},
		{"CompareNotEqual", e.CompareNotEqual, ref.CompareNotEqual, exactBits},
		{"CompareNotLessThan", e.CompareNotLessThan, ref.CompareNotLessThan, exactBits},
		{"CompareNotLessEqual", e.CompareNotLessEqual, ref.CompareNotLessEqual, exactBits},
		{"CompareUnordered", e.CompareUnordered, ref.CompareUnordered, exactBits},
		{"CompareOrdered", e.CompareOrdered, ref.CompareOrdered, exactBits},
	}
}

func unaryCases(e, ref registry.OpEntry) []unaryCase {
	return []unaryCase{
		{"Sqrt", e.Sqrt, ref.Sqrt, nanTolerant},
		{"InvSqrt", e.InvSqrt, ref.InvSqrt, nanTolerant},
		{"Reciprocal", e.Reciprocal, ref.Reciprocal, nanTolerant},
		{"DuplicateLow", e.DuplicateLow, ref.DuplicateLow, exactBits},
		{"DuplicateHigh", e.DuplicateHigh, ref.DuplicateHigh, exactBits},
	}
}
