// Package vec4 provides Vector4f, a 16-byte value of four float32 lanes laid
// out like a 128-bit SIMD register, together with the operations numeric and
// graphics kernels need without per-element loops.
//
// # Layout
//
// Lane X, Y, Z, W live at byte offsets 0, 4, 8, 12, native byte order, no
// padding. The nine sibling types (Vector2d, Vector2l, Vector2ul, Vector4i,
// Vector4ui, Vector8s, Vector8us, Vector16sb, Vector16b) share the same 16
// bytes. Converting between them is a bit-pattern reinterpretation through
// Raw128, never a numeric conversion.
//
// # Operations
//
// Bitwise:
//   - And, Or, Xor, AndNot, Not, Neg, Abs (raw lane bits; NaN payloads and
//     signed zeros pass through)
//
// Arithmetic:
//   - Add, Sub, Mul, Div, Scale (IEEE-754 single precision)
//   - Min, Max (second operand wins on NaN, like MINPS/MAXPS)
//   - Sqrt, InvSqrt, Reciprocal (rounded to single precision)
//   - ApproxSqrt, ApproxInvSqrt (fast, not bit-exact)
//
// Cross-lane:
//   - HorizontalAdd, HorizontalSub, AddSub
//   - DuplicateLow, DuplicateHigh, InterleaveLow, InterleaveHigh
//   - Shuffle with a ShuffleSel selector
//
// Comparisons return mask vectors whose lanes are all-ones or all-zero:
//   - CompareEqual, CompareLessThan, CompareLessEqual, CompareNotEqual,
//     CompareNotLessThan, CompareNotLessEqual, CompareUnordered, CompareOrdered
//   - Select and MoveMask consume masks
//
// Memory:
//   - LoadAligned, StoreAligned, Load, Store
//   - PrefetchTemporalAllCacheLevels, PrefetchTemporal1stLevelCache,
//     PrefetchTemporal2ndLevelCache, PrefetchNonTemporal
//
// # Dispatch
//
// Every operation runs on the kernel set resolved once for the current CPU:
// SSE3 and SSE2 assembly on amd64, the portable generic kernels elsewhere or
// for operations an accelerated backend leaves out. All backends produce the
// same bits as the generic kernels. Build with the purego tag, or set
// VEC4_NO_SIMD=1, to force the generic kernels.
//
// All operations are pure and safe for concurrent use.
package vec4
