package generic

// Prefetch is the portable cache hint: Go exposes no prefetch intrinsic, so
// it does nothing. Used for all four hint levels.
func Prefetch(*[4]float32) {}
