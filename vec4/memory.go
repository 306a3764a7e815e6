package vec4

// LoadAligned returns the vector stored at p. p is not checked for nil or
// alignment.
func LoadAligned(p *Vector4f) Vector4f {
	return *p
}

// StoreAligned writes v to p. p is not checked for nil or alignment.
func StoreAligned(p *Vector4f, v Vector4f) {
	*p = v
}

// Load reads the first four elements of src.
// Panics if len(src) < 4.
func Load(src []float32) Vector4f {
	if len(src) < 4 {
		panic("vec4: slice too short")
	}
	return Vector4f(src[:4])
}

// Store writes v to the first four elements of dst.
// Panics if len(dst) < 4.
func (v Vector4f) Store(dst []float32) {
	if len(dst) < 4 {
		panic("vec4: slice too short")
	}
	copy(dst, v[:])
}

// PrefetchTemporalAllCacheLevels hints that *p will be read soon and should
// be kept in every cache level. It never changes program state.
func PrefetchTemporalAllCacheLevels(p *Vector4f) {
	kernels().PrefetchT0((*[4]float32)(p))
}

// PrefetchTemporal1stLevelCache hints a read of *p, keeping it out of L1.
func PrefetchTemporal1stLevelCache(p *Vector4f) {
	kernels().PrefetchT1((*[4]float32)(p))
}

// PrefetchTemporal2ndLevelCache hints a read of *p, keeping it out of L1 and L2.
func PrefetchTemporal2ndLevelCache(p *Vector4f) {
	kernels().PrefetchT2((*[4]float32)(p))
}

// PrefetchNonTemporal hints a single read of *p that should not pollute the
// caches.
func PrefetchNonTemporal(p *Vector4f) {
	kernels().PrefetchNTA((*[4]float32)(p))
}
