// Package simd provides the fixed-width lane operations used by the cluster
// (vector) kernel variants, and detects the host vector width at startup.
//
// Kernels are written once against Vec[T] and the width adapts to the host:
// 16 bytes on NEON/SSE2, 32 on AVX2, 64 on AVX-512.
//
//	acc := simd.Load(src)
//	for i := lanes; i+lanes <= len(src); i += lanes {
//	    acc = simd.Max(acc, simd.Load(src[i:]))
//	}
//	best := simd.ReduceMax(acc)
package simd

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// maxVecBytes is the widest register any dispatch level uses (AVX-512).
const maxVecBytes = 64

// Vec is a vector of up to MaxLanes[T]() elements held by value.
//
// Vec instances should not be created directly; use Load, Set or Zero.
type Vec[T Lanes] struct {
	data [maxVecBytes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the active lanes. Intended for tests.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's lanes to dst, truncated to len(dst).
func (v Vec[T]) Store(dst []T) {
	copy(dst, v.data[:min(v.n, len(dst))])
}
