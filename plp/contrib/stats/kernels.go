// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stats

import (
	"github.com/ajroetker/go-plp/plp"
	"github.com/ajroetker/go-plp/plp/simd"
)

// accum is the accumulator type of Mean: int64 for signed inputs, uint64
// for unsigned inputs and float64 for floating-point inputs.
type accum interface {
	~int64 | ~uint64 | ~float64
}

// maxKernel returns the max kernel for variant.
func maxKernel[T simd.Lanes](v plp.Variant) plp.Kernel[T] {
	if v == plp.VariantVector {
		return maxVector[T]
	}
	return maxScalar[T]
}

func minKernel[T simd.Lanes](v plp.Variant) plp.Kernel[T] {
	if v == plp.VariantVector {
		return minVector[T]
	}
	return minScalar[T]
}

func sumKernel[T simd.Lanes, A accum](v plp.Variant) func([]T) A {
	if v == plp.VariantVector {
		return sumVector[T, A]
	}
	return sumScalar[T, A]
}

// maxScalar panics on an empty slice; glue code rejects empty input first.
// Like the builtin max, any NaN in src makes the result NaN, so the result
// does not depend on how src is partitioned.
func maxScalar[T simd.Lanes](src []T) T {
	m := src[0]
	for _, x := range src[1:] {
		m = max(m, x)
	}
	return m
}

func minScalar[T simd.Lanes](src []T) T {
	m := src[0]
	for _, x := range src[1:] {
		m = min(m, x)
	}
	return m
}

func sumScalar[T simd.Lanes, A accum](src []T) A {
	var acc A
	for _, x := range src {
		acc += A(x)
	}
	return acc
}

func maxVector[T simd.Lanes](src []T) T {
	lanes := simd.MaxLanes[T]()
	if len(src) < lanes {
		return maxScalar(src)
	}

	acc := simd.Load(src)
	i := lanes
	for ; i+lanes <= len(src); i += lanes {
		acc = simd.Max(acc, simd.Load(src[i:]))
	}
	m := simd.ReduceMax(acc)

	for ; i < len(src); i++ {
		m = max(m, src[i])
	}
	return m
}

func minVector[T simd.Lanes](src []T) T {
	lanes := simd.MaxLanes[T]()
	if len(src) < lanes {
		return minScalar(src)
	}

	acc := simd.Load(src)
	i := lanes
	for ; i+lanes <= len(src); i += lanes {
		acc = simd.Min(acc, simd.Load(src[i:]))
	}
	m := simd.ReduceMin(acc)

	for ; i < len(src); i++ {
		m = min(m, src[i])
	}
	return m
}

// sumVector widens while it accumulates, so lanes of T cannot be used
// directly; it unrolls by four into independent accumulators instead.
func sumVector[T simd.Lanes, A accum](src []T) A {
	var a0, a1, a2, a3 A
	i := 0
	for ; i+4 <= len(src); i += 4 {
		s := src[i : i+4 : i+4]
		a0 += A(s[0])
		a1 += A(s[1])
		a2 += A(s[2])
		a3 += A(s[3])
	}
	for ; i < len(src); i++ {
		a0 += A(src[i])
	}
	return (a0 + a1) + (a2 + a3)
}

// sumOf combines per-core partial sums.
func sumOf[A accum](partials []A) A {
	var acc A
	for _, p := range partials {
		acc += p
	}
	return acc
}

func isFloat[T simd.Lanes]() bool {
	half := 0.5
	return T(half) != 0
}

func isUnsigned[T simd.Lanes]() bool {
	var x T
	x--
	return x > 0
}
