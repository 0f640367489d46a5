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

package simd

// Load loads up to MaxLanes[T]() elements from src.
// If src is shorter, only len(src) lanes are active.
func Load[T Lanes](src []T) Vec[T] {
	var v Vec[T]
	v.n = copy(v.data[:MaxLanes[T]()], src)
	return v
}

// Store writes v to dst.
func Store[T Lanes](v Vec[T], dst []T) {
	v.Store(dst)
}

// Set returns a vector with every lane set to value.
func Set[T Lanes](value T) Vec[T] {
	v := Vec[T]{n: MaxLanes[T]()}
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Zero returns a vector with every lane set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{n: MaxLanes[T]()}
}

// Add performs element-wise addition. Integer lanes wrap on overflow.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	out := Vec[T]{n: n}
	for i := range n {
		out.data[i] = a.data[i] + b.data[i]
	}
	return out
}

// Mul performs element-wise multiplication. Integer lanes wrap on overflow.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	out := Vec[T]{n: n}
	for i := range n {
		out.data[i] = a.data[i] * b.data[i]
	}
	return out
}

// MulAdd computes a*b + c element-wise.
func MulAdd[T Lanes](a, b, c Vec[T]) Vec[T] {
	n := min(a.n, b.n, c.n)
	out := Vec[T]{n: n}
	for i := range n {
		out.data[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return out
}

// Min returns the element-wise minimum. A NaN in either lane yields NaN,
// as with the builtin min.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	out := Vec[T]{n: n}
	for i := range n {
		out.data[i] = min(a.data[i], b.data[i])
	}
	return out
}

// Max returns the element-wise maximum. A NaN in either lane yields NaN,
// as with the builtin max.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	out := Vec[T]{n: n}
	for i := range n {
		out.data[i] = max(a.data[i], b.data[i])
	}
	return out
}

// ReduceSum returns the sum across all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := range v.n {
		sum += v.data[i]
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes, NaN if any lane is
// NaN.
func ReduceMin[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		m = min(m, v.data[i])
	}
	return m
}

// ReduceMax returns the maximum value across all lanes, NaN if any lane is
// NaN.
func ReduceMax[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		m = max(m, v.data[i])
	}
	return m
}
