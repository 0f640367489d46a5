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

package main

import (
	"math/rand"
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-plp/plp"
	"github.com/ajroetker/go-plp/plp/contrib/matrix"
	"github.com/ajroetker/go-plp/plp/contrib/stats"
)

// workload is one operation bound to its inputs. serial writes the
// single-core result and parallel the team result; diff compares the two.
type workload struct {
	serial   func(env *plp.Env) error
	parallel func(env *plp.Env, nPE int) error
	diff     func() string
}

// operation describes a library operation the CLI can time and verify.
// size is the element count for vector operations and the matrix side
// length for matrix operations.
type operation struct {
	name        string
	desc        string
	defaultSize int
	prepare     func(rng *rand.Rand, size int) workload
}

var operations = []operation{
	{"max", "stats.MaxInt8 over a random vector", 1 << 20, prepareMax},
	{"min", "stats.MinInt16 over a random vector", 1 << 20, prepareMin},
	{"mean", "stats.MeanInt32 over a random vector", 1 << 20, prepareMean},
	{"mean-f32", "stats.MeanFloat32 over a random vector", 1 << 20, prepareMeanFloat32},
	{"fill", "matrix.Fill of a strided float32 matrix", 512, prepareFill},
	{"filli", "matrix.FillIStride of an int32 identity", 512, prepareFillI},
	{"matmul", "matrix.MatMulInt16 into int32", 128, prepareMatMul},
	{"matmul-trans", "matrix.MatMulTransFloat32", 128, prepareMatMulTrans},
	{"matmul-q", "matrix.MatMulQ16 in Q15", 128, prepareMatMulQ},
	{"matmul-cmplx", "matrix.MatMulCmplxStrideInt16 into int32", 64, prepareMatMulCmplx},
}

func lookupOperation(name string) (operation, bool) {
	i := slices.IndexFunc(operations, func(op operation) bool { return op.name == strings.ToLower(name) })
	if i < 0 {
		return operation{}, false
	}
	return operations[i], true
}

func operationNames() []string {
	names := make([]string, len(operations))
	for i, op := range operations {
		names[i] = op.name
	}
	return names
}

func randomInts[T int8 | int16 | int32](rng *rand.Rand, n int, lo, hi int64) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(lo + rng.Int63n(hi-lo+1))
	}
	return out
}

func randomFloats(rng *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()*2 - 1
	}
	return out
}

// scalarWorkload builds a workload for a reduction writing one value.
func scalarWorkload[T comparable](serial func(*plp.Env, *T) error, parallel func(*plp.Env, int, *T) error) workload {
	var want, got T
	return workload{
		serial:   func(env *plp.Env) error { return serial(env, &want) },
		parallel: func(env *plp.Env, nPE int) error { return parallel(env, nPE, &got) },
		diff:     func() string { return cmp.Diff(want, got) },
	}
}

func prepareMax(rng *rand.Rand, n int) workload {
	src := randomInts[int8](rng, n, -128, 127)
	return scalarWorkload(
		func(env *plp.Env, res *int8) error { return stats.MaxInt8(env, src, res) },
		func(env *plp.Env, nPE int, res *int8) error { return stats.MaxInt8Parallel(env, src, nPE, res) },
	)
}

func prepareMin(rng *rand.Rand, n int) workload {
	src := randomInts[int16](rng, n, -32768, 32767)
	return scalarWorkload(
		func(env *plp.Env, res *int16) error { return stats.MinInt16(env, src, res) },
		func(env *plp.Env, nPE int, res *int16) error { return stats.MinInt16Parallel(env, src, nPE, res) },
	)
}

func prepareMean(rng *rand.Rand, n int) workload {
	src := randomInts[int32](rng, n, -1<<31, 1<<31-1)
	return scalarWorkload(
		func(env *plp.Env, res *int32) error { return stats.MeanInt32(env, src, res) },
		func(env *plp.Env, nPE int, res *int32) error { return stats.MeanInt32Parallel(env, src, nPE, res) },
	)
}

// prepareMeanFloat32 compares up to float32 rounding, since partial sums
// are added in a different order on a team.
func prepareMeanFloat32(rng *rand.Rand, n int) workload {
	src := randomFloats(rng, n)
	var want, got float32
	return workload{
		serial:   func(env *plp.Env) error { return stats.MeanFloat32(env, src, &want) },
		parallel: func(env *plp.Env, nPE int) error { return stats.MeanFloat32Parallel(env, src, nPE, &got) },
		diff: func() string {
			return cmp.Diff(want, got, cmp.Comparer(func(x, y float32) bool {
				d := x - y
				return d < 1e-5 && d > -1e-5
			}))
		},
	}
}

// bufferWorkload builds a workload for an operation writing a buffer. Both
// buffers start from the same contents so untouched padding compares equal.
func bufferWorkload[T any](size int, init T, serial func(*plp.Env, []T) error, parallel func(*plp.Env, int, []T) error) workload {
	want, got := make([]T, size), make([]T, size)
	for i := range want {
		want[i], got[i] = init, init
	}
	return workload{
		serial:   func(env *plp.Env) error { return serial(env, want) },
		parallel: func(env *plp.Env, nPE int) error { return parallel(env, nPE, got) },
		diff:     func() string { return cmp.Diff(want, got) },
	}
}

func prepareFill(_ *rand.Rand, n int) workload {
	stride := n + 3
	return bufferWorkload(n*stride, float32(-1),
		func(env *plp.Env, dst []float32) error { return matrix.Fill(env, n, n, stride, float32(0.5), dst) },
		func(env *plp.Env, nPE int, dst []float32) error {
			return matrix.FillParallel(env, n, n, stride, float32(0.5), nPE, dst)
		},
	)
}

func prepareFillI(_ *rand.Rand, n int) workload {
	stride := n + 1
	return bufferWorkload(n*stride, int32(-1),
		func(env *plp.Env, dst []int32) error { return matrix.FillIStrideInt32(env, n, stride, dst) },
		func(env *plp.Env, nPE int, dst []int32) error {
			return matrix.FillIStrideInt32Parallel(env, n, stride, nPE, dst)
		},
	)
}

func prepareMatMul(rng *rand.Rand, n int) workload {
	a := randomInts[int16](rng, n*n, -1000, 1000)
	b := randomInts[int16](rng, n*n, -1000, 1000)
	return bufferWorkload(n*n, int32(0),
		func(env *plp.Env, c []int32) error { return matrix.MatMulInt16(env, a, b, n, n, n, c) },
		func(env *plp.Env, nPE int, c []int32) error { return matrix.MatMulInt16Parallel(env, a, b, n, n, n, nPE, c) },
	)
}

func prepareMatMulTrans(rng *rand.Rand, n int) workload {
	a := randomFloats(rng, n*n)
	b := randomFloats(rng, n*n)
	return bufferWorkload(n*n, float32(0),
		func(env *plp.Env, c []float32) error { return matrix.MatMulTransFloat32(env, a, b, n, n, n, c) },
		func(env *plp.Env, nPE int, c []float32) error {
			return matrix.MatMulTransParallel(env, a, b, n, n, n, nPE, c)
		},
	)
}

func prepareMatMulQ(rng *rand.Rand, n int) workload {
	a := randomInts[int16](rng, n*n, -32768, 32767)
	b := randomInts[int16](rng, n*n, -32768, 32767)
	return bufferWorkload(n*n, int16(0),
		func(env *plp.Env, c []int16) error { return matrix.MatMulQ16(env, a, b, n, n, n, 15, c) },
		func(env *plp.Env, nPE int, c []int16) error { return matrix.MatMulQ16Parallel(env, a, b, n, n, n, 15, nPE, c) },
	)
}

func prepareMatMulCmplx(rng *rand.Rand, n int) workload {
	stride := n + 2
	a := randomInts[int16](rng, 2*n*stride, -300, 300)
	b := randomInts[int16](rng, 2*n*stride, -300, 300)
	return bufferWorkload(2*n*stride, int32(-1),
		func(env *plp.Env, c []int32) error {
			return matrix.MatMulCmplxStrideInt16(env, a, b, n, n, n, stride, stride, stride, c)
		},
		func(env *plp.Env, nPE int, c []int32) error {
			return matrix.MatMulCmplxStrideInt16Parallel(env, a, b, n, n, n, stride, stride, stride, nPE, c)
		},
	)
}
