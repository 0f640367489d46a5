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

import "github.com/ajroetker/go-plp/plp"

// Non-generic entry points for the precisions the library ships.

// MaxInt8 is the non-generic version of Max for int8.
func MaxInt8(env *plp.Env, src []int8, res *int8) error { return Max(env, src, res) }

// MaxInt8Parallel is the non-generic version of MaxParallel for int8.
func MaxInt8Parallel(env *plp.Env, src []int8, nPE int, res *int8) error {
	return MaxParallel(env, src, nPE, res)
}

// MaxInt16 is the non-generic version of Max for int16.
func MaxInt16(env *plp.Env, src []int16, res *int16) error { return Max(env, src, res) }

// MaxInt16Parallel is the non-generic version of MaxParallel for int16.
func MaxInt16Parallel(env *plp.Env, src []int16, nPE int, res *int16) error {
	return MaxParallel(env, src, nPE, res)
}

// MaxInt32 is the non-generic version of Max for int32.
func MaxInt32(env *plp.Env, src []int32, res *int32) error { return Max(env, src, res) }

// MaxInt32Parallel is the non-generic version of MaxParallel for int32.
func MaxInt32Parallel(env *plp.Env, src []int32, nPE int, res *int32) error {
	return MaxParallel(env, src, nPE, res)
}

// MaxFloat32 is the non-generic version of Max for float32.
func MaxFloat32(env *plp.Env, src []float32, res *float32) error { return Max(env, src, res) }

// MaxFloat32Parallel is the non-generic version of MaxParallel for float32.
func MaxFloat32Parallel(env *plp.Env, src []float32, nPE int, res *float32) error {
	return MaxParallel(env, src, nPE, res)
}

// MinInt8 is the non-generic version of Min for int8.
func MinInt8(env *plp.Env, src []int8, res *int8) error { return Min(env, src, res) }

// MinInt8Parallel is the non-generic version of MinParallel for int8.
func MinInt8Parallel(env *plp.Env, src []int8, nPE int, res *int8) error {
	return MinParallel(env, src, nPE, res)
}

// MinInt16 is the non-generic version of Min for int16.
func MinInt16(env *plp.Env, src []int16, res *int16) error { return Min(env, src, res) }

// MinInt16Parallel is the non-generic version of MinParallel for int16.
func MinInt16Parallel(env *plp.Env, src []int16, nPE int, res *int16) error {
	return MinParallel(env, src, nPE, res)
}

// MinInt32 is the non-generic version of Min for int32.
func MinInt32(env *plp.Env, src []int32, res *int32) error { return Min(env, src, res) }

// MinInt32Parallel is the non-generic version of MinParallel for int32.
func MinInt32Parallel(env *plp.Env, src []int32, nPE int, res *int32) error {
	return MinParallel(env, src, nPE, res)
}

// MinFloat32 is the non-generic version of Min for float32.
func MinFloat32(env *plp.Env, src []float32, res *float32) error { return Min(env, src, res) }

// MinFloat32Parallel is the non-generic version of MinParallel for float32.
func MinFloat32Parallel(env *plp.Env, src []float32, nPE int, res *float32) error {
	return MinParallel(env, src, nPE, res)
}

// MeanInt8 is the non-generic version of Mean for int8.
func MeanInt8(env *plp.Env, src []int8, res *int8) error { return Mean(env, src, res) }

// MeanInt8Parallel is the non-generic version of MeanParallel for int8.
func MeanInt8Parallel(env *plp.Env, src []int8, nPE int, res *int8) error {
	return MeanParallel(env, src, nPE, res)
}

// MeanInt16 is the non-generic version of Mean for int16.
func MeanInt16(env *plp.Env, src []int16, res *int16) error { return Mean(env, src, res) }

// MeanInt16Parallel is the non-generic version of MeanParallel for int16.
func MeanInt16Parallel(env *plp.Env, src []int16, nPE int, res *int16) error {
	return MeanParallel(env, src, nPE, res)
}

// MeanInt32 is the non-generic version of Mean for int32.
func MeanInt32(env *plp.Env, src []int32, res *int32) error { return Mean(env, src, res) }

// MeanInt32Parallel is the non-generic version of MeanParallel for int32.
func MeanInt32Parallel(env *plp.Env, src []int32, nPE int, res *int32) error {
	return MeanParallel(env, src, nPE, res)
}

// MeanFloat32 is the non-generic version of Mean for float32.
func MeanFloat32(env *plp.Env, src []float32, res *float32) error { return Mean(env, src, res) }

// MeanFloat32Parallel is the non-generic version of MeanParallel for float32.
func MeanFloat32Parallel(env *plp.Env, src []float32, nPE int, res *float32) error {
	return MeanParallel(env, src, nPE, res)
}
