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

package matrix

import "github.com/ajroetker/go-plp/plp"

// Non-generic entry points. Integer products widen into int32 the way the
// fixed-width DSP kernels do.

// MatMulInt8 is MatMul for int8 inputs with an int32 result.
func MatMulInt8(env *plp.Env, a, b []int8, m, n, o int, c []int32) error {
	return MatMul(env, a, b, m, n, o, c)
}

// MatMulInt8Parallel is MatMulParallel for int8 inputs with an int32 result.
func MatMulInt8Parallel(env *plp.Env, a, b []int8, m, n, o, nPE int, c []int32) error {
	return MatMulParallel(env, a, b, m, n, o, nPE, c)
}

// MatMulInt16 is MatMul for int16 inputs with an int32 result.
func MatMulInt16(env *plp.Env, a, b []int16, m, n, o int, c []int32) error {
	return MatMul(env, a, b, m, n, o, c)
}

// MatMulInt16Parallel is MatMulParallel for int16 inputs with an int32 result.
func MatMulInt16Parallel(env *plp.Env, a, b []int16, m, n, o, nPE int, c []int32) error {
	return MatMulParallel(env, a, b, m, n, o, nPE, c)
}

// MatMulInt32 is MatMul for int32.
func MatMulInt32(env *plp.Env, a, b []int32, m, n, o int, c []int32) error {
	return MatMul(env, a, b, m, n, o, c)
}

// MatMulInt32Parallel is MatMulParallel for int32.
func MatMulInt32Parallel(env *plp.Env, a, b []int32, m, n, o, nPE int, c []int32) error {
	return MatMulParallel(env, a, b, m, n, o, nPE, c)
}

// MatMulFloat32 is MatMul for float32.
func MatMulFloat32(env *plp.Env, a, b []float32, m, n, o int, c []float32) error {
	return MatMul(env, a, b, m, n, o, c)
}

// MatMulFloat32Parallel is MatMulParallel for float32.
func MatMulFloat32Parallel(env *plp.Env, a, b []float32, m, n, o, nPE int, c []float32) error {
	return MatMulParallel(env, a, b, m, n, o, nPE, c)
}

// MatMulTransInt32 is MatMulTrans for int32.
func MatMulTransInt32(env *plp.Env, a, b []int32, m, n, o int, c []int32) error {
	return MatMulTrans(env, a, b, m, n, o, c)
}

// MatMulTransInt32Parallel is MatMulTransParallel for int32.
func MatMulTransInt32Parallel(env *plp.Env, a, b []int32, m, n, o, nPE int, c []int32) error {
	return MatMulTransParallel(env, a, b, m, n, o, nPE, c)
}

// MatMulTransFloat32 is MatMulTrans for float32.
func MatMulTransFloat32(env *plp.Env, a, b []float32, m, n, o int, c []float32) error {
	return MatMulTrans(env, a, b, m, n, o, c)
}

// MatMulQ8 is MatMulQ for int8 (Q7) operands.
func MatMulQ8(env *plp.Env, a, b []int8, m, n, o int, shift uint, c []int8) error {
	return MatMulQ(env, a, b, m, n, o, shift, c)
}

// MatMulQ16 is MatMulQ for int16 (Q15) operands.
func MatMulQ16(env *plp.Env, a, b []int16, m, n, o int, shift uint, c []int16) error {
	return MatMulQ(env, a, b, m, n, o, shift, c)
}

// MatMulQ16Parallel is MatMulQParallel for int16 (Q15) operands.
func MatMulQ16Parallel(env *plp.Env, a, b []int16, m, n, o int, shift uint, nPE int, c []int16) error {
	return MatMulQParallel(env, a, b, m, n, o, shift, nPE, c)
}

// MatMulQ32 is MatMulQ for int32 (Q31) operands.
func MatMulQ32(env *plp.Env, a, b []int32, m, n, o int, shift uint, c []int32) error {
	return MatMulQ(env, a, b, m, n, o, shift, c)
}

// MatMulCmplxStrideInt16 is MatMulCmplxStride for int16 inputs with an int32
// result.
func MatMulCmplxStrideInt16(env *plp.Env, a, b []int16, m, n, o, strideA, strideB, strideC int, c []int32) error {
	return MatMulCmplxStride(env, a, b, m, n, o, strideA, strideB, strideC, c)
}

// MatMulCmplxStrideInt16Parallel is MatMulCmplxStrideParallel for int16
// inputs with an int32 result.
func MatMulCmplxStrideInt16Parallel(env *plp.Env, a, b []int16, m, n, o, strideA, strideB, strideC, nPE int, c []int32) error {
	return MatMulCmplxStrideParallel(env, a, b, m, n, o, strideA, strideB, strideC, nPE, c)
}

// FillIFloat32 is FillI for float32.
func FillIFloat32(env *plp.Env, n int, dst []float32) error { return FillI(env, n, dst) }

// FillIFloat32Parallel is FillIParallel for float32.
func FillIFloat32Parallel(env *plp.Env, n, nPE int, dst []float32) error {
	return FillIParallel(env, n, nPE, dst)
}

// FillIStrideInt16 is FillIStride for int16.
func FillIStrideInt16(env *plp.Env, n, stride int, dst []int16) error {
	return FillIStride(env, n, stride, dst)
}

// FillIStrideInt32 is FillIStride for int32.
func FillIStrideInt32(env *plp.Env, n, stride int, dst []int32) error {
	return FillIStride(env, n, stride, dst)
}

// FillIStrideInt32Parallel is FillIStrideParallel for int32.
func FillIStrideInt32Parallel(env *plp.Env, n, stride, nPE int, dst []int32) error {
	return FillIStrideParallel(env, n, stride, nPE, dst)
}
