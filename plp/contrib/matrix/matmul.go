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

import (
	"fmt"

	"github.com/ajroetker/go-plp/plp"
	"github.com/ajroetker/go-plp/plp/simd"
)

// MatMul computes C = A * B where A is m x n, B is n x o and C is m x o, all
// dense and row-major. Products accumulate in the destination type A, so
// int8 or int16 inputs can be widened into an int32 result.
func MatMul[T, A simd.Lanes](env *plp.Env, a, b []T, m, n, o int, c []A) error {
	return matMulStride(env, "matrix.MatMul", false, 0, a, b, m, n, o, n, o, o, c)
}

// MatMulParallel is MatMul with the rows of C split across nPE cluster cores.
func MatMulParallel[T, A simd.Lanes](env *plp.Env, a, b []T, m, n, o, nPE int, c []A) error {
	return matMulStride(env, "matrix.MatMulParallel", true, nPE, a, b, m, n, o, n, o, o, c)
}

// MatMulStride is MatMul over strided views: row i of A starts at
// a[i*strideA], and likewise for B and C. Padding in C is left untouched.
func MatMulStride[T, A simd.Lanes](env *plp.Env, a, b []T, m, n, o, strideA, strideB, strideC int, c []A) error {
	return matMulStride(env, "matrix.MatMulStride", false, 0, a, b, m, n, o, strideA, strideB, strideC, c)
}

// MatMulStrideParallel is MatMulStride with the rows of C split across nPE
// cluster cores.
func MatMulStrideParallel[T, A simd.Lanes](env *plp.Env, a, b []T, m, n, o, strideA, strideB, strideC, nPE int, c []A) error {
	return matMulStride(env, "matrix.MatMulStrideParallel", true, nPE, a, b, m, n, o, strideA, strideB, strideC, c)
}

func matMulStride[T, A simd.Lanes](env *plp.Env, op string, parallel bool, nPE int,
	a, b []T, m, n, o, strideA, strideB, strideC int, c []A) error {
	av := View[T]{Data: a, Rows: m, Cols: n, Stride: strideA}
	bv := View[T]{Data: b, Rows: n, Cols: o, Stride: strideB}
	cv := View[A]{Data: c, Rows: m, Cols: o, Stride: strideC}
	if err := validate("abc", av.Validate(), bv.Validate(), cv.Validate()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return runMul(env, op, parallel, nPE, m, plainOperands(av, bv, strideC), func(idx int, acc A) {
		c[idx] = acc
	})
}

// MatMulTrans computes C = A * B where B is supplied transposed: b holds the
// o x n matrix B^T, so both operands are read along contiguous rows.
func MatMulTrans[T, A simd.Lanes](env *plp.Env, a, b []T, m, n, o int, c []A) error {
	return matMulTrans(env, "matrix.MatMulTrans", false, 0, a, b, m, n, o, c)
}

// MatMulTransParallel is MatMulTrans with the rows of C split across nPE
// cluster cores.
func MatMulTransParallel[T, A simd.Lanes](env *plp.Env, a, b []T, m, n, o, nPE int, c []A) error {
	return matMulTrans(env, "matrix.MatMulTransParallel", true, nPE, a, b, m, n, o, c)
}

func matMulTrans[T, A simd.Lanes](env *plp.Env, op string, parallel bool, nPE int, a, b []T, m, n, o int, c []A) error {
	av := Dense(a, m, n)
	bt := Dense(b, o, n)
	cv := Dense(c, m, o)
	if err := validate("abc", av.Validate(), bt.Validate(), cv.Validate()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return runMul(env, op, parallel, nPE, m, transOperands(av, bt, o), func(idx int, acc A) {
		c[idx] = acc
	})
}

// MatMulQ is the fixed-point product of integer matrices: each element of C
// is accumulated in int64, shifted right arithmetically by shift bits and
// truncated to T.
func MatMulQ[T simd.Integers](env *plp.Env, a, b []T, m, n, o int, shift uint, c []T) error {
	return matMulQ(env, "matrix.MatMulQ", false, 0, a, b, m, n, o, shift, c)
}

// MatMulQParallel is MatMulQ with the rows of C split across nPE cluster
// cores.
func MatMulQParallel[T simd.Integers](env *plp.Env, a, b []T, m, n, o int, shift uint, nPE int, c []T) error {
	return matMulQ(env, "matrix.MatMulQParallel", true, nPE, a, b, m, n, o, shift, c)
}

func matMulQ[T simd.Integers](env *plp.Env, op string, parallel bool, nPE int, a, b []T, m, n, o int, shift uint, c []T) error {
	if shift >= 64 {
		return fmt.Errorf("%s: %w: shift %d out of range", op, plp.ErrInvalidArgument, shift)
	}
	av := Dense(a, m, n)
	bv := Dense(b, n, o)
	cv := Dense(c, m, o)
	if err := validate("abc", av.Validate(), bv.Validate(), cv.Validate()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return runMul(env, op, parallel, nPE, m, plainOperands(av, bv, o), func(idx int, acc int64) {
		c[idx] = T(acc >> shift)
	})
}

// MatMulCmplxStride multiplies complex matrices stored as interleaved
// (re, im) pairs. Dimensions and strides count complex elements, so a has
// at least 2*((m-1)*strideA+n) values. Products accumulate in A.
func MatMulCmplxStride[T, A simd.Lanes](env *plp.Env, a, b []T, m, n, o, strideA, strideB, strideC int, c []A) error {
	return matMulCmplx(env, "matrix.MatMulCmplxStride", false, 0, a, b, m, n, o, strideA, strideB, strideC, c)
}

// MatMulCmplxStrideParallel is MatMulCmplxStride with the rows of C split
// across nPE cluster cores.
func MatMulCmplxStrideParallel[T, A simd.Lanes](env *plp.Env, a, b []T, m, n, o, strideA, strideB, strideC, nPE int, c []A) error {
	return matMulCmplx(env, "matrix.MatMulCmplxStrideParallel", true, nPE, a, b, m, n, o, strideA, strideB, strideC, c)
}

func matMulCmplx[T, A simd.Lanes](env *plp.Env, op string, parallel bool, nPE int,
	a, b []T, m, n, o, strideA, strideB, strideC int, c []A) error {
	// Validate the interleaved buffers as real views twice as wide.
	av := View[T]{Data: a, Rows: m, Cols: 2 * n, Stride: 2 * strideA}
	bv := View[T]{Data: b, Rows: n, Cols: 2 * o, Stride: 2 * strideB}
	cv := View[A]{Data: c, Rows: m, Cols: 2 * o, Stride: 2 * strideC}
	if err := validate("abc", av.Validate(), bv.Validate(), cv.Validate()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p := cmplxOperands[T]{operands[T]{a: a, b: b, n: n, o: o, aRow: strideA, bRow: strideB, bCol: 1, cRow: strideC}}
	kernel := selectCmplx[T, A](env.Variant())
	rows := func(start, end int) { kernel(p, c, start, end) }
	if !parallel {
		rows(0, m)
		return nil
	}
	return forRows(env, op, m, nPE, rows)
}

// runMul runs the variant's multiply kernel over the m rows of C, on the
// calling core or split across nPE cluster cores.
func runMul[T, A simd.Lanes](env *plp.Env, op string, parallel bool, nPE, m int, p operands[T], store func(int, A)) error {
	kernel := selectMul[T, A](env.Variant())
	rows := func(start, end int) { kernel(p, start, end, store) }
	if !parallel {
		rows(0, m)
		return nil
	}
	return forRows(env, op, m, nPE, rows)
}
