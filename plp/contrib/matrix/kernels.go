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
	"github.com/ajroetker/go-plp/plp"
	"github.com/ajroetker/go-plp/plp/simd"
)

// operands describes C = A * B over flat buffers. Element (i, k) of A is
// a[i*aRow+k]; element (k, j) of B is b[k*bRow+j*bCol], so a transposed B
// is the same product with bRow and bCol swapped.
type operands[T any] struct {
	a, b       []T
	n, o       int
	aRow       int
	bRow, bCol int
	cRow       int
}

func plainOperands[T any](a, b View[T], c int) operands[T] {
	return operands[T]{a: a.Data, b: b.Data, n: a.Cols, o: b.Cols, aRow: a.Stride, bRow: b.Stride, bCol: 1, cRow: c}
}

// transOperands reads bt as the o x n transpose of B.
func transOperands[T any](a, bt View[T], c int) operands[T] {
	return operands[T]{a: a.Data, b: bt.Data, n: a.Cols, o: bt.Rows, aRow: a.Stride, bRow: 1, bCol: bt.Stride, cRow: c}
}

// mulKernel computes output rows [start, end) and hands every accumulated
// element to store together with its index in C.
type mulKernel[T, A simd.Lanes] func(p operands[T], start, end int, store func(idx int, acc A))

func selectMul[T, A simd.Lanes](v plp.Variant) mulKernel[T, A] {
	if v == plp.VariantVector {
		return mulBlocked[T, A]
	}
	return mulScalar[T, A]
}

func dot[T, A simd.Lanes](p operands[T], i, j int) A {
	var acc A
	ai, bj := i*p.aRow, j*p.bCol
	for k := 0; k < p.n; k++ {
		acc += A(p.a[ai+k]) * A(p.b[bj+k*p.bRow])
	}
	return acc
}

func mulScalar[T, A simd.Lanes](p operands[T], start, end int, store func(int, A)) {
	for i := start; i < end; i++ {
		for j := 0; j < p.o; j++ {
			store(i*p.cRow+j, dot[T, A](p, i, j))
		}
	}
}

// mulBlocked keeps a 2x2 block of C in registers so that every loaded
// element of A and B feeds two multiply-accumulates. Odd rows and columns
// fall back to single dot products.
func mulBlocked[T, A simd.Lanes](p operands[T], start, end int, store func(int, A)) {
	i := start
	for ; i+2 <= end; i += 2 {
		a0, a1 := i*p.aRow, (i+1)*p.aRow
		j := 0
		for ; j+2 <= p.o; j += 2 {
			b0, b1 := j*p.bCol, (j+1)*p.bCol
			var c00, c01, c10, c11 A
			for k := 0; k < p.n; k++ {
				x0, x1 := A(p.a[a0+k]), A(p.a[a1+k])
				kb := k * p.bRow
				y0, y1 := A(p.b[b0+kb]), A(p.b[b1+kb])
				c00 += x0 * y0
				c01 += x0 * y1
				c10 += x1 * y0
				c11 += x1 * y1
			}
			store(i*p.cRow+j, c00)
			store(i*p.cRow+j+1, c01)
			store((i+1)*p.cRow+j, c10)
			store((i+1)*p.cRow+j+1, c11)
		}
		if j < p.o {
			store(i*p.cRow+j, dot[T, A](p, i, j))
			store((i+1)*p.cRow+j, dot[T, A](p, i+1, j))
		}
	}
	if i < end {
		mulScalar[T, A](p, i, end, store)
	}
}

// cmplxOperands is operands over interleaved (re, im) pairs. Strides and
// dimensions count complex elements.
type cmplxOperands[T any] struct {
	operands[T]
}

type cmplxKernel[T, A simd.Lanes] func(p cmplxOperands[T], c []A, start, end int)

func selectCmplx[T, A simd.Lanes](v plp.Variant) cmplxKernel[T, A] {
	if v == plp.VariantVector {
		return cmplxBlocked[T, A]
	}
	return cmplxScalar[T, A]
}

func cmplxDot[T, A simd.Lanes](p cmplxOperands[T], i, j int) (re, im A) {
	ai, bj := 2*i*p.aRow, 2*j*p.bCol
	for k := 0; k < p.n; k++ {
		ar, aim := A(p.a[ai+2*k]), A(p.a[ai+2*k+1])
		kb := bj + 2*k*p.bRow
		br, bi := A(p.b[kb]), A(p.b[kb+1])
		re += ar*br - aim*bi
		im += ar*bi + aim*br
	}
	return re, im
}

func cmplxScalar[T, A simd.Lanes](p cmplxOperands[T], c []A, start, end int) {
	for i := start; i < end; i++ {
		for j := 0; j < p.o; j++ {
			idx := 2 * (i*p.cRow + j)
			c[idx], c[idx+1] = cmplxDot[T, A](p, i, j)
		}
	}
}

// cmplxBlocked computes two output columns per pass over a row of A.
func cmplxBlocked[T, A simd.Lanes](p cmplxOperands[T], c []A, start, end int) {
	for i := start; i < end; i++ {
		ai := 2 * i * p.aRow
		j := 0
		for ; j+2 <= p.o; j += 2 {
			b0, b1 := 2*j*p.bCol, 2*(j+1)*p.bCol
			var re0, im0, re1, im1 A
			for k := 0; k < p.n; k++ {
				ar, aim := A(p.a[ai+2*k]), A(p.a[ai+2*k+1])
				kb := 2 * k * p.bRow
				br0, bi0 := A(p.b[b0+kb]), A(p.b[b0+kb+1])
				br1, bi1 := A(p.b[b1+kb]), A(p.b[b1+kb+1])
				re0 += ar*br0 - aim*bi0
				im0 += ar*bi0 + aim*br0
				re1 += ar*br1 - aim*bi1
				im1 += ar*bi1 + aim*br1
			}
			idx := 2 * (i*p.cRow + j)
			c[idx], c[idx+1], c[idx+2], c[idx+3] = re0, im0, re1, im1
		}
		if j < p.o {
			idx := 2 * (i*p.cRow + j)
			c[idx], c[idx+1] = cmplxDot[T, A](p, i, j)
		}
	}
}
