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

// FillI writes the n x n identity matrix into dst.
func FillI[T simd.Lanes](env *plp.Env, n int, dst []T) error {
	return FillIStride(env, n, n, dst)
}

// FillIParallel is FillI with the rows split across nPE cluster cores.
func FillIParallel[T simd.Lanes](env *plp.Env, n, nPE int, dst []T) error {
	return FillIStrideParallel(env, n, n, nPE, dst)
}

// FillIStride writes the n x n identity matrix into dst with stride elements
// between row starts. Padding elements are left untouched.
func FillIStride[T simd.Lanes](env *plp.Env, n, stride int, dst []T) error {
	d := View[T]{Data: dst, Rows: n, Cols: n, Stride: stride}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("matrix.FillIStride: %w", err)
	}
	identityKernel[T](env.Variant())(d, 0, n)
	return nil
}

// FillIStrideParallel is FillIStride with the rows split across nPE cluster
// cores.
func FillIStrideParallel[T simd.Lanes](env *plp.Env, n, stride, nPE int, dst []T) error {
	d := View[T]{Data: dst, Rows: n, Cols: n, Stride: stride}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("matrix.FillIStrideParallel: %w", err)
	}
	kernel := identityKernel[T](env.Variant())
	return forRows(env, "matrix.FillIStrideParallel", n, nPE, func(start, end int) {
		kernel(d, start, end)
	})
}

// Fill sets every element of the m x n view of dst to value.
func Fill[T simd.Lanes](env *plp.Env, m, n, stride int, value T, dst []T) error {
	d := View[T]{Data: dst, Rows: m, Cols: n, Stride: stride}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("matrix.Fill: %w", err)
	}
	fillKernel[T](env.Variant())(d, value, 0, m)
	return nil
}

// FillParallel is Fill with the rows split across nPE cluster cores.
func FillParallel[T simd.Lanes](env *plp.Env, m, n, stride int, value T, nPE int, dst []T) error {
	d := View[T]{Data: dst, Rows: m, Cols: n, Stride: stride}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("matrix.FillParallel: %w", err)
	}
	kernel := fillKernel[T](env.Variant())
	return forRows(env, "matrix.FillParallel", m, nPE, func(start, end int) {
		kernel(d, value, start, end)
	})
}

func identityKernel[T simd.Lanes](v plp.Variant) func(d View[T], start, end int) {
	if v == plp.VariantVector {
		return identityVector[T]
	}
	return identityScalar[T]
}

func fillKernel[T simd.Lanes](v plp.Variant) func(d View[T], value T, start, end int) {
	if v == plp.VariantVector {
		return fillVector[T]
	}
	return fillScalar[T]
}

func identityScalar[T simd.Lanes](d View[T], start, end int) {
	for i := start; i < end; i++ {
		row := d.Row(i)
		for j := range row {
			if i == j {
				row[j] = 1
			} else {
				row[j] = 0
			}
		}
	}
}

// identityVector clears each row a register at a time and then sets the
// diagonal element.
func identityVector[T simd.Lanes](d View[T], start, end int) {
	zero := simd.Zero[T]()
	lanes := zero.NumLanes()
	for i := start; i < end; i++ {
		row := d.Row(i)
		for j := 0; j < len(row); j += lanes {
			zero.Store(row[j:])
		}
		row[i] = 1
	}
}

func fillScalar[T simd.Lanes](d View[T], value T, start, end int) {
	for i := start; i < end; i++ {
		row := d.Row(i)
		for j := range row {
			row[j] = value
		}
	}
}

func fillVector[T simd.Lanes](d View[T], value T, start, end int) {
	v := simd.Set(value)
	lanes := v.NumLanes()
	for i := start; i < end; i++ {
		row := d.Row(i)
		for j := 0; j < len(row); j += lanes {
			v.Store(row[j:])
		}
	}
}

// forRows is plp.ForRows with the error tagged by the calling operation.
func forRows(env *plp.Env, op string, rows, nPE int, kernel func(start, end int)) error {
	if err := plp.ForRows(env, rows, nPE, kernel); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
