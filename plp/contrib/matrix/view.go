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
)

// View is a row-major matrix of Rows x Cols elements laid out in Data with
// Stride elements between the starts of consecutive rows. Elements between
// Cols and Stride in a row are padding and never written.
type View[T any] struct {
	Data   []T
	Rows   int
	Cols   int
	Stride int
}

// Dense returns a View whose stride equals its column count.
func Dense[T any](data []T, rows, cols int) View[T] {
	return View[T]{Data: data, Rows: rows, Cols: cols, Stride: cols}
}

// At returns element (i, j).
func (v View[T]) At(i, j int) T {
	return v.Data[i*v.Stride+j]
}

// Row returns the Cols elements of row i, without padding.
func (v View[T]) Row(i int) []T {
	off := i * v.Stride
	return v.Data[off : off+v.Cols : off+v.Cols]
}

// Validate reports plp.ErrInvalidArgument if the dimensions are negative,
// the stride is shorter than a row, or Data is too short to hold the view.
func (v View[T]) Validate() error {
	if v.Rows < 0 || v.Cols < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", plp.ErrInvalidArgument, v.Rows, v.Cols)
	}
	if v.Stride < v.Cols {
		return fmt.Errorf("%w: stride %d shorter than %d columns", plp.ErrInvalidArgument, v.Stride, v.Cols)
	}
	if need := v.span(); len(v.Data) < need {
		return fmt.Errorf("%w: %dx%d view with stride %d needs %d elements, have %d",
			plp.ErrInvalidArgument, v.Rows, v.Cols, v.Stride, need, len(v.Data))
	}
	return nil
}

// span is the number of elements from the first element of the view to one
// past its last, which is shorter than Rows*Stride when the last row has
// no trailing padding.
func (v View[T]) span() int {
	if v.Rows == 0 || v.Cols == 0 {
		return 0
	}
	return (v.Rows-1)*v.Stride + v.Cols
}

// validate checks each view in order and returns the first failure, tagged
// with the operand name.
func validate(names string, errs ...error) error {
	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("operand %c: %w", names[i], err)
		}
	}
	return nil
}
