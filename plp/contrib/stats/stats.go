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

// Package stats provides vector statistics (max, min, mean) for every
// numeric precision, each as a single-core operation and as a parallel
// operation over a team of cluster cores.
//
// The single-core forms run the kernel variant chosen by env.Variant(): the
// scalar loop on the control core, the lane-blocked simd kernel on the
// cluster. The parallel forms reduce per-core partials with the same kernel
// and are rejected on the control core with plp.ErrUnsupportedExecutionSite.
//
// Results are written through the res pointer, and only on success.
package stats

import (
	"fmt"

	"github.com/ajroetker/go-plp/plp"
	"github.com/ajroetker/go-plp/plp/simd"
)

// Max writes the largest element of src to *res.
func Max[T simd.Lanes](env *plp.Env, src []T, res *T) error {
	if len(src) == 0 {
		return fmt.Errorf("stats.Max: %w", plp.ErrEmptyInput)
	}
	*res = maxKernel[T](env.Variant())(src)
	return nil
}

// MaxParallel writes the largest element of src to *res, computed on nPE
// cluster cores.
func MaxParallel[T simd.Lanes](env *plp.Env, src []T, nPE int, res *T) error {
	if len(src) == 0 {
		return fmt.Errorf("stats.MaxParallel: %w", plp.ErrEmptyInput)
	}
	if err := plp.Reduce(env, src, nPE, maxKernel[T](env.Variant()), res); err != nil {
		return fmt.Errorf("stats.MaxParallel: %w", err)
	}
	return nil
}

// Min writes the smallest element of src to *res.
func Min[T simd.Lanes](env *plp.Env, src []T, res *T) error {
	if len(src) == 0 {
		return fmt.Errorf("stats.Min: %w", plp.ErrEmptyInput)
	}
	*res = minKernel[T](env.Variant())(src)
	return nil
}

// MinParallel writes the smallest element of src to *res, computed on nPE
// cluster cores.
func MinParallel[T simd.Lanes](env *plp.Env, src []T, nPE int, res *T) error {
	if len(src) == 0 {
		return fmt.Errorf("stats.MinParallel: %w", plp.ErrEmptyInput)
	}
	if err := plp.Reduce(env, src, nPE, minKernel[T](env.Variant()), res); err != nil {
		return fmt.Errorf("stats.MinParallel: %w", err)
	}
	return nil
}

// Mean writes the arithmetic mean of src to *res. Signed inputs are summed
// in int64 and unsigned inputs in uint64, and the quotient truncates toward
// zero; floating-point inputs are summed in float64. Integer sums that
// overflow the 64-bit accumulator wrap.
func Mean[T simd.Lanes](env *plp.Env, src []T, res *T) error {
	if len(src) == 0 {
		return fmt.Errorf("stats.Mean: %w", plp.ErrEmptyInput)
	}
	v := env.Variant()
	switch {
	case isFloat[T]():
		*res = T(sumKernel[T, float64](v)(src) / float64(len(src)))
	case isUnsigned[T]():
		*res = T(sumKernel[T, uint64](v)(src) / uint64(len(src)))
	default:
		*res = T(sumKernel[T, int64](v)(src) / int64(len(src)))
	}
	return nil
}

// MeanParallel is Mean computed on nPE cluster cores. Each core sums its
// partition and core 0 sums the partials.
func MeanParallel[T simd.Lanes](env *plp.Env, src []T, nPE int, res *T) error {
	if len(src) == 0 {
		return fmt.Errorf("stats.MeanParallel: %w", plp.ErrEmptyInput)
	}
	v := env.Variant()
	switch {
	case isFloat[T]():
		var sum float64
		if err := plp.MapReduce(env, src, nPE, sumKernel[T, float64](v), sumOf[float64], &sum); err != nil {
			return fmt.Errorf("stats.MeanParallel: %w", err)
		}
		*res = T(sum / float64(len(src)))
		return nil
	case isUnsigned[T]():
		var sum uint64
		if err := plp.MapReduce(env, src, nPE, sumKernel[T, uint64](v), sumOf[uint64], &sum); err != nil {
			return fmt.Errorf("stats.MeanParallel: %w", err)
		}
		*res = T(sum / uint64(len(src)))
		return nil
	}

	var sum int64
	if err := plp.MapReduce(env, src, nPE, sumKernel[T, int64](v), sumOf[int64], &sum); err != nil {
		return fmt.Errorf("stats.MeanParallel: %w", err)
	}
	*res = T(sum / int64(len(src)))
	return nil
}
