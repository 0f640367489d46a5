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

// Package matrix provides row-major matrix fills and products for the
// cluster runtime.
//
// Every operation has a single-core form and a Parallel form that splits
// the rows of the destination across a team of cluster cores with
// plp.ForRows. Each core writes a disjoint block of rows, so the parallel
// result is bit-identical to the single-core one.
//
// Buffers are flat slices. Strided variants take the distance between row
// starts in elements; padding between rows is never written. Arguments are
// validated before any buffer is touched and violations are reported as
// plp.ErrInvalidArgument.
//
// Example:
//
//	env := plp.NewEnv(plp.SiteCluster, cl)
//	c := make([]int32, m*o)
//	if err := matrix.MatMulParallel(env, a, b, m, n, o, 8, c); err != nil {
//		return err
//	}
package matrix
