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

package plp

import (
	"fmt"

	"github.com/ajroetker/go-plp/plp/cluster"
)

// Kernel is a reduction kernel: it folds a slice into one value with an
// associative, commutative operator such as max or sum.
type Kernel[T any] func(src []T) T

// Reduce computes kernel(src) on nPE cluster cores. Each core reduces its
// partition into a partial, and after the team barrier core 0 reduces the
// partials with the same kernel and writes *res.
//
// *res is written only on success.
func Reduce[T any](env *Env, src []T, nPE int, kernel Kernel[T], res *T) error {
	return MapReduce[T, T](env, src, nPE, kernel, kernel, res)
}

// MapReduce is Reduce for kernels whose partial type differs from the
// element type: local folds a partition of src into an R, and combine folds
// the per-core partials. combine(local(a), local(b)) must equal
// local(a ++ b).
func MapReduce[T, R any](env *Env, src []T, nPE int, local func([]T) R, combine func([]R) R, res *R) error {
	direct, err := env.plan(len(src), nPE)
	if err != nil {
		return err
	}
	if direct {
		*res = local(src)
		return nil
	}

	// The partials buffer lives exactly as long as the fork and combine.
	return cluster.WithScratch(env.Cluster, nPE, func(partials []R) error {
		args := reduceArgs[T, R]{
			src:      src,
			partials: partials,
			local:    local,
			combine:  combine,
			res:      res,
		}
		return cluster.Fork[reduceArgs[T, R]](env.Cluster, nPE, reduceEntry[T, R], &args)
	})
}

type reduceArgs[T, R any] struct {
	src      []T
	partials []R
	local    func([]T) R
	combine  func([]R) R
	res      *R
}

func reduceEntry[T, R any](core cluster.Core, a *reduceArgs[T, R]) {
	id := core.ID()
	off, n := cluster.Partition(len(a.src), core.NumPE(), id)
	a.partials[id] = a.local(a.src[off : off+n])

	core.Barrier()

	if id == 0 {
		*a.res = a.combine(a.partials)
	}
}

// ForRows runs kernel over [0, rows) on nPE cluster cores, each core taking
// one contiguous block of rows. Kernels write disjoint destination regions,
// so there is nothing to combine.
func ForRows(env *Env, rows, nPE int, kernel func(start, end int)) error {
	direct, err := env.plan(rows, nPE)
	if err != nil {
		return err
	}
	if direct {
		kernel(0, rows)
		return nil
	}

	args := rowsArgs{rows: rows, kernel: kernel}
	return cluster.Fork[rowsArgs](env.Cluster, nPE, rowsEntry, &args)
}

type rowsArgs struct {
	rows   int
	kernel func(start, end int)
}

func rowsEntry(core cluster.Core, a *rowsArgs) {
	off, n := cluster.Partition(a.rows, core.NumPE(), core.ID())
	a.kernel(off, off+n)
	core.Barrier()
}

// plan decides how a parallel request over n items runs. It reports
// direct=true when the whole range should run on the calling core.
func (e *Env) plan(n, nPE int) (direct bool, err error) {
	if e.Site != SiteCluster {
		e.log().Warn("parallel processing supported only for cluster side", "site", e.Site)
		return false, ErrUnsupportedExecutionSite
	}
	if nPE <= 0 {
		return false, fmt.Errorf("%w: got %d cores", cluster.ErrInvalidTeamSize, nPE)
	}
	if nPE == 1 {
		return true, nil
	}
	if e.Cluster == nil {
		return false, fmt.Errorf("%w: cluster site without a cluster", ErrInvalidArgument)
	}
	if n < e.Config.minElemsPerCore()*nPE {
		e.log().Debug("workload too small to split, running on one core", "n", n, "nPE", nPE)
		return true, nil
	}
	return false, nil
}
