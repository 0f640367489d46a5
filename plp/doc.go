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

// Package plp routes numeric operations to the kernel variant that suits
// the core issuing them, and fans parallel operations out across a compute
// cluster.
//
// Every operation takes an *Env naming its execution site. Calls from the
// control core run the scalar kernels; calls from inside the cluster run the
// lane-blocked vector kernels from package simd. Parallel operations are only
// accepted from the cluster side:
//
//	cfg := plp.DefaultConfig()
//	cl := cfg.NewCluster()
//	defer cl.Close()
//	env := plp.NewEnv(plp.SiteCluster, cl, plp.WithConfig(cfg))
//
//	var best int8
//	if err := stats.MaxParallel(env, samples, 8, &best); err != nil {
//	    return err
//	}
//
// A parallel call partitions its input with cluster.Partition, forks one team
// of cores, and, for reductions, lets core 0 combine the per-core partials
// with the same kernel once every core has passed the team barrier. Inputs
// too small to split (fewer than Config.MinElemsPerCore elements per core)
// run on the calling core instead.
//
// Operations live in sub-packages:
//   - contrib/stats: Max, Min, Mean
//   - contrib/matrix: identity and constant fills, matrix products
package plp
