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
	"os"
	"strconv"

	"github.com/ajroetker/go-plp/plp/cluster"
	"github.com/ajroetker/go-plp/plp/simd"
)

// Defaults match a PULP cluster: 8 cores sharing 64 KiB of L1.
const (
	DefaultNumCores        = 8
	DefaultMinElemsPerCore = 2
)

// Config holds the tunables of the dispatch layer.
type Config struct {
	// NumCores is the cluster size used by NewCluster.
	NumCores int

	// MinElemsPerCore is the splitting cutoff: a parallel request over n
	// elements and nPE cores runs on the calling core when
	// n < MinElemsPerCore*nPE. Values below 1 are treated as 1.
	MinElemsPerCore int

	// NoSIMD forces scalar kernels on the cluster side.
	NoSIMD bool

	// L1ScratchBytes is the scratch budget for partial-result buffers.
	// Negative disables the limit.
	L1ScratchBytes int
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		NumCores:        DefaultNumCores,
		MinElemsPerCore: DefaultMinElemsPerCore,
		NoSIMD:          simd.NoSimdEnv(),
		L1ScratchBytes:  cluster.DefaultScratchBytes,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by PLP_NUM_CORES,
// PLP_MIN_ELEMS_PER_CORE, PLP_L1_SCRATCH_BYTES and PLP_NO_SIMD.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	for _, v := range []struct {
		name string
		dst  *int
	}{
		{"PLP_NUM_CORES", &cfg.NumCores},
		{"PLP_MIN_ELEMS_PER_CORE", &cfg.MinElemsPerCore},
		{"PLP_L1_SCRATCH_BYTES", &cfg.L1ScratchBytes},
	} {
		s := os.Getenv(v.name)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return cfg, fmt.Errorf("plp: parsing %s: %w", v.name, err)
		}
		*v.dst = n
	}
	return cfg, nil
}

// NewCluster creates a cluster sized and budgeted by c.
func (c Config) NewCluster() *cluster.Cluster {
	return cluster.New(c.NumCores, cluster.WithScratchBytes(c.L1ScratchBytes))
}

func (c Config) minElemsPerCore() int {
	return max(c.MinElemsPerCore, 1)
}
