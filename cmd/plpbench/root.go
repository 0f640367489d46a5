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

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-plp/plp"
	"github.com/ajroetker/go-plp/plp/cluster"
)

// options is shared by every subcommand.
type options struct {
	cfg     plp.Config
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "plpbench",
		Short:         "Inspect, time and verify the parallel cluster runtime",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.logger = newLogger(cmd.OutOrStdout(), opts.verbose)
			return nil
		},
	}

	// Flags start from the environment so that an explicit flag wins over
	// PLP_* and PLP_* wins over the built-in defaults.
	cfg, err := plp.ConfigFromEnv()
	if err != nil {
		cfg = plp.DefaultConfig()
		root.PersistentPreRunE = func(*cobra.Command, []string) error { return err }
	}
	if _, set := os.LookupEnv("PLP_NUM_CORES"); !set {
		cfg.NumCores = defaultCores()
	}
	opts.cfg = cfg
	bindConfigFlags(root.PersistentFlags(), &opts.cfg)
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug diagnostics such as degenerate-workload fallbacks")

	root.AddCommand(newInfoCmd(opts), newRunCmd(opts), newVerifyCmd(opts))
	return root
}

func bindConfigFlags(fs *pflag.FlagSet, cfg *plp.Config) {
	fs.IntVar(&cfg.NumCores, "cores", cfg.NumCores, "number of cluster cores")
	fs.IntVar(&cfg.MinElemsPerCore, "min-elems", cfg.MinElemsPerCore, "minimum elements per core before a request is split")
	fs.IntVar(&cfg.L1ScratchBytes, "scratch-bytes", cfg.L1ScratchBytes, "scratch budget for partial results, negative for unlimited")
	fs.BoolVar(&cfg.NoSIMD, "no-simd", cfg.NoSIMD, "force scalar kernels on the cluster")
}

// defaultCores is the physical core count of the host, or the PULP cluster
// size when cpuid cannot tell.
func defaultCores() int {
	if n := cpuid.CPU.PhysicalCores; n > 0 {
		return n
	}
	return plp.DefaultNumCores
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newEnv builds a cluster from the options and an Env issuing calls from
// site on it. The caller closes the returned cluster.
func (o *options) newEnv(site plp.Site) (*plp.Env, *cluster.Cluster) {
	cl := o.cfg.NewCluster()
	return plp.NewEnv(site, cl, plp.WithConfig(o.cfg), plp.WithLogger(o.logger)), cl
}
