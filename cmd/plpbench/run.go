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
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-plp/plp"
)

func newRunCmd(opts *options) *cobra.Command {
	var (
		size  int
		nPE   int
		iters int
		site  string
	)
	cmd := &cobra.Command{
		Use:       "run <operation>",
		Short:     "Time one operation on a single core and on a team of cores",
		Long:      "Time one operation on a single core and on a team of cores.\n\nOperations: " + strings.Join(operationNames(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: operationNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := lookupOperation(args[0])
			if !ok {
				return fmt.Errorf("unknown operation %q, want one of %s", args[0], strings.Join(operationNames(), ", "))
			}
			s, err := plp.ParseSite(site)
			if err != nil {
				return err
			}
			if size <= 0 {
				size = op.defaultSize
			}
			if nPE <= 0 {
				nPE = opts.cfg.NumCores
			}

			env, cl := opts.newEnv(s)
			defer cl.Close()
			w := op.prepare(rand.New(rand.NewSource(1)), size)

			serial, err := timeIt(iters, func() error { return w.serial(env) })
			if err != nil {
				return fmt.Errorf("%s serial: %w", op.name, err)
			}
			parallel, err := timeIt(iters, func() error { return w.parallel(env, nPE) })
			if err != nil {
				return fmt.Errorf("%s parallel: %w", op.name, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s), size %d, %s site, %s variant\n", op.name, op.desc, size, title.String(s.String()), title.String(env.Variant().String()))
			fmt.Fprintf(out, "  1 core:   %v/op\n", serial)
			fmt.Fprintf(out, "  %d cores: %v/op (%.2fx)\n", nPE, parallel, float64(serial)/float64(max(parallel, 1)))
			fmt.Fprintf(out, "  forks:    %d\n", cl.Forks())
			if d := w.diff(); d != "" {
				return fmt.Errorf("%s: parallel result differs from single core (-serial +parallel):\n%s", op.name, d)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 0, "vector length, or matrix side for matrix operations (0 uses the operation default)")
	cmd.Flags().IntVar(&nPE, "pe", 0, "team size for the parallel run (0 uses --cores)")
	cmd.Flags().IntVar(&iters, "iters", 10, "timed iterations per form")
	cmd.Flags().StringVar(&site, "site", "cluster", "execution site issuing the calls: cluster or control")
	return cmd
}

// timeIt runs fn once to warm up and then iters times, returning the mean
// duration of the timed runs.
func timeIt(iters int, fn func() error) (time.Duration, error) {
	if err := fn(); err != nil {
		return 0, err
	}
	iters = max(iters, 1)
	start := time.Now()
	for range iters {
		if err := fn(); err != nil {
			return 0, err
		}
	}
	return time.Since(start) / time.Duration(iters), nil
}
