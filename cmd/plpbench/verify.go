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
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-plp/plp"
)

// Sizes used by verify: small enough to run every team size quickly, and
// chosen not to divide evenly by common core counts.
var verifySizes = map[string]int{
	"max": 4099, "min": 4099, "mean": 4099, "mean-f32": 4099,
	"fill": 37, "filli": 37,
	"matmul": 29, "matmul-trans": 29, "matmul-q": 29, "matmul-cmplx": 13,
}

type checkResult struct {
	op  string
	nPE int
	err error
}

func newVerifyCmd(opts *options) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every parallel operation against its single-core form for each team size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return verify(cmd.Context(), cmd.OutOrStdout(), opts, jobs)
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "checks to run concurrently, each on its own cluster")
	return cmd
}

func verify(ctx context.Context, out io.Writer, opts *options, jobs int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var results []*checkResult
	for _, op := range operations {
		for nPE := 1; nPE <= opts.cfg.NumCores; nPE++ {
			results = append(results, &checkResult{op: op.name, nPE: nPE})
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for _, r := range results {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.err = runCheck(opts, r.op, r.nPE)
			return nil
		})
	}
	g.Go(func() error {
		return checkControlSiteRejected(opts)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		status := "ok"
		if r.err != nil {
			status = "FAIL: " + r.err.Error()
			failed++
		}
		fmt.Fprintf(out, "%-14s nPE=%-3d %s\n", r.op, r.nPE, status)
	}
	fmt.Fprintf(out, "%d checks, %d failed\n", len(results), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	return nil
}

// runCheck runs one operation on a cluster of its own so that concurrent
// checks never queue behind each other's forks.
func runCheck(opts *options, name string, nPE int) error {
	op, _ := lookupOperation(name)
	env, cl := opts.newEnv(plp.SiteCluster)
	defer cl.Close()

	w := op.prepare(rand.New(rand.NewSource(int64(nPE))), verifySizes[name])
	if err := w.serial(env); err != nil {
		return fmt.Errorf("serial: %w", err)
	}
	if err := w.parallel(env, nPE); err != nil {
		return fmt.Errorf("parallel: %w", err)
	}
	if d := w.diff(); d != "" {
		return fmt.Errorf("results differ (-serial +parallel):\n%s", d)
	}
	return nil
}

// checkControlSiteRejected confirms that parallel calls issued from the
// control core are refused without forking.
func checkControlSiteRejected(opts *options) error {
	env, cl := opts.newEnv(plp.SiteControl)
	defer cl.Close()

	for _, op := range operations {
		w := op.prepare(rand.New(rand.NewSource(0)), verifySizes[op.name])
		if err := w.parallel(env, 2); !errors.Is(err, plp.ErrUnsupportedExecutionSite) {
			return fmt.Errorf("%s from the control site: got %v, want %v", op.name, err, plp.ErrUnsupportedExecutionSite)
		}
	}
	if cl.Forks() != 0 {
		return fmt.Errorf("control-site calls forked %d teams", cl.Forks())
	}
	return nil
}
