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
	"bytes"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-plp/plp/cluster"
)

func maxInt(src []int) int {
	m := src[0]
	for _, v := range src[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func sumInt(src []int) int {
	s := 0
	for _, v := range src {
		s += v
	}
	return s
}

func newTestEnv(t *testing.T, site Site, cores int) (*Env, *bytes.Buffer) {
	t.Helper()
	cl := cluster.New(cores)
	t.Cleanup(cl.Close)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewEnv(site, cl, WithLogger(logger)), &buf
}

func TestReduceExample(t *testing.T) {
	env, _ := newTestEnv(t, SiteCluster, 8)

	var got int
	if err := Reduce(env, []int{3, 7, 2, 9, 4, 1}, 3, maxInt, &got); err != nil {
		t.Fatal(err)
	}
	if got != 9 {
		t.Errorf("Reduce max = %d, want 9", got)
	}
	if env.Cluster.Forks() != 1 {
		t.Errorf("Forks() = %d, want 1", env.Cluster.Forks())
	}
}

func TestReduceMatchesSerial(t *testing.T) {
	env, _ := newTestEnv(t, SiteCluster, 8)
	rng := rand.New(rand.NewSource(7))

	for range 200 {
		n := 1 + rng.Intn(300)
		src := make([]int, n)
		for i := range src {
			src[i] = rng.Intn(2001) - 1000
		}
		want := maxInt(src)
		for nPE := 1; nPE <= 8; nPE++ {
			var got int
			if err := Reduce(env, src, nPE, maxInt, &got); err != nil {
				t.Fatalf("n=%d nPE=%d: %v", n, nPE, err)
			}
			if got != want {
				t.Fatalf("n=%d nPE=%d: max = %d, want %d", n, nPE, got, want)
			}
		}
	}
}

func TestReduceSingleCoreIsDirect(t *testing.T) {
	env, _ := newTestEnv(t, SiteCluster, 4)

	src := []int{5, -1, 12, 3}
	var got int
	if err := Reduce(env, src, 1, sumInt, &got); err != nil {
		t.Fatal(err)
	}
	if got != sumInt(src) {
		t.Errorf("sum = %d, want %d", got, sumInt(src))
	}
	if env.Cluster.Forks() != 0 {
		t.Errorf("Forks() = %d, want 0 for nPE=1", env.Cluster.Forks())
	}
}

func TestReduceDegenerateFallback(t *testing.T) {
	env, logs := newTestEnv(t, SiteCluster, 8)

	// 7 elements over 4 cores is below 2 per core.
	src := []int{4, 8, 15, 16, 23, 42, 1}
	var partitions [][]int
	var mu sync.Mutex
	local := func(s []int) int {
		mu.Lock()
		partitions = append(partitions, s)
		mu.Unlock()
		return maxInt(s)
	}

	var got int
	if err := Reduce(env, src, 4, local, &got); err != nil {
		t.Fatal(err)
	}
	if got != 42 {
		t.Errorf("max = %d, want 42", got)
	}
	if env.Cluster.Forks() != 0 {
		t.Errorf("Forks() = %d, want 0 for degenerate workload", env.Cluster.Forks())
	}
	if diff := cmp.Diff([][]int{src}, partitions); diff != "" {
		t.Errorf("kernel calls mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), "too small to split") {
		t.Errorf("missing debug log, got %q", logs.String())
	}
}

func TestReduceNoEmptyPartitions(t *testing.T) {
	env, _ := newTestEnv(t, SiteCluster, 8)
	env.Config.MinElemsPerCore = 0 // clamped to 1

	var mu sync.Mutex
	var lengths []int
	local := func(s []int) int {
		mu.Lock()
		lengths = append(lengths, len(s))
		mu.Unlock()
		if len(s) == 0 {
			return 0
		}
		return maxInt(s)
	}

	var got int
	if err := Reduce(env, []int{1, 2, 3}, 8, local, &got); err != nil {
		t.Fatal(err)
	}
	for _, l := range lengths {
		if l == 0 {
			t.Errorf("kernel called on an empty partition: %v", lengths)
		}
	}
}

func TestReduceControlSiteRejected(t *testing.T) {
	env, logs := newTestEnv(t, SiteControl, 8)

	called := false
	res := -1
	err := Reduce(env, []int{1, 2, 3, 4, 5, 6, 7, 8}, 4, func(s []int) int {
		called = true
		return maxInt(s)
	}, &res)
	if !errors.Is(err, ErrUnsupportedExecutionSite) {
		t.Errorf("error = %v, want ErrUnsupportedExecutionSite", err)
	}
	if res != -1 {
		t.Errorf("res = %d, want untouched -1", res)
	}
	if called {
		t.Error("kernel ran on the control site")
	}
	if env.Cluster.Forks() != 0 {
		t.Errorf("Forks() = %d, want 0", env.Cluster.Forks())
	}
	if !strings.Contains(logs.String(), "supported only for cluster side") {
		t.Errorf("missing diagnostic, got %q", logs.String())
	}
}

func TestReduceInvalidTeam(t *testing.T) {
	env, _ := newTestEnv(t, SiteCluster, 2)

	var res int
	if err := Reduce(env, make([]int, 64), 0, sumInt, &res); !errors.Is(err, cluster.ErrInvalidTeamSize) {
		t.Errorf("nPE=0 error = %v, want ErrInvalidTeamSize", err)
	}
	if err := Reduce(env, make([]int, 64), 4, sumInt, &res); !errors.Is(err, cluster.ErrTeamTooLarge) {
		t.Errorf("nPE=4 on 2 cores error = %v, want ErrTeamTooLarge", err)
	}
}

func TestReduceScratchExhausted(t *testing.T) {
	cl := cluster.New(4, cluster.WithScratchBytes(8))
	defer cl.Close()
	env := NewEnv(SiteCluster, cl, WithLogger(slog.New(slog.DiscardHandler)))

	// 4 int64 partials need 32 bytes.
	res := int64(-1)
	err := Reduce(env, make([]int64, 100), 4, func(s []int64) int64 { return 0 }, &res)
	if !errors.Is(err, cluster.ErrOutOfScratch) {
		t.Errorf("error = %v, want ErrOutOfScratch", err)
	}
	if res != -1 {
		t.Errorf("res = %d, want untouched -1", res)
	}
	if cl.Scratch().Used() != 0 {
		t.Errorf("scratch Used() = %d, want 0", cl.Scratch().Used())
	}
}

func TestMapReduceWidening(t *testing.T) {
	env, _ := newTestEnv(t, SiteCluster, 8)

	src := make([]int8, 1000)
	for i := range src {
		src[i] = 100
	}
	local := func(s []int8) int64 {
		var acc int64
		for _, v := range s {
			acc += int64(v)
		}
		return acc
	}
	combine := func(p []int64) int64 {
		var acc int64
		for _, v := range p {
			acc += v
		}
		return acc
	}

	var got int64
	if err := MapReduce(env, src, 7, local, combine, &got); err != nil {
		t.Fatal(err)
	}
	if got != 100000 {
		t.Errorf("sum = %d, want 100000", got)
	}
}

func TestForRows(t *testing.T) {
	env, _ := newTestEnv(t, SiteCluster, 8)

	const rows = 37
	owner := make([]int, rows)
	for i := range owner {
		owner[i] = -1
	}
	var mu sync.Mutex
	calls := 0
	err := ForRows(env, rows, 5, func(start, end int) {
		mu.Lock()
		calls++
		mu.Unlock()
		for r := start; r < end; r++ {
			owner[r] = start
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 5 {
		t.Errorf("kernel calls = %d, want 5", calls)
	}
	for r, o := range owner {
		if o == -1 {
			t.Errorf("row %d not written", r)
		}
	}
}

func TestForRowsControlSite(t *testing.T) {
	env, _ := newTestEnv(t, SiteControl, 4)

	err := ForRows(env, 100, 4, func(start, end int) {
		t.Error("kernel ran on the control site")
	})
	if !errors.Is(err, ErrUnsupportedExecutionSite) {
		t.Errorf("error = %v, want ErrUnsupportedExecutionSite", err)
	}
}

func TestClusterSiteWithoutCluster(t *testing.T) {
	env := NewEnv(SiteCluster, nil, WithLogger(slog.New(slog.DiscardHandler)))

	var res int
	if err := Reduce(env, make([]int, 100), 4, sumInt, &res); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("error = %v, want ErrInvalidArgument", err)
	}
	// A single core never needs the cluster.
	if err := Reduce(env, []int{1, 2}, 1, sumInt, &res); err != nil || res != 3 {
		t.Errorf("nPE=1: res=%d err=%v, want 3 <nil>", res, err)
	}
}

func BenchmarkReduce(b *testing.B) {
	cl := cluster.New(8)
	defer cl.Close()
	env := NewEnv(SiteCluster, cl)
	src := make([]int, 1<<16)
	for i := range src {
		src[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var res int
		_ = Reduce(env, src, 8, maxInt, &res)
	}
}
