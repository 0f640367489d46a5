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

// Package cluster models a compute cluster: a fixed set of persistent cores
// that run one team at a time. A team of nPE cores executes the same entry
// function concurrently, each core learning its identity from the Core
// handle, and the launcher blocks until every core has returned.
//
// Usage:
//
//	c := cluster.New(8)
//	defer c.Close()
//
//	err := cluster.Fork(c, 4, func(core cluster.Core, args *maxArgs) {
//	    off, n := cluster.Partition(len(args.src), core.NumPE(), core.ID())
//	    args.partials[core.ID()] = maxOf(args.src[off : off+n])
//	    core.Barrier()
//	}, &args)
package cluster

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Cluster is a persistent set of worker cores. Cores are spawned once at
// creation and reused across forks.
type Cluster struct {
	numCores int
	workC    chan task

	// forkMu serializes forks: a cluster runs a single team at a time, so
	// team barriers never share cores.
	forkMu    sync.Mutex
	closeOnce sync.Once
	closed    atomic.Bool
	forks     atomic.Int64

	scratch *Scratch
}

// task is one core's share of a fork.
type task struct {
	run  func()
	done *sync.WaitGroup
}

// Option configures a Cluster.
type Option func(*Cluster)

// WithScratchBytes sets the scratch (L1) budget in bytes. A negative value
// disables the limit.
func WithScratchBytes(n int) Option {
	return func(c *Cluster) {
		c.scratch = NewScratch(n)
	}
}

// New creates a cluster with numCores persistent cores.
// If numCores <= 0, uses GOMAXPROCS.
func New(numCores int, opts ...Option) *Cluster {
	if numCores <= 0 {
		numCores = runtime.GOMAXPROCS(0)
	}

	c := &Cluster{
		numCores: numCores,
		workC:    make(chan task, numCores),
		scratch:  NewScratch(DefaultScratchBytes),
	}
	for _, opt := range opts {
		opt(c)
	}

	for range numCores {
		go c.core()
	}
	return c
}

// core is the main loop of each persistent core goroutine.
func (c *Cluster) core() {
	for t := range c.workC {
		t.run()
		t.done.Done()
	}
}

// NumCores returns the number of cores in the cluster.
func (c *Cluster) NumCores() int {
	return c.numCores
}

// Forks returns how many teams have been launched on this cluster.
func (c *Cluster) Forks() int64 {
	return c.forks.Load()
}

// Scratch returns the cluster's scratch allocator.
func (c *Cluster) Scratch() *Scratch {
	return c.scratch
}

// Close shuts down the persistent cores after the running fork, if any,
// completes. Forks issued after Close still run, each core on a freshly
// spawned goroutine. Calling Close multiple times is safe.
func (c *Cluster) Close() {
	c.closeOnce.Do(func() {
		c.forkMu.Lock()
		defer c.forkMu.Unlock()
		c.closed.Store(true)
		close(c.workC)
	})
}

// Core is the execution environment of one core inside a team.
type Core struct {
	id   int
	team *team
}

type team struct {
	nPE     int
	barrier *barrier
}

// ID returns the core's index in the team, in [0, NumPE()).
func (c Core) ID() int {
	return c.id
}

// NumPE returns the number of cores in the team.
func (c Core) NumPE() int {
	return c.team.nPE
}

// Barrier blocks until every core of the team has reached it. Writes made
// before the barrier are visible to every core after it. A core that never
// arrives stalls the whole team.
func (c Core) Barrier() {
	c.team.barrier.wait()
}

// Entry is the function every core of a team runs. args is shared by all
// cores and must be treated as read-only, apart from each core's own
// destination region.
type Entry[A any] func(core Core, args *A)

// Fork runs entry on nPE cores concurrently and returns once all of them
// have returned. Forks on one cluster run one at a time; an entry must not
// fork on its own cluster.
func Fork[A any](c *Cluster, nPE int, entry Entry[A], args *A) error {
	if nPE <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTeamSize, nPE)
	}
	if nPE > c.numCores {
		return fmt.Errorf("%w: %d cores requested, cluster has %d", ErrTeamTooLarge, nPE, c.numCores)
	}

	c.forkMu.Lock()
	defer c.forkMu.Unlock()
	c.forks.Add(1)

	tm := &team{nPE: nPE, barrier: newBarrier(nPE)}
	closed := c.closed.Load()

	var wg sync.WaitGroup
	wg.Add(nPE)
	for id := range nPE {
		core := Core{id: id, team: tm}
		run := func() { entry(core, args) }
		if closed {
			go func() {
				defer wg.Done()
				run()
			}()
			continue
		}
		c.workC <- task{run: run, done: &wg}
	}
	wg.Wait()
	return nil
}
