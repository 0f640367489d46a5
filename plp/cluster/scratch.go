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

package cluster

import (
	"fmt"
	"sync"
	"unsafe"
)

// DefaultScratchBytes is the default scratch budget, the L1 size of a PULP
// cluster.
const DefaultScratchBytes = 64 * 1024

// Scratch accounts for the cluster-local memory used by partial-result
// buffers. It hands out ordinary Go slices but refuses requests that would
// exceed its byte budget.
type Scratch struct {
	mu       sync.Mutex
	capacity int // < 0 means unlimited
	used     int
	peak     int
}

// NewScratch returns a scratch allocator with the given byte budget.
// A negative capacity disables the limit.
func NewScratch(capacity int) *Scratch {
	return &Scratch{capacity: capacity}
}

// Capacity returns the byte budget, or a negative value when unlimited.
func (s *Scratch) Capacity() int {
	return s.capacity
}

// Used returns the bytes currently held.
func (s *Scratch) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.used
}

// Peak returns the largest number of bytes held at once.
func (s *Scratch) Peak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peak
}

func (s *Scratch) reserve(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.capacity >= 0 && s.used+n > s.capacity {
		return fmt.Errorf("%w: need %d bytes, %d of %d in use", ErrOutOfScratch, n, s.used, s.capacity)
	}
	s.used += n
	s.peak = max(s.peak, s.used)
	return nil
}

func (s *Scratch) release(n int) {
	s.mu.Lock()
	s.used -= n
	s.mu.Unlock()
}

// WithScratch acquires an n-element buffer from the cluster's scratch budget,
// calls fn with it and releases it when fn returns or panics. The buffer is
// not zeroed beyond Go's allocation guarantee and must not escape fn.
func WithScratch[T any](c *Cluster, n int, fn func(buf []T) error) error {
	var zero T
	size := n * int(unsafe.Sizeof(zero))
	if err := c.scratch.reserve(size); err != nil {
		return err
	}
	defer c.scratch.release(size)
	return fn(make([]T, n))
}
