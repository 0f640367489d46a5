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

// Slice is the contiguous range [Offset, Offset+Len) owned by one core.
type Slice struct {
	Offset int
	Len    int
}

// End returns Offset + Len.
func (s Slice) End() int {
	return s.Offset + s.Len
}

// Partition returns the slice of n elements owned by coreID in a team of nPE
// cores. Every core gets n/nPE elements and the last core also absorbs the
// remainder, so for n=10, nPE=3 the lengths are 3, 3, 4.
//
// nPE must be positive and coreID in [0, nPE). When n < nPE the leading cores
// get empty slices; callers avoid that with a minimum-elements cutoff.
func Partition(n, nPE, coreID int) (offset, length int) {
	base := n / nPE
	offset = coreID * base
	if coreID == nPE-1 {
		return offset, n - offset
	}
	return offset, base
}

// Slices returns the partition of n elements for every core, in core order.
func Slices(n, nPE int) []Slice {
	out := make([]Slice, nPE)
	for i := range nPE {
		out[i].Offset, out[i].Len = Partition(n, nPE, i)
	}
	return out
}
