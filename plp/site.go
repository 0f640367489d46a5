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
	"strings"
)

// Site identifies which kind of core issues an operation.
type Site int

const (
	// SiteControl is the fabric-controller core. It runs scalar kernels only
	// and cannot launch parallel work.
	SiteControl Site = iota

	// SiteCluster is a core inside the compute cluster.
	SiteCluster
)

// String returns "control" or "cluster".
func (s Site) String() string {
	switch s {
	case SiteControl:
		return "control"
	case SiteCluster:
		return "cluster"
	default:
		return "unknown"
	}
}

// ParseSite parses the String form of a Site, case-insensitively.
func ParseSite(s string) (Site, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "control", "fc":
		return SiteControl, nil
	case "cluster", "cl":
		return SiteCluster, nil
	}
	return 0, fmt.Errorf("%w: unknown site %q", ErrInvalidArgument, s)
}

// Variant is a family of kernel implementations.
type Variant int

const (
	// VariantScalar kernels are plain loops valid on any core.
	VariantScalar Variant = iota

	// VariantVector kernels are lane-blocked on simd.Vec and tuned for the
	// cluster cores.
	VariantVector
)

// String returns "scalar" or "vector".
func (v Variant) String() string {
	switch v {
	case VariantScalar:
		return "scalar"
	case VariantVector:
		return "vector"
	default:
		return "unknown"
	}
}

// Resolve returns the kernel variant for a call issued from site.
func Resolve(site Site) Variant {
	if site == SiteCluster {
		return VariantVector
	}
	return VariantScalar
}
