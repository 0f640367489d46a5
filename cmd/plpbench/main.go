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

// Command plpbench reports how the cluster runtime dispatches on this host,
// times operations on one core against a team of cores, and self-checks
// every parallel operation against its single-core form.
//
// Usage:
//
//	plpbench info
//	plpbench run max -n 1048576 --pe 8
//	plpbench run matmul -n 128 --pe 4 --iters 20
//	plpbench verify --cores 8 --verbose
//
// Cluster settings default to the PLP_* environment variables and can be
// overridden with --cores, --min-elems, --scratch-bytes and --no-simd.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
