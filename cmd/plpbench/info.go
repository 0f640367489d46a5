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
	"io"
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-plp/plp"
	"github.com/ajroetker/go-plp/plp/simd"
)

var title = cases.Title(language.English)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print host CPU features and how each execution site dispatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printInfo(cmd.OutOrStdout(), opts.cfg)
			return nil
		},
	}
}

func printInfo(w io.Writer, cfg plp.Config) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "CPU: %s (%s)\n", cpuid.CPU.BrandName, cpuid.CPU.VendorString)
	fmt.Fprintf(w, "Physical cores: %d, logical cores: %d\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	if l1 := cpuid.CPU.Cache.L1D; l1 > 0 {
		fmt.Fprintf(w, "L1 data cache: %d bytes\n", l1)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Vector level: %s\n", simd.CurrentName())
	fmt.Fprintf(w, "Vector width: %d bytes\n", simd.CurrentWidth())
	fmt.Fprintf(w, "Lanes: int8=%d int16=%d int32=%d float32=%d\n",
		simd.MaxLanes[int8](), simd.MaxLanes[int16](), simd.MaxLanes[int32](), simd.MaxLanes[float32]())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Cluster ===")
	fmt.Fprintf(w, "  Cores:            %d\n", cfg.NumCores)
	fmt.Fprintf(w, "  MinElemsPerCore:  %d\n", cfg.MinElemsPerCore)
	fmt.Fprintf(w, "  L1ScratchBytes:   %d\n", cfg.L1ScratchBytes)
	fmt.Fprintf(w, "  NoSIMD:           %v\n", cfg.NoSIMD)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Dispatch ===")
	for _, site := range []plp.Site{plp.SiteControl, plp.SiteCluster} {
		env := plp.NewEnv(site, nil, plp.WithConfig(cfg))
		parallel := "no"
		if site == plp.SiteCluster {
			parallel = "yes"
		}
		fmt.Fprintf(w, "  %-8s variant=%-7s parallel=%s\n", title.String(site.String()), title.String(env.Variant().String()), parallel)
	}
	fmt.Fprintln(w)

	switch runtime.GOARCH {
	case "amd64":
		printAMD64Features(w)
	case "arm64":
		printARM64Features(w)
	}
}

func printAMD64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(w, "  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Fprintf(w, "  HasSSE41:    %v\n", cpu.X86.HasSSE41)
	fmt.Fprintf(w, "  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Fprintf(w, "  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Fprintf(w, "  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Fprintf(w, "  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Fprintf(w, "  HasAVX512BW: %v\n", cpu.X86.HasAVX512BW)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== github.com/klauspost/cpuid/v2 ===")
	fmt.Fprintf(w, "  AVX2:        %v\n", cpuid.CPU.Supports(cpuid.AVX2))
	fmt.Fprintf(w, "  AVX512F:     %v\n", cpuid.CPU.Supports(cpuid.AVX512F))
	fmt.Fprintf(w, "  AVX512BW:    %v\n", cpuid.CPU.Supports(cpuid.AVX512BW))
}

func printARM64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(w, "  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(w, "  HasASIMDHP:  %v (FP16 NEON)\n", cpu.ARM64.HasASIMDHP)
	fmt.Fprintf(w, "  HasASIMDDP:  %v (dot product)\n", cpu.ARM64.HasASIMDDP)
	fmt.Fprintf(w, "  HasSVE:      %v\n", cpu.ARM64.HasSVE)
	fmt.Fprintf(w, "  HasSVE2:     %v\n", cpu.ARM64.HasSVE2)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== github.com/klauspost/cpuid/v2 ===")
	fmt.Fprintf(w, "  ASIMD:       %v\n", cpuid.CPU.Supports(cpuid.ASIMD))
	fmt.Fprintf(w, "  SVE:         %v\n", cpuid.CPU.Supports(cpuid.SVE))
}
