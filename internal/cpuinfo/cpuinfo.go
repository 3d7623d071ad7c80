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

// Package cpuinfo reports the platform and the CPU features detected by
// golang.org/x/sys/cpu.
package cpuinfo

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Platform identifies the running binary's target.
type Platform struct {
	GOOS   string
	GOARCH string
	NumCPU int
}

// CurrentPlatform returns the platform of the running process.
func CurrentPlatform() Platform {
	return Platform{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
	}
}

// Feature is one detected CPU capability.
type Feature struct {
	Name    string
	Enabled bool
	Note    string
}

// Features lists the floating-point related capabilities of the running CPU.
// It returns nil on architectures other than amd64 and arm64.
func Features() []Feature {
	switch runtime.GOARCH {
	case "arm64":
		return arm64Features()
	case "amd64":
		return amd64Features()
	}
	return nil
}

func arm64Features() []Feature {
	return []Feature{
		{"FP", cpu.ARM64.HasFP, "Floating point"},
		{"ASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"FPHP", cpu.ARM64.HasFPHP, "FP16 scalar, ARMv8.2-A"},
		{"ASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
		{"SVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
		{"ATOMICS", cpu.ARM64.HasATOMICS, "Large System Extensions"},
	}
}

func amd64Features() []Feature {
	return []Feature{
		{"SSE2", cpu.X86.HasSSE2, "float64 baseline"},
		{"SSE41", cpu.X86.HasSSE41, ""},
		{"AVX", cpu.X86.HasAVX, ""},
		{"AVX2", cpu.X86.HasAVX2, ""},
		{"FMA", cpu.X86.HasFMA, "fused multiply-add"},
		{"AVX512F", cpu.X86.HasAVX512F, ""},
	}
}
