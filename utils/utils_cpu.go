// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import (
	"runtime"
	"sort"

	"golang.org/x/sys/cpu"
)

// Feature is one instruction-set extension the hash primitives may use.
type Feature struct {
	Name    string
	Present bool
}

/*
CPUFeatures reports the extensions relevant to hashing on this machine.

	Only the current GOARCH is probed; other architectures report nothing.
*/
func CPUFeatures() []Feature {
	var m map[string]bool
	switch runtime.GOARCH {
	case "amd64", "386":
		m = map[string]bool{
			"ssse3":  cpu.X86.HasSSSE3,
			"sse4.1": cpu.X86.HasSSE41,
			"avx2":   cpu.X86.HasAVX2,
			"bmi2":   cpu.X86.HasBMI2,
			"avx512": cpu.X86.HasAVX512F,
		}
	case "arm64":
		m = map[string]bool{
			"sha1":   cpu.ARM64.HasSHA1,
			"sha2":   cpu.ARM64.HasSHA2,
			"sha512": cpu.ARM64.HasSHA512,
			"sm3":    cpu.ARM64.HasSM3,
			"asimd":  cpu.ARM64.HasASIMD,
		}
	}
	res := make([]Feature, 0, len(m))
	for name, ok := range m {
		res = append(res, Feature{Name: name, Present: ok})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}
