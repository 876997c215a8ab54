//go:build amd64

package linalg

import "golang.org/x/sys/cpu"

// detectLevel picks the widest x86 extension the CPU reports.
func detectLevel() DispatchLevel {
	x := &cpu.X86
	if x.HasAVX512F {
		return DispatchAVX512
	}
	if x.HasAVX2 && x.HasFMA {
		return DispatchAVX2
	}
	if x.HasSSE2 {
		return DispatchSSE2
	}
	return DispatchScalar
}
