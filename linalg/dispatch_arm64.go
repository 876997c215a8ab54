//go:build arm64

package linalg

import "golang.org/x/sys/cpu"

// detectLevel returns DispatchNEON on any ARMv8-A core; ASIMD is mandatory
// there but x/sys/cpu still reports it.
func detectLevel() DispatchLevel {
	if !cpu.ARM64.HasASIMD {
		return DispatchScalar
	}
	return DispatchNEON
}
