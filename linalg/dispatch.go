package linalg

import (
	"os"
	"strconv"
)

// DispatchLevel identifies the instruction set detected at startup. Any level
// other than DispatchScalar turns on the float32/float64 fast path for matrix
// products and inverses.
type DispatchLevel int

const (
	// DispatchScalar runs every operation through the generic code.
	DispatchScalar DispatchLevel = iota
	// DispatchSSE2 is the x86-64 baseline.
	DispatchSSE2
	// DispatchAVX2 is x86-64 with 256-bit vectors.
	DispatchAVX2
	// DispatchAVX512 is x86-64 with AVX-512F.
	DispatchAVX512
	// DispatchNEON is AArch64 Advanced SIMD.
	DispatchNEON
)

var levelNames = [...]string{
	DispatchScalar: "scalar",
	DispatchSSE2:   "sse2",
	DispatchAVX2:   "avx2",
	DispatchAVX512: "avx512",
	DispatchNEON:   "neon",
}

// String returns the lower-case name of the level, or "unknown".
func (d DispatchLevel) String() string {
	if d < 0 || int(d) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[d]
}

// noSimdVar names the environment variable that pins the level to
// DispatchScalar.
const noSimdVar = "LINALG_NO_SIMD"

var (
	// currentLevel is fixed by init; tests may override it.
	currentLevel DispatchLevel

	// forceGeneric keeps the fast path off whatever currentLevel says.
	// Parity tests flip it to obtain reference results.
	forceGeneric bool
)

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		return
	}
	currentLevel = detectLevel()
}

// CurrentLevel returns the level selected at startup.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentName is shorthand for CurrentLevel().String().
func CurrentName() string { return currentLevel.String() }

// FastPathEnabled reports whether float32 and float64 matrix products and
// inverses run on the flat kernels.
func FastPathEnabled() bool {
	return !forceGeneric && currentLevel != DispatchScalar
}

// NoSimdEnv reports whether LINALG_NO_SIMD asks for the generic code.
// Values strconv.ParseBool understands are honored; any other non-empty
// value counts as set.
func NoSimdEnv() bool {
	v, ok := os.LookupEnv(noSimdVar)
	if !ok || v == "" {
		return false
	}
	set, err := strconv.ParseBool(v)
	return err != nil || set
}
