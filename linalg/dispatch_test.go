package linalg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(42), "unknown"},
		{DispatchLevel(-1), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String(): got %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	require.Equal(t, currentLevel, CurrentLevel())
	require.Equal(t, CurrentLevel().String(), CurrentName())
	t.Logf("Dispatch level: %s, fast path enabled: %v", CurrentName(), FastPathEnabled())

	if NoSimdEnv() {
		require.Equal(t, DispatchScalar, CurrentLevel())
	} else {
		require.Equal(t, detectLevel(), CurrentLevel())
	}
}

func TestFastPathEnabledFollowsLevel(t *testing.T) {
	level, generic := currentLevel, forceGeneric
	t.Cleanup(func() { currentLevel, forceGeneric = level, generic })

	forceGeneric = false
	currentLevel = DispatchScalar
	require.False(t, FastPathEnabled())
	currentLevel = DispatchNEON
	require.True(t, FastPathEnabled())
	forceGeneric = true
	require.False(t, FastPathEnabled())
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
		{"F", false},
		{"TRUE", true},
	}
	for _, tt := range tests {
		t.Setenv("LINALG_NO_SIMD", tt.value)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv with LINALG_NO_SIMD=%q: got %v, want %v", tt.value, got, tt.want)
		}
	}
}
