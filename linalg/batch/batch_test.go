// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package batch

import (
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-linalg/linalg"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func points(n int) []linalg.Vector4[float32] {
	out := make([]linalg.Vector4[float32], n)
	for i := range out {
		out[i] = linalg.NewVector4(float32(i%17), float32(i%5)-2, float32(i%3), 1)
	}
	return out
}

func TestTransform(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	m := linalg.Matrix4x4Of[float32](
		1, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 3, 0,
		5, 6, 7, 1,
	)
	src := points(3*Grain + 11)

	want := make([]linalg.Vector4[float32], len(src))
	for i, p := range src {
		want[i] = m.MulVector(p)
	}

	got := make([]linalg.Vector4[float32], len(src))
	Transform(pool, m, got, src)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Transform mismatch (-want +got):\n%s", diff)
	}

	// In place, and without a pool.
	inPlace := points(len(src))
	Transform(nil, m, inPlace, inPlace)
	if diff := cmp.Diff(want, inPlace); diff != "" {
		t.Errorf("Transform in place mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformShapes(t *testing.T) {
	m := linalg.Matrix3x2Of(1, 2, 3, 4, 5, 6)
	src := []linalg.Vector3[int]{{1, 0, 0}, {0, 1, 0}, {1, 1, 1}}
	dst := make([]linalg.Vector2[int], len(src))
	Transform(nil, m, dst, src)

	want := []linalg.Vector2[int]{{1, 2}, {3, 4}, {9, 12}}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("Transform Matrix3x2 mismatch (-want +got):\n%s", diff)
	}

	require.PanicsWithValue(t, "Transform: dst shorter than src", func() {
		Transform(nil, m, dst[:2], src)
	})
}

func TestApplyNormalize(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	src := make([]linalg.Vector3[float64], 2*Grain+1)
	for i := range src {
		src[i] = linalg.NewVector3(float64(i+1), -2, 0.5)
	}

	got := make([]linalg.Vector3[float64], len(src))
	Normalize(pool, got, src)
	for i := range src {
		if want := linalg.Normalize(src[i]); got[i] != want {
			t.Fatalf("Normalize: element %d: got %v, want %v", i, got[i], want)
		}
	}

	doubled := make([]linalg.Vector3[float64], len(src))
	Apply(pool, doubled, src, func(v linalg.Vector3[float64]) linalg.Vector3[float64] {
		return v.MulScalar(2)
	})
	require.Equal(t, src[7].MulScalar(2), doubled[7])
	require.Panics(t, func() { Apply(nil, doubled[:1], src, linalg.Normalize[linalg.Vector3[float64], float64]) })
}

func TestDots(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	n := Grain + 500
	x := make([]linalg.Vector2[int64], n)
	y := make([]linalg.Vector2[int64], n)
	for i := range n {
		x[i] = linalg.NewVector2(int64(i), 1)
		y[i] = linalg.NewVector2[int64](2, int64(i))
	}

	dst := make([]int64, n)
	Dots(pool, dst, x, y)
	for i, d := range dst {
		if d != int64(3*i) {
			t.Fatalf("Dots: element %d: got %d, want %d", i, d, 3*i)
		}
	}

	require.PanicsWithValue(t, "Dots: x and y differ in length", func() {
		Dots(pool, dst, x, y[:3])
	})
	require.PanicsWithValue(t, "Dots: dst shorter than x", func() {
		Dots(pool, dst[:3], x, y)
	})
}

func TestTransformFractional(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	var m linalg.Matrix3x4[float64]
	for i := range m.Len() {
		m.SetElement(i, rng.Float64()*2-1)
	}
	src := make([]linalg.Vector3[float64], 2*Grain+37)
	for i := range src {
		src[i] = linalg.NewVector3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
	}

	got := make([]linalg.Vector4[float64], len(src))
	Transform(New(0), m, got, src)
	for i, v := range src {
		if want := m.MulVector(v); got[i] != want {
			t.Fatalf("Transform: element %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestDotsFractional(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	rng := rand.New(rand.NewPCG(5, 1))
	n := 3*Grain + 3
	x := make([]linalg.Vector4[float32], n)
	y := make([]linalg.Vector4[float32], n)
	for i := range n {
		x[i] = linalg.NewVector4(rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1)
		y[i] = linalg.NewVector4(rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1)
	}

	dst := make([]float32, n)
	Dots(pool, dst, x, y)
	for i := range dst {
		if want := linalg.Dot(x[i], y[i]); dst[i] != want {
			t.Fatalf("Dots: element %d: got %v, want %v", i, dst[i], want)
		}
	}
}
