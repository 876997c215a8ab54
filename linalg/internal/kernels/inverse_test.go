package kernels

import (
	"math"
	"testing"
)

func checkIdentity[T Floats](t *testing.T, name string, m, inv []T, n int, tol float64) {
	t.Helper()
	prod := make([]T, n*n)
	MatMul(prod, m, inv, n, n, n)
	for c := range n {
		for r := range n {
			want := 0.0
			if c == r {
				want = 1
			}
			if got := float64(prod[c*n+r]); math.Abs(got-want) > tol {
				t.Errorf("%s: m * inverse at (%d, %d): got %v, want %v", name, c, r, got, want)
			}
		}
	}
}

func TestInverse2(t *testing.T) {
	m := []float32{3, 1.5, -2, 4}
	inv := make([]float32, 4)
	Inverse2(inv, m)
	checkIdentity(t, "Inverse2", m, inv, 2, 1e-6)

	// det 1: the inverse is exact.
	u := []float64{2, 1, 1, 1}
	got := make([]float64, 4)
	Inverse2(got, u)
	want := []float64{1, -1, -1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Inverse2 unimodular: element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInverse3(t *testing.T) {
	m := []float32{1.5, 0.25, -2, 3, 1, 0.5, -1, 2, 4}
	inv := make([]float32, 9)
	Inverse3(inv, m)
	checkIdentity(t, "Inverse3", m, inv, 3, 1e-6)

	if got := Determinant3([]float64{2, 0, 1, 1, 3, 2, 1, 1, 0}); got != -6 {
		t.Errorf("Determinant3: got %v, want -6", got)
	}
}

func TestInverse4(t *testing.T) {
	m := []float32{
		0.5, -1.25, 3, 2,
		1, 2.5, -1, 0.75,
		4, 0, 1.5, -2,
		-0.5, 3, 1, 1,
	}
	inv := make([]float32, 16)
	Inverse4(inv, m)
	checkIdentity(t, "Inverse4", m, inv, 4, 1e-6)

	d := []float64{2, 0, 0, 0, 0, 4, 0, 0, 0, 0, 8, 0, 0, 0, 0, 0.5}
	dinv := make([]float64, 16)
	Inverse4(dinv, d)
	for i, want := range []float64{0.5, 0.25, 0.125, 2} {
		if got := dinv[i*5]; got != want {
			t.Errorf("Inverse4 diagonal: element %d: got %v, want %v", i*5, got, want)
		}
	}
}

func TestInverseSingular(t *testing.T) {
	m := make([]float64, 16)
	for i := range m {
		m[i] = float64(i + 1)
	}
	inv := make([]float64, 16)
	Inverse4(inv, m)
	for i, x := range inv {
		if !math.IsInf(x, 0) && !math.IsNaN(x) {
			t.Errorf("Inverse4 singular: element %d is finite: %v", i, x)
		}
	}
}
