package kernels

import (
	"math/rand/v2"
	"testing"
)

// naiveMatMul is the textbook triple loop over column-major operands.
func naiveMatMul(a, b []float64, rows, inner, cols int) []float64 {
	dst := make([]float64, rows*cols)
	for j := range cols {
		for i := range rows {
			var acc float64
			for k := range inner {
				acc += a[k*rows+i] * b[j*inner+k]
			}
			dst[j*rows+i] = acc
		}
	}
	return dst
}

func randomInts(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(rng.IntN(21) - 10)
	}
	return out
}

func TestMatMulShapes(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for rows := 1; rows <= 4; rows++ {
		for inner := 1; inner <= 4; inner++ {
			for cols := 1; cols <= 4; cols++ {
				a := randomInts(rng, rows*inner)
				b := randomInts(rng, inner*cols)
				want := naiveMatMul(a, b, rows, inner, cols)

				got := make([]float64, rows*cols)
				MatMul(got, a, b, rows, inner, cols)
				for i := range want {
					if got[i] != want[i] {
						t.Errorf("MatMul %dx%d * %dx%d: element %d: got %v, want %v",
							rows, inner, inner, cols, i, got[i], want[i])
					}
				}
			}
		}
	}
}

func TestMatMul4x4(t *testing.T) {
	// Column-major: a is [[1, 5, 9, 13], [2, 6, 10, 14], ...] by rows.
	a := make([]float32, 16)
	for i := range a {
		a[i] = float32(i + 1)
	}
	identity := []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

	got := make([]float32, 16)
	MatMul(got, a, identity, 4, 4, 4)
	for i := range a {
		if got[i] != a[i] {
			t.Errorf("MatMul a * I: element %d: got %v, want %v", i, got[i], a[i])
		}
	}

	v := []float32{1, 1, 1, 1}
	col := make([]float32, 4)
	MatMul(col, a, v, 4, 4, 1)
	want := []float32{28, 32, 36, 40}
	for i := range want {
		if col[i] != want[i] {
			t.Errorf("MatMul a * ones: lane %d: got %v, want %v", i, col[i], want[i])
		}
	}
}

func TestVecMat(t *testing.T) {
	// 3 rows x 2 columns: columns (1, 2, 3) and (4, 5, 6).
	m := []float64{1, 2, 3, 4, 5, 6}
	v := []float64{1, 0, -1}
	dst := make([]float64, 2)
	VecMat(dst, v, m, 3, 2)
	if dst[0] != -2 || dst[1] != -2 {
		t.Errorf("VecMat: got %v, want [-2 -2]", dst)
	}

	// v * m equals m^T * v.
	rng := rand.New(rand.NewPCG(3, 5))
	for rows := 1; rows <= 4; rows++ {
		for cols := 1; cols <= 4; cols++ {
			m := randomInts(rng, rows*cols)
			v := randomInts(rng, rows)
			mt := make([]float64, rows*cols)
			for c := range cols {
				for r := range rows {
					mt[r*cols+c] = m[c*rows+r]
				}
			}
			want := naiveMatMul(mt, v, cols, rows, 1)
			got := make([]float64, cols)
			VecMat(got, v, m, rows, cols)
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("VecMat %dx%d: lane %d: got %v, want %v", rows, cols, i, got[i], want[i])
				}
			}
		}
	}
}

func TestShortSlicesPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"MatMul a", func() { MatMul(make([]float32, 4), make([]float32, 3), make([]float32, 4), 2, 2, 2) }},
		{"MatMul b", func() { MatMul(make([]float32, 4), make([]float32, 4), make([]float32, 3), 2, 2, 2) }},
		{"MatMul dst", func() { MatMul(make([]float32, 3), make([]float32, 4), make([]float32, 4), 2, 2, 2) }},
		{"VecMat m", func() { VecMat(make([]float64, 2), make([]float64, 2), make([]float64, 3), 2, 2) }},
		{"VecMat v", func() { VecMat(make([]float64, 2), make([]float64, 1), make([]float64, 4), 2, 2) }},
		{"VecMat dst", func() { VecMat(make([]float64, 1), make([]float64, 2), make([]float64, 4), 2, 2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

// roundedMatMul accumulates like MatMul, rounding each product to float32.
func roundedMatMul(a, b []float32, rows, inner, cols int) []float32 {
	dst := make([]float32, rows*cols)
	for j := range cols {
		for i := range rows {
			acc := float32(a[i] * b[j*inner])
			for k := 1; k < inner; k++ {
				acc += float32(a[k*rows+i] * b[j*inner+k])
			}
			dst[j*rows+i] = acc
		}
	}
	return dst
}

func TestMatMulFractions(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 4))
	for range 200 {
		for _, shape := range [][3]int{{4, 4, 4}, {4, 4, 1}, {4, 4, 3}, {3, 3, 3}, {2, 4, 3}} {
			rows, inner, cols := shape[0], shape[1], shape[2]
			a := randomFractions[float32](rng, rows*inner)
			b := randomFractions[float32](rng, inner*cols)
			want := roundedMatMul(a, b, rows, inner, cols)
			got := make([]float32, rows*cols)
			MatMul(got, a, b, rows, inner, cols)
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("MatMul %v: element %d: got %v, want %v", shape, i, got[i], want[i])
				}
			}
		}
	}
}
