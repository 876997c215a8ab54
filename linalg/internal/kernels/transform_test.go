package kernels

import (
	"math/rand/v2"
	"testing"
)

func randomFractions[T Floats](rng *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(rng.Float64()*2 - 1)
	}
	return out
}

func TestTransform(t *testing.T) {
	testTransform[float32](t)
	testTransform[float64](t)
}

func testTransform[T Floats](t *testing.T) {
	rng := rand.New(rand.NewPCG(8, 13))
	// Counts cover a single lane, partial vectors and more than one block.
	for _, n := range []int{1, 3, 16, 37, blockSize, blockSize + 5, 3*blockSize - 1} {
		for rows := 2; rows <= 4; rows++ {
			for cols := 2; cols <= 4; cols++ {
				m := randomFractions[T](rng, rows*cols)
				src := randomFractions[T](rng, n*cols)
				dst := make([]T, n*rows)
				Transform(dst, m, src, n, rows, cols)

				want := make([]T, rows)
				for i := range n {
					MatMul(want, m, src[i*cols:(i+1)*cols], rows, cols, 1)
					for r := range rows {
						if got := dst[i*rows+r]; got != want[r] {
							t.Fatalf("Transform %dx%d n=%d: vector %d lane %d: got %v, want %v",
								rows, cols, n, i, r, got, want[r])
						}
					}
				}
			}
		}
	}
}

func TestTransformInPlace(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	const n = 300
	m := randomFractions[float64](rng, 9)
	src := randomFractions[float64](rng, n*3)
	want := make([]float64, n*3)
	Transform(want, m, src, n, 3, 3)

	Transform(src, m, src, n, 3, 3)
	for i := range want {
		if src[i] != want[i] {
			t.Fatalf("Transform in place: element %d: got %v, want %v", i, src[i], want[i])
		}
	}
}

func TestDots(t *testing.T) {
	testDots[float32](t)
	testDots[float64](t)
}

func testDots[T Floats](t *testing.T) {
	rng := rand.New(rand.NewPCG(6, 1))
	for _, n := range []int{1, 7, 64, blockSize + 1, 2*blockSize + 33} {
		for dim := 2; dim <= 4; dim++ {
			x := randomFractions[T](rng, n*dim)
			y := randomFractions[T](rng, n*dim)
			dst := make([]T, n)
			Dots(dst, x, y, n, dim)

			for i := range n {
				var want T
				for c := range dim {
					want += T(x[i*dim+c] * y[i*dim+c])
				}
				if dst[i] != want {
					t.Fatalf("Dots dim=%d n=%d: element %d: got %v, want %v", dim, n, i, dst[i], want)
				}
			}
		}
	}
}

func TestTransformShortSlicesPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"Transform m", func() { Transform(make([]float32, 4), make([]float32, 3), make([]float32, 4), 2, 2, 2) }},
		{"Transform src", func() { Transform(make([]float32, 4), make([]float32, 4), make([]float32, 3), 2, 2, 2) }},
		{"Transform dst", func() { Transform(make([]float32, 3), make([]float32, 4), make([]float32, 4), 2, 2, 2) }},
		{"Dots x", func() { Dots(make([]float64, 2), make([]float64, 3), make([]float64, 4), 2, 2) }},
		{"Dots dst", func() { Dots(make([]float64, 1), make([]float64, 4), make([]float64, 4), 2, 2) }},
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
