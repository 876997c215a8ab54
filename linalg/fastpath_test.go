package linalg

import (
	"math/rand/v2"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// setFastPath enables or disables the fast path for the duration of the test.
// Enabling it on a machine detected as scalar pretends SSE2 is present; the
// kernels are portable Go, so results stay meaningful.
func setFastPath(t *testing.T, enabled bool) {
	t.Helper()
	level, generic := currentLevel, forceGeneric
	t.Cleanup(func() {
		currentLevel, forceGeneric = level, generic
	})
	if enabled && currentLevel == DispatchScalar {
		currentLevel = DispatchSSE2
	}
	forceGeneric = !enabled
}

// checkParity evaluates f on the generic path and on the fast path and
// requires identical results. The caller enables the fast path first.
func checkParity[R comparable](t *testing.T, name string, f func() R) {
	t.Helper()
	forceGeneric = true
	want := f()
	forceGeneric = false
	got := f()
	if got != want {
		t.Errorf("%s: fast path %v, generic %v", name, got, want)
	}
}

// smallInts returns n integer-valued elements in [-3, 3], for which every
// product and sum is exact.
func smallInts[T Float](rng *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(rng.IntN(7) - 3)
	}
	return out
}

// fractions returns n elements uniform in [-1, 1). Their products round, so a
// product fused into a multiply-add on only one path shows up as a mismatch.
func fractions[T Float](rng *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(rng.Float64()*2 - 1)
	}
	return out
}

func TestFastPathParity(t *testing.T) {
	t.Run("float32/ints", func(t *testing.T) { testFastPathParity(t, 20, smallInts[float32]) })
	t.Run("float64/ints", func(t *testing.T) { testFastPathParity(t, 20, smallInts[float64]) })
	t.Run("float32/fractions", func(t *testing.T) { testFastPathParity(t, 2000, fractions[float32]) })
	t.Run("float64/fractions", func(t *testing.T) { testFastPathParity(t, 2000, fractions[float64]) })
}

func testFastPathParity[T Float](t *testing.T, rounds int, gen func(*rand.Rand, int) []T) {
	setFastPath(t, true)
	rng := rand.New(rand.NewPCG(1, 2))
	for range rounds {
		m22 := Matrix2x2FromSlice(gen(rng, 4))
		m23 := Matrix2x3FromSlice(gen(rng, 6))
		m24 := Matrix2x4FromSlice(gen(rng, 8))
		m32 := Matrix3x2FromSlice(gen(rng, 6))
		m33 := Matrix3x3FromSlice(gen(rng, 9))
		m34 := Matrix3x4FromSlice(gen(rng, 12))
		m42 := Matrix4x2FromSlice(gen(rng, 8))
		m43 := Matrix4x3FromSlice(gen(rng, 12))
		m44 := Matrix4x4FromSlice(gen(rng, 16))
		v2 := Vector2FromSlice(gen(rng, 2))
		v3 := Vector3FromSlice(gen(rng, 3))
		v4 := Vector4FromSlice(gen(rng, 4))

		checkParity(t, "Matrix2x2.MulVector", func() Vector2[T] { return m22.MulVector(v2) })
		checkParity(t, "Matrix2x3.MulVector", func() Vector3[T] { return m23.MulVector(v2) })
		checkParity(t, "Matrix2x4.MulVector", func() Vector4[T] { return m24.MulVector(v2) })
		checkParity(t, "Matrix3x2.MulVector", func() Vector2[T] { return m32.MulVector(v3) })
		checkParity(t, "Matrix3x3.MulVector", func() Vector3[T] { return m33.MulVector(v3) })
		checkParity(t, "Matrix3x4.MulVector", func() Vector4[T] { return m34.MulVector(v3) })
		checkParity(t, "Matrix4x2.MulVector", func() Vector2[T] { return m42.MulVector(v4) })
		checkParity(t, "Matrix4x3.MulVector", func() Vector3[T] { return m43.MulVector(v4) })
		checkParity(t, "Matrix4x4.MulVector", func() Vector4[T] { return m44.MulVector(v4) })

		checkParity(t, "Matrix2x2.VectorMul", func() Vector2[T] { return m22.VectorMul(v2) })
		checkParity(t, "Matrix2x3.VectorMul", func() Vector2[T] { return m23.VectorMul(v3) })
		checkParity(t, "Matrix2x4.VectorMul", func() Vector2[T] { return m24.VectorMul(v4) })
		checkParity(t, "Matrix3x2.VectorMul", func() Vector3[T] { return m32.VectorMul(v2) })
		checkParity(t, "Matrix3x3.VectorMul", func() Vector3[T] { return m33.VectorMul(v3) })
		checkParity(t, "Matrix3x4.VectorMul", func() Vector3[T] { return m34.VectorMul(v4) })
		checkParity(t, "Matrix4x2.VectorMul", func() Vector4[T] { return m42.VectorMul(v2) })
		checkParity(t, "Matrix4x3.VectorMul", func() Vector4[T] { return m43.VectorMul(v3) })
		checkParity(t, "Matrix4x4.VectorMul", func() Vector4[T] { return m44.VectorMul(v4) })

		checkParity(t, "Matrix2x2.Mul", func() Matrix2x2[T] { return m22.Mul(m22) })
		checkParity(t, "Matrix2x3.MulMatrix4x2", func() Matrix4x3[T] { return m23.MulMatrix4x2(m42) })
		checkParity(t, "Matrix2x4.MulMatrix3x2", func() Matrix3x4[T] { return m24.MulMatrix3x2(m32) })
		checkParity(t, "Matrix3x2.MulMatrix2x3", func() Matrix2x2[T] { return m32.MulMatrix2x3(m23) })
		checkParity(t, "Matrix3x3.Mul", func() Matrix3x3[T] { return m33.Mul(m33) })
		checkParity(t, "Matrix3x4.MulMatrix4x3", func() Matrix4x4[T] { return m34.MulMatrix4x3(m43) })
		checkParity(t, "Matrix4x2.MulMatrix3x4", func() Matrix3x2[T] { return m42.MulMatrix3x4(m34) })
		checkParity(t, "Matrix4x3.MulMatrix2x4", func() Matrix2x3[T] { return m43.MulMatrix2x4(m24) })
		checkParity(t, "Matrix4x4.Mul", func() Matrix4x4[T] { return m44.Mul(m44) })
		checkParity(t, "Matrix4x4.MulMatrix2x4", func() Matrix2x4[T] { return m44.MulMatrix2x4(m24) })
		checkParity(t, "Matrix4x4.MulMatrix3x4", func() Matrix3x4[T] { return m44.MulMatrix3x4(m34) })

		// A dominant diagonal keeps the matrices invertible.
		n22 := m22.Add(Diagonal2x2[T](8))
		n33 := m33.Add(Diagonal3x3[T](8))
		n44 := m44.Add(Diagonal4x4[T](8))
		checkParity(t, "Matrix2x2.Inverse", func() Matrix2x2[T] { return n22.Inverse() })
		checkParity(t, "Matrix3x3.Inverse", func() Matrix3x3[T] { return n33.Inverse() })
		checkParity(t, "Matrix4x4.Inverse", func() Matrix4x4[T] { return n44.Inverse() })
		checkParity(t, "Matrix3x3.Div", func() Matrix3x3[T] { return m33.Div(n33) })
		checkParity(t, "Matrix4x4.Div", func() Matrix4x4[T] { return m44.Div(n44) })
		checkParity(t, "Matrix4x4.DivVector", func() Vector4[T] { return n44.DivVector(v4) })
		checkParity(t, "Matrix2x2.VectorDiv", func() Vector2[T] { return n22.VectorDiv(v2) })
		if t.Failed() {
			return
		}
	}
}

// lanes is long enough to fill full hwy vectors and leave a tail.
const lanes = 37

func TestSliceOpsParity(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testSliceOpsParity(t, fractions[float32]) })
	t.Run("float64", func(t *testing.T) { testSliceOpsParity(t, fractions[float64]) })
}

func testSliceOpsParity[T Float](t *testing.T, gen func(*rand.Rand, int) []T) {
	setFastPath(t, true)
	rng := rand.New(rand.NewPCG(4, 4))
	for range 50 {
		m44 := Matrix4x4FromSlice(gen(rng, 16))
		m32 := Matrix3x2FromSlice(gen(rng, 6))
		var v3, w3 [lanes]Vector3[T]
		var v4 [lanes]Vector4[T]
		for i := range lanes {
			v3[i] = Vector3FromSlice(gen(rng, 3))
			w3[i] = Vector3FromSlice(gen(rng, 3))
			v4[i] = Vector4FromSlice(gen(rng, 4))
		}

		checkParity(t, "Matrix4x4.MulVectors", func() (out [lanes]Vector4[T]) {
			m44.MulVectors(out[:], v4[:])
			return out
		})
		checkParity(t, "Matrix3x2.MulVectors", func() (out [lanes]Vector2[T]) {
			m32.MulVectors(out[:], v3[:])
			return out
		})
		checkParity(t, "DotEach", func() (out [lanes]T) {
			DotEach(out[:], v3[:], w3[:])
			return out
		})

		// The lanes agree with the single-vector calls too.
		var got [lanes]Vector4[T]
		m44.MulVectors(got[:], v4[:])
		for i := range lanes {
			if want := m44.MulVector(v4[i]); got[i] != want {
				t.Fatalf("MulVectors: element %d: got %v, want %v", i, got[i], want)
			}
		}
		inPlace := v4
		m44.MulVectors(inPlace[:], inPlace[:])
		require.Equal(t, got, inPlace)
	}
}

func TestSliceOpsLengthChecks(t *testing.T) {
	var m Matrix2x2[float64]
	require.PanicsWithValue(t, "MulVectors: dst shorter than src", func() {
		m.MulVectors(make([]Vector2[float64], 1), make([]Vector2[float64], 2))
	})
	require.PanicsWithValue(t, "DotEach: x and y differ in length", func() {
		DotEach(make([]float64, 2), make([]Vector2[float64], 2), make([]Vector2[float64], 1))
	})
	require.PanicsWithValue(t, "DotEach: dst shorter than x", func() {
		DotEach(make([]float64, 1), make([]Vector2[float64], 2), make([]Vector2[float64], 2))
	})
	m.MulVectors(nil, nil)
	DotEach[Vector2[float64], float64](nil, nil, nil)
}

func TestFastPathGating(t *testing.T) {
	a := Matrix2x2Of[float32](1, 2, 3, 4)
	var out Matrix2x2[float32]

	setFastPath(t, false)
	require.False(t, FastPathEnabled())
	require.False(t, fastMatMul[float32](unsafe.Pointer(&out), unsafe.Pointer(&a), unsafe.Pointer(&a), 2, 2, 2))

	setFastPath(t, true)
	require.True(t, FastPathEnabled())
	require.True(t, fastMatMul[float32](unsafe.Pointer(&out), unsafe.Pointer(&a), unsafe.Pointer(&a), 2, 2, 2))
	require.Equal(t, a.Mul(a), out)
	require.True(t, fastInverse[float64](unsafe.Pointer(new(Matrix3x3[float64])), unsafe.Pointer(new(Matrix3x3[float64])), 3))

	// Integer and named float types always take the generic path.
	type meters float32
	require.False(t, fastMatMul[int](nil, nil, nil, 2, 2, 2))
	require.False(t, fastVecMat[meters](nil, nil, nil, 2, 2))
	require.False(t, fastInverse[uint8](nil, nil, 2))

	m := Matrix2x2Of[meters](1, 2, 3, 4)
	require.Equal(t, Matrix2x2Of[meters](7, 10, 15, 22), m.Mul(m))
}
