// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package linalg

import (
	"iter"
	"unsafe"
)

// Matrix4x4 is a 4x4 matrix stored as four column vectors. Element (c, r)
// is m[c][r]; the memory and the linear element index are column-major.
type Matrix4x4[T Arithmetic] [4]Vector4[T]

// Identity4x4 returns the 4x4 identity matrix.
func Identity4x4[T Arithmetic]() Matrix4x4[T] {
	return Matrix4x4[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// Diagonal4x4 returns the matrix with s on the main diagonal and zeros
// elsewhere.
func Diagonal4x4[T Arithmetic](s T) Matrix4x4[T] {
	var m Matrix4x4[T]
	m[0][0] = s
	m[1][1] = s
	m[2][2] = s
	m[3][3] = s
	return m
}

// NewMatrix4x4 returns the matrix with the given columns.
func NewMatrix4x4[T Arithmetic](c0, c1, c2, c3 Vector4[T]) Matrix4x4[T] {
	return Matrix4x4[T]{c0, c1, c2, c3}
}

// Matrix4x4Of returns the matrix whose elements, in column-major order, are the
// arguments: mCR is column C, row R.
func Matrix4x4Of[T Arithmetic](m00, m01, m02, m03, m10, m11, m12, m13, m20, m21, m22, m23, m30, m31, m32, m33 T) Matrix4x4[T] {
	return Matrix4x4[T]{
		{m00, m01, m02, m03},
		{m10, m11, m12, m13},
		{m20, m21, m22, m23},
		{m30, m31, m32, m33},
	}
}

// Matrix4x4FromSlice copies s, in column-major order, into a Matrix4x4. It
// panics if len(s) != 16.
func Matrix4x4FromSlice[T Arithmetic](s []T) Matrix4x4[T] {
	if len(s) != 16 {
		panic("Matrix4x4FromSlice: slice length must be 16")
	}
	var m Matrix4x4[T]
	for c := range m {
		m[c] = Vector4FromSlice(s[c*4 : c*4+4])
	}
	return m
}

// ConvertMatrix4x4 converts every element of m to T.
func ConvertMatrix4x4[T, U Arithmetic](m Matrix4x4[U]) Matrix4x4[T] {
	return Matrix4x4[T]{ConvertVector4[T](m[0]), ConvertVector4[T](m[1]), ConvertVector4[T](m[2]), ConvertVector4[T](m[3])}
}

// Map returns the matrix whose elements are op applied to the elements of m.
func (m Matrix4x4[T]) Map(op func(T) T) Matrix4x4[T] {
	return Matrix4x4[T]{m[0].Map(op), m[1].Map(op), m[2].Map(op), m[3].Map(op)}
}

// Map2 applies op pairwise to the aligned elements of m and n.
func (m Matrix4x4[T]) Map2(n Matrix4x4[T], op func(T, T) T) Matrix4x4[T] {
	return Matrix4x4[T]{m[0].Map2(n[0], op), m[1].Map2(n[1], op), m[2].Map2(n[2], op), m[3].Map2(n[3], op)}
}

// Map3 applies op to the aligned elements of m, n and o.
func (m Matrix4x4[T]) Map3(n, o Matrix4x4[T], op func(T, T, T) T) Matrix4x4[T] {
	return Matrix4x4[T]{m[0].Map3(n[0], o[0], op), m[1].Map3(n[1], o[1], op), m[2].Map3(n[2], o[2], op), m[3].Map3(n[3], o[3], op)}
}

// Col returns column c. It panics if c is not in [0, 4).
func (m Matrix4x4[T]) Col(c int) Vector4[T] { return m[c] }

// Row returns row r. It panics if r is not in [0, 4).
func (m Matrix4x4[T]) Row(r int) Vector4[T] {
	return Vector4[T]{m[0][r], m[1][r], m[2][r], m[3][r]}
}

// At returns the element in column c, row r.
func (m Matrix4x4[T]) At(c, r int) T { return m[c][r] }

// Len returns the number of elements.
func (m Matrix4x4[T]) Len() int { return 16 }

// Element returns the i-th element in column-major order.
func (m Matrix4x4[T]) Element(i int) T { return m[i/4][i%4] }

// SetElement sets the i-th element in column-major order to x.
func (m *Matrix4x4[T]) SetElement(i int, x T) { m[i/4][i%4] = x }

// All returns an iterator over the column-major index and value of every
// element.
func (m Matrix4x4[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for c, col := range m {
			for r, x := range col {
				if !yield(c*4+r, x) {
					return
				}
			}
		}
	}
}

// Add returns m + n.
func (m Matrix4x4[T]) Add(n Matrix4x4[T]) Matrix4x4[T] {
	return Matrix4x4[T]{m[0].Add(n[0]), m[1].Add(n[1]), m[2].Add(n[2]), m[3].Add(n[3])}
}

// Sub returns m - n.
func (m Matrix4x4[T]) Sub(n Matrix4x4[T]) Matrix4x4[T] {
	return Matrix4x4[T]{m[0].Sub(n[0]), m[1].Sub(n[1]), m[2].Sub(n[2]), m[3].Sub(n[3])}
}

// Mod returns the elementwise remainder of m and n (see Rem).
func (m Matrix4x4[T]) Mod(n Matrix4x4[T]) Matrix4x4[T] {
	return Matrix4x4[T]{m[0].Mod(n[0]), m[1].Mod(n[1]), m[2].Mod(n[2]), m[3].Mod(n[3])}
}

// AddScalar adds s to every element.
func (m Matrix4x4[T]) AddScalar(s T) Matrix4x4[T] {
	return Matrix4x4[T]{m[0].AddScalar(s), m[1].AddScalar(s), m[2].AddScalar(s), m[3].AddScalar(s)}
}

// SubScalar subtracts s from every element.
func (m Matrix4x4[T]) SubScalar(s T) Matrix4x4[T] {
	return Matrix4x4[T]{m[0].SubScalar(s), m[1].SubScalar(s), m[2].SubScalar(s), m[3].SubScalar(s)}
}

// MulScalar returns m scaled by s.
func (m Matrix4x4[T]) MulScalar(s T) Matrix4x4[T] {
	return Matrix4x4[T]{m[0].MulScalar(s), m[1].MulScalar(s), m[2].MulScalar(s), m[3].MulScalar(s)}
}

// DivScalar divides every element by s.
func (m Matrix4x4[T]) DivScalar(s T) Matrix4x4[T] {
	return Matrix4x4[T]{m[0].DivScalar(s), m[1].DivScalar(s), m[2].DivScalar(s), m[3].DivScalar(s)}
}

// ModScalar returns the truncated remainder of every element divided by s.
func (m Matrix4x4[T]) ModScalar(s T) Matrix4x4[T] {
	return Matrix4x4[T]{m[0].ModScalar(s), m[1].ModScalar(s), m[2].ModScalar(s), m[3].ModScalar(s)}
}

// RSubScalar returns s - m, broadcasting s.
func (m Matrix4x4[T]) RSubScalar(s T) Matrix4x4[T] {
	return Matrix4x4[T]{m[0].RSubScalar(s), m[1].RSubScalar(s), m[2].RSubScalar(s), m[3].RSubScalar(s)}
}

// RDivScalar returns s / m, broadcasting s.
func (m Matrix4x4[T]) RDivScalar(s T) Matrix4x4[T] {
	return Matrix4x4[T]{m[0].RDivScalar(s), m[1].RDivScalar(s), m[2].RDivScalar(s), m[3].RDivScalar(s)}
}

// RModScalar returns the truncated remainder of s divided by every element.
func (m Matrix4x4[T]) RModScalar(s T) Matrix4x4[T] {
	return Matrix4x4[T]{m[0].RModScalar(s), m[1].RModScalar(s), m[2].RModScalar(s), m[3].RModScalar(s)}
}

// AddInPlace sets m to m.Add(n).
func (m *Matrix4x4[T]) AddInPlace(n Matrix4x4[T]) { *m = m.Add(n) }

// SubInPlace sets m to m.Sub(n).
func (m *Matrix4x4[T]) SubInPlace(n Matrix4x4[T]) { *m = m.Sub(n) }

// ModInPlace sets m to m.Mod(n).
func (m *Matrix4x4[T]) ModInPlace(n Matrix4x4[T]) { *m = m.Mod(n) }

// MulScalarInPlace sets m to m.MulScalar(s).
func (m *Matrix4x4[T]) MulScalarInPlace(s T) { *m = m.MulScalar(s) }

// DivScalarInPlace sets m to m.DivScalar(s).
func (m *Matrix4x4[T]) DivScalarInPlace(s T) { *m = m.DivScalar(s) }

// MulVector returns the product of m and the column vector v.
func (m Matrix4x4[T]) MulVector(v Vector4[T]) Vector4[T] {
	var out Vector4[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&v), 4, 4, 1) {
		return out
	}
	return m.mulVector(v)
}

func (m Matrix4x4[T]) mulVector(v Vector4[T]) Vector4[T] {
	return Vector4[T]{
		T(m[0][0]*v[0]) + T(m[1][0]*v[1]) + T(m[2][0]*v[2]) + T(m[3][0]*v[3]),
		T(m[0][1]*v[0]) + T(m[1][1]*v[1]) + T(m[2][1]*v[2]) + T(m[3][1]*v[3]),
		T(m[0][2]*v[0]) + T(m[1][2]*v[1]) + T(m[2][2]*v[2]) + T(m[3][2]*v[3]),
		T(m[0][3]*v[0]) + T(m[1][3]*v[1]) + T(m[2][3]*v[2]) + T(m[3][3]*v[3]),
	}
}

// MulVectors sets dst[i] = m * src[i] for every element of src. dst may be
// src itself. It panics if dst is shorter than src.
func (m Matrix4x4[T]) MulVectors(dst []Vector4[T], src []Vector4[T]) {
	if len(dst) < len(src) {
		panic("MulVectors: dst shorter than src")
	}
	if len(src) == 0 {
		return
	}
	if fastTransform[T](unsafe.Pointer(&dst[0]), unsafe.Pointer(&m), unsafe.Pointer(&src[0]), len(src), 4, 4) {
		return
	}
	for i, v := range src {
		dst[i] = m.mulVector(v)
	}
}

// VectorMul returns the product of the row vector v and m.
func (m Matrix4x4[T]) VectorMul(v Vector4[T]) Vector4[T] {
	var out Vector4[T]
	if fastVecMat[T](unsafe.Pointer(&out), unsafe.Pointer(&v), unsafe.Pointer(&m), 4, 4) {
		return out
	}
	return Vector4[T]{
		T(v[0]*m[0][0]) + T(v[1]*m[0][1]) + T(v[2]*m[0][2]) + T(v[3]*m[0][3]),
		T(v[0]*m[1][0]) + T(v[1]*m[1][1]) + T(v[2]*m[1][2]) + T(v[3]*m[1][3]),
		T(v[0]*m[2][0]) + T(v[1]*m[2][1]) + T(v[2]*m[2][2]) + T(v[3]*m[2][3]),
		T(v[0]*m[3][0]) + T(v[1]*m[3][1]) + T(v[2]*m[3][2]) + T(v[3]*m[3][3]),
	}
}

// Transpose returns the 4x4 matrix whose rows are the columns of m.
func (m Matrix4x4[T]) Transpose() Matrix4x4[T] {
	return Matrix4x4[T]{m.Row(0), m.Row(1), m.Row(2), m.Row(3)}
}

// Mul returns the matrix product m * n.
func (m Matrix4x4[T]) Mul(n Matrix4x4[T]) Matrix4x4[T] { return m.MulMatrix4x4(n) }

// Determinant returns the determinant of m.
func (m Matrix4x4[T]) Determinant() T {
	sub0 := m[2][2]*m[3][3] - m[3][2]*m[2][3]
	sub1 := m[2][1]*m[3][3] - m[3][1]*m[2][3]
	sub2 := m[2][1]*m[3][2] - m[3][1]*m[2][2]
	sub3 := m[2][0]*m[3][3] - m[3][0]*m[2][3]
	sub4 := m[2][0]*m[3][2] - m[3][0]*m[2][2]
	sub5 := m[2][0]*m[3][1] - m[3][0]*m[2][1]

	cof0 := m[1][1]*sub0 - m[1][2]*sub1 + m[1][3]*sub2
	cof1 := m[1][0]*sub0 - m[1][2]*sub3 + m[1][3]*sub4
	cof2 := m[1][0]*sub1 - m[1][1]*sub3 + m[1][3]*sub5
	cof3 := m[1][0]*sub2 - m[1][1]*sub4 + m[1][2]*sub5
	return m[0][0]*cof0 - m[0][1]*cof1 + m[0][2]*cof2 - m[0][3]*cof3
}

// Inverse returns the inverse of m, computed as the adjugate scaled by
// 1/det. A singular float matrix yields infinities and NaNs; a singular
// integer matrix panics with a division by zero.
func (m Matrix4x4[T]) Inverse() Matrix4x4[T] {
	var out Matrix4x4[T]
	if fastInverse[T](unsafe.Pointer(&out), unsafe.Pointer(&m), 4) {
		return out
	}
	return m.inverse4()
}

// Div returns m * n.Inverse().
func (m Matrix4x4[T]) Div(n Matrix4x4[T]) Matrix4x4[T] { return m.Mul(n.Inverse()) }

// DivVector returns m.Inverse() * v.
func (m Matrix4x4[T]) DivVector(v Vector4[T]) Vector4[T] { return m.Inverse().MulVector(v) }

// VectorDiv returns v * m.Inverse().
func (m Matrix4x4[T]) VectorDiv(v Vector4[T]) Vector4[T] { return m.Inverse().VectorMul(v) }

// MulInPlace sets m to m.Mul(n).
func (m *Matrix4x4[T]) MulInPlace(n Matrix4x4[T]) { *m = m.Mul(n) }

// DivInPlace sets m to m.Div(n).
func (m *Matrix4x4[T]) DivInPlace(n Matrix4x4[T]) { *m = m.Div(n) }

// inverse4 builds the adjugate from the 2x2 sub-determinants of the lower
// rows and recovers the determinant from its first row.
func (m Matrix4x4[T]) inverse4() Matrix4x4[T] {
	c00 := T(m[2][2]*m[3][3]) - T(m[3][2]*m[2][3])
	c02 := T(m[1][2]*m[3][3]) - T(m[3][2]*m[1][3])
	c03 := T(m[1][2]*m[2][3]) - T(m[2][2]*m[1][3])
	c04 := T(m[2][1]*m[3][3]) - T(m[3][1]*m[2][3])
	c06 := T(m[1][1]*m[3][3]) - T(m[3][1]*m[1][3])
	c07 := T(m[1][1]*m[2][3]) - T(m[2][1]*m[1][3])
	c08 := T(m[2][1]*m[3][2]) - T(m[3][1]*m[2][2])
	c10 := T(m[1][1]*m[3][2]) - T(m[3][1]*m[1][2])
	c11 := T(m[1][1]*m[2][2]) - T(m[2][1]*m[1][2])
	c12 := T(m[2][0]*m[3][3]) - T(m[3][0]*m[2][3])
	c14 := T(m[1][0]*m[3][3]) - T(m[3][0]*m[1][3])
	c15 := T(m[1][0]*m[2][3]) - T(m[2][0]*m[1][3])
	c16 := T(m[2][0]*m[3][2]) - T(m[3][0]*m[2][2])
	c18 := T(m[1][0]*m[3][2]) - T(m[3][0]*m[1][2])
	c19 := T(m[1][0]*m[2][2]) - T(m[2][0]*m[1][2])
	c20 := T(m[2][0]*m[3][1]) - T(m[3][0]*m[2][1])
	c22 := T(m[1][0]*m[3][1]) - T(m[3][0]*m[1][1])
	c23 := T(m[1][0]*m[2][1]) - T(m[2][0]*m[1][1])

	fac := [6][4]T{
		{c00, c00, c02, c03},
		{c04, c04, c06, c07},
		{c08, c08, c10, c11},
		{c12, c12, c14, c15},
		{c16, c16, c18, c19},
		{c20, c20, c22, c23},
	}
	vec := [4][4]T{
		{m[1][0], m[0][0], m[0][0], m[0][0]},
		{m[1][1], m[0][1], m[0][1], m[0][1]},
		{m[1][2], m[0][2], m[0][2], m[0][2]},
		{m[1][3], m[0][3], m[0][3], m[0][3]},
	}

	// Lane i of column c is negated when c+i is odd.
	var adj Matrix4x4[T]
	for i := range 4 {
		inv0 := T(vec[1][i]*fac[0][i]) - T(vec[2][i]*fac[1][i]) + T(vec[3][i]*fac[2][i])
		inv1 := T(vec[0][i]*fac[0][i]) - T(vec[2][i]*fac[3][i]) + T(vec[3][i]*fac[4][i])
		inv2 := T(vec[0][i]*fac[1][i]) - T(vec[1][i]*fac[3][i]) + T(vec[3][i]*fac[5][i])
		inv3 := T(vec[0][i]*fac[2][i]) - T(vec[1][i]*fac[4][i]) + T(vec[2][i]*fac[5][i])
		if i%2 == 0 {
			adj[0][i], adj[1][i], adj[2][i], adj[3][i] = inv0, -inv1, inv2, -inv3
		} else {
			adj[0][i], adj[1][i], adj[2][i], adj[3][i] = -inv0, inv1, -inv2, inv3
		}
	}

	det := (T(m[0][0]*adj[0][0]) + T(m[0][1]*adj[1][0])) +
		(T(m[0][2]*adj[2][0]) + T(m[0][3]*adj[3][0]))
	return adj.MulScalar(1 / det)
}

// String formats m column by column, as in Matrix4x4([...], [...]).
func (m Matrix4x4[T]) String() string {
	return formatMatrix("Matrix4x4", m[0][:], m[1][:], m[2][:], m[3][:])
}
