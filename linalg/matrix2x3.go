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

// Matrix2x3 is a matrix of two columns and three rows, stored as two
// Vector3 columns.
type Matrix2x3[T Arithmetic] [2]Vector3[T]

// Identity2x3 returns the matrix with ones on the main diagonal and zeros
// elsewhere.
func Identity2x3[T Arithmetic]() Matrix2x3[T] {
	return Matrix2x3[T]{{1, 0, 0}, {0, 1, 0}}
}

// Diagonal2x3 returns the matrix with s on the main diagonal and zeros
// elsewhere.
func Diagonal2x3[T Arithmetic](s T) Matrix2x3[T] {
	var m Matrix2x3[T]
	m[0][0] = s
	m[1][1] = s
	return m
}

// NewMatrix2x3 returns the matrix with the given columns.
func NewMatrix2x3[T Arithmetic](c0, c1 Vector3[T]) Matrix2x3[T] {
	return Matrix2x3[T]{c0, c1}
}

// Matrix2x3Of returns the matrix whose elements, in column-major order, are the
// arguments: mCR is column C, row R.
func Matrix2x3Of[T Arithmetic](m00, m01, m02, m10, m11, m12 T) Matrix2x3[T] {
	return Matrix2x3[T]{
		{m00, m01, m02},
		{m10, m11, m12},
	}
}

// Matrix2x3FromSlice copies s, in column-major order, into a Matrix2x3. It
// panics if len(s) != 6.
func Matrix2x3FromSlice[T Arithmetic](s []T) Matrix2x3[T] {
	if len(s) != 6 {
		panic("Matrix2x3FromSlice: slice length must be 6")
	}
	var m Matrix2x3[T]
	for c := range m {
		m[c] = Vector3FromSlice(s[c*3 : c*3+3])
	}
	return m
}

// ConvertMatrix2x3 converts every element of m to T.
func ConvertMatrix2x3[T, U Arithmetic](m Matrix2x3[U]) Matrix2x3[T] {
	return Matrix2x3[T]{ConvertVector3[T](m[0]), ConvertVector3[T](m[1])}
}

// Map returns the matrix whose elements are op applied to the elements of m.
func (m Matrix2x3[T]) Map(op func(T) T) Matrix2x3[T] {
	return Matrix2x3[T]{m[0].Map(op), m[1].Map(op)}
}

// Map2 applies op pairwise to the aligned elements of m and n.
func (m Matrix2x3[T]) Map2(n Matrix2x3[T], op func(T, T) T) Matrix2x3[T] {
	return Matrix2x3[T]{m[0].Map2(n[0], op), m[1].Map2(n[1], op)}
}

// Map3 applies op to the aligned elements of m, n and o.
func (m Matrix2x3[T]) Map3(n, o Matrix2x3[T], op func(T, T, T) T) Matrix2x3[T] {
	return Matrix2x3[T]{m[0].Map3(n[0], o[0], op), m[1].Map3(n[1], o[1], op)}
}

// Col returns column c. It panics if c is not in [0, 2).
func (m Matrix2x3[T]) Col(c int) Vector3[T] { return m[c] }

// Row returns row r. It panics if r is not in [0, 3).
func (m Matrix2x3[T]) Row(r int) Vector2[T] {
	return Vector2[T]{m[0][r], m[1][r]}
}

// At returns the element in column c, row r.
func (m Matrix2x3[T]) At(c, r int) T { return m[c][r] }

// Len returns the number of elements.
func (m Matrix2x3[T]) Len() int { return 6 }

// Element returns the i-th element in column-major order.
func (m Matrix2x3[T]) Element(i int) T { return m[i/3][i%3] }

// SetElement sets the i-th element in column-major order to x.
func (m *Matrix2x3[T]) SetElement(i int, x T) { m[i/3][i%3] = x }

// All returns an iterator over the column-major index and value of every
// element.
func (m Matrix2x3[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for c, col := range m {
			for r, x := range col {
				if !yield(c*3+r, x) {
					return
				}
			}
		}
	}
}

// Add returns m + n.
func (m Matrix2x3[T]) Add(n Matrix2x3[T]) Matrix2x3[T] {
	return Matrix2x3[T]{m[0].Add(n[0]), m[1].Add(n[1])}
}

// Sub returns m - n.
func (m Matrix2x3[T]) Sub(n Matrix2x3[T]) Matrix2x3[T] {
	return Matrix2x3[T]{m[0].Sub(n[0]), m[1].Sub(n[1])}
}

// Mod returns the elementwise remainder of m and n (see Rem).
func (m Matrix2x3[T]) Mod(n Matrix2x3[T]) Matrix2x3[T] {
	return Matrix2x3[T]{m[0].Mod(n[0]), m[1].Mod(n[1])}
}

// AddScalar adds s to every element.
func (m Matrix2x3[T]) AddScalar(s T) Matrix2x3[T] {
	return Matrix2x3[T]{m[0].AddScalar(s), m[1].AddScalar(s)}
}

// SubScalar subtracts s from every element.
func (m Matrix2x3[T]) SubScalar(s T) Matrix2x3[T] {
	return Matrix2x3[T]{m[0].SubScalar(s), m[1].SubScalar(s)}
}

// MulScalar returns m scaled by s.
func (m Matrix2x3[T]) MulScalar(s T) Matrix2x3[T] {
	return Matrix2x3[T]{m[0].MulScalar(s), m[1].MulScalar(s)}
}

// DivScalar divides every element by s.
func (m Matrix2x3[T]) DivScalar(s T) Matrix2x3[T] {
	return Matrix2x3[T]{m[0].DivScalar(s), m[1].DivScalar(s)}
}

// ModScalar returns the truncated remainder of every element divided by s.
func (m Matrix2x3[T]) ModScalar(s T) Matrix2x3[T] {
	return Matrix2x3[T]{m[0].ModScalar(s), m[1].ModScalar(s)}
}

// RSubScalar returns s - m, broadcasting s.
func (m Matrix2x3[T]) RSubScalar(s T) Matrix2x3[T] {
	return Matrix2x3[T]{m[0].RSubScalar(s), m[1].RSubScalar(s)}
}

// RDivScalar returns s / m, broadcasting s.
func (m Matrix2x3[T]) RDivScalar(s T) Matrix2x3[T] {
	return Matrix2x3[T]{m[0].RDivScalar(s), m[1].RDivScalar(s)}
}

// RModScalar returns the truncated remainder of s divided by every element.
func (m Matrix2x3[T]) RModScalar(s T) Matrix2x3[T] {
	return Matrix2x3[T]{m[0].RModScalar(s), m[1].RModScalar(s)}
}

// AddInPlace sets m to m.Add(n).
func (m *Matrix2x3[T]) AddInPlace(n Matrix2x3[T]) { *m = m.Add(n) }

// SubInPlace sets m to m.Sub(n).
func (m *Matrix2x3[T]) SubInPlace(n Matrix2x3[T]) { *m = m.Sub(n) }

// ModInPlace sets m to m.Mod(n).
func (m *Matrix2x3[T]) ModInPlace(n Matrix2x3[T]) { *m = m.Mod(n) }

// MulScalarInPlace sets m to m.MulScalar(s).
func (m *Matrix2x3[T]) MulScalarInPlace(s T) { *m = m.MulScalar(s) }

// DivScalarInPlace sets m to m.DivScalar(s).
func (m *Matrix2x3[T]) DivScalarInPlace(s T) { *m = m.DivScalar(s) }

// MulVector returns the product of m and the column vector v.
func (m Matrix2x3[T]) MulVector(v Vector2[T]) Vector3[T] {
	var out Vector3[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&v), 3, 2, 1) {
		return out
	}
	return m.mulVector(v)
}

func (m Matrix2x3[T]) mulVector(v Vector2[T]) Vector3[T] {
	return Vector3[T]{
		T(m[0][0]*v[0]) + T(m[1][0]*v[1]),
		T(m[0][1]*v[0]) + T(m[1][1]*v[1]),
		T(m[0][2]*v[0]) + T(m[1][2]*v[1]),
	}
}

// MulVectors maps every Vector2 in src through m into dst, which must be at
// least as long as src.
func (m Matrix2x3[T]) MulVectors(dst []Vector3[T], src []Vector2[T]) {
	if len(dst) < len(src) {
		panic("MulVectors: dst shorter than src")
	}
	if len(src) == 0 {
		return
	}
	if fastTransform[T](unsafe.Pointer(&dst[0]), unsafe.Pointer(&m), unsafe.Pointer(&src[0]), len(src), 3, 2) {
		return
	}
	for i, v := range src {
		dst[i] = m.mulVector(v)
	}
}

// VectorMul returns the product of the row vector v and m.
func (m Matrix2x3[T]) VectorMul(v Vector3[T]) Vector2[T] {
	var out Vector2[T]
	if fastVecMat[T](unsafe.Pointer(&out), unsafe.Pointer(&v), unsafe.Pointer(&m), 3, 2) {
		return out
	}
	return Vector2[T]{
		T(v[0]*m[0][0]) + T(v[1]*m[0][1]) + T(v[2]*m[0][2]),
		T(v[0]*m[1][0]) + T(v[1]*m[1][1]) + T(v[2]*m[1][2]),
	}
}

// Transpose returns the 3x2 matrix whose rows are the columns of m.
func (m Matrix2x3[T]) Transpose() Matrix3x2[T] {
	return Matrix3x2[T]{m.Row(0), m.Row(1), m.Row(2)}
}

// String formats m column by column, as in Matrix2x3([...], [...]).
func (m Matrix2x3[T]) String() string {
	return formatMatrix("Matrix2x3", m[0][:], m[1][:])
}
