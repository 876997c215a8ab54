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
	"fmt"
	"strings"
)

// MatrixType is the contract shared by the nine matrix shapes. Matrices are
// arrays of column vectors, so element (c, r) is m[c][r] and the linear index
// used by Element, SetElement and All is column-major: i = c*rows + r.
type MatrixType[M any, T Arithmetic] interface {
	Map(op func(T) T) M
	Map2(n M, op func(T, T) T) M
	Map3(n, o M, op func(T, T, T) T) M
	Len() int
	Element(i int) T
}

var (
	_ MatrixType[Matrix2x2[float32], float32] = Matrix2x2[float32]{}
	_ MatrixType[Matrix2x3[float64], float64] = Matrix2x3[float64]{}
	_ MatrixType[Matrix2x4[int], int]         = Matrix2x4[int]{}
	_ MatrixType[Matrix3x2[int8], int8]       = Matrix3x2[int8]{}
	_ MatrixType[Matrix3x3[float32], float32] = Matrix3x3[float32]{}
	_ MatrixType[Matrix3x4[uint16], uint16]   = Matrix3x4[uint16]{}
	_ MatrixType[Matrix4x2[int64], int64]     = Matrix4x2[int64]{}
	_ MatrixType[Matrix4x3[uint], uint]       = Matrix4x3[uint]{}
	_ MatrixType[Matrix4x4[float64], float64] = Matrix4x4[float64]{}
)

// formatMatrix renders name followed by the bracketed columns, e.g.
// "Matrix2x2([1, 0], [0, 1])".
func formatMatrix[T Arithmetic](name string, cols ...[]T) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for c, col := range cols {
		if c > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for r, x := range col {
			if r > 0 {
				b.WriteString(", ")
			}
			fmt.Fprint(&b, x)
		}
		b.WriteByte(']')
	}
	b.WriteByte(')')
	return b.String()
}

// MatrixEqualApprox reports whether every element of m and n differs by at
// most tol. A NaN element never compares equal.
func MatrixEqualApprox[M MatrixType[M, T], T Float](m, n M, tol T) bool {
	for i := range m.Len() {
		if !(absScalar(m.Element(i)-n.Element(i)) <= tol) {
			return false
		}
	}
	return true
}
