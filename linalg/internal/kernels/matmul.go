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

package kernels

// MatMul computes dst = a * b where a is rows x inner, b is inner x cols and
// dst is rows x cols, all column-major. dst must not alias a or b.
//
// Each element is accumulated left to right over the shared dimension,
// starting from the first product, with every product rounded to T before it
// is added:
//
//	dst(j, i) = T(a(0, i)*b(j, 0)) + T(a(1, i)*b(j, 1)) + ...
//
// Panics if any slice is shorter than its shape requires.
func MatMul[T Floats](dst, a, b []T, rows, inner, cols int) {
	if len(a) < rows*inner {
		panic("MatMul: a slice too short")
	}
	if len(b) < inner*cols {
		panic("MatMul: b slice too short")
	}
	if len(dst) < rows*cols {
		panic("MatMul: dst slice too short")
	}

	if rows == 4 && inner == 4 {
		matMul4xN(dst, a, b, cols)
		return
	}

	for j := range cols {
		bj := b[j*inner : (j+1)*inner]
		for i := range rows {
			acc := T(a[i] * bj[0])
			for k := 1; k < inner; k++ {
				acc += T(a[k*rows+i] * bj[k])
			}
			dst[j*rows+i] = acc
		}
	}
}

// matMul4xN is MatMul for a 4x4 left operand, unrolled over rows and the
// shared dimension.
func matMul4xN[T Floats](dst, a, b []T, cols int) {
	a = a[:16]
	for j := range cols {
		bj := b[j*4 : j*4+4]
		d := dst[j*4 : j*4+4]
		b0, b1, b2, b3 := bj[0], bj[1], bj[2], bj[3]
		d[0] = T(a[0]*b0) + T(a[4]*b1) + T(a[8]*b2) + T(a[12]*b3)
		d[1] = T(a[1]*b0) + T(a[5]*b1) + T(a[9]*b2) + T(a[13]*b3)
		d[2] = T(a[2]*b0) + T(a[6]*b1) + T(a[10]*b2) + T(a[14]*b3)
		d[3] = T(a[3]*b0) + T(a[7]*b1) + T(a[11]*b2) + T(a[15]*b3)
	}
}

// VecMat computes dst = v * m treating v as a row vector: m is rows x cols,
// v has rows elements and dst has cols elements.
//
//	dst(c) = T(v(0)*m(c, 0)) + T(v(1)*m(c, 1)) + ...
func VecMat[T Floats](dst, v, m []T, rows, cols int) {
	if len(m) < rows*cols {
		panic("VecMat: matrix slice too short")
	}
	if len(v) < rows {
		panic("VecMat: vector slice too short")
	}
	if len(dst) < cols {
		panic("VecMat: dst slice too short")
	}

	for c := range cols {
		col := m[c*rows : (c+1)*rows]
		acc := T(v[0] * col[0])
		for r := 1; r < rows; r++ {
			acc += T(v[r] * col[r])
		}
		dst[c] = acc
	}
}
