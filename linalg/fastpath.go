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
	"unsafe"

	"github.com/ajroetker/go-linalg/linalg/internal/kernels"
)

// The functions below hand vector and matrix memory to the kernels. A
// MatrixCxR[T] is [C][R]T, i.e. C*R contiguous elements in column-major
// order, and a []VectorN[T] is N*len contiguous elements; both are the
// layouts the kernels expect. Each function
// reports false when the fast path does not apply, in which case the caller
// runs its generic code.
//
// The type switch matches float32 and float64 exactly: named types such as
// `type Meters float64` take the generic path.

// fastMatMul computes dst = a * b for a rows x inner matrix a and an
// inner x cols matrix b. A column vector is a matrix with one column.
func fastMatMul[T Arithmetic](dst, a, b unsafe.Pointer, rows, inner, cols int) bool {
	if !FastPathEnabled() {
		return false
	}
	var zero T
	switch any(zero).(type) {
	case float32:
		kernels.MatMul(
			unsafe.Slice((*float32)(dst), rows*cols),
			unsafe.Slice((*float32)(a), rows*inner),
			unsafe.Slice((*float32)(b), inner*cols),
			rows, inner, cols)
		return true
	case float64:
		kernels.MatMul(
			unsafe.Slice((*float64)(dst), rows*cols),
			unsafe.Slice((*float64)(a), rows*inner),
			unsafe.Slice((*float64)(b), inner*cols),
			rows, inner, cols)
		return true
	}
	return false
}

// fastVecMat computes dst = v * m for a row vector v of length rows and a
// rows x cols matrix m.
func fastVecMat[T Arithmetic](dst, v, m unsafe.Pointer, rows, cols int) bool {
	if !FastPathEnabled() {
		return false
	}
	var zero T
	switch any(zero).(type) {
	case float32:
		kernels.VecMat(
			unsafe.Slice((*float32)(dst), cols),
			unsafe.Slice((*float32)(v), rows),
			unsafe.Slice((*float32)(m), rows*cols),
			rows, cols)
		return true
	case float64:
		kernels.VecMat(
			unsafe.Slice((*float64)(dst), cols),
			unsafe.Slice((*float64)(v), rows),
			unsafe.Slice((*float64)(m), rows*cols),
			rows, cols)
		return true
	}
	return false
}

// fastInverse writes the inverse of the n x n matrix m into dst.
func fastInverse[T Arithmetic](dst, m unsafe.Pointer, n int) bool {
	if !FastPathEnabled() {
		return false
	}
	var zero T
	switch any(zero).(type) {
	case float32:
		inverseKernel(unsafe.Slice((*float32)(dst), n*n), unsafe.Slice((*float32)(m), n*n), n)
		return true
	case float64:
		inverseKernel(unsafe.Slice((*float64)(dst), n*n), unsafe.Slice((*float64)(m), n*n), n)
		return true
	}
	return false
}

// fastTransform sets dst[i] = m * src[i] for n consecutive vectors, where m
// is rows x cols.
func fastTransform[T Arithmetic](dst, m, src unsafe.Pointer, n, rows, cols int) bool {
	if !FastPathEnabled() {
		return false
	}
	var zero T
	switch any(zero).(type) {
	case float32:
		kernels.Transform(
			unsafe.Slice((*float32)(dst), n*rows),
			unsafe.Slice((*float32)(m), rows*cols),
			unsafe.Slice((*float32)(src), n*cols),
			n, rows, cols)
		return true
	case float64:
		kernels.Transform(
			unsafe.Slice((*float64)(dst), n*rows),
			unsafe.Slice((*float64)(m), rows*cols),
			unsafe.Slice((*float64)(src), n*cols),
			n, rows, cols)
		return true
	}
	return false
}

// fastDots sets dst[i] to the dot product of the i-th dim-component vectors
// at x and y.
func fastDots[T Arithmetic](dst, x, y unsafe.Pointer, n, dim int) bool {
	if !FastPathEnabled() {
		return false
	}
	var zero T
	switch any(zero).(type) {
	case float32:
		kernels.Dots(unsafe.Slice((*float32)(dst), n),
			unsafe.Slice((*float32)(x), n*dim), unsafe.Slice((*float32)(y), n*dim), n, dim)
		return true
	case float64:
		kernels.Dots(unsafe.Slice((*float64)(dst), n),
			unsafe.Slice((*float64)(x), n*dim), unsafe.Slice((*float64)(y), n*dim), n, dim)
		return true
	}
	return false
}

func inverseKernel[F kernels.Floats](dst, m []F, n int) {
	switch n {
	case 2:
		kernels.Inverse2(dst, m)
	case 3:
		kernels.Inverse3(dst, m)
	case 4:
		kernels.Inverse4(dst, m)
	default:
		panic("inverseKernel: unsupported dimension")
	}
}
