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

import "unsafe"

// MulMatrix2x2 returns the matrix product m * n. Column k of the result
// is m times column k of n.
func (m Matrix2x2[T]) MulMatrix2x2(n Matrix2x2[T]) Matrix2x2[T] {
	var out Matrix2x2[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 2, 2, 2) {
		return out
	}
	return Matrix2x2[T]{m.mulVector(n[0]), m.mulVector(n[1])}
}

// MulMatrix3x2 returns the matrix product m * n.
func (m Matrix2x2[T]) MulMatrix3x2(n Matrix3x2[T]) Matrix3x2[T] {
	var out Matrix3x2[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 2, 2, 3) {
		return out
	}
	return Matrix3x2[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2])}
}

// MulMatrix4x2 returns the matrix product m * n.
func (m Matrix2x2[T]) MulMatrix4x2(n Matrix4x2[T]) Matrix4x2[T] {
	var out Matrix4x2[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 2, 2, 4) {
		return out
	}
	return Matrix4x2[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2]), m.mulVector(n[3])}
}

// MulMatrix2x2 returns the matrix product m * n.
func (m Matrix2x3[T]) MulMatrix2x2(n Matrix2x2[T]) Matrix2x3[T] {
	var out Matrix2x3[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 3, 2, 2) {
		return out
	}
	return Matrix2x3[T]{m.mulVector(n[0]), m.mulVector(n[1])}
}

// MulMatrix3x2 returns the matrix product m * n.
func (m Matrix2x3[T]) MulMatrix3x2(n Matrix3x2[T]) Matrix3x3[T] {
	var out Matrix3x3[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 3, 2, 3) {
		return out
	}
	return Matrix3x3[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2])}
}

// MulMatrix4x2 returns the matrix product m * n.
func (m Matrix2x3[T]) MulMatrix4x2(n Matrix4x2[T]) Matrix4x3[T] {
	var out Matrix4x3[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 3, 2, 4) {
		return out
	}
	return Matrix4x3[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2]), m.mulVector(n[3])}
}

// MulMatrix2x2 returns the matrix product m * n.
func (m Matrix2x4[T]) MulMatrix2x2(n Matrix2x2[T]) Matrix2x4[T] {
	var out Matrix2x4[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 4, 2, 2) {
		return out
	}
	return Matrix2x4[T]{m.mulVector(n[0]), m.mulVector(n[1])}
}

// MulMatrix3x2 returns the matrix product m * n.
func (m Matrix2x4[T]) MulMatrix3x2(n Matrix3x2[T]) Matrix3x4[T] {
	var out Matrix3x4[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 4, 2, 3) {
		return out
	}
	return Matrix3x4[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2])}
}

// MulMatrix4x2 returns the matrix product m * n.
func (m Matrix2x4[T]) MulMatrix4x2(n Matrix4x2[T]) Matrix4x4[T] {
	var out Matrix4x4[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 4, 2, 4) {
		return out
	}
	return Matrix4x4[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2]), m.mulVector(n[3])}
}

// MulMatrix2x3 returns the matrix product m * n.
func (m Matrix3x2[T]) MulMatrix2x3(n Matrix2x3[T]) Matrix2x2[T] {
	var out Matrix2x2[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 2, 3, 2) {
		return out
	}
	return Matrix2x2[T]{m.mulVector(n[0]), m.mulVector(n[1])}
}

// MulMatrix3x3 returns the matrix product m * n.
func (m Matrix3x2[T]) MulMatrix3x3(n Matrix3x3[T]) Matrix3x2[T] {
	var out Matrix3x2[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 2, 3, 3) {
		return out
	}
	return Matrix3x2[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2])}
}

// MulMatrix4x3 returns the matrix product m * n.
func (m Matrix3x2[T]) MulMatrix4x3(n Matrix4x3[T]) Matrix4x2[T] {
	var out Matrix4x2[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 2, 3, 4) {
		return out
	}
	return Matrix4x2[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2]), m.mulVector(n[3])}
}

// MulMatrix2x3 returns the matrix product m * n.
func (m Matrix3x3[T]) MulMatrix2x3(n Matrix2x3[T]) Matrix2x3[T] {
	var out Matrix2x3[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 3, 3, 2) {
		return out
	}
	return Matrix2x3[T]{m.mulVector(n[0]), m.mulVector(n[1])}
}

// MulMatrix3x3 returns the matrix product m * n.
func (m Matrix3x3[T]) MulMatrix3x3(n Matrix3x3[T]) Matrix3x3[T] {
	var out Matrix3x3[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 3, 3, 3) {
		return out
	}
	return Matrix3x3[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2])}
}

// MulMatrix4x3 returns the matrix product m * n.
func (m Matrix3x3[T]) MulMatrix4x3(n Matrix4x3[T]) Matrix4x3[T] {
	var out Matrix4x3[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 3, 3, 4) {
		return out
	}
	return Matrix4x3[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2]), m.mulVector(n[3])}
}

// MulMatrix2x3 returns the matrix product m * n.
func (m Matrix3x4[T]) MulMatrix2x3(n Matrix2x3[T]) Matrix2x4[T] {
	var out Matrix2x4[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 4, 3, 2) {
		return out
	}
	return Matrix2x4[T]{m.mulVector(n[0]), m.mulVector(n[1])}
}

// MulMatrix3x3 returns the matrix product m * n.
func (m Matrix3x4[T]) MulMatrix3x3(n Matrix3x3[T]) Matrix3x4[T] {
	var out Matrix3x4[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 4, 3, 3) {
		return out
	}
	return Matrix3x4[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2])}
}

// MulMatrix4x3 returns the matrix product m * n.
func (m Matrix3x4[T]) MulMatrix4x3(n Matrix4x3[T]) Matrix4x4[T] {
	var out Matrix4x4[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 4, 3, 4) {
		return out
	}
	return Matrix4x4[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2]), m.mulVector(n[3])}
}

// MulMatrix2x4 returns the matrix product m * n.
func (m Matrix4x2[T]) MulMatrix2x4(n Matrix2x4[T]) Matrix2x2[T] {
	var out Matrix2x2[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 2, 4, 2) {
		return out
	}
	return Matrix2x2[T]{m.mulVector(n[0]), m.mulVector(n[1])}
}

// MulMatrix3x4 returns the matrix product m * n.
func (m Matrix4x2[T]) MulMatrix3x4(n Matrix3x4[T]) Matrix3x2[T] {
	var out Matrix3x2[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 2, 4, 3) {
		return out
	}
	return Matrix3x2[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2])}
}

// MulMatrix4x4 returns the matrix product m * n.
func (m Matrix4x2[T]) MulMatrix4x4(n Matrix4x4[T]) Matrix4x2[T] {
	var out Matrix4x2[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 2, 4, 4) {
		return out
	}
	return Matrix4x2[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2]), m.mulVector(n[3])}
}

// MulMatrix2x4 returns the matrix product m * n.
func (m Matrix4x3[T]) MulMatrix2x4(n Matrix2x4[T]) Matrix2x3[T] {
	var out Matrix2x3[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 3, 4, 2) {
		return out
	}
	return Matrix2x3[T]{m.mulVector(n[0]), m.mulVector(n[1])}
}

// MulMatrix3x4 returns the matrix product m * n.
func (m Matrix4x3[T]) MulMatrix3x4(n Matrix3x4[T]) Matrix3x3[T] {
	var out Matrix3x3[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 3, 4, 3) {
		return out
	}
	return Matrix3x3[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2])}
}

// MulMatrix4x4 returns the matrix product m * n.
func (m Matrix4x3[T]) MulMatrix4x4(n Matrix4x4[T]) Matrix4x3[T] {
	var out Matrix4x3[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 3, 4, 4) {
		return out
	}
	return Matrix4x3[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2]), m.mulVector(n[3])}
}

// MulMatrix2x4 returns the matrix product m * n.
func (m Matrix4x4[T]) MulMatrix2x4(n Matrix2x4[T]) Matrix2x4[T] {
	var out Matrix2x4[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 4, 4, 2) {
		return out
	}
	return Matrix2x4[T]{m.mulVector(n[0]), m.mulVector(n[1])}
}

// MulMatrix3x4 returns the matrix product m * n.
func (m Matrix4x4[T]) MulMatrix3x4(n Matrix3x4[T]) Matrix3x4[T] {
	var out Matrix3x4[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 4, 4, 3) {
		return out
	}
	return Matrix3x4[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2])}
}

// MulMatrix4x4 returns the matrix product m * n.
func (m Matrix4x4[T]) MulMatrix4x4(n Matrix4x4[T]) Matrix4x4[T] {
	var out Matrix4x4[T]
	if fastMatMul[T](unsafe.Pointer(&out), unsafe.Pointer(&m), unsafe.Pointer(&n), 4, 4, 4) {
		return out
	}
	return Matrix4x4[T]{m.mulVector(n[0]), m.mulVector(n[1]), m.mulVector(n[2]), m.mulVector(n[3])}
}
