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

// Package linalg provides fixed-size vectors and matrices over any integer or
// floating-point scalar type, with the elementwise operators, linear algebra
// and shading-language style free functions (Clamp, Mix, Normalize, Reflect,
// Refract, Cross, ...) used in graphics and geometry code.
//
// # Types
//
// Vectors are arrays: Vector3[T] is [3]T, so v[0] is the first component and
// two vectors compare with ==. Components are also reachable by name (X, Y,
// Z, W and the color aliases R, G, B, A) and through generated swizzles:
//
//	v := linalg.NewVector4[float32](1, 2, 3, 4)
//	v.ZYX()                                   // Vector3(3, 2, 1)
//	v.SetXY(linalg.NewVector2[float32](0, 0)) // v is now Vector4(0, 0, 3, 4)
//
// A MatrixCxR has C columns of R rows and is stored as C column vectors:
// Matrix2x3[T] is [2]Vector3[T]. Element (c, r) is m[c][r]. The transpose of
// a MatrixCxR is a MatrixRxC, and MatrixCxR times MatrixKxC is a MatrixKxR.
//
// Every operation takes and returns values. Methods named *InPlace take a
// pointer receiver and update it.
//
// # Scalars
//
// The element type is any type satisfying Arithmetic. Integer types use Go's
// wrap-around arithmetic, and integer division or remainder by zero panics as it
// does for plain integers. Float types follow IEEE 754, so inverting a
// singular float matrix yields infinities and NaNs rather than an error.
//
// # Fast path
//
// When CurrentLevel is not DispatchScalar, float32 and float64 matrices take a
// fast path. Single products and inverses run as unrolled column-major
// kernels. The slice operations (MulVectors on every matrix, DotEach) run
// through go-highway SIMD lanes, one vector per lane. Set LINALG_NO_SIMD=1 to
// force the generic code. Named types such as `type Meters float64` always
// use the generic code.
//
// Both paths convert every product to T before adding it. The conversion
// rounds the product and keeps the compiler from fusing it into a multiply-add,
// so the fast path matches the generic code bit for bit on every architecture,
// including arm64 and amd64 builds with FMA enabled.
package linalg
