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

// Package kernels provides the float32 and float64 routines behind the linalg
// fast path.
//
// # Layout
//
// Every matrix is a flat column-major slice: element (c, r) of a matrix with
// rows rows lives at index c*rows + r. This is exactly the memory layout of
// the linalg matrix types, which lets linalg reinterpret its values in place
// instead of copying them.
//
// # Numerics
//
// The kernels accumulate in the same order as the generic linalg code and use
// the same closed forms for inverses. Every product is converted to T before
// it is added, which rounds it and keeps the compiler from fusing it into a
// multiply-add, so results are bit-identical to the generic code on every
// architecture. The generic code is the reference the tests compare against.
//
// # Lanes
//
// MatMul, VecMat and the inverses work on one small matrix at a time in
// scalar code. Transform and Dots process many vectors at once with
// github.com/ajroetker/go-highway/hwy: vectors are transposed into lanes, one
// vector per lane, and combined with separate hwy.Mul and hwy.Add steps.
package kernels

// Floats is a constraint for the element types the kernels accept.
type Floats interface {
	~float32 | ~float64
}
