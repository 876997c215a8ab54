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

// VectorType is the contract shared by Vector2, Vector3 and Vector4. The free
// functions in this package are written once against it: every one of them
// is a composition of the elementwise constructors and a final Reduce.
//
// V is the vector type itself, so that Map and friends return the concrete
// type; T is inferred from V's methods:
//
//	v := linalg.NewVector3[float32](3, 0, 4)
//	n := linalg.Normalize(v) // Vector3[float32]{0.6, 0, 0.8}
type VectorType[V any, T Arithmetic] interface {
	// Map applies op to every component.
	Map(op func(T) T) V
	// Map2 applies op to the aligned components of the receiver and u.
	Map2(u V, op func(T, T) T) V
	// Map3 applies op to the aligned components of the receiver, u and s.
	Map3(u, s V, op func(T, T, T) T) V
	// Reduce folds the components in index order.
	Reduce(init T, op func(acc, x T) T) T
}

var (
	_ VectorType[Vector2[float32], float32] = Vector2[float32]{}
	_ VectorType[Vector3[int], int]         = Vector3[int]{}
	_ VectorType[Vector4[uint8], uint8]     = Vector4[uint8]{}
)
