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

//go:generate go run ../cmd/swizzlegen --output . --package linalg

// Named swizzles (v.ZYX(), v.SetBGR(...)) cover every selection of distinct
// components and live in swizzle_gen.go. The index forms below also accept
// repeated positions, which only makes sense for reads: there is no index
// based setter because a repeated position has no single value to receive.

// Swizzle2 returns (v[i], v[j]).
func (v Vector2[T]) Swizzle2(i, j int) Vector2[T] { return Vector2[T]{v[i], v[j]} }

// Swizzle3 returns (v[i], v[j], v[k]).
func (v Vector2[T]) Swizzle3(i, j, k int) Vector3[T] { return Vector3[T]{v[i], v[j], v[k]} }

// Swizzle4 returns (v[i], v[j], v[k], v[l]).
func (v Vector2[T]) Swizzle4(i, j, k, l int) Vector4[T] {
	return Vector4[T]{v[i], v[j], v[k], v[l]}
}

// Swizzle2 returns (v[i], v[j]).
func (v Vector3[T]) Swizzle2(i, j int) Vector2[T] { return Vector2[T]{v[i], v[j]} }

// Swizzle3 returns (v[i], v[j], v[k]).
func (v Vector3[T]) Swizzle3(i, j, k int) Vector3[T] { return Vector3[T]{v[i], v[j], v[k]} }

// Swizzle4 returns (v[i], v[j], v[k], v[l]).
func (v Vector3[T]) Swizzle4(i, j, k, l int) Vector4[T] { return Vector4[T]{v[i], v[j], v[k], v[l]} }

// Swizzle2 returns (v[i], v[j]).
func (v Vector4[T]) Swizzle2(i, j int) Vector2[T] { return Vector2[T]{v[i], v[j]} }

// Swizzle3 returns (v[i], v[j], v[k]).
func (v Vector4[T]) Swizzle3(i, j, k int) Vector3[T] { return Vector3[T]{v[i], v[j], v[k]} }

// Swizzle4 returns (v[i], v[j], v[k], v[l]).
func (v Vector4[T]) Swizzle4(i, j, k, l int) Vector4[T] { return Vector4[T]{v[i], v[j], v[k], v[l]} }
