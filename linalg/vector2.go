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

import "fmt"

// Vector2 is a two-component vector of scalar type T.
type Vector2[T Arithmetic] [2]T

// NewVector2 returns the vector (x, y).
func NewVector2[T Arithmetic](x, y T) Vector2[T] {
	return Vector2[T]{x, y}
}

// Splat2 returns a vector with every component set to s.
func Splat2[T Arithmetic](s T) Vector2[T] {
	return Vector2[T]{s, s}
}

// Vector2FromSlice copies s into a Vector2. It panics if len(s) != 2.
func Vector2FromSlice[T Arithmetic](s []T) Vector2[T] {
	if len(s) != 2 {
		panic("Vector2FromSlice: slice length must be 2")
	}
	return Vector2[T]{s[0], s[1]}
}

// ConvertVector2 converts every component of v to T.
func ConvertVector2[T, U Arithmetic](v Vector2[U]) Vector2[T] {
	return Vector2[T]{T(v[0]), T(v[1])}
}

// X returns the first component.
func (v Vector2[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vector2[T]) Y() T { return v[1] }

// R returns the first component, the same as X.
func (v Vector2[T]) R() T { return v[0] }

// G returns the second component, the same as Y.
func (v Vector2[T]) G() T { return v[1] }

// SetX sets the first component.
func (v *Vector2[T]) SetX(s T) { v[0] = s }

// SetY sets the second component.
func (v *Vector2[T]) SetY(s T) { v[1] = s }

// SetR sets the first component, the same as SetX.
func (v *Vector2[T]) SetR(s T) { v[0] = s }

// SetG sets the second component, the same as SetY.
func (v *Vector2[T]) SetG(s T) { v[1] = s }

// Map returns the vector whose components are op applied to the components
// of v.
func (v Vector2[T]) Map(op func(T) T) Vector2[T] {
	return Vector2[T]{op(v[0]), op(v[1])}
}

// Map2 applies op pairwise to the aligned components of v and u.
func (v Vector2[T]) Map2(u Vector2[T], op func(T, T) T) Vector2[T] {
	return Vector2[T]{op(v[0], u[0]), op(v[1], u[1])}
}

// Map3 applies op to the aligned components of v, u and s.
func (v Vector2[T]) Map3(u, s Vector2[T], op func(T, T, T) T) Vector2[T] {
	return Vector2[T]{op(v[0], u[0], s[0]), op(v[1], u[1], s[1])}
}

// Reduce folds the components of v in index order, starting from init.
func (v Vector2[T]) Reduce(init T, op func(acc, x T) T) T {
	acc := init
	for _, x := range v {
		acc = op(acc, x)
	}
	return acc
}

// Add returns v + u.
func (v Vector2[T]) Add(u Vector2[T]) Vector2[T] {
	return Vector2[T]{v[0] + u[0], v[1] + u[1]}
}

// Sub returns v - u.
func (v Vector2[T]) Sub(u Vector2[T]) Vector2[T] {
	return Vector2[T]{v[0] - u[0], v[1] - u[1]}
}

// Mul returns the componentwise product of v and u.
func (v Vector2[T]) Mul(u Vector2[T]) Vector2[T] {
	return Vector2[T]{v[0] * u[0], v[1] * u[1]}
}

// Div returns the componentwise quotient of v and u.
func (v Vector2[T]) Div(u Vector2[T]) Vector2[T] {
	return Vector2[T]{v[0] / u[0], v[1] / u[1]}
}

// Mod returns the componentwise remainder of v and u (see Rem).
func (v Vector2[T]) Mod(u Vector2[T]) Vector2[T] {
	return Vector2[T]{Rem(v[0], u[0]), Rem(v[1], u[1])}
}

// Neg returns -v.
func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{-v[0], -v[1]}
}

// AddScalar adds s to every component.
func (v Vector2[T]) AddScalar(s T) Vector2[T] {
	return Vector2[T]{v[0] + s, v[1] + s}
}

// SubScalar subtracts s from every component.
func (v Vector2[T]) SubScalar(s T) Vector2[T] {
	return Vector2[T]{v[0] - s, v[1] - s}
}

// MulScalar multiplies every component by s.
func (v Vector2[T]) MulScalar(s T) Vector2[T] {
	return Vector2[T]{v[0] * s, v[1] * s}
}

// DivScalar divides every component by s.
func (v Vector2[T]) DivScalar(s T) Vector2[T] {
	return Vector2[T]{v[0] / s, v[1] / s}
}

// ModScalar returns the truncated remainder of every component divided by s.
func (v Vector2[T]) ModScalar(s T) Vector2[T] {
	return Vector2[T]{Rem(v[0], s), Rem(v[1], s)}
}

// RSubScalar returns s - v, broadcasting s.
func (v Vector2[T]) RSubScalar(s T) Vector2[T] {
	return Vector2[T]{s - v[0], s - v[1]}
}

// RDivScalar returns s / v, broadcasting s.
func (v Vector2[T]) RDivScalar(s T) Vector2[T] {
	return Vector2[T]{s / v[0], s / v[1]}
}

// RModScalar returns the remainder of s divided by each component of v.
func (v Vector2[T]) RModScalar(s T) Vector2[T] {
	return Vector2[T]{Rem(s, v[0]), Rem(s, v[1])}
}

// AddInPlace sets v to v.Add(u).
func (v *Vector2[T]) AddInPlace(u Vector2[T]) { *v = v.Add(u) }

// SubInPlace sets v to v.Sub(u).
func (v *Vector2[T]) SubInPlace(u Vector2[T]) { *v = v.Sub(u) }

// MulInPlace sets v to v.Mul(u).
func (v *Vector2[T]) MulInPlace(u Vector2[T]) { *v = v.Mul(u) }

// DivInPlace sets v to v.Div(u).
func (v *Vector2[T]) DivInPlace(u Vector2[T]) { *v = v.Div(u) }

// ModInPlace sets v to v.Mod(u).
func (v *Vector2[T]) ModInPlace(u Vector2[T]) { *v = v.Mod(u) }

// AddScalarInPlace sets v to v.AddScalar(s).
func (v *Vector2[T]) AddScalarInPlace(s T) { *v = v.AddScalar(s) }

// SubScalarInPlace sets v to v.SubScalar(s).
func (v *Vector2[T]) SubScalarInPlace(s T) { *v = v.SubScalar(s) }

// MulScalarInPlace sets v to v.MulScalar(s).
func (v *Vector2[T]) MulScalarInPlace(s T) { *v = v.MulScalar(s) }

// DivScalarInPlace sets v to v.DivScalar(s).
func (v *Vector2[T]) DivScalarInPlace(s T) { *v = v.DivScalar(s) }

// ModScalarInPlace sets v to v.ModScalar(s).
func (v *Vector2[T]) ModScalarInPlace(s T) { *v = v.ModScalar(s) }

// String formats v as Vector2(x, y).
func (v Vector2[T]) String() string {
	return fmt.Sprintf("Vector2(%v, %v)", v[0], v[1])
}
