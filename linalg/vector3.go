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

// Vector3 is a three-component vector of scalar type T. Components are
// addressed by position (v[0] through v[2]) or by name: X, Y, Z and the color
// aliases R, G, B. Indexing past the last component panics.
type Vector3[T Arithmetic] [3]T

// NewVector3 returns the vector (x, y, z).
func NewVector3[T Arithmetic](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

// Splat3 returns a vector with every component set to s.
func Splat3[T Arithmetic](s T) Vector3[T] {
	return Vector3[T]{s, s, s}
}

// Vector3FromSlice copies s into a Vector3. It panics if len(s) != 3.
func Vector3FromSlice[T Arithmetic](s []T) Vector3[T] {
	if len(s) != 3 {
		panic("Vector3FromSlice: slice length must be 3")
	}
	return Vector3[T]{s[0], s[1], s[2]}
}

// ConvertVector3 converts every component of v to T.
func ConvertVector3[T, U Arithmetic](v Vector3[U]) Vector3[T] {
	return Vector3[T]{T(v[0]), T(v[1]), T(v[2])}
}

// X returns the first component.
func (v Vector3[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vector3[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vector3[T]) Z() T { return v[2] }

// R returns the first component, the same as X.
func (v Vector3[T]) R() T { return v[0] }

// G returns the second component, the same as Y.
func (v Vector3[T]) G() T { return v[1] }

// B returns the third component, the same as Z.
func (v Vector3[T]) B() T { return v[2] }

// SetX sets the first component.
func (v *Vector3[T]) SetX(s T) { v[0] = s }

// SetY sets the second component.
func (v *Vector3[T]) SetY(s T) { v[1] = s }

// SetZ sets the third component.
func (v *Vector3[T]) SetZ(s T) { v[2] = s }

// SetR sets the first component, the same as SetX.
func (v *Vector3[T]) SetR(s T) { v[0] = s }

// SetG sets the second component, the same as SetY.
func (v *Vector3[T]) SetG(s T) { v[1] = s }

// SetB sets the third component, the same as SetZ.
func (v *Vector3[T]) SetB(s T) { v[2] = s }

// Map returns the vector whose components are op applied to the components
// of v.
func (v Vector3[T]) Map(op func(T) T) Vector3[T] {
	return Vector3[T]{op(v[0]), op(v[1]), op(v[2])}
}

// Map2 applies op pairwise to the aligned components of v and u.
func (v Vector3[T]) Map2(u Vector3[T], op func(T, T) T) Vector3[T] {
	return Vector3[T]{op(v[0], u[0]), op(v[1], u[1]), op(v[2], u[2])}
}

// Map3 applies op to the aligned components of v, u and s.
func (v Vector3[T]) Map3(u, s Vector3[T], op func(T, T, T) T) Vector3[T] {
	return Vector3[T]{op(v[0], u[0], s[0]), op(v[1], u[1], s[1]), op(v[2], u[2], s[2])}
}

// Reduce folds the components of v in index order, starting from init.
func (v Vector3[T]) Reduce(init T, op func(acc, x T) T) T {
	acc := init
	for _, x := range v {
		acc = op(acc, x)
	}
	return acc
}

// Add returns v + u.
func (v Vector3[T]) Add(u Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns v - u.
func (v Vector3[T]) Sub(u Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Mul returns the componentwise product of v and u.
func (v Vector3[T]) Mul(u Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] * u[0], v[1] * u[1], v[2] * u[2]}
}

// Div returns the componentwise quotient of v and u.
func (v Vector3[T]) Div(u Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] / u[0], v[1] / u[1], v[2] / u[2]}
}

// Mod returns the componentwise remainder of v and u (see Rem).
func (v Vector3[T]) Mod(u Vector3[T]) Vector3[T] {
	return Vector3[T]{Rem(v[0], u[0]), Rem(v[1], u[1]), Rem(v[2], u[2])}
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v[0], -v[1], -v[2]}
}

// AddScalar adds s to every component.
func (v Vector3[T]) AddScalar(s T) Vector3[T] {
	return Vector3[T]{v[0] + s, v[1] + s, v[2] + s}
}

// SubScalar subtracts s from every component.
func (v Vector3[T]) SubScalar(s T) Vector3[T] {
	return Vector3[T]{v[0] - s, v[1] - s, v[2] - s}
}

// MulScalar multiplies every component by s.
func (v Vector3[T]) MulScalar(s T) Vector3[T] {
	return Vector3[T]{v[0] * s, v[1] * s, v[2] * s}
}

// DivScalar divides every component by s.
func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	return Vector3[T]{v[0] / s, v[1] / s, v[2] / s}
}

// ModScalar returns the truncated remainder of every component divided by s.
func (v Vector3[T]) ModScalar(s T) Vector3[T] {
	return Vector3[T]{Rem(v[0], s), Rem(v[1], s), Rem(v[2], s)}
}

// RSubScalar returns s - v, broadcasting s.
func (v Vector3[T]) RSubScalar(s T) Vector3[T] {
	return Vector3[T]{s - v[0], s - v[1], s - v[2]}
}

// RDivScalar returns s / v, broadcasting s.
func (v Vector3[T]) RDivScalar(s T) Vector3[T] {
	return Vector3[T]{s / v[0], s / v[1], s / v[2]}
}

// RModScalar returns the remainder of s divided by each component of v.
func (v Vector3[T]) RModScalar(s T) Vector3[T] {
	return Vector3[T]{Rem(s, v[0]), Rem(s, v[1]), Rem(s, v[2])}
}

// AddInPlace sets v to v.Add(u).
func (v *Vector3[T]) AddInPlace(u Vector3[T]) { *v = v.Add(u) }

// SubInPlace sets v to v.Sub(u).
func (v *Vector3[T]) SubInPlace(u Vector3[T]) { *v = v.Sub(u) }

// MulInPlace sets v to v.Mul(u).
func (v *Vector3[T]) MulInPlace(u Vector3[T]) { *v = v.Mul(u) }

// DivInPlace sets v to v.Div(u).
func (v *Vector3[T]) DivInPlace(u Vector3[T]) { *v = v.Div(u) }

// ModInPlace sets v to v.Mod(u).
func (v *Vector3[T]) ModInPlace(u Vector3[T]) { *v = v.Mod(u) }

// AddScalarInPlace sets v to v.AddScalar(s).
func (v *Vector3[T]) AddScalarInPlace(s T) { *v = v.AddScalar(s) }

// SubScalarInPlace sets v to v.SubScalar(s).
func (v *Vector3[T]) SubScalarInPlace(s T) { *v = v.SubScalar(s) }

// MulScalarInPlace sets v to v.MulScalar(s).
func (v *Vector3[T]) MulScalarInPlace(s T) { *v = v.MulScalar(s) }

// DivScalarInPlace sets v to v.DivScalar(s).
func (v *Vector3[T]) DivScalarInPlace(s T) { *v = v.DivScalar(s) }

// ModScalarInPlace sets v to v.ModScalar(s).
func (v *Vector3[T]) ModScalarInPlace(s T) { *v = v.ModScalar(s) }

// String formats v as Vector3(x, y, z).
func (v Vector3[T]) String() string {
	return fmt.Sprintf("Vector3(%v, %v, %v)", v[0], v[1], v[2])
}
