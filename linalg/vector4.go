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

// Vector4 is a four-component vector of scalar type T. The fourth component
// is W (alias A).
type Vector4[T Arithmetic] [4]T

// NewVector4 returns the vector (x, y, z, w).
func NewVector4[T Arithmetic](x, y, z, w T) Vector4[T] {
	return Vector4[T]{x, y, z, w}
}

// Splat4 returns a vector with every component set to s.
func Splat4[T Arithmetic](s T) Vector4[T] {
	return Vector4[T]{s, s, s, s}
}

// Vector4FromSlice copies s into a Vector4. It panics if len(s) != 4.
func Vector4FromSlice[T Arithmetic](s []T) Vector4[T] {
	if len(s) != 4 {
		panic("Vector4FromSlice: slice length must be 4")
	}
	return Vector4[T]{s[0], s[1], s[2], s[3]}
}

// ConvertVector4 converts every component of v to T.
func ConvertVector4[T, U Arithmetic](v Vector4[U]) Vector4[T] {
	return Vector4[T]{T(v[0]), T(v[1]), T(v[2]), T(v[3])}
}

// X returns the first component.
func (v Vector4[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vector4[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vector4[T]) Z() T { return v[2] }

// W returns the fourth component.
func (v Vector4[T]) W() T { return v[3] }

// R returns the first component, the same as X.
func (v Vector4[T]) R() T { return v[0] }

// G returns the second component, the same as Y.
func (v Vector4[T]) G() T { return v[1] }

// B returns the third component, the same as Z.
func (v Vector4[T]) B() T { return v[2] }

// A returns the fourth component, the same as W.
func (v Vector4[T]) A() T { return v[3] }

// SetX sets the first component.
func (v *Vector4[T]) SetX(s T) { v[0] = s }

// SetY sets the second component.
func (v *Vector4[T]) SetY(s T) { v[1] = s }

// SetZ sets the third component.
func (v *Vector4[T]) SetZ(s T) { v[2] = s }

// SetW sets the fourth component.
func (v *Vector4[T]) SetW(s T) { v[3] = s }

// SetR sets the first component, the same as SetX.
func (v *Vector4[T]) SetR(s T) { v[0] = s }

// SetG sets the second component, the same as SetY.
func (v *Vector4[T]) SetG(s T) { v[1] = s }

// SetB sets the third component, the same as SetZ.
func (v *Vector4[T]) SetB(s T) { v[2] = s }

// SetA sets the fourth component, the same as SetW.
func (v *Vector4[T]) SetA(s T) { v[3] = s }

// Map returns the vector whose components are op applied to the components
// of v.
func (v Vector4[T]) Map(op func(T) T) Vector4[T] {
	return Vector4[T]{op(v[0]), op(v[1]), op(v[2]), op(v[3])}
}

// Map2 applies op pairwise to the aligned components of v and u.
func (v Vector4[T]) Map2(u Vector4[T], op func(T, T) T) Vector4[T] {
	return Vector4[T]{op(v[0], u[0]), op(v[1], u[1]), op(v[2], u[2]), op(v[3], u[3])}
}

// Map3 applies op to the aligned components of v, u and s.
func (v Vector4[T]) Map3(u, s Vector4[T], op func(T, T, T) T) Vector4[T] {
	return Vector4[T]{
		op(v[0], u[0], s[0]),
		op(v[1], u[1], s[1]),
		op(v[2], u[2], s[2]),
		op(v[3], u[3], s[3]),
	}
}

// Reduce folds the components of v in index order, starting from init.
func (v Vector4[T]) Reduce(init T, op func(acc, x T) T) T {
	acc := init
	for _, x := range v {
		acc = op(acc, x)
	}
	return acc
}

// Add returns v + u.
func (v Vector4[T]) Add(u Vector4[T]) Vector4[T] {
	return Vector4[T]{v[0] + u[0], v[1] + u[1], v[2] + u[2], v[3] + u[3]}
}

// Sub returns v - u.
func (v Vector4[T]) Sub(u Vector4[T]) Vector4[T] {
	return Vector4[T]{v[0] - u[0], v[1] - u[1], v[2] - u[2], v[3] - u[3]}
}

// Mul returns the componentwise product of v and u.
func (v Vector4[T]) Mul(u Vector4[T]) Vector4[T] {
	return Vector4[T]{v[0] * u[0], v[1] * u[1], v[2] * u[2], v[3] * u[3]}
}

// Div returns the componentwise quotient of v and u.
func (v Vector4[T]) Div(u Vector4[T]) Vector4[T] {
	return Vector4[T]{v[0] / u[0], v[1] / u[1], v[2] / u[2], v[3] / u[3]}
}

// Mod returns the componentwise remainder of v and u (see Rem).
func (v Vector4[T]) Mod(u Vector4[T]) Vector4[T] {
	return Vector4[T]{Rem(v[0], u[0]), Rem(v[1], u[1]), Rem(v[2], u[2]), Rem(v[3], u[3])}
}

// Neg returns -v.
func (v Vector4[T]) Neg() Vector4[T] {
	return Vector4[T]{-v[0], -v[1], -v[2], -v[3]}
}

// AddScalar adds s to every component.
func (v Vector4[T]) AddScalar(s T) Vector4[T] {
	return Vector4[T]{v[0] + s, v[1] + s, v[2] + s, v[3] + s}
}

// SubScalar subtracts s from every component.
func (v Vector4[T]) SubScalar(s T) Vector4[T] {
	return Vector4[T]{v[0] - s, v[1] - s, v[2] - s, v[3] - s}
}

// MulScalar multiplies every component by s.
func (v Vector4[T]) MulScalar(s T) Vector4[T] {
	return Vector4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// DivScalar divides every component by s.
func (v Vector4[T]) DivScalar(s T) Vector4[T] {
	return Vector4[T]{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

// ModScalar returns the truncated remainder of every component divided by s.
func (v Vector4[T]) ModScalar(s T) Vector4[T] {
	return Vector4[T]{Rem(v[0], s), Rem(v[1], s), Rem(v[2], s), Rem(v[3], s)}
}

// RSubScalar returns s - v, broadcasting s.
func (v Vector4[T]) RSubScalar(s T) Vector4[T] {
	return Vector4[T]{s - v[0], s - v[1], s - v[2], s - v[3]}
}

// RDivScalar returns s / v, broadcasting s.
func (v Vector4[T]) RDivScalar(s T) Vector4[T] {
	return Vector4[T]{s / v[0], s / v[1], s / v[2], s / v[3]}
}

// RModScalar returns the remainder of s divided by each component of v.
func (v Vector4[T]) RModScalar(s T) Vector4[T] {
	return Vector4[T]{Rem(s, v[0]), Rem(s, v[1]), Rem(s, v[2]), Rem(s, v[3])}
}

// AddInPlace sets v to v.Add(u).
func (v *Vector4[T]) AddInPlace(u Vector4[T]) { *v = v.Add(u) }

// SubInPlace sets v to v.Sub(u).
func (v *Vector4[T]) SubInPlace(u Vector4[T]) { *v = v.Sub(u) }

// MulInPlace sets v to v.Mul(u).
func (v *Vector4[T]) MulInPlace(u Vector4[T]) { *v = v.Mul(u) }

// DivInPlace sets v to v.Div(u).
func (v *Vector4[T]) DivInPlace(u Vector4[T]) { *v = v.Div(u) }

// ModInPlace sets v to v.Mod(u).
func (v *Vector4[T]) ModInPlace(u Vector4[T]) { *v = v.Mod(u) }

// AddScalarInPlace sets v to v.AddScalar(s).
func (v *Vector4[T]) AddScalarInPlace(s T) { *v = v.AddScalar(s) }

// SubScalarInPlace sets v to v.SubScalar(s).
func (v *Vector4[T]) SubScalarInPlace(s T) { *v = v.SubScalar(s) }

// MulScalarInPlace sets v to v.MulScalar(s).
func (v *Vector4[T]) MulScalarInPlace(s T) { *v = v.MulScalar(s) }

// DivScalarInPlace sets v to v.DivScalar(s).
func (v *Vector4[T]) DivScalarInPlace(s T) { *v = v.DivScalar(s) }

// ModScalarInPlace sets v to v.ModScalar(s).
func (v *Vector4[T]) ModScalarInPlace(s T) { *v = v.ModScalar(s) }

// String formats v as Vector4(x, y, z, w).
func (v Vector4[T]) String() string {
	return fmt.Sprintf("Vector4(%v, %v, %v, %v)", v[0], v[1], v[2], v[3])
}
