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
	"math"
	"unsafe"
)

// Float is a constraint for floating-point scalar types.
type Float interface {
	~float32 | ~float64
}

// Signed is a constraint for signed integer scalar types, including the
// platform int.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint for unsigned integer scalar types, including the
// platform uint.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the integer-arithmetic scalar contract. Besides the arithmetic
// operators, its types support wrap-around + - *, shifts and the bitwise
// operators & | ^ &^.
type Integer interface {
	Signed | Unsigned
}

// Arithmetic is the scalar contract every vector and matrix element satisfies:
// + - * /, remainder (see Rem), equality, ordering, and conversion from every
// other Arithmetic type via T(x).
type Arithmetic interface {
	Integer | Float
}

// isFloat reports whether T is a floating-point type.
func isFloat[T Arithmetic]() bool {
	return T(1)/T(2) != 0
}

// isSigned reports whether T can hold negative values.
func isSigned[T Arithmetic]() bool {
	zero := T(0)
	return zero-1 < zero
}

// Rem returns the truncated remainder x - y*trunc(x/y), which carries the sign
// of x. Integer types use the % operator and panic when y is zero; float types
// use math.Mod and return NaN when y is zero.
func Rem[T Arithmetic](x, y T) T {
	switch {
	case isFloat[T]():
		return T(math.Mod(float64(x), float64(y)))
	case isSigned[T]():
		return T(int64(x) % int64(y))
	default:
		return T(uint64(x) % uint64(y))
	}
}

// maxNum returns the larger of x and y. If exactly one operand is NaN the
// other one is returned, so a NaN never wins over a number.
func maxNum[T Arithmetic](x, y T) T {
	if x != x {
		return y
	}
	if y != y {
		return x
	}
	if y >= x {
		return y
	}
	return x
}

// minNum returns the smaller of x and y with the same NaN rule as maxNum.
func minNum[T Arithmetic](x, y T) T {
	if x != x {
		return y
	}
	if y != y {
		return x
	}
	if y < x {
		return y
	}
	return x
}

func absScalar[T Float](x T) T {
	return T(math.Abs(float64(x)))
}

func sqrtScalar[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// oneMinusULP is the largest value of T below 1.0.
func oneMinusULP[T Float]() T {
	if unsafe.Sizeof(T(0)) == 4 {
		return T(0x1.fffffep-1)
	}
	return T(0x1.fffffffffffffp-1)
}
