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

// The functions in this file are written once against VectorType and work for
// Vector2, Vector3 and Vector4 alike. The type parameters are inferred from
// the arguments:
//
//	d := linalg.Dot(linalg.NewVector3(1.0, 2, 3), linalg.Splat3(2.0)) // 12
//
// Min, Max and Clamp use NaN-avoiding comparisons: when exactly one operand of
// a lane is NaN, the other operand is the result.

// Abs returns the absolute value of every component of x.
func Abs[V VectorType[V, T], T Float](x V) V {
	return x.Map(absScalar[T])
}

// Min returns the componentwise minimum of x and y.
func Min[V VectorType[V, T], T Arithmetic](x, y V) V {
	return x.Map2(y, minNum[T])
}

// MinScalar returns the minimum of every component of x and s.
func MinScalar[V VectorType[V, T], T Arithmetic](x V, s T) V {
	return x.Map(func(a T) T { return minNum(a, s) })
}

// Max returns the componentwise maximum of x and y.
func Max[V VectorType[V, T], T Arithmetic](x, y V) V {
	return x.Map2(y, maxNum[T])
}

// MaxScalar returns the maximum of every component of x and s.
func MaxScalar[V VectorType[V, T], T Arithmetic](x V, s T) V {
	return x.Map(func(a T) T { return maxNum(a, s) })
}

// FMin is Min restricted to floating-point vectors.
func FMin[V VectorType[V, T], T Float](x, y V) V { return Min(x, y) }

// FMax is Max restricted to floating-point vectors.
func FMax[V VectorType[V, T], T Float](x, y V) V { return Max(x, y) }

// Clamp limits every component of x to the range formed by the aligned
// components of lo and hi: min(max(x, lo), hi). A NaN lane of x yields the
// lo lane.
func Clamp[V VectorType[V, T], T Arithmetic](x, lo, hi V) V {
	return x.Map3(lo, hi, func(a, l, h T) T { return minNum(maxNum(a, l), h) })
}

// ClampScalar limits every component of x to [lo, hi]. A NaN lane of x yields
// lo.
func ClampScalar[V VectorType[V, T], T Arithmetic](x V, lo, hi T) V {
	return x.Map(func(a T) T { return minNum(maxNum(a, lo), hi) })
}

// Sign returns, per component, -1 if it is negative, +1 if it is positive and
// 0 otherwise. The sign of NaN is 0.
func Sign[V VectorType[V, T], T Float](x V) V {
	return x.Map(func(a T) T {
		switch {
		case a < 0:
			return -1
		case a > 0:
			return 1
		default:
			return 0
		}
	})
}

// Mix interpolates linearly between x (at t = 0) and y (at t = 1), per
// component: x*(1-t) + y*t. t is not clamped, so it extrapolates outside
// [0, 1].
func Mix[V VectorType[V, T], T Float](x, y, t V) V {
	return x.Map3(y, t, func(a, b, s T) T { return a*(1-s) + b*s })
}

// MixScalar is Mix with the same t for every component.
func MixScalar[V VectorType[V, T], T Float](x, y V, t T) V {
	inv := 1 - t
	return x.Map2(y, func(a, b T) T { return a*inv + b*t })
}

// Recip returns 1/x per component.
func Recip[V VectorType[V, T], T Float](x V) V {
	return x.Map(func(a T) T { return 1 / a })
}

// Rsqrt returns 1/sqrt(x) per component.
func Rsqrt[V VectorType[V, T], T Float](x V) V {
	return x.Map(func(a T) T { return 1 / sqrtScalar(a) })
}

// Floor rounds every component toward negative infinity.
func Floor[V VectorType[V, T], T Float](x V) V {
	return x.Map(func(a T) T { return T(math.Floor(float64(a))) })
}

// Ceil rounds every component toward positive infinity.
func Ceil[V VectorType[V, T], T Float](x V) V {
	return x.Map(func(a T) T { return T(math.Ceil(float64(a))) })
}

// Trunc rounds every component toward zero.
func Trunc[V VectorType[V, T], T Float](x V) V {
	return x.Map(func(a T) T { return T(math.Trunc(float64(a))) })
}

// Fract returns x - floor(x) per component, capped at the largest value below
// 1, so the result lies in [0, 1) even for tiny negative inputs such as
// -1e-10. NaN stays NaN.
func Fract[V VectorType[V, T], T Float](x V) V {
	limit := oneMinusULP[T]()
	return x.Map(func(a T) T {
		f := a - T(math.Floor(float64(a)))
		if limit < f {
			return limit
		}
		return f
	})
}

// Step returns, per component, 0 if x < edge and 1 otherwise.
func Step[V VectorType[V, T], T Float](x, edge V) V {
	return x.Map2(edge, func(a, e T) T {
		if a < e {
			return 0
		}
		return 1
	})
}

// Smoothstep returns, per component, 0 if x <= edge0, 1 if x >= edge1 and a
// cubic Hermite interpolation t*t*(3-2t) in between, where t is the position
// of x in [edge0, edge1].
func Smoothstep[V VectorType[V, T], T Float](x, edge0, edge1 V) V {
	return x.Map3(edge0, edge1, func(a, e0, e1 T) T {
		t := minNum(maxNum((a-e0)/(e1-e0), 0), 1)
		return t * t * (3 - 2*t)
	})
}

// Dot returns the sum of the componentwise products of x and y, accumulated
// in index order.
func Dot[V VectorType[V, T], T Arithmetic](x, y V) T {
	return x.Map2(y, func(a, b T) T { return T(a * b) }).Reduce(0, func(acc, a T) T { return acc + a })
}

// DotEach sets dst[i] = Dot(x[i], y[i]) for every pair. It panics if x and y
// differ in length or dst is shorter than x.
func DotEach[V VectorType[V, T], T Arithmetic](dst []T, x, y []V) {
	if len(x) != len(y) {
		panic("DotEach: x and y differ in length")
	}
	if len(dst) < len(x) {
		panic("DotEach: dst shorter than x")
	}
	if len(x) == 0 {
		return
	}
	var dim int
	switch any(x[0]).(type) {
	case Vector2[T]:
		dim = 2
	case Vector3[T]:
		dim = 3
	case Vector4[T]:
		dim = 4
	}
	if dim > 0 && fastDots[T](unsafe.Pointer(&dst[0]), unsafe.Pointer(&x[0]), unsafe.Pointer(&y[0]), len(x), dim) {
		return
	}
	for i := range x {
		dst[i] = Dot(x[i], y[i])
	}
}

// Project returns the projection of x onto y: dot(x, y)/dot(y, y) * y.
func Project[V VectorType[V, T], T Float](x, y V) V {
	s := Dot(x, y) / Dot(y, y)
	return y.Map(func(b T) T { return s * b })
}

// LengthSquared returns dot(x, x).
func LengthSquared[V VectorType[V, T], T Arithmetic](x V) T {
	return Dot(x, x)
}

// Length returns the Euclidean norm of x.
func Length[V VectorType[V, T], T Float](x V) T {
	return sqrtScalar(LengthSquared(x))
}

// NormOne returns the sum of the absolute values of the components of x.
func NormOne[V VectorType[V, T], T Arithmetic](x V) T {
	return x.Reduce(0, func(acc, a T) T { return acc + absNum(a) })
}

// NormInf returns the largest absolute value among the components of x. A NaN
// component makes the result NaN.
func NormInf[V VectorType[V, T], T Arithmetic](x V) T {
	return x.Reduce(0, func(acc, a T) T {
		a = absNum(a)
		if a > acc || a != a {
			return a
		}
		return acc
	})
}

// DistanceSquared returns the squared Euclidean distance between x and y.
func DistanceSquared[V VectorType[V, T], T Arithmetic](x, y V) T {
	return LengthSquared(x.Map2(y, func(a, b T) T { return a - b }))
}

// Distance returns the Euclidean distance between x and y.
func Distance[V VectorType[V, T], T Float](x, y V) T {
	return Length(x.Map2(y, func(a, b T) T { return a - b }))
}

// Normalize returns the unit vector pointing in the direction of x. The zero
// vector normalizes to NaNs.
func Normalize[V VectorType[V, T], T Float](x V) V {
	l := Length(x)
	return x.Map(func(a T) T { return a / l })
}

// Reflect returns x reflected through the hyperplane through the origin with
// unit normal n: x - 2*dot(n, x)*n. Reflecting (1, 2, 3) in (0, 0, 1) gives
// (1, 2, -3).
func Reflect[V VectorType[V, T], T Float](x, n V) V {
	d := 2 * Dot(n, x)
	return x.Map2(n, func(a, b T) T { return a - d*b })
}

// Refract returns the refraction direction for the unit incident vector i,
// the unit surface normal n and the ratio of indices of refraction eta. On
// total internal reflection it returns the zero vector.
func Refract[V VectorType[V, T], T Float](i, n V, eta T) V {
	dotni := Dot(n, i)
	k := 1 - eta*eta*(1-dotni*dotni)
	if k < 0 {
		var zero V
		return zero
	}
	s := eta*dotni + sqrtScalar(k)
	return i.Map2(n, func(a, b T) T { return eta*a - s*b })
}

// Cross returns the cross product of x and y, which is perpendicular to both
// and whose length is the area of the parallelogram they span.
func Cross[T Arithmetic](x, y Vector3[T]) Vector3[T] {
	return Vector3[T]{
		x[1]*y[2] - y[1]*x[2],
		x[2]*y[0] - y[2]*x[0],
		x[0]*y[1] - y[0]*x[1],
	}
}

// Cross2 treats x and y as vectors in the xy-plane and returns their cross
// product, which lies along the z axis.
func Cross2[T Arithmetic](x, y Vector2[T]) Vector3[T] {
	return Vector3[T]{0, 0, x[0]*y[1] - y[0]*x[1]}
}

func absNum[T Arithmetic](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
