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

// Bitwise and wrapping operations for integer vectors. Go integer arithmetic
// already wraps on overflow, so the Wrapping functions are the plain
// operators spelled out for code that wants to make the intent explicit.

// And returns x & y per component.
func And[V VectorType[V, T], T Integer](x, y V) V {
	return x.Map2(y, func(a, b T) T { return a & b })
}

// Or returns x | y per component.
func Or[V VectorType[V, T], T Integer](x, y V) V {
	return x.Map2(y, func(a, b T) T { return a | b })
}

// Xor returns x ^ y per component.
func Xor[V VectorType[V, T], T Integer](x, y V) V {
	return x.Map2(y, func(a, b T) T { return a ^ b })
}

// AndNot returns x &^ y per component.
func AndNot[V VectorType[V, T], T Integer](x, y V) V {
	return x.Map2(y, func(a, b T) T { return a &^ b })
}

// Not returns the bitwise complement of every component.
func Not[V VectorType[V, T], T Integer](x V) V {
	return x.Map(func(a T) T { return ^a })
}

// ShiftLeft shifts every component left by n bits.
func ShiftLeft[V VectorType[V, T], T Integer](x V, n uint) V {
	return x.Map(func(a T) T { return a << n })
}

// ShiftRight shifts every component right by n bits. Signed components shift
// arithmetically, unsigned ones logically.
func ShiftRight[V VectorType[V, T], T Integer](x V, n uint) V {
	return x.Map(func(a T) T { return a >> n })
}

// WrappingAdd returns x + y per component, wrapping on overflow.
func WrappingAdd[V VectorType[V, T], T Integer](x, y V) V {
	return x.Map2(y, func(a, b T) T { return a + b })
}

// WrappingSub returns x - y per component, wrapping on overflow.
func WrappingSub[V VectorType[V, T], T Integer](x, y V) V {
	return x.Map2(y, func(a, b T) T { return a - b })
}

// WrappingMul returns x * y per component, keeping the low bits of each product.
func WrappingMul[V VectorType[V, T], T Integer](x, y V) V {
	return x.Map2(y, func(a, b T) T { return a * b })
}
