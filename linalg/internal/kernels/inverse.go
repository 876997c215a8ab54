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

package kernels

// Inverse2 writes the inverse of the 2x2 column-major matrix m into dst as
// adjugate * (1/det). A singular m yields infinities and NaNs.
func Inverse2[T Floats](dst, m []T) {
	m = m[:4]
	dst = dst[:4]
	invdet := 1 / (T(m[0]*m[3]) - T(m[2]*m[1]))
	dst[0] = m[3] * invdet
	dst[1] = (0 - m[1]) * invdet
	dst[2] = (0 - m[2]) * invdet
	dst[3] = m[0] * invdet
}

// Determinant3 returns the determinant of the 3x3 column-major matrix m,
// expanded along the first row.
func Determinant3[T Floats](m []T) T {
	m = m[:9]
	return T(m[0]*(T(m[4]*m[8])-T(m[7]*m[5]))) -
		T(m[3]*(T(m[1]*m[8])-T(m[7]*m[2]))) +
		T(m[6]*(T(m[1]*m[5])-T(m[4]*m[2])))
}

// Inverse3 writes the inverse of the 3x3 column-major matrix m into dst.
func Inverse3[T Floats](dst, m []T) {
	m = m[:9]
	dst = dst[:9]
	invdet := 1 / Determinant3(m)
	dst[0] = (T(m[4]*m[8]) - T(m[7]*m[5])) * invdet
	dst[1] = (T(m[7]*m[2]) - T(m[1]*m[8])) * invdet
	dst[2] = (T(m[1]*m[5]) - T(m[4]*m[2])) * invdet
	dst[3] = (T(m[6]*m[5]) - T(m[3]*m[8])) * invdet
	dst[4] = (T(m[0]*m[8]) - T(m[6]*m[2])) * invdet
	dst[5] = (T(m[3]*m[2]) - T(m[0]*m[5])) * invdet
	dst[6] = (T(m[3]*m[7]) - T(m[6]*m[4])) * invdet
	dst[7] = (T(m[6]*m[1]) - T(m[0]*m[7])) * invdet
	dst[8] = (T(m[0]*m[4]) - T(m[3]*m[1])) * invdet
}

// Inverse4 writes the inverse of the 4x4 column-major matrix m into dst using
// cofactors built from 2x2 sub-determinants of the last two columns' rows.
// The determinant is recovered as the dot product of the first column of m
// with the first row of the adjugate.
func Inverse4[T Floats](dst, m []T) {
	m = m[:16]
	dst = dst[:16]

	// m(c, r) = m[c*4+r]
	c00 := T(m[10]*m[15]) - T(m[14]*m[11])
	c02 := T(m[6]*m[15]) - T(m[14]*m[7])
	c03 := T(m[6]*m[11]) - T(m[10]*m[7])
	c04 := T(m[9]*m[15]) - T(m[13]*m[11])
	c06 := T(m[5]*m[15]) - T(m[13]*m[7])
	c07 := T(m[5]*m[11]) - T(m[9]*m[7])
	c08 := T(m[9]*m[14]) - T(m[13]*m[10])
	c10 := T(m[5]*m[14]) - T(m[13]*m[6])
	c11 := T(m[5]*m[10]) - T(m[9]*m[6])
	c12 := T(m[8]*m[15]) - T(m[12]*m[11])
	c14 := T(m[4]*m[15]) - T(m[12]*m[7])
	c15 := T(m[4]*m[11]) - T(m[8]*m[7])
	c16 := T(m[8]*m[14]) - T(m[12]*m[10])
	c18 := T(m[4]*m[14]) - T(m[12]*m[6])
	c19 := T(m[4]*m[10]) - T(m[8]*m[6])
	c20 := T(m[8]*m[13]) - T(m[12]*m[9])
	c22 := T(m[4]*m[13]) - T(m[12]*m[5])
	c23 := T(m[4]*m[9]) - T(m[8]*m[5])

	fac0 := [4]T{c00, c00, c02, c03}
	fac1 := [4]T{c04, c04, c06, c07}
	fac2 := [4]T{c08, c08, c10, c11}
	fac3 := [4]T{c12, c12, c14, c15}
	fac4 := [4]T{c16, c16, c18, c19}
	fac5 := [4]T{c20, c20, c22, c23}

	vec0 := [4]T{m[4], m[0], m[0], m[0]}
	vec1 := [4]T{m[5], m[1], m[1], m[1]}
	vec2 := [4]T{m[6], m[2], m[2], m[2]}
	vec3 := [4]T{m[7], m[3], m[3], m[3]}

	var adj [16]T
	for i := range 4 {
		inv0 := T(vec1[i]*fac0[i]) - T(vec2[i]*fac1[i]) + T(vec3[i]*fac2[i])
		inv1 := T(vec0[i]*fac0[i]) - T(vec2[i]*fac3[i]) + T(vec3[i]*fac4[i])
		inv2 := T(vec0[i]*fac1[i]) - T(vec1[i]*fac3[i]) + T(vec3[i]*fac5[i])
		inv3 := T(vec0[i]*fac2[i]) - T(vec1[i]*fac4[i]) + T(vec2[i]*fac5[i])
		if i%2 == 0 {
			adj[i], adj[4+i], adj[8+i], adj[12+i] = inv0, -inv1, inv2, -inv3
		} else {
			adj[i], adj[4+i], adj[8+i], adj[12+i] = -inv0, inv1, -inv2, inv3
		}
	}

	det := (T(m[0]*adj[0]) + T(m[1]*adj[4])) + (T(m[2]*adj[8]) + T(m[3]*adj[12]))
	invdet := 1 / det
	for i := range adj {
		dst[i] = adj[i] * invdet
	}
}
