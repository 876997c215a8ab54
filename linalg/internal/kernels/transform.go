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

import "github.com/ajroetker/go-highway/hwy"

// blockSize is how many vectors are gathered into lane-major scratch at once.
const blockSize = 256

// Transform sets dst[i] = m * src[i] for n vectors stored back to back: src
// holds n vectors of cols components, dst holds n vectors of rows components
// and m is a rows x cols column-major matrix. dst may be src when rows ==
// cols.
//
// Vectors are transposed into lanes a block at a time, so each hwy lane
// carries one vector:
//
//	out(r) = T(m(0, r)*in(0)) + T(m(1, r)*in(1)) + ...
//
// Products and sums are separate hwy.Mul and hwy.Add steps, which keeps every
// lane equal to MatMul on the same vector.
func Transform[T Floats](dst, m, src []T, n, rows, cols int) {
	if len(m) < rows*cols {
		panic("Transform: matrix slice too short")
	}
	if len(src) < n*cols {
		panic("Transform: src slice too short")
	}
	if len(dst) < n*rows {
		panic("Transform: dst slice too short")
	}
	if n == 0 {
		return
	}

	coef := make([]hwy.Vec[T], rows*cols)
	for i := range coef {
		coef[i] = hwy.Set(m[i])
	}

	block := min(n, blockSize)
	in := make([]T, cols*block)
	out := make([]T, rows*block)
	for base := 0; base < n; base += block {
		count := min(block, n-base)
		for i := range count {
			for c, x := range src[(base+i)*cols : (base+i+1)*cols] {
				in[c*block+i] = x
			}
		}

		for r := range rows {
			row := out[r*block : r*block+count]
			sum := func(off int, load func([]T) hwy.Vec[T]) hwy.Vec[T] {
				acc := hwy.Mul(coef[r], load(in[off:]))
				for c := 1; c < cols; c++ {
					acc = hwy.Add(acc, hwy.Mul(coef[c*rows+r], load(in[c*block+off:])))
				}
				return acc
			}
			hwy.ProcessWithTail[T](count,
				func(off int) {
					hwy.Store(sum(off, hwy.Load[T]), row[off:])
				},
				func(off, k int) {
					mask := hwy.TailMask[T](k)
					acc := sum(off, func(s []T) hwy.Vec[T] { return hwy.MaskLoad(mask, s) })
					hwy.MaskStore(mask, acc, row[off:])
				},
			)
		}

		for i := range count {
			d := dst[(base+i)*rows : (base+i+1)*rows]
			for r := range d {
				d[r] = out[r*block+i]
			}
		}
	}
}

// Dots sets dst[i] to the dot product of the i-th dim-component vectors of x
// and y, both stored back to back:
//
//	dst(i) = 0 + T(x(i, 0)*y(i, 0)) + T(x(i, 1)*y(i, 1)) + ...
func Dots[T Floats](dst, x, y []T, n, dim int) {
	if len(x) < n*dim || len(y) < n*dim {
		panic("Dots: vector slice too short")
	}
	if len(dst) < n {
		panic("Dots: dst slice too short")
	}
	if n == 0 {
		return
	}

	block := min(n, blockSize)
	xs := make([]T, dim*block)
	ys := make([]T, dim*block)
	for base := 0; base < n; base += block {
		count := min(block, n-base)
		for i := range count {
			for c := range dim {
				xs[c*block+i] = x[(base+i)*dim+c]
				ys[c*block+i] = y[(base+i)*dim+c]
			}
		}

		res := dst[base : base+count]
		sum := func(off int, load func([]T) hwy.Vec[T]) hwy.Vec[T] {
			acc := hwy.Zero[T]()
			for c := range dim {
				acc = hwy.Add(acc, hwy.Mul(load(xs[c*block+off:]), load(ys[c*block+off:])))
			}
			return acc
		}
		hwy.ProcessWithTail[T](count,
			func(off int) {
				hwy.Store(sum(off, hwy.Load[T]), res[off:])
			},
			func(off, k int) {
				mask := hwy.TailMask[T](k)
				acc := sum(off, func(s []T) hwy.Vec[T] { return hwy.MaskLoad(mask, s) })
				hwy.MaskStore(mask, acc, res[off:])
			},
		)
	}
}
