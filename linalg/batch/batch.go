// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package batch applies linalg operations to slices of vectors, spreading the
// work over a persistent worker pool.
//
//	pool := batch.New(0)
//	defer pool.Close()
//
//	batch.Transform(pool, model, world, local) // world[i] = model * local[i]
//	batch.Normalize(pool, normals, normals)
//
// Every function accepts a nil pool and then runs sequentially. Results do not
// depend on the pool. Each chunk goes through linalg's slice operations
// (Matrix.MulVectors, DotEach), which run float32 and float64 data through
// SIMD lanes and agree bit for bit with the per-element calls.
package batch

import "github.com/ajroetker/go-linalg/linalg"

// Grain is the number of elements a worker processes per grab, and the slice
// length up to which operations stay on the calling goroutine.
const Grain = 1024

// VectorTransform is implemented by every linalg matrix: MatrixCxR maps a
// VectorC to a VectorR. MulVectors must give the same result as calling
// MulVector on each element.
type VectorTransform[In, Out any] interface {
	MulVector(v In) Out
	MulVectors(dst []Out, src []In)
}

var (
	_ VectorTransform[linalg.Vector4[float32], linalg.Vector4[float32]] = linalg.Matrix4x4[float32]{}
	_ VectorTransform[linalg.Vector3[float64], linalg.Vector2[float64]] = linalg.Matrix3x2[float64]{}
)

// Transform sets dst[i] = m * src[i] for every element of src. dst and src
// may be the same slice when In and Out are the same type. It panics if dst
// is shorter than src.
func Transform[M VectorTransform[In, Out], In, Out any](p *Pool, m M, dst []Out, src []In) {
	if len(dst) < len(src) {
		panic("Transform: dst shorter than src")
	}
	p.ParallelFor(len(src), Grain, func(start, end int) {
		m.MulVectors(dst[start:end], src[start:end])
	})
}

// Apply sets dst[i] = fn(src[i]) for every element of src. fn must be safe to
// call concurrently. It panics if dst is shorter than src.
func Apply[V any](p *Pool, dst, src []V, fn func(V) V) {
	if len(dst) < len(src) {
		panic("Apply: dst shorter than src")
	}
	p.ParallelFor(len(src), Grain, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = fn(src[i])
		}
	})
}

// Normalize sets dst[i] = linalg.Normalize(src[i]).
func Normalize[V linalg.VectorType[V, T], T linalg.Float](p *Pool, dst, src []V) {
	Apply(p, dst, src, linalg.Normalize[V, T])
}

// Dots sets dst[i] = linalg.Dot(x[i], y[i]). It panics unless x and y have
// the same length and dst is at least as long.
func Dots[V linalg.VectorType[V, T], T linalg.Arithmetic](p *Pool, dst []T, x, y []V) {
	if len(x) != len(y) {
		panic("Dots: x and y differ in length")
	}
	if len(dst) < len(x) {
		panic("Dots: dst shorter than x")
	}
	p.ParallelFor(len(x), Grain, func(start, end int) {
		linalg.DotEach(dst[start:end], x[start:end], y[start:end])
	})
}
