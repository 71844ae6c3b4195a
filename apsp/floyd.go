// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

package apsp

import (
	"github.com/densekern/go-densekern/lane"
	"github.com/densekern/go-densekern/mat"
	"github.com/densekern/go-densekern/workerpool"
)

// FloydWarshall computes shortest paths between every vertex pair of the
// n x n distance matrix src into dst using the scalar engine. dst is
// overwritten; src is read-only. dst and src must be distinct n x n
// matrices.
//
// The intermediate-vertex loop k runs in strict order: iteration k reads
// distances already relaxed through vertices 0..k-1.
func FloydWarshall(dst, src *mat.Matrix[int32]) error {
	n, err := validate(dst, src)
	if err != nil {
		return err
	}
	copyRows(dst, src, 0, n)
	for k := range n {
		relaxRows(dst, k, 0, n)
	}
	return nil
}

// FloydWarshallVec is FloydWarshall with the innermost j loop processed a
// lane at a time. Both matrices must satisfy mat.Aligned; results are
// identical to the scalar engine, including sentinel placement.
func FloydWarshallVec(dst, src *mat.Matrix[int32]) error {
	n, err := validateVec(dst, src)
	if err != nil {
		return err
	}
	copyRows(dst, src, 0, n)
	for k := range n {
		relaxRowsVec(dst, k, 0, n)
	}
	return nil
}

// ParallelFloydWarshall runs the scalar engine with both data-parallel
// regions spread over the pool: the copy with a static row partition, each
// per-k relax region with dynamic row batches. The k loop itself stays
// sequential; each ParallelForDynamic call is the hard barrier between
// iterations.
func ParallelFloydWarshall(pool *workerpool.Pool, dst, src *mat.Matrix[int32]) error {
	n, err := validate(dst, src)
	if err != nil {
		return err
	}
	pool.ParallelFor(n, func(start, end int) {
		copyRows(dst, src, start, end)
	})
	for k := range n {
		pool.ParallelForDynamic(n, rowBatch, func(start, end int) {
			relaxRows(dst, k, start, end)
		})
	}
	return nil
}

// ParallelFloydWarshallVec is ParallelFloydWarshall with the vectorized
// relax loop.
func ParallelFloydWarshallVec(pool *workerpool.Pool, dst, src *mat.Matrix[int32]) error {
	n, err := validateVec(dst, src)
	if err != nil {
		return err
	}
	pool.ParallelFor(n, func(start, end int) {
		copyRows(dst, src, start, end)
	})
	for k := range n {
		pool.ParallelForDynamic(n, rowBatch, func(start, end int) {
			relaxRowsVec(dst, k, start, end)
		})
	}
	return nil
}

// relaxRowsVec is the vectorized counterpart of relaxRows: the pivot
// distance is broadcast across a register, row k and row i are loaded a
// lane at a time, and candidate sums with an infinite operand are forced
// to Unreachable before the min. Columns past the last full lane take the
// scalar path.
func relaxRowsVec(dst *mat.Matrix[int32], k, start, end int) {
	n := dst.Cols()
	lanes := lane.MaxLanes[int32]()
	rowK := dst.Row(k)

	vLimit := lane.Set(FiniteLimit)
	vInf := lane.Set(Unreachable)

	for i := start; i < end; i++ {
		if i == k {
			continue // pivot row stays read-only for the region
		}
		rowI := dst.Row(i)
		x := rowI[k]
		if x >= FiniteLimit {
			continue // every candidate via k is infinite
		}
		vX := lane.Set(x)

		var j int
		for ; j+lanes <= n; j += lanes {
			vY := lane.Load(rowK[j:])
			vCur := lane.Load(rowI[j:])

			// x is known finite here, so only the row-k operand can
			// poison the sum.
			vZ := lane.Add(vX, vY)
			vZ = lane.IfThenElse(lane.GreaterEqual(vY, vLimit), vInf, vZ)

			lane.Store(lane.Min(vCur, vZ), rowI[j:])
		}
		for ; j < n; j++ {
			y := rowK[j]
			if y >= FiniteLimit {
				continue
			}
			if z := x + y; z < rowI[j] {
				rowI[j] = z
			}
		}
	}
}
