// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"fmt"

	"github.com/densekern/go-densekern/lane"
	"github.com/densekern/go-densekern/mat"
	"github.com/densekern/go-densekern/workerpool"
)

// rowStrip is the dynamic chunk size for the parallel row loop. Output
// rows are independent reductions, so strips only trade scheduling
// overhead against load balance.
const rowStrip = 8

// validate checks operand shapes and aliasing. No partial work happens on
// failure.
func validate[T lane.Integer](a, b, res *mat.Matrix[T]) error {
	if a.Cols() != b.Rows() {
		return fmt.Errorf("matmul: a is %dx%d, b is %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), mat.ErrDimensionMismatch)
	}
	if res.Rows() != a.Rows() || res.Cols() != b.Cols() {
		return fmt.Errorf("matmul: output %dx%d for %dx%d product: %w",
			res.Rows(), res.Cols(), a.Rows(), b.Cols(), mat.ErrDimensionMismatch)
	}
	if res.Overlaps(a) || res.Overlaps(b) {
		return fmt.Errorf("matmul: %w", mat.ErrAliased)
	}
	return nil
}

func validateVec[T lane.Integer](a, b, res *mat.Matrix[T]) error {
	if err := validate(a, b, res); err != nil {
		return err
	}
	if !a.Aligned() || !b.Aligned() || !res.Aligned() {
		return fmt.Errorf("matmul: %w", mat.ErrUnaligned)
	}
	return nil
}

// MatMul computes res = a * b with the scalar engine.
func MatMul[T lane.Integer](a, b, res *mat.Matrix[T]) error {
	if err := validate(a, b, res); err != nil {
		return err
	}
	mulRows(a, b, res, 0, res.Rows())
	return nil
}

// MatMulVec computes res = a * b with the vectorized engine. All three
// matrices must satisfy mat.Aligned. Results are identical to MatMul.
func MatMulVec[T lane.Integer](a, b, res *mat.Matrix[T]) error {
	if err := validateVec(a, b, res); err != nil {
		return err
	}
	mulRowsVec(a, b, res, 0, res.Rows())
	return nil
}

// ParallelMatMul computes res = a * b, spreading output rows over the pool
// in dynamic strips. Each worker owns the rows it writes; operands are
// read-shared.
func ParallelMatMul[T lane.Integer](pool *workerpool.Pool, a, b, res *mat.Matrix[T]) error {
	if err := validate(a, b, res); err != nil {
		return err
	}
	pool.ParallelForDynamic(res.Rows(), rowStrip, func(start, end int) {
		mulRows(a, b, res, start, end)
	})
	return nil
}

// ParallelMatMulVec is ParallelMatMul with the vectorized row kernel.
func ParallelMatMulVec[T lane.Integer](pool *workerpool.Pool, a, b, res *mat.Matrix[T]) error {
	if err := validateVec(a, b, res); err != nil {
		return err
	}
	pool.ParallelForDynamic(res.Rows(), rowStrip, func(start, end int) {
		mulRowsVec(a, b, res, start, end)
	})
	return nil
}

// mulRows computes output rows [start, end) with scalar arithmetic. Each
// cell is an independent reduction over the inner dimension, accumulated
// in a register and assigned once.
func mulRows[T lane.Integer](a, b, res *mat.Matrix[T], start, end int) {
	n := a.Cols()
	for i := start; i < end; i++ {
		aRow := a.Row(i)
		resRow := res.Row(i)
		for j := range resRow {
			var acc T
			for d := range n {
				acc += aRow[d] * b.At(d, j)
			}
			resRow[j] = acc
		}
	}
}

// mulRowsVec computes output rows [start, end) a lane-block of columns at
// a time: for a fixed (i, j-block), A[i,d] is broadcast and multiplied
// with lanes of row d of b, accumulating across the whole d loop in a
// lane-wide register before the single store. Trailing columns that do not
// fill a lane take the scalar reduction.
func mulRowsVec[T lane.Integer](a, b, res *mat.Matrix[T], start, end int) {
	n := a.Cols()
	k := res.Cols()
	lanes := lane.MaxLanes[T]()

	for i := start; i < end; i++ {
		aRow := a.Row(i)
		resRow := res.Row(i)

		var j int
		for ; j+lanes <= k; j += lanes {
			acc := lane.Zero[T]()
			for d := range n {
				vA := lane.Set(aRow[d])
				vB := lane.Load(b.Row(d)[j:])
				acc = lane.MulAdd(vA, vB, acc)
			}
			lane.Store(acc, resRow[j:])
		}
		for ; j < k; j++ {
			var acc T
			for d := range n {
				acc += aRow[d] * b.At(d, j)
			}
			resRow[j] = acc
		}
	}
}
