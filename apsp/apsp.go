// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

package apsp

import (
	"fmt"
	"math"

	"github.com/densekern/go-densekern/mat"
)

// Sentinel policy, shared by the scalar and vectorized engines.
//
// Unreachable is the stored "no path" value. FiniteLimit halves the usable
// weight range: any distance at or above it is infinite as far as the relax
// arithmetic is concerned. Reserving the upper half guarantees that the sum
// of two finite distances cannot wrap past Unreachable and masquerade as a
// short path.
const (
	Unreachable int32 = math.MaxInt32
	FiniteLimit int32 = math.MaxInt32 / 2
)

// rowBatch is the dynamic chunk size for the per-k relax region. Small
// enough to balance cache-effect variance across workers, large enough to
// keep the atomic counter off the hot path.
const rowBatch = 16

// validate checks the shape and aliasing preconditions shared by all
// engines and returns the vertex count.
func validate(dst, src *mat.Matrix[int32]) (int, error) {
	if src.Rows() != src.Cols() {
		return 0, fmt.Errorf("apsp: input %dx%d: %w", src.Rows(), src.Cols(), mat.ErrNotSquare)
	}
	if !dst.SameShape(src) {
		return 0, fmt.Errorf("apsp: output %dx%d for input %dx%d: %w",
			dst.Rows(), dst.Cols(), src.Rows(), src.Cols(), mat.ErrDimensionMismatch)
	}
	if dst.Overlaps(src) {
		return 0, fmt.Errorf("apsp: %w", mat.ErrAliased)
	}
	return src.Rows(), nil
}

// validateVec additionally checks the vectorized path's alignment
// precondition before any lane operation runs.
func validateVec(dst, src *mat.Matrix[int32]) (int, error) {
	n, err := validate(dst, src)
	if err != nil {
		return 0, err
	}
	if !dst.Aligned() || !src.Aligned() {
		return 0, fmt.Errorf("apsp: %w", mat.ErrUnaligned)
	}
	return n, nil
}

// copyRows copies rows [start, end) of src into dst. The copy is the first
// parallel region of the algorithm: every row is independent.
func copyRows(dst, src *mat.Matrix[int32], start, end int) {
	for i := start; i < end; i++ {
		copy(dst.Row(i), src.Row(i))
	}
}

// relaxRows relaxes rows [start, end) of dst through pivot k. Row k is
// skipped: with non-negative weights its candidates via k never improve on
// the current values, and skipping keeps the pivot row strictly read-only
// while other workers relax against it.
func relaxRows(dst *mat.Matrix[int32], k, start, end int) {
	rowK := dst.Row(k)
	for i := start; i < end; i++ {
		if i == k {
			continue
		}
		rowI := dst.Row(i)
		x := rowI[k]
		if x >= FiniteLimit {
			continue // i cannot reach k, no candidate via k exists
		}
		for j, y := range rowK {
			if y >= FiniteLimit {
				continue
			}
			if z := x + y; z < rowI[j] {
				rowI[j] = z
			}
		}
	}
}
