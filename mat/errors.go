// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

package mat

import "errors"

var (
	// ErrBadSize reports a negative or overflowing element count.
	ErrBadSize = errors.New("mat: invalid buffer size")

	// ErrBadAlignment reports an alignment that is not a power of two or
	// is smaller than the element size.
	ErrBadAlignment = errors.New("mat: invalid alignment")

	// ErrDimensionMismatch reports operand shapes that are incompatible
	// with the requested operation.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNotSquare reports a non-square matrix where a square one is
	// required.
	ErrNotSquare = errors.New("mat: matrix is not square")

	// ErrUnaligned reports a buffer that does not meet the alignment
	// precondition of a vectorized kernel.
	ErrUnaligned = errors.New("mat: buffer does not meet alignment requirement")

	// ErrAliased reports distinct operands sharing backing storage.
	ErrAliased = errors.New("mat: operands share backing storage")
)
