// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

package mat

import (
	"fmt"

	"github.com/densekern/go-densekern/lane"
)

// Matrix is a dense row-major matrix of integer elements. Element (i, j)
// lives at offset i*stride+j in the flat backing slice. Matrices from
// NewMatrix carry an aligned base address and a stride padded to a lane
// multiple, so every row starts on a lane boundary.
type Matrix[T lane.Integer] struct {
	data   []T
	rows   int
	cols   int
	stride int
}

// NewMatrix allocates a zeroed rows x cols matrix with aligned backing
// storage and a lane-padded row stride.
func NewMatrix[T lane.Integer](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("new matrix %dx%d: %w", rows, cols, ErrBadSize)
	}
	stride := lane.AlignedSize[T](cols)
	data, err := AlignedSlice[T](rows*stride, Alignment)
	if err != nil {
		return nil, fmt.Errorf("new matrix %dx%d: %w", rows, cols, err)
	}
	return &Matrix[T]{data: data, rows: rows, cols: cols, stride: stride}, nil
}

// FromSlice wraps caller-owned storage as a rows x cols matrix with stride
// equal to cols. The storage keeps whatever alignment it has; vectorized
// kernels reject matrices that fail Aligned.
func FromSlice[T lane.Integer](data []T, rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("from slice %dx%d: %w", rows, cols, ErrBadSize)
	}
	if len(data) < rows*cols {
		return nil, fmt.Errorf("from slice %dx%d: have %d elements, need %d: %w",
			rows, cols, len(data), rows*cols, ErrDimensionMismatch)
	}
	return &Matrix[T]{data: data[:rows*cols], rows: rows, cols: cols, stride: cols}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Stride returns the row stride in elements.
func (m *Matrix[T]) Stride() int { return m.stride }

// Data returns the flat backing slice, including any row padding.
func (m *Matrix[T]) Data() []T { return m.data }

// At returns element (i, j).
func (m *Matrix[T]) At(i, j int) T {
	return m.data[i*m.stride+j]
}

// Set assigns element (i, j).
func (m *Matrix[T]) Set(i, j int, v T) {
	m.data[i*m.stride+j] = v
}

// Row returns row i as a slice of cols elements, excluding padding.
func (m *Matrix[T]) Row(i int) []T {
	off := i * m.stride
	return m.data[off : off+m.cols]
}

// Fill sets every element (padding excluded) to v.
func (m *Matrix[T]) Fill(v T) {
	for i := range m.rows {
		row := m.Row(i)
		for j := range row {
			row[j] = v
		}
	}
}

// Clone returns a deep copy with freshly allocated aligned storage.
func (m *Matrix[T]) Clone() (*Matrix[T], error) {
	c, err := NewMatrix[T](m.rows, m.cols)
	if err != nil {
		return nil, err
	}
	for i := range m.rows {
		copy(c.Row(i), m.Row(i))
	}
	return c, nil
}

// Aligned reports whether the matrix satisfies the vectorized kernels'
// precondition: aligned base address and a stride that keeps every row on
// a lane boundary.
func (m *Matrix[T]) Aligned() bool {
	return SliceAligned(m.data, lane.Width()) && lane.IsAligned[T](m.stride)
}

// SameShape reports whether m and o have identical dimensions.
func (m *Matrix[T]) SameShape(o *Matrix[T]) bool {
	return m.rows == o.rows && m.cols == o.cols
}

// Overlaps reports whether m and o share backing storage.
func (m *Matrix[T]) Overlaps(o *Matrix[T]) bool {
	return overlaps(m.data, o.data)
}
