// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

package lane

// This file provides the lane-wise operations the dense kernels are written
// against. The set is deliberately small: broadcast, load, store, add,
// multiply, min, compare, select. All operations are pure and allocate the
// result vector; the compiler vectorizes the fixed-trip-count loops.

// Load creates a vector by loading up to MaxLanes contiguous elements
// from src.
func Load[T Integer](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes the vector's lanes to dst.
func Store[T Integer](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with every lane set to value (broadcast).
func Set[T Integer](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with every lane set to zero.
func Zero[T Integer]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Add performs lane-wise addition.
func Add[T Integer](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs lane-wise multiplication.
func Mul[T Integer](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// MulAdd computes a*b + c lane-wise.
func MulAdd[T Integer](a, b, c Vec[T]) Vec[T] {
	n := min(len(c.data), min(len(b.data), len(a.data)))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return Vec[T]{data: result}
}

// Min returns the lane-wise minimum.
func Min[T Integer](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = min(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Max returns the lane-wise maximum.
func Max[T Integer](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = max(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// LessThan performs a lane-wise less-than comparison.
func LessThan[T Integer](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterEqual performs a lane-wise greater-than-or-equal comparison.
func GreaterEqual[T Integer](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] >= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// MaskOr combines two masks lane-wise with logical OR.
func MaskOr[T Integer](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] || b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskAnd combines two masks lane-wise with logical AND.
func MaskAnd[T Integer](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// IfThenElse selects a where the mask is true and b elsewhere.
func IfThenElse[T Integer](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(b.data), min(len(a.data), len(mask.bits)))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}
