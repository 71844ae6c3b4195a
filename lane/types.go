// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

package lane

// SignedInts is a constraint for signed fixed-width integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned fixed-width integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is a constraint for all types that can live in an integer lane.
type Integer interface {
	SignedInts | UnsignedInts
}

// Vec is a portable vector of integer lanes. The lane count is fixed when
// the vector is created (see MaxLanes) and every operation in this package
// works lane-wise.
//
// Vec values should not be created directly; use Load, Set, or Zero.
type Vec[T Integer] struct {
	data []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// Intended for tests; not for performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Mask is the result of a lane-wise comparison. It selects lanes in
// IfThenElse and can be combined with MaskOr and MaskAnd.
//
// Mask values should not be created directly; use GreaterEqual, LessThan,
// or the other comparisons.
type Mask[T Integer] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AnyTrue reports whether at least one lane is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// AllTrue reports whether every lane is active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}
