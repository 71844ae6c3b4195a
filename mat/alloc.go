// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

package mat

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/densekern/go-densekern/lane"
)

// Alignment is the default byte boundary for kernel buffers. A full cache
// line satisfies every lane width this module supports (16 to 64 bytes).
const Alignment = 64

// AlignedSlice allocates a slice of count elements whose base address is a
// multiple of align. align must be a power of two and at least the element
// size. The slice is zeroed.
//
// The allocation over-provisions by one alignment block and re-slices to
// the first aligned offset; the returned slice has its capacity clipped so
// appends cannot spill into the slack.
func AlignedSlice[T lane.Integer](count, align int) ([]T, error) {
	var dummy T
	elem := int(unsafe.Sizeof(dummy))

	if align < elem || align&(align-1) != 0 {
		return nil, fmt.Errorf("aligned slice: align %d, element size %d: %w", align, elem, ErrBadAlignment)
	}
	if count < 0 || count > math.MaxInt/elem-align/elem {
		return nil, fmt.Errorf("aligned slice: count %d: %w", count, ErrBadSize)
	}
	if count == 0 {
		return nil, nil
	}

	// Extra elements guarantee an aligned offset exists in the block.
	pad := align / elem
	buf := make([]T, count+pad)

	addr := uintptr(unsafe.Pointer(&buf[0]))
	off := 0
	if rem := int(addr % uintptr(align)); rem != 0 {
		// addr is at least elem-aligned and align is a multiple of elem,
		// so the distance to the boundary is a whole number of elements.
		off = (align - rem) / elem
	}
	return buf[off : off+count : off+count], nil
}

// SliceAligned reports whether the base address of s is a multiple of align.
// An empty slice is trivially aligned.
func SliceAligned[T lane.Integer](s []T, align int) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))%uintptr(align) == 0
}

// overlaps reports whether two non-empty slices share any backing memory.
func overlaps[T lane.Integer](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var dummy T
	elem := uintptr(unsafe.Sizeof(dummy))
	aLo := uintptr(unsafe.Pointer(&a[0]))
	aHi := aLo + uintptr(len(a))*elem
	bLo := uintptr(unsafe.Pointer(&b[0]))
	bHi := bLo + uintptr(len(b))*elem
	return aLo < bHi && bLo < aHi
}
