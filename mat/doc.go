// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

// Package mat provides aligned storage and dense row-major integer matrices
// for the kernels in this module.
//
// AlignedSlice returns ordinary Go slices whose base address satisfies a
// power-of-two byte boundary, so call sites write ordinary slice code while
// the vectorized kernels get the alignment their lane loads rely on.
// Matrix wraps such a slice with a row stride padded to a lane multiple:
// every row starts on a lane boundary, which is how this module avoids
// alignment violations structurally rather than detecting them late.
package mat
