// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

package lane

import (
	"fmt"
	"os"
	"strconv"
	"unsafe"
)

// Lane widths in bytes. MinWidth matches 128-bit registers (SSE2, NEON),
// MaxWidth matches 512-bit registers (AVX-512, SVE).
const (
	MinWidth = 16
	MaxWidth = 64
)

// currentWidth is the lane register width in bytes. It is set by the
// per-architecture init in width_*.go and may be overridden by SetWidth.
var currentWidth int

// Width returns the current lane register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func Width() int {
	return currentWidth
}

// SetWidth overrides the detected lane width. The width must be a power of
// two between MinWidth and MaxWidth. Kernels pick up the new width on their
// next invocation; SetWidth must not be called concurrently with a running
// kernel.
func SetWidth(bytes int) error {
	if bytes < MinWidth || bytes > MaxWidth || bytes&(bytes-1) != 0 {
		return fmt.Errorf("lane: invalid width %d: must be a power of two in [%d, %d]", bytes, MinWidth, MaxWidth)
	}
	currentWidth = bytes
	return nil
}

// NoSimdEnv reports whether the DENSEKERN_NO_SIMD environment variable is
// set. When set, the lane width stays at MinWidth regardless of CPU
// capabilities. Useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("DENSEKERN_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of lanes a Vec[T] holds at the current width.
//
// For example, with a 32-byte width (AVX2):
//   - int32: 32/4 = 8 lanes
//   - int64: 32/8 = 4 lanes
func MaxLanes[T Integer]() int {
	var dummy T
	return currentWidth / int(unsafe.Sizeof(dummy))
}

// AlignedSize rounds count up to the next multiple of the lane count for T.
// Matrix row strides are padded with this so every row starts on a lane
// boundary.
func AlignedSize[T Integer](count int) int {
	lanes := MaxLanes[T]()
	if lanes == 0 {
		return count
	}
	return ((count + lanes - 1) / lanes) * lanes
}

// IsAligned reports whether count is a multiple of the lane count for T.
func IsAligned[T Integer](count int) bool {
	lanes := MaxLanes[T]()
	if lanes == 0 {
		return true
	}
	return count%lanes == 0
}
