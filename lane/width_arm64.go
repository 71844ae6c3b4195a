// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

//go:build arm64

package lane

func init() {
	// NEON is mandatory on arm64; its registers are 128-bit.
	currentWidth = MinWidth
}
