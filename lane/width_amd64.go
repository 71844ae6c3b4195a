// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

//go:build amd64

package lane

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentWidth = MinWidth
		return
	}
	switch {
	case cpu.X86.HasAVX512:
		currentWidth = 64
	case cpu.X86.HasAVX2:
		currentWidth = 32
	default:
		// SSE2 is the amd64 baseline.
		currentWidth = 16
	}
}
