// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

//go:build !amd64 && !arm64

package lane

func init() {
	currentWidth = MinWidth
}
