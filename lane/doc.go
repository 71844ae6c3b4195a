// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

// Package lane provides a portable vector-width abstraction for the dense
// integer kernels in this module.
//
// Kernels are written once against a small set of lane-wise operations
// (broadcast, load, store, add, multiply, compare, select, min) and run
// with whatever lane count the current width provides. The width defaults
// to the widest SIMD register the CPU offers and can be changed at runtime
// with SetWidth, so the same relaxation and reduction logic covers 128-,
// 256- and 512-bit targets without restructuring.
//
// Basic usage:
//
//	x := lane.Set[int32](pivot)        // broadcast
//	y := lane.Load(row[j:])            // contiguous lanes
//	z := lane.Add(x, y)
//	lane.Store(lane.Min(cur, z), row[j:])
package lane
