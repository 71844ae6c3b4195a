// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

// Package apsp computes all-pairs shortest paths over a dense distance
// matrix with the Floyd-Warshall algorithm.
//
// Two interchangeable engines are provided: a scalar reference
// (FloydWarshall) and a lane-vectorized one (FloydWarshallVec), each with a
// parallel form driven by a workerpool.Pool. All four produce element-for-
// element identical results, including sentinel placement.
//
// Distances are int32 with a saturating infinity: Unreachable marks a
// missing path, and any value at or above FiniteLimit is treated as
// infinite by the relax arithmetic, so sums involving "almost infinite"
// operands saturate instead of wrapping around. Inputs must have a zero
// diagonal and no negative weights; symmetry is not assumed.
package apsp
