// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

// Package matmul provides dense integer matrix multiplication engines:
// a scalar reference (MatMul), a lane-vectorized one (MatMulVec), and
// parallel forms of both driven by a workerpool.Pool.
//
// res = a * b where a is MxN, b is NxK and res is MxK, all row-major. The
// output is overwritten, never accumulated into: each cell's reduction
// lives in a register (a lane-wide accumulator in the vectorized engine)
// and is stored exactly once, so callers may pass dirty buffers.
package matmul
