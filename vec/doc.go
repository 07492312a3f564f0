// Copyright 2025 The Evalnet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package vec provides the public API for the evalnet numeric primitives:
// fixed-length vectors, row-major matrices, and sparse active-index lists.
//
// Dimensions are fixed at construction and validated once there; operations
// never re-check shapes per call. See the individual types for the exact
// contracts.
//
// Example:
//
//	w := vec.FromRows([][]float32{{1, 0}, {0, 1}})
//	x := vec.Vector{3, 4}
//	y := w.MulVec(x) // [3, 4]
package vec
