// Copyright 2025 The Evalnet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"github.com/evalnet-ml/evalnet/internal/vec"
)

// Vector is a fixed-length column of float32 values.
type Vector = vec.Vector

// Matrix is a fixed-shape row-major matrix of float32 values.
type Matrix = vec.Matrix

// SparseVector lists the active feature indices of an implicitly one-hot
// input over a large feature space.
type SparseVector = vec.SparseVector

// Adam hyperparameters, fixed for every parameter update in the library.
const (
	Beta1   = vec.Beta1
	Beta2   = vec.Beta2
	Epsilon = vec.Epsilon
)

// Zeroed returns a Vector of length n with every element zero, backed by a
// single zero-filled heap allocation. See the internal documentation for
// the large-aggregate allocation contract.
func Zeroed(n int) Vector {
	return vec.Zeroed(n)
}

// NewMatrix returns a rows×cols matrix backed by a fresh zeroed allocation.
func NewMatrix(rows, cols int) *Matrix {
	return vec.NewMatrix(rows, cols)
}

// FromRows builds a matrix from explicit row values, copying them.
//
// Example:
//
//	identity := vec.FromRows([][]float32{{1, 0}, {0, 1}})
func FromRows(rows [][]float32) *Matrix {
	return vec.FromRows(rows)
}

// View wraps an existing backing slice as a rows×cols matrix without
// copying.
func View(rows, cols int, data Vector) *Matrix {
	return vec.View(rows, cols, data)
}
