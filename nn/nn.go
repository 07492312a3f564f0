// Copyright 2025 The Evalnet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/evalnet-ml/evalnet/activation"
	"github.com/evalnet-ml/evalnet/internal/nn"
	"github.com/evalnet-ml/evalnet/internal/vec"
)

// Shape capabilities

// OutputLayer is the output-shape capability shared by every layer type.
type OutputLayer = nn.OutputLayer

// VectorInput marks layers whose input representation is a dense vector.
type VectorInput = nn.VectorInput

// FeatureInput marks layers whose input representation is a sparse
// active-feature index list.
type FeatureInput = nn.FeatureInput

// Layers

// Dense is a fully connected affine layer with activation A.
type Dense[A activation.Activation] = nn.Dense[A]

// NewDense returns a zeroed M→N dense layer.
func NewDense[A activation.Activation](inputs, outputs int) *Dense[A] {
	return nn.NewDense[A](inputs, outputs)
}

// DenseFromRaw wraps externally supplied dense parameters without copying.
//
// Example:
//
//	w := vec.FromRows([][]float32{{1, 0}, {0, 1}})
//	layer := nn.DenseFromRaw[activation.Identity](w, vec.Vector{0, 0})
func DenseFromRaw[A activation.Activation](weights *vec.Matrix, bias vec.Vector) *Dense[A] {
	return nn.DenseFromRaw[A](weights, bias)
}

// DenseXavier returns a dense layer with Xavier-initialized weights.
func DenseXavier[A activation.Activation](inputs, outputs int, rng *rand.Rand) *Dense[A] {
	return nn.DenseXavier[A](inputs, outputs, rng)
}

// Sparse is a feature-list affine layer with activation A.
type Sparse[A activation.Activation] = nn.Sparse[A]

// NewSparse returns a zeroed sparse layer over a features-wide input space.
func NewSparse[A activation.Activation](features, outputs int) *Sparse[A] {
	return nn.NewSparse[A](features, outputs)
}

// SparseFromRaw wraps externally supplied sparse parameters without
// copying.
func SparseFromRaw[A activation.Activation](weights *vec.Matrix, bias vec.Vector) *Sparse[A] {
	return nn.SparseFromRaw[A](weights, bias)
}

// SparseXavier returns a sparse layer with Xavier-initialized weights.
func SparseXavier[A activation.Activation](features, outputs int, rng *rand.Rand) *Sparse[A] {
	return nn.SparseXavier[A](features, outputs, rng)
}

// Combinators

// Stack chains a sparse feature layer into a dense head.
type Stack[A1, A2 activation.Activation] = nn.Stack[A1, A2]

// NewStack wires ft into head, checking shape compatibility once.
func NewStack[A1, A2 activation.Activation](ft *Sparse[A1], head *Dense[A2]) *Stack[A1, A2] {
	return nn.NewStack(ft, head)
}

// Add sums the outputs of two sparse layers over separate feature lists.
type Add[A1, A2 activation.Activation] = nn.Add[A1, A2]

// NewAdd pairs two sparse layers with equal output shapes.
func NewAdd[A1, A2 activation.Activation](first *Sparse[A1], second *Sparse[A2]) *Add[A1, A2] {
	return nn.NewAdd(first, second)
}
