package nn

import (
	"fmt"

	"github.com/evalnet-ml/evalnet/activation"
	"github.com/evalnet-ml/evalnet/internal/vec"
)

// Sparse is an affine layer over a large feature space of which only a
// handful of indices are active per call: out = A(bias + Σ weights[f]).
//
// The weight matrix is stored transposed relative to Dense, one row of N
// outputs per possible feature, so forward and backward cost scales with
// the active-feature count rather than the feature-space size.
//
// Feature index lists are taken as-is: see vec.SparseVector for the
// duplicate and out-of-range index contract.
type Sparse[A activation.Activation] struct {
	weights *vec.Matrix // features × outputs
	bias    vec.Vector
}

// NewSparse returns a zeroed sparse layer over a features-wide input space
// producing outputs values, backed by one contiguous allocation.
func NewSparse[A activation.Activation](features, outputs int) *Sparse[A] {
	if features <= 0 || outputs <= 0 {
		panic(fmt.Sprintf("nn: invalid sparse shape %d->%d", features, outputs))
	}
	backing := vec.Zeroed(features*outputs + outputs)
	return &Sparse[A]{
		weights: vec.View(features, outputs, backing[:features*outputs]),
		bias:    backing[features*outputs:],
	}
}

// SparseFromRaw wraps externally supplied parameters without copying.
// weights must be laid out as features rows × outputs columns.
func SparseFromRaw[A activation.Activation](weights *vec.Matrix, bias vec.Vector) *Sparse[A] {
	if weights.Cols() != len(bias) {
		panic(fmt.Sprintf("nn: sparse bias length %d does not match %d weight columns", len(bias), weights.Cols()))
	}
	return &Sparse[A]{weights: weights, bias: bias}
}

// InputSize returns the feature-space size M.
func (s *Sparse[A]) InputSize() int { return s.weights.Rows() }

// OutputSize returns the number of output units N.
func (s *Sparse[A]) OutputSize() int { return s.weights.Cols() }

// OutputZero returns a fresh zero vector of the layer's output shape.
func (s *Sparse[A]) OutputZero() vec.Vector { return vec.Zeroed(s.OutputSize()) }

// Weights returns the live weight matrix.
func (s *Sparse[A]) Weights() *vec.Matrix { return s.weights }

// WeightsRow returns the live weight row of one feature index.
func (s *Sparse[A]) WeightsRow(idx int) vec.Vector { return s.weights.Row(idx) }

// Bias returns the live bias vector.
func (s *Sparse[A]) Bias() vec.Vector { return s.bias }

// ZeroedLike returns a fresh zeroed layer of s's shape, for use as a
// gradient, momentum, or velocity buffer.
func (s *Sparse[A]) ZeroedLike() *Sparse[A] {
	return NewSparse[A](s.InputSize(), s.OutputSize())
}

// Out evaluates the layer over the active feature indices. Cost is
// O(len(feats)·N) regardless of the feature-space size.
func (s *Sparse[A]) Out(feats vec.SparseVector) vec.Vector {
	out := s.bias.Clone()
	for _, f := range feats {
		out.AddAssign(s.weights.Row(f))
	}
	return activate[A](out)
}

// Backprop folds one sample's parameter gradients into grad.
//
// Each active feature behaves as a one-hot unit input, so its weight row
// accumulates the activation-scaled gradient directly rather than an outer
// product. Sparse layers sit at the input edge of a network and feature
// indices are not differentiable, so no input-side gradient exists and
// nothing is returned.
func (s *Sparse[A]) Backprop(grad *Sparse[A], cumulated vec.Vector, feats vec.SparseVector, output vec.Vector) {
	delta := deltaFromOutput[A](cumulated, output)
	for _, f := range feats {
		grad.weights.Row(f).AddAssign(delta)
	}
	grad.bias.AddAssign(delta)
}

// Adam folds an accumulated gradient into the live parameters. The rule
// and contract match Dense.Adam exactly.
func (s *Sparse[A]) Adam(grad, momentum, velocity *Sparse[A], adj, lr float32) {
	s.weights.Adam(grad.weights, momentum.weights, velocity.weights, adj, lr)
	s.bias.Adam(grad.bias, momentum.bias, velocity.bias, adj, lr)
}

// AddAssign merges another accumulator of the same shape into s.
func (s *Sparse[A]) AddAssign(o *Sparse[A]) {
	s.weights.AddAssign(o.weights)
	s.bias.AddAssign(o.bias)
}
