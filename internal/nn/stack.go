package nn

import (
	"fmt"

	"github.com/evalnet-ml/evalnet/activation"
	"github.com/evalnet-ml/evalnet/internal/vec"
)

// Stack chains a sparse feature layer into a dense head: the standard
// shape of a small game evaluator, a feature transformer followed by an
// output head.
//
// Like single layers, a zeroed Stack of the same shape doubles as the
// gradient, momentum, or velocity buffer for the whole pair.
type Stack[A1, A2 activation.Activation] struct {
	Ft   *Sparse[A1]
	Head *Dense[A2]
}

// NewStack wires ft into head. The output shape of ft must match the input
// shape of head; the check runs once here, never per call.
func NewStack[A1, A2 activation.Activation](ft *Sparse[A1], head *Dense[A2]) *Stack[A1, A2] {
	if ft.OutputSize() != head.InputSize() {
		panic(fmt.Sprintf("nn: stack shape mismatch: %d outputs into %d inputs", ft.OutputSize(), head.InputSize()))
	}
	return &Stack[A1, A2]{Ft: ft, Head: head}
}

// InputSize returns the feature-space size of the sparse layer.
func (s *Stack[A1, A2]) InputSize() int { return s.Ft.InputSize() }

// OutputSize returns the output size of the dense head.
func (s *Stack[A1, A2]) OutputSize() int { return s.Head.OutputSize() }

// OutputZero returns a fresh zero vector of the head's output shape.
func (s *Stack[A1, A2]) OutputZero() vec.Vector { return s.Head.OutputZero() }

// ZeroedLike returns a fresh zeroed pair of s's shape.
func (s *Stack[A1, A2]) ZeroedLike() *Stack[A1, A2] {
	return &Stack[A1, A2]{Ft: s.Ft.ZeroedLike(), Head: s.Head.ZeroedLike()}
}

// Out evaluates both layers, discarding the intermediate activation. Use
// Activations when the hidden vector is needed for Backprop.
func (s *Stack[A1, A2]) Out(feats vec.SparseVector) vec.Vector {
	return s.Head.Out(s.Ft.Out(feats))
}

// Activations evaluates both layers and returns the hidden and final
// outputs, the pair Backprop needs.
func (s *Stack[A1, A2]) Activations(feats vec.SparseVector) (hidden, out vec.Vector) {
	hidden = s.Ft.Out(feats)
	out = s.Head.Out(hidden)
	return hidden, out
}

// Backprop accumulates both layers' gradients into grad, threading the
// head's input gradient back into the feature layer. hidden and out must
// come from the matching Activations call.
func (s *Stack[A1, A2]) Backprop(grad *Stack[A1, A2], cumulated vec.Vector, feats vec.SparseVector, hidden, out vec.Vector) {
	hiddenGrad := s.Head.Backprop(grad.Head, cumulated, hidden, out)
	s.Ft.Backprop(grad.Ft, hiddenGrad, feats, hidden)
}

// Adam folds an accumulated gradient into both layers' live parameters.
func (s *Stack[A1, A2]) Adam(grad, momentum, velocity *Stack[A1, A2], adj, lr float32) {
	s.Ft.Adam(grad.Ft, momentum.Ft, velocity.Ft, adj, lr)
	s.Head.Adam(grad.Head, momentum.Head, velocity.Head, adj, lr)
}

// AddAssign merges another accumulator of the same shape into s.
func (s *Stack[A1, A2]) AddAssign(o *Stack[A1, A2]) {
	s.Ft.AddAssign(o.Ft)
	s.Head.AddAssign(o.Head)
}
