package nn

import (
	"fmt"

	"github.com/evalnet-ml/evalnet/activation"
	"github.com/evalnet-ml/evalnet/internal/vec"
)

// Add sums the outputs of two sparse layers evaluated over separate
// feature lists: the usual shape of a two-perspective evaluator, where
// each side of the board gets its own feature set.
type Add[A1, A2 activation.Activation] struct {
	First  *Sparse[A1]
	Second *Sparse[A2]
}

// NewAdd pairs two sparse layers with equal output shapes.
func NewAdd[A1, A2 activation.Activation](first *Sparse[A1], second *Sparse[A2]) *Add[A1, A2] {
	if first.OutputSize() != second.OutputSize() {
		panic(fmt.Sprintf("nn: add output mismatch: %d vs %d", first.OutputSize(), second.OutputSize()))
	}
	return &Add[A1, A2]{First: first, Second: second}
}

// OutputSize returns the shared output size of both layers.
func (a *Add[A1, A2]) OutputSize() int { return a.First.OutputSize() }

// OutputZero returns a fresh zero vector of the shared output shape.
func (a *Add[A1, A2]) OutputZero() vec.Vector { return a.First.OutputZero() }

// ZeroedLike returns a fresh zeroed pair of a's shape.
func (a *Add[A1, A2]) ZeroedLike() *Add[A1, A2] {
	return &Add[A1, A2]{First: a.First.ZeroedLike(), Second: a.Second.ZeroedLike()}
}

// Out evaluates both layers and sums their outputs. Use Activations when
// the per-layer outputs are needed for Backprop.
func (a *Add[A1, A2]) Out(first, second vec.SparseVector) vec.Vector {
	out := a.First.Out(first)
	out.AddAssign(a.Second.Out(second))
	return out
}

// Activations evaluates both layers and returns each layer's own output
// along with their sum. Backprop needs the per-layer outputs because each
// activation derivative is recovered from its own layer's output.
func (a *Add[A1, A2]) Activations(first, second vec.SparseVector) (out1, out2, sum vec.Vector) {
	out1 = a.First.Out(first)
	out2 = a.Second.Out(second)
	sum = out1.Clone()
	sum.AddAssign(out2)
	return out1, out2, sum
}

// Backprop fans the cumulated gradient into both layers unchanged: the sum
// contributes a unit factor to each branch. out1 and out2 must come from
// the matching Activations call.
func (a *Add[A1, A2]) Backprop(grad *Add[A1, A2], cumulated vec.Vector, first, second vec.SparseVector, out1, out2 vec.Vector) {
	a.First.Backprop(grad.First, cumulated, first, out1)
	a.Second.Backprop(grad.Second, cumulated, second, out2)
}

// Adam folds an accumulated gradient into both layers' live parameters.
func (a *Add[A1, A2]) Adam(grad, momentum, velocity *Add[A1, A2], adj, lr float32) {
	a.First.Adam(grad.First, momentum.First, velocity.First, adj, lr)
	a.Second.Adam(grad.Second, momentum.Second, velocity.Second, adj, lr)
}

// AddAssign merges another accumulator of the same shape into a.
func (a *Add[A1, A2]) AddAssign(o *Add[A1, A2]) {
	a.First.AddAssign(o.First)
	a.Second.AddAssign(o.Second)
}
