package nn

import (
	"fmt"

	"github.com/evalnet-ml/evalnet/activation"
	"github.com/evalnet-ml/evalnet/internal/vec"
)

// Dense is a fully connected affine layer from M inputs to N outputs with
// an element-wise activation A: out = A(W·input + bias).
//
// The weight matrix is stored as N rows of M columns, so each output unit
// owns one contiguous row. The layer caches no forward state: Backprop is
// handed the exact input/output pair of the matching Out call.
//
// A zeroed Dense of the same shape doubles as the gradient, momentum, or
// velocity buffer for the layer; there is no separate accumulator type.
type Dense[A activation.Activation] struct {
	weights *vec.Matrix // outputs × inputs
	bias    vec.Vector
}

// NewDense returns a zeroed M→N dense layer.
//
// Weights and bias are carved out of one contiguous zero-filled heap
// allocation, so even multi-megabyte layers never transit the stack.
func NewDense[A activation.Activation](inputs, outputs int) *Dense[A] {
	if inputs <= 0 || outputs <= 0 {
		panic(fmt.Sprintf("nn: invalid dense shape %d->%d", inputs, outputs))
	}
	backing := vec.Zeroed(outputs*inputs + outputs)
	return &Dense[A]{
		weights: vec.View(outputs, inputs, backing[:outputs*inputs]),
		bias:    backing[outputs*inputs:],
	}
}

// DenseFromRaw wraps externally supplied parameters, such as a trained
// network loaded from disk, without copying. weights must be laid out as
// outputs rows × inputs columns.
func DenseFromRaw[A activation.Activation](weights *vec.Matrix, bias vec.Vector) *Dense[A] {
	if weights.Rows() != len(bias) {
		panic(fmt.Sprintf("nn: dense bias length %d does not match %d weight rows", len(bias), weights.Rows()))
	}
	return &Dense[A]{weights: weights, bias: bias}
}

// InputSize returns the number of input units M.
func (d *Dense[A]) InputSize() int { return d.weights.Cols() }

// OutputSize returns the number of output units N.
func (d *Dense[A]) OutputSize() int { return d.weights.Rows() }

// OutputZero returns a fresh zero vector of the layer's output shape.
func (d *Dense[A]) OutputZero() vec.Vector { return vec.Zeroed(d.OutputSize()) }

// Weights returns the live weight matrix.
func (d *Dense[A]) Weights() *vec.Matrix { return d.weights }

// Bias returns the live bias vector.
func (d *Dense[A]) Bias() vec.Vector { return d.bias }

// ZeroedLike returns a fresh zeroed layer of d's shape, for use as a
// gradient, momentum, or velocity buffer.
func (d *Dense[A]) ZeroedLike() *Dense[A] {
	return NewDense[A](d.InputSize(), d.OutputSize())
}

// Out evaluates the layer: A(W·input + bias). Pure and deterministic.
func (d *Dense[A]) Out(input vec.Vector) vec.Vector {
	out := d.weights.MulVec(input)
	out.AddAssign(d.bias)
	return activate[A](out)
}

// TransposeMul propagates an output-side error signal back through the
// weights: W^T·out.
func (d *Dense[A]) TransposeMul(out vec.Vector) vec.Vector {
	return d.weights.TransposeMulVec(out)
}

// Backprop folds one sample's parameter gradients into grad and returns
// the gradient with respect to the layer input.
//
// cumulated is the loss gradient flowing back from later layers; input and
// output must be the exact pair produced by the matching Out call. The
// accumulation is strictly additive: the caller zero-initializes grad
// before a pass and never reads it mid-pass.
func (d *Dense[A]) Backprop(grad *Dense[A], cumulated, input, output vec.Vector) vec.Vector {
	delta := deltaFromOutput[A](cumulated, output)
	for i := 0; i < d.OutputSize(); i++ {
		grad.weights.Row(i).AddScaledAssign(delta[i], input)
	}
	grad.bias.AddAssign(delta)
	return d.TransposeMul(delta)
}

// Adam folds an accumulated gradient into the live parameters.
//
// momentum and velocity are the caller-owned moving averages, adj the
// combined bias correction for the current time step (see train.Adj), and
// lr the learning rate. All buffers share the layer's shape by
// construction.
func (d *Dense[A]) Adam(grad, momentum, velocity *Dense[A], adj, lr float32) {
	d.weights.Adam(grad.weights, momentum.weights, velocity.weights, adj, lr)
	d.bias.Adam(grad.bias, momentum.bias, velocity.bias, adj, lr)
}

// AddAssign merges another accumulator of the same shape into d.
func (d *Dense[A]) AddAssign(o *Dense[A]) {
	d.weights.AddAssign(o.weights)
	d.bias.AddAssign(o.bias)
}
