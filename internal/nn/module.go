package nn

import (
	"github.com/evalnet-ml/evalnet/activation"
	"github.com/evalnet-ml/evalnet/internal/vec"
)

// OutputLayer is the output-shape capability shared by every layer type.
// All layers produce a dense vector; composing layers use OutputZero to
// initialize downstream accumulators without running a forward pass.
type OutputLayer interface {
	// OutputSize returns the length of the vector the layer produces.
	OutputSize() int

	// OutputZero returns a fresh zero vector of the layer's output shape.
	OutputZero() vec.Vector
}

// VectorInput marks layers whose input representation is a dense vector of
// InputSize elements.
type VectorInput interface {
	OutputLayer
	InputSize() int
	Out(input vec.Vector) vec.Vector
}

// FeatureInput marks layers whose input representation is a sparse
// active-feature index list over an InputSize-wide feature space.
type FeatureInput interface {
	OutputLayer
	InputSize() int
	Out(feats vec.SparseVector) vec.Vector
}

// activate applies A element-wise in place and returns v.
func activate[A activation.Activation](v vec.Vector) vec.Vector {
	var act A
	for i := range v {
		v[i] = act.Apply(v[i])
	}
	return v
}

// deltaFromOutput scales the cumulated output gradient by the activation
// slope recovered from the forward output, into a fresh buffer.
func deltaFromOutput[A activation.Activation](cumulated, output vec.Vector) vec.Vector {
	var act A
	delta := cumulated.Clone()
	for i := range delta {
		delta[i] *= act.Derivative(output[i])
	}
	return delta
}
