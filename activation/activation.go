// Copyright 2025 The Evalnet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package activation defines the element-wise nonlinearity capability used
// by evalnet layers, together with the standard activation set.
//
// Derivative is expressed as a function of the activation's output rather
// than its pre-activation input: layers keep no cached forward state beyond
// the output vector, and every activation in the set has a derivative
// recoverable from it.
package activation

import "math"

// Activation is the element-wise nonlinearity capability of a layer.
//
// Implementations are zero-size structs. Layers take the activation as a
// generic type parameter and instantiate it on demand, so selecting an
// activation adds no field to the layer and no dispatch cost per call.
type Activation interface {
	// Apply evaluates the nonlinearity at x.
	Apply(x float32) float32

	// Derivative evaluates the slope of the nonlinearity as a function
	// of its output y = Apply(x).
	Derivative(y float32) float32
}

// Identity passes values through unchanged.
type Identity struct{}

func (Identity) Apply(x float32) float32    { return x }
func (Identity) Derivative(float32) float32 { return 1 }

// ReLU clips negative values to zero.
type ReLU struct{}

func (ReLU) Apply(x float32) float32 { return max(x, 0) }

func (ReLU) Derivative(y float32) float32 {
	if y > 0 {
		return 1
	}
	return 0
}

// CReLU clips values into [0, 1].
type CReLU struct{}

func (CReLU) Apply(x float32) float32 { return min(max(x, 0), 1) }

func (CReLU) Derivative(y float32) float32 {
	if y > 0 && y < 1 {
		return 1
	}
	return 0
}

// SCReLU squares the [0, 1] clip. The square keeps the gradient small near
// zero while saturating like CReLU, a common choice for evaluator hidden
// layers.
type SCReLU struct{}

func (SCReLU) Apply(x float32) float32 {
	c := min(max(x, 0), 1)
	return c * c
}

func (SCReLU) Derivative(y float32) float32 {
	if y > 0 && y < 1 {
		return 2 * float32(math.Sqrt(float64(y)))
	}
	return 0
}

// Sigmoid is the logistic function 1/(1+e^-x).
type Sigmoid struct{}

func (Sigmoid) Apply(x float32) float32 {
	return 1 / (1 + float32(math.Exp(float64(-x))))
}

func (Sigmoid) Derivative(y float32) float32 { return y * (1 - y) }

// Tanh is the hyperbolic tangent.
type Tanh struct{}

func (Tanh) Apply(x float32) float32 {
	return float32(math.Tanh(float64(x)))
}

func (Tanh) Derivative(y float32) float32 { return 1 - y*y }
