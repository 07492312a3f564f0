// Copyright 2025 The Evalnet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package nn provides the public API for the evalnet layers.
//
// # Overview
//
// This package contains:
//   - Dense: fully connected affine layer with an element-wise activation
//   - Sparse: feature-list layer whose cost scales with active features
//   - Stack, Add: combinators composing layers into evaluators
//   - Initialization: DenseXavier, SparseXavier
//   - Shape capabilities: OutputLayer, VectorInput, FeatureInput
//
// # Basic Usage
//
//	import (
//	    "github.com/evalnet-ml/evalnet/activation"
//	    "github.com/evalnet-ml/evalnet/nn"
//	    "github.com/evalnet-ml/evalnet/vec"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(1))
//	    ft := nn.SparseXavier[activation.CReLU](768, 64, rng)
//	    head := nn.DenseXavier[activation.Identity](64, 1, rng)
//	    net := nn.NewStack(ft, head)
//
//	    score := net.Out(vec.SparseVector{12, 97, 405})
//	    _ = score
//	}
//
// # Training
//
// Every layer hand-implements its own gradient rule: Backprop accumulates
// parameter gradients into a zeroed buffer of the layer's own type, and
// Adam folds an accumulated gradient into the live parameters. There is no
// autodiff graph and no hidden optimizer state; the caller owns every
// buffer.
package nn
