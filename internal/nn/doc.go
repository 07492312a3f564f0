// Package nn implements the evalnet layer primitives: a densely connected
// layer, a sparsely connected feature layer, and the combinators that
// compose them into small fixed-topology evaluation networks.
//
// Every layer type follows the same contract:
//   - Out evaluates the layer over its declared input representation and
//     produces a dense vector.
//   - Backprop folds one sample's parameter gradients into a caller-owned,
//     zero-initialized accumulator of the layer's own type. Dense layers
//     additionally return the gradient with respect to their input.
//   - Adam folds an accumulated gradient into the live parameters using
//     caller-owned momentum and velocity buffers, again of the layer's own
//     type.
//   - AddAssign merges two accumulators element-wise; the merge is
//     associative and commutative up to float rounding, so parallel workers
//     may combine their buffers in any order.
//
// Shapes are fixed at construction. Constructors validate them once and
// panic on mismatch; no operation re-checks dimensions per call.
package nn
