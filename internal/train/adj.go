// Package train drives Adam training of evalnet networks: it owns the
// optimizer time step, the momentum and velocity buffers, and the parallel
// gradient accumulation the layer AddAssign merge exists for.
package train

import (
	"math"

	"github.com/evalnet-ml/evalnet/internal/vec"
)

// Adj returns the combined Adam bias correction for time step t, counted
// from 1:
//
//	adj = sqrt(1 - beta2^t) / (1 - beta1^t)
//
// The layer update takes a single correction scalar, so the first- and
// second-moment corrections are folded together here before the call.
func Adj(t int) float32 {
	m := 1 - math.Pow(vec.Beta1, float64(t))
	v := 1 - math.Pow(vec.Beta2, float64(t))
	return float32(math.Sqrt(v) / m)
}
