package vec

import "math"

// Adam hyperparameters, fixed for every parameter update in the library.
// The time-step bias correction is not part of the core rule: callers fold
// it into the adj argument of the update (see the train package).
const (
	Beta1   = 0.9
	Beta2   = 0.999
	Epsilon = 1e-8
)

// Adam applies one Adam update step to p in place:
//
//	m = beta1*m + (1-beta1)*g
//	v = beta2*v + (1-beta2)*g²
//	p = p - lr*adj*m/(sqrt(v)+eps)
//
// grad holds the accumulated gradient, momentum and velocity the
// caller-owned moving averages, adj the combined bias correction for the
// current time step, and lr the learning rate. All four vectors share p's
// length by construction.
func (p Vector) Adam(grad, momentum, velocity Vector, adj, lr float32) {
	adamAssign(p, grad, momentum, velocity, adj, lr)
}

// Adam applies one Adam update step to m in place. See Vector.Adam.
func (m *Matrix) Adam(grad, momentum, velocity *Matrix, adj, lr float32) {
	adamAssign(m.data, grad.data, momentum.data, velocity.data, adj, lr)
}

func adamAssign(p, g, mom, vel []float32, adj, lr float32) {
	for i := range p {
		gi := g[i]
		mom[i] = Beta1*mom[i] + (1-Beta1)*gi
		vel[i] = Beta2*vel[i] + (1-Beta2)*gi*gi
		p[i] -= lr * adj * mom[i] / (sqrt32(vel[i]) + Epsilon)
	}
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
