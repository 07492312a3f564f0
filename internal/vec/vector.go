package vec

import "slices"

// Vector is a fixed-length column of float32 values.
//
// The length is established at construction and never changes. Binary
// operations assume both operands were built against the same dimension.
type Vector []float32

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	return slices.Clone(v)
}

// AddAssign adds o to v element-wise in place.
func (v Vector) AddAssign(o Vector) {
	for i := range v {
		v[i] += o[i]
	}
}

// MulAssign multiplies v by o element-wise in place.
func (v Vector) MulAssign(o Vector) {
	for i := range v {
		v[i] *= o[i]
	}
}

// AddScaledAssign adds s*x to v in place.
func (v Vector) AddScaledAssign(s float32, x Vector) {
	for i := range v {
		v[i] += s * x[i]
	}
}

// Dot returns the inner product of v and o.
func (v Vector) Dot(o Vector) float32 {
	var sum float32
	for i := range v {
		sum += v[i] * o[i]
	}
	return sum
}
