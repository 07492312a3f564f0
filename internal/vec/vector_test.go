package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorAddAssign(t *testing.T) {
	v := Vector{1, 2, 3}
	v.AddAssign(Vector{10, 20, 30})
	assert.Equal(t, Vector{11, 22, 33}, v)
}

func TestVectorMulAssign(t *testing.T) {
	v := Vector{1, 2, 3}
	v.MulAssign(Vector{2, 0.5, -1})
	assert.Equal(t, Vector{2, 1, -3}, v)
}

func TestVectorAddScaledAssign(t *testing.T) {
	v := Vector{1, 1}
	v.AddScaledAssign(2, Vector{3, -4})
	assert.Equal(t, Vector{7, -7}, v)
}

func TestVectorDot(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}
	assert.InDelta(t, 32.0, a.Dot(b), 1e-6)
}

func TestVectorCloneIsIndependent(t *testing.T) {
	v := Vector{1, 2}
	c := v.Clone()
	c[0] = 99
	assert.Equal(t, Vector{1, 2}, v)
}

func TestZeroedAllZero(t *testing.T) {
	v := Zeroed(1 << 16)
	for i, x := range v {
		if x != 0 {
			t.Fatalf("element %d is %v, want exactly 0", i, x)
		}
	}
}
