package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAdamSingleStep verifies one update from zero state against the
// documented constants, with the bias correction fixed at 1.
func TestAdamSingleStep(t *testing.T) {
	p := Vector{1}
	g := Vector{1}
	m := Zeroed(1)
	v := Zeroed(1)

	p.Adam(g, m, v, 1.0, 0.001)

	// m = 0.1*1, v = 0.001*1, p -= 0.001 * 0.1 / (sqrt(0.001) + 1e-8)
	wantM := float32(0.1)
	wantV := float32(0.001)
	wantP := 1 - 0.001*0.1/(float32(math.Sqrt(0.001))+1e-8)

	assert.InDelta(t, wantM, m[0], 1e-7)
	assert.InDelta(t, wantV, v[0], 1e-7)
	assert.InDelta(t, wantP, p[0], 1e-6)
}

// TestAdamZeroGradient checks that a zero gradient with zero state leaves
// the parameters untouched.
func TestAdamZeroGradient(t *testing.T) {
	p := Vector{3, -2}
	p.Adam(Zeroed(2), Zeroed(2), Zeroed(2), 1.0, 0.1)
	assert.Equal(t, Vector{3, -2}, p)
}

// TestAdamAdjScalesStep checks that adj multiplies the step linearly when
// the moment buffers start from zero.
func TestAdamAdjScalesStep(t *testing.T) {
	base := Vector{1}
	base.Adam(Vector{0.5}, Zeroed(1), Zeroed(1), 1.0, 0.01)
	baseDelta := 1 - base[0]

	scaled := Vector{1}
	scaled.Adam(Vector{0.5}, Zeroed(1), Zeroed(1), 2.0, 0.01)
	scaledDelta := 1 - scaled[0]

	assert.InDelta(t, 2*baseDelta, scaledDelta, 1e-6)
}

// TestMatrixAdamMatchesVector runs the same update through both entry
// points and expects identical results.
func TestMatrixAdamMatchesVector(t *testing.T) {
	pm := FromRows([][]float32{{1, 2}, {3, 4}})
	gm := FromRows([][]float32{{0.1, -0.2}, {0.3, -0.4}})
	mm := NewMatrix(2, 2)
	vm := NewMatrix(2, 2)

	pv := Vector{1, 2, 3, 4}
	gv := Vector{0.1, -0.2, 0.3, -0.4}
	mv := Zeroed(4)
	vv := Zeroed(4)

	pm.Adam(gm, mm, vm, 0.7, 0.05)
	pv.Adam(gv, mv, vv, 0.7, 0.05)

	assert.Equal(t, pv, pm.Data())
	assert.Equal(t, mv, mm.Data())
	assert.Equal(t, vv, vm.Data())
}

// TestAdamConstants pins the hyperparameters the whole library shares.
func TestAdamConstants(t *testing.T) {
	assert.Equal(t, 0.9, Beta1)
	assert.Equal(t, 0.999, Beta2)
	assert.Equal(t, 1e-8, Epsilon)
}
