package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evalnet-ml/evalnet/activation"
	"github.com/evalnet-ml/evalnet/internal/vec"
)

func randomDense[A activation.Activation](rng *rand.Rand, inputs, outputs int) *Dense[A] {
	d := NewDense[A](inputs, outputs)
	for i := range d.Weights().Data() {
		d.Weights().Data()[i] = float32(rng.NormFloat64())
	}
	for i := range d.Bias() {
		d.Bias()[i] = float32(rng.NormFloat64())
	}
	return d
}

func randomVector(rng *rand.Rand, n int) vec.Vector {
	v := vec.Zeroed(n)
	for i := range v {
		v[i] = float32(rng.NormFloat64())
	}
	return v
}

// TestDenseIdentityEndToEnd walks the full forward/backward contract on a
// 2x2 identity layer where every expected value is known exactly.
func TestDenseIdentityEndToEnd(t *testing.T) {
	layer := DenseFromRaw[activation.Identity](
		vec.FromRows([][]float32{{1, 0}, {0, 1}}),
		vec.Vector{0, 0},
	)
	input := vec.Vector{3, 4}

	out := layer.Out(input)
	assert.Equal(t, vec.Vector{3, 4}, out)

	grad := layer.ZeroedLike()
	inputGrad := layer.Backprop(grad, vec.Vector{1, 1}, input, out)

	assert.Equal(t, vec.Vector{3, 4}, grad.Weights().Row(0))
	assert.Equal(t, vec.Vector{3, 4}, grad.Weights().Row(1))
	assert.Equal(t, vec.Vector{1, 1}, grad.Bias())
	assert.Equal(t, vec.Vector{1, 1}, inputGrad)
}

// TestDenseUnitGradientRow backprops a unit gradient on one output index
// and expects exactly one weight row and one bias entry to pick it up.
func TestDenseUnitGradientRow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	layer := randomDense[activation.Sigmoid](rng, 4, 3)
	input := randomVector(rng, 4)
	out := layer.Out(input)

	const unit = 1
	cumulated := layer.OutputZero()
	cumulated[unit] = 1

	grad := layer.ZeroedLike()
	layer.Backprop(grad, cumulated, input, out)

	var act activation.Sigmoid
	scale := act.Derivative(out[unit])
	for i := 0; i < layer.OutputSize(); i++ {
		for j := 0; j < layer.InputSize(); j++ {
			want := float32(0)
			if i == unit {
				want = scale * input[j]
			}
			assert.InDelta(t, want, grad.Weights().Row(i)[j], 1e-6, "row %d col %d", i, j)
		}
		want := float32(0)
		if i == unit {
			want = scale
		}
		assert.InDelta(t, want, grad.Bias()[i], 1e-6, "bias %d", i)
	}
}

func TestDenseOutDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	layer := randomDense[activation.Tanh](rng, 6, 5)
	input := randomVector(rng, 6)

	first := layer.Out(input)
	second := layer.Out(input)
	assert.Equal(t, first, second)
}

func TestDenseTransposeMul(t *testing.T) {
	layer := DenseFromRaw[activation.Identity](
		vec.FromRows([][]float32{{1, 2, 3}, {4, 5, 6}}),
		vec.Vector{0, 0},
	)
	got := layer.TransposeMul(vec.Vector{1, 1})
	assert.Equal(t, vec.Vector{5, 7, 9}, got)
}

// TestDenseMergeOrderIndependent checks the AddAssign merge is
// commutative and associative within float tolerance.
func TestDenseMergeOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	a := randomDense[activation.Identity](rng, 3, 2)
	b := randomDense[activation.Identity](rng, 3, 2)
	c := randomDense[activation.Identity](rng, 3, 2)

	clone := func(d *Dense[activation.Identity]) *Dense[activation.Identity] {
		return DenseFromRaw[activation.Identity](d.Weights().Clone(), d.Bias().Clone())
	}

	left := clone(a)
	left.AddAssign(b)
	left.AddAssign(c)

	right := clone(b)
	right.AddAssign(c)
	right.AddAssign(a)

	for i, x := range left.Weights().Data() {
		assert.InDelta(t, x, right.Weights().Data()[i], 1e-5)
	}
	for i, x := range left.Bias() {
		assert.InDelta(t, x, right.Bias()[i], 1e-5)
	}
}

func TestDenseAdamUsesSharedRule(t *testing.T) {
	layer := DenseFromRaw[activation.Identity](
		vec.FromRows([][]float32{{1, 1}}),
		vec.Vector{1},
	)
	grad := DenseFromRaw[activation.Identity](
		vec.FromRows([][]float32{{1, 1}}),
		vec.Vector{1},
	)
	momentum := layer.ZeroedLike()
	velocity := layer.ZeroedLike()

	layer.Adam(grad, momentum, velocity, 1.0, 0.001)

	// Same hand-computed delta as the vec-level Adam test.
	want := 1 - 0.001*0.1/(float32(0.0316227766)+1e-8)
	for _, p := range layer.Weights().Data() {
		assert.InDelta(t, want, p, 1e-5)
	}
	assert.InDelta(t, want, layer.Bias()[0], 1e-5)
}

func TestNewDenseZeroed(t *testing.T) {
	layer := NewDense[activation.ReLU](100, 50)
	require.Equal(t, 100, layer.InputSize())
	require.Equal(t, 50, layer.OutputSize())
	for _, x := range layer.Weights().Data() {
		if x != 0 {
			t.Fatal("weights not zeroed")
		}
	}
	for _, x := range layer.Bias() {
		if x != 0 {
			t.Fatal("bias not zeroed")
		}
	}
}

func TestNewDensePanicsOnBadShape(t *testing.T) {
	assert.Panics(t, func() { NewDense[activation.ReLU](0, 5) })
	assert.Panics(t, func() {
		DenseFromRaw[activation.ReLU](vec.NewMatrix(2, 3), vec.Zeroed(3))
	})
}

func TestOutputZero(t *testing.T) {
	layer := NewDense[activation.ReLU](3, 4)
	z := layer.OutputZero()
	assert.Equal(t, vec.Zeroed(4), z)
}
