package nn

import (
	"math"
	"math/rand"

	"github.com/evalnet-ml/evalnet/activation"
	"github.com/evalnet-ml/evalnet/internal/vec"
)

// DenseXavier returns an M→N dense layer with Xavier/Glorot-initialized
// weights drawn from U(-sqrt(6/(M+N)), sqrt(6/(M+N))) and a zero bias.
// The caller supplies the random source so initialization stays
// reproducible.
func DenseXavier[A activation.Activation](inputs, outputs int, rng *rand.Rand) *Dense[A] {
	d := NewDense[A](inputs, outputs)
	xavierFill(d.weights.Data(), inputs, outputs, rng)
	return d
}

// SparseXavier returns a sparse layer with Xavier/Glorot-initialized
// weights and a zero bias. The fan-in is the feature count even though
// only a few features are active per call.
func SparseXavier[A activation.Activation](features, outputs int, rng *rand.Rand) *Sparse[A] {
	s := NewSparse[A](features, outputs)
	xavierFill(s.weights.Data(), features, outputs, rng)
	return s
}

func xavierFill(data vec.Vector, fanIn, fanOut int, rng *rand.Rand) {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	for i := range data {
		data[i] = float32((rng.Float64()*2 - 1) * bound)
	}
}
