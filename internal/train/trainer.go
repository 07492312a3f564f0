package train

import (
	"runtime"
	"sync"

	"github.com/evalnet-ml/evalnet/activation"
	"github.com/evalnet-ml/evalnet/internal/nn"
	"github.com/evalnet-ml/evalnet/internal/vec"
)

// Sample pairs a sparse feature list with its target output vector.
type Sample struct {
	Feats  vec.SparseVector
	Target vec.Vector
}

// Trainer runs minibatch Adam steps over a Stack evaluator under
// squared-error loss.
//
// Gradient accumulation is spread over Workers goroutines, each owning a
// zeroed same-shape buffer. Buffers merge through AddAssign, whose result
// is independent of merge order, before a single Adam step folds the total
// into the live parameters. The trainer owns the momentum and velocity
// state and the time step; the network itself stays a plain parameter
// container.
type Trainer[A1, A2 activation.Activation] struct {
	Net     *nn.Stack[A1, A2]
	LR      float32
	Workers int

	momentum *nn.Stack[A1, A2]
	velocity *nn.Stack[A1, A2]
	step     int
}

// New returns a trainer for net. workers <= 0 means one per CPU.
func New[A1, A2 activation.Activation](net *nn.Stack[A1, A2], lr float32, workers int) *Trainer[A1, A2] {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Trainer[A1, A2]{
		Net:      net,
		LR:       lr,
		Workers:  workers,
		momentum: net.ZeroedLike(),
		velocity: net.ZeroedLike(),
	}
}

// Step runs one Adam update over the batch and returns the mean
// squared-error loss measured before the update.
func (tr *Trainer[A1, A2]) Step(batch []Sample) float32 {
	if len(batch) == 0 {
		return 0
	}

	workers := min(tr.Workers, len(batch))
	grads := make([]*nn.Stack[A1, A2], workers)
	losses := make([]float32, workers)
	chunk := (len(batch) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		grads[w] = tr.Net.ZeroedLike()
		start := w * chunk
		end := min(start+chunk, len(batch))
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			for _, s := range batch[start:end] {
				hidden, out := tr.Net.Activations(s.Feats)
				cumulated := vec.Zeroed(len(out))
				for i := range out {
					diff := out[i] - s.Target[i]
					cumulated[i] = diff
					losses[w] += diff * diff
				}
				tr.Net.Backprop(grads[w], cumulated, s.Feats, hidden, out)
			}
		}(w, start, end)
	}
	wg.Wait()

	total := grads[0]
	for w := 1; w < workers; w++ {
		total.AddAssign(grads[w])
	}

	tr.step++
	tr.Net.Adam(total, tr.momentum, tr.velocity, Adj(tr.step), tr.LR)

	var loss float32
	for _, l := range losses {
		loss += l
	}
	return loss / float32(len(batch))
}

// Steps returns the number of Adam updates taken so far.
func (tr *Trainer[A1, A2]) Steps() int { return tr.step }
