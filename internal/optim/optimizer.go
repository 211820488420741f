// Package optim implements parameter update rules for training.
//
// An optimizer is bound to a params.Store: after a backward pass has
// accumulated gradients, Step reads each parameter's accumulator, applies
// the update rule in place, and clears the accumulators.
//
// Training loop:
//
//	for each example {
//	    g.Reset()
//	    loss := buildGraph(g, store, example)
//	    g.Evaluate(loss)
//	    g.Backward(loss)
//	    trainer.Step()
//	}
package optim

import "github.com/gradix-ml/gradix/internal/params"

// Optimizer is the base interface for parameter update rules.
type Optimizer interface {
	// Step applies one update from the currently accumulated gradients,
	// then clears the accumulators. Calling Step again without an
	// intervening backward pass is a no-op (gradients are zero).
	Step()

	// ZeroGrad clears all gradient accumulators without updating.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Store access shared by optimizers.
type base struct {
	store *params.Store
}

func (b *base) ZeroGrad() {
	b.store.ClearGradients()
}
