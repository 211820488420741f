package optim

import "github.com/gradix-ml/gradix/internal/params"

// SGD implements plain stochastic gradient descent:
//
//	value -= lr * gradient
//
// applied to every parameter in the bound store, followed by clearing the
// gradient accumulators. Momentum and adaptive variants are deliberately
// not provided.
//
// Example:
//
//	trainer := optim.NewSGD(store, optim.SGDConfig{LR: 0.1})
//	...
//	g.Backward(loss)
//	trainer.Step()
type SGD struct {
	base
	lr float64
}

// SGDConfig holds configuration for the SGD trainer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates an SGD trainer bound to store.
func NewSGD(store *params.Store, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{base: base{store: store}, lr: config.LR}
}

// Step applies value -= lr * gradient to every parameter, then clears the
// accumulated gradients. Safe to call once per accumulated batch; with
// already-cleared gradients it degrades to a no-op.
func (s *SGD) Step() {
	for _, h := range s.store.Handles() {
		value := s.store.ValueOf(h)
		grad := s.store.GradOf(h)
		for i := 0; i < value.Numel(); i++ {
			value.SetAt(i, value.At(i)-s.lr*grad.At(i))
		}
	}
	s.store.ClearGradients()
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate, for schedules driven by the caller.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
