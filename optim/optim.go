// Copyright 2025 The gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for parameter update rules.
//
// Example:
//
//	trainer := optim.NewSGD(store, optim.SGDConfig{LR: 0.1})
//	...
//	g.Backward(loss)
//	trainer.Step()
package optim

import (
	"github.com/gradix-ml/gradix/internal/optim"
	"github.com/gradix-ml/gradix/internal/params"
)

// Optimizer is the base interface for parameter update rules.
type Optimizer = optim.Optimizer

// SGD implements plain stochastic gradient descent.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD trainer.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD trainer bound to store.
func NewSGD(store *params.Store, config SGDConfig) *SGD {
	return optim.NewSGD(store, config)
}
