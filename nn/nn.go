// Copyright 2025 The gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for neural network building blocks:
// Linear layers, activations, and the Sequential container, all expressed
// as expression-graph builders over a shared parameter store.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.MustLinear(store, 2, 8),
//	    nn.Tanh{},
//	    nn.MustLinear(store, 8, 1),
//	    nn.Sigmoid{},
//	)
//	out, err := model.Forward(g, x)
package nn

import (
	"github.com/gradix-ml/gradix/internal/nn"
	"github.com/gradix-ml/gradix/internal/params"
)

// Module is the base interface for network components.
type Module = nn.Module

// Linear is a fully connected layer y = W @ x + b over column vectors.
type Linear = nn.Linear

// Activation modules.
type (
	Tanh    = nn.Tanh
	Sigmoid = nn.Sigmoid
	ReLU    = nn.ReLU
)

// Sequential chains modules so each output feeds the next input.
type Sequential = nn.Sequential

// NewLinear declares weight and bias parameters in store and returns the
// layer.
func NewLinear(store *params.Store, inFeatures, outFeatures int) (*Linear, error) {
	return nn.NewLinear(store, inFeatures, outFeatures)
}

// MustLinear is NewLinear panicking on error, for model literals.
func MustLinear(store *params.Store, inFeatures, outFeatures int) *Linear {
	return nn.MustLinear(store, inFeatures, outFeatures)
}

// NewSequential creates a Sequential container over modules.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}
