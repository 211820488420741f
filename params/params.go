// Copyright 2025 The gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package params provides the public API for the parameter store: the
// trainable state that persists across expression-graph generations.
//
// Example:
//
//	store := params.NewStore(params.WithSeed(42))
//	w, err := store.Declare(tensor.Shape{8, 2}, params.WithInit(params.Xavier()))
package params

import (
	"github.com/gradix-ml/gradix/internal/params"
)

// Store owns trainable tensors and their gradient accumulators.
// Not safe for concurrent use.
type Store = params.Store

// Handle identifies a parameter within its Store.
type Handle = params.Handle

// Option configures a Store; DeclareOption configures one Declare call.
type (
	Option        = params.Option
	DeclareOption = params.DeclareOption
)

// Initializer fills a freshly declared parameter tensor.
type Initializer = params.Initializer

// NewStore creates an empty parameter store.
func NewStore(opts ...Option) *Store {
	return params.NewStore(opts...)
}

// Store options.
var (
	WithDType       = params.WithDType
	WithSeed        = params.WithSeed
	WithDefaultInit = params.WithDefaultInit
)

// Declare options.
var (
	WithName = params.WithName
	WithInit = params.WithInit
)

// Initializers.
var (
	Uniform  = params.Uniform
	Xavier   = params.Xavier
	Zeros    = params.Zeros
	Constant = params.Constant
	Randn    = params.Randn
)
