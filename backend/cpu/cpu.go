// Copyright 2025 The gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure-Go CPU compute backend.
package cpu

import (
	internalcpu "github.com/gradix-ml/gradix/internal/backend/cpu"
	"github.com/gradix-ml/gradix/tensor"
)

// Backend is the CPU backend implementation. Element-wise kernels are
// plain Go loops; float64 matrix multiplication is backed by gonum.
type Backend = internalcpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	g := graph.New(backend, store)
func New() *Backend {
	return internalcpu.New()
}
