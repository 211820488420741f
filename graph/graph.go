// Copyright 2025 The gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides the public API for building and differentiating
// expression graphs.
//
// An expression graph is a DAG of deferred tensor operations, rebuilt (or
// reused via Input/Set) per training example. Forward evaluation is
// memoized per generation; Backward runs reverse-mode differentiation
// from a scalar root, accumulating gradients into the parameter store.
//
// Example:
//
//	store := params.NewStore(params.WithSeed(42))
//	w, _ := store.Declare(tensor.Shape{8, 2})
//	g := graph.New(cpu.New(), store)
//
//	x := graph.Must(g.Input(xData))
//	h := graph.Must(g.Tanh(graph.Must(g.MatMul(graph.Must(g.Param(w)), x))))
//	loss := graph.Must(g.BinaryLogLoss(out, target))
//	g.Backward(loss)
package graph

import (
	"github.com/gradix-ml/gradix/internal/graph"
	"github.com/gradix-ml/gradix/internal/params"
	"github.com/gradix-ml/gradix/internal/tensor"
)

// Graph is an expression graph bound to a compute backend and a
// parameter store. Not safe for concurrent use.
type Graph = graph.Graph

// Node is an opaque handle to a graph node, valid only within the
// generation it was created in.
type Node = graph.Node

// Error kinds reported by graph construction and evaluation; match with
// errors.Is.
var (
	ErrShapeMismatch = graph.ErrShapeMismatch
	ErrDTypeMismatch = graph.ErrDTypeMismatch
	ErrNonScalarRoot = graph.ErrNonScalarRoot
	ErrStaleNode     = graph.ErrStaleNode
)

// New creates an empty graph bound to backend and store.
func New(backend tensor.Backend, store *params.Store) *Graph {
	return graph.New(backend, store)
}

// Must unwraps a (Node, error) pair, panicking on error.
func Must(n Node, err error) Node {
	return graph.Must(n, err)
}
