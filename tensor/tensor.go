// Copyright 2025 The gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor values in gradix.
//
// The package re-exports the core types:
//   - Dense: fixed-shape numeric buffer, row-major layout
//   - Shape, DataType: dimension and element-type descriptors
//   - Backend: interface for compute kernel implementations
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 0, 0, 1}, tensor.Shape{2, 2})
//	z := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float32)
package tensor

import (
	"math/rand"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// DType is a constraint for tensor element types: float32 or float64.
type DType = tensor.DType

// DataType represents the underlying element type of a tensor.
type DataType = tensor.DataType

// Element type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} is a 2×3 matrix; Shape{2} a vector.
type Shape = tensor.Shape

// Dense is a fixed-shape numeric buffer with a flat row-major backing
// store and zero-copy typed views.
type Dense = tensor.Dense

// Backend is the compute kernel interface the expression graph evaluator
// dispatches to. See the cpu package for the pure-Go implementation.
type Backend = tensor.Backend

// NewDense creates a zero-filled tensor with the given shape and type.
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	return tensor.NewDense(shape, dtype)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, dtype DataType) *Dense {
	return tensor.Zeros(shape, dtype)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, dtype DataType) *Dense {
	return tensor.Ones(shape, dtype)
}

// Full creates a tensor with every element set to value.
func Full(shape Shape, value float64, dtype DataType) *Dense {
	return tensor.Full(shape, value, dtype)
}

// Scalar creates a single-element tensor of shape [1] holding value.
func Scalar(value float64, dtype DataType) *Dense {
	return tensor.Scalar(value, dtype)
}

// FromSlice creates a tensor from a Go slice; the slice length must match
// the shape's element count.
func FromSlice[T DType](data []T, shape Shape) (*Dense, error) {
	return tensor.FromSlice(data, shape)
}

// Randn creates a tensor with values drawn from N(0, 1).
func Randn(shape Shape, dtype DataType, rng *rand.Rand) *Dense {
	return tensor.Randn(shape, dtype, rng)
}

// Rand creates a tensor with values drawn from U(0, 1).
func Rand(shape Shape, dtype DataType, rng *rand.Rand) *Dense {
	return tensor.Rand(shape, dtype, rng)
}
