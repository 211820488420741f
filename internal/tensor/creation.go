package tensor

import (
	"fmt"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, dtype DataType) *Dense {
	d, err := NewDense(shape, dtype)
	if err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return d
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, dtype DataType) *Dense {
	return Full(shape, 1.0, dtype)
}

// Full creates a tensor with every element set to value.
func Full(shape Shape, value float64, dtype DataType) *Dense {
	d := Zeros(shape, dtype)
	for i := 0; i < d.Numel(); i++ {
		d.SetAt(i, value)
	}
	return d
}

// Scalar creates a single-element tensor of shape [1] holding value.
func Scalar(value float64, dtype DataType) *Dense {
	return Full(Shape{1}, value, dtype)
}

// FromSlice creates a tensor from a Go slice. The slice length must equal
// the product of the shape dimensions. Data is copied.
func FromSlice[T DType](data []T, shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.Numel() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.Numel())
	}

	var dummy T
	d := Zeros(shape, inferDataType(dummy))
	for i, v := range data {
		d.SetAt(i, float64(v))
	}
	return d, nil
}

// Randn creates a tensor with values drawn from the standard normal
// distribution N(0, 1) using the provided source.
func Randn(shape Shape, dtype DataType, rng *rand.Rand) *Dense {
	d := Zeros(shape, dtype)
	for i := 0; i < d.Numel(); i++ {
		d.SetAt(i, rng.NormFloat64())
	}
	return d
}

// Rand creates a tensor with values drawn from the uniform distribution
// U(0, 1) using the provided source.
func Rand(shape Shape, dtype DataType, rng *rand.Rand) *Dense {
	d := Zeros(shape, dtype)
	for i := 0; i < d.Numel(); i++ {
		d.SetAt(i, rng.Float64())
	}
	return d
}
