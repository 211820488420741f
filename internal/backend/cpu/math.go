package cpu

import (
	"fmt"
	"math"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// Exp computes element-wise e^x.
func (c *Backend) Exp(x *tensor.Dense) *tensor.Dense {
	return unaryOp("exp", x, math.Exp)
}

// Log computes the element-wise natural logarithm.
// Non-positive inputs are a contract violation: callers that need
// clamping (e.g. log-loss) must clamp before dispatching here.
func (c *Backend) Log(x *tensor.Dense) *tensor.Dense {
	switch x.DType() {
	case tensor.Float32, tensor.Float64:
		for i := 0; i < x.Numel(); i++ {
			if x.At(i) <= 0 {
				panic(fmt.Sprintf("log: non-positive value at index %d: %g", i, x.At(i)))
			}
		}
	default:
		panic(fmt.Sprintf("log: unsupported dtype %s", x.DType()))
	}
	return unaryOp("log", x, math.Log)
}

// Tanh computes the element-wise hyperbolic tangent.
func (c *Backend) Tanh(x *tensor.Dense) *tensor.Dense {
	return unaryOp("tanh", x, math.Tanh)
}

// Sigmoid computes the element-wise logistic function 1 / (1 + exp(-x)).
func (c *Backend) Sigmoid(x *tensor.Dense) *tensor.Dense {
	return unaryOp("sigmoid", x, func(v float64) float64 {
		return 1.0 / (1.0 + math.Exp(-v))
	})
}

// ReLU computes element-wise max(0, x).
func (c *Backend) ReLU(x *tensor.Dense) *tensor.Dense {
	return unaryOp("relu", x, func(v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	})
}
