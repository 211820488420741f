// Package cpu implements the tensor.Backend interface with pure Go kernels.
//
// Kernels dispatch on the runtime dtype (float32/float64) and assume the
// caller validated operand shapes; mismatches are programming errors and
// panic. Shape and dtype validation belongs to the graph layer.
package cpu

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// Backend is the CPU compute backend.
type Backend struct{}

// New creates a new CPU backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend name.
func (c *Backend) Name() string {
	return "CPU"
}

// newResult allocates an output tensor matching shape and dtype.
func newResult(shape tensor.Shape, dtype tensor.DataType) *tensor.Dense {
	out, err := tensor.NewDense(shape, dtype)
	if err != nil {
		panic(fmt.Sprintf("cpu: failed to allocate result: %v", err))
	}
	return out
}

// checkSameShape panics unless a and b agree on shape and dtype.
func checkSameShape(op string, a, b *tensor.Dense) {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType()))
	}
}

// binaryOp applies fn element-wise over two same-shaped operands.
func binaryOp(op string, a, b *tensor.Dense, fn func(x, y float64) float64) *tensor.Dense {
	checkSameShape(op, a, b)
	out := newResult(a.Shape(), a.DType())

	switch a.DType() {
	case tensor.Float32:
		ad, bd, od := a.Float32s(), b.Float32s(), out.Float32s()
		for i := range ad {
			od[i] = float32(fn(float64(ad[i]), float64(bd[i])))
		}
	case tensor.Float64:
		ad, bd, od := a.Float64s(), b.Float64s(), out.Float64s()
		for i := range ad {
			od[i] = fn(ad[i], bd[i])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}
	return out
}

// unaryOp applies fn element-wise over one operand.
func unaryOp(op string, x *tensor.Dense, fn func(v float64) float64) *tensor.Dense {
	out := newResult(x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		xd, od := x.Float32s(), out.Float32s()
		for i := range xd {
			od[i] = float32(fn(float64(xd[i])))
		}
	case tensor.Float64:
		xd, od := x.Float64s(), out.Float64s()
		for i := range xd {
			od[i] = fn(xd[i])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}
	return out
}

// Add performs element-wise addition.
func (c *Backend) Add(a, b *tensor.Dense) *tensor.Dense {
	return binaryOp("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction.
func (c *Backend) Sub(a, b *tensor.Dense) *tensor.Dense {
	return binaryOp("sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication.
func (c *Backend) Mul(a, b *tensor.Dense) *tensor.Dense {
	return binaryOp("mul", a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division.
func (c *Backend) Div(a, b *tensor.Dense) *tensor.Dense {
	return binaryOp("div", a, b, func(x, y float64) float64 { return x / y })
}

// Scale multiplies every element by a scalar.
func (c *Backend) Scale(x *tensor.Dense, s float64) *tensor.Dense {
	return unaryOp("scale", x, func(v float64) float64 { return v * s })
}
