package graph

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// inferSameShape builds the shape rule for element-wise binary ops:
// both operands must agree exactly.
func inferSameShape(name string) func(args []*node) (tensor.Shape, error) {
	return func(args []*node) (tensor.Shape, error) {
		a, b := args[0], args[1]
		if !a.shape.Equal(b.shape) {
			return nil, fmt.Errorf("%w: %s operands have shapes %v and %v",
				ErrShapeMismatch, name, a.shape, b.shape)
		}
		return a.shape.Clone(), nil
	}
}

func forwardAdd(b tensor.Backend, args []*tensor.Dense) *tensor.Dense {
	return b.Add(args[0], args[1])
}

// backwardAdd: d(a+b)/da = 1, d(a+b)/db = 1, so the output gradient flows
// unchanged to both operands.
func backwardAdd(g *Graph, nd *node) {
	g.accum(nd.args[0], nd.grad)
	g.accum(nd.args[1], nd.grad)
}

func forwardSub(b tensor.Backend, args []*tensor.Dense) *tensor.Dense {
	return b.Sub(args[0], args[1])
}

func backwardSub(g *Graph, nd *node) {
	g.accum(nd.args[0], nd.grad)
	g.accum(nd.args[1], g.backend.Scale(nd.grad, -1))
}

func forwardMul(b tensor.Backend, args []*tensor.Dense) *tensor.Dense {
	return b.Mul(args[0], args[1])
}

// backwardMul: d(a*b)/da = b, d(a*b)/db = a.
func backwardMul(g *Graph, nd *node) {
	a, b := g.arg(nd, 0), g.arg(nd, 1)
	g.accum(nd.args[0], g.backend.Mul(nd.grad, b.val))
	g.accum(nd.args[1], g.backend.Mul(nd.grad, a.val))
}
