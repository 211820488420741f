package graph

import (
	"github.com/gradix-ml/gradix/internal/tensor"
)

// inferUnary passes the operand shape through unchanged.
func inferUnary(args []*node) (tensor.Shape, error) {
	return args[0].shape.Clone(), nil
}

func forwardTanh(b tensor.Backend, args []*tensor.Dense) *tensor.Dense {
	return b.Tanh(args[0])
}

// backwardTanh: d(tanh(x))/dx = 1 - tanh²(x), computed from the cached
// output rather than the input.
func backwardTanh(g *Graph, nd *node) {
	out := nd.val
	ones := tensor.Ones(out.Shape(), out.DType())
	deriv := g.backend.Sub(ones, g.backend.Mul(out, out))
	g.accum(nd.args[0], g.backend.Mul(nd.grad, deriv))
}

func forwardSigmoid(b tensor.Backend, args []*tensor.Dense) *tensor.Dense {
	return b.Sigmoid(args[0])
}

// backwardSigmoid: dσ/dx = σ(x) * (1 - σ(x)), using the cached output.
func backwardSigmoid(g *Graph, nd *node) {
	out := nd.val
	ones := tensor.Ones(out.Shape(), out.DType())
	deriv := g.backend.Mul(out, g.backend.Sub(ones, out))
	g.accum(nd.args[0], g.backend.Mul(nd.grad, deriv))
}

func forwardReLU(b tensor.Backend, args []*tensor.Dense) *tensor.Dense {
	return b.ReLU(args[0])
}

// backwardReLU: gradient passes where the input was positive, else zero.
func backwardReLU(g *Graph, nd *node) {
	in := g.arg(nd, 0).val
	inc := tensor.Zeros(in.Shape(), in.DType())
	for i := 0; i < in.Numel(); i++ {
		if in.At(i) > 0 {
			inc.SetAt(i, nd.grad.At(i))
		}
	}
	g.accum(nd.args[0], inc)
}
