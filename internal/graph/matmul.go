package graph

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// inferMatMul validates [m,k] @ [k,n] -> [m,n] and the matrix-vector form
// [m,k] @ [k] -> [m]. The multiply fails iff the inner dimensions differ.
func inferMatMul(args []*node) (tensor.Shape, error) {
	a, b := args[0], args[1]
	if len(a.shape) != 2 {
		return nil, fmt.Errorf("%w: matmul left operand must be 2D, got %v",
			ErrShapeMismatch, a.shape)
	}
	switch len(b.shape) {
	case 1:
		if a.shape[1] != b.shape[0] {
			return nil, fmt.Errorf("%w: matmul %v @ %v (inner dimensions %d vs %d)",
				ErrShapeMismatch, a.shape, b.shape, a.shape[1], b.shape[0])
		}
		return tensor.Shape{a.shape[0]}, nil
	case 2:
		if a.shape[1] != b.shape[0] {
			return nil, fmt.Errorf("%w: matmul %v @ %v (inner dimensions %d vs %d)",
				ErrShapeMismatch, a.shape, b.shape, a.shape[1], b.shape[0])
		}
		return tensor.Shape{a.shape[0], b.shape[1]}, nil
	default:
		return nil, fmt.Errorf("%w: matmul right operand must be 1D or 2D, got %v",
			ErrShapeMismatch, b.shape)
	}
}

func forwardMatMul(b tensor.Backend, args []*tensor.Dense) *tensor.Dense {
	return b.MatMul(args[0], args[1])
}

// backwardMatMul: for C = A @ B,
//
//	dL/dA = dL/dC @ B^T
//	dL/dB = A^T @ dL/dC
//
// In the matrix-vector case y = A @ x the first rule degenerates to the
// outer product dL/dA = dL/dy ⊗ x.
func backwardMatMul(g *Graph, nd *node) {
	a, b := g.arg(nd, 0), g.arg(nd, 1)
	grad := nd.grad

	if len(b.shape) == 1 {
		g.accum(nd.args[0], outer(grad, b.val))
		g.accum(nd.args[1], g.backend.MatMul(g.backend.Transpose(a.val), grad))
		return
	}

	g.accum(nd.args[0], g.backend.MatMul(grad, g.backend.Transpose(b.val)))
	g.accum(nd.args[1], g.backend.MatMul(g.backend.Transpose(a.val), grad))
}

// outer computes the outer product u ⊗ v of two vectors as an [len(u), len(v)]
// matrix.
func outer(u, v *tensor.Dense) *tensor.Dense {
	m, n := u.Numel(), v.Numel()
	out, err := tensor.NewDense(tensor.Shape{m, n}, u.DType())
	if err != nil {
		panic(fmt.Sprintf("outer: %v", err))
	}
	for i := 0; i < m; i++ {
		ui := u.At(i)
		for j := 0; j < n; j++ {
			out.SetAt(i*n+j, ui*v.At(j))
		}
	}
	return out
}
