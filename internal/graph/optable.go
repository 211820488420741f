package graph

import (
	"github.com/gradix-ml/gradix/internal/tensor"
)

// opEntry is one row of the dispatch table: shape inference at
// construction time, forward kernel, and backward (local derivative) rule.
// The node type set is closed, so a table beats virtual dispatch here.
type opEntry struct {
	name string

	// infer validates operand shapes and returns the output shape.
	// nil for leaves, which carry their own shape.
	infer func(args []*node) (tensor.Shape, error)

	// forward computes the node value from operand values.
	forward func(b tensor.Backend, args []*tensor.Dense) *tensor.Dense

	// backward propagates nd.grad into operand gradients via g.accum.
	backward func(g *Graph, nd *node)
}

// opTable is indexed by opKind.
var opTable = [kindCount]opEntry{
	kindInput: {name: "input"},
	kindParam: {name: "param"},

	kindAdd:    {name: "add", infer: inferSameShape("add"), forward: forwardAdd, backward: backwardAdd},
	kindSub:    {name: "sub", infer: inferSameShape("sub"), forward: forwardSub, backward: backwardSub},
	kindMul:    {name: "mul", infer: inferSameShape("mul"), forward: forwardMul, backward: backwardMul},
	kindMatMul: {name: "matmul", infer: inferMatMul, forward: forwardMatMul, backward: backwardMatMul},

	kindTanh:    {name: "tanh", infer: inferUnary, forward: forwardTanh, backward: backwardTanh},
	kindSigmoid: {name: "sigmoid", infer: inferUnary, forward: forwardSigmoid, backward: backwardSigmoid},
	kindReLU:    {name: "relu", infer: inferUnary, forward: forwardReLU, backward: backwardReLU},

	kindLogLoss: {name: "binary_log_loss", infer: inferLogLoss, forward: forwardLogLoss, backward: backwardLogLoss},
}

// accum adds inc into the gradient accumulator of arena node idx. A node
// used as an operand in several places sums its incoming gradients.
func (g *Graph) accum(idx uint32, inc *tensor.Dense) {
	nd := &g.nodes[idx]
	if nd.grad == nil {
		// inc may be shared with other accumulators (e.g. the output
		// gradient itself for add), so take a copy.
		nd.grad = inc.Clone()
		return
	}
	nd.grad = g.backend.Add(nd.grad, inc)
}

// arg returns the arena node for operand i of nd.
func (g *Graph) arg(nd *node, i int) *node {
	return &g.nodes[nd.args[i]]
}
