package graph

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// Backward runs reverse-mode differentiation from root down to the leaves.
//
// The root's value must be scalar (one element); its gradient is seeded
// with 1.0. Nodes are visited in reverse arena order, which is a reverse
// topological order, so a node's gradient is fully accumulated before its
// own backward rule fires. A node feeding several consumers sums the
// incoming gradients.
//
// Gradients reaching parameter leaves are handed to the store's
// accumulator, supporting shared use of one parameter across multiple
// forward passes within a generation. Gradients reaching input leaves are
// discarded; inputs are not trainable.
func (g *Graph) Backward(root Node) error {
	if err := g.check(root); err != nil {
		return fmt.Errorf("backward: %w", err)
	}

	val, err := g.Evaluate(root)
	if err != nil {
		return fmt.Errorf("backward: %w", err)
	}
	if !val.Shape().IsScalar() {
		return fmt.Errorf("%w: root has shape %v (%d elements)",
			ErrNonScalarRoot, val.Shape(), val.Numel())
	}

	need := g.ancestors(root.id)
	for i := range need {
		g.nodes[i].grad = nil
	}
	g.nodes[root.id].grad = tensor.Ones(val.Shape(), val.DType())

	for i := int(root.id); i >= 0; i-- {
		if !need[i] {
			continue
		}
		nd := &g.nodes[i]
		if nd.grad == nil {
			// No gradient flowed here (disconnected from root).
			continue
		}
		switch nd.kind {
		case kindInput:
			// Inputs are not trainable.
		case kindParam:
			g.store.AccumulateGrad(nd.handle, nd.grad)
		default:
			opTable[nd.kind].backward(g, nd)
		}
	}

	return nil
}
