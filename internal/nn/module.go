// Package nn implements neural network building blocks on top of the
// expression graph: Linear layers, activations, and a Sequential
// container.
//
// A module owns parameter handles in a params.Store and knows how to
// extend an expression graph with its computation. Because graphs are
// rebuilt (or reused via Input/Set) per example while the store persists,
// a module can be applied to any number of graph generations.
//
//	model := nn.NewSequential(
//	    nn.MustLinear(store, 2, 8),
//	    nn.Tanh{},
//	    nn.MustLinear(store, 8, 1),
//	    nn.Sigmoid{},
//	)
//	out, err := model.Forward(g, x)
package nn

import (
	"github.com/gradix-ml/gradix/internal/graph"
	"github.com/gradix-ml/gradix/internal/params"
)

// Module is the base interface for network components.
type Module interface {
	// Forward extends g with this module's computation applied to in,
	// returning the output node. Shape errors surface here, at graph
	// construction time.
	Forward(g *graph.Graph, in graph.Node) (graph.Node, error)

	// Parameters returns the handles of all trainable parameters,
	// empty for parameterless modules such as activations.
	Parameters() []params.Handle
}
