package nn

import (
	"github.com/gradix-ml/gradix/internal/graph"
	"github.com/gradix-ml/gradix/internal/params"
)

// Tanh applies the element-wise hyperbolic tangent, squashing values to
// (-1, 1).
type Tanh struct{}

// Forward builds a tanh node.
func (Tanh) Forward(g *graph.Graph, in graph.Node) (graph.Node, error) {
	return g.Tanh(in)
}

// Parameters returns nil; activations are parameterless.
func (Tanh) Parameters() []params.Handle {
	return nil
}

// Sigmoid applies the element-wise logistic function, squashing values to
// (0, 1). Commonly the output layer for binary classification.
type Sigmoid struct{}

// Forward builds a sigmoid node.
func (Sigmoid) Forward(g *graph.Graph, in graph.Node) (graph.Node, error) {
	return g.Sigmoid(in)
}

// Parameters returns nil.
func (Sigmoid) Parameters() []params.Handle {
	return nil
}

// ReLU applies element-wise max(0, x).
type ReLU struct{}

// Forward builds a relu node.
func (ReLU) Forward(g *graph.Graph, in graph.Node) (graph.Node, error) {
	return g.ReLU(in)
}

// Parameters returns nil.
func (ReLU) Parameters() []params.Handle {
	return nil
}
