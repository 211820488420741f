package nn

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/graph"
	"github.com/gradix-ml/gradix/internal/params"
	"github.com/gradix-ml/gradix/internal/tensor"
)

// Linear is a fully connected layer over column vectors:
//
//	y = W @ x + b
//
// with W of shape [out, in], x of shape [in], b and y of shape [out].
// Weights use Xavier initialization, biases start at zero.
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      params.Handle
	bias        params.Handle
}

// NewLinear declares weight and bias parameters in store and returns the
// layer.
func NewLinear(store *params.Store, inFeatures, outFeatures int) (*Linear, error) {
	weight, err := store.Declare(tensor.Shape{outFeatures, inFeatures},
		params.WithName(fmt.Sprintf("linear_%dx%d.weight", outFeatures, inFeatures)),
		params.WithInit(params.Xavier()))
	if err != nil {
		return nil, fmt.Errorf("linear: %w", err)
	}
	bias, err := store.Declare(tensor.Shape{outFeatures},
		params.WithName(fmt.Sprintf("linear_%dx%d.bias", outFeatures, inFeatures)),
		params.WithInit(params.Zeros()))
	if err != nil {
		return nil, fmt.Errorf("linear: %w", err)
	}
	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
	}, nil
}

// MustLinear is NewLinear panicking on error, for model literals.
func MustLinear(store *params.Store, inFeatures, outFeatures int) *Linear {
	l, err := NewLinear(store, inFeatures, outFeatures)
	if err != nil {
		panic(err)
	}
	return l
}

// Forward builds W @ x + b into g.
func (l *Linear) Forward(g *graph.Graph, in graph.Node) (graph.Node, error) {
	w, err := g.Param(l.weight)
	if err != nil {
		return graph.Node{}, err
	}
	b, err := g.Param(l.bias)
	if err != nil {
		return graph.Node{}, err
	}
	wx, err := g.MatMul(w, in)
	if err != nil {
		return graph.Node{}, err
	}
	return g.Add(wx, b)
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []params.Handle {
	return []params.Handle{l.weight, l.bias}
}

// Weight returns the weight parameter handle.
func (l *Linear) Weight() params.Handle {
	return l.weight
}

// Bias returns the bias parameter handle.
func (l *Linear) Bias() params.Handle {
	return l.bias
}

// InFeatures returns the input width.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output width.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
