package nn

import (
	"github.com/gradix-ml/gradix/internal/graph"
	"github.com/gradix-ml/gradix/internal/params"
)

// Sequential chains modules so each output feeds the next input.
type Sequential struct {
	modules []Module
}

// NewSequential creates a Sequential container over modules.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Add appends a module to the sequence.
func (s *Sequential) Add(m Module) {
	s.modules = append(s.modules, m)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Forward applies all modules in order.
func (s *Sequential) Forward(g *graph.Graph, in graph.Node) (graph.Node, error) {
	out := in
	var err error
	for _, m := range s.modules {
		out, err = m.Forward(g, out)
		if err != nil {
			return graph.Node{}, err
		}
	}
	return out, nil
}

// Parameters collects handles from all modules in order.
func (s *Sequential) Parameters() []params.Handle {
	var hs []params.Handle
	for _, m := range s.modules {
		hs = append(hs, m.Parameters()...)
	}
	return hs
}
