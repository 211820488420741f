package graph

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// Evaluate computes the value of n, evaluating its ancestors leaf-to-root.
//
// The arena is appended in construction order, so operand indexes are
// always smaller than a node's own index: a single increasing sweep over
// the ancestor set is a topological evaluation. Values are memoized per
// generation; a node is recomputed only when an operand carries a newer
// stamp (after Set on an upstream input, or a parameter update). Repeated
// calls without such changes return the identical cached tensor.
func (g *Graph) Evaluate(n Node) (*tensor.Dense, error) {
	if err := g.check(n); err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	g.refreshParams()
	need := g.ancestors(n.id)

	for i := 0; i <= int(n.id); i++ {
		if !need[i] {
			continue
		}
		nd := &g.nodes[i]
		if nd.kind == kindInput || nd.kind == kindParam {
			continue
		}

		var newest uint64
		for _, a := range nd.args {
			if st := g.nodes[a].stamp; st > newest {
				newest = st
			}
		}
		if nd.val != nil && nd.stamp >= newest {
			continue
		}

		args := make([]*tensor.Dense, len(nd.args))
		for j, a := range nd.args {
			args[j] = g.nodes[a].val
		}
		nd.val = opTable[nd.kind].forward(g.backend, args)
		nd.stamp = newest
	}

	return g.nodes[n.id].val, nil
}

// Value returns the memoized value of n without forcing evaluation, or
// nil if the node has not been evaluated in its current state.
func (g *Graph) Value(n Node) *tensor.Dense {
	if g.check(n) != nil {
		return nil
	}
	return g.nodes[n.id].val
}

// refreshParams re-stamps parameter leaves when the store version moved,
// so values cached before an optimizer step are recomputed.
func (g *Graph) refreshParams() {
	v := g.store.Version()
	if v == g.storeSeen {
		return
	}
	g.storeSeen = v
	stamp := g.touch()
	for i := range g.nodes {
		if g.nodes[i].kind == kindParam {
			g.nodes[i].stamp = stamp
		}
	}
}

// ancestors marks the transitive operand closure of root, root included.
func (g *Graph) ancestors(root uint32) []bool {
	need := make([]bool, root+1)
	stack := []uint32{root}
	need[root] = true
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range g.nodes[i].args {
			if !need[a] {
				need[a] = true
				stack = append(stack, a)
			}
		}
	}
	return need
}
