// Package graph implements the expression graph at the heart of the
// gradix engine: a DAG of deferred tensor operations, rebuilt cheaply per
// training example, with memoized forward evaluation and reverse-mode
// differentiation.
//
// The graph is an explicitly passed object; there is no implicit global
// current graph. Nodes live in an arena tagged with a generation counter:
// Reset bumps the generation and reuses the arena, so tearing down one
// example's graph and building the next is O(1) plus construction.
//
// Usage:
//
//	store := params.NewStore()
//	w, _ := store.Declare(tensor.Shape{8, 2})
//	g := graph.New(cpu.New(), store)
//
//	x, _ := g.Input(xData)
//	h := graph.Must(g.Tanh(graph.Must(g.MatMul(graph.Must(g.Param(w)), x))))
//	loss := ...
//	g.Evaluate(loss)
//	g.Backward(loss)
//
// A Graph is single-threaded: forward and backward are ordinary traversals
// with no locking, and the bound Store must not be mutated concurrently.
package graph

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/params"
	"github.com/gradix-ml/gradix/internal/tensor"
)

// Graph is an arena of expression nodes bound to a compute backend and a
// parameter store.
type Graph struct {
	backend tensor.Backend
	store   *params.Store

	nodes []node
	gen   uint32

	// clock is a monotonic stamp source; Set and parameter updates bump
	// it so memoized forward values downstream are recomputed.
	clock     uint64
	storeSeen uint64
}

// New creates an empty graph bound to backend and store.
func New(backend tensor.Backend, store *params.Store) *Graph {
	return &Graph{
		backend:   backend,
		store:     store,
		storeSeen: store.Version(),
	}
}

// Backend returns the bound compute backend.
func (g *Graph) Backend() tensor.Backend {
	return g.backend
}

// Store returns the bound parameter store.
func (g *Graph) Store() *params.Store {
	return g.store
}

// Len returns the number of nodes in the current generation.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Reset starts a new generation. All nodes and cached values from the
// prior generation are invalidated; the arena's backing storage is reused.
func (g *Graph) Reset() {
	for i := range g.nodes {
		g.nodes[i] = node{}
	}
	g.nodes = g.nodes[:0]
	g.gen++
}

// check validates that a node handle belongs to the current generation.
func (g *Graph) check(n Node) error {
	if n.gen != g.gen || int(n.id) >= len(g.nodes) {
		return fmt.Errorf("%w: node %d from generation %d used in generation %d",
			ErrStaleNode, n.id, n.gen, g.gen)
	}
	return nil
}

// touch advances the clock and returns the new stamp.
func (g *Graph) touch() uint64 {
	g.clock++
	return g.clock
}

// push appends a node to the arena and returns its handle.
func (g *Graph) push(nd node) Node {
	g.nodes = append(g.nodes, nd)
	return Node{id: uint32(len(g.nodes) - 1), gen: g.gen}
}

// Input creates a leaf bound to externally supplied data. The leaf's value
// can later be replaced with Set without rebuilding downstream structure
// (the static-network reuse pattern). The graph holds a reference to data;
// mutate it only through Set so dependents are invalidated.
func (g *Graph) Input(data *tensor.Dense) (Node, error) {
	if data == nil {
		return Node{}, fmt.Errorf("input: nil data")
	}
	return g.push(node{
		kind:  kindInput,
		shape: data.Shape().Clone(),
		dtype: data.DType(),
		val:   data,
		stamp: g.touch(),
	}), nil
}

// Set rebinds an Input leaf to new data of the same shape and dtype,
// invalidating memoized values of all dependents.
func (g *Graph) Set(n Node, data *tensor.Dense) error {
	if err := g.check(n); err != nil {
		return fmt.Errorf("set: %w", err)
	}
	nd := &g.nodes[n.id]
	if nd.kind != kindInput {
		return fmt.Errorf("set: node %d is %s, not an input leaf", n.id, nd.kind)
	}
	if data == nil {
		return fmt.Errorf("set: nil data")
	}
	if !data.Shape().Equal(nd.shape) {
		return fmt.Errorf("%w: set expects shape %v, got %v", ErrShapeMismatch, nd.shape, data.Shape())
	}
	if data.DType() != nd.dtype {
		return fmt.Errorf("%w: set expects %s, got %s", ErrDTypeMismatch, nd.dtype, data.DType())
	}
	nd.val = data
	nd.stamp = g.touch()
	return nil
}

// Param creates a leaf that reads live from the parameter store. The
// leaf's value follows optimizer updates without rebuilding the graph.
func (g *Graph) Param(h params.Handle) (Node, error) {
	value := g.store.ValueOf(h)
	return g.push(node{
		kind:   kindParam,
		shape:  value.Shape().Clone(),
		dtype:  value.DType(),
		handle: h,
		val:    value,
		stamp:  g.touch(),
	}), nil
}

// newOp validates operands against the op's shape rule and appends a
// composite node. Shape and dtype errors are reported eagerly, at
// construction time.
func (g *Graph) newOp(kind opKind, args ...Node) (Node, error) {
	entry := opTable[kind]
	operands := make([]*node, len(args))
	idxs := make([]uint32, len(args))
	for i, a := range args {
		if err := g.check(a); err != nil {
			return Node{}, fmt.Errorf("%s: %w", entry.name, err)
		}
		operands[i] = &g.nodes[a.id]
		idxs[i] = a.id
	}

	dtype := operands[0].dtype
	for _, op := range operands[1:] {
		if op.dtype != dtype {
			return Node{}, fmt.Errorf("%w: %s operands are %s and %s",
				ErrDTypeMismatch, entry.name, dtype, op.dtype)
		}
	}

	shape, err := entry.infer(operands)
	if err != nil {
		return Node{}, err
	}

	return g.push(node{
		kind:  kind,
		args:  idxs,
		shape: shape,
		dtype: dtype,
	}), nil
}

// Add creates an element-wise addition node. Operand shapes must match.
func (g *Graph) Add(a, b Node) (Node, error) {
	return g.newOp(kindAdd, a, b)
}

// Sub creates an element-wise subtraction node.
func (g *Graph) Sub(a, b Node) (Node, error) {
	return g.newOp(kindSub, a, b)
}

// Mul creates an element-wise (Hadamard) multiplication node.
func (g *Graph) Mul(a, b Node) (Node, error) {
	return g.newOp(kindMul, a, b)
}

// MatMul creates a matrix multiplication node:
// [m,k] @ [k,n] -> [m,n], or [m,k] @ [k] -> [m].
func (g *Graph) MatMul(a, b Node) (Node, error) {
	return g.newOp(kindMatMul, a, b)
}

// Tanh creates an element-wise hyperbolic tangent node.
func (g *Graph) Tanh(x Node) (Node, error) {
	return g.newOp(kindTanh, x)
}

// Sigmoid creates an element-wise logistic sigmoid node.
func (g *Graph) Sigmoid(x Node) (Node, error) {
	return g.newOp(kindSigmoid, x)
}

// ReLU creates an element-wise max(0, x) node.
func (g *Graph) ReLU(x Node) (Node, error) {
	return g.newOp(kindReLU, x)
}

// BinaryLogLoss creates a binary cross-entropy node over a scalar
// prediction p and scalar target y:
//
//	loss = -(y*log(p) + (1-y)*log(1-p))
//
// p is clamped away from 0 and 1 (documented policy) so the loss stays
// finite. The output is always scalar, making it a valid Backward root.
func (g *Graph) BinaryLogLoss(p, y Node) (Node, error) {
	return g.newOp(kindLogLoss, p, y)
}

// Must unwraps a (Node, error) pair, panicking on error. It keeps model
// construction readable when shapes are known correct by design.
func Must(n Node, err error) Node {
	if err != nil {
		panic(err)
	}
	return n
}
