package graph

import (
	"github.com/gradix-ml/gradix/internal/params"
	"github.com/gradix-ml/gradix/internal/tensor"
)

// Node is an opaque handle to a node in an expression graph.
//
// A Node is only valid for the generation it was created in; using it
// after Reset fails with ErrStaleNode. The zero Node is not valid.
type Node struct {
	id  uint32
	gen uint32
}

// opKind tags the variant of a graph node. The set is closed: dispatch
// goes through opTable rather than interface virtual calls.
type opKind uint8

const (
	kindInput opKind = iota
	kindParam
	kindAdd
	kindSub
	kindMul
	kindMatMul
	kindTanh
	kindSigmoid
	kindReLU
	kindLogLoss

	kindCount
)

func (k opKind) String() string {
	return opTable[k].name
}

// node is the arena-resident representation. Operand references are arena
// indexes, which are strictly smaller than the node's own index: the arena
// is therefore already in topological order.
type node struct {
	kind  opKind
	args  []uint32
	shape tensor.Shape
	dtype tensor.DataType

	// handle is set for kindParam leaves only.
	handle params.Handle

	// val is the cached forward value, valid while stamp is no older than
	// every operand stamp. For kindInput it is the externally bound data;
	// for kindParam it aliases the store's live buffer.
	val   *tensor.Dense
	stamp uint64

	// grad is the gradient accumulator for the current backward pass.
	grad *tensor.Dense
}
