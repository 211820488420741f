package graph

import "errors"

// Error kinds reported by graph construction and evaluation.
// All are detected eagerly and wrapped with operation context via
// fmt.Errorf("%w: ...") so callers can match with errors.Is.
var (
	// ErrShapeMismatch indicates operand shapes incompatible for an
	// operation (e.g. matmul inner dimensions disagree).
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDTypeMismatch indicates operands with different element types.
	ErrDTypeMismatch = errors.New("dtype mismatch")

	// ErrNonScalarRoot indicates Backward was invoked on a node whose
	// value is not a single scalar.
	ErrNonScalarRoot = errors.New("backward root is not scalar")

	// ErrStaleNode indicates a Node handle from a prior generation was
	// used after Reset.
	ErrStaleNode = errors.New("stale node from prior graph generation")
)
