package graph

import (
	"fmt"
	"math"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// logLossEpsilon clamps predictions into [ε, 1-ε] so log never sees 0.
// Small enough to be invisible at float32 working precision.
const logLossEpsilon = 1e-7

// inferLogLoss requires scalar operands; the output is always scalar,
// which is exactly the invariant Backward needs of its root.
func inferLogLoss(args []*node) (tensor.Shape, error) {
	p, y := args[0], args[1]
	if !p.shape.IsScalar() {
		return nil, fmt.Errorf("%w: binary_log_loss prediction must be scalar, got %v",
			ErrShapeMismatch, p.shape)
	}
	if !y.shape.IsScalar() {
		return nil, fmt.Errorf("%w: binary_log_loss target must be scalar, got %v",
			ErrShapeMismatch, y.shape)
	}
	return tensor.Shape{1}, nil
}

func clampProb(p float64) float64 {
	return math.Min(math.Max(p, logLossEpsilon), 1-logLossEpsilon)
}

// forwardLogLoss computes -(y*log(p) + (1-y)*log(1-p)) with p clamped
// away from 0 and 1 (the documented policy for avoiding infinities).
func forwardLogLoss(b tensor.Backend, args []*tensor.Dense) *tensor.Dense {
	p := clampProb(args[0].At(0))
	y := args[1].At(0)
	loss := -(y*math.Log(p) + (1-y)*math.Log(1-p))
	return tensor.Full(tensor.Shape{1}, loss, args[0].DType())
}

// backwardLogLoss: with the clamped p,
//
//	dL/dp = (p - y) / (p * (1 - p))
//	dL/dy = log(1-p) - log(p)
//
// The target is usually an input leaf, whose gradient is discarded, but
// the rule is exact either way.
func backwardLogLoss(g *Graph, nd *node) {
	p := clampProb(g.arg(nd, 0).val.At(0))
	y := g.arg(nd, 1).val.At(0)
	outGrad := nd.grad.At(0)

	dp := outGrad * (p - y) / (p * (1 - p))
	dy := outGrad * (math.Log(1-p) - math.Log(p))

	dtype := nd.dtype
	g.accum(nd.args[0], tensor.Full(g.arg(nd, 0).shape, dp, dtype))
	g.accum(nd.args[1], tensor.Full(g.arg(nd, 1).shape, dy, dtype))
}
