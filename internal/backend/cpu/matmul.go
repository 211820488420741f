package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// MatMul performs matrix multiplication.
//
//	[m, k] @ [k, n] -> [m, n]
//	[m, k] @ [k]    -> [m]   (matrix-vector)
//
// The float64 path delegates to gonum's mat.Dense, which wraps tuned BLAS
// routines. The float32 path uses a loop kernel ordered i-k-j so the inner
// loop walks both operands sequentially.
func (c *Backend) MatMul(a, b *tensor.Dense) *tensor.Dense {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 {
		panic(fmt.Sprintf("matmul: left operand must be 2D, got %dD", len(aShape)))
	}
	if len(bShape) != 1 && len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: right operand must be 1D or 2D, got %dD", len(bShape)))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("matmul: dtype mismatch %s vs %s", a.DType(), b.DType()))
	}

	m, k := aShape[0], aShape[1]
	n := 1
	outShape := tensor.Shape{m}
	if len(bShape) == 2 {
		n = bShape[1]
		outShape = tensor.Shape{m, n}
	}
	if bShape[0] != k {
		panic(fmt.Sprintf("matmul: shape mismatch %v @ %v", aShape, bShape))
	}

	result := newResult(outShape, a.DType())

	switch a.DType() {
	case tensor.Float32:
		matmulFloat32(result.Float32s(), a.Float32s(), b.Float32s(), m, k, n)
	case tensor.Float64:
		ga := mat.NewDense(m, k, a.Float64s())
		gb := mat.NewDense(k, n, b.Float64s())
		gc := mat.NewDense(m, n, result.Float64s())
		gc.Mul(ga, gb)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// matmulFloat32 computes C[i,j] = sum_k A[i,k] * B[k,j].
func matmulFloat32(c, a, b []float32, m, k, n int) {
	for i := 0; i < m; i++ {
		ci := c[i*n : (i+1)*n]
		for p := 0; p < k; p++ {
			aip := a[i*k+p]
			if aip == 0 {
				continue
			}
			bp := b[p*n : (p+1)*n]
			for j := range ci {
				ci[j] += aip * bp[j]
			}
		}
	}
}

// Transpose swaps the two axes of a 2D tensor.
// A 1D tensor is returned as a copy (a column vector transposes to itself
// as far as the stored buffer is concerned).
func (c *Backend) Transpose(t *tensor.Dense) *tensor.Dense {
	shape := t.Shape()
	switch len(shape) {
	case 1:
		return t.Clone()
	case 2:
		rows, cols := shape[0], shape[1]
		out := newResult(tensor.Shape{cols, rows}, t.DType())
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				out.SetAt(j*rows+i, t.At(i*cols+j))
			}
		}
		return out
	default:
		panic(fmt.Sprintf("transpose: only 1D/2D tensors supported, got %dD", len(shape)))
	}
}
