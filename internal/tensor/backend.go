package tensor

// Backend defines the kernel surface the expression graph evaluator
// dispatches to. Kernels assume operands were already validated by the
// caller (matching shapes and dtypes); violations are programming errors
// and panic.
//
// Implementations:
//   - cpu: pure Go kernels, gonum-backed float64 matmul
type Backend interface {
	// Element-wise binary operations. Operands share shape and dtype.
	Add(a, b *Dense) *Dense
	Sub(a, b *Dense) *Dense
	Mul(a, b *Dense) *Dense
	Div(a, b *Dense) *Dense

	// Scale multiplies every element by a scalar.
	Scale(x *Dense, s float64) *Dense

	// MatMul performs matrix multiplication:
	//   [m, k] @ [k, n] -> [m, n]
	//   [m, k] @ [k]    -> [m]      (matrix-vector)
	MatMul(a, b *Dense) *Dense

	// Transpose swaps the two axes of a 2D tensor.
	// A 1D tensor is returned unchanged (treated as a column vector).
	Transpose(t *Dense) *Dense

	// Element-wise math and activations.
	Exp(x *Dense) *Dense
	Log(x *Dense) *Dense
	Tanh(x *Dense) *Dense
	Sigmoid(x *Dense) *Dense
	ReLU(x *Dense) *Dense

	// Metadata
	Name() string
}
