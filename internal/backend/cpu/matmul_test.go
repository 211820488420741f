package cpu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradix-ml/gradix/internal/backend/cpu"
	"github.com/gradix-ml/gradix/internal/tensor"
)

func TestMatMul_2x2(t *testing.T) {
	b := cpu.New()
	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	c, _ := tensor.FromSlice([]float32{5, 6, 7, 8}, tensor.Shape{2, 2})
	out := b.MatMul(a, c)
	assert.Equal(t, tensor.Shape{2, 2}, out.Shape())
	assert.Equal(t, []float32{19, 22, 43, 50}, out.Float32s())
}

func TestMatMul_Rectangular(t *testing.T) {
	b := cpu.New()
	// [2,3] @ [3,2] -> [2,2]
	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	c, _ := tensor.FromSlice([]float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})
	out := b.MatMul(a, c)
	assert.Equal(t, tensor.Shape{2, 2}, out.Shape())
	assert.Equal(t, []float64{58, 64, 139, 154}, out.Float64s())
}

func TestMatMul_MatrixVector(t *testing.T) {
	b := cpu.New()
	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	x, _ := tensor.FromSlice([]float32{1, 0, -1}, tensor.Shape{3})
	out := b.MatMul(a, x)
	assert.Equal(t, tensor.Shape{2}, out.Shape())
	assert.Equal(t, []float32{-2, -2}, out.Float32s())
}

// The float64 path goes through gonum while float32 uses the loop kernel;
// both must agree on the same inputs.
func TestMatMul_KernelsAgree(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(3))

	m, k, n := 7, 5, 4
	a32 := tensor.Zeros(tensor.Shape{m, k}, tensor.Float32)
	c32 := tensor.Zeros(tensor.Shape{k, n}, tensor.Float32)
	a64 := tensor.Zeros(tensor.Shape{m, k}, tensor.Float64)
	c64 := tensor.Zeros(tensor.Shape{k, n}, tensor.Float64)
	for i := 0; i < m*k; i++ {
		v := rng.NormFloat64()
		a32.SetAt(i, v)
		a64.SetAt(i, v)
	}
	for i := 0; i < k*n; i++ {
		v := rng.NormFloat64()
		c32.SetAt(i, v)
		c64.SetAt(i, v)
	}

	out32 := b.MatMul(a32, c32)
	out64 := b.MatMul(a64, c64)
	require.Equal(t, out32.Numel(), out64.Numel())
	for i := 0; i < out32.Numel(); i++ {
		assert.InDelta(t, out64.At(i), out32.At(i), 1e-4)
	}
}

func TestMatMul_PanicsOnInnerMismatch(t *testing.T) {
	b := cpu.New()
	a := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float32)
	c := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float32)
	assert.Panics(t, func() { b.MatMul(a, c) })

	x := tensor.Zeros(tensor.Shape{2}, tensor.Float32)
	assert.Panics(t, func() { b.MatMul(a, x) })
}

func TestTranspose(t *testing.T) {
	b := cpu.New()
	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	out := b.Transpose(a)
	assert.Equal(t, tensor.Shape{3, 2}, out.Shape())
	assert.Equal(t, []float32{1, 4, 2, 5, 3, 6}, out.Float32s())

	v, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2})
	assert.Equal(t, []float32{1, 2}, b.Transpose(v).Float32s())
}
