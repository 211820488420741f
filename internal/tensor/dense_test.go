package tensor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradix-ml/gradix/internal/tensor"
)

func TestNewDense_BufferMatchesShape(t *testing.T) {
	d, err := tensor.NewDense(tensor.Shape{2, 3}, tensor.Float32)
	require.NoError(t, err)
	assert.Equal(t, 6, d.Numel())
	assert.Len(t, d.Data(), 6*4)
	assert.Len(t, d.Float32s(), 6)

	d64, err := tensor.NewDense(tensor.Shape{2, 3}, tensor.Float64)
	require.NoError(t, err)
	assert.Len(t, d64.Data(), 6*8)
	assert.Len(t, d64.Float64s(), 6)
}

func TestNewDense_InvalidShape(t *testing.T) {
	_, err := tensor.NewDense(tensor.Shape{2, 0}, tensor.Float32)
	assert.Error(t, err)
}

func TestDense_TypedViewPanicsOnWrongDType(t *testing.T) {
	d := tensor.Zeros(tensor.Shape{2}, tensor.Float32)
	assert.Panics(t, func() { d.Float64s() })
}

func TestFromSlice(t *testing.T) {
	d, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, d.DType())
	assert.Equal(t, []float32{1, 2, 3, 4}, d.Float32s())

	d64, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	require.NoError(t, err)
	assert.Equal(t, tensor.Float64, d64.DType())

	_, err = tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2})
	assert.Error(t, err, "length 3 does not fit shape [2 2]")
}

func TestDense_AtSetAt(t *testing.T) {
	for _, dtype := range []tensor.DataType{tensor.Float32, tensor.Float64} {
		d := tensor.Zeros(tensor.Shape{3}, dtype)
		d.SetAt(1, 2.5)
		assert.Equal(t, 2.5, d.At(1), dtype.String())
		assert.Equal(t, 0.0, d.At(0), dtype.String())
	}
}

func TestDense_CloneIsDeep(t *testing.T) {
	d, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2})
	c := d.Clone()
	c.SetAt(0, 9)
	assert.Equal(t, 1.0, d.At(0))
	assert.Equal(t, 9.0, c.At(0))
}

func TestDense_CopyFrom(t *testing.T) {
	dst := tensor.Zeros(tensor.Shape{2}, tensor.Float32)
	src, _ := tensor.FromSlice([]float32{3, 4}, tensor.Shape{2})
	require.NoError(t, dst.CopyFrom(src))
	assert.True(t, dst.Equal(src))

	bad := tensor.Zeros(tensor.Shape{3}, tensor.Float32)
	assert.Error(t, dst.CopyFrom(bad))
	bad64 := tensor.Zeros(tensor.Shape{2}, tensor.Float64)
	assert.Error(t, dst.CopyFrom(bad64))
}

func TestDense_Zero(t *testing.T) {
	d := tensor.Full(tensor.Shape{2, 2}, 7, tensor.Float64)
	d.Zero()
	for i := 0; i < d.Numel(); i++ {
		assert.Equal(t, 0.0, d.At(i))
	}
}

func TestCreation_FullOnesScalar(t *testing.T) {
	ones := tensor.Ones(tensor.Shape{2}, tensor.Float32)
	assert.Equal(t, []float32{1, 1}, ones.Float32s())

	full := tensor.Full(tensor.Shape{2}, 3.5, tensor.Float64)
	assert.Equal(t, []float64{3.5, 3.5}, full.Float64s())

	s := tensor.Scalar(0.25, tensor.Float32)
	assert.True(t, s.Shape().IsScalar())
	assert.Equal(t, 0.25, s.At(0))
}

func TestCreation_RandRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	u := tensor.Rand(tensor.Shape{100}, tensor.Float64, rng)
	for i := 0; i < u.Numel(); i++ {
		v := u.At(i)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}

	n := tensor.Randn(tensor.Shape{100}, tensor.Float64, rng)
	var mean float64
	for i := 0; i < n.Numel(); i++ {
		mean += n.At(i)
	}
	mean /= float64(n.Numel())
	assert.InDelta(t, 0.0, mean, 0.5)
}
