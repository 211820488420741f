package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradix-ml/gradix/internal/backend/cpu"
	"github.com/gradix-ml/gradix/internal/graph"
	"github.com/gradix-ml/gradix/internal/nn"
	"github.com/gradix-ml/gradix/internal/params"
	"github.com/gradix-ml/gradix/internal/tensor"
)

func TestLinear_Shapes(t *testing.T) {
	store := params.NewStore(params.WithSeed(1))
	layer, err := nn.NewLinear(store, 3, 5)
	require.NoError(t, err)

	assert.Equal(t, 3, layer.InFeatures())
	assert.Equal(t, 5, layer.OutFeatures())
	assert.True(t, store.ValueOf(layer.Weight()).Shape().Equal(tensor.Shape{5, 3}))
	assert.True(t, store.ValueOf(layer.Bias()).Shape().Equal(tensor.Shape{5}))
	assert.Len(t, layer.Parameters(), 2)
}

func TestLinear_BiasStartsZero(t *testing.T) {
	store := params.NewStore(params.WithSeed(1))
	layer, err := nn.NewLinear(store, 2, 2)
	require.NoError(t, err)

	bias := store.ValueOf(layer.Bias())
	for i := 0; i < bias.Numel(); i++ {
		assert.Equal(t, 0.0, bias.At(i))
	}
}

func TestLinear_Forward(t *testing.T) {
	store := params.NewStore(params.WithSeed(1))
	layer, err := nn.NewLinear(store, 2, 2)
	require.NoError(t, err)

	// Pin the weights so the output is checkable by hand.
	w := store.ValueOf(layer.Weight())
	for i, v := range []float64{1, 2, 3, 4} {
		w.SetAt(i, v)
	}
	b := store.ValueOf(layer.Bias())
	b.SetAt(0, 10)
	b.SetAt(1, 20)

	g := graph.New(cpu.New(), store)
	xData, err := tensor.FromSlice([]float32{1, 1}, tensor.Shape{2})
	require.NoError(t, err)
	x := graph.Must(g.Input(xData))

	out, err := layer.Forward(g, x)
	require.NoError(t, err)

	val, err := g.Evaluate(out)
	require.NoError(t, err)
	assert.InDelta(t, 13.0, val.At(0), 1e-5) // 1+2+10
	assert.InDelta(t, 27.0, val.At(1), 1e-5) // 3+4+20
}

func TestSequential_ChainsAndCollects(t *testing.T) {
	store := params.NewStore(params.WithSeed(1))
	model := nn.NewSequential(
		nn.MustLinear(store, 2, 4),
		nn.Tanh{},
	)
	model.Add(nn.MustLinear(store, 4, 1))
	model.Add(nn.Sigmoid{})

	assert.Equal(t, 4, model.Len())
	assert.Len(t, model.Parameters(), 4)

	g := graph.New(cpu.New(), store)
	xData, err := tensor.FromSlice([]float32{0.5, -0.5}, tensor.Shape{2})
	require.NoError(t, err)
	x := graph.Must(g.Input(xData))

	out, err := model.Forward(g, x)
	require.NoError(t, err)

	val, err := g.Evaluate(out)
	require.NoError(t, err)
	require.Equal(t, 1, val.Numel())
	assert.Greater(t, val.At(0), 0.0)
	assert.Less(t, val.At(0), 1.0)
}
