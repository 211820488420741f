package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradix-ml/gradix/internal/backend/cpu"
	"github.com/gradix-ml/gradix/internal/graph"
	"github.com/gradix-ml/gradix/internal/nn"
	"github.com/gradix-ml/gradix/internal/optim"
	"github.com/gradix-ml/gradix/internal/params"
	"github.com/gradix-ml/gradix/internal/tensor"
)

var xorPairs = [4]struct {
	x1, x2, y float64
}{
	{0, 0, 0},
	{0, 1, 1},
	{1, 0, 1},
	{1, 1, 0},
}

func xorModel(store *params.Store, hidden int) *nn.Sequential {
	return nn.NewSequential(
		nn.MustLinear(store, 2, hidden),
		nn.Tanh{},
		nn.MustLinear(store, hidden, 1),
		nn.Sigmoid{},
	)
}

func xorPredict(t *testing.T, store *params.Store, model nn.Module, x1, x2 float64) float64 {
	t.Helper()
	g := graph.New(cpu.New(), store)
	xData, err := tensor.FromSlice([]float32{float32(x1), float32(x2)}, tensor.Shape{2})
	require.NoError(t, err)
	out, err := model.Forward(g, graph.Must(g.Input(xData)))
	require.NoError(t, err)
	val, err := g.Evaluate(out)
	require.NoError(t, err)
	return val.At(0)
}

// A 2-8-1 network driven by plain SGD must learn XOR: the classic check
// that gradients flow correctly through matmul, tanh, sigmoid and the log
// loss all at once.
func TestXOR_Convergence(t *testing.T) {
	store := params.NewStore(params.WithSeed(42))
	model := xorModel(store, 8)
	trainer := optim.NewSGD(store, optim.SGDConfig{LR: 0.5})

	g := graph.New(cpu.New(), store)
	x := graph.Must(g.Input(tensor.Zeros(tensor.Shape{2}, tensor.Float32)))
	y := graph.Must(g.Input(tensor.Zeros(tensor.Shape{1}, tensor.Float32)))
	out, err := model.Forward(g, x)
	require.NoError(t, err)
	loss := graph.Must(g.BinaryLogLoss(out, y))

	var finalLoss float64
	for epoch := 0; epoch < 2000; epoch++ {
		finalLoss = 0
		for _, pair := range xorPairs {
			xData, err := tensor.FromSlice([]float32{float32(pair.x1), float32(pair.x2)}, tensor.Shape{2})
			require.NoError(t, err)
			require.NoError(t, g.Set(x, xData))
			require.NoError(t, g.Set(y, tensor.Scalar(pair.y, tensor.Float32)))

			lossVal, err := g.Evaluate(loss)
			require.NoError(t, err)
			finalLoss += lossVal.At(0)

			require.NoError(t, g.Backward(loss))
			trainer.Step()
		}
	}

	assert.Less(t, finalLoss/4, 0.1, "average loss after training")
	assert.Greater(t, xorPredict(t, store, model, 0, 1), 0.9)
	assert.Greater(t, xorPredict(t, store, model, 1, 0), 0.9)
	assert.Less(t, xorPredict(t, store, model, 0, 0), 0.1)
	assert.Less(t, xorPredict(t, store, model, 1, 1), 0.1)
}

// Rebuilding the graph per example through Reset must train just as well
// as rebinding inputs on a static graph.
func TestXOR_ConvergenceDynamicGraph(t *testing.T) {
	store := params.NewStore(params.WithSeed(42))
	model := xorModel(store, 8)
	trainer := optim.NewSGD(store, optim.SGDConfig{LR: 0.5})

	g := graph.New(cpu.New(), store)
	for epoch := 0; epoch < 2000; epoch++ {
		for _, pair := range xorPairs {
			g.Reset()

			xData, err := tensor.FromSlice([]float32{float32(pair.x1), float32(pair.x2)}, tensor.Shape{2})
			require.NoError(t, err)
			x := graph.Must(g.Input(xData))
			y := graph.Must(g.Input(tensor.Scalar(pair.y, tensor.Float32)))

			out, err := model.Forward(g, x)
			require.NoError(t, err)
			loss := graph.Must(g.BinaryLogLoss(out, y))

			require.NoError(t, g.Backward(loss))
			trainer.Step()
		}
	}

	assert.Greater(t, xorPredict(t, store, model, 0, 1), 0.9)
	assert.Greater(t, xorPredict(t, store, model, 1, 0), 0.9)
	assert.Less(t, xorPredict(t, store, model, 0, 0), 0.1)
	assert.Less(t, xorPredict(t, store, model, 1, 1), 0.1)
}
