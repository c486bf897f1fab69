package nn_test

import (
	"math"
	"testing"

	"github.com/born-ml/mikro/nn"
	"github.com/born-ml/mikro/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMLP_PublicSurface tests construction and the module contract through
// the exported API.
func TestMLP_PublicSurface(t *testing.T) {
	model := nn.NewMLP(2, []int{16, 16, 1})

	assert.Len(t, model.Parameters(), 337)
	assert.Contains(t, model.String(), "MLP of [")

	var _ nn.Module = model
	var _ nn.Module = nn.NewNeuron(2, nn.ReLU)
	var _ nn.Module = nn.NewLayer(2, 3, nn.Linear)
}

// TestTraining_LinearSVM trains a single linear neuron on four separable
// points with max-margin loss. Parameters are pinned to fixed values first,
// so the whole trajectory is deterministic.
func TestTraining_LinearSVM(t *testing.T) {
	model := nn.NewMLP(2, []int{1})
	params := model.Parameters()
	require.Len(t, params, 3)
	params[0].SetData(0.1)  // w0
	params[1].SetData(-0.2) // w1
	params[2].SetData(0)    // bias

	inputs := [][]float64{{2, 0}, {1.5, 0.5}, {-2, 0}, {-1.5, -0.5}}
	targets := []float64{1, 1, -1, -1}
	const alpha = 1e-4

	optimizer := optim.NewSGD(params, optim.SGDConfig{LR: 0.1})

	initial, _ := nn.MaxMarginLoss(model, inputs, targets, alpha)
	require.False(t, math.IsNaN(initial.Data()))

	var finalLoss, finalAccuracy float64
	for k := 0; k < 50; k++ {
		loss, accuracy := nn.MaxMarginLoss(model, inputs, targets, alpha)

		optimizer.ZeroGrad()
		loss.Backward()
		optimizer.Step()

		finalLoss, finalAccuracy = loss.Data(), accuracy
	}

	assert.Less(t, finalLoss, initial.Data())
	assert.Equal(t, 1.0, finalAccuracy)
}
