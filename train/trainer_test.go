// SPDX-License-Identifier: MIT

package train_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scalargrad/engine"
	"github.com/katalvlaran/scalargrad/nn"
	"github.com/katalvlaran/scalargrad/train"
)

// tinyConfig is one linear neuron fitted to a single sample (x=2, y=3).
func tinyConfig() *train.Config {
	return &train.Config{
		Inputs:           1,
		Layers:           []int{1},
		HiddenActivation: "tanh",
		OutputActivation: "linear",
		LearningRate:     0.1,
		Epochs:           2,
		Samples:          []train.Sample{{X: []float64{2}, Y: 3}},
	}
}

// TestL1Loss checks the value and the sign of each gradient.
func TestL1Loss(t *testing.T) {
	g := engine.NewGraph()
	preds := []engine.Handle{g.Param(0.5), g.Param(2)}
	targets := []engine.Handle{g.Input(1), g.Input(-1)}

	loss, err := train.L1Loss(g, preds, targets)
	require.NoError(t, err)
	v, _ := g.Value(loss)
	assert.Equal(t, 3.5, v)

	require.NoError(t, g.Backward(loss))
	g0, _ := g.Grad(preds[0])
	g1, _ := g.Grad(preds[1])
	assert.Equal(t, -1.0, g0)
	assert.Equal(t, 1.0, g1)

	_, err = train.L1Loss(g, preds, targets[:1])
	assert.ErrorIs(t, err, train.ErrLengthMismatch)
	_, err = train.L1Loss(g, nil, nil)
	assert.ErrorIs(t, err, train.ErrLengthMismatch)
}

// TestTrainer_StepByHand: pred = 0 + 0.5*2 = 1, loss = |3-1| = 2,
// dL/dw = -x = -2, dL/db = -1, so w -> 0.7 and b -> 0.1 at lr 0.1.
func TestTrainer_StepByHand(t *testing.T) {
	tr, err := train.New(tinyConfig(), train.WithInitializer(nn.Constant(0.5)))
	require.NoError(t, err)
	g := tr.Graph()
	n := tr.Model().Layers[0].Neurons[0]

	loss, err := tr.Step()
	require.NoError(t, err)
	assert.Equal(t, 2.0, loss)

	w, _ := g.Value(n.W[0])
	b, _ := g.Value(n.B)
	assert.InDelta(t, 0.7, w, 1e-12)
	assert.InDelta(t, 0.1, b, 1e-12)
	for _, p := range n.Parameters() {
		gr, _ := g.Grad(p)
		assert.Zero(t, gr)
	}
	assert.Equal(t, 4, g.Len(), "two parameters, one feature, one target")
	assert.Equal(t, 1, tr.Epoch())

	loss, err = tr.Step()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, loss, 1e-12)
}

// TestTrainer_Run trains the reference network with a larger learning rate
// and expects the loss to go down; the hook sees every epoch in order.
func TestTrainer_Run(t *testing.T) {
	cfg := train.DefaultConfig()
	cfg.LearningRate = 0.005
	cfg.Epochs = 40

	var epochs []int
	var hooked []float64
	tr, err := train.New(cfg, train.WithOnEpoch(func(epoch int, loss float64) {
		epochs = append(epochs, epoch)
		hooked = append(hooked, loss)
	}))
	require.NoError(t, err)
	live := tr.Graph().Len()

	losses, err := tr.Run()
	require.NoError(t, err)
	require.Len(t, losses, 40)
	assert.Equal(t, losses, hooked)
	assert.Equal(t, 0, epochs[0])
	assert.Equal(t, 39, epochs[39])
	assert.Less(t, losses[39], losses[0])
	assert.Equal(t, live, tr.Graph().Len(), "no node leaks across epochs")
}

// TestTrainer_Predict leaves the graph as it found it.
func TestTrainer_Predict(t *testing.T) {
	tr, err := train.New(tinyConfig(), train.WithInitializer(nn.Constant(0.5)))
	require.NoError(t, err)
	live := tr.Graph().Len()

	v, err := tr.Predict([]float64{2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, live, tr.Graph().Len())

	_, err = tr.Predict([]float64{1, 2})
	assert.ErrorIs(t, err, nn.ErrInputSize)
	assert.Equal(t, live, tr.Graph().Len())
}

// TestTrainer_New rejects bad configs.
func TestTrainer_New(t *testing.T) {
	_, err := train.New(nil)
	assert.ErrorIs(t, err, train.ErrConfigNil)

	cfg := tinyConfig()
	cfg.Layers = []int{2}
	_, err = train.New(cfg)
	assert.ErrorIs(t, err, train.ErrInvalidConfig)
}
