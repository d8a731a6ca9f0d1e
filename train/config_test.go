// SPDX-License-Identifier: MIT

package train_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scalargrad/train"
)

// TestDefaultConfig is the reference run and must validate.
func TestDefaultConfig(t *testing.T) {
	cfg := train.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{5, 5, 1}, cfg.Layers)
	assert.Len(t, cfg.Samples, 4)
	assert.Equal(t, 20, cfg.Epochs)
}

// TestValidate lists one broken field per case.
func TestValidate(t *testing.T) {
	cases := map[string]func(c *train.Config){
		"no inputs":       func(c *train.Config) { c.Inputs = 0 },
		"no layers":       func(c *train.Config) { c.Layers = nil },
		"empty layer":     func(c *train.Config) { c.Layers = []int{5, 0, 1} },
		"wide output":     func(c *train.Config) { c.Layers = []int{5, 2} },
		"bad hidden":      func(c *train.Config) { c.HiddenActivation = "softsign" },
		"bad output":      func(c *train.Config) { c.OutputActivation = "softsign" },
		"zero rate":       func(c *train.Config) { c.LearningRate = 0 },
		"negative epochs": func(c *train.Config) { c.Epochs = -1 },
		"no samples":      func(c *train.Config) { c.Samples = nil },
		"short sample":    func(c *train.Config) { c.Samples[1].X = []float64{1} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := train.DefaultConfig()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), train.ErrInvalidConfig)
		})
	}

	var nilCfg *train.Config
	assert.ErrorIs(t, nilCfg.Validate(), train.ErrConfigNil)
}

// TestParseConfig_Partial keeps defaults for absent keys.
func TestParseConfig_Partial(t *testing.T) {
	cfg, err := train.ParseConfig([]byte("epochs: 5\nlearning_rate: 0.01\nhidden_activation: relu\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Epochs)
	assert.Equal(t, 0.01, cfg.LearningRate)
	assert.Equal(t, "relu", cfg.HiddenActivation)
	assert.Equal(t, 3, cfg.Inputs)
	assert.Len(t, cfg.Samples, 4)
}

// TestParseConfig_Full replaces the data set and the architecture.
func TestParseConfig_Full(t *testing.T) {
	doc := `
inputs: 2
layers: [3, 1]
hidden_activation: tanh
output_activation: tanh
learning_rate: 0.05
epochs: 100
seed: 9
samples:
  - {x: [0, 0], y: -1}
  - {x: [0, 1], y: 1}
  - {x: [1, 0], y: 1}
  - {x: [1, 1], y: -1}
`
	cfg, err := train.ParseConfig([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Inputs)
	assert.Equal(t, []int{3, 1}, cfg.Layers)
	assert.Equal(t, uint64(9), cfg.Seed)
	require.Len(t, cfg.Samples, 4)
	assert.Equal(t, train.Sample{X: []float64{1, 1}, Y: -1}, cfg.Samples[3])
}

// TestParseConfig_Errors covers decode and validation failures.
func TestParseConfig_Errors(t *testing.T) {
	_, err := train.ParseConfig([]byte("layers: [1, 2"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode config")

	_, err = train.ParseConfig([]byte("inputs: 2\n"))
	assert.ErrorIs(t, err, train.ErrInvalidConfig, "default samples have 3 features")
}

// TestLoadConfig reads a file written by Marshal.
func TestLoadConfig(t *testing.T) {
	want := train.DefaultConfig()
	want.Epochs = 7
	data, err := want.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	got, err := train.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = train.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
