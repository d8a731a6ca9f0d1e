// SPDX-License-Identifier: MIT

package train

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/scalargrad/nn"
)

var (
	// ErrInvalidConfig wraps every validation failure of a Config.
	ErrInvalidConfig = errors.New("train: invalid config")

	// ErrConfigNil is returned when a nil *Config is passed in.
	ErrConfigNil = errors.New("train: config is nil")
)

// Sample is one labelled example.
type Sample struct {
	X []float64 `yaml:"x"`
	Y float64   `yaml:"y"`
}

// Config describes a model and a training run.
type Config struct {
	Inputs           int      `yaml:"inputs"`
	Layers           []int    `yaml:"layers"`
	HiddenActivation string   `yaml:"hidden_activation"`
	OutputActivation string   `yaml:"output_activation"`
	LearningRate     float64  `yaml:"learning_rate"`
	Epochs           int      `yaml:"epochs"`
	Seed             uint64   `yaml:"seed"`
	Samples          []Sample `yaml:"samples"`
}

// DefaultConfig returns the reference run: a 3-5-5-1 tanh network trained for
// 20 epochs at learning rate 1e-4 on four samples with targets ±1.
func DefaultConfig() *Config {
	return &Config{
		Inputs:           3,
		Layers:           []int{5, 5, 1},
		HiddenActivation: "tanh",
		OutputActivation: "linear",
		LearningRate:     1e-4,
		Epochs:           20,
		Seed:             1,
		Samples: []Sample{
			{X: []float64{-0.07708825, 1.09136604, -1.47771791}, Y: 1},
			{X: []float64{0.46909754, 1.45333126, 0.21135764}, Y: -1},
			{X: []float64{0.46909754, 1.45333126, 0.21135764}, Y: -1},
			{X: []float64{1.78757578, -0.87620064, 0.48024694}, Y: 1},
		},
	}
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
// Keys absent from data keep their default value; a samples list replaces the
// default one entirely.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "train: decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "train: read %s", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "train: %s", path)
	}

	return cfg, nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports the first inconsistency in c, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigNil
	}
	if c.Inputs <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "train: inputs = %d", c.Inputs)
	}
	if len(c.Layers) == 0 {
		return errors.Wrap(ErrInvalidConfig, "train: no layers")
	}
	for i, n := range c.Layers {
		if n <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "train: layer %d has %d neurons", i, n)
		}
	}
	if last := c.Layers[len(c.Layers)-1]; last != 1 {
		return errors.Wrapf(ErrInvalidConfig, "train: output layer has %d neurons, want 1", last)
	}
	if _, err := nn.ParseActivation(c.HiddenActivation); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "train: hidden_activation: %v", err)
	}
	if _, err := nn.ParseActivation(c.OutputActivation); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "train: output_activation: %v", err)
	}
	if !(c.LearningRate > 0) {
		return errors.Wrapf(ErrInvalidConfig, "train: learning_rate = %g", c.LearningRate)
	}
	if c.Epochs < 0 {
		return errors.Wrapf(ErrInvalidConfig, "train: epochs = %d", c.Epochs)
	}
	if len(c.Samples) == 0 {
		return errors.Wrap(ErrInvalidConfig, "train: no samples")
	}
	for i, s := range c.Samples {
		if len(s.X) != c.Inputs {
			return errors.Wrapf(ErrInvalidConfig, "train: sample %d has %d features, want %d", i, len(s.X), c.Inputs)
		}
	}

	return nil
}
