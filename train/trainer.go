// SPDX-License-Identifier: MIT

package train

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/scalargrad/engine"
	"github.com/katalvlaran/scalargrad/nn"
)

// Option configures a Trainer.
type Option func(*Trainer)

// WithOnEpoch installs fn, called after every epoch with its index and loss.
func WithOnEpoch(fn func(epoch int, loss float64)) Option {
	return func(t *Trainer) { t.onEpoch = fn }
}

// WithInitializer overrides the model's weight initializer.
func WithInitializer(init nn.Initializer) Option {
	return func(t *Trainer) { t.init = init }
}

// Trainer owns a graph, a model and the encoded data set.
type Trainer struct {
	cfg     Config
	g       *engine.Graph
	model   *nn.MLP
	xs      [][]engine.Handle
	ys      []engine.Handle
	epoch   int
	onEpoch func(epoch int, loss float64)
	init    nn.Initializer
}

// New validates cfg, builds the model and encodes the samples as Input leaves.
func New(cfg *Config, opts ...Option) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &Trainer{cfg: *cfg, g: engine.NewGraph()}
	for _, opt := range opts {
		opt(t)
	}

	hidden, _ := nn.ParseActivation(cfg.HiddenActivation)
	out, _ := nn.ParseActivation(cfg.OutputActivation)
	mopts := []nn.Option{nn.WithSeed(cfg.Seed)}
	if t.init != nil {
		mopts = append(mopts, nn.WithInitializer(t.init))
	}
	model, err := nn.NewMLP(t.g, cfg.Inputs, cfg.Layers, hidden, out, mopts...)
	if err != nil {
		return nil, errors.Wrap(err, "train: build model")
	}
	t.model = model

	t.xs = make([][]engine.Handle, len(cfg.Samples))
	t.ys = make([]engine.Handle, len(cfg.Samples))
	for i, s := range cfg.Samples {
		t.xs[i] = make([]engine.Handle, len(s.X))
		for j, v := range s.X {
			t.xs[i][j] = t.g.Input(v)
		}
		t.ys[i] = t.g.Input(s.Y)
	}

	return t, nil
}

// Model returns the model being trained.
func (t *Trainer) Model() *nn.MLP { return t.model }

// Graph returns the graph owning the model and the data set.
func (t *Trainer) Graph() *engine.Graph { return t.g }

// Epoch returns the number of completed epochs.
func (t *Trainer) Epoch() int { return t.epoch }

// Step runs one epoch and returns the loss measured before the update.
func (t *Trainer) Step() (float64, error) {
	preds := make([]engine.Handle, len(t.xs))
	for i, x := range t.xs {
		out, err := t.model.Forward(x)
		if err != nil {
			return 0, errors.Wrapf(err, "train: sample %d", i)
		}
		preds[i] = out[0]
	}

	loss, err := L1Loss(t.g, preds, t.ys)
	if err != nil {
		return 0, err
	}
	if err = t.g.MarkOutput(loss); err != nil {
		return 0, err
	}
	if err = t.g.Backward(loss); err != nil {
		return 0, errors.Wrap(err, "train: backward")
	}
	value, err := t.g.Value(loss)
	if err != nil {
		return 0, err
	}
	if err = t.g.Release(loss); err != nil {
		return 0, err
	}
	// data leaves would otherwise accumulate gradient across epochs
	if err = t.resetData(); err != nil {
		return 0, err
	}
	if err = nn.SGD(t.g, t.model.Parameters(), t.cfg.LearningRate); err != nil {
		return 0, errors.Wrap(err, "train: update")
	}

	if t.onEpoch != nil {
		t.onEpoch(t.epoch, value)
	}
	t.epoch++

	return value, nil
}

func (t *Trainer) resetData() error {
	for i, x := range t.xs {
		for _, h := range x {
			if err := t.g.ResetGrad(h); err != nil {
				return err
			}
		}
		if err := t.g.ResetGrad(t.ys[i]); err != nil {
			return err
		}
	}

	return nil
}

// Run executes cfg.Epochs epochs and returns the loss of each.
func (t *Trainer) Run() ([]float64, error) {
	losses := make([]float64, 0, t.cfg.Epochs)
	for i := 0; i < t.cfg.Epochs; i++ {
		l, err := t.Step()
		if err != nil {
			return losses, errors.Wrapf(err, "train: epoch %d", t.epoch)
		}
		losses = append(losses, l)
	}

	return losses, nil
}

// Predict evaluates the model on x without touching any gradient. The
// evaluation graph is discarded before returning.
func (t *Trainer) Predict(x []float64) (float64, error) {
	in := make([]engine.Handle, len(x))
	for i, v := range x {
		in[i] = t.g.Input(v)
	}
	defer func() {
		for _, h := range in {
			_ = t.g.Release(h)
		}
	}()

	out, err := t.model.Forward(in)
	if err != nil {
		return 0, err
	}
	v, err := t.g.Value(out[0])
	if err != nil {
		return 0, err
	}
	if err = t.g.Discard(out[0]); err != nil {
		return 0, err
	}

	return v, nil
}
