// SPDX-License-Identifier: MIT

package nn

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/scalargrad/engine"
)

// Layer is a row of neurons sharing the same inputs and activation.
type Layer struct {
	Neurons []*Neuron
	In, Out int
	Act     Activation
}

// NewLayer creates a layer of nOut neurons with nIn inputs each.
func NewLayer(g *engine.Graph, nIn, nOut int, act Activation, opts ...Option) (*Layer, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if nIn <= 0 || nOut <= 0 {
		return nil, errors.Wrapf(ErrBadSize, "nn: layer %dx%d", nIn, nOut)
	}

	return newLayer(g, nIn, nOut, act, resolve(opts).Init), nil
}

func newLayer(g *engine.Graph, nIn, nOut int, act Activation, init Initializer) *Layer {
	l := &Layer{Neurons: make([]*Neuron, nOut), In: nIn, Out: nOut, Act: act}
	for i := range l.Neurons {
		l.Neurons[i] = newNeuron(g, nIn, nOut, init)
	}

	return l
}

// Forward returns act(neuron_i(x)) for every neuron.
func (l *Layer) Forward(g *engine.Graph, x []engine.Handle) ([]engine.Handle, error) {
	out := make([]engine.Handle, len(l.Neurons))
	for i, n := range l.Neurons {
		z, err := n.Forward(g, x)
		if err != nil {
			return nil, errors.Wrapf(err, "nn: neuron %d", i)
		}
		if out[i], err = l.Act.apply(g, z); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Parameters returns every neuron's parameters, neuron by neuron.
func (l *Layer) Parameters() []engine.Handle {
	out := make([]engine.Handle, 0, l.ParamCount())
	for _, n := range l.Neurons {
		out = append(out, n.Parameters()...)
	}

	return out
}

// ParamCount is In*Out weights plus Out biases.
func (l *Layer) ParamCount() int { return l.In*l.Out + l.Out }
