// SPDX-License-Identifier: MIT

package nn

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/scalargrad/engine"
)

// MLP is a multilayer perceptron bound to one engine.Graph.
type MLP struct {
	g      *engine.Graph
	In     int
	Layers []*Layer
}

// NewMLP builds len(sizes) layers: nIn -> sizes[0] -> ... -> sizes[last].
// Hidden layers use hidden, the last layer uses out.
func NewMLP(g *engine.Graph, nIn int, sizes []int, hidden, out Activation, opts ...Option) (*MLP, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if nIn <= 0 {
		return nil, errors.Wrapf(ErrBadSize, "nn: %d inputs", nIn)
	}
	if len(sizes) == 0 {
		return nil, errors.Wrap(ErrBadSize, "nn: no layers")
	}
	for i, s := range sizes {
		if s <= 0 {
			return nil, errors.Wrapf(ErrBadSize, "nn: layer %d has %d neurons", i, s)
		}
	}

	o := resolve(opts)
	m := &MLP{g: g, In: nIn, Layers: make([]*Layer, len(sizes))}
	fanIn := nIn
	for i, s := range sizes {
		act := hidden
		if i == len(sizes)-1 {
			act = out
		}
		m.Layers[i] = newLayer(g, fanIn, s, act, o.Init)
		fanIn = s
	}

	return m, nil
}

// Graph returns the graph that owns the model's parameters.
func (m *MLP) Graph() *engine.Graph { return m.g }

// Out returns the width of the last layer.
func (m *MLP) Out() int { return m.Layers[len(m.Layers)-1].Out }

// Forward feeds x through every layer.
func (m *MLP) Forward(x []engine.Handle) ([]engine.Handle, error) {
	if len(x) != m.In {
		return nil, errors.Wrapf(ErrInputSize, "nn: mlp wants %d inputs, got %d", m.In, len(x))
	}
	h := x
	var err error
	for i, l := range m.Layers {
		if h, err = l.Forward(m.g, h); err != nil {
			return nil, errors.Wrapf(err, "nn: layer %d", i)
		}
	}

	return h, nil
}

// Parameters returns every parameter, layer by layer.
func (m *MLP) Parameters() []engine.Handle {
	out := make([]engine.Handle, 0, m.ParamCount())
	for _, l := range m.Layers {
		out = append(out, l.Parameters()...)
	}

	return out
}

// ParamCount returns the total number of parameters.
func (m *MLP) ParamCount() int {
	var n int
	for _, l := range m.Layers {
		n += l.ParamCount()
	}

	return n
}

// ZeroGrad resets the gradient of every parameter.
func (m *MLP) ZeroGrad() error {
	for _, p := range m.Parameters() {
		if err := m.g.ResetGrad(p); err != nil {
			return err
		}
	}

	return nil
}
