// SPDX-License-Identifier: MIT

package nn

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/scalargrad/engine"
)

// Neuron is an affine unit: w·x + b.
type Neuron struct {
	W []engine.Handle // one Parameter per input
	B engine.Handle   // bias Parameter
}

// newNeuron allocates nIn weights drawn from init and a zero bias.
func newNeuron(g *engine.Graph, nIn, nOut int, init Initializer) *Neuron {
	n := &Neuron{W: make([]engine.Handle, nIn)}
	for i := range n.W {
		n.W[i] = g.Param(init(nIn, nOut))
	}
	n.B = g.Param(0)

	return n
}

// Forward returns b + Σ w[i]*x[i].
func (n *Neuron) Forward(g *engine.Graph, x []engine.Handle) (engine.Handle, error) {
	if len(x) != len(n.W) {
		return engine.Handle{}, errors.Wrapf(ErrInputSize, "nn: neuron wants %d inputs, got %d", len(n.W), len(x))
	}
	z := n.B
	for i, w := range n.W {
		wx, err := g.Mul(w, x[i])
		if err != nil {
			return engine.Handle{}, errors.Wrapf(err, "nn: weight %d", i)
		}
		if z, err = g.Add(z, wx); err != nil {
			return engine.Handle{}, err
		}
	}

	return z, nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []engine.Handle {
	out := make([]engine.Handle, 0, len(n.W)+1)
	out = append(out, n.W...)

	return append(out, n.B)
}
