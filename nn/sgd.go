// SPDX-License-Identifier: MIT

package nn

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/scalargrad/engine"
)

// SGD performs one plain gradient-descent step on params and zeroes their
// gradients: p <- p - lr*grad(p).
func SGD(g *engine.Graph, params []engine.Handle, lr float64) error {
	if g == nil {
		return ErrGraphNil
	}
	for i, p := range params {
		v, err := g.Value(p)
		if err != nil {
			return errors.Wrapf(err, "nn: param %d", i)
		}
		grad, err := g.Grad(p)
		if err != nil {
			return errors.Wrapf(err, "nn: param %d", i)
		}
		if err = g.SetValue(p, v-lr*grad); err != nil {
			return errors.Wrapf(err, "nn: param %d", i)
		}
		if err = g.ResetGrad(p); err != nil {
			return err
		}
	}

	return nil
}
