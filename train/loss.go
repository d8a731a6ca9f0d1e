// SPDX-License-Identifier: MIT

package train

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/scalargrad/engine"
)

// ErrLengthMismatch is returned by L1Loss when predictions and targets differ
// in length, or both are empty.
var ErrLengthMismatch = errors.New("train: predictions and targets length mismatch")

// L1Loss returns Σ |targets[i] - preds[i]|.
func L1Loss(g *engine.Graph, preds, targets []engine.Handle) (engine.Handle, error) {
	if len(preds) != len(targets) || len(preds) == 0 {
		return engine.Handle{}, errors.Wrapf(ErrLengthMismatch, "train: %d predictions, %d targets", len(preds), len(targets))
	}

	var loss engine.Handle
	for i := range preds {
		d, err := g.Sub(targets[i], preds[i])
		if err != nil {
			return engine.Handle{}, errors.Wrapf(err, "train: sample %d", i)
		}
		if d, err = g.Abs(d); err != nil {
			return engine.Handle{}, err
		}
		if i == 0 {
			loss = d
			continue
		}
		if loss, err = g.Add(loss, d); err != nil {
			return engine.Handle{}, err
		}
	}

	return loss, nil
}
