// SPDX-License-Identifier: MIT

package nn

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/scalargrad/engine"
)

var (
	// ErrGraphNil is returned when a nil *engine.Graph is passed in.
	ErrGraphNil = errors.New("nn: graph is nil")

	// ErrBadSize indicates a non-positive layer or input size.
	ErrBadSize = errors.New("nn: size must be positive")

	// ErrInputSize indicates Forward received the wrong number of inputs.
	ErrInputSize = errors.New("nn: input size mismatch")

	// ErrUnknownActivation is returned by ParseActivation.
	ErrUnknownActivation = errors.New("nn: unknown activation")
)

// Activation is applied element-wise to a layer's outputs.
type Activation uint8

const (
	Linear Activation = iota // identity
	ReLU
	Tanh
)

// String implements fmt.Stringer.
func (a Activation) String() string {
	switch a {
	case Linear:
		return "linear"
	case ReLU:
		return "relu"
	case Tanh:
		return "tanh"
	default:
		return fmt.Sprintf("Activation(%d)", uint8(a))
	}
}

// ParseActivation maps "linear", "relu" or "tanh" (case-insensitive) to an
// Activation. The empty string means Linear.
func ParseActivation(s string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear", "none", "identity":
		return Linear, nil
	case "relu":
		return ReLU, nil
	case "tanh":
		return Tanh, nil
	default:
		return Linear, errors.Wrapf(ErrUnknownActivation, "nn: %q", s)
	}
}

// apply returns act(h) on g.
func (a Activation) apply(g *engine.Graph, h engine.Handle) (engine.Handle, error) {
	switch a {
	case ReLU:
		return g.ReLU(h)
	case Tanh:
		return g.Tanh(h)
	default:
		return h, nil
	}
}

// Initializer returns the initial value of one weight of a layer with the
// given fan-in and fan-out.
type Initializer func(fanIn, fanOut int) float64

// Option configures model construction.
type Option func(*Options)

// Options holds model construction settings.
type Options struct {
	// Init draws the initial weights. Defaults to GlorotNormal(Seed).
	Init Initializer

	// Seed feeds the default initializer. Ignored when Init is set.
	Seed uint64
}

// DefaultOptions returns seed 1 and the Glorot normal initializer.
func DefaultOptions() Options {
	return Options{Seed: 1}
}

// WithSeed sets the seed of the default initializer.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithInitializer overrides the weight initializer.
func WithInitializer(init Initializer) Option {
	return func(o *Options) { o.Init = init }
}

// resolve applies opts on top of the defaults and fills Init.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Init == nil {
		o.Init = GlorotNormal(o.Seed)
	}

	return o
}
