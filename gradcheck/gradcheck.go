// SPDX-License-Identifier: MIT

package gradcheck

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/scalargrad/engine"
)

var (
	// ErrNoInputs is returned when Check is called with an empty point.
	ErrNoInputs = errors.New("gradcheck: no inputs")

	// ErrMismatch indicates analytic and numeric gradients disagree.
	ErrMismatch = errors.New("gradcheck: gradient mismatch")
)

// Func builds a scalar expression over xs in g and returns its root.
type Func func(g *engine.Graph, xs []engine.Handle) (engine.Handle, error)

// Options controls the finite-difference probe and the comparison.
type Options struct {
	Step   float64 // finite-difference step
	AbsTol float64 // absolute tolerance
	RelTol float64 // relative tolerance
}

// Option configures Check.
type Option func(*Options)

// DefaultOptions returns Step=1e-6 and tolerances of 1e-5.
func DefaultOptions() Options {
	return Options{Step: 1e-6, AbsTol: 1e-5, RelTol: 1e-5}
}

// WithStep sets the finite-difference step. Non-positive values are ignored.
func WithStep(h float64) Option {
	return func(o *Options) {
		if h > 0 {
			o.Step = h
		}
	}
}

// WithTolerance sets the absolute and relative tolerances.
func WithTolerance(abs, rel float64) Option {
	return func(o *Options) {
		o.AbsTol = abs
		o.RelTol = rel
	}
}

// Result carries both gradients at the evaluation point.
type Result struct {
	Value    float64   // f(x)
	Analytic []float64 // from Backward
	Numeric  []float64 // from central differences
}

// MaxAbsDiff returns the largest |Analytic[i] - Numeric[i]|.
func (r *Result) MaxAbsDiff() float64 {
	var m float64
	for i := range r.Analytic {
		m = math.Max(m, math.Abs(r.Analytic[i]-r.Numeric[i]))
	}

	return m
}

// Analytic evaluates f at x and returns f(x) and its gradient from Backward.
func Analytic(f Func, x []float64) (float64, []float64, error) {
	g := engine.NewGraph()
	xs := leaves(g, x)
	root, err := f(g, xs)
	if err != nil {
		return 0, nil, err
	}
	if err = g.MarkOutput(root); err != nil && !errors.Is(err, engine.ErrInvalidRole) {
		return 0, nil, err
	}
	if err = g.Backward(root); err != nil {
		return 0, nil, err
	}
	value, err := g.Value(root)
	if err != nil {
		return 0, nil, err
	}

	grad := make([]float64, len(xs))
	for i, h := range xs {
		if grad[i], err = g.Grad(h); err != nil {
			return 0, nil, err
		}
	}

	return value, grad, nil
}

// Numeric estimates the gradient of f at x with central differences of
// step h.
func Numeric(f Func, x []float64, h float64) ([]float64, error) {
	var firstErr error
	eval := func(p []float64) float64 {
		v, err := value(f, p)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return v
	}
	grad := fd.Gradient(nil, eval, x, &fd.Settings{Formula: fd.Central, Step: h})
	if firstErr != nil {
		return nil, firstErr
	}

	return grad, nil
}

// Check compares the analytic and numeric gradients of f at x.
// The Result is returned even on ErrMismatch.
func Check(f Func, x []float64, opts ...Option) (*Result, error) {
	if len(x) == 0 {
		return nil, ErrNoInputs
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v, analytic, err := Analytic(f, x)
	if err != nil {
		return nil, errors.Wrap(err, "gradcheck: analytic")
	}
	numeric, err := Numeric(f, x, o.Step)
	if err != nil {
		return nil, errors.Wrap(err, "gradcheck: numeric")
	}

	res := &Result{Value: v, Analytic: analytic, Numeric: numeric}
	for i := range analytic {
		if !scalar.EqualWithinAbsOrRel(analytic[i], numeric[i], o.AbsTol, o.RelTol) {
			return res, errors.Wrapf(ErrMismatch, "gradcheck: x[%d]: analytic %g, numeric %g", i, analytic[i], numeric[i])
		}
	}

	return res, nil
}

// value evaluates f at p on a throwaway graph.
func value(f Func, p []float64) (float64, error) {
	g := engine.NewGraph()
	root, err := f(g, leaves(g, p))
	if err != nil {
		return math.NaN(), err
	}

	return g.Value(root)
}

// leaves creates one Input leaf per coordinate.
func leaves(g *engine.Graph, x []float64) []engine.Handle {
	xs := make([]engine.Handle, len(x))
	for i, v := range x {
		xs[i] = g.Input(v)
	}

	return xs
}
