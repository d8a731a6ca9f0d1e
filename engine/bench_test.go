// SPDX-License-Identifier: MIT

package engine_test

import (
	"testing"

	"github.com/katalvlaran/scalargrad/engine"
)

// BenchmarkBackward_Chain10000 builds x -> tanh -> ... (10,000 nodes) and runs
// one backward pass per iteration. Reclaimed slots are reused by the next
// iteration, so the arena does not grow after the first one.
func BenchmarkBackward_Chain10000(b *testing.B) {
	g := engine.NewGraph(engine.WithCapacity(10001))
	x := g.Param(0.1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := x
		for j := 0; j < 10000; j++ {
			h = engine.Must(g.Tanh(h))
		}
		if err := g.Backward(h); err != nil {
			b.Fatal(err)
		}
		_ = g.ResetGrad(x)
	}
}

// BenchmarkBackward_Neuron measures a 64-input tanh neuron.
func BenchmarkBackward_Neuron(b *testing.B) {
	g := engine.NewGraph()
	const n = 64
	w := make([]engine.Handle, n)
	x := make([]engine.Handle, n)
	for i := range w {
		w[i] = g.Param(0.01 * float64(i))
		x[i] = g.Input(1 - 0.02*float64(i))
	}
	bias := g.Param(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		z := bias
		for j := range w {
			z = engine.Must(g.Add(z, engine.Must(g.Mul(w[j], x[j]))))
		}
		if err := g.Backward(engine.Must(g.Tanh(z))); err != nil {
			b.Fatal(err)
		}
	}
}
