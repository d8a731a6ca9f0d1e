// SPDX-License-Identifier: MIT

package nn_test

import (
	"fmt"

	"github.com/katalvlaran/scalargrad/engine"
	"github.com/katalvlaran/scalargrad/nn"
)

// ExampleMLP shows one forward and backward pass through a 2-2-1 network with
// every weight set to 0.5.
func ExampleMLP() {
	g := engine.NewGraph()
	m, err := nn.NewMLP(g, 2, []int{2, 1}, nn.ReLU, nn.Linear, nn.WithInitializer(nn.Constant(0.5)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, _ := m.Forward([]engine.Handle{g.Input(1), g.Input(3)})
	v, _ := g.Value(out[0])
	_ = g.Backward(out[0])

	w, _ := g.Grad(m.Layers[0].Neurons[0].W[1])
	fmt.Printf("params=%d out=%g dout/dw=%g\n", m.ParamCount(), v, w)

	// Output:
	// params=9 out=2 dout/dw=1.5
}
