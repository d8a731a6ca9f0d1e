// SPDX-License-Identifier: MIT

package engine_test

import (
	"fmt"

	"github.com/katalvlaran/scalargrad/engine"
)

// ExampleGraph_Backward builds y = a*b + b and reads both partial derivatives.
//
//	a=2   b=3
//	  \  / |
//	   mul |
//	     \ |
//	     add  -> y = 9
func ExampleGraph_Backward() {
	g := engine.NewGraph()
	a := g.Param(2)
	b := g.Param(3)

	y := engine.Must(g.Add(engine.Must(g.Mul(a, b)), b))
	if err := g.MarkOutput(y); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := g.Backward(y); err != nil {
		fmt.Println("error:", err)
		return
	}

	v, _ := g.Value(y)
	da, _ := g.Grad(a)
	db, _ := g.Grad(b)
	fmt.Printf("y=%g dy/da=%g dy/db=%g live=%d\n", v, da, db, g.Len())

	// Output:
	// y=9 dy/da=3 dy/db=3 live=3
}

// ExampleGraph_TopologicalOrder prints the post-order of a small graph.
func ExampleGraph_TopologicalOrder() {
	g := engine.NewGraph()
	x := g.Input(0.5)
	y := engine.Must(g.Tanh(engine.Must(g.Pow(x, 2))))

	order, _ := g.TopologicalOrder(y)
	for _, h := range order {
		op, _, _ := g.Op(h)
		fmt.Print(op, " ")
	}
	fmt.Println()

	// Output:
	// leaf pow tanh
}
