// SPDX-License-Identifier: MIT

// Package scalargrad is a small reverse-mode automatic differentiation engine
// for scalar values, with the pieces needed to train a multilayer perceptron
// on top of it.
//
// Graphs are built eagerly: every primitive call (Add, Sub, Mul, Pow, ReLU,
// Abs, Tanh) evaluates its result immediately and records its operands. One
// Backward call from a scalar loss then pushes gradients to every node that
// contributed to it, accumulating (never overwriting) at nodes with several
// consumers, and reclaims the intermediate nodes of the pass.
//
// Subpackages:
//
//	engine/     Graph arena, Handle, primitives, TopologicalOrder, Backward
//	gradcheck/  central finite-difference verification of engine gradients
//	nn/         Neuron, Layer, MLP, Glorot initialisation, SGD
//	train/      YAML run configuration, L1 loss, epoch loop
//	cmd/train   console front end for the reference training run
//
// Quick example:
//
//	g := engine.NewGraph()
//	a, b := g.Param(2), g.Param(3)
//	y := engine.Must(g.Mul(a, b))
//	_ = g.Backward(y)
//	da, _ := g.Grad(a) // 3
//
// Everything is single-threaded; a Graph must not be shared across goroutines.
package scalargrad
