// SPDX-License-Identifier: MIT

// Package nn composes engine primitives into a multilayer perceptron.
//
// Building blocks:
//
//   - Neuron: weights w and bias b, all Parameter leaves; Forward(x) = w·x + b.
//   - Layer:  Out neurons sharing In inputs, followed by an Activation.
//   - MLP:    a stack of layers; hidden layers share one activation, the last
//     layer has its own.
//
// Parameters are created once per model and live for the whole training run.
// Every Forward call builds fresh Intermediate nodes that the caller ends with
// engine.Graph.Backward or engine.Graph.Discard.
//
// Initialisation defaults to Glorot normal, N(0, 2/(fanIn+fanOut)), drawn
// from gonum's distuv.Normal over a seeded PCG source. Biases start at 0.
//
// SGD applies p -= lr * grad(p) and resets each gradient.
package nn
