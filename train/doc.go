// SPDX-License-Identifier: MIT

// Package train runs the training loop of an nn.MLP on a small in-memory
// data set.
//
// One epoch:
//
//  1. forward every sample through the model;
//  2. loss = Σ |y_i - ŷ_i| (L1Loss), marked as output so it stays readable;
//  3. engine Backward from the loss, which reclaims the epoch's graph;
//  4. nn.SGD on every parameter, which also zeroes the gradients;
//  5. the loss node is released and the epoch hook is called.
//
// Samples and targets are Input leaves created once in New and reused by
// every epoch.
//
// Configuration is a Config value, usually decoded from YAML:
//
//	inputs: 3
//	layers: [5, 5, 1]
//	hidden_activation: tanh
//	output_activation: linear
//	learning_rate: 0.0001
//	epochs: 20
//	seed: 1
//	samples:
//	  - {x: [-0.077, 1.091, -1.478], y: 1}
package train
