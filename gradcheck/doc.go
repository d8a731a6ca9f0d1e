// SPDX-License-Identifier: MIT

// Package gradcheck verifies engine gradients against central finite
// differences.
//
// A Func builds a scalar expression from input leaves. Check evaluates it
// twice over:
//
//   - analytically: once on a fresh engine.Graph followed by Backward;
//   - numerically: through gonum's diff/fd central-difference gradient, each
//     probe on its own fresh engine.Graph.
//
// Each component is then compared with an absolute-or-relative tolerance.
//
// Errors:
//
//   - ErrNoInputs  the evaluation point is empty
//   - ErrMismatch  at least one component is out of tolerance
//   - any error returned by the Func or by the engine
package gradcheck
