// SPDX-License-Identifier: MIT

package engine

// Add returns a + b.
func (g *Graph) Add(a, b Handle) (Handle, error) {
	return g.derive(OpAdd, 0, a, b)
}

// Sub returns a - b.
func (g *Graph) Sub(a, b Handle) (Handle, error) {
	return g.derive(OpSub, 0, a, b)
}

// Mul returns a * b.
func (g *Graph) Mul(a, b Handle) (Handle, error) {
	return g.derive(OpMul, 0, a, b)
}

// Pow returns a raised to the constant exponent k. A negative base with a
// non-integer exponent yields NaN, which is propagated, not reported.
func (g *Graph) Pow(a Handle, k float64) (Handle, error) {
	return g.derive(OpPow, k, a)
}

// ReLU returns max(0, a).
func (g *Graph) ReLU(a Handle) (Handle, error) {
	return g.derive(OpReLU, 0, a)
}

// Abs returns |a|. Its gradient at a == 0 is 0.
func (g *Graph) Abs(a Handle) (Handle, error) {
	return g.derive(OpAbs, 0, a)
}

// Tanh returns the hyperbolic tangent of a.
func (g *Graph) Tanh(a Handle) (Handle, error) {
	return g.derive(OpTanh, 0, a)
}
