// SPDX-License-Identifier: MIT

package engine

import "math"

// forward evaluates op on the operand values x. Unused entries of x are zero.
func forward(op Op, aux float64, x [2]float64) float64 {
	switch op {
	case OpAdd:
		return x[0] + x[1]
	case OpSub:
		return x[0] - x[1]
	case OpMul:
		return x[0] * x[1]
	case OpPow:
		return math.Pow(x[0], aux)
	case OpReLU:
		if x[0] > 0 {
			return x[0]
		}
		return 0
	case OpAbs:
		return math.Abs(x[0])
	case OpTanh:
		return math.Tanh(x[0])
	default:
		return x[0]
	}
}

// local returns the partial derivative of op with respect to each operand,
// evaluated at the forward operand values x.
func local(op Op, aux float64, x [2]float64) [2]float64 {
	switch op {
	case OpAdd:
		return [2]float64{1, 1}
	case OpSub:
		return [2]float64{1, -1}
	case OpMul:
		return [2]float64{x[1], x[0]}
	case OpPow:
		return [2]float64{aux * math.Pow(x[0], aux-1)}
	case OpReLU:
		if x[0] > 0 {
			return [2]float64{1}
		}
		return [2]float64{}
	case OpAbs:
		// subgradient 0 at the kink
		switch {
		case x[0] > 0:
			return [2]float64{1}
		case x[0] < 0:
			return [2]float64{-1}
		default:
			return [2]float64{}
		}
	case OpTanh:
		t := math.Tanh(x[0])
		return [2]float64{1 - t*t}
	default:
		return [2]float64{}
	}
}

// propagate applies the chain rule for n: every operand receives
// local derivative * n.grad, added to what it already holds. An operand listed
// twice (Mul(a, a)) receives both contributions.
func (g *Graph) propagate(n *node) {
	var x [2]float64
	for i, h := range n.operands {
		x[i] = g.nodes[h.idx].value
	}
	d := local(n.op, n.aux, x)
	for i, h := range n.operands {
		g.nodes[h.idx].grad += d[i] * n.grad
	}
}
