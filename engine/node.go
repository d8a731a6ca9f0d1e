// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/pkg/errors"
)

// node is one slot of the arena. A slot is live between alloc and reclaim;
// gen changes on every reclaim so that stale handles can be told apart.
type node struct {
	value    float64  // forward result, frozen at construction
	grad     float64  // accumulated gradient
	aux      float64  // operation constant (exponent for OpPow)
	operands []Handle // immutable after construction
	role     Role
	op       Op
	gen      uint32
	live     bool
}

// Graph is an arena of scalar nodes and the owner of every Handle it issues.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	nodes []node
	free  []uint32 // reclaimed slot indices, reused LIFO
	live  int
}

// NewGraph returns an empty Graph configured by opts.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Len returns the number of live nodes.
func (g *Graph) Len() int { return g.live }

// Leaf creates a node without operands. role must be RoleInput or
// RoleParameter.
func (g *Graph) Leaf(value float64, role Role) (Handle, error) {
	if role != RoleInput && role != RoleParameter {
		return Handle{}, errors.Wrapf(ErrInvalidRole, "engine: leaf with role %s", role)
	}

	return g.alloc(node{value: value, role: role, op: OpLeaf}), nil
}

// Input is shorthand for Leaf(value, RoleInput).
func (g *Graph) Input(value float64) Handle {
	return g.alloc(node{value: value, role: RoleInput, op: OpLeaf})
}

// Param is shorthand for Leaf(value, RoleParameter).
func (g *Graph) Param(value float64) Handle {
	return g.alloc(node{value: value, role: RoleParameter, op: OpLeaf})
}

// derive records an Intermediate node computed by op from operands.
// The operand values are read and validated before the slot is allocated.
func (g *Graph) derive(op Op, aux float64, operands ...Handle) (Handle, error) {
	var x [2]float64
	for i, h := range operands {
		n, err := g.lookup(h)
		if err != nil {
			return Handle{}, errors.Wrapf(err, "engine: %s operand %d", op, i)
		}
		x[i] = n.value
	}

	return g.alloc(node{
		value:    forward(op, aux, x),
		aux:      aux,
		operands: append([]Handle(nil), operands...),
		role:     RoleIntermediate,
		op:       op,
	}), nil
}

// alloc stores n in a free slot (or a new one) and returns its handle.
func (g *Graph) alloc(n node) Handle {
	var idx uint32
	if k := len(g.free); k > 0 {
		idx = g.free[k-1]
		g.free = g.free[:k-1]
		n.gen = g.nodes[idx].gen
		g.nodes[idx] = n
	} else {
		idx = uint32(len(g.nodes))
		n.gen = 1
		g.nodes = append(g.nodes, n)
	}
	g.nodes[idx].live = true
	g.live++

	return Handle{g: g, idx: idx, gen: g.nodes[idx].gen}
}

// reclaim frees slot idx. Operands are not touched: they may be shared.
func (g *Graph) reclaim(idx uint32) {
	n := &g.nodes[idx]
	gen := n.gen + 1
	if gen == 0 {
		gen = 1
	}
	*n = node{gen: gen}
	g.free = append(g.free, idx)
	g.live--
}

// lookup resolves h to its live slot. The returned pointer is valid until the
// next allocation.
func (g *Graph) lookup(h Handle) (*node, error) {
	if h.g == nil {
		return nil, ErrInvalidHandle
	}
	if h.g != g {
		return nil, errors.Wrapf(ErrForeignHandle, "engine: %s", h)
	}
	if int(h.idx) >= len(g.nodes) {
		return nil, errors.Wrapf(ErrInvalidHandle, "engine: %s", h)
	}
	n := &g.nodes[h.idx]
	if !n.live || n.gen != h.gen {
		return nil, errors.Wrapf(ErrReclaimed, "engine: %s", h)
	}

	return n, nil
}

// Value returns the forward value of h.
func (g *Graph) Value(h Handle) (float64, error) {
	n, err := g.lookup(h)
	if err != nil {
		return 0, err
	}

	return n.value, nil
}

// Grad returns the gradient accumulated on h.
func (g *Graph) Grad(h Handle) (float64, error) {
	n, err := g.lookup(h)
	if err != nil {
		return 0, err
	}

	return n.grad, nil
}

// ResetGrad sets the gradient of h back to zero.
func (g *Graph) ResetGrad(h Handle) error {
	n, err := g.lookup(h)
	if err != nil {
		return err
	}
	n.grad = 0

	return nil
}

// SetValue replaces the value of a Parameter leaf. It is meant for the
// parameter update between two backward passes; derived nodes built earlier
// keep the value they were computed from.
func (g *Graph) SetValue(h Handle, value float64) error {
	n, err := g.lookup(h)
	if err != nil {
		return err
	}
	if n.role != RoleParameter {
		return errors.Wrapf(ErrNotParameter, "engine: %s is %s", h, n.role)
	}
	n.value = value

	return nil
}

// Role returns the role of h.
func (g *Graph) Role(h Handle) (Role, error) {
	n, err := g.lookup(h)
	if err != nil {
		return 0, err
	}

	return n.role, nil
}

// Op returns the operation that produced h and its auxiliary constant.
func (g *Graph) Op(h Handle) (Op, float64, error) {
	n, err := g.lookup(h)
	if err != nil {
		return OpLeaf, 0, err
	}

	return n.op, n.aux, nil
}

// Operands returns a copy of the operand list of h.
func (g *Graph) Operands(h Handle) ([]Handle, error) {
	n, err := g.lookup(h)
	if err != nil {
		return nil, err
	}

	return append([]Handle(nil), n.operands...), nil
}

// MarkOutput promotes an Intermediate node to RoleOutput so that Backward
// leaves it alive. Marking an Output again is a no-op.
func (g *Graph) MarkOutput(h Handle) error {
	n, err := g.lookup(h)
	if err != nil {
		return err
	}
	switch n.role {
	case RoleOutput:
		return nil
	case RoleIntermediate:
		n.role = RoleOutput
		return nil
	default:
		return errors.Wrapf(ErrInvalidRole, "engine: cannot mark %s node %s as output", n.role, h)
	}
}

// Release frees h regardless of its role. Derived nodes that still list h as
// an operand report ErrReclaimed when traversed.
func (g *Graph) Release(h Handle) error {
	if _, err := g.lookup(h); err != nil {
		return err
	}
	g.reclaim(h.idx)

	return nil
}

// Must returns h or panics if err is non-nil. It lets expressions be nested:
//
//	y := engine.Must(g.Tanh(engine.Must(g.Mul(a, b))))
func Must(h Handle, err error) Handle {
	if err != nil {
		panic(err)
	}

	return h
}
