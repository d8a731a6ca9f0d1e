// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/pkg/errors"
)

// Visitation states of the depth-first traversal.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // node and all its operands emitted
)

// topoSorter holds the state of one traversal. It lives for a single call.
type topoSorter struct {
	graph *Graph
	state []uint8  // indexed by slot
	order []Handle // post-order
}

// TopologicalOrder returns every node reachable from root through operand
// edges, each exactly once, ordered so that a node appears after all of its
// operands. The root is last.
//
// Operands are explored in their recorded order, so the result is
// deterministic for a given graph. A stale handle anywhere in the reachable
// set yields ErrReclaimed.
func (g *Graph) TopologicalOrder(root Handle) ([]Handle, error) {
	// 1. Validate root
	if _, err := g.lookup(root); err != nil {
		return nil, err
	}
	// 2. Per-call visitation state
	t := &topoSorter{
		graph: g,
		state: make([]uint8, len(g.nodes)),
		order: make([]Handle, 0, 16),
	}
	// 3. Post-order DFS
	if err := t.visit(root); err != nil {
		return nil, err
	}

	return t.order, nil
}

// visit emits h after all of its operands.
func (t *topoSorter) visit(h Handle) error {
	n, err := t.graph.lookup(h)
	if err != nil {
		return err
	}
	switch t.state[h.idx] {
	case gray:
		return errors.Wrapf(ErrCycleDetected, "engine: at %s", h)
	case black:
		return nil
	}
	t.state[h.idx] = gray

	for _, op := range n.operands {
		if err = t.visit(op); err != nil {
			return err
		}
	}

	t.state[h.idx] = black
	t.order = append(t.order, h)

	return nil
}
