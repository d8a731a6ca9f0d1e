// SPDX-License-Identifier: MIT

package engine

// Backward computes the gradient of root with respect to every node it was
// built from.
//
// Stages:
//
//  1. Traverse: compute TopologicalOrder(root). Any error aborts before a
//     gradient is touched.
//  2. Seed: root's gradient is set to 1.
//  3. Propagate: walk the order in reverse. Each derived node pushes
//     local derivative * its gradient into its operands. Leaves only receive.
//  4. Reclaim: right after a node has propagated, it is reclaimed if its role
//     is RoleIntermediate. Every dependent of a node precedes it in reverse
//     topological order, so the node's gradient is final when it is read and
//     nothing reads it afterwards.
//
// After Backward returns, Input, Parameter and Output nodes expose
// d(root)/d(node) via Grad; Intermediate handles from the traversed graph are
// stale. Gradients accumulate across calls until ResetGrad.
func (g *Graph) Backward(root Handle, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	order, err := g.TopologicalOrder(root)
	if err != nil {
		return err
	}

	g.nodes[root.idx].grad = 1

	var (
		h Handle
		n *node
	)
	for i := len(order) - 1; i >= 0; i-- {
		h = order[i]
		n = &g.nodes[h.idx]
		if n.op == OpLeaf {
			continue
		}
		g.propagate(n)
		if o.OnApply != nil {
			o.OnApply(h)
		}
		if n.role == RoleIntermediate && !o.RetainGraph {
			g.reclaim(h.idx)
			if o.OnReclaim != nil {
				o.OnReclaim(h)
			}
		}
	}

	return nil
}

// Discard reclaims every Intermediate node reachable from root without
// computing gradients. It ends the life of a graph that was evaluated only
// for its forward value. Intermediate nodes shared with another pending graph
// are reclaimed too.
func (g *Graph) Discard(root Handle) error {
	order, err := g.TopologicalOrder(root)
	if err != nil {
		return err
	}
	for _, h := range order {
		if g.nodes[h.idx].role == RoleIntermediate {
			g.reclaim(h.idx)
		}
	}

	return nil
}
