// SPDX-License-Identifier: MIT

// Package engine implements a reverse-mode automatic differentiation engine
// over scalar values.
//
// What:
//
//   - Graph: an arena of scalar nodes. Every node holds a forward value, an
//     accumulated gradient, a Role and, when derived, the operands and the
//     operation that produced it.
//   - Handle: a stable, generation-checked reference to one node. Handles are
//     non-owning; any number of derived nodes may hold the same operand.
//   - Primitives: Add, Sub, Mul, Pow, ReLU, Abs, Tanh. Each records its
//     operands at call time (eager graph construction) and carries a local
//     gradient rule applied during the backward pass.
//   - TopologicalOrder: post-order DFS from a root, each node emitted once.
//   - Backward: seeds the root gradient with 1, walks the topological order in
//     reverse applying the chain rule, and reclaims Intermediate nodes as soon
//     as their contribution has been pushed to their operands.
//
// Roles:
//
//   - RoleInput, RoleParameter: leaves created by the caller. Never reclaimed
//     by Backward; freed only by Release.
//   - RoleIntermediate: produced by a primitive. Reclaimed by Backward (or
//     Discard) after one pass; its handles become stale afterwards.
//   - RoleOutput: an Intermediate promoted with MarkOutput so that its value
//     survives the backward pass (e.g. a loss that must be reported).
//
// Memory model:
//
//	Graph.nodes  [ slot0 | slot1 | slot2 | ... ]
//	Handle{idx, gen} -> slot idx, valid while slot.gen == gen
//
// Reclaiming a slot bumps its generation and puts it on a free list, so a
// stale handle is detected on every access (ErrReclaimed) instead of silently
// reading a recycled node. Reclamation is role-gated and non-recursive: a leaf
// shared by many derived nodes is never released by the engine.
//
// Complexity:
//
//   - Primitive call:   O(1)
//   - TopologicalOrder: O(V + E), Memory O(V)
//   - Backward:         O(V + E), Memory O(V)
//
// Errors:
//
//   - ErrInvalidHandle  zero or out-of-range handle
//   - ErrForeignHandle  handle belongs to a different Graph
//   - ErrReclaimed      handle refers to a node that was reclaimed or released
//   - ErrInvalidRole    role not allowed for the requested operation
//   - ErrNotParameter   SetValue on a node that is not a Parameter
//   - ErrCycleDetected  traversal re-entered a node still on the DFS stack
//
// Numeric edge cases (NaN from a fractional power of a negative base, ±Inf)
// are ordinary values and propagate through value and gradient.
//
// Concurrency: a Graph is not safe for concurrent use.
package engine
