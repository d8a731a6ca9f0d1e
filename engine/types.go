// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidHandle is returned for the zero Handle or a handle whose index
	// lies outside the Graph.
	ErrInvalidHandle = errors.New("engine: invalid handle")

	// ErrForeignHandle indicates a handle issued by a different Graph.
	ErrForeignHandle = errors.New("engine: handle belongs to another graph")

	// ErrReclaimed indicates the handle's node has been reclaimed by Backward
	// or Discard, or released by its owner.
	ErrReclaimed = errors.New("engine: node reclaimed")

	// ErrInvalidRole indicates a role that the operation does not accept.
	ErrInvalidRole = errors.New("engine: invalid role")

	// ErrNotParameter is returned by SetValue for non-Parameter nodes.
	ErrNotParameter = errors.New("engine: node is not a parameter")

	// ErrCycleDetected indicates a node was reached again while still on the
	// traversal stack.
	ErrCycleDetected = errors.New("engine: cycle detected")
)

// Role governs whether a node survives the backward pass.
type Role uint8

const (
	RoleInput        Role = iota // externally supplied value
	RoleParameter                // trainable leaf
	RoleIntermediate             // produced by a primitive, reclaimable
	RoleOutput                   // promoted intermediate, survives Backward
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleInput:
		return "input"
	case RoleParameter:
		return "parameter"
	case RoleIntermediate:
		return "intermediate"
	case RoleOutput:
		return "output"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}

// Op tags the operation that produced a node. OpLeaf marks nodes without a
// local gradient rule.
type Op uint8

const (
	OpLeaf Op = iota
	OpAdd
	OpSub
	OpMul
	OpPow
	OpReLU
	OpAbs
	OpTanh
)

var opNames = [...]string{
	OpLeaf: "leaf",
	OpAdd:  "add",
	OpSub:  "sub",
	OpMul:  "mul",
	OpPow:  "pow",
	OpReLU: "relu",
	OpAbs:  "abs",
	OpTanh: "tanh",
}

// String implements fmt.Stringer.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}

	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Arity returns the number of operands the operation records.
func (o Op) Arity() int {
	switch o {
	case OpAdd, OpSub, OpMul:
		return 2
	case OpPow, OpReLU, OpAbs, OpTanh:
		return 1
	default:
		return 0
	}
}

// Handle is a non-owning reference to a node of a Graph.
// The zero Handle is invalid.
type Handle struct {
	g   *Graph
	idx uint32
	gen uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.g == nil }

// String implements fmt.Stringer.
func (h Handle) String() string {
	if h.g == nil {
		return "node<nil>"
	}

	return fmt.Sprintf("node#%d.%d", h.idx, h.gen)
}

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithCapacity preallocates room for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make([]node, 0, n)
		}
	}
}

// Option configures a single Backward call.
type Option func(*Options)

// Options holds the settings of one Backward call.
type Options struct {
	// OnApply, if non-nil, is invoked right after a node's local gradient
	// rule has pushed its contributions to the operands.
	OnApply func(h Handle)

	// OnReclaim, if non-nil, is invoked once per reclaimed node. The handle is
	// already stale when the hook runs.
	OnReclaim func(h Handle)

	// RetainGraph disables reclamation; every node stays readable.
	RetainGraph bool
}

// DefaultOptions returns Options with no hooks and reclamation enabled.
func DefaultOptions() Options {
	return Options{}
}

// WithOnApply installs fn as the post-rule hook.
func WithOnApply(fn func(h Handle)) Option {
	return func(o *Options) { o.OnApply = fn }
}

// WithOnReclaim installs fn as the reclamation hook.
func WithOnReclaim(fn func(h Handle)) Option {
	return func(o *Options) { o.OnReclaim = fn }
}

// WithRetainGraph keeps every node alive after Backward.
func WithRetainGraph() Option {
	return func(o *Options) { o.RetainGraph = true }
}
