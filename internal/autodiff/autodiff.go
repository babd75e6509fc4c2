// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Arithmetic on *Value builds a directed acyclic computation graph as a side
// effect of ordinary expression evaluation. Calling Backward on any node walks
// that graph in reverse topological order and accumulates, into every
// reachable node, the partial derivative of the root with respect to it.
//
// Architecture:
//   - Value: graph node holding a datum, a gradient accumulator, an ops.Op tag
//     and the ordered operand slots the tag was applied to
//   - ops package: forward formula and local derivative rule per tag
//   - TopologicalOrder / Backward: the reverse pass driver
//
// A value may be used as an operand any number of times (fan-out). Nodes are
// shared by pointer and reclaimed by the garbage collector once unreachable.
//
// Usage:
//
//	a := autodiff.New(2.0)
//	b := autodiff.New(-3.0)
//	c := a.Mul(b).Add(a) // c = a*b + a
//
//	c.Backward()
//	fmt.Println(a.Grad()) // dc/da = b + 1 = -2
//	fmt.Println(b.Grad()) // dc/db = a = 2
//
// The engine is single-threaded: a graph and its gradients must not be
// touched from more than one goroutine at a time.
package autodiff

import (
	"fmt"

	"github.com/born-ml/grad/internal/autodiff/ops"
	"github.com/pkg/errors"
)

// Value is a scalar node in the computation graph.
//
// Data and operands are fixed at construction. Grad is zero until a backward
// pass reaches the node and is never reset implicitly.
type Value struct {
	data  float64
	grad  float64
	op    ops.Op
	args  []*Value // operand slots in order, len == op.Kind.Arity()
	label string   // debug only
}

// New wraps a raw scalar as a leaf node.
func New(data float64) *Value {
	return &Value{data: data, op: ops.NewLeaf()}
}

// NewLabeled wraps a raw scalar as a leaf node with a debug label.
func NewLabeled(data float64, label string) *Value {
	return &Value{data: data, op: ops.NewLeaf(), label: label}
}

// newNode allocates the single node produced by applying op to args.
func newNode(op ops.Op, args ...*Value) *Value {
	in := make([]float64, len(args))
	for i, a := range args {
		in[i] = a.data
	}
	return &Value{
		data: ops.Forward(op, in...),
		op:   op,
		args: args,
	}
}

// Data returns the forward-computed value.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// Op returns the tag of the operation that produced v.
func (v *Value) Op() ops.Op {
	return v.op
}

// IsLeaf reports whether v has no operands.
func (v *Value) IsLeaf() bool {
	return v.op.Kind == ops.Leaf
}

// Operands returns the distinct nodes v was built from, in first-use order.
//
// For x.Add(x) this returns a single element even though x fills both
// operand slots.
func (v *Value) Operands() []*Value {
	if len(v.args) == 0 {
		return nil
	}
	out := make([]*Value, 0, len(v.args))
	for _, a := range v.args {
		dup := false
		for _, seen := range out {
			if seen == a {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, a)
		}
	}
	return out
}

// Label returns the debug label.
func (v *Value) Label() string {
	return v.label
}

// SetLabel sets the debug label and returns v for chaining.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// SetData replaces the datum of a leaf.
//
// Optimizers use this to update parameters between forward passes. Internal
// nodes are immutable and return ErrNotLeaf.
func (v *Value) SetData(data float64) error {
	if !v.IsLeaf() {
		return errors.Wrapf(ErrNotLeaf, "set data on %q node", v.op.String())
	}
	v.data = data
	return nil
}

// ZeroGrad resets the gradient accumulator to 0.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// ZeroGrads resets the gradient accumulator of every given node.
func ZeroGrads(values ...*Value) {
	for _, v := range values {
		v.ZeroGrad()
	}
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	if v.label != "" {
		return fmt.Sprintf("Value(label=%s, data=%g, grad=%g)", v.label, v.data, v.grad)
	}
	return fmt.Sprintf("Value(data=%g, grad=%g)", v.data, v.grad)
}
