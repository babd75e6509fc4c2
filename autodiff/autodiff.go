// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Arithmetic on *Value records a computation graph; Backward on any node
// fills in the gradient of that node with respect to every ancestor.
//
// Example:
//
//	import "github.com/born-ml/grad/autodiff"
//
//	func main() {
//	    a := autodiff.New(2.0)
//	    b := autodiff.New(-3.0)
//	    d := a.Mul(b).Add(a.Pow(2)) // d = a*b + a²
//
//	    d.Backward()
//	    fmt.Println(a.Grad()) // b + 2a = 1
//	    fmt.Println(b.Grad()) // a = 2
//	}
package autodiff

import (
	"github.com/born-ml/grad/internal/autodiff"
	"github.com/born-ml/grad/internal/autodiff/ops"
)

// Value is a scalar node in the computation graph.
type Value = autodiff.Value

// Op is the operation tag recorded on every node.
type Op = ops.Op

// Kind identifies the forward rule of an Op.
type Kind = ops.Kind

// Operation kinds.
const (
	KindLeaf = ops.Leaf
	KindAdd  = ops.Add
	KindMul  = ops.Mul
	KindPow  = ops.Pow
	KindTanh = ops.Tanh
	KindExp  = ops.Exp
)

// Scalar is the set of raw numeric types accepted wherever a node is.
type Scalar = autodiff.Scalar

// Operand is either a node or a raw scalar.
type Operand = autodiff.Operand

// Errors.
var (
	ErrNonNumericExponent = autodiff.ErrNonNumericExponent
	ErrNotLeaf            = autodiff.ErrNotLeaf
)

// New wraps a raw scalar as a leaf node.
func New(data float64) *Value {
	return autodiff.New(data)
}

// NewLabeled wraps a raw scalar as a leaf node with a debug label.
func NewLabeled(data float64, label string) *Value {
	return autodiff.NewLabeled(data, label)
}

// Lift returns x itself when it is a node, or a new constant leaf otherwise.
func Lift[T Operand](x T) *Value {
	return autodiff.Lift(x)
}

// Add returns a + b for any mix of nodes and scalars.
func Add[A, B Operand](a A, b B) *Value {
	return autodiff.Add(a, b)
}

// Mul returns a * b for any mix of nodes and scalars.
func Mul[A, B Operand](a A, b B) *Value {
	return autodiff.Mul(a, b)
}

// Sub returns a - b for any mix of nodes and scalars.
func Sub[A, B Operand](a A, b B) *Value {
	return autodiff.Sub(a, b)
}

// Div returns a / b for any mix of nodes and scalars.
func Div[A, B Operand](a A, b B) *Value {
	return autodiff.Div(a, b)
}

// Power returns x^k, failing with ErrNonNumericExponent unless k is a plain number.
func Power(x *Value, k any) (*Value, error) {
	return autodiff.Power(x, k)
}

// Sum returns start + values[0] + values[1] + ...
func Sum(start *Value, values ...*Value) *Value {
	return autodiff.Sum(start, values...)
}

// Backward computes d(root)/d(node) for every node reachable from root.
func Backward(root *Value) {
	autodiff.Backward(root)
}

// TopologicalOrder returns the nodes reachable from root, operands first.
func TopologicalOrder(root *Value) []*Value {
	return autodiff.TopologicalOrder(root)
}

// ZeroGrads resets the gradient of every given node.
func ZeroGrads(values ...*Value) {
	autodiff.ZeroGrads(values...)
}
