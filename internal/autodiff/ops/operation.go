// Package ops defines the operation tags and local derivative rules for the
// scalar automatic differentiation engine.
//
// Every graph node carries an Op describing the forward rule that produced it.
// Forward and Backward dispatch on Op.Kind, so no per-node closures exist and
// a graph can be inspected purely from its tags and operand values.
//
// Primitive operations:
//   - Add: a + b (d/da = 1, d/db = 1)
//   - Mul: a * b (d/da = b, d/db = a)
//   - Pow: a^k for a constant k (d/da = k * a^(k-1))
//   - Tanh: tanh(a) (d/da = 1 - tanh²(a))
//   - Exp: e^a (d/da = e^a)
//
// Negation, subtraction and division are lowered onto these primitives by the
// autodiff package: -a = a * -1, a - b = a + (-b), a / b = a * b^-1.
package ops

import (
	"fmt"
	"strconv"
)

// Kind identifies which forward rule produced a node.
type Kind uint8

const (
	// Leaf marks a node with no operands (input, constant or parameter).
	Leaf Kind = iota
	// Add marks a + b.
	Add
	// Mul marks a * b.
	Mul
	// Pow marks a^k with k stored in Op.Exponent.
	Pow
	// Tanh marks tanh(a).
	Tanh
	// Exp marks e^a.
	Exp
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Add:
		return "add"
	case Mul:
		return "mul"
	case Pow:
		return "pow"
	case Tanh:
		return "tanh"
	case Exp:
		return "exp"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Arity returns the number of operand slots the kind consumes.
func (k Kind) Arity() int {
	switch k {
	case Add, Mul:
		return 2
	case Pow, Tanh, Exp:
		return 1
	default:
		return 0
	}
}

// Op is the tagged variant stored on every node.
//
// Exponent is only meaningful for Pow.
type Op struct {
	Kind     Kind
	Exponent float64
}

// NewLeaf returns the tag for a leaf node.
func NewLeaf() Op { return Op{Kind: Leaf} }

// NewAdd returns the tag for a + b.
func NewAdd() Op { return Op{Kind: Add} }

// NewMul returns the tag for a * b.
func NewMul() Op { return Op{Kind: Mul} }

// NewPow returns the tag for a^k.
func NewPow(k float64) Op { return Op{Kind: Pow, Exponent: k} }

// NewTanh returns the tag for tanh(a).
func NewTanh() Op { return Op{Kind: Tanh} }

// NewExp returns the tag for e^a.
func NewExp() Op { return Op{Kind: Exp} }

// String renders the op symbol: "", "+", "*", "**k", "tanh", "exp".
func (op Op) String() string {
	switch op.Kind {
	case Leaf:
		return ""
	case Add:
		return "+"
	case Mul:
		return "*"
	case Pow:
		return "**" + strconv.FormatFloat(op.Exponent, 'g', -1, 64)
	default:
		return op.Kind.String()
	}
}

// Forward evaluates the forward formula of op on the operand values.
//
// Panics if len(in) does not match the arity of op.Kind. Callers in the
// autodiff package always pass the right number of operands.
func Forward(op Op, in ...float64) float64 {
	checkArity(op, len(in))

	switch op.Kind {
	case Add:
		return addForward(in[0], in[1])
	case Mul:
		return mulForward(in[0], in[1])
	case Pow:
		return powForward(in[0], op.Exponent)
	case Tanh:
		return tanhForward(in[0])
	case Exp:
		return expForward(in[0])
	default:
		panic(fmt.Sprintf("ops: Forward called on %s", op.Kind))
	}
}

// Backward computes the gradient contribution of a node to each operand slot.
//
// out is the node's own forward value, outGrad its accumulated gradient and
// in the operand values in slot order. The returned slice has one entry per
// slot; the caller adds entry i to the gradient of operand i. A slot that
// refers to the same node twice (x + x) receives two contributions.
//
// Leaves return nil.
func Backward(op Op, out, outGrad float64, in ...float64) []float64 {
	if op.Kind == Leaf {
		return nil
	}
	checkArity(op, len(in))

	switch op.Kind {
	case Add:
		return addBackward(outGrad)
	case Mul:
		return mulBackward(in[0], in[1], outGrad)
	case Pow:
		return powBackward(in[0], op.Exponent, outGrad)
	case Tanh:
		return tanhBackward(out, outGrad)
	case Exp:
		return expBackward(out, outGrad)
	default:
		panic(fmt.Sprintf("ops: Backward called on %s", op.Kind))
	}
}

func checkArity(op Op, n int) {
	if want := op.Kind.Arity(); want != n {
		panic(fmt.Sprintf("ops: %s expects %d operands, got %d", op.Kind, want, n))
	}
}
