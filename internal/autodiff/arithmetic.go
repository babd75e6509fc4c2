package autodiff

import (
	"math"

	"github.com/born-ml/grad/internal/autodiff/ops"
)

// Add returns v + other.
func (v *Value) Add(other *Value) *Value {
	return newNode(ops.NewAdd(), v, other)
}

// AddScalar returns v + c, wrapping c as a constant leaf.
func (v *Value) AddScalar(c float64) *Value {
	return v.Add(New(c))
}

// Mul returns v * other.
func (v *Value) Mul(other *Value) *Value {
	return newNode(ops.NewMul(), v, other)
}

// MulScalar returns v * c, wrapping c as a constant leaf.
func (v *Value) MulScalar(c float64) *Value {
	return v.Mul(New(c))
}

// Pow returns v^k for a constant exponent k.
//
// The exponent is recorded on the node's tag; use Power for an exponent whose
// type is only known at run time.
func (v *Value) Pow(k float64) *Value {
	return newNode(ops.NewPow(k), v)
}

// Neg returns -v, lowered to v * -1.
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Sub returns v - other, lowered to v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// SubScalar returns v - c, lowered to v + (-c).
func (v *Value) SubScalar(c float64) *Value {
	return v.AddScalar(-c)
}

// RSub returns c - v, lowered to c + (-v).
func (v *Value) RSub(c float64) *Value {
	return New(c).Add(v.Neg())
}

// Div returns v / other, lowered to v * other^-1.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}

// DivScalar returns v / c, lowered to v * c^-1.
func (v *Value) DivScalar(c float64) *Value {
	return v.MulScalar(math.Pow(c, -1))
}

// RDiv returns c / v, lowered to c * v^-1.
func (v *Value) RDiv(c float64) *Value {
	return New(c).Mul(v.Pow(-1))
}

// Tanh returns the hyperbolic tangent of v.
func (v *Value) Tanh() *Value {
	return newNode(ops.NewTanh(), v)
}

// Exp returns e^v.
func (v *Value) Exp() *Value {
	return newNode(ops.NewExp(), v)
}

// Sum returns the left fold start + values[0] + values[1] + ...
//
// With a nil start the fold begins at values[0]. Sum of nothing is a
// constant zero leaf.
func Sum(start *Value, values ...*Value) *Value {
	acc := start
	for _, v := range values {
		if acc == nil {
			acc = v
			continue
		}
		acc = acc.Add(v)
	}
	if acc == nil {
		return New(0)
	}
	return acc
}
