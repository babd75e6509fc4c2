package autodiff

import "github.com/pkg/errors"

// Scalar is the set of raw numeric types accepted wherever a node is.
type Scalar interface {
	float64 | float32 | int | int32 | int64
}

// Operand is either a graph node or a raw scalar that is wrapped as a
// constant leaf on use.
type Operand interface {
	Scalar | *Value
}

// Lift returns x itself when it is a node, or a new constant leaf otherwise.
func Lift[T Operand](x T) *Value {
	if v, ok := any(x).(*Value); ok {
		return v
	}
	f, _ := asFloat(any(x))
	return New(f)
}

// Add returns a + b for any mix of nodes and scalars.
func Add[A, B Operand](a A, b B) *Value {
	return Lift(a).Add(Lift(b))
}

// Mul returns a * b for any mix of nodes and scalars.
func Mul[A, B Operand](a A, b B) *Value {
	return Lift(a).Mul(Lift(b))
}

// Sub returns a - b for any mix of nodes and scalars.
//
// A scalar b is negated before wrapping; a node b goes through Neg.
func Sub[A, B Operand](a A, b B) *Value {
	if c, ok := asFloat(any(b)); ok {
		return Lift(a).SubScalar(c)
	}
	return Lift(a).Sub(Lift(b))
}

// Div returns a / b for any mix of nodes and scalars.
//
// A scalar b is inverted before wrapping; a node b goes through Pow(-1).
func Div[A, B Operand](a A, b B) *Value {
	if c, ok := asFloat(any(b)); ok {
		return Lift(a).DivScalar(c)
	}
	return Lift(a).Div(Lift(b))
}

// Power returns x^k where k must be a plain number.
//
// Unlike Pow it accepts an exponent of any type and checks it at call time:
// a *Value or any other non-numeric exponent yields ErrNonNumericExponent and
// no node is allocated.
func Power(x *Value, k any) (*Value, error) {
	f, ok := asFloat(k)
	if !ok {
		return nil, errors.Wrapf(ErrNonNumericExponent, "power: got %T", k)
	}
	return x.Pow(f), nil
}

func asFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
