package autodiff_test

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/born-ml/grad/internal/autodiff/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew tests leaf construction.
func TestNew(t *testing.T) {
	v := autodiff.New(2.5)

	assert.Equal(t, 2.5, v.Data())
	assert.Equal(t, 0.0, v.Grad())
	assert.True(t, v.IsLeaf())
	assert.Equal(t, ops.Leaf, v.Op().Kind)
	assert.Empty(t, v.Operands())
	assert.Equal(t, "Value(data=2.5, grad=0)", v.String())
}

// TestNewLabeled tests the debug label.
func TestNewLabeled(t *testing.T) {
	v := autodiff.NewLabeled(1, "w0")
	assert.Equal(t, "w0", v.Label())
	assert.Equal(t, "Value(label=w0, data=1, grad=0)", v.String())

	v.SetLabel("w1")
	assert.Equal(t, "w1", v.Label())
}

// TestOperators_Forward tests forward values and recorded provenance.
func TestOperators_Forward(t *testing.T) {
	a := autodiff.New(3)
	b := autodiff.New(-2)

	tests := []struct {
		name string
		got  *autodiff.Value
		want float64
		kind ops.Kind
	}{
		{"Add", a.Add(b), 1, ops.Add},
		{"AddScalar", a.AddScalar(4), 7, ops.Add},
		{"Mul", a.Mul(b), -6, ops.Mul},
		{"MulScalar", a.MulScalar(0.5), 1.5, ops.Mul},
		{"Pow", a.Pow(2), 9, ops.Pow},
		{"Neg", a.Neg(), -3, ops.Mul},
		{"Sub", a.Sub(b), 5, ops.Add},
		{"SubScalar", a.SubScalar(1), 2, ops.Add},
		{"RSub", a.RSub(10), 7, ops.Add},
		{"Div", a.Div(b), -1.5, ops.Mul},
		{"DivScalar", a.DivScalar(2), 1.5, ops.Mul},
		{"RDiv", b.RDiv(1), -0.5, ops.Mul},
		{"Tanh", a.Tanh(), math.Tanh(3), ops.Tanh},
		{"Exp", b.Exp(), math.Exp(-2), ops.Exp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.got.Data(), 1e-12)
			assert.Equal(t, tt.kind, tt.got.Op().Kind)
			assert.False(t, tt.got.IsLeaf())
			assert.Equal(t, 0.0, tt.got.Grad())
		})
	}

	// Operands are never mutated by building on top of them.
	assert.Equal(t, 3.0, a.Data())
	assert.Equal(t, -2.0, b.Data())
}

// TestPow_RecordsExponent tests that the exponent lives on the tag.
func TestPow_RecordsExponent(t *testing.T) {
	y := autodiff.New(2).Pow(-1.5)
	assert.Equal(t, ops.Pow, y.Op().Kind)
	assert.Equal(t, -1.5, y.Op().Exponent)
	assert.Equal(t, "**-1.5", y.Op().String())
}

// TestOperands_Deduplicated tests that x + x lists x once.
func TestOperands_Deduplicated(t *testing.T) {
	x := autodiff.New(1)
	y := x.Add(x)

	operands := y.Operands()
	require.Len(t, operands, 1)
	assert.Same(t, x, operands[0])

	z := x.Mul(autodiff.New(2))
	assert.Len(t, z.Operands(), 2)
}

// TestGeneric_MixedOperands tests commutative scalar/node dispatch.
func TestGeneric_MixedOperands(t *testing.T) {
	a := autodiff.New(4)

	assert.Equal(t, 6.0, autodiff.Add(a, 2).Data())
	assert.Equal(t, 6.0, autodiff.Add(2, a).Data())
	assert.Equal(t, 6.0, autodiff.Add(2.0, 4.0).Data())
	assert.Equal(t, 12.0, autodiff.Mul(a, 3).Data())
	assert.Equal(t, 12.0, autodiff.Mul(float32(3), a).Data())
	assert.Equal(t, 1.0, autodiff.Sub(a, int64(3)).Data())
	assert.Equal(t, -1.0, autodiff.Sub(3, a).Data())
	assert.Equal(t, 2.0, autodiff.Div(a, 2).Data())
	assert.Equal(t, 0.5, autodiff.Div(2, a).Data())
	assert.Equal(t, 1.0, autodiff.Div(a, a).Data())

	assert.Same(t, a, autodiff.Lift(a))
	assert.True(t, autodiff.Lift(int32(7)).IsLeaf())
}

// TestGeneric_ConstantOnLeftGradient tests c - x and c / x gradients.
func TestGeneric_ConstantOnLeftGradient(t *testing.T) {
	x := autodiff.New(2)
	autodiff.Sub(5, x).Backward()
	assert.InDelta(t, -1.0, x.Grad(), 1e-12)

	x.ZeroGrad()
	autodiff.Div(4, x).Backward()
	assert.InDelta(t, -1.0, x.Grad(), 1e-12) // -4/x² at x = 2
}

// TestPower tests the run-time checked exponent.
func TestPower(t *testing.T) {
	a := autodiff.New(3)

	y, err := autodiff.Power(a, 2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, y.Data())

	y, err = autodiff.Power(a, float32(0.5))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3), y.Data(), 1e-6)

	y, err = autodiff.Power(a, autodiff.New(2))
	require.Error(t, err)
	assert.Nil(t, y)
	assert.True(t, errors.Is(err, autodiff.ErrNonNumericExponent))
	assert.Contains(t, err.Error(), "*autodiff.Value")

	_, err = autodiff.Power(a, "2")
	assert.ErrorIs(t, err, autodiff.ErrNonNumericExponent)
}

// TestSetData tests leaf-only mutation.
func TestSetData(t *testing.T) {
	w := autodiff.New(1)
	require.NoError(t, w.SetData(0.25))
	assert.Equal(t, 0.25, w.Data())

	y := w.MulScalar(2)
	err := y.SetData(10)
	assert.ErrorIs(t, err, autodiff.ErrNotLeaf)
	assert.Equal(t, 0.5, y.Data())
}

// TestSum tests the left fold helper.
func TestSum(t *testing.T) {
	a, b, c := autodiff.New(1), autodiff.New(2), autodiff.New(3)

	assert.Equal(t, 6.0, autodiff.Sum(a, b, c).Data())
	assert.Equal(t, 5.0, autodiff.Sum(nil, b, c).Data())
	assert.Same(t, a, autodiff.Sum(a))
	assert.Equal(t, 0.0, autodiff.Sum(nil).Data())
}

// TestZeroGrads tests explicit gradient reset.
func TestZeroGrads(t *testing.T) {
	a, b := autodiff.New(1), autodiff.New(2)
	a.Mul(b).Backward()
	require.NotZero(t, a.Grad())

	autodiff.ZeroGrads(a, b)
	assert.Zero(t, a.Grad())
	assert.Zero(t, b.Grad())
}
