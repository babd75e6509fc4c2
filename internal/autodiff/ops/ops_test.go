package ops_test

import (
	"math"
	"testing"

	"github.com/born-ml/grad/internal/autodiff/ops"
	"github.com/stretchr/testify/assert"
)

// TestForward covers the forward formula of every primitive.
func TestForward(t *testing.T) {
	tests := []struct {
		name string
		op   ops.Op
		in   []float64
		want float64
	}{
		{"add", ops.NewAdd(), []float64{2, 3}, 5},
		{"mul", ops.NewMul(), []float64{2, -3}, -6},
		{"pow cube", ops.NewPow(3), []float64{2}, 8},
		{"pow reciprocal", ops.NewPow(-1), []float64{4}, 0.25},
		{"tanh zero", ops.NewTanh(), []float64{0}, 0},
		{"tanh", ops.NewTanh(), []float64{0.7}, math.Tanh(0.7)},
		{"exp zero", ops.NewExp(), []float64{0}, 1},
		{"exp", ops.NewExp(), []float64{1.5}, math.Exp(1.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ops.Forward(tt.op, tt.in...), 1e-12)
		})
	}
}

// TestBackward covers the local derivative rule of every primitive.
func TestBackward(t *testing.T) {
	tanhOut := math.Tanh(0.3)

	tests := []struct {
		name    string
		op      ops.Op
		out     float64
		outGrad float64
		in      []float64
		want    []float64
	}{
		{"add", ops.NewAdd(), 5, 2, []float64{2, 3}, []float64{2, 2}},
		{"mul", ops.NewMul(), 6, 1.5, []float64{2, 3}, []float64{4.5, 3}},
		{"pow", ops.NewPow(3), 8, 1, []float64{2}, []float64{12}},
		{"pow negative exponent", ops.NewPow(-1), 0.5, 1, []float64{2}, []float64{-0.25}},
		{"tanh", ops.NewTanh(), tanhOut, 2, []float64{0.3}, []float64{2 * (1 - tanhOut*tanhOut)}},
		{"exp", ops.NewExp(), math.E, 3, []float64{1}, []float64{3 * math.E}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ops.Backward(tt.op, tt.out, tt.outGrad, tt.in...)
			assert.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-12, "slot %d", i)
			}
		})
	}
}

// TestBackward_Leaf verifies leaves propagate nothing.
func TestBackward_Leaf(t *testing.T) {
	assert.Nil(t, ops.Backward(ops.NewLeaf(), 1, 1))
}

// TestArityMismatch verifies wrong operand counts panic.
func TestArityMismatch(t *testing.T) {
	assert.Panics(t, func() { ops.Forward(ops.NewAdd(), 1) })
	assert.Panics(t, func() { ops.Backward(ops.NewTanh(), 0, 1, 1, 2) })
	assert.Panics(t, func() { ops.Forward(ops.NewLeaf()) })
}

// TestOpString verifies op symbols.
func TestOpString(t *testing.T) {
	assert.Equal(t, "", ops.NewLeaf().String())
	assert.Equal(t, "+", ops.NewAdd().String())
	assert.Equal(t, "*", ops.NewMul().String())
	assert.Equal(t, "**3", ops.NewPow(3).String())
	assert.Equal(t, "**-0.5", ops.NewPow(-0.5).String())
	assert.Equal(t, "tanh", ops.NewTanh().String())
	assert.Equal(t, "exp", ops.NewExp().String())
	assert.Equal(t, "Kind(42)", ops.Kind(42).String())
}

// TestArity verifies operand slot counts per kind.
func TestArity(t *testing.T) {
	assert.Equal(t, 0, ops.Leaf.Arity())
	assert.Equal(t, 2, ops.Add.Arity())
	assert.Equal(t, 2, ops.Mul.Arity())
	assert.Equal(t, 1, ops.Pow.Arity())
	assert.Equal(t, 1, ops.Tanh.Arity())
	assert.Equal(t, 1, ops.Exp.Arity())
}
