package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBackward_SelfUse tests y = x + x accumulates both slots.
func TestBackward_SelfUse(t *testing.T) {
	x := autodiff.New(3)
	y := x.Add(x)

	y.Backward()

	assert.Equal(t, 1.0, y.Grad())
	assert.Equal(t, 2.0, x.Grad())
}

// TestBackward_SelfMul tests y = x * x gives 2x.
func TestBackward_SelfMul(t *testing.T) {
	x := autodiff.New(3)
	x.Mul(x).Backward()
	assert.Equal(t, 6.0, x.Grad())
}

// TestBackward_Diamond tests d = a*b + a*c with shared leaf a.
func TestBackward_Diamond(t *testing.T) {
	a := autodiff.New(2)
	b := autodiff.New(-3)
	c := autodiff.New(10)
	d := a.Mul(b).Add(a.Mul(c))

	d.Backward()

	assert.Equal(t, b.Data()+c.Data(), a.Grad())
	assert.Equal(t, a.Data(), b.Grad())
	assert.Equal(t, a.Data(), c.Grad())
}

// TestBackward_SharedIntermediate tests a diamond whose shared node is not a leaf.
//
//	e = a + b; f = e * e + e  =>  df/de = 2e + 1
func TestBackward_SharedIntermediate(t *testing.T) {
	a := autodiff.New(1)
	b := autodiff.New(2)
	e := a.Add(b)
	f := e.Mul(e).Add(e)

	f.Backward()

	want := 2*e.Data() + 1
	assert.Equal(t, want, e.Grad())
	assert.Equal(t, want, a.Grad())
	assert.Equal(t, want, b.Grad())
}

// TestBackward_PowerRule tests y = a**3 at a = 2.
func TestBackward_PowerRule(t *testing.T) {
	a := autodiff.New(2)
	a.Pow(3).Backward()
	assert.Equal(t, 12.0, a.Grad())
}

// TestBackward_Tanh tests dt/da = 1 - t².
func TestBackward_Tanh(t *testing.T) {
	for _, x := range []float64{-2, -0.5, 0, 0.3, 1.7} {
		a := autodiff.New(x)
		out := a.Tanh()
		out.Backward()
		assert.InDelta(t, 1-out.Data()*out.Data(), a.Grad(), 1e-9, "x=%v", x)
	}
}

// TestBackward_ExpAccumulates tests exp adds into a shared operand.
func TestBackward_ExpAccumulates(t *testing.T) {
	a := autodiff.New(0.5)
	y := a.Exp().Add(a) // dy/da = e^a + 1
	y.Backward()
	assert.InDelta(t, math.Exp(0.5)+1, a.Grad(), 1e-12)

	b := autodiff.New(0.5)
	z := b.Exp().Mul(b.Exp()) // e^{2b}, dz/db = 2e^{2b}
	z.Backward()
	assert.InDelta(t, 2*math.Exp(1), b.Grad(), 1e-12)
}

// TestBackward_UnreachedLeaf tests leaves outside the root's ancestry.
func TestBackward_UnreachedLeaf(t *testing.T) {
	a := autodiff.New(1)
	b := autodiff.New(2)
	unused := autodiff.New(5)
	other := unused.Mul(a) // shares a, but is not an ancestor of y

	y := a.Add(b)
	y.Backward()

	assert.Equal(t, 0.0, unused.Grad())
	assert.Equal(t, 0.0, other.Grad())
	assert.Equal(t, 1.0, a.Grad())
}

// TestBackward_DoubleRun tests that a second pass adds the same amounts again.
func TestBackward_DoubleRun(t *testing.T) {
	a := autodiff.New(2)
	b := autodiff.New(-3)
	c := autodiff.New(4)
	m := a.Mul(b)
	y := m.Add(c).Tanh()

	y.Backward()
	first := map[*autodiff.Value]float64{a: a.Grad(), b: b.Grad(), c: c.Grad(), m: m.Grad()}

	y.Backward()

	for v, g := range first {
		assert.InDelta(t, 2*g, v.Grad(), 1e-12, "%s", v)
	}
	assert.Equal(t, 1.0, y.Grad())
}

// TestBackward_IntermediateRoot tests backward on a non-ultimate node.
func TestBackward_IntermediateRoot(t *testing.T) {
	a := autodiff.New(2)
	b := autodiff.New(5)
	c := autodiff.New(7)
	m := a.Mul(b)
	y := m.Add(c)

	m.Backward()

	assert.Equal(t, 1.0, m.Grad())
	assert.Equal(t, 5.0, a.Grad())
	assert.Equal(t, 2.0, b.Grad())
	assert.Equal(t, 0.0, c.Grad())
	assert.Equal(t, 0.0, y.Grad())
}

// TestBackward_Leaf tests backward on a lone leaf.
func TestBackward_Leaf(t *testing.T) {
	a := autodiff.New(4)
	a.Backward()
	assert.Equal(t, 1.0, a.Grad())
}

// TestBackward_Nil tests that a nil root is a no-op.
func TestBackward_Nil(t *testing.T) {
	assert.NotPanics(t, func() { autodiff.Backward(nil) })
	assert.Nil(t, autodiff.TopologicalOrder(nil))
}

// TestBackward_DeepChain tests a graph deeper than a recursive walk would like.
func TestBackward_DeepChain(t *testing.T) {
	const depth = 200_000

	x := autodiff.New(1)
	y := x
	for i := 0; i < depth; i++ {
		y = y.AddScalar(1)
	}

	y.Backward()

	assert.Equal(t, float64(depth+1), y.Data())
	assert.Equal(t, 1.0, x.Grad())
}

// TestTopologicalOrder tests ordering and uniqueness on a diamond.
func TestTopologicalOrder(t *testing.T) {
	a := autodiff.New(1)
	b := autodiff.New(2)
	c := autodiff.New(3)
	ab := a.Mul(b)
	ac := a.Mul(c)
	d := ab.Add(ac)

	order := autodiff.TopologicalOrder(d)

	require.Len(t, order, 6)
	assert.Same(t, d, order[len(order)-1])

	pos := make(map[*autodiff.Value]int, len(order))
	for i, v := range order {
		_, dup := pos[v]
		require.False(t, dup, "node %s appears twice", v)
		pos[v] = i
	}
	for _, v := range order {
		for _, operand := range v.Operands() {
			assert.Less(t, pos[operand], pos[v], "%s must precede %s", operand, v)
		}
	}
}

// TestTopologicalOrder_Deterministic tests that repeated calls agree.
func TestTopologicalOrder_Deterministic(t *testing.T) {
	a := autodiff.New(1)
	b := autodiff.New(2)
	y := a.Mul(b).Add(a.Tanh()).Sub(b.Exp())

	first := autodiff.TopologicalOrder(y)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, autodiff.TopologicalOrder(y))
	}
}
