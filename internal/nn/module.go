// Package nn implements a feed-forward network composition layer on top of
// the scalar autodiff engine.
//
// This package provides:
//   - Module interface: anything exposing trainable parameters
//   - Parameter: a named trainable leaf
//   - Activation: tanh, exp or identity, resolved once at construction
//   - Neuron: weighted sum of inputs plus bias through an activation
//   - Layer: parallel neurons over a shared input
//   - MLP: sequential layers
//   - MSELoss: mean squared error
//
// Every forward call builds a fresh graph from the module's parameter leaves;
// nothing here differentiates on its own. Call Backward on the result (or on a
// loss built from it) and read the parameter gradients.
package nn

import "github.com/born-ml/grad/internal/autodiff"

// Module is the base interface for all composition components.
type Module interface {
	// Parameters returns all trainable parameters in a stable order.
	//
	// Returns an empty slice for modules without trainable parameters.
	Parameters() []*autodiff.Value
}

// ZeroGrad resets the gradient of every parameter of m.
//
// Gradients accumulate across backward passes; call this before each
// training iteration.
func ZeroGrad(m Module) {
	autodiff.ZeroGrads(m.Parameters()...)
}

// Inputs converts a slice of raw scalars, or of nodes, into nodes.
//
// Scalars become constant leaves; nodes are passed through unchanged.
func Inputs[T autodiff.Operand](xs ...T) []*autodiff.Value {
	out := make([]*autodiff.Value, len(xs))
	for i, x := range xs {
		out[i] = autodiff.Lift(x)
	}
	return out
}
