package nn

import (
	"math/rand"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/pkg/errors"
)

// Neuron computes act(b + Σ wᵢ·xᵢ).
//
// Weights are drawn from U(-1, 1), as is the bias.
//
// Example:
//
//	n := nn.NewNeuron(2, nn.Tanh, nn.NewRand(42))
//	out, err := n.Forward(nn.Inputs(1.0, -2.0))
type Neuron struct {
	weights []*autodiff.Value
	bias    *autodiff.Value
	act     Activation
}

// NewNeuron creates a neuron with nin randomly initialized weights.
func NewNeuron(nin int, act Activation, rng *rand.Rand) *Neuron {
	return &Neuron{
		weights: Uniform(nin, rng),
		bias:    autodiff.New(uniform(rng)),
		act:     act,
	}
}

// NewNeuronFromWeights creates a neuron with fixed parameters.
func NewNeuronFromWeights(weights []float64, bias float64, act Activation) *Neuron {
	w := make([]*autodiff.Value, len(weights))
	for i, x := range weights {
		w[i] = autodiff.New(x)
	}
	return &Neuron{
		weights: w,
		bias:    autodiff.New(bias),
		act:     act,
	}
}

// Forward builds act(b + w·x) for one input vector.
//
// Returns ErrShapeMismatch if len(x) differs from the number of weights.
func (n *Neuron) Forward(x []*autodiff.Value) (*autodiff.Value, error) {
	if len(x) != len(n.weights) {
		return nil, errors.Wrapf(ErrShapeMismatch, "neuron: expected %d inputs, got %d", len(n.weights), len(x))
	}
	return n.forward(x), nil
}

// forward assumes the width has already been checked.
func (n *Neuron) forward(x []*autodiff.Value) *autodiff.Value {
	products := make([]*autodiff.Value, len(n.weights))
	for i, w := range n.weights {
		products[i] = w.Mul(x[i])
	}
	return n.act.Apply(autodiff.Sum(n.bias, products...))
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Weights returns the weight leaves.
func (n *Neuron) Weights() []*autodiff.Value {
	return n.weights
}

// Bias returns the bias leaf.
func (n *Neuron) Bias() *autodiff.Value {
	return n.bias
}

// Activation returns the activation applied by the neuron.
func (n *Neuron) Activation() Activation {
	return n.act
}

// InFeatures returns the number of inputs.
func (n *Neuron) InFeatures() int {
	return len(n.weights)
}
