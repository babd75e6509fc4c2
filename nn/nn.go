// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/born-ml/grad/internal/nn"
)

// Module is the interface of anything exposing trainable parameters.
type Module = nn.Module

// Parameter is a named trainable leaf.
type Parameter = nn.Parameter

// NewParameter creates a named parameter around an existing leaf.
func NewParameter(name string, v *autodiff.Value) *Parameter {
	return nn.NewParameter(name, v)
}

// Activation selects the non-linearity of a neuron.
type Activation = nn.Activation

// Activations.
const (
	Identity = nn.Identity
	Tanh     = nn.Tanh
	Exp      = nn.Exp
)

// ParseActivation resolves an activation name.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Errors.
var (
	ErrShapeMismatch     = nn.ErrShapeMismatch
	ErrUnknownActivation = nn.ErrUnknownActivation
	ErrInvalidWidth      = nn.ErrInvalidWidth
)

// Layers

// Neuron computes act(b + Σ wᵢ·xᵢ).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin randomly initialized weights.
func NewNeuron(nin int, act Activation, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(nin, act, rng)
}

// NewNeuronFromWeights creates a neuron with fixed parameters.
func NewNeuronFromWeights(weights []float64, bias float64, act Activation) *Neuron {
	return nn.NewNeuronFromWeights(weights, bias, act)
}

// Layer is a set of neurons evaluated over the same input.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(nin, nout int, act Activation, rng *rand.Rand) *Layer {
	return nn.NewLayer(nin, nout, act, rng)
}

// NewLayerFromNeurons creates a layer from existing neurons.
func NewLayerFromNeurons(neurons ...*Neuron) (*Layer, error) {
	return nn.NewLayerFromNeurons(neurons...)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// MLPConfig holds optional construction settings for an MLP.
type MLPConfig = nn.MLPConfig

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
//
// Example:
//
//	mlp, err := nn.NewMLP(2, []int{16, 16, 1}, nn.MLPConfig{
//	    Activations: []string{"tanh", "tanh", "identity"},
//	})
func NewMLP(nin int, nouts []int, cfg MLPConfig) (*MLP, error) {
	return nn.NewMLP(nin, nouts, cfg)
}

// NewMLPFromLayers chains existing layers.
func NewMLPFromLayers(layers ...*Layer) (*MLP, error) {
	return nn.NewMLPFromLayers(layers...)
}

// Loss functions

// MSELoss computes Mean Squared Error loss.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// Utilities

// Inputs converts raw scalars, or nodes, into nodes.
func Inputs[T autodiff.Operand](xs ...T) []*autodiff.Value {
	return nn.Inputs(xs...)
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// NewRand returns a random source seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return nn.NewRand(seed)
}

// DefaultSeed seeds the random source used when none is injected.
const DefaultSeed = nn.DefaultSeed
