package nn

import (
	"math/rand"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/pkg/errors"
)

// Layer is a set of neurons evaluated over the same input.
//
// Output i is produced by neuron i, so the output width equals the number of
// neurons.
type Layer struct {
	inFeatures int
	neurons    []*Neuron
}

// NewLayer creates a layer of nout randomly initialized neurons with nin inputs each.
func NewLayer(nin, nout int, act Activation, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, act, rng)
	}
	return &Layer{
		inFeatures: nin,
		neurons:    neurons,
	}
}

// NewLayerFromNeurons creates a layer from existing neurons.
//
// All neurons must share the same input width.
func NewLayerFromNeurons(neurons ...*Neuron) (*Layer, error) {
	if len(neurons) == 0 {
		return nil, errors.Wrap(ErrInvalidWidth, "layer: no neurons")
	}
	nin := neurons[0].InFeatures()
	for i, n := range neurons[1:] {
		if n.InFeatures() != nin {
			return nil, errors.Wrapf(ErrShapeMismatch, "layer: neuron %d has %d inputs, neuron 0 has %d", i+1, n.InFeatures(), nin)
		}
	}
	return &Layer{
		inFeatures: nin,
		neurons:    neurons,
	}, nil
}

// Forward evaluates every neuron on x.
//
// Returns ErrShapeMismatch if len(x) differs from the layer's input width.
func (l *Layer) Forward(x []*autodiff.Value) ([]*autodiff.Value, error) {
	if len(x) != l.inFeatures {
		return nil, errors.Wrapf(ErrShapeMismatch, "layer: expected %d inputs, got %d", l.inFeatures, len(x))
	}
	return l.forward(x), nil
}

func (l *Layer) forward(x []*autodiff.Value) []*autodiff.Value {
	outs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.forward(x)
	}
	return outs
}

// Parameters returns the parameters of all neurons, neuron by neuron.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the neurons of the layer.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// InFeatures returns the input width.
func (l *Layer) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output width.
func (l *Layer) OutFeatures() int {
	return len(l.neurons)
}
