package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/pkg/errors"
)

// MLPConfig holds optional construction settings for an MLP.
type MLPConfig struct {
	// Activations names the activation of each layer. Nil means "tanh" for
	// every layer; otherwise it must have one entry per layer.
	Activations []string

	// Rand is the source for parameter initialization. Nil means a source
	// seeded with DefaultSeed.
	Rand *rand.Rand
}

// MLP is a multi-layer perceptron: layers applied in sequence, the output of
// each layer being the input of the next.
//
// Example:
//
//	mlp, err := nn.NewMLP(3, []int{4, 4, 1}, nn.MLPConfig{
//	    Activations: []string{"tanh", "tanh", "identity"},
//	    Rand:        nn.NewRand(42),
//	})
//	if err != nil {
//	    return err
//	}
//	out, err := mlp.ForwardScalar(nn.Inputs(2.0, 3.0, -1.0))
type MLP struct {
	inFeatures int
	layers     []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
//
// Every activation name is resolved here; an unknown name returns
// ErrUnknownActivation before any parameter is allocated.
func NewMLP(nin int, nouts []int, cfg MLPConfig) (*MLP, error) {
	if nin <= 0 {
		return nil, errors.Wrapf(ErrInvalidWidth, "mlp: input width %d", nin)
	}
	if len(nouts) == 0 {
		return nil, errors.Wrap(ErrInvalidWidth, "mlp: no layers")
	}
	for i, n := range nouts {
		if n <= 0 {
			return nil, errors.Wrapf(ErrInvalidWidth, "mlp: layer %d width %d", i, n)
		}
	}

	acts, err := resolveActivations(cfg.Activations, len(nouts))
	if err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = NewRand(DefaultSeed)
	}

	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range nouts {
		layers[i] = NewLayer(sizes[i], sizes[i+1], acts[i], rng)
	}

	m := &MLP{
		inFeatures: nin,
		layers:     layers,
	}
	for _, p := range m.NamedParameters() {
		p.Value().SetLabel(p.Name())
	}
	return m, nil
}

// NewMLPFromLayers chains existing layers.
//
// The input width of each layer must equal the output width of the previous one.
func NewMLPFromLayers(layers ...*Layer) (*MLP, error) {
	if len(layers) == 0 {
		return nil, errors.Wrap(ErrInvalidWidth, "mlp: no layers")
	}
	for i := 1; i < len(layers); i++ {
		if layers[i].InFeatures() != layers[i-1].OutFeatures() {
			return nil, errors.Wrapf(ErrShapeMismatch, "mlp: layer %d expects %d inputs, layer %d produces %d",
				i, layers[i].InFeatures(), i-1, layers[i-1].OutFeatures())
		}
	}
	return &MLP{
		inFeatures: layers[0].InFeatures(),
		layers:     layers,
	}, nil
}

func resolveActivations(names []string, n int) ([]Activation, error) {
	acts := make([]Activation, n)
	if names == nil {
		for i := range acts {
			acts[i] = Tanh
		}
		return acts, nil
	}
	if len(names) != n {
		return nil, errors.Wrapf(ErrShapeMismatch, "mlp: %d activations for %d layers", len(names), n)
	}
	for i, name := range names {
		act, err := ParseActivation(name)
		if err != nil {
			return nil, errors.Wrapf(err, "mlp: layer %d", i)
		}
		acts[i] = act
	}
	return acts, nil
}

// Forward builds a fresh graph for input x and returns the last layer's outputs.
//
// Returns ErrShapeMismatch if len(x) differs from the input width.
func (m *MLP) Forward(x []*autodiff.Value) ([]*autodiff.Value, error) {
	if len(x) != m.inFeatures {
		return nil, errors.Wrapf(ErrShapeMismatch, "mlp: expected %d inputs, got %d", m.inFeatures, len(x))
	}
	for _, l := range m.layers {
		x = l.forward(x)
	}
	return x, nil
}

// ForwardFloats is Forward on raw scalar inputs.
func (m *MLP) ForwardFloats(x []float64) ([]*autodiff.Value, error) {
	return m.Forward(Inputs(x...))
}

// ForwardScalar is Forward for networks whose last layer has a single neuron.
func (m *MLP) ForwardScalar(x []*autodiff.Value) (*autodiff.Value, error) {
	if w := m.OutFeatures(); w != 1 {
		return nil, errors.Wrapf(ErrShapeMismatch, "mlp: single output requested, last layer has %d", w)
	}
	outs, err := m.Forward(x)
	if err != nil {
		return nil, err
	}
	return outs[0], nil
}

// Parameters returns all parameters, layer by layer.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// NamedParameters returns all parameters with hierarchical names, in the same
// order as Parameters.
func (m *MLP) NamedParameters() []*Parameter {
	var params []*Parameter
	for li, l := range m.layers {
		for ni, n := range l.neurons {
			prefix := fmt.Sprintf("layer%d.neuron%d", li, ni)
			for wi, w := range n.weights {
				params = append(params, NewParameter(fmt.Sprintf("%s.w%d", prefix, wi), w))
			}
			params = append(params, NewParameter(prefix+".b", n.bias))
		}
	}
	return params
}

// Layers returns the layers in evaluation order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// InFeatures returns the input width.
func (m *MLP) InFeatures() int {
	return m.inFeatures
}

// OutFeatures returns the width of the last layer.
func (m *MLP) OutFeatures() int {
	return m.layers[len(m.layers)-1].OutFeatures()
}
