package nn

import (
	"github.com/born-ml/grad/internal/autodiff"
)

// Parameter is a trainable leaf together with a descriptive name.
//
// Names follow the module hierarchy, e.g. "layer1.neuron0.w2" or
// "layer0.neuron3.b".
//
// Example:
//
//	for _, p := range mlp.NamedParameters() {
//	    fmt.Println(p.Name(), p.Value().Data(), p.Value().Grad())
//	}
type Parameter struct {
	name  string
	value *autodiff.Value
}

// NewParameter creates a named parameter around an existing leaf.
func NewParameter(name string, v *autodiff.Value) *Parameter {
	return &Parameter{
		name:  name,
		value: v,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the underlying leaf.
func (p *Parameter) Value() *autodiff.Value {
	return p.value
}

// Grad returns the accumulated gradient of the leaf.
func (p *Parameter) Grad() float64 {
	return p.value.Grad()
}

// ZeroGrad clears the gradient of the leaf.
func (p *Parameter) ZeroGrad() {
	p.value.ZeroGrad()
}
