package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/pkg/errors"
)

// Activation selects the non-linearity applied to a neuron's weighted sum.
//
// Names are resolved to an Activation once, when a module is built, so an
// unknown name never survives to the first forward call.
type Activation uint8

const (
	// Identity passes the weighted sum through unchanged.
	Identity Activation = iota
	// Tanh applies tanh(x), squashing into (-1, 1).
	Tanh
	// Exp applies e^x.
	Exp
)

// ParseActivation resolves an activation name.
//
// Accepted names: "tanh", "exp", "identity" and "linear" (case-insensitive).
// Anything else returns ErrUnknownActivation.
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(name) {
	case "tanh":
		return Tanh, nil
	case "exp":
		return Exp, nil
	case "identity", "linear":
		return Identity, nil
	default:
		return 0, errors.Wrapf(ErrUnknownActivation, "%q", name)
	}
}

// Apply applies the activation to x.
func (a Activation) Apply(x *autodiff.Value) *autodiff.Value {
	switch a {
	case Tanh:
		return x.Tanh()
	case Exp:
		return x.Exp()
	case Identity:
		return x
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", uint8(a)))
	}
}

// String returns the canonical activation name.
func (a Activation) String() string {
	switch a {
	case Identity:
		return "identity"
	case Tanh:
		return "tanh"
	case Exp:
		return "exp"
	default:
		return fmt.Sprintf("Activation(%d)", uint8(a))
	}
}
