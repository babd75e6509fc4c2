package optim

import (
	"github.com/born-ml/grad/internal/autodiff"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(mlp.Parameters(), optim.SGDConfig{
//	    LR:       0.05,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*autodiff.Value
	lr         float64
	momentum   float64
	velocities []float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(params []*autodiff.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make([]float64, len(params)),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step() error {
	for i, p := range s.params {
		g := p.Grad()
		if s.momentum != 0 {
			s.velocities[i] = s.momentum*s.velocities[i] + g
			g = s.velocities[i]
		}
		if err := update(i, p, p.Data()-s.lr*g); err != nil {
			return err
		}
	}
	return nil
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	autodiff.ZeroGrads(s.params...)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR sets the learning rate, e.g. for a decay schedule.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
