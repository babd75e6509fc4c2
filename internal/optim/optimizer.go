// Package optim implements optimization algorithms over scalar parameters.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read the gradients left on parameter leaves by a backward pass
// and write new values through autodiff.Value.SetData.
//
// Example usage:
//
//	optimizer := optim.NewSGD(mlp.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for step := range steps {
//	    optimizer.ZeroGrad()
//	    loss := computeLoss(mlp, data)
//	    loss.Backward()
//	    if err := optimizer.Step(); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"github.com/born-ml/grad/internal/autodiff"
	"github.com/pkg/errors"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter using its current gradient.
	//
	// Returns an error if a parameter is not a leaf.
	Step() error

	// ZeroGrad clears all parameter gradients.
	//
	// This should be called before each backward pass to prevent
	// gradient accumulation from previous iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// update writes a new value into a parameter leaf.
func update(i int, p *autodiff.Value, data float64) error {
	if err := p.SetData(data); err != nil {
		return errors.Wrapf(err, "optim: parameter %d", i)
	}
	return nil
}
