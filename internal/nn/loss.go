package nn

import (
	"github.com/born-ml/grad/internal/autodiff"
	"github.com/pkg/errors"
)

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// The loss is an ordinary graph node, so calling Backward on it propagates
// into every parameter that contributed to the predictions.
//
// Example:
//
//	mse := nn.NewMSELoss()
//	loss, err := mse.Forward(predictions, []float64{1, -1, -1, 1})
//	loss.Backward()
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes the MSE loss.
//
// Returns ErrShapeMismatch if the lengths differ or are zero.
func (m *MSELoss) Forward(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error) {
	if len(predictions) != len(targets) {
		return nil, errors.Wrapf(ErrShapeMismatch, "mse: %d predictions, %d targets", len(predictions), len(targets))
	}
	if len(predictions) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "mse: empty input")
	}

	squared := make([]*autodiff.Value, len(predictions))
	for i, p := range predictions {
		squared[i] = p.SubScalar(targets[i]).Pow(2)
	}

	return autodiff.Sum(nil, squared...).DivScalar(float64(len(squared))), nil
}

// Parameters returns an empty slice (loss functions have no trainable parameters).
func (m *MSELoss) Parameters() []*autodiff.Value {
	return nil
}
