package nn

import "github.com/pkg/errors"

var (
	// ErrShapeMismatch is returned when an input sequence does not match the declared width.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrUnknownActivation is returned when an activation name cannot be resolved.
	ErrUnknownActivation = errors.New("unknown activation")

	// ErrInvalidWidth is returned when a layer width is not positive.
	ErrInvalidWidth = errors.New("width must be positive")
)
