package autodiff

import "github.com/pkg/errors"

var (
	// ErrNonNumericExponent is returned by Power when the exponent is not a plain number.
	ErrNonNumericExponent = errors.New("exponent must be a numeric constant")

	// ErrNotLeaf is returned when mutating the datum of an internal node.
	ErrNotLeaf = errors.New("value is not a leaf")
)
