package math

import "errors"

var (
	// ErrInvalidArgument is returned for degenerate inputs: a zero rotation axis,
	// a zero-length vector to normalize or an impossible projection frustum.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSingular is returned when inverting a matrix whose determinant is zero.
	ErrSingular = errors.New("singular matrix")
)
