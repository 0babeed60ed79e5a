package plotview

import "errors"

// Errors returned by plotview operations.
var (
	// ErrSingularMatrix is returned when a transform with a (near) zero
	// determinant is inverted.
	ErrSingularMatrix = errors.New("plotview: singular matrix")

	// ErrInvalidSize is returned for negative or non-finite canvas sizes.
	ErrInvalidSize = errors.New("plotview: invalid canvas size")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("plotview: invalid config")
)
