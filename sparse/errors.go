// SPDX-License-Identifier: MIT

package sparse

import "errors"

var (
	// ErrOutOfRange indicates an index outside [0, dim).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates operands of incompatible shape.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrInvalidDimension indicates a negative dimension at construction.
	ErrInvalidDimension = errors.New("sparse: invalid dimension")
)
