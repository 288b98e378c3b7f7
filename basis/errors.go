// SPDX-License-Identifier: MIT

package basis

import "errors"

var (
	// ErrNotInBasis indicates a cell that the index does not contain.
	ErrNotInBasis = errors.New("basis: cell not in basis")

	// ErrOutOfRange indicates a position outside [0, Dimension()).
	ErrOutOfRange = errors.New("basis: position out of range")
)
