// SPDX-License-Identifier: MIT

package homology

import "errors"

var (
	// ErrMalformedStream indicates a stream that is not a valid filtration:
	// not finalized, cells repeated or out of filtration order, indices and
	// values that disagree, or a face missing or ordered after its coface.
	ErrMalformedStream = errors.New("homology: malformed filtered stream")

	// ErrInvalidSubcomplex indicates a relative subcomplex that is not closed
	// under taking faces.
	ErrInvalidSubcomplex = errors.New("homology: subcomplex is not closed under faces")

	// ErrInvalidConfig indicates an unknown coefficient system or variant, or
	// an invalid prime, passed to Select.
	ErrInvalidConfig = errors.New("homology: invalid configuration")

	// ErrComparatorType indicates a WithComparator option whose cell type
	// differs from the algorithm's.
	ErrComparatorType = errors.New("homology: comparator cell type mismatch")
)
