// SPDX-License-Identifier: MIT

package bootstrap

import "errors"

var (
	// ErrInvalidSize indicates a sample size outside [0, len(cells)].
	ErrInvalidSize = errors.New("bootstrap: sample size out of range")

	// ErrNeedRandSource indicates a nil *rand.Rand.
	ErrNeedRandSource = errors.New("bootstrap: random source required")

	// ErrNoSamples indicates an empty sample list.
	ErrNoSamples = errors.New("bootstrap: no samples")

	// ErrTooFewBarcodes indicates fewer than two barcodes to compare.
	ErrTooFewBarcodes = errors.New("bootstrap: need at least two barcodes")

	// ErrUnknownCell indicates a cell that is not part of the source stream.
	ErrUnknownCell = errors.New("bootstrap: cell not in stream")
)
