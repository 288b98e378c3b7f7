// SPDX-License-Identifier: MIT

package stream

import "errors"

var (
	// ErrDuplicateCell indicates a cell added twice.
	ErrDuplicateCell = errors.New("stream: duplicate cell")

	// ErrMissingFace indicates a boundary face that is not part of the stream.
	ErrMissingFace = errors.New("stream: boundary face not in stream")

	// ErrFaceOrder indicates a face that sorts after its coface.
	ErrFaceOrder = errors.New("stream: face ordered after coface")

	// ErrFaceDimension indicates a boundary face whose dimension is not dim-1.
	ErrFaceDimension = errors.New("stream: face dimension is not dim-1")

	// ErrInvalidValue indicates a NaN or infinite filtration value.
	ErrInvalidValue = errors.New("stream: filtration value must be finite")

	// ErrFinalized indicates a mutation after Finalize.
	ErrFinalized = errors.New("stream: stream already finalized")

	// ErrNotFinalized indicates a query before Finalize.
	ErrNotFinalized = errors.New("stream: stream not finalized")
)
