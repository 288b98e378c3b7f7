// SPDX-License-Identifier: MIT

package zigzag

import "errors"

var (
	// ErrDuplicateCell indicates Add of a cell already present.
	ErrDuplicateCell = errors.New("zigzag: cell already present")

	// ErrMissingFace indicates Add of a cell with a face not present.
	ErrMissingFace = errors.New("zigzag: face not present")

	// ErrFaceOrder indicates Add of a cell with a face that does not compare
	// below it under the WithComparator order.
	ErrFaceOrder = errors.New("zigzag: face does not sort before its coface")

	// ErrCellNotPresent indicates Remove of an absent cell.
	ErrCellNotPresent = errors.New("zigzag: cell not present")

	// ErrCofacePresent indicates Remove of a cell that still has a coface.
	ErrCofacePresent = errors.New("zigzag: cell still has a coface")

	// ErrInconsistentState indicates a broken internal invariant; the tracker
	// must be discarded.
	ErrInconsistentState = errors.New("zigzag: inconsistent internal state")
)
