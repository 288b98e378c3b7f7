// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/algebra"
	"github.com/katalvlaran/lvtopo/basis"
	"github.com/katalvlaran/lvtopo/sparse"
	"github.com/katalvlaran/lvtopo/stream"
)

const methodBoundaryMatrix = "BoundaryMatrix"

// BoundaryMatrix returns ∂ of s over f with rows and columns in reduction
// order: entry (i, j) is the incidence of cell i in the boundary of cell j,
// and ix maps cells to positions. Options act as for the algorithms:
// cells above the maximum dimension plus one are dropped and a comparator
// reorders ties. The stream is validated the same way.
func BoundaryMatrix[C comparable, T any](f algebra.Field[T], s stream.Filtered[C], opts ...Option) (*sparse.Matrix[T], *basis.Index[C], error) {
	e := newEngine[C, T](f, nil, opts)
	p, err := e.prepare(methodBoundaryMatrix, s)
	if err != nil {
		return nil, nil, err
	}
	rows, err := e.boundaryRows(p)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodBoundaryMatrix, err)
	}

	return rows.Transpose(), p.ix, nil
}
