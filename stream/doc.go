// SPDX-License-Identifier: MIT

// Package stream defines the filtered-complex contract consumed by the
// persistence algorithms, and ships concrete complexes to feed them.
//
// 🚀 Contract:
//
//	Boundary[C] - Dimension(c) and Boundary(c): the codimension-1 faces of a
//	              cell with their integer incidence numbers.
//	Filtered[C] - a Boundary[C] over a finite, ordered cell set with a
//	              filtration value and index per cell and a tie-break Compare.
//
// The algorithms only need two guarantees: every face of a cell is itself in
// the stream, and it appears no later than the cell in (index, Compare) order.
//
// Implementations:
//
//	Simplex        - comparable sorted vertex tuple; Faces carry ±1 signs.
//	Simplicial     - the Boundary operator of simplices.
//	Explicit[C]    - cells added one at a time with value and boundary, so
//	                 CW/cellular complexes (incidence 2, 0, …) are expressible.
//	                 Finalize sorts, ranks values and validates closure.
//	SimplexStream  - Explicit[Simplex] with AddSimplex(value, vertices...).
package stream
