// SPDX-License-Identifier: MIT

package stream

// Term is one face of a boundary with its incidence number.
type Term[C comparable] struct {
	Cell        C
	Coefficient int
}

// Boundary answers dimension and boundary queries for cells of type C.
type Boundary[C comparable] interface {
	// Dimension returns the dimension of c.
	Dimension(c C) int
	// Boundary returns the codimension-1 faces of c with incidence numbers.
	Boundary(c C) []Term[C]
}

// Filtered is a finite filtered complex.
type Filtered[C comparable] interface {
	Boundary[C]
	// Size returns the number of cells.
	Size() int
	// Cells returns the cells in filtration order.
	Cells() []C
	// FiltrationValue returns the real-valued filtration of c.
	FiltrationValue(c C) float64
	// FiltrationIndex returns the rank of c's value among the distinct values.
	FiltrationIndex(c C) int
	// Compare orders cells that share a filtration index.
	Compare(a, b C) int
}
