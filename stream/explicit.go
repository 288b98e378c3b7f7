// SPDX-License-Identifier: MIT
// Package: lvtopo/stream
//
// explicit.go - an in-memory filtered complex built cell by cell.
//
// Lifecycle: Add cells in any order, then Finalize once. Finalize sorts by
// (value, Compare), assigns filtration indices as dense ranks of the distinct
// values and validates that every boundary face exists, has dimension one
// less and sorts before its coface. Queries are valid only after Finalize.

package stream

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

type cellInfo[C comparable] struct {
	dim      int
	value    float64
	index    int
	boundary []Term[C]
}

// Explicit is a Filtered built from explicitly listed cells.
type Explicit[C comparable] struct {
	compare   func(a, b C) int
	cells     map[C]*cellInfo[C]
	order     []C
	finalized bool
}

// NewExplicit returns an empty stream whose tie-break order is compare.
func NewExplicit[C comparable](compare func(a, b C) int) *Explicit[C] {
	return &Explicit[C]{compare: compare, cells: make(map[C]*cellInfo[C])}
}

// Add inserts c with dimension dim, filtration value and boundary.
// The boundary slice is retained; callers must not modify it afterwards.
func (e *Explicit[C]) Add(c C, dim int, value float64, boundary []Term[C]) error {
	if e.finalized {
		return fmt.Errorf("Add(%v): %w", c, ErrFinalized)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("Add(%v, %v): %w", c, value, ErrInvalidValue)
	}
	if _, ok := e.cells[c]; ok {
		return fmt.Errorf("Add(%v): %w", c, ErrDuplicateCell)
	}
	e.cells[c] = &cellInfo[C]{dim: dim, value: value, boundary: boundary}
	e.order = append(e.order, c)

	return nil
}

// Finalize sorts and validates the stream. It is idempotent.
func (e *Explicit[C]) Finalize() error {
	if e.finalized {
		return nil
	}
	slices.SortStableFunc(e.order, func(a, b C) int {
		if c := cmp.Compare(e.cells[a].value, e.cells[b].value); c != 0 {
			return c
		}

		return e.compare(a, b)
	})

	rank := -1
	prev := math.Inf(-1)
	position := make(map[C]int, len(e.order))
	for pos, c := range e.order {
		info := e.cells[c]
		if rank < 0 || info.value != prev {
			rank++
			prev = info.value
		}
		info.index = rank
		position[c] = pos
	}

	for pos, c := range e.order {
		info := e.cells[c]
		for _, t := range info.boundary {
			face, ok := e.cells[t.Cell]
			if !ok {
				return fmt.Errorf("Finalize: face %v of %v: %w", t.Cell, c, ErrMissingFace)
			}
			if face.dim != info.dim-1 {
				return fmt.Errorf("Finalize: face %v (dim %d) of %v (dim %d): %w",
					t.Cell, face.dim, c, info.dim, ErrFaceDimension)
			}
			if position[t.Cell] >= pos {
				return fmt.Errorf("Finalize: face %v of %v: %w", t.Cell, c, ErrFaceOrder)
			}
		}
	}
	e.finalized = true

	return nil
}

// Finalized reports whether Finalize succeeded.
func (e *Explicit[C]) Finalized() bool { return e.finalized }

// Size returns the number of cells.
func (e *Explicit[C]) Size() int { return len(e.order) }

// Cells returns a copy of the cells in filtration order. Before Finalize the
// order is insertion order.
func (e *Explicit[C]) Cells() []C { return slices.Clone(e.order) }

// Contains reports whether c was added.
func (e *Explicit[C]) Contains(c C) bool {
	_, ok := e.cells[c]

	return ok
}

// Dimension returns the dimension of c, or -1 if c is unknown.
func (e *Explicit[C]) Dimension(c C) int {
	if info, ok := e.cells[c]; ok {
		return info.dim
	}

	return -1
}

// Boundary returns the boundary of c, or nil if c is unknown.
func (e *Explicit[C]) Boundary(c C) []Term[C] {
	if info, ok := e.cells[c]; ok {
		return info.boundary
	}

	return nil
}

// FiltrationValue returns the value of c (NaN if unknown).
func (e *Explicit[C]) FiltrationValue(c C) float64 {
	if info, ok := e.cells[c]; ok {
		return info.value
	}

	return math.NaN()
}

// FiltrationIndex returns the dense value rank of c (-1 if unknown or not finalized).
func (e *Explicit[C]) FiltrationIndex(c C) int {
	if info, ok := e.cells[c]; ok && e.finalized {
		return info.index
	}

	return -1
}

// Compare is the tie-break order given at construction.
func (e *Explicit[C]) Compare(a, b C) int { return e.compare(a, b) }

// SimplexStream is an Explicit stream of simplices with simplicial boundaries.
type SimplexStream struct {
	*Explicit[Simplex]
}

// NewSimplexStream returns an empty simplicial stream ordered by CompareSimplices.
func NewSimplexStream() *SimplexStream {
	return &SimplexStream{Explicit: NewExplicit(CompareSimplices)}
}

// AddSimplex inserts the simplex on vertices at value.
func (s *SimplexStream) AddSimplex(value float64, vertices ...int) error {
	sx := NewSimplex(vertices...)

	return s.Add(sx, sx.Dimension(), value, sx.Faces())
}

// MaxDimension returns the largest cell dimension, or -1 when empty.
func (e *Explicit[C]) MaxDimension() int {
	m := -1
	for _, info := range e.cells {
		m = max(m, info.dim)
	}

	return m
}
