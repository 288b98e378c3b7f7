// SPDX-License-Identifier: MIT
// Package: lvtopo/basis
//
// index.go - ordered, immutable cell ↔ position mapping.

package basis

import (
	"fmt"
	"iter"
)

// Index is an ordered basis. Immutable after construction.
type Index[C comparable] struct {
	elems []C
	pos   map[C]int
}

// NewIndex builds an index over cells in order; duplicates keep their first position.
func NewIndex[C comparable](cells []C) *Index[C] {
	ix := &Index[C]{elems: make([]C, 0, len(cells)), pos: make(map[C]int, len(cells))}
	for _, c := range cells {
		ix.add(c)
	}

	return ix
}

// IndexOf builds an index over the cells yielded by seq.
func IndexOf[C comparable](seq iter.Seq[C]) *Index[C] {
	ix := &Index[C]{pos: make(map[C]int)}
	for c := range seq {
		ix.add(c)
	}

	return ix
}

func (ix *Index[C]) add(c C) {
	if _, ok := ix.pos[c]; ok {
		return
	}
	ix.pos[c] = len(ix.elems)
	ix.elems = append(ix.elems, c)
}

// Dimension returns the number of distinct cells.
func (ix *Index[C]) Dimension() int { return len(ix.elems) }

// Contains reports whether c is in the basis.
func (ix *Index[C]) Contains(c C) bool {
	_, ok := ix.pos[c]

	return ok
}

// Index returns the position of c.
func (ix *Index[C]) Index(c C) (int, error) {
	i, ok := ix.pos[c]
	if !ok {
		return -1, fmt.Errorf("Index(%v): %w", c, ErrNotInBasis)
	}

	return i, nil
}

// Element returns the cell at position i.
func (ix *Index[C]) Element(i int) (C, error) {
	if i < 0 || i >= len(ix.elems) {
		var zero C
		return zero, fmt.Errorf("Element(%d) of %d: %w", i, len(ix.elems), ErrOutOfRange)
	}

	return ix.elems[i], nil
}

// All yields the cells in basis order.
func (ix *Index[C]) All() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		for i, c := range ix.elems {
			if !yield(i, c) {
				return
			}
		}
	}
}
