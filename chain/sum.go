// SPDX-License-Identifier: MIT
// Package: lvtopo/chain
//
// sum.go - FormalSum, the sparse cell → coefficient container.
//
// Invariants:
//   • terms never holds a coefficient the owning ring reports as zero.
//   • The zero value is an empty, usable sum.
//   • An absent cell reads as the zero value of T, which every ring in
//     package algebra interprets as zero (false, 0, nil *big.Rat).

package chain

import (
	"fmt"
	"slices"
	"strings"
)

// Entry is one (cell, coefficient) pair of a formal sum.
type Entry[C comparable, T any] struct {
	Cell        C
	Coefficient T
}

// FormalSum is a finite linear combination Σ coefficient·cell.
// Mutate it through a Module; read it directly.
type FormalSum[C comparable, T any] struct {
	terms map[C]T
}

// Coefficient returns the coefficient of c, or the zero value of T when c is
// not in the support.
func (s *FormalSum[C, T]) Coefficient(c C) T {
	if s == nil {
		var zero T
		return zero
	}

	return s.terms[c]
}

// Lookup returns the coefficient of c and whether c is in the support.
func (s *FormalSum[C, T]) Lookup(c C) (T, bool) {
	if s == nil {
		var zero T
		return zero, false
	}
	v, ok := s.terms[c]

	return v, ok
}

// Contains reports whether c has a nonzero coefficient.
func (s *FormalSum[C, T]) Contains(c C) bool {
	_, ok := s.Lookup(c)

	return ok
}

// Len returns the number of cells with a nonzero coefficient.
func (s *FormalSum[C, T]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.terms)
}

// IsEmpty reports whether the sum is zero.
func (s *FormalSum[C, T]) IsEmpty() bool { return s.Len() == 0 }

// Cells returns the support in unspecified order.
func (s *FormalSum[C, T]) Cells() []C {
	out := make([]C, 0, s.Len())
	if s == nil {
		return out
	}
	for c := range s.terms {
		out = append(out, c)
	}

	return out
}

// Sorted returns the entries ordered by cmp.
func (s *FormalSum[C, T]) Sorted(cmp func(a, b C) int) []Entry[C, T] {
	out := make([]Entry[C, T], 0, s.Len())
	if s == nil {
		return out
	}
	for c, v := range s.terms {
		out = append(out, Entry[C, T]{Cell: c, Coefficient: v})
	}
	slices.SortFunc(out, func(a, b Entry[C, T]) int { return cmp(a.Cell, b.Cell) })

	return out
}

// Each calls fn for every entry until fn returns false. Order is unspecified.
// fn must not mutate s.
func (s *FormalSum[C, T]) Each(fn func(c C, v T) bool) {
	if s == nil {
		return
	}
	for c, v := range s.terms {
		if !fn(c, v) {
			return
		}
	}
}

// Clone returns an independent copy. Coefficient values are shared, which is
// safe because rings never mutate their operands.
func (s *FormalSum[C, T]) Clone() *FormalSum[C, T] {
	out := &FormalSum[C, T]{terms: make(map[C]T, s.Len())}
	if s == nil {
		return out
	}
	for c, v := range s.terms {
		out.terms[c] = v
	}

	return out
}

// String renders "c1·v1 + c2·v2" with terms ordered by their printed cell,
// or "0" for the empty sum.
func (s *FormalSum[C, T]) String() string {
	if s.IsEmpty() {
		return "0"
	}
	parts := make([]string, 0, s.Len())
	for c, v := range s.terms {
		parts = append(parts, fmt.Sprintf("%v·%v", v, c))
	}
	slices.Sort(parts)

	return strings.Join(parts, " + ")
}

// set stores v at c, deleting the entry when zero reports v as zero.
func (s *FormalSum[C, T]) set(c C, v T, isZero func(T) bool) {
	if isZero(v) {
		delete(s.terms, c)
		return
	}
	if s.terms == nil {
		s.terms = make(map[C]T)
	}
	s.terms[c] = v
}
