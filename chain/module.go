// SPDX-License-Identifier: MIT
// Package: lvtopo/chain
//
// module.go - free-module arithmetic over a fixed ring.
//
// Contract:
//   • Non-destructive operations (Add, Subtract, Multiply, Negate, Of) return
//     fresh sums and never alias their inputs.
//   • In-place operations (AddTerm, Accumulate, AccumulateScaled) mutate only
//     their first argument.
//   • Every result respects the no-zero-coefficient invariant.

package chain

import "github.com/katalvlaran/lvtopo/algebra"

// Module performs formal-sum arithmetic over one ring.
type Module[C comparable, T any] struct {
	ring    algebra.Ring[T]
	boolean bool
}

// NewModule binds a module to ring.
func NewModule[C comparable, T any](ring algebra.Ring[T]) *Module[C, T] {
	return &Module[C, T]{ring: ring, boolean: algebra.IsBoolean(ring)}
}

// Ring returns the coefficient ring.
func (m *Module[C, T]) Ring() algebra.Ring[T] { return m.ring }

// New returns an empty sum.
func (m *Module[C, T]) New() *FormalSum[C, T] {
	return &FormalSum[C, T]{terms: make(map[C]T)}
}

// Cell returns the sum 1·c.
func (m *Module[C, T]) Cell(c C) *FormalSum[C, T] {
	s := m.New()
	s.terms[c] = m.ring.One()

	return s
}

// Of builds Σ e.Coefficient·e.Cell; repeated cells are combined.
func (m *Module[C, T]) Of(entries ...Entry[C, T]) *FormalSum[C, T] {
	s := m.New()
	for _, e := range entries {
		m.AddTerm(s, e.Cell, e.Coefficient)
	}

	return s
}

// AddTerm performs s += v·c in place.
func (m *Module[C, T]) AddTerm(s *FormalSum[C, T], c C, v T) {
	if m.ring.IsZero(v) {
		return
	}
	if m.boolean {
		if _, ok := s.terms[c]; ok {
			delete(s.terms, c)
			return
		}
		if s.terms == nil {
			s.terms = make(map[C]T)
		}
		s.terms[c] = v

		return
	}
	old, ok := s.terms[c]
	if !ok {
		if s.terms == nil {
			s.terms = make(map[C]T)
		}
		s.terms[c] = m.ring.Add(m.ring.Zero(), v)

		return
	}
	s.set(c, m.ring.Add(old, v), m.ring.IsZero)
}

// Accumulate performs a += b in place, iterating b only.
func (m *Module[C, T]) Accumulate(a, b *FormalSum[C, T]) {
	if b == nil {
		return
	}
	if a == b {
		m.scaleInPlace(a, m.ring.ValueOf(2))
		return
	}
	for c, v := range b.terms {
		m.AddTerm(a, c, v)
	}
}

// AccumulateScaled performs a += scale·b in place.
func (m *Module[C, T]) AccumulateScaled(a, b *FormalSum[C, T], scale T) {
	if b == nil || m.ring.IsZero(scale) {
		return
	}
	if a == b {
		m.scaleInPlace(a, m.ring.Add(m.ring.One(), scale))
		return
	}
	if m.ring.IsOne(scale) {
		m.Accumulate(a, b)
		return
	}
	for c, v := range b.terms {
		m.AddTerm(a, c, m.ring.Multiply(scale, v))
	}
}

// Add returns a + b. It clones the larger operand and folds in the smaller.
func (m *Module[C, T]) Add(a, b *FormalSum[C, T]) *FormalSum[C, T] {
	if a.Len() < b.Len() {
		a, b = b, a
	}
	out := a.Clone()
	m.Accumulate(out, b)

	return out
}

// Subtract returns a - b.
func (m *Module[C, T]) Subtract(a, b *FormalSum[C, T]) *FormalSum[C, T] {
	out := a.Clone()
	m.AccumulateScaled(out, b, m.ring.NegativeOne())

	return out
}

// Multiply returns scale·s. A zero scale yields the empty sum.
func (m *Module[C, T]) Multiply(scale T, s *FormalSum[C, T]) *FormalSum[C, T] {
	out := m.New()
	if m.ring.IsZero(scale) || s == nil {
		return out
	}
	for c, v := range s.terms {
		out.set(c, m.ring.Multiply(scale, v), m.ring.IsZero)
	}

	return out
}

// Negate returns -s.
func (m *Module[C, T]) Negate(s *FormalSum[C, T]) *FormalSum[C, T] {
	return m.Multiply(m.ring.NegativeOne(), s)
}

// Equal reports whether a and b have the same support and coefficients.
func (m *Module[C, T]) Equal(a, b *FormalSum[C, T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	equal := true
	a.Each(func(c C, v T) bool {
		w, ok := b.Lookup(c)
		equal = ok && m.ring.Equal(v, w)
		return equal
	})

	return equal
}

// Coefficient returns the coefficient of c in s as a ring element, using the
// ring's own Zero for absent cells.
func (m *Module[C, T]) Coefficient(s *FormalSum[C, T], c C) T {
	if v, ok := s.Lookup(c); ok {
		return v
	}

	return m.ring.Zero()
}

func (m *Module[C, T]) scaleInPlace(s *FormalSum[C, T], scale T) {
	for c, v := range s.terms {
		s.set(c, m.ring.Multiply(scale, v), m.ring.IsZero)
	}
}
