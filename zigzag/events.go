// SPDX-License-Identifier: MIT
// Package: lvtopo/zigzag
//
// events.go - Add and Remove.
//
// Both validate before mutating, so a returned precondition error leaves the
// tracker unchanged and the event counter untouched.

package zigzag

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtopo/chain"
)

// Add inserts c. Every face of c must be present and, under WithComparator,
// compare below c.
func (t *Tracker[C, T]) Add(c C) error {
	if _, ok := t.live[c]; ok {
		return fmt.Errorf("Add(%v): %w", c, ErrDuplicateCell)
	}
	f := t.field
	p := t.bd.Dimension(c)
	terms := t.bd.Boundary(c)
	b := t.module.New()
	for _, term := range terms {
		if _, ok := t.live[term.Cell]; !ok {
			return fmt.Errorf("Add(%v): face %v: %w", c, term.Cell, ErrMissingFace)
		}
		if t.compare != nil && t.compare(term.Cell, c) >= 0 {
			return fmt.Errorf("Add(%v): face %v: %w", c, term.Cell, ErrFaceOrder)
		}
		t.module.AddTerm(b, term.Cell, f.ValueOf(term.Coefficient))
	}
	a, pre, err := t.reduce(p-1, b)
	if err != nil {
		return fmt.Errorf("Add(%v): %w", c, err)
	}

	t.live[c] = &liveCell{serial: t.serial, dim: p}
	t.serial++
	for _, term := range terms {
		t.live[term.Cell].cofaces++
	}

	if len(a) == 0 {
		t.addBirth(c, p, pre)
	} else {
		t.addDeath(c, p, a, pre)
	}
	t.time++

	return nil
}

// addBirth handles ∂σ = ∂pre: z = σ − pre is a new cycle with pivot σ.
func (t *Tracker[C, T]) addBirth(c C, p int, pre *chain.FormalSum[C, T]) {
	z := t.module.Cell(c)
	t.module.AccumulateScaled(z, pre, t.field.NegativeOne())
	id := t.birth(p, true, z.Clone())
	t.basis(p)[c] = &element[C, T]{
		pivot: c,
		chain: z,
		pre:   t.module.New(),
		kappa: map[int]T{id: t.field.One()},
	}
}

// addDeath handles ∂σ − Σ a[i]·rep[i] = ∂pre with a ≠ 0: the ⊲-maximal
// class i* of a dies and every coordinate is rewritten without it using
// a*·rep[i*] = ∂w − Σ_{i≠i*} a[i]·rep[i], w = σ − pre.
func (t *Tracker[C, T]) addDeath(c C, p int, a map[int]T, pre *chain.FormalSum[C, T]) {
	f := t.field
	star := -1
	for _, id := range sortedKeys(a) {
		if star < 0 || before(t.gens[star], t.gens[id]) {
			star = id
		}
	}
	aStar := a[star]
	w := t.module.Cell(c)
	t.module.AccumulateScaled(w, pre, f.NegativeOne())

	for _, e := range t.cycles[p-1] {
		k, ok := e.kappa[star]
		if !ok {
			continue
		}
		ratio := f.Divide(k, aStar)
		for i, ai := range a {
			if i != star {
				addTo(f, e.kappa, i, f.Negate(f.Multiply(ratio, ai)))
			}
		}
		delete(e.kappa, star)
		t.module.AccumulateScaled(e.pre, w, ratio)
	}
	t.death(star)
}

// Remove deletes c. No coface of c may be present.
func (t *Tracker[C, T]) Remove(c C) error {
	lc, ok := t.live[c]
	if !ok {
		return fmt.Errorf("Remove(%v): %w", c, ErrCellNotPresent)
	}
	if lc.cofaces > 0 {
		return fmt.Errorf("Remove(%v): %d cofaces: %w", c, lc.cofaces, ErrCofacePresent)
	}
	p := lc.dim

	var holders []int
	for _, id := range sortedKeys(t.gens) {
		if g := t.gens[id]; g.dim == p && g.rep.Contains(c) {
			holders = append(holders, id)
		}
	}
	var err error
	if len(holders) > 0 {
		err = t.removeCycle(c, p, holders)
	} else {
		err = t.removeBoundary(c, p)
	}
	if err != nil {
		return fmt.Errorf("Remove(%v): %w", c, err)
	}

	for _, term := range t.bd.Boundary(c) {
		if face, ok := t.live[term.Cell]; ok {
			face.cofaces--
		}
	}
	delete(t.live, c)
	t.time++

	return nil
}

// removeCycle handles σ lying on cycles: the ⊲-minimal holder i* dies after
// the other holders, the basis and the (p-1)-preimages are cleared of σ.
func (t *Tracker[C, T]) removeCycle(c C, p int, holders []int) error {
	f := t.field
	basis := t.basis(p)

	var users []*element[C, T]
	for _, e := range basis {
		if e.chain.Contains(c) {
			users = append(users, e)
		}
	}
	if len(users) == 0 {
		return fmt.Errorf("removeCycle: no basis cycle uses %v: %w", c, ErrInconsistentState)
	}
	slices.SortFunc(users, func(x, y *element[C, T]) int {
		return t.live[x.pivot].serial - t.live[y.pivot].serial
	})

	star := holders[0]
	for _, id := range holders[1:] {
		if before(t.gens[id], t.gens[star]) {
			star = id
		}
	}
	zStar := t.gens[star].rep
	cStar := t.module.Coefficient(zStar, c)

	ratios := make(map[int]T, len(holders)-1)
	for _, id := range holders {
		if id == star {
			continue
		}
		r := f.Divide(t.module.Coefficient(t.gens[id].rep, c), cStar)
		ratios[id] = r
		t.module.AccumulateScaled(t.gens[id].rep, zStar, f.Negate(r))
	}
	for _, e := range basis {
		extra := f.Zero()
		for id, r := range ratios {
			if k, ok := e.kappa[id]; ok {
				extra = f.Add(extra, f.Multiply(k, r))
			}
		}
		addTo(f, e.kappa, star, extra)
	}
	for _, e := range t.cycles[p-1] {
		if d, ok := e.pre.Lookup(c); ok {
			t.module.AccumulateScaled(e.pre, zStar, f.Negate(f.Divide(d, cStar)))
		}
	}

	first := users[0]
	fc := t.module.Coefficient(first.chain, c)
	for _, e := range users[1:] {
		r := f.Negate(f.Divide(t.module.Coefficient(e.chain, c), fc))
		t.module.AccumulateScaled(e.chain, first.chain, r)
		t.module.AccumulateScaled(e.pre, first.pre, r)
		addScaled(f, e.kappa, first.kappa, r)
	}
	delete(basis, first.pivot)
	for _, e := range basis {
		delete(e.kappa, star)
	}
	t.death(star)

	return nil
}

// removeBoundary handles σ on no cycle: ∂σ stops bounding and its class is
// born, backward.
func (t *Tracker[C, T]) removeBoundary(c C, p int) error {
	if p == 0 {
		return fmt.Errorf("removeBoundary: vertex %v on no cycle: %w", c, ErrInconsistentState)
	}
	f := t.field
	z := t.module.New()
	for _, term := range t.bd.Boundary(c) {
		t.module.AddTerm(z, term.Cell, f.ValueOf(term.Coefficient))
	}
	id := t.birth(p-1, false, z)
	for _, e := range t.cycles[p-1] {
		if d, ok := e.pre.Lookup(c); ok {
			t.module.AddTerm(e.pre, c, f.Negate(d))
			addTo(f, e.kappa, id, d)
		}
	}

	return nil
}

func (t *Tracker[C, T]) basis(dim int) map[C]*element[C, T] {
	b, ok := t.cycles[dim]
	if !ok {
		b = make(map[C]*element[C, T])
		t.cycles[dim] = b
	}

	return b
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
