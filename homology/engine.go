// SPDX-License-Identifier: MIT
// Package: lvtopo/homology
//
// engine.go - ordering, validation and boundary-matrix reduction shared by
// the absolute, relative and classical variants.
//
// Positions: after prepare, cell j of the ordered stream is row and column j.
// A reduction leaves low(j) = largest nonzero row of R_j, or -1 when R_j = 0,
// and the low map is injective on nonzero columns.

package homology

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvtopo/algebra"
	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/basis"
	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/sparse"
	"github.com/katalvlaran/lvtopo/stream"
)

type engine[C comparable, T any] struct {
	field   algebra.Field[T]
	module  *chain.Module[C, T]
	boolean bool
	inL     func(C) bool // nil for absolute homology
	opts    options
	log     zerolog.Logger
}

func newEngine[C comparable, T any](f algebra.Field[T], inL func(C) bool, opts []Option) engine[C, T] {
	o := gatherOptions(opts)

	return engine[C, T]{
		field:   f,
		module:  chain.NewModule[C, T](f),
		boolean: algebra.IsBoolean[T](f),
		inL:     inL,
		opts:    o,
		log:     o.logger,
	}
}

// prepared is the ordered, validated column set.
type prepared[C comparable] struct {
	s     stream.Filtered[C]
	cells []C
	dims  []int
	ix    *basis.Index[C]
}

// position returns the row of a validated face.
func (p *prepared[C]) position(c C) int {
	i, _ := p.ix.Index(c)

	return i
}

// comparator returns the WithComparator override; call only when one is set.
func (e *engine[C, T]) comparator() (func(a, b C) int, error) {
	c, ok := e.opts.comparator.(func(a, b C) int)
	if !ok {
		return nil, fmt.Errorf("comparator %T: %w", e.opts.comparator, ErrComparatorType)
	}

	return c, nil
}

func (e *engine[C, T]) excluded(c C) bool { return e.inL != nil && e.inL(c) }

// prepare validates the order of s, drops L and cells above maxDim+1 and
// checks that faces precede cofaces. A WithComparator override only reorders
// cells within one filtration index.
func (e *engine[C, T]) prepare(method string, s stream.Filtered[C]) (*prepared[C], error) {
	if fin, ok := s.(interface{ Finalized() bool }); ok && !fin.Finalized() {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrMalformedStream, stream.ErrNotFinalized)
	}
	all := s.Cells()
	if err := checkOrder(s, all); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	if e.inL != nil {
		for _, c := range all {
			if !e.inL(c) {
				continue
			}
			for _, t := range s.Boundary(c) {
				if !e.inL(t.Cell) {
					return nil, fmt.Errorf("%s: face %v of %v: %w", method, t.Cell, c, ErrInvalidSubcomplex)
				}
			}
		}
	}

	p := &prepared[C]{s: s, cells: make([]C, 0, len(all))}
	for _, c := range all {
		if e.excluded(c) || s.Dimension(c) > e.opts.maxDim+1 {
			continue
		}
		p.cells = append(p.cells, c)
	}
	if e.opts.comparator != nil {
		compare, err := e.comparator()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		slices.SortStableFunc(p.cells, func(a, b C) int {
			if c := cmp.Compare(s.FiltrationIndex(a), s.FiltrationIndex(b)); c != 0 {
				return c
			}

			return compare(a, b)
		})
	}

	p.dims = make([]int, len(p.cells))
	p.ix = basis.NewIndex(p.cells)
	for j, c := range p.cells {
		p.dims[j] = s.Dimension(c)
		for _, t := range s.Boundary(c) {
			if e.excluded(t.Cell) {
				continue
			}
			if i, err := p.ix.Index(t.Cell); err != nil || i >= j {
				return nil, fmt.Errorf("%s: face %v of %v: %w", method, t.Cell, c, ErrMalformedStream)
			}
		}
	}

	return p, nil
}

// checkOrder requires distinct cells whose filtration indices are
// non-negative and non-decreasing, with values strictly increasing exactly
// where the index does.
func checkOrder[C comparable](s stream.Filtered[C], cells []C) error {
	seen := make(map[C]struct{}, len(cells))
	prevIdx, prevVal := -1, math.Inf(-1)
	for k, c := range cells {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("cell %v listed twice: %w", c, ErrMalformedStream)
		}
		seen[c] = struct{}{}

		idx, val := s.FiltrationIndex(c), s.FiltrationValue(c)
		switch {
		case idx < 0:
			return fmt.Errorf("cell %v: filtration index %d: %w", c, idx, ErrMalformedStream)
		case math.IsNaN(val):
			return fmt.Errorf("cell %v: filtration value NaN: %w", c, ErrMalformedStream)
		case k > 0 && idx < prevIdx:
			return fmt.Errorf("cell %v: filtration index %d after %d: %w", c, idx, prevIdx, ErrMalformedStream)
		case k > 0 && idx == prevIdx && val != prevVal:
			return fmt.Errorf("cell %v: value %v differs from %v at index %d: %w", c, val, prevVal, idx, ErrMalformedStream)
		case k > 0 && idx > prevIdx && val <= prevVal:
			return fmt.Errorf("cell %v: value %v at index %d not above %v: %w", c, val, idx, prevVal, ErrMalformedStream)
		}
		prevIdx, prevVal = idx, val
	}

	return nil
}

// reduction exposes a reduced matrix regardless of its storage.
type reduction[T any] interface {
	low(j int) int
	eachR(j int, fn func(i int, x T))
	eachV(j int, fn func(i int, x T))
}

type fieldReduction[T any] struct {
	r, v []*sparse.Vector[T]
}

func (f *fieldReduction[T]) low(j int) int                    { return f.r[j].Max() }
func (f *fieldReduction[T]) eachR(j int, fn func(i int, x T)) { f.r[j].Each(fn) }
func (f *fieldReduction[T]) eachV(j int, fn func(i int, x T)) { f.v[j].Each(fn) }

type bitsReduction[T any] struct {
	r, v []*sparse.Bits
	one  T
}

func (b *bitsReduction[T]) low(j int) int { return b.r[j].Max() }

func (b *bitsReduction[T]) eachR(j int, fn func(i int, x T)) {
	for _, i := range b.r[j].Indices() {
		fn(i, b.one)
	}
}

func (b *bitsReduction[T]) eachV(j int, fn func(i int, x T)) {
	for _, i := range b.v[j].Indices() {
		fn(i, b.one)
	}
}

func (e *engine[C, T]) reduce(p *prepared[C], trackV bool) (reduction[T], error) {
	if e.boolean {
		return e.reduceBits(p, trackV), nil
	}

	return e.reduceField(p, trackV)
}

// boundary returns ∂c with the cells of L dropped.
func (e *engine[C, T]) boundary(p *prepared[C], c C) *chain.FormalSum[C, T] {
	b := e.module.New()
	for _, t := range p.s.Boundary(c) {
		if !e.excluded(t.Cell) {
			e.module.AddTerm(b, t.Cell, e.field.ValueOf(t.Coefficient))
		}
	}

	return b
}

// boundaryRows returns ∂ᵀ in positions: row j holds the boundary of cell j.
func (e *engine[C, T]) boundaryRows(p *prepared[C]) (*sparse.Matrix[T], error) {
	sums := make([]*chain.FormalSum[C, T], len(p.cells))
	for j, c := range p.cells {
		sums[j] = e.boundary(p, c)
	}

	return basis.ToMatrix[C, T](e.field, sums, p.ix)
}

// reduceField runs the column algorithm with coefficient vectors.
func (e *engine[C, T]) reduceField(p *prepared[C], trackV bool) (reduction[T], error) {
	n := len(p.cells)
	f := e.field
	rows, err := e.boundaryRows(p)
	if err != nil {
		return nil, fmt.Errorf("boundary matrix: %w", err)
	}
	red := &fieldReduction[T]{r: make([]*sparse.Vector[T], n)}
	if trackV {
		red.v = make([]*sparse.Vector[T], n)
	}
	lowToCol := make(map[int]int)
	for j := range p.cells {
		col, err := rows.Row(j)
		if err != nil {
			return nil, err
		}
		var v *sparse.Vector[T]
		if trackV {
			if v, err = sparse.NewVector[T](f, n); err != nil {
				return nil, err
			}
			if err = v.Set(j, f.One()); err != nil {
				return nil, err
			}
		}
		for l := col.Max(); l >= 0; l = col.Max() {
			k, ok := lowToCol[l]
			if !ok {
				lowToCol[l] = j
				break
			}
			// l is the low of both columns, so neither entry is zero.
			a, _ := col.Get(l)
			b, _ := red.r[k].Get(l)
			factor := f.Negate(f.Divide(a, b))
			if err = col.Accumulate(red.r[k], factor); err != nil {
				return nil, fmt.Errorf("column %d: %w", j, err)
			}
			if trackV {
				if err = v.Accumulate(red.v[k], factor); err != nil {
					return nil, fmt.Errorf("column %d: %w", j, err)
				}
			}
		}
		red.r[j] = col
		if trackV {
			red.v[j] = v
		}
	}
	e.log.Debug().Int("columns", n).Int("pivots", len(lowToCol)).Msg("homology: field reduction done")

	return red, nil
}

// reduceBits runs the column algorithm over GF(2) on roaring bitmaps.
func (e *engine[C, T]) reduceBits(p *prepared[C], trackV bool) reduction[T] {
	n := len(p.cells)
	red := &bitsReduction[T]{r: make([]*sparse.Bits, n), one: e.field.One()}
	if trackV {
		red.v = make([]*sparse.Bits, n)
	}
	lowToCol := make(map[int]int)
	for j, c := range p.cells {
		col := sparse.NewBits()
		for _, t := range p.s.Boundary(c) {
			if e.excluded(t.Cell) || t.Coefficient%2 == 0 {
				continue
			}
			col.Toggle(p.position(t.Cell))
		}
		var v *sparse.Bits
		if trackV {
			v = sparse.NewBits(j)
		}
		for l := col.Max(); l >= 0; l = col.Max() {
			k, ok := lowToCol[l]
			if !ok {
				lowToCol[l] = j
				break
			}
			col.Xor(red.r[k])
			if trackV {
				v.Xor(red.v[k])
			}
		}
		red.r[j] = col
		if trackV {
			red.v[j] = v
		}
	}
	e.log.Debug().Int("columns", n).Int("pivots", len(lowToCol)).Msg("homology: GF(2) reduction done")

	return red
}

// record is one interval in positions; death < 0 means infinite.
type record[C comparable, T any] struct {
	dim          int
	birth, death int
	gen          *chain.FormalSum[C, T]
}

// collect reads intervals (and optionally generators) off a reduction.
func (e *engine[C, T]) collect(p *prepared[C], red reduction[T], annotate bool) []record[C, T] {
	n := len(p.cells)
	paired := make([]bool, n)
	lows := make([]int, n)
	for j := 0; j < n; j++ {
		lows[j] = red.low(j)
		if lows[j] >= 0 {
			paired[lows[j]] = true
			paired[j] = true
		}
	}
	inRange := func(d int) bool { return d >= e.opts.minDim && d <= e.opts.maxDim }
	toSum := func(each func(j int, fn func(i int, x T)), j int) *chain.FormalSum[C, T] {
		sum := e.module.New()
		each(j, func(i int, x T) { e.module.AddTerm(sum, p.cells[i], x) })
		return sum
	}

	var out []record[C, T]
	for j := 0; j < n; j++ {
		l := lows[j]
		switch {
		case l >= 0:
			if !inRange(p.dims[l]) || p.s.FiltrationIndex(p.cells[l]) == p.s.FiltrationIndex(p.cells[j]) {
				continue
			}
			rec := record[C, T]{dim: p.dims[l], birth: l, death: j}
			if annotate {
				rec.gen = toSum(red.eachR, j)
			}
			out = append(out, rec)
		case !paired[j]:
			if !inRange(p.dims[j]) {
				continue
			}
			rec := record[C, T]{dim: p.dims[j], birth: j, death: -1}
			if annotate {
				rec.gen = toSum(red.eachV, j)
			}
			out = append(out, rec)
		}
	}
	e.log.Debug().Int("intervals", len(out)).Msg("homology: intervals collected")

	return out
}

func (e *engine[C, T]) run(method string, s stream.Filtered[C], annotate, trackV bool) (*prepared[C], []record[C, T], error) {
	p, err := e.prepare(method, s)
	if err != nil {
		return nil, nil, err
	}
	red, err := e.reduce(p, trackV)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", method, err)
	}

	return p, e.collect(p, red, annotate), nil
}

func indexCollection[C comparable, T any](p *prepared[C], recs []record[C, T]) *barcode.Collection[int] {
	c := barcode.NewCollection[int]()
	for _, r := range recs {
		c.AddInterval(r.dim, indexInterval(p, r))
	}

	return c
}

func valueCollection[C comparable, T any](p *prepared[C], recs []record[C, T]) *barcode.Collection[float64] {
	c := barcode.NewCollection[float64]()
	for _, r := range recs {
		c.AddInterval(r.dim, valueInterval(p, r))
	}

	return c
}

func indexInterval[C comparable, T any](p *prepared[C], r record[C, T]) barcode.Interval[int] {
	b := p.s.FiltrationIndex(p.cells[r.birth])
	if r.death < 0 {
		return barcode.RightInfinite(b)
	}

	return barcode.Finite(b, p.s.FiltrationIndex(p.cells[r.death]))
}

func valueInterval[C comparable, T any](p *prepared[C], r record[C, T]) barcode.Interval[float64] {
	b := p.s.FiltrationValue(p.cells[r.birth])
	if r.death < 0 {
		return barcode.RightInfinite(b)
	}

	return barcode.Finite(b, p.s.FiltrationValue(p.cells[r.death]))
}
