// SPDX-License-Identifier: MIT
// Package: lvtopo/zigzag
//
// tracker.go - the Tracker type, event bookkeeping and reporting.

package zigzag

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvtopo/algebra"
	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/stream"
)

type liveCell struct {
	serial  int
	dim     int
	cofaces int
}

// element of the echelon cycle basis: chain − Σ kappa[i]·rep[i] = ∂pre, and
// pivot is the cell of chain with the largest insertion serial.
type element[C comparable, T any] struct {
	pivot C
	chain *chain.FormalSum[C, T]
	pre   *chain.FormalSum[C, T]
	kappa map[int]T
}

type generator[C comparable, T any] struct {
	id      int
	dim     int
	birth   int
	forward bool
	rep     *chain.FormalSum[C, T]
}

type closedInterval[C comparable, T any] struct {
	dim      int
	interval barcode.Interval[int]
	rep      *chain.FormalSum[C, T]
}

// Tracker maintains zigzag persistence of a complex under Add and Remove.
type Tracker[C comparable, T any] struct {
	field  algebra.Field[T]
	module *chain.Module[C, T]
	bd      stream.Boundary[C]
	compare func(a, b C) int // nil without WithComparator
	opts    options
	log     zerolog.Logger

	live   map[C]*liveCell
	serial int
	time   int

	cycles  map[int]map[C]*element[C, T] // dim → pivot → element
	gens    map[int]*generator[C, T]
	nextGen int
	closed  []closedInterval[C, T]
}

// NewTracker returns an empty tracker over f using bd for dimensions and boundaries.
func NewTracker[C comparable, T any](f algebra.Field[T], bd stream.Boundary[C], opts ...Option) *Tracker[C, T] {
	o := options{minDim: DefaultMinDimension, maxDim: DefaultMaxDimension, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	var compare func(a, b C) int
	if o.comparator != nil {
		c, ok := o.comparator.(func(a, b C) int)
		if !ok {
			panic(fmt.Sprintf("zigzag: WithComparator over %T does not match the tracker's cells", o.comparator))
		}
		compare = c
	}

	return &Tracker[C, T]{
		field:   f,
		module:  chain.NewModule[C, T](f),
		bd:      bd,
		compare: compare,
		opts:    o,
		log:     o.logger,
		live:    make(map[C]*liveCell),
		cycles:  make(map[int]map[C]*element[C, T]),
		gens:    make(map[int]*generator[C, T]),
	}
}

// Time returns the number of events processed; the next event has this index.
func (t *Tracker[C, T]) Time() int { return t.time }

// Len returns the number of cells currently present.
func (t *Tracker[C, T]) Len() int { return len(t.live) }

// Contains reports whether c is present.
func (t *Tracker[C, T]) Contains(c C) bool {
	_, ok := t.live[c]

	return ok
}

// Betti returns the number of live classes in dim.
func (t *Tracker[C, T]) Betti(dim int) int {
	n := 0
	for _, g := range t.gens {
		if g.dim == dim {
			n++
		}
	}

	return n
}

func (t *Tracker[C, T]) reported(dim int) bool {
	return dim >= t.opts.minDim && dim <= t.opts.maxDim
}

// Barcodes returns closed intervals and live classes in the reported dimensions.
func (t *Tracker[C, T]) Barcodes() *barcode.Collection[int] {
	out := barcode.NewCollection[int]()
	for _, ci := range t.closed {
		if t.reported(ci.dim) {
			out.AddInterval(ci.dim, ci.interval)
		}
	}
	for _, id := range sortedKeys(t.gens) {
		if g := t.gens[id]; t.reported(g.dim) {
			out.AddInfinite(g.dim, g.birth)
		}
	}

	return out
}

// AnnotatedBarcodes is Barcodes with a representative cycle per interval: the
// representative at death for closed intervals, the current one for live classes.
func (t *Tracker[C, T]) AnnotatedBarcodes() *barcode.Annotated[int, *chain.FormalSum[C, T]] {
	out := barcode.NewAnnotated[int, *chain.FormalSum[C, T]]()
	for _, ci := range t.closed {
		if t.reported(ci.dim) {
			out.Add(ci.dim, ci.interval, ci.rep.Clone())
		}
	}
	for _, id := range sortedKeys(t.gens) {
		if g := t.gens[id]; t.reported(g.dim) {
			out.Add(g.dim, barcode.RightInfinite(g.birth), g.rep.Clone())
		}
	}

	return out
}

// before reports i ⊲ j.
func before[C comparable, T any](i, j *generator[C, T]) bool {
	if i.birth < j.birth {
		return j.forward
	}

	return !i.forward
}

func (t *Tracker[C, T]) birth(dim int, forward bool, rep *chain.FormalSum[C, T]) int {
	id := t.nextGen
	t.nextGen++
	t.gens[id] = &generator[C, T]{id: id, dim: dim, birth: t.time, forward: forward, rep: rep}
	t.log.Debug().Int("event", t.time).Int("dim", dim).Bool("forward", forward).Msg("zigzag: birth")

	return id
}

func (t *Tracker[C, T]) death(id int) {
	g := t.gens[id]
	delete(t.gens, id)
	t.closed = append(t.closed, closedInterval[C, T]{
		dim:      g.dim,
		interval: barcode.Finite(g.birth, t.time),
		rep:      g.rep,
	})
	t.log.Debug().Int("event", t.time).Int("dim", g.dim).Int("born", g.birth).Msg("zigzag: death")
}

// pivotOf returns the cell of x with the largest serial.
func (t *Tracker[C, T]) pivotOf(x *chain.FormalSum[C, T]) (C, bool) {
	var (
		best  C
		found bool
		top   = -1
	)
	x.Each(func(c C, _ T) bool {
		if lc, ok := t.live[c]; ok && lc.serial > top {
			best, top, found = c, lc.serial, true
		}
		return true
	})

	return best, found
}

// reduce writes the cycle x in the basis of dimension q. It returns the
// homology coordinates a and a chain pre with x − Σ a[i]·rep[i] = ∂pre.
func (t *Tracker[C, T]) reduce(q int, x *chain.FormalSum[C, T]) (map[int]T, *chain.FormalSum[C, T], error) {
	f := t.field
	x = x.Clone()
	a := make(map[int]T)
	pre := t.module.New()
	basis := t.cycles[q]
	for !x.IsEmpty() {
		piv, ok := t.pivotOf(x)
		if !ok {
			return nil, nil, fmt.Errorf("reduce: chain %v has a dead cell: %w", x, ErrInconsistentState)
		}
		e, ok := basis[piv]
		if !ok {
			return nil, nil, fmt.Errorf("reduce: no basis element with pivot %v: %w", piv, ErrInconsistentState)
		}
		r := f.Divide(t.module.Coefficient(x, piv), t.module.Coefficient(e.chain, piv))
		t.module.AccumulateScaled(x, e.chain, f.Negate(r))
		addScaled(f, a, e.kappa, r)
		t.module.AccumulateScaled(pre, e.pre, r)
	}

	return a, pre, nil
}

// addTo performs m[k] += v, deleting zero results.
func addTo[T any](f algebra.Field[T], m map[int]T, k int, v T) {
	if f.IsZero(v) {
		return
	}
	if old, ok := m[k]; ok {
		v = f.Add(old, v)
	}
	if f.IsZero(v) {
		delete(m, k)
		return
	}
	m[k] = v
}

// addScaled performs dst += scale·src.
func addScaled[T any](f algebra.Field[T], dst, src map[int]T, scale T) {
	for k, v := range src {
		addTo(f, dst, k, f.Multiply(scale, v))
	}
}
