// SPDX-License-Identifier: MIT

package barcode

import "slices"

// Pair is an interval together with a generator of its class.
type Pair[T Number, G any] struct {
	Interval  Interval[T]
	Generator G
}

// Annotated is a barcode whose intervals carry generators.
type Annotated[T Number, G any] struct {
	byDim map[int][]Pair[T, G]
}

// NewAnnotated returns an empty annotated barcode.
func NewAnnotated[T Number, G any]() *Annotated[T, G] {
	return &Annotated[T, G]{byDim: make(map[int][]Pair[T, G])}
}

// Add records iv with generator g in dim.
func (a *Annotated[T, G]) Add(dim int, iv Interval[T], g G) {
	a.byDim[dim] = append(a.byDim[dim], Pair[T, G]{Interval: iv, Generator: g})
}

// AtDimension returns the pairs in dim sorted by interval.
func (a *Annotated[T, G]) AtDimension(dim int) []Pair[T, G] {
	out := slices.Clone(a.byDim[dim])
	slices.SortStableFunc(out, func(x, y Pair[T, G]) int { return Compare(x.Interval, y.Interval) })

	return out
}

// Generators returns the generators in dim, in AtDimension order.
func (a *Annotated[T, G]) Generators(dim int) []G {
	pairs := a.AtDimension(dim)
	out := make([]G, len(pairs))
	for k, p := range pairs {
		out[k] = p.Generator
	}

	return out
}

// Len returns the total number of pairs.
func (a *Annotated[T, G]) Len() int {
	n := 0
	for _, ps := range a.byDim {
		n += len(ps)
	}

	return n
}

// Barcodes drops the generators.
func (a *Annotated[T, G]) Barcodes() *Collection[T] {
	c := NewCollection[T]()
	for d, ps := range a.byDim {
		for _, p := range ps {
			c.AddInterval(d, p.Interval)
		}
	}

	return c
}
