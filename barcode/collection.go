// SPDX-License-Identifier: MIT
// Package: lvtopo/barcode
//
// collection.go - intervals grouped by dimension.

package barcode

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Collection maps dimension → intervals. The zero value is not usable; call NewCollection.
type Collection[T Number] struct {
	byDim map[int][]Interval[T]
}

// NewCollection returns an empty collection.
func NewCollection[T Number]() *Collection[T] {
	return &Collection[T]{byDim: make(map[int][]Interval[T])}
}

// Add records [birth, death) in dim.
func (c *Collection[T]) Add(dim int, birth, death T) { c.AddInterval(dim, Finite(birth, death)) }

// AddInfinite records [birth, ∞) in dim.
func (c *Collection[T]) AddInfinite(dim int, birth T) { c.AddInterval(dim, RightInfinite(birth)) }

// AddInterval records iv in dim.
func (c *Collection[T]) AddInterval(dim int, iv Interval[T]) {
	c.byDim[dim] = append(c.byDim[dim], iv)
}

// AtDimension returns a sorted copy of the intervals in dim.
func (c *Collection[T]) AtDimension(dim int) []Interval[T] {
	out := slices.Clone(c.byDim[dim])
	slices.SortFunc(out, Compare[T])

	return out
}

// Infinite returns the sorted infinite intervals in dim.
func (c *Collection[T]) Infinite(dim int) []Interval[T] {
	var out []Interval[T]
	for _, iv := range c.AtDimension(dim) {
		if iv.Infinite {
			out = append(out, iv)
		}
	}

	return out
}

// Dimensions returns the dimensions holding at least one interval, ascending.
func (c *Collection[T]) Dimensions() []int {
	dims := make([]int, 0, len(c.byDim))
	for d, ivs := range c.byDim {
		if len(ivs) > 0 {
			dims = append(dims, d)
		}
	}
	slices.Sort(dims)

	return dims
}

// Betti returns the number of infinite intervals in dim.
func (c *Collection[T]) Betti(dim int) int {
	n := 0
	for _, iv := range c.byDim[dim] {
		if iv.Infinite {
			n++
		}
	}

	return n
}

// BettiNumbers returns Betti(d) for d = 0..maxDim.
func (c *Collection[T]) BettiNumbers(maxDim int) []int {
	out := make([]int, maxDim+1)
	for d := range out {
		out[d] = c.Betti(d)
	}

	return out
}

// BettiAt returns the number of intervals of dim containing t.
func (c *Collection[T]) BettiAt(dim int, t T) int {
	n := 0
	for _, iv := range c.byDim[dim] {
		if iv.Contains(t) {
			n++
		}
	}

	return n
}

// Len returns the total number of intervals.
func (c *Collection[T]) Len() int {
	n := 0
	for _, ivs := range c.byDim {
		n += len(ivs)
	}

	return n
}

// Equal reports whether c and o hold the same intervals per dimension.
func (c *Collection[T]) Equal(o *Collection[T]) bool {
	dims := c.Dimensions()
	if !slices.Equal(dims, o.Dimensions()) {
		return false
	}
	for _, d := range dims {
		if !slices.Equal(c.AtDimension(d), o.AtDimension(d)) {
			return false
		}
	}

	return true
}

// String renders one line per dimension: "H0: [0, ∞) [0, 1)".
func (c *Collection[T]) String() string {
	var b strings.Builder
	for k, d := range c.Dimensions() {
		if k > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "H%d:", d)
		for _, iv := range c.AtDimension(d) {
			b.WriteByte(' ')
			b.WriteString(iv.String())
		}
	}

	return b.String()
}

// Map converts every endpoint with fn, keeping dimensions and infinite flags.
func Map[T, U Number](c *Collection[T], fn func(T) U) *Collection[U] {
	out := NewCollection[U]()
	for _, d := range slices.Sorted(maps.Keys(c.byDim)) {
		for _, iv := range c.byDim[d] {
			out.AddInterval(d, Interval[U]{Birth: fn(iv.Birth), Death: fn(iv.Death), Infinite: iv.Infinite})
		}
	}

	return out
}

// AsFloat converts an index or time barcode to float64 endpoints.
func AsFloat[T Number](c *Collection[T]) *Collection[float64] {
	return Map(c, func(x T) float64 { return float64(x) })
}
