// SPDX-License-Identifier: MIT
// Package: lvtopo/homology
//
// variants.go - the public absolute, relative and classical algorithms.

package homology

import (
	"github.com/katalvlaran/lvtopo/algebra"
	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/stream"
)

const (
	methodIntervals      = "ComputeIntervals"
	methodIndexIntervals = "ComputeIndexIntervals"
	methodAnnotated      = "ComputeAnnotatedIntervals"
	methodAnnotatedIndex = "ComputeAnnotatedIndexIntervals"
)

// basisVariant implements BasisAlgorithm for absolute and relative homology.
type basisVariant[C comparable, T any] struct {
	engine[C, T]
}

func (b *basisVariant[C, T]) ComputeIntervals(s stream.Filtered[C]) (*barcode.Collection[float64], error) {
	p, recs, err := b.run(methodIntervals, s, false, false)
	if err != nil {
		return nil, err
	}

	return valueCollection(p, recs), nil
}

func (b *basisVariant[C, T]) ComputeIndexIntervals(s stream.Filtered[C]) (*barcode.Collection[int], error) {
	p, recs, err := b.run(methodIndexIntervals, s, false, false)
	if err != nil {
		return nil, err
	}

	return indexCollection(p, recs), nil
}

func (b *basisVariant[C, T]) ComputeAnnotatedIntervals(s stream.Filtered[C]) (*barcode.Annotated[float64, *chain.FormalSum[C, T]], error) {
	p, recs, err := b.run(methodAnnotated, s, true, true)
	if err != nil {
		return nil, err
	}
	out := barcode.NewAnnotated[float64, *chain.FormalSum[C, T]]()
	for _, r := range recs {
		out.Add(r.dim, valueInterval(p, r), r.gen)
	}

	return out, nil
}

func (b *basisVariant[C, T]) ComputeAnnotatedIndexIntervals(s stream.Filtered[C]) (*barcode.Annotated[int, *chain.FormalSum[C, T]], error) {
	p, recs, err := b.run(methodAnnotatedIndex, s, true, true)
	if err != nil {
		return nil, err
	}
	out := barcode.NewAnnotated[int, *chain.FormalSum[C, T]]()
	for _, r := range recs {
		out.Add(r.dim, indexInterval(p, r), r.gen)
	}

	return out, nil
}

// Absolute computes H_*(K_t) with generators.
type Absolute[C comparable, T any] struct {
	basisVariant[C, T]
}

// NewAbsolute returns absolute persistence over f.
func NewAbsolute[C comparable, T any](f algebra.Field[T], opts ...Option) *Absolute[C, T] {
	return &Absolute[C, T]{basisVariant[C, T]{newEngine[C, T](f, nil, opts)}}
}

// Relative computes H_*(K_t, L) with generators, where inL reports membership
// in the closed subcomplex L.
type Relative[C comparable, T any] struct {
	basisVariant[C, T]
}

// NewRelative returns relative persistence over f. Panics on a nil predicate.
func NewRelative[C comparable, T any](f algebra.Field[T], inL func(C) bool, opts ...Option) *Relative[C, T] {
	if inL == nil {
		panic("homology: NewRelative with nil subcomplex predicate")
	}

	return &Relative[C, T]{basisVariant[C, T]{newEngine[C, T](f, inL, opts)}}
}

// Classical computes barcodes only. It never builds the V matrix.
type Classical[C comparable, T any] struct {
	engine[C, T]
}

// NewClassical returns classical persistence over f.
func NewClassical[C comparable, T any](f algebra.Field[T], opts ...Option) *Classical[C, T] {
	return &Classical[C, T]{newEngine[C, T](f, nil, opts)}
}

func (c *Classical[C, T]) ComputeIntervals(s stream.Filtered[C]) (*barcode.Collection[float64], error) {
	p, recs, err := c.run(methodIntervals, s, false, false)
	if err != nil {
		return nil, err
	}

	return valueCollection(p, recs), nil
}

func (c *Classical[C, T]) ComputeIndexIntervals(s stream.Filtered[C]) (*barcode.Collection[int], error) {
	p, recs, err := c.run(methodIndexIntervals, s, false, false)
	if err != nil {
		return nil, err
	}

	return indexCollection(p, recs), nil
}

var (
	_ BasisAlgorithm[stream.Simplex, bool] = (*Absolute[stream.Simplex, bool])(nil)
	_ BasisAlgorithm[stream.Simplex, int]  = (*Relative[stream.Simplex, int])(nil)
	_ Algorithm[stream.Simplex]            = (*Classical[stream.Simplex, int])(nil)
)
