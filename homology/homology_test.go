// SPDX-License-Identifier: MIT

package homology_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/algebra"
	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/stream"
)

type S = stream.Simplex

// algorithms returns every coefficient system and variant behind Algorithm.
func algorithms(opts ...homology.Option) map[string]homology.Algorithm[S] {
	return map[string]homology.Algorithm[S]{
		"gf2":         homology.NewAbsolute[S, bool](algebra.BooleanField(), opts...),
		"z3":          homology.NewAbsolute[S, int](algebra.MustModular(3), opts...),
		"q":           homology.NewAbsolute[S, *big.Rat](algebra.RationalField(), opts...),
		"classical-2": homology.NewClassical[S, bool](algebra.BooleanField(), opts...),
		"classical-5": homology.NewClassical[S, int](algebra.MustModular(5), opts...),
	}
}

func TestTriangle_AllFields(t *testing.T) {
	s := simplices(t, triangle()...)
	for name, alg := range algorithms() {
		t.Run(name, func(t *testing.T) {
			bc, err := alg.ComputeIndexIntervals(s)
			require.NoError(t, err)
			assert.Equal(t, "H0: [0, 1) [0, 2) [0, ∞)\nH1: [3, ∞)", bc.String())
			assert.Equal(t, []int{1, 1}, bc.BettiNumbers(1))
		})
	}
}

func TestFilledTriangle_ClosesCycle(t *testing.T) {
	s := simplices(t, append(triangle(), c(4, 0, 1, 2))...)
	for name, alg := range algorithms(homology.WithDimensions(0, 2)) {
		t.Run(name, func(t *testing.T) {
			bc, err := alg.ComputeIndexIntervals(s)
			require.NoError(t, err)
			assert.Equal(t, []barcode.Interval[int]{barcode.Finite(3, 4)}, bc.AtDimension(1))
			assert.Equal(t, []int{1, 0, 0}, bc.BettiNumbers(2))
		})
	}
}

func TestZomorodianCarlsson(t *testing.T) {
	s := simplices(t, zomorodianCarlsson()...)
	for name, alg := range algorithms() {
		t.Run(name, func(t *testing.T) {
			bc, err := alg.ComputeIntervals(s)
			require.NoError(t, err)
			assert.Equal(t, "H0: [0, 1) [0, ∞) [1, 2)\nH1: [2, 5) [3, 4)", bc.String())
		})
	}
}

func TestValueIntervals(t *testing.T) {
	s := simplices(t, c(0, 0), c(0, 1), c(0, 2), c(0.5, 0, 1), c(1.5, 1, 2), c(2.25, 0, 2))
	alg := homology.NewAbsolute[S, int](algebra.MustModular(2))
	bc, err := alg.ComputeIntervals(s)
	require.NoError(t, err)
	assert.Equal(t, []barcode.Interval[float64]{barcode.RightInfinite(2.25)}, bc.AtDimension(1))
	assert.Equal(t, []barcode.Interval[float64]{
		barcode.Finite(0, 0.5), barcode.Finite(0, 1.5), barcode.RightInfinite(0.0),
	}, bc.AtDimension(0))

	idx, err := alg.ComputeIndexIntervals(s)
	require.NoError(t, err)
	assert.Equal(t, []barcode.Interval[int]{barcode.RightInfinite(3)}, idx.AtDimension(1))
}

func TestZeroLengthIntervalsDropped(t *testing.T) {
	s := simplices(t, c(0, 0), c(0, 1), c(0, 0, 1), c(1, 2), c(1, 1, 2))
	bc, err := homology.NewAbsolute[S, bool](algebra.BooleanField()).ComputeIndexIntervals(s)
	require.NoError(t, err)
	assert.Equal(t, "H0: [0, ∞)", bc.String())
}

func TestProjectivePlane_TorsionDependsOnField(t *testing.T) {
	s := simplices(t, projectivePlane()...)
	opts := homology.WithDimensions(0, 2)

	gf2, err := homology.NewAbsolute[S, bool](algebra.BooleanField(), opts).ComputeIndexIntervals(s)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, gf2.BettiNumbers(2))

	z3, err := homology.NewAbsolute[S, int](algebra.MustModular(3), opts).ComputeIndexIntervals(s)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0}, z3.BettiNumbers(2))

	q, err := homology.NewClassical[S, *big.Rat](algebra.RationalField(), opts).ComputeIndexIntervals(s)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0}, q.BettiNumbers(2))
	h1 := q.AtDimension(1)
	assert.Len(t, h1, 10, "every graph cycle dies when the triangles arrive")
	for _, iv := range h1 {
		assert.Equal(t, barcode.Finite(1, 2), iv)
	}
	assert.Len(t, gf2.AtDimension(1), 10, "nine die, one survives")
}

func TestTorus(t *testing.T) {
	s := simplices(t, torus()...)
	for name, alg := range algorithms(homology.WithDimensions(0, 2)) {
		t.Run(name, func(t *testing.T) {
			bc, err := alg.ComputeIndexIntervals(s)
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2, 1}, bc.BettiNumbers(2))
		})
	}
}

func TestCellularProjectivePlane(t *testing.T) {
	// one cell per dimension: ∂e = v - v, ∂f = 2e.
	e := stream.NewExplicit(func(a, b string) int { return len(a) - len(b) })
	require.NoError(t, e.Add("v", 0, 0, nil))
	require.NoError(t, e.Add("ee", 1, 0, []stream.Term[string]{{Cell: "v", Coefficient: 1}, {Cell: "v", Coefficient: -1}}))
	require.NoError(t, e.Add("fff", 2, 0, []stream.Term[string]{{Cell: "ee", Coefficient: 2}}))
	require.NoError(t, e.Finalize())
	opts := homology.WithDimensions(0, 2)

	gf2, err := homology.NewAbsolute[string, bool](algebra.BooleanField(), opts).ComputeIndexIntervals(e)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, gf2.BettiNumbers(2))

	z5, err := homology.NewAbsolute[string, int](algebra.MustModular(5), opts).ComputeIndexIntervals(e)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0}, z5.BettiNumbers(2))
}

func TestGenerators_AreCycles(t *testing.T) {
	s := simplices(t, zomorodianCarlsson()...)
	f := algebra.MustModular(7)
	m := chain.NewModule[S, int](f)
	ann, err := homology.NewAbsolute[S, int](f).ComputeAnnotatedIndexIntervals(s)
	require.NoError(t, err)
	assert.Equal(t, 5, ann.Len())
	assert.Equal(t, "H0: [0, 1) [0, ∞) [1, 2)\nH1: [2, 5) [3, 4)", ann.Barcodes().String())

	for _, p := range ann.AtDimension(1) {
		require.False(t, p.Generator.IsEmpty())
		assert.True(t, boundaryOf(m, p.Generator).IsEmpty(), "%v bounds %v", p.Generator, p.Interval)
	}
	// the essential H0 class is a single vertex
	for _, p := range ann.AtDimension(0) {
		if p.Interval.Infinite {
			assert.Equal(t, []S{stream.NewSimplex(0)}, p.Generator.Cells())
		}
	}
}

func TestTriangle_Generators(t *testing.T) {
	s := simplices(t, triangle()...)
	f := algebra.MustModular(3)
	m := chain.NewModule[S, int](f)
	ann, err := homology.NewAbsolute[S, int](f).ComputeAnnotatedIntervals(s)
	require.NoError(t, err)

	h1 := ann.AtDimension(1)
	require.Len(t, h1, 1)
	gen := h1[0].Generator
	assert.Equal(t, 3, gen.Len(), "the loop uses all three edges")
	assert.True(t, boundaryOf(m, gen).IsEmpty())
	assert.True(t, gen.Contains(stream.NewSimplex(0, 2)))

	// [0, 1) is generated by ∂[0,1] = [1] - [0]
	h0 := ann.AtDimension(0)
	require.Len(t, h0, 3)
	want := m.Of(
		chain.Entry[S, int]{Cell: stream.NewSimplex(1), Coefficient: 1},
		chain.Entry[S, int]{Cell: stream.NewSimplex(0), Coefficient: -1},
	)
	assert.True(t, m.Equal(want, h0[0].Generator), "got %v", h0[0].Generator)
}

func TestRelative_TriangleModVertex(t *testing.T) {
	s := simplices(t, triangle()...)
	v0 := stream.NewSimplex(0)
	inL := func(x S) bool { return x == v0 }

	rel := homology.NewRelative[S, int](algebra.MustModular(3), inL)
	bc, err := rel.ComputeIndexIntervals(s)
	require.NoError(t, err)
	assert.Equal(t, "H0: [0, 1) [0, 2)\nH1: [3, ∞)", bc.String())

	ann, err := rel.ComputeAnnotatedIndexIntervals(s)
	require.NoError(t, err)
	for _, p := range ann.AtDimension(0) {
		assert.False(t, p.Generator.Contains(v0), "cells of L never appear in relative chains")
	}
}

func TestRelative_InvalidSubcomplex(t *testing.T) {
	s := simplices(t, triangle()...)
	edge := stream.NewSimplex(0, 1)
	rel := homology.NewRelative[S, bool](algebra.BooleanField(), func(x S) bool { return x == edge })
	_, err := rel.ComputeIntervals(s)
	assert.ErrorIs(t, err, homology.ErrInvalidSubcomplex)
}

func TestMalformedStream(t *testing.T) {
	t.Run("missing face", func(t *testing.T) {
		s := stream.NewSimplexStream()
		require.NoError(t, s.AddSimplex(0, 0))
		require.NoError(t, s.AddSimplex(0, 0, 1))
		_, err := homology.NewAbsolute[S, bool](algebra.BooleanField()).ComputeIntervals(s)
		assert.ErrorIs(t, err, homology.ErrMalformedStream)
	})
	t.Run("face after coface", func(t *testing.T) {
		s := simplices(t, triangle()...)
		reversed := func(a, b S) int { return -stream.CompareSimplices(a, b) }
		alg := homology.NewAbsolute[S, int](algebra.MustModular(3), homology.WithComparator(reversed))
		s2 := simplices(t, c(0, 0), c(0, 1), c(0, 2), c(1, 0, 1), c(1, 0, 1, 2), c(1, 1, 2), c(1, 0, 2))
		_, err := alg.ComputeIntervals(s2)
		assert.ErrorIs(t, err, homology.ErrMalformedStream)
		_, err = alg.ComputeIntervals(s)
		assert.NoError(t, err)
	})
	t.Run("comparator type", func(t *testing.T) {
		alg := homology.NewAbsolute[S, int](algebra.MustModular(3),
			homology.WithComparator(func(a, b string) int { return 0 }))
		_, err := alg.ComputeIntervals(simplices(t, triangle()...))
		assert.ErrorIs(t, err, homology.ErrComparatorType)
	})
}

func TestWithDimensions(t *testing.T) {
	s := simplices(t, triangle()...)
	bc, err := homology.NewAbsolute[S, bool](algebra.BooleanField(), homology.WithDimensions(1, 1)).ComputeIndexIntervals(s)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, bc.Dimensions())

	assert.Panics(t, func() { homology.WithDimensions(-1, 1) })
	assert.Panics(t, func() { homology.WithDimensions(2, 1) })
}

func TestSelect(t *testing.T) {
	s := simplices(t, projectivePlane()...)
	cases := []struct {
		cfg   homology.Config[S]
		betti []int
	}{
		{homology.Config[S]{Coefficients: homology.Boolean, MaxDimension: 2}, []int{1, 1, 1}},
		{homology.Config[S]{Coefficients: homology.Modular, Prime: 2, MaxDimension: 2}, []int{1, 1, 1}},
		{homology.Config[S]{Coefficients: homology.Modular, MaxDimension: 2, Variant: homology.ClassicalVariant}, []int{1, 0, 0}},
		{homology.Config[S]{Coefficients: homology.Rational, MaxDimension: 2, Variant: homology.AbsoluteVariant}, []int{1, 0, 0}},
	}
	for _, tc := range cases {
		alg, err := homology.Select(tc.cfg)
		require.NoError(t, err)
		bc, err := alg.ComputeIndexIntervals(s)
		require.NoError(t, err)
		assert.Equal(t, tc.betti, bc.BettiNumbers(2), "%+v", tc.cfg)
	}

	_, err := homology.Select(homology.Config[S]{Coefficients: "complex"})
	assert.ErrorIs(t, err, homology.ErrInvalidConfig)

	_, err = homology.Select(homology.Config[S]{Coefficients: homology.Modular, Prime: 4})
	assert.ErrorIs(t, err, homology.ErrInvalidConfig)
	assert.ErrorIs(t, err, algebra.ErrInvalidModulus)

	_, err = homology.Select(homology.Config[S]{Coefficients: homology.Boolean, Variant: homology.RelativeVariant})
	assert.ErrorIs(t, err, homology.ErrInvalidConfig)

	_, err = homology.Select(homology.Config[S]{Coefficients: homology.Boolean, Variant: "sideways"})
	assert.ErrorIs(t, err, homology.ErrInvalidConfig)
}

// TestEulerCharacteristic checks Σ(−1)^q·#cells_q = Σ(−1)^q·β_q.
func TestEulerCharacteristic(t *testing.T) {
	fixtures := map[string][]cell{
		"filled triangle": append(triangle(), c(4, 0, 1, 2)),
		"torus":           torus(),
		"projective":      projectivePlane(),
		"zc":              zomorodianCarlsson(),
	}
	for name, cells := range fixtures {
		s := simplices(t, cells...)
		chi := 0
		for _, x := range s.Cells() {
			chi += 1 - 2*(x.Dimension()%2)
		}
		for alg, a := range algorithms(homology.WithDimensions(0, 2)) {
			bc, err := a.ComputeIndexIntervals(s)
			require.NoError(t, err)
			b := bc.BettiNumbers(2)
			assert.Equal(t, chi, b[0]-b[1]+b[2], "%s/%s", name, alg)
		}
	}
}
