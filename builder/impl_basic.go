// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_basic.go - small fixed complexes: triangles, polygons, simplex
// boundaries and the Zomorodian–Carlsson filtration.

package builder

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/lvtopo/stream"
)

const (
	methodTriangle           = "Triangle"
	methodFilledTriangle     = "FilledTriangle"
	methodCircle             = "Circle"
	methodSimplexBoundary    = "SimplexBoundary"
	methodZomorodianCarlsson = "ZomorodianCarlsson"

	minCircleVertices    = 3
	minSimplexBoundaryD  = 1
	maxSimplexBoundaryD  = 20
	triangleFillingGrade = 4
)

// graded is one simplex of a fixed fixture.
type graded struct {
	grade    float64
	vertices []int
}

func addAll(method string, s *stream.SimplexStream, cfg config, cells []graded) error {
	for _, c := range cells {
		if err := addSimplex(method, s, cfg, c.grade, c.vertices...); err != nil {
			return err
		}
	}

	return nil
}

func hollowTriangle() []graded {
	return []graded{
		{0, []int{0}}, {0, []int{1}}, {0, []int{2}},
		{1, []int{0, 1}}, {2, []int{1, 2}}, {3, []int{0, 2}},
	}
}

// Triangle adds the hollow triangle: vertices at 0, edges 01, 12, 02 at 1, 2, 3.
// Its persistence is H0 [0,∞) [0,1) [0,2) and H1 [3,∞).
func Triangle() Constructor {
	return func(s *stream.SimplexStream, cfg config) error {
		return addAll(methodTriangle, s, cfg, hollowTriangle())
	}
}

// FilledTriangle adds Triangle plus the 2-simplex at 4, which kills the H1 class.
func FilledTriangle() Constructor {
	return func(s *stream.SimplexStream, cfg config) error {
		cells := append(hollowTriangle(), graded{triangleFillingGrade, []int{0, 1, 2}})

		return addAll(methodFilledTriangle, s, cfg, cells)
	}
}

// Circle adds an n-gon on vertices 0..n-1: vertices at 0, edges at 1.
func Circle(n int) Constructor {
	return func(s *stream.SimplexStream, cfg config) error {
		if n < minCircleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCircle, n, minCircleVertices, ErrTooFewVertices)
		}
		cells := make([]graded, 0, 2*n)
		for i := 0; i < n; i++ {
			cells = append(cells, graded{0, []int{i}})
		}
		for i := 0; i < n; i++ {
			cells = append(cells, graded{1, []int{i, (i + 1) % n}})
		}

		return addAll(methodCircle, s, cfg, cells)
	}
}

// SimplexBoundary adds every proper face of the d-simplex on vertices 0..d,
// each at its dimension. The result is a (d-1)-sphere.
func SimplexBoundary(d int) Constructor {
	return func(s *stream.SimplexStream, cfg config) error {
		if d < minSimplexBoundaryD {
			return fmt.Errorf("%s: d=%d < min=%d: %w", methodSimplexBoundary, d, minSimplexBoundaryD, ErrTooFewVertices)
		}
		if d > maxSimplexBoundaryD {
			return fmt.Errorf("%s: d=%d > max=%d: %w", methodSimplexBoundary, d, maxSimplexBoundaryD, ErrTooFewVertices)
		}
		n := d + 1
		full := uint32(1)<<n - 1
		var cells []graded
		for size := 1; size <= d; size++ {
			for mask := uint32(1); mask < full; mask++ {
				if bits.OnesCount32(mask) != size {
					continue
				}
				vs := make([]int, 0, size)
				for v := 0; v < n; v++ {
					if mask&(1<<v) != 0 {
						vs = append(vs, v)
					}
				}
				cells = append(cells, graded{float64(size - 1), vs})
			}
		}

		return addAll(methodSimplexBoundary, s, cfg, cells)
	}
}

// ZomorodianCarlsson adds the four-vertex filtration a=0 b=1 c=2 d=3:
//
//	0: a b
//	1: c d ab bc
//	2: cd ad
//	3: ac
//	4: abc
//	5: acd
func ZomorodianCarlsson() Constructor {
	return func(s *stream.SimplexStream, cfg config) error {
		return addAll(methodZomorodianCarlsson, s, cfg, []graded{
			{0, []int{0}}, {0, []int{1}},
			{1, []int{2}}, {1, []int{3}}, {1, []int{0, 1}}, {1, []int{1, 2}},
			{2, []int{2, 3}}, {2, []int{0, 3}},
			{3, []int{0, 2}},
			{4, []int{0, 1, 2}},
			{5, []int{0, 2, 3}},
		})
	}
}
