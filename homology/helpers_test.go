// SPDX-License-Identifier: MIT

package homology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/stream"
)

// cell is a simplex with its filtration value.
type cell struct {
	value    float64
	vertices []int
}

func simplices(t testing.TB, cells ...cell) *stream.SimplexStream {
	t.Helper()
	s := stream.NewSimplexStream()
	for _, c := range cells {
		require.NoError(t, s.AddSimplex(c.value, c.vertices...))
	}
	require.NoError(t, s.Finalize())

	return s
}

func c(value float64, vertices ...int) cell { return cell{value: value, vertices: vertices} }

// triangle is the hollow triangle: vertices at 0, edges 01@1, 12@2, 02@3.
func triangle() []cell {
	return []cell{c(0, 0), c(0, 1), c(0, 2), c(1, 0, 1), c(2, 1, 2), c(3, 0, 2)}
}

// zomorodianCarlsson is the standard four-vertex example with a=0 b=1 c=2 d=3.
func zomorodianCarlsson() []cell {
	return []cell{
		c(0, 0), c(0, 1),
		c(1, 2), c(1, 3), c(1, 0, 1), c(1, 1, 2),
		c(2, 0, 3), c(2, 2, 3),
		c(3, 0, 2),
		c(4, 0, 1, 2),
		c(5, 0, 2, 3),
	}
}

// closedSurface returns every face of the given triangles: vertices at 0,
// edges at 1, triangles at 2.
func closedSurface(triangles [][3]int) []cell {
	verts := map[int]bool{}
	edges := map[[2]int]bool{}
	var out []cell
	for _, tr := range triangles {
		for k := 0; k < 3; k++ {
			verts[tr[k]] = true
			a, b := tr[k], tr[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			edges[[2]int{a, b}] = true
		}
	}
	for v := range verts {
		out = append(out, c(0, v))
	}
	for e := range edges {
		out = append(out, c(1, e[0], e[1]))
	}
	for _, tr := range triangles {
		out = append(out, c(2, tr[0], tr[1], tr[2]))
	}

	return out
}

func projectivePlane() []cell {
	return closedSurface([][3]int{
		{0, 1, 3}, {0, 1, 5}, {0, 2, 4}, {0, 2, 5}, {0, 3, 4},
		{1, 2, 3}, {1, 2, 4}, {1, 4, 5}, {2, 3, 5}, {3, 4, 5},
	})
}

func torus() []cell {
	var tris [][3]int
	for i := 0; i < 7; i++ {
		tris = append(tris, [3]int{i, (i + 1) % 7, (i + 3) % 7}, [3]int{i, (i + 2) % 7, (i + 3) % 7})
	}

	return closedSurface(tris)
}

// boundaryOf applies the simplicial boundary to a formal sum.
func boundaryOf[T any](m *chain.Module[stream.Simplex, T], s *chain.FormalSum[stream.Simplex, T]) *chain.FormalSum[stream.Simplex, T] {
	out := m.New()
	r := m.Ring()
	s.Each(func(sx stream.Simplex, v T) bool {
		for _, t := range sx.Faces() {
			m.AddTerm(out, t.Cell, r.Multiply(v, r.ValueOf(t.Coefficient)))
		}
		return true
	})

	return out
}
