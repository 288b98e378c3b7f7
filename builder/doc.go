// SPDX-License-Identifier: MIT

// Package builder assembles deterministic simplicial-complex fixtures as
// finalized stream.SimplexStream values.
//
// A fixture is a list of Constructor closures run in order by BuildStream:
//
//	s, err := builder.BuildStream(
//		[]builder.Option{builder.WithValueStep(0.5)},
//		builder.Torus(),
//	)
//
// Constructors:
//
//   - Triangle, FilledTriangle: the hollow and filled 2-simplex with
//     staggered edge values.
//   - Circle(n): an n-gon, all edges at one value.
//   - SimplexBoundary(d): every proper face of the d-simplex, a (d-1)-sphere.
//   - Octahedron, Torus, ProjectivePlane: minimal triangulations of S², T²
//     and RP², vertices at 0, edges at 1, triangles at 2.
//   - ZomorodianCarlsson: the four-vertex filtration from the persistence
//     literature.
//   - RandomFlag(n, p): a random flag (clique) complex up to triangles; each
//     edge is kept with probability p and gets a uniform value, higher
//     simplices take the maximum value of their edges.
//
// Filtration values are multiplied by the value step (WithValueStep, default
// 1). Cells already present are left untouched, so constructors compose:
// Circle(3) followed by FilledTriangle() keeps the circle's edge values.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability and ErrNeedRandSource,
// wrapped with the constructor name; stream errors pass through.
package builder
