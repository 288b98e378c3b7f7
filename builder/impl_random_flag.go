// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_random_flag.go - RandomFlag(n, p), a random clique complex up to
// dimension 2.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be set (else ErrNeedRandSource), even for p ∈ {0, 1}.
//
// Determinism: pairs (i, j), i < j, are visited in lexicographic order; each
// visit draws the inclusion trial and, if kept, the edge value.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtopo/stream"
)

const (
	methodRandomFlag      = "RandomFlag"
	minRandomFlagVertices = 1
	probMin               = 0.0
	probMax               = 1.0
)

// RandomFlag samples an Erdős–Rényi graph on n vertices with edge
// probability p, gives each kept edge a uniform value in [0, 1) and adds
// every triangle of the graph at the maximum value of its edges. Vertices
// are at 0.
func RandomFlag(n int, p float64) Constructor {
	return func(s *stream.SimplexStream, cfg config) error {
		if n < minRandomFlagVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomFlag, n, minRandomFlagVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomFlag, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomFlag, ErrNeedRandSource)
		}

		weight := make([][]float64, n)
		for i := range weight {
			weight[i] = make([]float64, n)
			for j := range weight[i] {
				weight[i][j] = math.NaN()
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					weight[i][j] = cfg.rng.Float64()
				}
			}
		}

		for i := 0; i < n; i++ {
			if err := addSimplex(methodRandomFlag, s, cfg, 0, i); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if w := weight[i][j]; !math.IsNaN(w) {
					if err := addSimplex(methodRandomFlag, s, cfg, w, i, j); err != nil {
						return err
					}
				}
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if math.IsNaN(weight[i][j]) {
					continue
				}
				for k := j + 1; k < n; k++ {
					a, b := weight[i][k], weight[j][k]
					if math.IsNaN(a) || math.IsNaN(b) {
						continue
					}
					w := math.Max(weight[i][j], math.Max(a, b))
					if err := addSimplex(methodRandomFlag, s, cfg, w, i, j, k); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
