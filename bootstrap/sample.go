// SPDX-License-Identifier: MIT
// Package: lvtopo/bootstrap
//
// sample.go - face-closed random subcomplexes and stream restriction.

package bootstrap

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/lvtopo/stream"
)

// Subsample picks size distinct cells of cells uniformly at random and
// returns them with all their faces. The result lists every cell once,
// ordered by dimension and then by discovery, so faces precede cofaces.
func Subsample[C comparable](rng *rand.Rand, cells []C, bd stream.Boundary[C], size int) ([]C, error) {
	if rng == nil {
		return nil, fmt.Errorf("Subsample: %w", ErrNeedRandSource)
	}
	if size < 0 || size > len(cells) {
		return nil, fmt.Errorf("Subsample: size=%d not in [0,%d]: %w", size, len(cells), ErrInvalidSize)
	}

	picked := rng.Perm(len(cells))[:size]
	slices.Sort(picked)

	seen := make(map[C]bool)
	var out []C
	var closure func(c C)
	closure = func(c C) {
		if seen[c] {
			return
		}
		seen[c] = true
		for _, t := range bd.Boundary(c) {
			closure(t.Cell)
		}
		out = append(out, c)
	}
	for _, i := range picked {
		closure(cells[i])
	}
	slices.SortStableFunc(out, func(a, b C) int { return bd.Dimension(a) - bd.Dimension(b) })

	return out, nil
}

// Restrict returns a finalized stream holding only keep, with the values,
// boundaries and tie-break order of s. keep must be face-closed.
func Restrict[C comparable](s *stream.Explicit[C], keep []C) (*stream.Explicit[C], error) {
	if !s.Finalized() {
		return nil, fmt.Errorf("Restrict: %w", stream.ErrNotFinalized)
	}
	out := stream.NewExplicit(s.Compare)
	for _, c := range keep {
		if !s.Contains(c) {
			return nil, fmt.Errorf("Restrict: %v: %w", c, ErrUnknownCell)
		}
		if err := out.Add(c, s.Dimension(c), s.FiltrationValue(c), s.Boundary(c)); err != nil {
			return nil, fmt.Errorf("Restrict: %w", err)
		}
	}
	if err := out.Finalize(); err != nil {
		return nil, fmt.Errorf("Restrict: %w", err)
	}

	return out, nil
}
