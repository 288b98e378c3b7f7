// SPDX-License-Identifier: MIT
// Package: lvtopo/bottleneck
//
// distance.go - cost model, candidate thresholds and the binary search.

package bottleneck

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvtopo/barcode"
)

// Cost returns the L∞ distance between two intervals.
func Cost(a, b barcode.Interval[float64]) float64 {
	switch {
	case a.Infinite && b.Infinite:
		return math.Abs(a.Birth - b.Birth)
	case a.Infinite || b.Infinite:
		return math.Inf(1)
	}

	return math.Max(math.Abs(a.Birth-b.Birth), math.Abs(a.Death-b.Death))
}

// DiagonalCost returns the distance from iv to the diagonal.
func DiagonalCost(iv barcode.Interval[float64]) float64 {
	if iv.Infinite {
		return math.Inf(1)
	}

	return (iv.Death - iv.Birth) / 2
}

// Distance returns the bottleneck distance between a and b, or +Inf when no
// finite matching exists. Inputs are assumed valid; see DistanceChecked.
func Distance(a, b []barcode.Interval[float64]) float64 {
	n, m := len(a), len(b)
	if n == 0 && m == 0 {
		return 0
	}
	costs := make([][]float64, n)
	candidates := []float64{0}
	for i := range a {
		costs[i] = make([]float64, m)
		for j := range b {
			costs[i][j] = Cost(a[i], b[j])
			candidates = appendFinite(candidates, costs[i][j])
		}
		candidates = appendFinite(candidates, DiagonalCost(a[i]))
	}
	for j := range b {
		candidates = appendFinite(candidates, DiagonalCost(b[j]))
	}
	slices.Sort(candidates)
	candidates = slices.Compact(candidates)

	g := &instance{a: a, b: b, costs: costs}
	if !g.perfect(candidates[len(candidates)-1]) {
		return math.Inf(1)
	}
	lo, hi := 0, len(candidates)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if g.perfect(candidates[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return candidates[lo]
}

// DistanceChecked validates the intervals and returns Distance.
func DistanceChecked(a, b []barcode.Interval[float64]) (float64, error) {
	for _, side := range [][]barcode.Interval[float64]{a, b} {
		for _, iv := range side {
			if math.IsNaN(iv.Birth) || (!iv.Infinite && (math.IsNaN(iv.Death) || iv.Death < iv.Birth)) {
				return 0, fmt.Errorf("DistanceChecked: %v: %w", iv, ErrInvalidInterval)
			}
		}
	}

	return Distance(a, b), nil
}

// Between compares dimension dimA of ca with dimension dimB of cb.
func Between(ca *barcode.Collection[float64], dimA int, cb *barcode.Collection[float64], dimB int) float64 {
	return Distance(ca.AtDimension(dimA), cb.AtDimension(dimB))
}

// AtDimension compares ca and cb in dim.
func AtDimension(ca, cb *barcode.Collection[float64], dim int) float64 {
	return Between(ca, dim, cb, dim)
}

func appendFinite(xs []float64, x float64) []float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return xs
	}

	return append(xs, x)
}
