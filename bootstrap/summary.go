// SPDX-License-Identifier: MIT
// Package: lvtopo/bootstrap
//
// summary.go - bottleneck statistics over a sequence of barcodes.

package bootstrap

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/bottleneck"
)

// Summary describes the bottleneck distances between consecutive barcodes.
// Mean, StdDev and Median are over the finite distances and are NaN when
// there are none; Max is +Inf when any distance is infinite.
type Summary struct {
	Distances []float64
	Infinite  int
	Mean      float64
	StdDev    float64
	Median    float64
	Max       float64
}

// Summarize compares collections[i] with collections[i+1] in dim.
func Summarize(collections []*barcode.Collection[float64], dim int) (Summary, error) {
	if len(collections) < 2 {
		return Summary{}, fmt.Errorf("Summarize: got %d: %w", len(collections), ErrTooFewBarcodes)
	}
	out := Summary{Distances: make([]float64, 0, len(collections)-1)}
	var finite []float64
	for i := 0; i+1 < len(collections); i++ {
		d := bottleneck.AtDimension(collections[i], collections[i+1], dim)
		out.Distances = append(out.Distances, d)
		if math.IsInf(d, 1) {
			out.Infinite++
			continue
		}
		finite = append(finite, d)
	}

	out.Max = slices.Max(out.Distances)
	if len(finite) == 0 {
		out.Mean, out.StdDev, out.Median = math.NaN(), math.NaN(), math.NaN()
		return out, nil
	}
	slices.Sort(finite)
	out.Mean = stat.Mean(finite, nil)
	if len(finite) > 1 {
		out.StdDev = stat.StdDev(finite, nil)
	}
	out.Median = stat.Quantile(0.5, stat.Empirical, finite, nil)

	return out, nil
}
