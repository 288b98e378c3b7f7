// SPDX-License-Identifier: MIT
// Package: lvtopo/bootstrap
//
// zigzag.go - the union zigzag K₀ ⊂ K₀∪K₁ ⊃ K₁ ⊂ … over a list of samples.
//
// Stage s ends at tracker time ends[s]; the complex after event ends[s]-1 is
// stage s. A class alive over events [b, d) is alive at stage s iff
// b ≤ ends[s]-1 < d, which is a contiguous run of stages.

package bootstrap

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtopo/algebra"
	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/stream"
	"github.com/katalvlaran/lvtopo/zigzag"
)

// Result is the outcome of Zigzag.
type Result struct {
	// Events is the barcode in tracker event time.
	Events *barcode.Collection[int]
	// Stages is Events projected on stages; classes that never span a stage
	// boundary are dropped.
	Stages *barcode.Collection[int]
	// StageEnds[s] is the number of events processed when stage s completes.
	StageEnds []int
}

// Zigzag runs the union zigzag of samples. Each sample must be face-closed
// with faces listed before cofaces, as Subsample returns them.
func Zigzag[C comparable, T any](f algebra.Field[T], bd stream.Boundary[C], samples [][]C, opts ...Option) (*Result, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("Zigzag: %w", ErrNoSamples)
	}
	o := gatherOptions(opts)
	tr := zigzag.NewTracker[C, T](f, bd, o.tracker...)
	ends := make([]int, 0, 2*len(samples)-1)

	for _, c := range samples[0] {
		if err := tr.Add(c); err != nil {
			return nil, fmt.Errorf("Zigzag: stage 0: %w", err)
		}
	}
	ends = append(ends, tr.Time())
	o.logger.Debug().Int("stage", 0).Int("cells", tr.Len()).Msg("sample loaded")

	for j := 1; j < len(samples); j++ {
		prev, next := samples[j-1], samples[j]
		inPrev, inNext := membership(prev), membership(next)

		for _, c := range next {
			if inPrev[c] {
				continue
			}
			if err := tr.Add(c); err != nil {
				return nil, fmt.Errorf("Zigzag: stage %d: %w", 2*j-1, err)
			}
		}
		ends = append(ends, tr.Time())
		o.logger.Debug().Int("stage", 2*j-1).Int("cells", tr.Len()).Msg("union built")

		for i := len(prev) - 1; i >= 0; i-- {
			c := prev[i]
			if inNext[c] {
				continue
			}
			if err := tr.Remove(c); err != nil {
				return nil, fmt.Errorf("Zigzag: stage %d: %w", 2*j, err)
			}
		}
		ends = append(ends, tr.Time())
		o.logger.Debug().Int("stage", 2*j).Int("cells", tr.Len()).Msg("sample reached")
	}

	events := tr.Barcodes()

	return &Result{Events: events, Stages: project(events, ends), StageEnds: ends}, nil
}

func membership[C comparable](cells []C) map[C]bool {
	m := make(map[C]bool, len(cells))
	for _, c := range cells {
		m[c] = true
	}

	return m
}

// project maps event intervals onto stages.
func project(events *barcode.Collection[int], ends []int) *barcode.Collection[int] {
	// last[s] is the last event index of stage s.
	last := make([]int, len(ends))
	for s, e := range ends {
		last[s] = e - 1
	}
	firstAtLeast := func(t int) int {
		i, _ := slices.BinarySearch(last, t)
		return i
	}

	out := barcode.NewCollection[int]()
	for _, dim := range events.Dimensions() {
		for _, iv := range events.AtDimension(dim) {
			from := firstAtLeast(iv.Birth)
			if from == len(last) {
				continue
			}
			if iv.Infinite {
				out.AddInfinite(dim, from)
				continue
			}
			to := firstAtLeast(iv.Death)
			if to > from {
				out.Add(dim, from, to)
			}
		}
	}

	return out
}
