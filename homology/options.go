// SPDX-License-Identifier: MIT
// Package: lvtopo/homology
//
// options.go - functional configuration shared by every variant.
//
// Defaults:
//   • dimensions 0..1
//   • comparator: the stream's own Compare
//   • logger: zerolog.Nop()
//
// Option constructors panic on nonsensical values (programmer error).

package homology

import (
	"fmt"

	"github.com/rs/zerolog"
)

const (
	// DefaultMinDimension is the lowest reported dimension.
	DefaultMinDimension = 0
	// DefaultMaxDimension is the highest reported dimension.
	DefaultMaxDimension = 1
)

// Option configures an algorithm.
type Option func(*options)

type options struct {
	minDim, maxDim int
	comparator     any
	logger         zerolog.Logger
}

func gatherOptions(opts []Option) options {
	o := options{
		minDim: DefaultMinDimension,
		maxDim: DefaultMaxDimension,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithDimensions reports dimensions min..max inclusive.
// Panics if min < 0 or max < min.
func WithDimensions(minDim, maxDim int) Option {
	if minDim < 0 || maxDim < minDim {
		panic(fmt.Sprintf("homology: WithDimensions(%d, %d): need 0 ≤ min ≤ max", minDim, maxDim))
	}

	return func(o *options) {
		o.minDim, o.maxDim = minDim, maxDim
	}
}

// WithComparator overrides the tie-break order among cells sharing a
// filtration index. Its cell type must match the algorithm's, otherwise
// computations fail with ErrComparatorType. Panics on nil.
func WithComparator[C comparable](cmp func(a, b C) int) Option {
	if cmp == nil {
		panic("homology: WithComparator(nil)")
	}

	return func(o *options) {
		o.comparator = cmp
	}
}

// WithLogger sets the debug logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
