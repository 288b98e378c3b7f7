// SPDX-License-Identifier: MIT

package zigzag

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

// Option configures a Tracker.
type Option func(*options)

type options struct {
	minDim, maxDim int
	comparator     any
	logger         zerolog.Logger
}

// WithDimensions reports dimensions min..max. All dimensions are tracked
// internally regardless. Panics if min < 0 or max < min.
func WithDimensions(minDim, maxDim int) Option {
	if minDim < 0 || maxDim < minDim {
		panic(fmt.Sprintf("zigzag: WithDimensions(%d, %d): need 0 ≤ min ≤ max", minDim, maxDim))
	}

	return func(o *options) {
		o.minDim, o.maxDim = minDim, maxDim
	}
}

// WithLogger sets the per-event debug logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithComparator sets the order cells must respect: every face of an added
// cell has to compare below it, otherwise Add fails with ErrFaceOrder. The
// cell type must match the tracker's; NewTracker panics on a mismatch.
// Panics on nil.
func WithComparator[C comparable](cmp func(a, b C) int) Option {
	if cmp == nil {
		panic("zigzag: WithComparator(nil)")
	}

	return func(o *options) {
		o.comparator = cmp
	}
}
