// SPDX-License-Identifier: MIT

package homology

import (
	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/stream"
)

// Algorithm computes barcodes of a filtered complex.
type Algorithm[C comparable] interface {
	// ComputeIntervals reports intervals in filtration values.
	ComputeIntervals(s stream.Filtered[C]) (*barcode.Collection[float64], error)
	// ComputeIndexIntervals reports intervals in filtration indices.
	ComputeIndexIntervals(s stream.Filtered[C]) (*barcode.Collection[int], error)
}

// BasisAlgorithm additionally reports a generating cycle per interval.
type BasisAlgorithm[C comparable, T any] interface {
	Algorithm[C]
	ComputeAnnotatedIntervals(s stream.Filtered[C]) (*barcode.Annotated[float64, *chain.FormalSum[C, T]], error)
	ComputeAnnotatedIndexIntervals(s stream.Filtered[C]) (*barcode.Annotated[int, *chain.FormalSum[C, T]], error)
}

// Coefficients names a coefficient system for Select.
type Coefficients string

// Coefficient systems.
const (
	Boolean  Coefficients = "boolean"
	Modular  Coefficients = "modular"
	Rational Coefficients = "rational"
)

// Variant names a persistence variant for Select.
type Variant string

// Variants.
const (
	AbsoluteVariant  Variant = "absolute"
	RelativeVariant  Variant = "relative"
	ClassicalVariant Variant = "classical"
)

// DefaultPrime is the modulus Select uses when Config.Prime is zero.
const DefaultPrime = 3
