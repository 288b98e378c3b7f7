// SPDX-License-Identifier: MIT
// Package: lvtopo/cmd/lvtopo/cmd
//
// fields.go - dispatch of the generic zigzag and bootstrap runs on the
// configured coefficient field.

package cmd

import (
	"fmt"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvtopo/algebra"
	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/bootstrap"
	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/stream"
	"github.com/katalvlaran/lvtopo/zigzag"
)

func (c *Config) trackerOptions(log zerolog.Logger) []zigzag.Option {
	return []zigzag.Option{
		zigzag.WithDimensions(c.MinDimension, c.MaxDimension),
		zigzag.WithComparator(stream.CompareSimplices),
		zigzag.WithLogger(log),
	}
}

// runEvents replays events on a fresh tracker over the configured field.
func runEvents(c *Config, events []Event, log zerolog.Logger) (*barcode.Collection[int], error) {
	switch homology.Coefficients(c.Field) {
	case homology.Boolean:
		return replay[bool](algebra.BooleanField(), events, c.trackerOptions(log))
	case homology.Modular:
		f, err := algebra.ModularField(c.Prime)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return replay[int](f, events, c.trackerOptions(log))
	default:
		return replay[*big.Rat](algebra.RationalField(), events, c.trackerOptions(log))
	}
}

func replay[T any](f algebra.Field[T], events []Event, opts []zigzag.Option) (*barcode.Collection[int], error) {
	tr := zigzag.NewTracker[stream.Simplex, T](f, stream.Simplicial{}, opts...)
	for i, e := range events {
		var err error
		if len(e.Add) > 0 {
			err = tr.Add(stream.NewSimplex(e.Add...))
		} else {
			err = tr.Remove(stream.NewSimplex(e.Remove...))
		}
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}

	return tr.Barcodes(), nil
}

// runBootstrap runs the union zigzag of samples over the configured field.
func runBootstrap(c *Config, samples [][]stream.Simplex, log zerolog.Logger) (*bootstrap.Result, error) {
	opts := []bootstrap.Option{
		bootstrap.WithLogger(log),
		bootstrap.WithTrackerOptions(c.trackerOptions(log)...),
	}
	bd := stream.Simplicial{}
	switch homology.Coefficients(c.Field) {
	case homology.Boolean:
		return bootstrap.Zigzag[stream.Simplex, bool](algebra.BooleanField(), bd, samples, opts...)
	case homology.Modular:
		f, err := algebra.ModularField(c.Prime)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return bootstrap.Zigzag[stream.Simplex, int](f, bd, samples, opts...)
	default:
		return bootstrap.Zigzag[stream.Simplex, *big.Rat](algebra.RationalField(), bd, samples, opts...)
	}
}
