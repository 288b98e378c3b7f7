// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvtopo/algebra"
)

// Config selects an algorithm by name, as read from configuration files.
type Config[C comparable] struct {
	Coefficients Coefficients
	Variant      Variant
	MinDimension int
	MaxDimension int

	// Prime is the modulus for Modular coefficients; 0 means DefaultPrime.
	Prime int

	// Subcomplex is required by RelativeVariant.
	Subcomplex func(C) bool

	// Comparator overrides the stream's tie-break order when set.
	Comparator func(a, b C) int

	Logger *zerolog.Logger
}

// Select builds the algorithm named by cfg.
func Select[C comparable](cfg Config[C]) (Algorithm[C], error) {
	if cfg.MinDimension < 0 || cfg.MaxDimension < cfg.MinDimension {
		return nil, fmt.Errorf("Select: dimensions %d..%d: %w", cfg.MinDimension, cfg.MaxDimension, ErrInvalidConfig)
	}
	if cfg.Variant == RelativeVariant && cfg.Subcomplex == nil {
		return nil, fmt.Errorf("Select: relative variant without subcomplex: %w", ErrInvalidConfig)
	}
	opts := []Option{WithDimensions(cfg.MinDimension, cfg.MaxDimension)}
	if cfg.Comparator != nil {
		opts = append(opts, WithComparator(cfg.Comparator))
	}
	if cfg.Logger != nil {
		opts = append(opts, WithLogger(*cfg.Logger))
	}

	switch cfg.Coefficients {
	case Boolean:
		return selectVariant[C, bool](algebra.BooleanField(), cfg, opts)
	case Modular:
		p := cfg.Prime
		if p == 0 {
			p = DefaultPrime
		}
		f, err := algebra.ModularField(p)
		if err != nil {
			return nil, fmt.Errorf("Select: %w: %w", ErrInvalidConfig, err)
		}

		return selectVariant[C, int](f, cfg, opts)
	case Rational:
		return selectVariant[C, *big.Rat](algebra.RationalField(), cfg, opts)
	default:
		return nil, fmt.Errorf("Select: coefficients %q: %w", cfg.Coefficients, ErrInvalidConfig)
	}
}

func selectVariant[C comparable, T any](f algebra.Field[T], cfg Config[C], opts []Option) (Algorithm[C], error) {
	switch cfg.Variant {
	case AbsoluteVariant, "":
		return NewAbsolute[C, T](f, opts...), nil
	case RelativeVariant:
		return NewRelative[C, T](f, cfg.Subcomplex, opts...), nil
	case ClassicalVariant:
		return NewClassical[C, T](f, opts...), nil
	default:
		return nil, fmt.Errorf("Select: variant %q: %w", cfg.Variant, ErrInvalidConfig)
	}
}
