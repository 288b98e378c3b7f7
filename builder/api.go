// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// api.go - the BuildStream orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/stream"
)

// Constructor adds cells to s. Constructors validate their parameters before
// touching s and keep cells that are already present.
type Constructor func(s *stream.SimplexStream, cfg config) error

// BuildStream resolves opts, runs cons in order on a fresh stream and
// finalizes it. Errors are wrapped with "BuildStream: %w".
func BuildStream(opts []Option, cons ...Constructor) (*stream.SimplexStream, error) {
	s := stream.NewSimplexStream()
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildStream: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildStream: %w", err)
		}
	}
	if err := s.Finalize(); err != nil {
		return nil, fmt.Errorf("BuildStream: %w", err)
	}

	return s, nil
}

// MustBuild is BuildStream for fixed fixtures; it panics on error.
func MustBuild(opts []Option, cons ...Constructor) *stream.SimplexStream {
	s, err := BuildStream(opts, cons...)
	if err != nil {
		panic(err)
	}

	return s
}

// addSimplex inserts the simplex at grade·step unless it is already present.
func addSimplex(method string, s *stream.SimplexStream, cfg config, grade float64, vertices ...int) error {
	if s.Contains(stream.NewSimplex(vertices...)) {
		return nil
	}
	if err := s.AddSimplex(cfg.value(grade), vertices...); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}
