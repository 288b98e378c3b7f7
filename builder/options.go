// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// options.go - functional options and the resolved builder configuration.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves return errors.
//
// Defaults:
//   - rng       = nil (RandomFlag fails with ErrNeedRandSource)
//   - valueStep = 1

package builder

import (
	"math"
	"math/rand"
)

const defaultValueStep = 1.0

// Option customizes the builder configuration.
type Option func(*config)

// config is passed by value to constructors.
type config struct {
	rng       *rand.Rand
	valueStep float64
}

func newConfig(opts ...Option) config {
	cfg := config{valueStep: defaultValueStep}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// value scales a grade by the configured step.
func (c config) value(grade float64) float64 { return grade * c.valueStep }

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs r as the RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithValueStep multiplies every filtration value by step. Panics unless
// step is finite and positive.
func WithValueStep(step float64) Option {
	if !(step > 0) || math.IsInf(step, 0) {
		panic("builder: WithValueStep(step<=0)")
	}

	return func(c *config) {
		c.valueStep = step
	}
}
