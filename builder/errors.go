// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors wrap with "%s: ...: %w".

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: random source required")

// ErrNilConstructor indicates a nil Constructor passed to BuildStream.
var ErrNilConstructor = errors.New("builder: nil constructor")
