// SPDX-License-Identifier: MIT

// Package algebra defines the coefficient rings and fields every homology
// computation in lvtopo is parameterized over.
//
// 🚀 What is here?
//
//	A single generic contract instead of one class per primitive type:
//	  • Ring[T]  - add, subtract, multiply, negate, valueOf(n), zero/one
//	  • Field[T] - Ring[T] plus divide and invert
//
// Concrete coefficient systems:
//
//	Boolean   - GF(2) over bool: add = XOR, multiply = AND, negate = identity.
//	            Algorithms detect it and switch to set/bitmap storage.
//	Modular   - Z/pZ over int for a prime p; canonical residues in [0, p),
//	            int64 products and a precomputed inverse table.
//	Rational  - exact rationals over *big.Rat (characteristic 0).
//
// Powers:
//
//	Power(r, a, n)      - square-and-multiply for n ≥ 0 on any ring.
//	FieldPower(f, a, n) - n < 0 becomes Power(f, Invert(a), -n).
//
// Errors & panics:
//
//	Constructors return sentinel errors (ErrInvalidModulus). Inverting zero is a
//	caller bug: Invert/Divide panic with an error wrapping ErrDivisionByZero so
//	that a recover can still match it with errors.Is.
//
// Concurrency: all values are immutable after construction; ModularField
// caches one instance per prime behind a mutex.
package algebra
