// SPDX-License-Identifier: MIT

// Package chain implements formal sums: finite linear combinations of cells
// with coefficients in a ring. They are the chains of a chain complex, the
// cycle representatives attached to barcode intervals, and the working
// columns of the zigzag tracker.
//
// 🚀 Two types:
//
//	FormalSum[C, T] - the container. A map cell → coefficient that never
//	                  stores a zero coefficient, so Len() is the support size.
//	Module[C, T]    - the arithmetic. Bound to one algebra.Ring[T], it adds,
//	                  subtracts, scales and accumulates sums over that ring.
//
// Cost model:
//
//	Accumulate(a, b) walks b only; the non-destructive Add clones the larger
//	operand and folds the smaller one in. Scaling by zero yields the empty sum.
//
// GF(2):
//
//	When the ring is algebra.Boolean every stored coefficient is true, so
//	AddTerm degenerates to toggling membership (symmetric difference).
//
// Determinism: FormalSum iteration order is Go map order; use Sorted with a
// cell comparator whenever output order matters.
package chain
