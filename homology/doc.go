// SPDX-License-Identifier: MIT

// Package homology computes static persistent homology of a filtered complex
// by reducing its boundary matrix.
//
// 🚀 Variants:
//
//	Absolute[C, T]  - H_*(K_t): barcodes plus a generator per interval.
//	Relative[C, T]  - H_*(K_t, L) for a closed subcomplex L given as a
//	                  predicate; cells of L are removed from rows and columns.
//	Classical[C, T] - barcodes only; no cycle representatives are retained.
//
// Each variant reports intervals in filtration values (ComputeIntervals) or in
// filtration indices (ComputeIndexIntervals); Absolute and Relative add the
// annotated forms carrying chain.FormalSum generators.
//
// Algorithm (left-to-right column reduction):
//
//  1. Take the cells in stream order, rejecting with ErrMalformedStream an
//     unfinalized stream, a repeated cell, a decreasing filtration index,
//     indices and values that disagree, or a face that does not precede its
//     coface. WithComparator only reorders cells sharing an index.
//  2. Column j holds the boundary of cell j in the coefficient field; over
//     fields the columns come from the sparse.Matrix that BoundaryMatrix
//     also exports.
//  3. While low(j) is the low of an earlier column k, R_j -= (R_j[low]/R_k[low])·R_k,
//     mirrored on V when generators are requested.
//  4. A nonzero R_j pairs (low(j), j): an interval [f(low), f(j)) in dim(low)
//     generated by R_j. A zero, unpaired column j is an essential class
//     [f(j), ∞) in dim(j) generated by V_j. Zero-length intervals are dropped.
//
// Over algebra.Boolean columns are roaring bitmaps and the column operation is
// XOR. Only dimensions in [min, max] (WithDimensions, default 0..1) are
// reported; cells above max+1 are skipped.
//
// Select builds an Algorithm from a Config naming coefficients and variant.
package homology
