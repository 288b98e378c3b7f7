// SPDX-License-Identifier: MIT

// Package basis converts between formal sums over cells and sparse vectors
// over positions, through an ordered basis Index.
//
// An Index assigns consecutive positions to distinct cells in the order they
// are first seen. Index(c) and Element(i) are exact inverses, so
//
//	ToFormalSum(ToVector(s)) == s
//
// for every sum whose support lies in the basis. Cells outside the basis
// report ErrNotInBasis; positions outside [0, Dimension()) report ErrOutOfRange.
package basis
