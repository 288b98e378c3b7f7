// SPDX-License-Identifier: MIT

// Package sparse stores vectors and matrices over a coefficient ring as maps
// of their nonzero entries, plus a roaring-bitmap vector for GF(2).
//
// 🚀 What is here?
//
//	Vector[T] - fixed dimension, map index → value plus a roaring support set
//	            for Max and Indices; zero entries never stored.
//	            Max() is the largest nonzero index (the "low" pointer of a
//	            boundary column) and Accumulate is the column operation.
//	Matrix[T] - row-indexed map of Vector rows with MulVec and Transpose.
//	Bits      - GF(2) vector on a roaring bitmap: add is XOR, Max is the
//	            bitmap maximum. Used by the boolean reduction fast path.
//
// Errors:
//
//	Indexers and arithmetic return ErrOutOfRange, ErrDimensionMismatch or
//	ErrInvalidDimension (match with errors.Is); nothing here panics on input.
//
// Complexity:
//
//	Get/Set are O(1) expected, Indices is O(k log k) for k nonzeros,
//	Accumulate is O(nnz(b)), MulVec is O(nnz(A)).
package sparse
