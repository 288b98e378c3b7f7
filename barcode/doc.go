// SPDX-License-Identifier: MIT

// Package barcode holds persistence intervals grouped by homological dimension.
//
//	Interval[T]     - [Birth, Death) or [Birth, ∞); T is int for filtration
//	                  indices and zigzag event times, float64 for values.
//	Collection[T]   - dimension → intervals, with Betti numbers (the count of
//	                  infinite intervals) and a stable String rendering.
//	Annotated[T, G] - a Collection where every interval carries a generator,
//	                  typically a chain.FormalSum representing the class.
//
// Listings are sorted by (birth, death) with infinite deaths last, so two
// collections holding the same multiset render identically.
package barcode
