// SPDX-License-Identifier: MIT

// Package bottleneck computes the exact bottleneck distance between barcodes.
//
// Cost model:
//
//	interval ↔ interval: max(|b₁ − b₂|, |d₁ − d₂|), with ∞ − ∞ = 0, so an
//	                     infinite interval only matches another infinite one.
//	interval ↔ diagonal: (d − b) / 2; infinite intervals never reach it.
//
// Algorithm:
//
//  1. Collect every finite pairwise and diagonal cost, plus 0, as candidate
//     thresholds and sort them.
//  2. Binary search for the smallest threshold δ at which the bipartite graph
//     left = A ∪ diag(B), right = B ∪ diag(A) with edges of cost ≤ δ has a
//     perfect matching (diag–diag pairs are always allowed).
//  3. The test is Hopcroft–Karp: BFS layering from free left vertices, then
//     DFS along layered augmenting paths, O(E·√V) per threshold.
//
// When no finite threshold admits a perfect matching (different numbers of
// infinite intervals) the distance is +Inf.
package bottleneck
