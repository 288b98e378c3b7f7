// SPDX-License-Identifier: MIT

// Package bootstrap studies the stability of persistence under random
// subsampling of a complex.
//
// Pipeline:
//
//  1. Subsample draws face-closed random subcomplexes K₀, K₁, … of a cell set.
//  2. Restrict turns a subcomplex of a finalized stream into its own stream,
//     so each Kⱼ gets a static barcode from package homology.
//  3. Zigzag runs K₀ ⊂ K₀∪K₁ ⊃ K₁ ⊂ K₁∪K₂ ⊃ … through a zigzag.Tracker and
//     reports the event-time barcode together with its projection on stages
//     (stage 2j is Kⱼ, stage 2j+1 is Kⱼ ∪ Kⱼ₊₁). A stage interval [s, t)
//     is a class alive at stages s..t-1.
//  4. Summarize measures consecutive bottleneck distances between barcodes and
//     reports their mean, standard deviation, median and maximum.
//
// Everything is deterministic for a fixed *rand.Rand.
package bootstrap
