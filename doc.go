// SPDX-License-Identifier: MIT

// Package lvtopo is a persistent-homology toolkit: barcodes of filtered
// complexes, zigzag persistence under insertions and removals, and bottleneck
// distances between barcodes.
//
// 🚀 What is inside?
//
//	algebra/    - rings and fields: GF(2), Z/p, Q, exponentiation
//	chain/      - formal sums of cells over a ring (the free module)
//	sparse/     - sparse vectors and matrices, roaring bitsets for GF(2)
//	basis/      - cell ↔ coordinate indexing and conversions
//	stream/     - filtered complexes: the Filtered interface, simplices
//	barcode/    - intervals, per-dimension collections, generators
//	homology/   - boundary-matrix reduction: absolute, relative, classical
//	zigzag/     - online zigzag persistence tracker
//	bottleneck/ - exact bottleneck distance via Hopcroft–Karp
//	bootstrap/  - random subcomplexes, union zigzags, distance statistics
//	builder/    - deterministic complex fixtures (torus, RP², random flag…)
//	cmd/lvtopo  - command-line front end (cobra + viper, YAML input)
//
// Quick example: the hollow triangle
//
//	    0───1
//	     \ /
//	      2
//
// with edges 01, 12, 02 at values 1, 2, 3 has barcode
//
//	H0: [0, 1) [0, 2) [0, ∞)
//	H1: [3, ∞)
//
// Everything is single-threaded and deterministic; see each package's doc
// for its invariants.
package lvtopo
