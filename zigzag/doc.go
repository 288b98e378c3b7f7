// SPDX-License-Identifier: MIT

// Package zigzag tracks persistent homology along a sequence of cell
// insertions and removals (zigzag persistence).
//
// 🚀 Model:
//
//	Every Add or Remove is one event; events are numbered 0, 1, 2, …. A class
//	created by event b and destroyed by event d is reported as [b, d); a class
//	still alive is [b, ∞). Between events the tracked complex must stay closed:
//	Add needs every face present, Remove needs no coface present.
//
// State kept per dimension q:
//
//	• live generators: a cycle representative, its birth event and whether it
//	  was born by an insertion (forward) or a removal (backward);
//	• an echelon basis of the cycle space Z_q, each element annotated with a
//	  (q+1)-chain pre and coordinates kappa over the live generators so that
//	  chain − Σ kappa[i]·rep[i] = ∂pre.
//
// Which class dies is decided by the order ⊲ on live generators: for births
// b_i < b_j, i ⊲ j iff j was born forward; otherwise i ⊲ j iff i was born
// backward. An insertion kills the ⊲-maximal class in the expansion of ∂σ; a
// removal kills the ⊲-minimal class whose representative uses σ, or, when σ
// lies on no cycle, births the class of ∂σ.
//
// A Tracker is not safe for concurrent use.
package zigzag
