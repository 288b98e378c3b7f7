// SPDX-License-Identifier: MIT
// Package: lvtopo/sparse
//
// bits.go - GF(2) sparse vector backed by a roaring bitmap.

package sparse

import "github.com/RoaringBitmap/roaring"

// Bits is a vector over GF(2): the set of indices holding a one.
// The zero value is not usable; call NewBits.
type Bits struct {
	bm *roaring.Bitmap
}

// NewBits returns the vector with ones at idx.
func NewBits(idx ...int) *Bits {
	b := &Bits{bm: roaring.New()}
	for _, i := range idx {
		b.Toggle(i)
	}

	return b
}

// Toggle adds 1 at index i.
func (b *Bits) Toggle(i int) {
	x := uint32(i)
	if !b.bm.CheckedRemove(x) {
		b.bm.Add(x)
	}
}

// Contains reports whether index i holds a one.
func (b *Bits) Contains(i int) bool { return b.bm.Contains(uint32(i)) }

// Xor performs b += other in place.
func (b *Bits) Xor(other *Bits) { b.bm.Xor(other.bm) }

// Max returns the largest index holding a one, or -1 when empty.
func (b *Bits) Max() int {
	if b.bm.IsEmpty() {
		return -1
	}

	return int(b.bm.Maximum())
}

// Len returns the number of ones.
func (b *Bits) Len() int { return int(b.bm.GetCardinality()) }

// IsZero reports whether no index holds a one.
func (b *Bits) IsZero() bool { return b.bm.IsEmpty() }

// Indices returns the indices holding a one in ascending order.
func (b *Bits) Indices() []int {
	arr := b.bm.ToArray()
	out := make([]int, len(arr))
	for k, x := range arr {
		out[k] = int(x)
	}

	return out
}

// Clone returns an independent copy.
func (b *Bits) Clone() *Bits { return &Bits{bm: b.bm.Clone()} }

// Equal reports whether b and other hold the same ones.
func (b *Bits) Equal(other *Bits) bool { return b.bm.Equals(other.bm) }
