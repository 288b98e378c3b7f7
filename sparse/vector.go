// SPDX-License-Identifier: MIT
// Package: lvtopo/sparse
//
// vector.go - sparse vector over a ring.
//
// Invariants:
//   • entries holds only indices in [0, dim) with nonzero values.
//   • support is exactly the key set of entries, so Max and Indices read the
//     roaring bitmap instead of scanning the map.
//   • Operations that combine vectors require equal dimensions.

package sparse

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring"

	"github.com/katalvlaran/lvtopo/algebra"
)

// Vector is a sparse vector of fixed dimension.
type Vector[T any] struct {
	ring    algebra.Ring[T]
	dim     int
	entries map[int]T
	support *roaring.Bitmap
}

// NewVector returns the zero vector of dimension dim.
// Dimensions must fit the 32-bit index space of the support bitmap.
func NewVector[T any](ring algebra.Ring[T], dim int) (*Vector[T], error) {
	if dim < 0 || int64(dim) > math.MaxUint32 {
		return nil, fmt.Errorf("NewVector(%d): %w", dim, ErrInvalidDimension)
	}

	return newVector(ring, dim), nil
}

func newVector[T any](ring algebra.Ring[T], dim int) *Vector[T] {
	return &Vector[T]{ring: ring, dim: dim, entries: make(map[int]T), support: roaring.New()}
}

// put stores a nonzero x at a valid index i.
func (v *Vector[T]) put(i int, x T) {
	v.entries[i] = x
	v.support.Add(uint32(i))
}

func (v *Vector[T]) drop(i int) {
	delete(v.entries, i)
	v.support.Remove(uint32(i))
}

// Dim returns the dimension.
func (v *Vector[T]) Dim() int { return v.dim }

// Len returns the number of nonzero entries.
func (v *Vector[T]) Len() int { return len(v.entries) }

// IsZero reports whether every entry is zero.
func (v *Vector[T]) IsZero() bool { return len(v.entries) == 0 }

func (v *Vector[T]) check(i int) error {
	if i < 0 || i >= v.dim {
		return fmt.Errorf("index %d of dim %d: %w", i, v.dim, ErrOutOfRange)
	}

	return nil
}

// Get returns entry i.
func (v *Vector[T]) Get(i int) (T, error) {
	if err := v.check(i); err != nil {
		return v.ring.Zero(), err
	}
	if x, ok := v.entries[i]; ok {
		return x, nil
	}

	return v.ring.Zero(), nil
}

// Set stores x at i; a zero x deletes the entry.
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.check(i); err != nil {
		return err
	}
	if v.ring.IsZero(x) {
		v.drop(i)
		return nil
	}
	v.put(i, x)

	return nil
}

// Indices returns the nonzero indices in ascending order.
func (v *Vector[T]) Indices() []int {
	arr := v.support.ToArray()
	out := make([]int, len(arr))
	for k, i := range arr {
		out[k] = int(i)
	}

	return out
}

// Max returns the largest nonzero index, or -1 for the zero vector.
func (v *Vector[T]) Max() int {
	if v.support.IsEmpty() {
		return -1
	}

	return int(v.support.Maximum())
}

// Each calls fn for every nonzero entry in unspecified order.
func (v *Vector[T]) Each(fn func(i int, x T)) {
	for i, x := range v.entries {
		fn(i, x)
	}
}

// Accumulate performs v += scale·b in place.
func (v *Vector[T]) Accumulate(b *Vector[T], scale T) error {
	if v.dim != b.dim {
		return fmt.Errorf("Accumulate(%d, %d): %w", v.dim, b.dim, ErrDimensionMismatch)
	}
	if v.ring.IsZero(scale) {
		return nil
	}
	if v == b {
		b = b.Clone()
	}
	for i, x := range b.entries {
		sum := v.ring.Multiply(scale, x)
		if old, ok := v.entries[i]; ok {
			sum = v.ring.Add(old, sum)
		}
		if v.ring.IsZero(sum) {
			v.drop(i)
			continue
		}
		v.put(i, sum)
	}

	return nil
}

// Clone returns an independent copy.
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{ring: v.ring, dim: v.dim, entries: make(map[int]T, len(v.entries)), support: v.support.Clone()}
	for i, x := range v.entries {
		out.entries[i] = x
	}

	return out
}

// Equal reports whether a and b have equal dimension and entries.
func (v *Vector[T]) Equal(b *Vector[T]) bool {
	if v.dim != b.dim || len(v.entries) != len(b.entries) {
		return false
	}
	for i, x := range v.entries {
		y, ok := b.entries[i]
		if !ok || !v.ring.Equal(x, y) {
			return false
		}
	}

	return true
}

// Dot returns the inner product Σ a[i]·b[i], iterating the sparser operand.
func Dot[T any](a, b *Vector[T]) (T, error) {
	if a.dim != b.dim {
		return a.ring.Zero(), fmt.Errorf("Dot(%d, %d): %w", a.dim, b.dim, ErrDimensionMismatch)
	}
	if len(a.entries) > len(b.entries) {
		a, b = b, a
	}
	sum := a.ring.Zero()
	for i, x := range a.entries {
		if y, ok := b.entries[i]; ok {
			sum = a.ring.Add(sum, a.ring.Multiply(x, y))
		}
	}

	return sum, nil
}
