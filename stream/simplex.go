// SPDX-License-Identifier: MIT
// Package: lvtopo/stream
//
// simplex.go - Simplex, a comparable vertex set usable as a map key.
//
// Encoding: vertices are sorted, deduplicated and packed as 4-byte big-endian
// words with the sign bit flipped, so byte order of the key equals numeric
// vertex order and equal simplices have equal keys.

package stream

import (
	"encoding/binary"
	"slices"
	"strconv"
	"strings"
)

// Simplex is an immutable, comparable simplex. The zero value is the empty
// simplex of dimension -1.
type Simplex struct {
	key string
}

const signFlip = 1 << 31

// NewSimplex returns the simplex spanned by vertices; order and repeats are ignored.
// Vertices must fit in an int32.
func NewSimplex(vertices ...int) Simplex {
	vs := slices.Clone(vertices)
	slices.Sort(vs)
	vs = slices.Compact(vs)
	buf := make([]byte, 4*len(vs))
	for k, v := range vs {
		binary.BigEndian.PutUint32(buf[4*k:], uint32(int32(v))^signFlip)
	}

	return Simplex{key: string(buf)}
}

// Vertices returns the sorted vertex list.
func (s Simplex) Vertices() []int {
	out := make([]int, len(s.key)/4)
	for k := range out {
		out[k] = s.vertex(k)
	}

	return out
}

func (s Simplex) vertex(k int) int {
	return int(int32(binary.BigEndian.Uint32([]byte(s.key[4*k:4*k+4])) ^ signFlip))
}

// Dimension returns the number of vertices minus one.
func (s Simplex) Dimension() int { return len(s.key)/4 - 1 }

// Faces returns the codimension-1 faces; dropping vertex k carries sign (-1)^k.
// A vertex has no faces.
func (s Simplex) Faces() []Term[Simplex] {
	n := len(s.key) / 4
	if n <= 1 {
		return nil
	}
	out := make([]Term[Simplex], n)
	for k := 0; k < n; k++ {
		sign := 1
		if k%2 == 1 {
			sign = -1
		}
		face := Simplex{key: s.key[:4*k] + s.key[4*k+4:]}
		out[k] = Term[Simplex]{Cell: face, Coefficient: sign}
	}

	return out
}

// String renders the simplex as "[v0,v1,...]".
func (s Simplex) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for k := 0; k < len(s.key)/4; k++ {
		if k > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s.vertex(k)))
	}
	b.WriteByte(']')

	return b.String()
}

// CompareSimplices orders by dimension, then lexicographically by vertices.
// Faces therefore sort before their cofaces.
func CompareSimplices(a, b Simplex) int {
	if da, db := len(a.key), len(b.key); da != db {
		return da - db
	}

	return strings.Compare(a.key, b.key)
}

// Simplicial is the boundary operator of simplices.
type Simplicial struct{}

// Dimension returns s.Dimension().
func (Simplicial) Dimension(s Simplex) int { return s.Dimension() }

// Boundary returns s.Faces().
func (Simplicial) Boundary(s Simplex) []Term[Simplex] { return s.Faces() }
