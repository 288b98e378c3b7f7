// SPDX-License-Identifier: MIT
// Package: lvtopo/basis
//
// convert.go - FormalSum ⇄ sparse.Vector and []FormalSum ⇄ sparse.Matrix.

package basis

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/algebra"
	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/sparse"
)

// ToVector writes s in coordinates of ix; the vector has dimension ix.Dimension().
func ToVector[C comparable, T any](ring algebra.Ring[T], s *chain.FormalSum[C, T], ix *Index[C]) (*sparse.Vector[T], error) {
	v, err := sparse.NewVector(ring, ix.Dimension())
	if err != nil {
		return nil, err
	}
	var failure error
	s.Each(func(c C, x T) bool {
		i, err := ix.Index(c)
		if err != nil {
			failure = fmt.Errorf("ToVector: %w", err)
			return false
		}
		failure = v.Set(i, x)
		return failure == nil
	})
	if failure != nil {
		return nil, failure
	}

	return v, nil
}

// ToFormalSum reads v back as a formal sum of basis cells.
func ToFormalSum[C comparable, T any](m *chain.Module[C, T], v *sparse.Vector[T], ix *Index[C]) (*chain.FormalSum[C, T], error) {
	out := m.New()
	for _, i := range v.Indices() {
		c, err := ix.Element(i)
		if err != nil {
			return nil, fmt.Errorf("ToFormalSum: %w", err)
		}
		x, _ := v.Get(i)
		m.AddTerm(out, c, x)
	}

	return out, nil
}

// ToMatrix stacks sums as rows: row r holds the coordinates of sums[r].
func ToMatrix[C comparable, T any](ring algebra.Ring[T], sums []*chain.FormalSum[C, T], ix *Index[C]) (*sparse.Matrix[T], error) {
	mat, err := sparse.NewMatrix(ring, len(sums), ix.Dimension())
	if err != nil {
		return nil, err
	}
	for r, s := range sums {
		v, err := ToVector(ring, s, ix)
		if err != nil {
			return nil, fmt.Errorf("ToMatrix row %d: %w", r, err)
		}
		if err := mat.SetRow(r, v); err != nil {
			return nil, err
		}
	}

	return mat, nil
}

// ToFormalSums is the inverse of ToMatrix.
func ToFormalSums[C comparable, T any](m *chain.Module[C, T], mat *sparse.Matrix[T], ix *Index[C]) ([]*chain.FormalSum[C, T], error) {
	out := make([]*chain.FormalSum[C, T], mat.Rows())
	for r := range out {
		row, err := mat.Row(r)
		if err != nil {
			return nil, err
		}
		if out[r], err = ToFormalSum(m, row, ix); err != nil {
			return nil, fmt.Errorf("ToFormalSums row %d: %w", r, err)
		}
	}

	return out, nil
}
