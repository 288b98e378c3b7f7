// SPDX-License-Identifier: MIT
// Package: lvtopo/sparse
//
// matrix.go - row-indexed sparse matrix over a ring.
//
// Invariants:
//   • rowData holds only nonzero rows; each row is a Vector of dimension cols.
//   • Shape is fixed at construction.

package sparse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtopo/algebra"
)

// Matrix is a rows×cols sparse matrix stored by rows.
type Matrix[T any] struct {
	ring       algebra.Ring[T]
	rows, cols int
	rowData    map[int]*Vector[T]
}

// NewMatrix returns the zero rows×cols matrix.
func NewMatrix[T any](ring algebra.Ring[T], rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 || int64(rows) > math.MaxUint32 || int64(cols) > math.MaxUint32 {
		return nil, fmt.Errorf("NewMatrix(%d, %d): %w", rows, cols, ErrInvalidDimension)
	}

	return &Matrix[T]{ring: ring, rows: rows, cols: cols, rowData: make(map[int]*Vector[T])}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

func (m *Matrix[T]) check(i, j int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("index (%d, %d) of %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}

	return nil
}

// Get returns entry (i, j).
func (m *Matrix[T]) Get(i, j int) (T, error) {
	if err := m.check(i, j); err != nil {
		return m.ring.Zero(), err
	}
	row, ok := m.rowData[i]
	if !ok {
		return m.ring.Zero(), nil
	}

	return row.Get(j)
}

// Set stores x at (i, j); zero deletes the entry and empty rows are dropped.
func (m *Matrix[T]) Set(i, j int, x T) error {
	if err := m.check(i, j); err != nil {
		return err
	}
	row, ok := m.rowData[i]
	if !ok {
		if m.ring.IsZero(x) {
			return nil
		}
		row = newVector(m.ring, m.cols)
		m.rowData[i] = row
	}
	if err := row.Set(j, x); err != nil {
		return err
	}
	if row.IsZero() {
		delete(m.rowData, i)
	}

	return nil
}

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) (*Vector[T], error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("row %d of %d: %w", i, m.rows, ErrOutOfRange)
	}
	if row, ok := m.rowData[i]; ok {
		return row.Clone(), nil
	}

	return newVector(m.ring, m.cols), nil
}

// SetRow replaces row i with a copy of v.
func (m *Matrix[T]) SetRow(i int, v *Vector[T]) error {
	if i < 0 || i >= m.rows {
		return fmt.Errorf("row %d of %d: %w", i, m.rows, ErrOutOfRange)
	}
	if v.dim != m.cols {
		return fmt.Errorf("SetRow dim %d, cols %d: %w", v.dim, m.cols, ErrDimensionMismatch)
	}
	if v.IsZero() {
		delete(m.rowData, i)
		return nil
	}
	m.rowData[i] = v.Clone()

	return nil
}

// NonZero returns the number of nonzero entries.
func (m *Matrix[T]) NonZero() int {
	n := 0
	for _, row := range m.rowData {
		n += row.Len()
	}

	return n
}

// MulVec returns m·x.
func (m *Matrix[T]) MulVec(x *Vector[T]) (*Vector[T], error) {
	if x.dim != m.cols {
		return nil, fmt.Errorf("MulVec %dx%d by %d: %w", m.rows, m.cols, x.dim, ErrDimensionMismatch)
	}
	out := newVector(m.ring, m.rows)
	for i, row := range m.rowData {
		dot, _ := Dot(row, x)
		if !m.ring.IsZero(dot) {
			out.put(i, dot)
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	t := &Matrix[T]{ring: m.ring, rows: m.cols, cols: m.rows, rowData: make(map[int]*Vector[T])}
	for i, row := range m.rowData {
		for j, x := range row.entries {
			col, ok := t.rowData[j]
			if !ok {
				col = newVector(m.ring, m.rows)
				t.rowData[j] = col
			}
			col.put(i, x)
		}
	}

	return t
}
