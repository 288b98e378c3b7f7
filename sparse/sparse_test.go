// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/algebra"
	"github.com/katalvlaran/lvtopo/sparse"
)

var z7 = algebra.MustModular(7)

func vec(t *testing.T, dim int, kv ...int) *sparse.Vector[int] {
	t.Helper()
	v, err := sparse.NewVector[int](z7, dim)
	require.NoError(t, err)
	for k := 0; k+1 < len(kv); k += 2 {
		require.NoError(t, v.Set(kv[k], kv[k+1]))
	}

	return v
}

func TestVector_SetGetDelete(t *testing.T) {
	v := vec(t, 5, 1, 3, 4, 6)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, []int{1, 4}, v.Indices())
	assert.Equal(t, 4, v.Max())

	require.NoError(t, v.Set(4, 7)) // 7 ≡ 0
	assert.Equal(t, 1, v.Max())
	x, err := v.Get(4)
	require.NoError(t, err)
	assert.Equal(t, 0, x)

	_, err = v.Get(5)
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)
	assert.ErrorIs(t, v.Set(-1, 1), sparse.ErrOutOfRange)

	_, err = sparse.NewVector[int](z7, -1)
	assert.ErrorIs(t, err, sparse.ErrInvalidDimension)

	empty := vec(t, 3)
	assert.Equal(t, -1, empty.Max())
	assert.True(t, empty.IsZero())
}

func TestVector_AccumulateCancels(t *testing.T) {
	a := vec(t, 4, 0, 1, 3, 2)
	b := vec(t, 4, 3, 1, 2, 5)
	require.NoError(t, a.Accumulate(b, 5)) // 3: 2 + 5 = 0
	assert.Equal(t, []int{0, 2}, a.Indices())
	got, _ := a.Get(2)
	assert.Equal(t, 4, got) // 25 mod 7

	require.NoError(t, a.Accumulate(a, 6)) // a + 6a = 7a = 0
	assert.True(t, a.IsZero())

	assert.ErrorIs(t, a.Accumulate(vec(t, 3), 1), sparse.ErrDimensionMismatch)
}

func TestDot(t *testing.T) {
	a := vec(t, 4, 0, 2, 1, 3)
	b := vec(t, 4, 1, 4, 3, 5)
	d, err := sparse.Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, 5, d) // 12 mod 7

	_, err = sparse.Dot(a, vec(t, 2))
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

func TestMatrix_MulVecTranspose(t *testing.T) {
	m, err := sparse.NewMatrix[int](z7, 2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 2, 2))
	require.NoError(t, m.Set(1, 1, 3))
	assert.Equal(t, 3, m.NonZero())

	x := vec(t, 3, 0, 1, 1, 1, 2, 1)
	y, err := m.MulVec(x)
	require.NoError(t, err)
	assert.True(t, y.Equal(vec(t, 2, 0, 3, 1, 3)))

	tr := m.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	got, err := tr.Get(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	require.NoError(t, m.Set(1, 1, 0))
	row, err := m.Row(1)
	require.NoError(t, err)
	assert.True(t, row.IsZero())
	assert.Equal(t, 2, m.NonZero())

	_, err = m.MulVec(vec(t, 2))
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	assert.ErrorIs(t, m.Set(2, 0, 1), sparse.ErrOutOfRange)
	assert.ErrorIs(t, m.SetRow(0, vec(t, 2)), sparse.ErrDimensionMismatch)
}

func TestBits(t *testing.T) {
	a := sparse.NewBits(1, 4, 9)
	b := sparse.NewBits(4, 7)
	a.Xor(b)
	assert.Equal(t, []int{1, 7, 9}, a.Indices())
	assert.Equal(t, 9, a.Max())
	assert.Equal(t, 3, a.Len())

	a.Toggle(9)
	assert.False(t, a.Contains(9))
	assert.Equal(t, 7, a.Max())

	c := a.Clone()
	c.Xor(a)
	assert.True(t, c.IsZero())
	assert.Equal(t, -1, c.Max())
	assert.False(t, a.IsZero(), "Clone is independent")
	assert.True(t, sparse.NewBits(3, 3).Equal(sparse.NewBits()))
}

// support scans every index for the nonzero entries of v.
func support(t *testing.T, v *sparse.Vector[int]) []int {
	t.Helper()
	out := []int{}
	for i := 0; i < v.Dim(); i++ {
		x, err := v.Get(i)
		require.NoError(t, err)
		if x != 0 {
			out = append(out, i)
		}
	}

	return out
}

func TestVector_MaxFollowsUpdates(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	v := vec(t, 64)
	for step := 0; step < 400; step++ {
		switch step % 4 {
		case 0, 1:
			require.NoError(t, v.Set(rng.Intn(64), rng.Intn(7)))
		case 2:
			w := vec(t, 64, rng.Intn(64), 1+rng.Intn(6), rng.Intn(64), 1+rng.Intn(6))
			require.NoError(t, v.Accumulate(w, rng.Intn(7)))
		case 3:
			// cancel the top entry the way a column reduction does
			if l := v.Max(); l >= 0 {
				x, _ := v.Get(l)
				require.NoError(t, v.Accumulate(vec(t, 64, l, x), 6))
			}
		}
		want := support(t, v)
		assert.Equal(t, want, v.Indices(), "step %d", step)
		if len(want) == 0 {
			assert.Equal(t, -1, v.Max(), "step %d", step)
		} else {
			assert.Equal(t, want[len(want)-1], v.Max(), "step %d", step)
		}
		assert.Equal(t, len(want), v.Len())
	}

	a := vec(t, 8, 2, 1, 6, 3)
	b := a.Clone()
	require.NoError(t, b.Set(6, 0))
	assert.Equal(t, 6, a.Max(), "Clone is independent")
	assert.Equal(t, 2, b.Max())

	require.NoError(t, a.Accumulate(a, 6))
	assert.Equal(t, -1, a.Max())
	assert.Empty(t, a.Indices())
}

func TestMatrix_TransposeKeepsLow(t *testing.T) {
	m, err := sparse.NewMatrix[int](z7, 4, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(3, 1, 2))
	require.NoError(t, m.Set(2, 0, 5))

	col, err := m.Transpose().Row(1)
	require.NoError(t, err)
	assert.Equal(t, 3, col.Max())
	assert.Equal(t, []int{0, 3}, col.Indices())
}
