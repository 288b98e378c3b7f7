// SPDX-License-Identifier: MIT

package basis_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/algebra"
	"github.com/katalvlaran/lvtopo/basis"
	"github.com/katalvlaran/lvtopo/chain"
)

type entry = chain.Entry[string, int]

func TestIndex_InverseMaps(t *testing.T) {
	ix := basis.NewIndex([]string{"a", "b", "a", "c"})
	require.Equal(t, 3, ix.Dimension())
	for i := 0; i < ix.Dimension(); i++ {
		c, err := ix.Element(i)
		require.NoError(t, err)
		j, err := ix.Index(c)
		require.NoError(t, err)
		assert.Equal(t, i, j)
	}

	_, err := ix.Index("z")
	assert.ErrorIs(t, err, basis.ErrNotInBasis)
	_, err = ix.Element(3)
	assert.ErrorIs(t, err, basis.ErrOutOfRange)

	fromSeq := basis.IndexOf(slices.Values([]string{"a", "b", "c", "b"}))
	assert.Equal(t, 3, fromSeq.Dimension())
	for i, c := range ix.All() {
		got, _ := fromSeq.Element(i)
		assert.Equal(t, c, got)
	}
}

func TestRoundTrip(t *testing.T) {
	f := algebra.MustModular(3)
	m := chain.NewModule[string, int](f)
	ix := basis.NewIndex([]string{"x", "y", "z"})

	sums := []*chain.FormalSum[string, int]{
		m.Of(entry{"x", 1}, entry{"z", 2}),
		m.New(),
		m.Of(entry{"y", 2}),
	}
	for _, s := range sums {
		v, err := basis.ToVector(f, s, ix)
		require.NoError(t, err)
		back, err := basis.ToFormalSum(m, v, ix)
		require.NoError(t, err)
		assert.True(t, m.Equal(s, back), "%v != %v", s, back)
	}

	mat, err := basis.ToMatrix(f, sums, ix)
	require.NoError(t, err)
	assert.Equal(t, 3, mat.Rows())
	assert.Equal(t, 3, mat.Cols())
	got, _ := mat.Get(0, 2)
	assert.Equal(t, 2, got)

	back, err := basis.ToFormalSums(m, mat, ix)
	require.NoError(t, err)
	require.Len(t, back, 3)
	for r := range sums {
		assert.True(t, m.Equal(sums[r], back[r]))
	}
}

func TestToVector_CellOutsideBasis(t *testing.T) {
	f := algebra.MustModular(3)
	m := chain.NewModule[string, int](f)
	ix := basis.NewIndex([]string{"x"})

	_, err := basis.ToVector(f, m.Of(entry{"w", 1}), ix)
	assert.ErrorIs(t, err, basis.ErrNotInBasis)

	_, err = basis.ToMatrix(f, []*chain.FormalSum[string, int]{m.Of(entry{"w", 1})}, ix)
	assert.ErrorIs(t, err, basis.ErrNotInBasis)
}
