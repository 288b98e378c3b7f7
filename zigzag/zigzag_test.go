// SPDX-License-Identifier: MIT

package zigzag_test

import (
	"math/big"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/algebra"
	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/stream"
	"github.com/katalvlaran/lvtopo/zigzag"
)

type S = stream.Simplex

var sx = stream.NewSimplex

func newTracker(opts ...zigzag.Option) *zigzag.Tracker[S, int] {
	return zigzag.NewTracker[S, int](algebra.MustModular(3), stream.Simplicial{}, opts...)
}

type event struct {
	add  bool
	cell S
}

func run(t *testing.T, tr interface {
	Add(S) error
	Remove(S) error
}, events []event) {
	t.Helper()
	for k, ev := range events {
		if ev.add {
			require.NoError(t, tr.Add(ev.cell), "event %d add %v", k, ev.cell)
		} else {
			require.NoError(t, tr.Remove(ev.cell), "event %d remove %v", k, ev.cell)
		}
	}
}

func TestEdgeAddRemove(t *testing.T) {
	tr := newTracker()
	run(t, tr, []event{
		{true, sx(0)}, {true, sx(1)}, {true, sx(0, 1)},
		{false, sx(0, 1)}, {false, sx(1)}, {false, sx(0)},
	})
	assert.Equal(t, 6, tr.Time())
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, []barcode.Interval[int]{
		barcode.Finite(0, 5), barcode.Finite(1, 2), barcode.Finite(3, 4),
	}, tr.Barcodes().AtDimension(0))
}

func TestCycleBrokenByRemoval(t *testing.T) {
	tr := newTracker()
	run(t, tr, []event{
		{true, sx(0)}, {true, sx(1)}, {true, sx(2)},
		{true, sx(0, 1)}, {true, sx(1, 2)}, {true, sx(0, 2)}, // H1 born at 5
		{false, sx(0, 1)}, // H1 dies at 6
		{false, sx(1, 2)}, // [v2 - v1] born at 7
		{false, sx(0, 2)}, // [v2 - v0] born at 8
		{false, sx(2)}, {false, sx(1)}, {false, sx(0)},
	})
	bc := tr.Barcodes()
	assert.Equal(t, []barcode.Interval[int]{barcode.Finite(5, 6)}, bc.AtDimension(1))
	assert.Equal(t, []barcode.Interval[int]{
		barcode.Finite(0, 11), barcode.Finite(1, 3), barcode.Finite(2, 4),
		barcode.Finite(7, 10), barcode.Finite(8, 9),
	}, bc.AtDimension(0))
	assert.Empty(t, bc.Infinite(0))
}

// filledTetrahedron lists every face of the 3-simplex in a valid insertion order.
func filledTetrahedron() []S {
	return []S{
		sx(0), sx(1), sx(2), sx(3),
		sx(0, 1), sx(0, 2), sx(1, 2), sx(0, 3), sx(1, 3), sx(2, 3),
		sx(0, 1, 2), sx(0, 1, 3), sx(0, 2, 3), sx(1, 2, 3),
		sx(0, 1, 2, 3),
	}
}

func TestRoundTrip_NoOpenIntervals(t *testing.T) {
	cells := filledTetrahedron()
	trackers := map[string]interface {
		Add(S) error
		Remove(S) error
		Len() int
		Betti(int) int
		Barcodes() *barcode.Collection[int]
	}{
		"gf2": zigzag.NewTracker[S, bool](algebra.BooleanField(), stream.Simplicial{}, zigzag.WithDimensions(0, 3)),
		"z5":  zigzag.NewTracker[S, int](algebra.MustModular(5), stream.Simplicial{}, zigzag.WithDimensions(0, 3)),
		"q":   zigzag.NewTracker[S, *big.Rat](algebra.RationalField(), stream.Simplicial{}, zigzag.WithDimensions(0, 3)),
	}
	for name, tr := range trackers {
		t.Run(name, func(t *testing.T) {
			for _, c := range cells {
				require.NoError(t, tr.Add(c))
			}
			assert.Equal(t, 1, tr.Betti(0))
			assert.Equal(t, 0, tr.Betti(2), "the filled tetrahedron is contractible")
			for _, c := range slices.Backward(cells) {
				require.NoError(t, tr.Remove(c))
			}
			assert.Zero(t, tr.Len())
			bc := tr.Barcodes()
			for _, d := range bc.Dimensions() {
				assert.Empty(t, bc.Infinite(d), "dim %d", d)
			}
			// the forward pass recreates the static barcode
			assert.Equal(t, []barcode.Interval[int]{barcode.Finite(13, 14)}, bc.AtDimension(2)[:1])
		})
	}
}

func TestErrors(t *testing.T) {
	tr := newTracker()
	assert.ErrorIs(t, tr.Add(sx(0, 1)), zigzag.ErrMissingFace)
	require.NoError(t, tr.Add(sx(0)))
	assert.ErrorIs(t, tr.Add(sx(0)), zigzag.ErrDuplicateCell)
	assert.ErrorIs(t, tr.Remove(sx(1)), zigzag.ErrCellNotPresent)
	require.NoError(t, tr.Add(sx(1)))
	require.NoError(t, tr.Add(sx(0, 1)))
	assert.ErrorIs(t, tr.Remove(sx(0)), zigzag.ErrCofacePresent)
	assert.Equal(t, 3, tr.Time(), "rejected events do not advance time")
	assert.True(t, tr.Contains(sx(0, 1)))

	assert.Panics(t, func() { zigzag.WithDimensions(3, 1) })
}

// TestForwardOnlyMatchesStatic feeds a stream whose values are the cell
// positions, so zigzag event indices and static filtration indices coincide.
func TestForwardOnlyMatchesStatic(t *testing.T) {
	s := stream.NewSimplexStream()
	order := []struct {
		v []int
	}{
		{[]int{0}}, {[]int{1}}, {[]int{2}}, {[]int{3}}, {[]int{0, 1}}, {[]int{1, 2}},
		{[]int{0, 3}}, {[]int{2, 3}}, {[]int{0, 2}}, {[]int{0, 1, 2}}, {[]int{0, 2, 3}},
		{[]int{4}}, {[]int{1, 4}}, {[]int{3, 4}},
	}
	for pos, o := range order {
		require.NoError(t, s.AddSimplex(float64(pos), o.v...))
	}
	require.NoError(t, s.Finalize())

	f := algebra.MustModular(7)
	static, err := homology.NewAbsolute[S, int](f, homology.WithDimensions(0, 2)).ComputeIndexIntervals(s)
	require.NoError(t, err)

	tr := zigzag.NewTracker[S, int](f, s, zigzag.WithDimensions(0, 2))
	for _, c := range s.Cells() {
		require.NoError(t, tr.Add(c))
	}
	assert.True(t, static.Equal(tr.Barcodes()), "static:\n%v\nzigzag:\n%v", static, tr.Barcodes())
}

func TestAnnotatedRepresentatives(t *testing.T) {
	tr := newTracker()
	run(t, tr, []event{
		{true, sx(0)}, {true, sx(1)}, {true, sx(2)},
		{true, sx(0, 1)}, {true, sx(1, 2)}, {true, sx(0, 2)},
	})
	ann := tr.AnnotatedBarcodes()
	h1 := ann.AtDimension(1)
	require.Len(t, h1, 1)
	assert.True(t, h1[0].Interval.Infinite)
	assert.Equal(t, 3, h1[0].Generator.Len())
	assert.Equal(t, 1, tr.Betti(1))
}

// staticBetti recomputes Betti numbers of the live complex from scratch.
func staticBetti(t *testing.T, live []S, maxDim int) []int {
	t.Helper()
	s := stream.NewSimplexStream()
	for _, c := range live {
		require.NoError(t, s.AddSimplex(0, c.Vertices()...))
	}
	require.NoError(t, s.Finalize())
	bc, err := homology.NewClassical[S, int](algebra.MustModular(3), homology.WithDimensions(0, maxDim)).ComputeIndexIntervals(s)
	require.NoError(t, err)

	return bc.BettiNumbers(maxDim)
}

// TestRandomZigzag_BettiMatchesStatic drives random legal insertions and
// removals on the full 2-skeleton of 6 vertices.
func TestRandomZigzag_BettiMatchesStatic(t *testing.T) {
	var universe []S
	for a := 0; a < 6; a++ {
		universe = append(universe, sx(a))
		for b := a + 1; b < 6; b++ {
			universe = append(universe, sx(a, b))
			for c := b + 1; c < 6; c++ {
				universe = append(universe, sx(a, b, c))
			}
		}
	}
	rng := rand.New(rand.NewSource(42))
	tr := newTracker(zigzag.WithDimensions(0, 2))
	live := map[S]bool{}

	canAdd := func(c S) bool {
		if live[c] {
			return false
		}
		for _, f := range c.Faces() {
			if !live[f.Cell] {
				return false
			}
		}
		return true
	}
	canRemove := func(c S) bool {
		if !live[c] {
			return false
		}
		for o := range live {
			for _, f := range o.Faces() {
				if f.Cell == c {
					return false
				}
			}
		}
		return true
	}

	history := make([][]int, 0, 300)
	for step := 0; step < 300; step++ {
		var moves []event
		for _, c := range universe {
			if canAdd(c) {
				moves = append(moves, event{true, c})
			}
			if canRemove(c) {
				moves = append(moves, event{false, c})
			}
		}
		ev := moves[rng.Intn(len(moves))]
		if ev.add {
			require.NoError(t, tr.Add(ev.cell))
			live[ev.cell] = true
		} else {
			require.NoError(t, tr.Remove(ev.cell))
			delete(live, ev.cell)
		}

		got := []int{tr.Betti(0), tr.Betti(1), tr.Betti(2)}
		history = append(history, got)
		if step%25 == 0 {
			var cells []S
			for c := range live {
				cells = append(cells, c)
			}
			assert.Equal(t, staticBetti(t, cells, 2), got, "step %d", step)
		}
	}

	// the barcode replays the live class counts after every event
	bc := tr.Barcodes()
	for k, want := range history {
		for d := 0; d <= 2; d++ {
			assert.Equal(t, want[d], bc.BettiAt(d, k), "event %d dim %d", k, d)
		}
	}
}

func TestWithComparator(t *testing.T) {
	events := []event{
		{true, sx(0)}, {true, sx(1)}, {true, sx(2)},
		{true, sx(0, 1)}, {true, sx(1, 2)}, {true, sx(0, 2)},
		{false, sx(0, 2)}, {false, sx(2)},
	}
	plain := newTracker()
	run(t, plain, events)
	ordered := newTracker(zigzag.WithComparator(stream.CompareSimplices))
	run(t, ordered, events)
	assert.True(t, plain.Barcodes().Equal(ordered.Barcodes()))

	reversed := newTracker(zigzag.WithComparator(func(a, b S) int { return stream.CompareSimplices(b, a) }))
	require.NoError(t, reversed.Add(sx(0)))
	require.NoError(t, reversed.Add(sx(1)))
	assert.ErrorIs(t, reversed.Add(sx(0, 1)), zigzag.ErrFaceOrder)
	assert.Equal(t, 2, reversed.Time(), "rejected events do not advance time")
	assert.False(t, reversed.Contains(sx(0, 1)))
	assert.Equal(t, 2, reversed.Betti(0))

	assert.Panics(t, func() { zigzag.WithComparator[S](nil) })
	assert.Panics(t, func() {
		newTracker(zigzag.WithComparator(func(a, b string) int { return 0 }))
	})
}
