// SPDX-License-Identifier: MIT

package bottleneck_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/bottleneck"
)

type iv = barcode.Interval[float64]

func fin(b, d float64) iv { return barcode.Finite(b, d) }
func inf(b float64) iv    { return barcode.RightInfinite(b) }

func TestDistance_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		a, b []iv
		want float64
	}{
		{"both empty", nil, nil, 0},
		{"single to diagonal", []iv{fin(0, 4)}, nil, 2},
		{"close pair", []iv{fin(0, 10)}, []iv{fin(1, 12)}, 2},
		{"extra short bar", []iv{fin(0, 2), fin(0, 10)}, []iv{fin(0, 10)}, 1},
		{"infinite pair", []iv{inf(0)}, []iv{inf(1.5)}, 1.5},
		{"infinite unmatched", []iv{inf(0)}, nil, math.Inf(1)},
		{"infinite count differs", []iv{inf(0), inf(1)}, []iv{inf(0), fin(1, 100)}, math.Inf(1)},
		{"infinite with finite rest", []iv{inf(0), fin(1, 3)}, []iv{inf(0.25)}, 1},
		{"degenerate bars", []iv{fin(2, 2)}, []iv{fin(5, 5)}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bottleneck.Distance(tc.a, tc.b))
			assert.Equal(t, tc.want, bottleneck.Distance(tc.b, tc.a), "symmetric")
		})
	}
}

func TestDistance_SelfIsZero(t *testing.T) {
	a := []iv{fin(0, 1), fin(0.5, 3), inf(0), fin(2, 7)}
	assert.Zero(t, bottleneck.Distance(a, a))
}

func TestDistanceChecked(t *testing.T) {
	_, err := bottleneck.DistanceChecked([]iv{fin(math.NaN(), 1)}, nil)
	assert.ErrorIs(t, err, bottleneck.ErrInvalidInterval)
	_, err = bottleneck.DistanceChecked(nil, []iv{fin(3, 1)})
	assert.ErrorIs(t, err, bottleneck.ErrInvalidInterval)
	d, err := bottleneck.DistanceChecked([]iv{inf(1)}, []iv{inf(1)})
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestBetweenDimensions(t *testing.T) {
	ca := barcode.NewCollection[float64]()
	ca.Add(0, 0, 1)
	ca.AddInfinite(1, 3)
	cb := barcode.NewCollection[float64]()
	cb.AddInfinite(0, 3.5)

	assert.Equal(t, 0.5, bottleneck.Between(ca, 1, cb, 0))
	assert.Equal(t, math.Inf(1), bottleneck.AtDimension(ca, cb, 0))
	assert.Equal(t, math.Inf(1), bottleneck.AtDimension(ca, cb, 1))
	assert.Zero(t, bottleneck.AtDimension(ca, cb, 2))
}

// bruteForce tries every assignment of the augmented right side.
func bruteForce(a, b []iv) float64 {
	n, m := len(a), len(b)
	size := n + m
	cost := func(l, r int) float64 {
		switch {
		case l < n && r < m:
			return bottleneck.Cost(a[l], b[r])
		case l < n:
			if r-m == l {
				return bottleneck.DiagonalCost(a[l])
			}
			return math.Inf(1)
		case r < m:
			if l-n == r {
				return bottleneck.DiagonalCost(b[r])
			}
			return math.Inf(1)
		}
		return 0
	}
	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}
	best := math.Inf(1)
	var rec func(k int)
	rec = func(k int) {
		if k == size {
			worst := 0.0
			for l, r := range perm {
				worst = math.Max(worst, cost(l, r))
			}
			best = math.Min(best, worst)
			return
		}
		for i := k; i < size; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)

	return best
}

func randomBars(rng *rand.Rand, n int) []iv {
	out := make([]iv, n)
	for i := range out {
		b := float64(rng.Intn(10))
		if rng.Intn(6) == 0 {
			out[i] = inf(b)
			continue
		}
		out[i] = fin(b, b+float64(rng.Intn(8)))
	}

	return out
}

func TestDistance_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 200; trial++ {
		a := randomBars(rng, rng.Intn(4))
		b := randomBars(rng, rng.Intn(4))
		assert.Equal(t, bruteForce(a, b), bottleneck.Distance(a, b), "a=%v b=%v", a, b)
	}
}

func TestDistance_TriangleInequality(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		a, b, c := randomBars(rng, 3), randomBars(rng, 4), randomBars(rng, 2)
		ab, bc, ac := bottleneck.Distance(a, b), bottleneck.Distance(b, c), bottleneck.Distance(a, c)
		assert.LessOrEqual(t, ac, ab+bc, "a=%v b=%v c=%v", a, b, c)
	}
}
