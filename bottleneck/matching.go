// SPDX-License-Identifier: MIT
// Package: lvtopo/bottleneck
//
// matching.go - Hopcroft–Karp perfect-matching test at a threshold.
//
// Vertex layout: left 0..n-1 are intervals of A, left n..n+m-1 are diagonal
// copies of B; right 0..m-1 are intervals of B, right m..m+n-1 are diagonal
// copies of A.

package bottleneck

import "github.com/katalvlaran/lvtopo/barcode"

const unmatched = -1

type instance struct {
	a, b  []barcode.Interval[float64]
	costs [][]float64
}

// graph returns left adjacency lists of edges with cost ≤ delta.
func (g *instance) graph(delta float64) [][]int {
	n, m := len(g.a), len(g.b)
	adj := make([][]int, n+m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if g.costs[i][j] <= delta {
				adj[i] = append(adj[i], j)
			}
		}
		if DiagonalCost(g.a[i]) <= delta {
			adj[i] = append(adj[i], m+i)
		}
	}
	for j := 0; j < m; j++ {
		u := n + j
		if DiagonalCost(g.b[j]) <= delta {
			adj[u] = append(adj[u], j)
		}
		for i := 0; i < n; i++ {
			adj[u] = append(adj[u], m+i)
		}
	}

	return adj
}

// perfect reports whether every left vertex can be matched at delta.
func (g *instance) perfect(delta float64) bool {
	adj := g.graph(delta)
	size := len(adj)

	return hopcroftKarp(adj, size) == size
}

// hopcroftKarp returns the maximum matching size of the bipartite graph with
// left adjacency adj and nRight right vertices.
func hopcroftKarp(adj [][]int, nRight int) int {
	nLeft := len(adj)
	matchL := make([]int, nLeft)
	matchR := make([]int, nRight)
	for i := range matchL {
		matchL[i] = unmatched
	}
	for j := range matchR {
		matchR[j] = unmatched
	}
	dist := make([]int, nLeft)
	const inf = int(^uint(0) >> 1)

	// bfs layers left vertices by alternating-path distance from free ones and
	// reports whether a free right vertex is reachable.
	bfs := func() bool {
		queue := make([]int, 0, nLeft)
		for u := 0; u < nLeft; u++ {
			if matchL[u] == unmatched {
				dist[u] = 0
				queue = append(queue, u)
			} else {
				dist[u] = inf
			}
		}
		found := false
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, v := range adj[u] {
				w := matchR[v]
				if w == unmatched {
					found = true
				} else if dist[w] == inf {
					dist[w] = dist[u] + 1
					queue = append(queue, w)
				}
			}
		}

		return found
	}

	var dfs func(u int) bool
	dfs = func(u int) bool {
		for _, v := range adj[u] {
			w := matchR[v]
			if w == unmatched || (dist[w] == dist[u]+1 && dfs(w)) {
				matchL[u], matchR[v] = v, u
				return true
			}
		}
		dist[u] = inf

		return false
	}

	matching := 0
	for bfs() {
		for u := 0; u < nLeft; u++ {
			if matchL[u] == unmatched && dfs(u) {
				matching++
			}
		}
	}

	return matching
}
