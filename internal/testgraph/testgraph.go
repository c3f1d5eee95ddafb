// Package testgraph holds deterministic fixtures and brute-force oracles
// shared by the search package tests.
//
// The oracles enumerate every simple path, so keep graphs small (≤ 10 nodes).
package testgraph

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvsearch/core"
)

// Diamond returns A→{B,C}, B→D, C→D.
func Diamond() core.Graph {
	return core.Graph{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": {},
	}
}

// WeightedDiamond returns A→B(5), A→C(1), B→D(1), C→D(1).
func WeightedDiamond() core.WeightedGraph {
	return core.WeightedGraph{
		"A": {{To: "B", Weight: 5}, {To: "C", Weight: 1}},
		"B": {{To: "D", Weight: 1}},
		"C": {{To: "D", Weight: 1}},
		"D": {},
	}
}

// Chain returns v0→v1→…→v(n-1).
func Chain(n int) core.Graph {
	g := make(core.Graph, n)
	for i := 0; i+1 < n; i++ {
		g[Name(i)] = []string{Name(i + 1)}
	}

	return g
}

// Cycle returns v0→v1→…→v(n-1)→v0.
func Cycle(n int) core.Graph {
	g := Chain(n)
	if n > 0 {
		g[Name(n-1)] = append(g[Name(n-1)], Name(0))
	}

	return g
}

// Name returns the fixture node ID for index i.
func Name(i int) string { return fmt.Sprintf("v%d", i) }

// Random returns a directed graph on n nodes where each ordered pair
// (u≠v) is an edge with probability p. Weights are integers in [0, 9].
func Random(seed int64, n int, p float64) core.WeightedGraph {
	r := rand.New(rand.NewSource(seed))
	wg := make(core.WeightedGraph, n)
	for u := 0; u < n; u++ {
		wg[Name(u)] = []core.Arc{}
		for v := 0; v < n; v++ {
			if u != v && r.Float64() < p {
				wg[Name(u)] = append(wg[Name(u)], core.Arc{To: Name(v), Weight: float64(r.Intn(10))})
			}
		}
	}

	return wg
}

// SimplePaths enumerates every simple path from start to goal in g.
func SimplePaths(g core.Graph, start, goal string) []core.Path {
	var out []core.Path
	onPath := map[string]bool{}
	var walk func(id string, path core.Path)
	walk = func(id string, path core.Path) {
		if id == goal {
			out = append(out, path)

			return
		}
		onPath[id] = true
		for _, nbr := range g.Neighbors(id) {
			if !onPath[nbr] {
				walk(nbr, path.Extend(nbr))
			}
		}
		onPath[id] = false
	}
	walk(start, core.Path{start})

	return out
}

// ShortestLen returns the fewest edges between start and goal, or -1.
func ShortestLen(g core.Graph, start, goal string) int {
	best := -1
	for _, p := range SimplePaths(g, start, goal) {
		if best < 0 || p.Len() < best {
			best = p.Len()
		}
	}

	return best
}

// MinCost returns the cheapest total weight between start and goal,
// or +Inf when unreachable.
func MinCost(wg core.WeightedGraph, start, goal string) float64 {
	best := math.Inf(1)
	for _, p := range SimplePaths(wg.Unweighted(), start, goal) {
		c, err := wg.Cost(p)
		if err == nil && c < best {
			best = c
		}
	}

	return best
}
