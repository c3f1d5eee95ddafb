package core

import (
	"fmt"
	"math"
	"slices"
)

// Neighbors returns the outgoing neighbors of id in insertion order.
// Absent nodes have no neighbors. The returned slice must not be modified.
func (g Graph) Neighbors(id string) []string {
	return g[id]
}

// HasEdge reports whether from → to is an edge of g.
func (g Graph) HasEdge(from, to string) bool {
	return slices.Contains(g[from], to)
}

// Nodes returns every node ID mentioned by g, as a key or as a neighbor,
// sorted ascending.
func (g Graph) Nodes() []string {
	seen := make(map[string]struct{}, len(g))
	for u, nbrs := range g {
		seen[u] = struct{}{}
		for _, v := range nbrs {
			seen[v] = struct{}{}
		}
	}

	return sortedKeys(seen)
}

// Reverse returns the transpose of g: for every edge u → v of g it holds
// v → u. Sources are visited in sorted order, so neighbor order in the
// result is deterministic.
func (g Graph) Reverse() Graph {
	rev := make(Graph, len(g))
	keys := make([]string, 0, len(g))
	for u := range g {
		keys = append(keys, u)
	}
	slices.Sort(keys)
	for _, u := range keys {
		for _, v := range g[u] {
			rev[v] = append(rev[v], u)
		}
	}

	return rev
}

// IsPath reports whether p is a non-empty walk in g, i.e. every
// consecutive pair of nodes is joined by an edge.
func (g Graph) IsPath(p Path) bool {
	if len(p) == 0 {
		return false
	}
	for i := 1; i < len(p); i++ {
		if !g.HasEdge(p[i-1], p[i]) {
			return false
		}
	}

	return true
}

// Weighted lifts g into a WeightedGraph giving every edge the same weight.
func (g Graph) Weighted(weight float64) WeightedGraph {
	wg := make(WeightedGraph, len(g))
	for u, nbrs := range g {
		arcs := make([]Arc, len(nbrs))
		for i, v := range nbrs {
			arcs[i] = Arc{To: v, Weight: weight}
		}
		wg[u] = arcs
	}

	return wg
}

// Arcs returns the outgoing arcs of id in insertion order.
func (wg WeightedGraph) Arcs(id string) []Arc {
	return wg[id]
}

// Validate scans every arc and returns ErrNegativeWeight for the first
// negative or NaN weight found. Sources are scanned in sorted order.
func (wg WeightedGraph) Validate() error {
	keys := make([]string, 0, len(wg))
	for u := range wg {
		keys = append(keys, u)
	}
	slices.Sort(keys)
	for _, u := range keys {
		for _, a := range wg[u] {
			if a.Weight < 0 || math.IsNaN(a.Weight) {
				return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, u, a.To, a.Weight)
			}
		}
	}

	return nil
}

// Unweighted drops the weights of wg, keeping arc order.
func (wg WeightedGraph) Unweighted() Graph {
	g := make(Graph, len(wg))
	for u, arcs := range wg {
		nbrs := make([]string, len(arcs))
		for i, a := range arcs {
			nbrs[i] = a.To
		}
		g[u] = nbrs
	}

	return g
}

// Cost returns the total weight of p in wg. Where several parallel arcs
// join the same pair, the cheapest one is used. A single-node path costs 0.
func (wg WeightedGraph) Cost(p Path) (float64, error) {
	if len(p) == 0 {
		return 0, ErrEmptyPath
	}
	var total float64
	for i := 1; i < len(p); i++ {
		best, ok := math.Inf(1), false
		for _, a := range wg[p[i-1]] {
			if a.To == p[i] && a.Weight < best {
				best, ok = a.Weight, true
			}
		}
		if !ok {
			return 0, fmt.Errorf("%w: %s→%s", ErrMissingEdge, p[i-1], p[i])
		}
		total += best
	}

	return total, nil
}

// sortedKeys returns the keys of set in ascending order.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}
