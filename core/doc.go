// Package core defines the graph and path types shared by every search
// package in lvsearch.
//
// What
//
//   - Graph:         unweighted adjacency, node ID → ordered neighbor IDs.
//   - WeightedGraph: weighted adjacency, node ID → ordered Arcs (neighbor, weight).
//   - Path:          ordered node IDs from start to goal inclusive.
//
// Both graph types are plain maps. A key that is absent behaves as a node
// with no outgoing edges, and a nil graph behaves as an empty graph, so
// lookups never fail. Searches only read a graph; the same value may be
// shared by any number of concurrent searches without locking, as long as
// nobody mutates it while they run.
//
// Neighbor order is significant: every search expands neighbors in slice
// order, which makes results reproducible for a given graph value.
//
// Errors
//
//   - ErrNoPath          the goal is unreachable (an expected outcome, not a failure).
//   - ErrNegativeWeight  a weighted graph carries a negative or NaN weight.
//   - ErrNegativeDepth   a depth limit below zero was supplied.
//   - ErrMissingEdge     a Path uses a pair of nodes not joined by an edge.
//   - ErrEmptyPath       a Path has no nodes.
//
// Usage
//
//	g := core.Graph{
//		"A": {"B", "C"},
//		"B": {"D"},
//		"C": {"D"},
//	}
//	ok := g.IsPath(core.Path{"A", "B", "D"}) // true
//
//	wg := core.WeightedGraph{
//		"A": {{To: "B", Weight: 5}, {To: "C", Weight: 1}},
//	}
//	cost, err := wg.Cost(core.Path{"A", "C"}) // 1, nil
package core
