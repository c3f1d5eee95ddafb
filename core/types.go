package core

import "errors"

// Sentinel errors shared by the search packages.
var (
	// ErrNoPath reports that the goal cannot be reached from the start.
	// It is the "no path" outcome of every search; callers branch on it
	// with errors.Is rather than treating it as a failure.
	ErrNoPath = errors.New("core: no path")

	// ErrNegativeWeight indicates an arc with a negative or NaN weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrNegativeDepth indicates a depth limit below zero.
	ErrNegativeDepth = errors.New("core: negative depth limit")

	// ErrMissingEdge indicates two consecutive Path nodes with no edge between them.
	ErrMissingEdge = errors.New("core: missing edge")

	// ErrEmptyPath indicates a Path with no nodes.
	ErrEmptyPath = errors.New("core: empty path")
)

// Graph is an unweighted adjacency list: node ID → ordered neighbor IDs.
type Graph map[string][]string

// Arc is a weighted outgoing edge.
type Arc struct {
	// To is the neighbor ID.
	To string

	// Weight is the traversal cost; searches require Weight >= 0.
	Weight float64
}

// WeightedGraph is a weighted adjacency list: node ID → ordered Arcs.
type WeightedGraph map[string][]Arc

// Path is an ordered sequence of node IDs from start to goal inclusive.
// A found path always holds at least one node.
type Path []string
