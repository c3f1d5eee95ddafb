// Package bidir finds a path between two nodes of a core.Graph by running
// two breadth-first frontiers, one forward from start and one backward from
// goal, until they meet.
//
// What
//
//   - Each round pops one node from the forward frontier and expands its
//     successors, then pops one node from the backward frontier and expands
//     its predecessors. An exhausted frontier is skipped; the search ends
//     when a meeting node is found or both frontiers are empty.
//   - Every newly discovered node records the node that discovered it, in a
//     parent map per direction. A node's parent is set exactly once, so both
//     maps are acyclic by construction.
//   - The meeting check runs at discovery: a node newly discovered by one
//     side that the other side has already discovered is the meeting node.
//     The forward step is checked before the backward step of the same round.
//   - start == goal short-circuits to Forward = Backward = [start],
//     Meeting = start.
//
// The backward side follows edges in reverse, so Result.Backward is a real
// path meeting → goal in g. By default the transpose of g is built once
// per call; pass WithReverse to reuse a precomputed one, or WithReverse(g)
// when g is undirected (every edge stored both ways).
//
// The stitched path is not guaranteed to be a shortest one: the search
// stops at the first meeting node it discovers.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E), plus O(E) for the transpose when not supplied.
//   - Memory: O(V) for the two parent maps and frontiers.
//
// Errors
//
//   - core.ErrNoPath        the frontiers never met.
//   - ErrOptionViolation    invalid Option.
//   - ErrExpansionLimit     the expansion cap (both sides combined) was hit.
//   - ctx.Err()             the context was cancelled.
package bidir
