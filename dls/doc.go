// Package dls implements depth-limited search and iterative-deepening
// depth-first search over a core.Graph.
//
// DLS
//
// DLS(g, start, goal, limit) explores first-neighbor-first, traversing at
// most limit edges along any branch, and returns a path of at most limit+1
// nodes. A branch that runs past the limit fails on its own; its siblings
// are still tried. No visited set is kept: nodes may be re-entered from
// different branches and cycles are walked until the limit cuts them off,
// which wastes work but always terminates.
//
// IDDFS
//
// IDDFS(g, start, goal, maxDepth) runs DLS with limits 0, 1, …, maxDepth
// and returns the first success. Each limit is searched to completion
// before the next, so the result is a fewest-edges path, the same length
// BFS would return, found with O(depth) memory.
//
// Complexity (b = branching factor, d = limit)
//
//   - Time:   O(b^d) per DLS call; IDDFS adds a constant factor ≈ b/(b-1).
//   - Memory: O(d) recursion frames.
//
// Errors
//
//   - core.ErrNoPath         no path within the limit.
//   - core.ErrNegativeDepth  limit or maxDepth below zero.
//   - ErrExpansionLimit      the expansion cap was hit first.
//   - ctx.Err()              the context was cancelled.
package dls
