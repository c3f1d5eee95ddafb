// Package bfs finds a fewest-edges path between two nodes of a core.Graph
// with breadth-first search.
//
// What
//
//   - The frontier is a FIFO queue of (node, path-so-far) entries seeded
//     with (start, [start]).
//   - The goal test runs when an entry is dequeued; the first dequeued
//     goal entry carries a shortest path by edge count.
//   - The visited check also runs on dequeue, not on enqueue. A node may
//     therefore sit in the queue several times before its first dequeue
//     marks it visited; later copies are dropped without expansion. Do not
//     assume each node is enqueued at most once.
//   - Neighbors are enqueued in slice order, so among equally short paths
//     the one through earlier neighbors wins.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E) expansions; every enqueue copies a path of length ≤ V.
//   - Memory: O(E · V) worst case for queued paths, O(V) for the visited set.
//
// Usage
//
//	path, err := bfs.BFS(g, "A", "D")
//	switch {
//	case errors.Is(err, core.ErrNoPath):
//		// unreachable
//	case err != nil:
//		// cancelled, or an option was rejected
//	}
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per dequeue.
//   - WithOnExpand(fn):        hook run as a node's neighbors are enqueued.
//   - WithMaxExpansions(n):    fail with ErrExpansionLimit after n expansions (0 = no cap).
//
// Errors
//
//   - core.ErrNoPath        goal unreachable.
//   - ErrOptionViolation    invalid Option (e.g. negative expansion cap).
//   - ErrExpansionLimit     the expansion cap was hit before the goal.
//   - ctx.Err()             the context was cancelled.
package bfs
