// Package ucs finds a minimum-total-weight path between two nodes of a
// core.WeightedGraph with uniform-cost search.
//
// What
//
//   - The frontier is a pqueue.Queue of (node, path, cost) entries ordered
//     by accumulated cost, seeded with (start, [start], 0).
//   - The goal test runs on extraction: the queue always yields the global
//     minimum, so the first extracted goal entry is optimal.
//   - A node is expanded at most once (on its first extraction). It may be
//     enqueued many times with different costs before that; stale entries
//     are dropped when extracted.
//
// UCS requires non-negative weights. Every arc is scanned up front and a
// negative or NaN weight fails fast with core.ErrNegativeWeight.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:  O(E log E) queue operations, plus path copies.
//   - Space: O(E) queue entries ("lazy decrease-key"), O(V) visited set.
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per extraction.
//   - WithOnExpand(fn):        hook with the node and its settled cost.
//   - WithMaxExpansions(n):    fail with ErrExpansionLimit after n expansions.
//
// Example usage:
//
//	res, err := ucs.UCS(wg, "A", "D")
//	if errors.Is(err, core.ErrNoPath) {
//		// unreachable
//	}
//	fmt.Println(res.Path, res.Cost)
package ucs
