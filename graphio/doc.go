// Package graphio reads graph and query documents for the lvsearch CLI.
//
// Documents are YAML; JSON is accepted too since it is a YAML subset.
//
// Graph document
//
//	directed: true        # default true; false mirrors every edge
//	edges:                # unweighted adjacency
//	  A: [B, C]
//	  B: [D]
//	weighted:             # weighted adjacency, used by UCS
//	  A:
//	    - {to: B, weight: 5}
//	    - {to: C, weight: 1}
//
// At least one of edges or weighted must be present. When only weighted is
// given, the unweighted view is its projection; when only edges is given,
// every weight defaults to 1. Neighbor order in the document is kept,
// since it decides which path DFS and BFS report among equals.
//
// Query document
//
//	queries:
//	  - {algorithm: bfs, start: A, goal: D}
//	  - {algorithm: iddfs, start: A, goal: D, depth: 4}
package graphio
