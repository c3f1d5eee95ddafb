// Package dfs finds some path between two nodes of a core.Graph with
// depth-first search.
//
// The path is not necessarily shortest: neighbors are explored
// first-neighbor-first and the first path to reach the goal is returned.
//
// Visited semantics
//
// A single visited set is shared by the whole call. Once any branch enters
// a node, that node is excluded from every other branch for the rest of
// the search, and visited marks are never undone on backtrack. Every node
// reachable from start is still entered at most once, so a reachable goal
// is always found, but the returned path is whichever route the earliest
// branch happened to take. A shorter route through a node that a previous
// branch already consumed is never considered. See ExampleDFS_sharedVisited.
// Use bfs or dls.IDDFS when the path length matters.
//
// Implementation
//
// The traversal runs on an explicit stack of (node, path) frames instead of
// recursion, so path length is bounded by memory rather than goroutine
// stack depth. Neighbors are pushed in reverse order, which reproduces the
// visit order of the recursive formulation exactly.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E) node entries; every push copies a path of length ≤ V.
//   - Memory: O(E · V) worst case for stacked paths, O(V) for the visited set.
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per pop.
//   - WithOnExpand(fn):        hook run when a node is entered, with its depth.
//   - WithMaxExpansions(n):    fail with ErrExpansionLimit after n entries (0 = no cap).
//
// Errors
//
//   - core.ErrNoPath        goal not found.
//   - ErrOptionViolation    invalid Option.
//   - ErrExpansionLimit     the cap was hit before the goal.
//   - ctx.Err()             the context was cancelled.
package dfs
