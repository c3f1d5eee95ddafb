// Package search dispatches path queries to the six uninformed search
// algorithms by name and runs batches of independent queries concurrently
// over one shared, read-only graph.
//
//	graphs := search.Graphs{Unweighted: g, Weighted: wg}
//	out, err := search.Run(ctx, graphs, search.Query{Algorithm: search.UCS, Start: "A", Goal: "D"})
//	// out.Found, out.Path, out.Cost ...
//
//	outs, err := search.RunBatch(ctx, graphs, queries, 4)
//
// An unreachable goal is reported as Outcome.Found == false, never as an
// error. Errors are reserved for rejected input (negative depth, negative
// weights, unknown algorithm) and cancellation.
package search
