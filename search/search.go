package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/bidir"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
	"github.com/katalvlaran/lvsearch/dls"
	"github.com/katalvlaran/lvsearch/ucs"
)

// Graphs bundles the two views a query may need. UCS reads Weighted;
// every other algorithm reads Unweighted. Reverse, if set, is handed to
// bidirectional search as the transpose of Unweighted.
type Graphs struct {
	Unweighted core.Graph
	Weighted   core.WeightedGraph
	Reverse    core.Graph
}

// Query is one search request.
type Query struct {
	Algorithm Algorithm `json:"algorithm"`
	Start     string    `json:"start"`
	Goal      string    `json:"goal"`
	// Depth is the limit for DLS and the max depth for IDDFS; ignored otherwise.
	Depth int `json:"depth,omitempty"`
}

// DefaultDepth is the depth used for DLS and IDDFS queries that do not
// state one.
const DefaultDepth = 10

// Outcome is the answer to a Query.
type Outcome struct {
	Query Query     `json:"query"`
	Found bool      `json:"found"`
	Path  core.Path `json:"path,omitempty"`

	// Cost is the total weight of Path for UCS, and the edge count otherwise.
	Cost float64 `json:"cost"`

	// Meeting, Forward and Backward are set by bidirectional search only.
	Meeting  string    `json:"meeting,omitempty"`
	Forward  core.Path `json:"forward,omitempty"`
	Backward core.Path `json:"backward,omitempty"`

	Elapsed time.Duration `json:"elapsed"`
}

// Run answers q against graphs. A missing path yields Found == false and a
// nil error.
func Run(ctx context.Context, graphs Graphs, q Query) (Outcome, error) {
	out := Outcome{Query: q}
	began := time.Now()
	err := dispatch(ctx, graphs.forAlgorithm(q.Algorithm), q, &out)
	out.Elapsed = time.Since(began)

	if errors.Is(err, core.ErrNoPath) {
		return out, nil
	}
	if err != nil {
		return out, fmt.Errorf("search: %s %q → %q: %w", q.Algorithm, q.Start, q.Goal, err)
	}
	out.Found = true

	return out, nil
}

// forAlgorithm derives the view a searches from the other one when it is
// missing: unit weights for UCS, the unweighted projection otherwise.
func (g Graphs) forAlgorithm(a Algorithm) Graphs {
	switch {
	case a.Weighted() && g.Weighted == nil && g.Unweighted != nil:
		g.Weighted = g.Unweighted.Weighted(1)
	case !a.Weighted() && g.Unweighted == nil && g.Weighted != nil:
		g.Unweighted = g.Weighted.Unweighted()
	}

	return g
}

func dispatch(ctx context.Context, graphs Graphs, q Query, out *Outcome) error {
	var (
		path core.Path
		err  error
	)
	switch q.Algorithm {
	case BFS:
		path, err = bfs.BFS(graphs.Unweighted, q.Start, q.Goal, bfs.WithContext(ctx))
	case DFS:
		path, err = dfs.DFS(graphs.Unweighted, q.Start, q.Goal, dfs.WithContext(ctx))
	case DLS:
		path, err = dls.DLS(graphs.Unweighted, q.Start, q.Goal, q.Depth, dls.WithContext(ctx))
	case IDDFS:
		path, err = dls.IDDFS(graphs.Unweighted, q.Start, q.Goal, q.Depth, dls.WithContext(ctx))
	case UCS:
		res, err := ucs.UCS(graphs.Weighted, q.Start, q.Goal, ucs.WithContext(ctx))
		if err != nil {
			return err
		}
		out.Path, out.Cost = res.Path, res.Cost

		return nil
	case Bidirectional:
		opts := []bidir.Option{bidir.WithContext(ctx)}
		if graphs.Reverse != nil {
			opts = append(opts, bidir.WithReverse(graphs.Reverse))
		}
		res, err := bidir.Search(graphs.Unweighted, q.Start, q.Goal, opts...)
		if err != nil {
			return err
		}
		out.Path = res.Path()
		out.Cost = float64(out.Path.Len())
		out.Meeting, out.Forward, out.Backward = res.Meeting, res.Forward, res.Backward

		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(q.Algorithm))
	}
	if err != nil {
		return err
	}
	out.Path = path
	out.Cost = float64(path.Len())

	return nil
}
