package dls

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// limiter is the per-call state shared by DLS and all IDDFS rounds.
type limiter struct {
	graph    core.Graph
	goal     string
	opts     Options
	expanded int
}

func newLimiter(g core.Graph, goal string, opts []Option) (*limiter, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &limiter{graph: g, goal: goal, opts: o}, nil
}

// DLS returns a path from start to goal using at most limit edges, or
// core.ErrNoPath when none exists within the limit. limit < 0 yields
// core.ErrNegativeDepth.
func DLS(g core.Graph, start, goal string, limit int, opts ...Option) (core.Path, error) {
	if limit < 0 {
		return nil, fmt.Errorf("dls: limit %d: %w", limit, core.ErrNegativeDepth)
	}
	l, err := newLimiter(g, goal, opts)
	if err != nil {
		return nil, err
	}

	path, err := l.search(start, 0, limit)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, fmt.Errorf("dls: %q → %q within %d: %w", start, goal, limit, core.ErrNoPath)
	}

	return path, nil
}

// IDDFS runs DLS with limits 0..maxDepth and returns the first path found,
// which has the fewest edges of any path within maxDepth. maxDepth < 0
// yields core.ErrNegativeDepth.
func IDDFS(g core.Graph, start, goal string, maxDepth int, opts ...Option) (core.Path, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("iddfs: max depth %d: %w", maxDepth, core.ErrNegativeDepth)
	}
	l, err := newLimiter(g, goal, opts)
	if err != nil {
		return nil, err
	}

	for limit := 0; limit <= maxDepth; limit++ {
		l.opts.OnIteration(limit)
		path, err := l.search(start, 0, limit)
		if err != nil {
			return nil, err
		}
		if path != nil {
			return path, nil
		}
	}

	return nil, fmt.Errorf("iddfs: %q → %q within %d: %w", start, goal, maxDepth, core.ErrNoPath)
}

// search enters id at the given depth. A nil path with nil error means
// this branch failed; the caller moves on to the next sibling.
func (l *limiter) search(id string, depth, limit int) (core.Path, error) {
	if depth > limit {
		return nil, nil
	}
	select {
	case <-l.opts.Ctx.Done():
		return nil, l.opts.Ctx.Err()
	default:
	}

	l.expanded++
	if l.opts.MaxExpansions > 0 && l.expanded > l.opts.MaxExpansions {
		return nil, fmt.Errorf("%w: %d", ErrExpansionLimit, l.opts.MaxExpansions)
	}
	l.opts.OnExpand(id, depth)

	if id == l.goal {
		return core.Path{id}, nil
	}
	for _, nbr := range l.graph.Neighbors(id) {
		sub, err := l.search(nbr, depth+1, limit)
		if err != nil {
			return nil, err
		}
		if sub != nil {
			return append(core.Path{id}, sub...), nil
		}
	}

	return nil, nil
}
