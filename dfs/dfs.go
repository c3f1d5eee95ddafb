package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// frame is one pending entry on the explicit stack.
type frame struct {
	id   string
	path core.Path
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph    core.Graph
	opts     Options
	stack    []frame
	visited  map[string]bool
	expanded int
}

// DFS returns the first path from start to goal found by depth-first,
// first-neighbor-first exploration with a call-wide visited set.
// start == goal yields [start]. Exhausting the reachable nodes yields
// core.ErrNoPath.
func DFS(g core.Graph, start, goal string, opts ...Option) (core.Path, error) {
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	w := &dfsWalker{
		graph:   g,
		opts:    dopts,
		stack:   make([]frame, 0, len(g)+1),
		visited: make(map[string]bool, len(g)),
	}
	w.stack = append(w.stack, frame{id: start, path: core.Path{start}})

	path, err := w.run(goal)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, fmt.Errorf("dfs: %q → %q: %w", start, goal, core.ErrNoPath)
	}

	return path, nil
}

// run pops frames until the goal is entered or the stack drains.
// A nil path with a nil error means the goal was not found.
func (w *dfsWalker) run(goal string) (core.Path, error) {
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		top := w.stack[len(w.stack)-1]
		w.stack[len(w.stack)-1] = frame{}
		w.stack = w.stack[:len(w.stack)-1]

		// Already entered from some branch: permanently excluded.
		if w.visited[top.id] {
			continue
		}
		w.visited[top.id] = true

		w.expanded++
		if w.opts.MaxExpansions > 0 && w.expanded > w.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d", ErrExpansionLimit, w.opts.MaxExpansions)
		}
		if w.opts.OnExpand != nil {
			w.opts.OnExpand(top.id, top.path.Len())
		}

		if top.id == goal {
			return top.path, nil
		}

		// Reverse push so the first neighbor is popped first.
		nbrs := w.graph.Neighbors(top.id)
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !w.visited[nbrs[i]] {
				w.stack = append(w.stack, frame{id: nbrs[i], path: top.path.Extend(nbrs[i])})
			}
		}
	}

	return nil, nil
}
