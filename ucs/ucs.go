package ucs

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/pqueue"
)

// entry is one frontier element; its priority is cost.
type entry struct {
	id   string
	path core.Path
	cost float64
}

// runner holds the mutable state for a single UCS execution.
type runner struct {
	g        core.WeightedGraph
	opts     Options
	pq       *pqueue.Queue[entry]
	visited  map[string]bool
	expanded int
}

// UCS returns the cheapest path from start to goal in g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. No arc in g may have a negative or NaN weight (core.ErrNegativeWeight).
//
// start == goal yields Result{Path: [start], Cost: 0}. An unreachable goal
// yields core.ErrNoPath.
func UCS(g core.WeightedGraph, start, goal string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("ucs: %w", err)
	}

	r := &runner{
		g:       g,
		opts:    cfg,
		pq:      pqueue.New[entry](len(g) + 1),
		visited: make(map[string]bool, len(g)),
	}
	r.pq.Enqueue(entry{id: start, path: core.Path{start}}, 0)

	res, err := r.process(goal)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("ucs: %q → %q: %w", start, goal, core.ErrNoPath)
	}

	return res, nil
}

// process extracts the cheapest entry until the goal surfaces or the
// queue empties.
func (r *runner) process(goal string) (*Result, error) {
	for !r.pq.IsEmpty() {
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		e, ok := r.pq.Dequeue()
		if !ok {
			break
		}
		if e.id == goal {
			return &Result{Path: e.path, Cost: e.cost}, nil
		}
		if r.visited[e.id] {
			continue
		}
		r.visited[e.id] = true

		r.expanded++
		if r.opts.MaxExpansions > 0 && r.expanded > r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d", ErrExpansionLimit, r.opts.MaxExpansions)
		}
		r.opts.OnExpand(e.id, e.cost)
		r.relax(e)
	}

	return nil, nil
}

// relax enqueues every arc leaving e.id at cost e.cost + weight.
func (r *runner) relax(e entry) {
	for _, a := range r.g.Arcs(e.id) {
		next := e.cost + a.Weight
		r.pq.Enqueue(entry{id: a.To, path: e.path.Extend(a.To), cost: next}, next)
	}
}
