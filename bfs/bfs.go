package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// queueItem pairs a node with the path that reached it.
type queueItem struct {
	id   string
	path core.Path
}

// walker holds the per-call state of one BFS.
type walker struct {
	graph    core.Graph
	start    string
	goal     string
	opts     Options
	ctx      context.Context
	queue    []queueItem
	head     int
	visited  map[string]bool
	expanded int
}

// BFS returns a fewest-edges path from start to goal in g.
// When start == goal the result is [start] and no edge is traversed.
// An unreachable goal yields core.ErrNoPath.
func BFS(g core.Graph, start, goal string, opts ...Option) (core.Path, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		graph:   g,
		start:   start,
		goal:    goal,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, len(g)+1),
		visited: make(map[string]bool, len(g)),
	}
	w.queue = append(w.queue, queueItem{id: start, path: core.Path{start}})

	return w.loop()
}

// loop dequeues until the goal is found or the queue drains.
func (w *walker) loop() (core.Path, error) {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if item.id == w.goal {
			return item.path, nil
		}
		if w.visited[item.id] {
			continue
		}
		w.visited[item.id] = true
		if err := w.expand(item); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("bfs: %q → %q: %w", w.start, w.goal, core.ErrNoPath)
}

// dequeue pops the front entry. The consumed prefix is released once it
// outweighs the live tail.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.queue[w.head] = queueItem{}
	w.head++
	if w.head > 64 && w.head*2 > len(w.queue) {
		n := copy(w.queue, w.queue[w.head:])
		w.queue = w.queue[:n]
		w.head = 0
	}

	return item
}

// expand enqueues every neighbor of item, seen or not.
func (w *walker) expand(item queueItem) error {
	w.expanded++
	if w.opts.MaxExpansions > 0 && w.expanded > w.opts.MaxExpansions {
		return fmt.Errorf("%w: %d", ErrExpansionLimit, w.opts.MaxExpansions)
	}
	w.opts.OnExpand(item.id, item.path.Len())
	for _, nbr := range w.graph.Neighbors(item.id) {
		w.queue = append(w.queue, queueItem{id: nbr, path: item.path.Extend(nbr)})
	}

	return nil
}
