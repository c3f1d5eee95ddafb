package bidir

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvsearch/core"
)

// link is a parent-map entry. The root of a direction has root == true.
type link struct {
	parent string
	root   bool
}

// frontier is one direction of the search.
type frontier struct {
	dir   Direction
	adj   core.Graph
	queue []string
	head  int
	links map[string]link
}

func newFrontier(dir Direction, adj core.Graph, root string) *frontier {
	return &frontier{
		dir:   dir,
		adj:   adj,
		queue: []string{root},
		links: map[string]link{root: {root: true}},
	}
}

func (f *frontier) exhausted() bool { return f.head >= len(f.queue) }

// searcher holds the state of one bidirectional search.
type searcher struct {
	opts     Options
	fwd, bwd *frontier
	expanded int
}

// Search runs bidirectional breadth-first search from start to goal in g.
// The frontiers meet at Result.Meeting; Result.Path stitches the halves.
// When the frontiers never meet, the error wraps core.ErrNoPath.
func Search(g core.Graph, start, goal string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if start == goal {
		return &Result{Forward: core.Path{start}, Backward: core.Path{goal}, Meeting: start}, nil
	}

	rev := o.Reverse
	if rev == nil {
		rev = g.Reverse()
	}
	s := &searcher{
		opts: o,
		fwd:  newFrontier(Forward, g, start),
		bwd:  newFrontier(Backward, rev, goal),
	}

	meeting, found, err := s.run()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("bidir: %q → %q: %w", start, goal, core.ErrNoPath)
	}

	forward, err := s.fwd.walk(meeting)
	if err != nil {
		return nil, err
	}
	slices.Reverse(forward)
	backward, err := s.bwd.walk(meeting)
	if err != nil {
		return nil, err
	}

	return &Result{Forward: forward, Backward: backward, Meeting: meeting}, nil
}

// run alternates one forward and one backward step until the frontiers
// meet or both are exhausted.
func (s *searcher) run() (string, bool, error) {
	for !s.fwd.exhausted() || !s.bwd.exhausted() {
		select {
		case <-s.opts.Ctx.Done():
			return "", false, s.opts.Ctx.Err()
		default:
		}

		if !s.fwd.exhausted() {
			meeting, found, err := s.step(s.fwd, s.bwd)
			if err != nil || found {
				return meeting, found, err
			}
		}
		if !s.bwd.exhausted() {
			meeting, found, err := s.step(s.bwd, s.fwd)
			if err != nil || found {
				return meeting, found, err
			}
		}
	}

	return "", false, nil
}

// step pops one node from f and discovers its neighbors, stopping at the
// first neighbor the other side has already discovered.
func (s *searcher) step(f, other *frontier) (string, bool, error) {
	id := f.queue[f.head]
	f.queue[f.head] = ""
	f.head++

	s.expanded++
	if s.opts.MaxExpansions > 0 && s.expanded > s.opts.MaxExpansions {
		return "", false, fmt.Errorf("%w: %d", ErrExpansionLimit, s.opts.MaxExpansions)
	}
	s.opts.OnExpand(id, f.dir)

	for _, nbr := range f.adj.Neighbors(id) {
		if _, seen := f.links[nbr]; seen {
			continue
		}
		f.links[nbr] = link{parent: id}
		f.queue = append(f.queue, nbr)
		if _, met := other.links[nbr]; met {
			return nbr, true, nil
		}
	}

	return "", false, nil
}

// walk follows parent links from id to the root of f, returning the nodes
// visited in that order (id first). The walk is bounded by the number of
// discovered nodes.
func (f *frontier) walk(id string) (core.Path, error) {
	out := make(core.Path, 0, 8)
	for steps := 0; steps <= len(f.links); steps++ {
		l, ok := f.links[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q missing from %s map", errParentCycle, id, f.dir)
		}
		out = append(out, id)
		if l.root {
			return out, nil
		}
		id = l.parent
	}

	return nil, fmt.Errorf("%w: %s walk exceeded %d steps", errParentCycle, f.dir, len(f.links))
}
