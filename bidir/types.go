package bidir

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors for bidirectional search.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bidir: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions is exhausted.
	ErrExpansionLimit = errors.New("bidir: expansion limit reached")

	// errParentCycle means a parent walk exceeded the number of discovered
	// nodes. Parents are assigned once, so this indicates a bug.
	errParentCycle = errors.New("bidir: parent map is not acyclic")
)

// Direction tells which frontier an event belongs to.
type Direction int

const (
	// Forward expands successors, starting at start.
	Forward Direction = iota
	// Backward expands predecessors, starting at goal.
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}

	return "forward"
}

// Result holds the two half paths and the node where they join.
type Result struct {
	// Forward runs start → Meeting.
	Forward core.Path

	// Backward runs Meeting → goal.
	Backward core.Path

	// Meeting is the last node of Forward and the first node of Backward.
	Meeting string
}

// Path stitches Forward and Backward into one start → goal path,
// counting the meeting node once.
func (r *Result) Path() core.Path {
	out := make(core.Path, 0, len(r.Forward)+len(r.Backward))
	out = append(out, r.Forward...)
	if len(r.Backward) > 1 {
		out = append(out, r.Backward[1:]...)
	}

	return out
}

// Option configures Search.
type Option func(*Options)

// Options holds parameters and callbacks for a bidirectional run.
type Options struct {
	// Ctx allows cancellation; checked once per round.
	Ctx context.Context

	// OnExpand is called for every popped node with its direction. A meeting
	// is detected when a node is discovered, so the meeting node and goal
	// are usually never popped.
	OnExpand func(id string, dir Direction)

	// Reverse, if non-nil, is used as the transpose of the graph.
	Reverse core.Graph

	// MaxExpansions, if > 0, caps popped nodes across both directions.
	MaxExpansions int

	err error
}

// DefaultOptions returns background context, a no-op hook, no cap and a
// transpose computed per call.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(string, Direction) {},
	}
}

// WithContext sets a custom context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a hook run for every popped node.
func WithOnExpand(fn func(id string, dir Direction)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithReverse supplies the transpose of the searched graph (see core.Graph.Reverse).
// For an undirected graph, the graph itself is its own transpose.
func WithReverse(rev core.Graph) Option {
	return func(o *Options) {
		if rev == nil {
			o.err = fmt.Errorf("%w: reverse graph is nil", ErrOptionViolation)

			return
		}
		o.Reverse = rev
	}
}

// WithMaxExpansions caps popped nodes; 0 disables the cap, negative is invalid.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}
