package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions is exhausted.
	ErrExpansionLimit = errors.New("bfs: expansion limit reached")
)

// Option configures BFS behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when
// BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnExpand is called once per expanded node with its depth (edges from start).
	// The goal is returned when dequeued and is never expanded.
	OnExpand func(id string, depth int)

	// MaxExpansions, if > 0, caps the number of expanded nodes.
	MaxExpansions int

	err error
}

// DefaultOptions returns background context, a no-op hook and no cap.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnExpand:      func(string, int) {},
		MaxExpansions: 0,
	}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a hook run when a node is expanded.
func WithOnExpand(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps expansions.
//
//	n > 0:  at most n expansions
//	n == 0: explicit "no cap"
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}
