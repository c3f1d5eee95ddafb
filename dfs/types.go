package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions is exhausted.
	ErrExpansionLimit = errors.New("dfs: expansion limit reached")
)

// Option configures DFS behavior.
type Option func(*Options)

// Options holds parameters and callbacks for a DFS run.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnExpand, if non-nil, is invoked when a node is entered (pre-order),
	// with its depth along the current path. The goal is entered, so it is
	// reported too.
	OnExpand func(id string, depth int)

	// MaxExpansions, if > 0, caps the number of entered nodes.
	MaxExpansions int

	err error
}

// DefaultOptions returns background context, no hook and no cap.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnExpand:      nil,
		MaxExpansions: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand installs fn as a pre-order hook.
func WithOnExpand(fn func(id string, depth int)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithMaxExpansions caps entered nodes; 0 disables the cap, negative is invalid.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}
