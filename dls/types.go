package dls

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dls: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions is exhausted.
	// For IDDFS the cap spans all iterations.
	ErrExpansionLimit = errors.New("dls: expansion limit reached")
)

// Option configures DLS and IDDFS.
type Option func(*Options)

// Options holds parameters and callbacks for a DLS or IDDFS run.
type Options struct {
	// Ctx allows cancellation; checked on every node entry.
	Ctx context.Context

	// OnExpand is invoked when a node within the limit is entered, with
	// its depth on the current branch. The goal is entered, so it is
	// reported too.
	OnExpand func(id string, depth int)

	// OnIteration is invoked by IDDFS before each deepening round.
	OnIteration func(limit int)

	// MaxExpansions, if > 0, caps node entries.
	MaxExpansions int

	err error
}

// DefaultOptions returns background context, no-op hooks and no cap.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnExpand:    func(string, int) {},
		OnIteration: func(int) {},
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

// WithOnExpand registers a hook run on every node entry.
func WithOnExpand(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnIteration registers a hook run by IDDFS before each limit.
func WithOnIteration(fn func(limit int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// WithMaxExpansions caps node entries; 0 disables the cap, negative is invalid.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}
