package ucs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors returned by UCS.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ucs: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions is exhausted.
	ErrExpansionLimit = errors.New("ucs: expansion limit reached")
)

// Result is a successful UCS outcome.
type Result struct {
	// Path runs from start to goal inclusive.
	Path core.Path

	// Cost is the total weight of Path.
	Cost float64
}

// Options configures UCS.
type Options struct {
	Ctx context.Context

	// OnExpand is called when a node is settled, with its path cost. The goal
	// is returned when extracted and is not reported.
	OnExpand func(id string, cost float64)

	MaxExpansions int

	err error
}

// Option represents a functional option for configuring UCS.
type Option func(*Options)

// DefaultOptions returns background context, a no-op hook and no cap.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(string, float64) {},
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a hook run when a node's cost is settled and
// its arcs are expanded.
func WithOnExpand(fn func(id string, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps expansions; 0 disables the cap, negative is invalid.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}
