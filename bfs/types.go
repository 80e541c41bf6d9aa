package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/vgraph/log"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGraph is returned if a nil graph is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrBudgetExhausted is returned when a node still waits for expansion after
	// MaxExpansions nodes were expanded without reaching the end node.
	ErrBudgetExhausted = errors.New("bfs: expansion budget exhausted")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters that bound and trace a search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeue.
	Ctx context.Context

	// MaxDepth, if > 0, stops enqueuing nodes deeper than this many edges.
	// A value of 0 disables the limit.
	MaxDepth int

	// MaxExpansions, if > 0, caps the number of nodes whose successors are enumerated.
	// A value of 0 disables the limit.
	MaxExpansions int

	// Logger receives debug traces of the search.
	Logger log.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no limits and a
// no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: log.NoOpLogger{},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits exploration to paths of at most d edges.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxExpansions caps the number of nodes expanded (OutEdges calls).
// n == 0 disables the cap; n < 0 is an ErrOptionViolation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger routes search traces to l.
func WithLogger(l log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a search.
//   - Found: whether the end node was reached.
//   - Path: start→end inclusive when Found, nil otherwise.
//   - Depth: number of edges in Path (0 when start == end).
//   - Expanded: number of nodes whose successors were enumerated.
type Result[N comparable] struct {
	Path     []N
	Found    bool
	Depth    int
	Expanded int
}
