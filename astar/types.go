package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/vgraph"
	"github.com/katalvlaran/vgraph/log"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilGoal indicates that the goal predicate is nil.
	ErrNilGoal = errors.New("astar: goal predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrBudgetExhausted is returned when MaxExpansions nodes were closed
	// without reaching a goal.
	ErrBudgetExhausted = errors.New("astar: expansion budget exhausted")
)

// Goal reports whether node satisfies the search target.
type Goal[N comparable] func(node N) bool

// Heuristic estimates the remaining cost from node to the nearest goal.
// It must never overestimate for the result to be optimal.
type Heuristic[N comparable, D vgraph.Distance] func(node N) D

// Zero is the heuristic that always returns 0. Search with Zero is
// Dijkstra's uniform-cost search.
func Zero[N comparable, D vgraph.Distance](N) D {
	var z D
	return z
}

// Options configures a search.
//
// Ctx           – cancellation and deadlines; checked once per expansion.
// MaxExpansions – cap on closed nodes (0 = unlimited).
// Logger        – receives debug traces; defaults to log.NoOpLogger.
type Options struct {
	Ctx           context.Context
	MaxExpansions int
	Logger        log.Logger

	err error // first invalid option, surfaced by Search
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with background context, no expansion
// cap and a no-op logger.
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

// WithMaxExpansions caps the number of nodes closed before Search gives up
// with ErrBudgetExhausted. n == 0 disables the cap; n < 0 is an
// ErrOptionViolation.
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
//   - Found: whether a goal node was reached.
//   - Path: start→goal inclusive when Found, nil otherwise.
//   - Cost: accumulated distance of Path (zero when not Found).
//   - Expanded: number of nodes closed.
type Result[N comparable, D vgraph.Distance] struct {
	Path     []N
	Found    bool
	Cost     D
	Expanded int
}
