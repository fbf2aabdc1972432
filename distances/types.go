// Package distances provides tunable options and error definitions
// for breadth-first distance computation over a maze's links.
package distances

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Sentinel errors for distance computation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("distances: grid is nil")

	// ErrUnreachedTarget is returned when a path is requested to a cell
	// that has no computed distance.
	ErrUnreachedTarget = errors.New("distances: target not reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distances: invalid option supplied")
)

// Unreached is the distance recorded for cells the search never reached.
const Unreached = -1

// Option configures Compute via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when Compute runs.
type Option func(*Options)

// Options holds parameters and callbacks for a distance computation.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a cell is dequeued, with its distance.
	// Returning an error aborts the search and propagates that error.
	OnVisit func(c gridgraph.Cell, dist int) error

	// MaxDepth, if > 0, leaves cells farther than MaxDepth unreached.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit
//   - a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(gridgraph.Cell, int) error { return nil },
		MaxDepth: 0,
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

// WithOnVisit registers a callback run for every reached cell in BFS order.
func WithOnVisit(fn func(c gridgraph.Cell, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given distance.
//
//	d > 0: cells beyond d stay unreached
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Distances is the result of a breadth-first search from one source cell:
// the hop count of every reached cell over links, Unreached for the rest.
// It never mutates the grid it was computed on; recompute it when the
// source or the links change.
type Distances struct {
	grid   *gridgraph.Grid
	source gridgraph.Cell
	dist   []int
	order  []gridgraph.Cell
}
